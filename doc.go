// Package datakit is tooling for producing the binary point datasets the
// benchmark binaries consume.
//
// It bundles three independent concerns behind one facade:
//
//   - generating synthetic clustered point clouds (package cluster)
//   - importing ARFF attribute files (package arff)
//   - persisting both in the compact binary dataset format (package codec)
//
// Dataset files can land on the local filesystem or in object storage
// (package blobstore). All operations take explicit parameters — seeds,
// element types, destinations — and no global state, so every run is
// reproducible.
package datakit
