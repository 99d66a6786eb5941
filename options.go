package datakit

import "github.com/lshkit/datakit/codec"

type options struct {
	logger      *Logger
	compression *codec.Compression
}

// Option configures facade operations.
type Option func(*options)

// WithLogger sets the structured logger. The default logs nothing.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCompression forces a compression container instead of inferring it
// from the destination file extension.
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = &c
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func (o options) compressionFor(dest string) codec.Compression {
	if o.compression != nil {
		return *o.compression
	}
	return codec.CompressionByExtension(dest)
}
