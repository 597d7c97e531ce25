package host

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/justyntemme/vst2go/pkg/debug"
	"github.com/justyntemme/vst2go/pkg/vst2"
)

// Config holds what the host reports about itself to plugins, plus the
// ambient logger and tracer.
type Config struct {
	// HostVersion is the reply to HostVersion requests.
	HostVersion int32 `validate:"gte=1000,lte=9999"`

	VendorName    string `validate:"max=63"`
	ProductName   string `validate:"max=63"`
	VendorVersion int32  `validate:"gte=0"`

	SampleRate float32 `validate:"gt=0"`
	BlockSize  int32   `validate:"gt=0"`

	// Capabilities are the names answered with "yes" to HostCanDo, e.g.
	// "sendVstTimeInfo" or "sizeWindow".
	Capabilities []string `validate:"dive,required"`

	// EntrySymbols are tried in order when resolving the plugin entry point.
	EntrySymbols []string `validate:"min=1,dive,required"`

	Logger         *debug.Logger        `validate:"required"`
	TracerProvider trace.TracerProvider `validate:"required"`
}

// Option configures a Loader.
type Option func(*Config)

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		HostVersion:   vst2.DefaultAPIVersion,
		VendorName:    "vst2go",
		ProductName:   "vst2go host",
		VendorVersion: 1,
		SampleRate:    44100,
		BlockSize:     512,
		EntrySymbols:  []string{"VSTPluginMain", "main"},
		Logger:        debug.Default().With("host"),
	}
}

// WithHostVersion sets the VST version reported to plugins.
func WithHostVersion(v int32) Option {
	return func(c *Config) {
		c.HostVersion = v
	}
}

// WithVendor sets the vendor string reported to plugins.
func WithVendor(name string) Option {
	return func(c *Config) {
		c.VendorName = name
	}
}

// WithProduct sets the product string reported to plugins.
func WithProduct(name string) Option {
	return func(c *Config) {
		c.ProductName = name
	}
}

// WithVendorVersion sets the vendor specific version reported to plugins.
func WithVendorVersion(v int32) Option {
	return func(c *Config) {
		c.VendorVersion = v
	}
}

// WithSampleRate sets the sample rate reported through HostGetSampleRate.
func WithSampleRate(rate float32) Option {
	return func(c *Config) {
		c.SampleRate = rate
	}
}

// WithBlockSize sets the block size reported through HostGetBlockSize.
func WithBlockSize(size int32) Option {
	return func(c *Config) {
		c.BlockSize = size
	}
}

// WithCapabilities sets the host capabilities answered with "yes".
func WithCapabilities(names ...string) Option {
	return func(c *Config) {
		c.Capabilities = append([]string(nil), names...)
	}
}

// WithEntrySymbols overrides the entry point symbol names.
func WithEntrySymbols(names ...string) Option {
	return func(c *Config) {
		c.EntrySymbols = append([]string(nil), names...)
	}
}

// WithLogger sets the logger.
func WithLogger(l *debug.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithTracerProvider sets the tracer provider used for load and instance
// spans. The global provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

var validate = validator.New()

func newConfig(opts ...Option) (*Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("host: invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) canDo(name string) bool {
	return slices.Contains(c.Capabilities, name)
}
