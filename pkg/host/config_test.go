package host

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst2go/pkg/vst2"
)

func TestDefaultConfig(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)

	assert.Equal(t, int32(vst2.DefaultAPIVersion), cfg.HostVersion)
	assert.Equal(t, []string{"VSTPluginMain", "main"}, cfg.EntrySymbols)
	assert.NotNil(t, cfg.Logger)
	assert.NotNil(t, cfg.TracerProvider)
	assert.False(t, cfg.canDo("sendVstTimeInfo"))
}

func TestConfigOptions(t *testing.T) {
	cfg, err := newConfig(
		WithHostVersion(2300),
		WithCapabilities("sizeWindow"),
		WithEntrySymbols("main_plugin"),
	)
	require.NoError(t, err)

	assert.Equal(t, int32(2300), cfg.HostVersion)
	assert.True(t, cfg.canDo("sizeWindow"))
	assert.Equal(t, []string{"main_plugin"}, cfg.EntrySymbols)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"host version too small", WithHostVersion(24)},
		{"host version too large", WithHostVersion(24000)},
		{"vendor too long", WithVendor(strings.Repeat("v", 64))},
		{"product too long", WithProduct(strings.Repeat("p", 64))},
		{"no entry symbols", WithEntrySymbols()},
		{"empty entry symbol", WithEntrySymbols("")},
		{"empty capability", WithCapabilities("")},
		{"zero sample rate", WithSampleRate(0)},
		{"negative block size", WithBlockSize(-1)},
		{"nil logger", WithLogger(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(tt.opt)
			assert.Error(t, err)
		})
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load("/does/not/matter.so", nil)
	assert.ErrorIs(t, err, errNilHandle)

	_, err = Load("/does/not/matter.so", NewHandle(BaseHost{}), WithHostVersion(1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidPath, "config is checked before the path")
}
