package host

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/vst2go/pkg/debug"
	"github.com/justyntemme/vst2go/pkg/vst2"
)

type listeningHost struct {
	BaseHost
	ioChanged bool
	begins    []int32
	ends      []int32
	displays  int
}

func (h *listeningHost) IOChanged() bool      { return h.ioChanged }
func (h *listeningHost) BeginEdit(index int32) { h.begins = append(h.begins, index) }
func (h *listeningHost) EndEdit(index int32)   { h.ends = append(h.ends, index) }
func (h *listeningHost) UpdateDisplay()        { h.displays++ }

func newTestEntry(t *testing.T, h Host, opts ...Option) *hostEntry {
	t.Helper()
	opts = append([]Option{WithLogger(debug.Discard())}, opts...)
	cfg, err := newConfig(opts...)
	require.NoError(t, err)
	return &hostEntry{handle: NewHandle(h), cfg: cfg, log: cfg.Logger}
}

func TestDispatchCoreOpcodes(t *testing.T) {
	h := &recordingHost{id: 99}
	e := newTestEntry(t, h, WithHostVersion(2300))

	assert.Equal(t, int64(0), e.call(vst2.HostAutomate, 4, 0, nil, 0.75))
	assert.Equal(t, []automation{{4, 0.75}}, h.automations)

	assert.Equal(t, int64(2300), e.call(vst2.HostVersion, 0, 0, nil, 0))
	assert.Equal(t, int64(99), e.call(vst2.HostCurrentID, 0, 0, nil, 0))

	assert.Equal(t, int64(0), e.call(vst2.HostIdle, 0, 0, nil, 0))
	assert.Equal(t, 1, h.idles)
}

func TestDispatchOptionalListeners(t *testing.T) {
	h := &listeningHost{ioChanged: true}
	e := newTestEntry(t, h)

	assert.Equal(t, int64(1), e.call(vst2.HostIOChanged, 0, 0, nil, 0))
	h.ioChanged = false
	assert.Equal(t, int64(0), e.call(vst2.HostIOChanged, 0, 0, nil, 0))

	assert.Equal(t, int64(1), e.call(vst2.HostBeginEdit, 2, 0, nil, 0))
	assert.Equal(t, int64(1), e.call(vst2.HostEndEdit, 2, 0, nil, 0))
	assert.Equal(t, []int32{2}, h.begins)
	assert.Equal(t, []int32{2}, h.ends)

	assert.Equal(t, int64(1), e.call(vst2.HostUpdateDisplay, 0, 0, nil, 0))
	assert.Equal(t, 1, h.displays)
}

func TestDispatchWithoutListeners(t *testing.T) {
	e := newTestEntry(t, BaseHost{})

	for _, op := range []vst2.HostOpcode{vst2.HostIOChanged, vst2.HostBeginEdit, vst2.HostEndEdit, vst2.HostUpdateDisplay} {
		assert.Equal(t, int64(0), e.call(op, 0, 0, nil, 0), op.String())
	}
}

func TestDispatchConfiguredValues(t *testing.T) {
	e := newTestEntry(t, BaseHost{},
		WithSampleRate(48000),
		WithBlockSize(128),
		WithVendorVersion(7),
		WithVendor("Acme"),
		WithProduct("Acme Rack"),
	)

	assert.Equal(t, int64(48000), e.call(vst2.HostGetSampleRate, 0, 0, nil, 0))
	assert.Equal(t, int64(128), e.call(vst2.HostGetBlockSize, 0, 0, nil, 0))
	assert.Equal(t, int64(7), e.call(vst2.HostGetVendorVersion, 0, 0, nil, 0))

	buf := make([]byte, vst2.MaxVendorStrLen)
	assert.Equal(t, int64(1), e.call(vst2.HostGetVendorString, 0, 0, unsafe.Pointer(&buf[0]), 0))
	assert.Equal(t, "Acme", trimCString(buf))

	buf = make([]byte, vst2.MaxProductStrLen)
	assert.Equal(t, int64(1), e.call(vst2.HostGetProductString, 0, 0, unsafe.Pointer(&buf[0]), 0))
	assert.Equal(t, "Acme Rack", trimCString(buf))

	assert.Equal(t, int64(0), e.call(vst2.HostGetVendorString, 0, 0, nil, 0))
}

func TestDispatchCanDo(t *testing.T) {
	e := newTestEntry(t, BaseHost{}, WithCapabilities("sendVstTimeInfo", "sizeWindow"))

	yes := []byte("sizeWindow\x00")
	no := []byte("openFileSelector\x00")
	assert.Equal(t, int64(1), e.call(vst2.HostCanDo, 0, 0, unsafe.Pointer(&yes[0]), 0))
	assert.Equal(t, int64(-1), e.call(vst2.HostCanDo, 0, 0, unsafe.Pointer(&no[0]), 0))
	assert.Equal(t, int64(0), e.call(vst2.HostCanDo, 0, 0, nil, 0))
}

func TestDispatchNeutralReplies(t *testing.T) {
	var out bytes.Buffer
	log := debug.New(&out, "", 0)
	log.SetLevel(debug.LogLevelDebug)
	e := newTestEntry(t, BaseHost{}, WithLogger(log))

	for _, op := range []vst2.HostOpcode{
		vst2.HostGetTime, vst2.HostProcessEvents, vst2.HostSizeWindow,
		vst2.HostPinConnected, vst2.HostWantMidi, vst2.HostNeedIdle,
		vst2.HostGetParameterQuantization,
	} {
		assert.Equal(t, int64(0), e.call(op, 1, 2, nil, 0), op.String())
	}
	assert.Empty(t, out.String(), "known and deprecated opcodes are silent")

	assert.Equal(t, int64(0), e.call(vst2.HostOpcode(999), 0, 0, nil, 0))
	assert.Contains(t, out.String(), "unhandled host opcode HostOpcode(999)")
}

func TestHostCallbackResolution(t *testing.T) {
	a := newTestEntry(t, &recordingHost{id: 1})
	b := newTestEntry(t, &recordingHost{id: 2})
	tokA := hosts.register(a)
	tokB := hosts.register(b)
	defer hosts.unregister(tokA)
	defer hosts.unregister(tokB)

	// Bootstrap: no reserved value yet.
	assert.Equal(t, int64(2), hostCallback(0, tokB, vst2.HostCurrentID, 0, 0, nil, 0))
	// Steady state wins over whatever bootstrap token is current.
	assert.Equal(t, int64(1), hostCallback(tokA, tokB, vst2.HostCurrentID, 0, 0, nil, 0))
	// A stale reserved value never falls back to the bootstrap token.
	assert.Equal(t, int64(0), hostCallback(tokB+1000, tokA, vst2.HostCurrentID, 0, 0, nil, 0))
	// Nothing to resolve.
	assert.Equal(t, int64(0), hostCallback(0, 0, vst2.HostCurrentID, 0, 0, nil, 0))
}

type panickingHost struct{ BaseHost }

func (panickingHost) Idle() { panic("idle exploded") }

func TestHostCallbackRecoversPanics(t *testing.T) {
	e := newTestEntry(t, panickingHost{})
	tok := hosts.register(e)
	defer hosts.unregister(tok)

	assert.NotPanics(t, func() {
		assert.Equal(t, int64(0), hostCallback(tok, 0, vst2.HostIdle, 0, 0, nil, 0))
	})
	// The handle lock was released by the panic.
	assert.Equal(t, int64(vst2.DefaultAPIVersion), hostCallback(tok, 0, vst2.HostVersion, 0, 0, nil, 0))
}

func TestCStringHelpers(t *testing.T) {
	buf := make([]byte, 8)
	assert.Equal(t, int64(1), writeCString(unsafe.Pointer(&buf[0]), "overlong name", len(buf)))
	assert.Equal(t, "overlon", trimCString(buf))
	assert.Equal(t, byte(0), buf[7])

	assert.Equal(t, "overlon", readCString(unsafe.Pointer(&buf[0]), 64))
	assert.Equal(t, "ove", readCString(unsafe.Pointer(&buf[0]), 3))
	assert.Equal(t, "", readCString(nil, 3))

	assert.Equal(t, "abc", trimCString([]byte("abc\x00def")))
	assert.Equal(t, "a�b", trimCString([]byte{'a', 0xff, 'b'}))
	assert.Equal(t, "full", trimCString([]byte("full")))
}
