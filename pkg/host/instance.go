package host

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "vst2/aeffect.h"
import "C"
import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/justyntemme/vst2go/pkg/debug"
	"github.com/justyntemme/vst2go/pkg/vst2"
)

// Instance is one running plugin instance. Instance methods must not be
// called after Close: the plugin frees its descriptor on shutdown.
type Instance struct {
	effect *C.AEffect
	token  uintptr
	lib    *Library
	info   vst2.Info
	log    *debug.Logger

	initOnce  sync.Once
	closeOnce sync.Once
	closeErr  error
}

// interpret builds the Info snapshot; replaced in tests.
var interpret = readInfo

func newInstance(effect *C.AEffect, token uintptr, lib *Library, log *debug.Logger) (inst *Instance) {
	inst = &Instance{
		effect: effect,
		token:  token,
		lib:    lib,
		log:    log,
	}

	// The descriptor exists from here on, so shutdown must be sent even if
	// building the snapshot fails.
	defer func() {
		if r := recover(); r != nil {
			_ = inst.Close()
			panic(r)
		}
	}()

	if int32(effect.magic) != vst2.EffectMagic {
		log.Warn("descriptor magic is %#x, expected %#x", int32(effect.magic), vst2.EffectMagic)
	}
	inst.info = interpret(inst)

	runtime.SetFinalizer(inst, (*Instance).finalize)
	return inst
}

// Info returns the snapshot taken when the instance was created.
func (i *Instance) Info() vst2.Info {
	return i.info
}

// Dispatch sends an opcode to the plugin and returns its reply unmodified.
// The call is synchronous; two calls from the same goroutine reach the
// plugin in program order. Dispatching on an instance without a dispatcher
// is a programming error and panics.
func (i *Instance) Dispatch(op vst2.PluginOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	if !i.hasDispatcher() {
		panic("vst2: plugin was not loaded correctly: nil dispatcher")
	}
	return dispatch(i.effect, op, index, value, ptr, opt)
}

func (i *Instance) hasDispatcher() bool {
	return i.effect != nil && i.effect.dispatcher != nil
}

func (i *Instance) opcode(op vst2.PluginOpcode) int64 {
	return i.Dispatch(op, 0, 0, nil, 0)
}

// readString dispatches op with a buffer of capacity bytes and returns the
// text up to the first NUL.
func (i *Instance) readString(op vst2.PluginOpcode, index int32, capacity int) string {
	buf := make([]byte, capacity)
	i.Dispatch(op, index, 0, unsafe.Pointer(&buf[0]), 0)
	return trimCString(buf)
}

// Init sends the initialize opcode. Only the first call has an effect.
func (i *Instance) Init() {
	i.initOnce.Do(func() {
		i.opcode(vst2.PluginInitialize)
	})
}

// Close sends the shutdown opcode and releases the instance. It runs once;
// later calls return the first result. Shutdown is sent whether or not Init
// was called.
func (i *Instance) Close() error {
	i.closeOnce.Do(func() {
		runtime.SetFinalizer(i, nil)

		if i.hasDispatcher() {
			i.opcode(vst2.PluginShutdown)
		} else {
			i.log.Error("instance has no dispatcher, cannot send shutdown")
		}

		// Callbacks made during shutdown still resolve, so the token goes
		// away only after the plugin is done with it.
		hosts.unregister(i.token)
		i.effect = nil
		i.closeErr = i.lib.release()
	})
	return i.closeErr
}

func (i *Instance) finalize() {
	i.log.Warn("instance %q garbage collected without Close", i.info.Name)
	_ = i.Close()
}

// SetSampleRate tells the plugin the sample rate it will run at.
func (i *Instance) SetSampleRate(rate float32) {
	i.Dispatch(vst2.PluginSetSampleRate, 0, 0, nil, rate)
}

// SetBlockSize tells the plugin the largest block it will be asked to
// process.
func (i *Instance) SetBlockSize(size int64) {
	i.Dispatch(vst2.PluginSetBlockSize, 0, size, nil, 0)
}

// Resume turns processing on.
func (i *Instance) Resume() {
	i.Dispatch(vst2.PluginStateChanged, 0, 1, nil, 0)
}

// Suspend turns processing off.
func (i *Instance) Suspend() {
	i.Dispatch(vst2.PluginStateChanged, 0, 0, nil, 0)
}

// ParameterName returns the display name of parameter index.
func (i *Instance) ParameterName(index int32) string {
	return i.readString(vst2.PluginGetParameterName, index, vst2.MaxStringBufLen)
}

// ParameterLabel returns the unit of parameter index, e.g. "dB".
func (i *Instance) ParameterLabel(index int32) string {
	return i.readString(vst2.PluginGetParameterLabel, index, vst2.MaxStringBufLen)
}

// ParameterDisplay returns the current value of parameter index as text.
func (i *Instance) ParameterDisplay(index int32) string {
	return i.readString(vst2.PluginGetParameterDisplay, index, vst2.MaxStringBufLen)
}

// CanBeAutomated reports whether parameter index accepts automation.
func (i *Instance) CanBeAutomated(index int32) bool {
	return i.Dispatch(vst2.PluginCanBeAutomated, index, 0, nil, 0) == 1
}

// PresetName returns the name of the current preset.
func (i *Instance) PresetName() string {
	return i.readString(vst2.PluginGetCurrentPresetName, 0, vst2.MaxStringBufLen)
}

// VendorVersion returns the plugin's vendor specific version.
func (i *Instance) VendorVersion() int32 {
	return int32(i.opcode(vst2.PluginGetVendorVersion))
}

// APIVersion returns the VST version the plugin was built against. Plugins
// older than 2.0 do not implement the opcode and reply 0.
func (i *Instance) APIVersion() int32 {
	return int32(i.opcode(vst2.PluginGetAPIVersion))
}

// descriptor exposes the raw AEffect pointer.
func (i *Instance) descriptor() unsafe.Pointer {
	return unsafe.Pointer(i.effect)
}
