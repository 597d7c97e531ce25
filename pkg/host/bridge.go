package host

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "bridge.h"
import "C"
import (
	"sync"
	"unsafe"

	"github.com/justyntemme/vst2go/pkg/debug"
	"github.com/justyntemme/vst2go/pkg/vst2"
)

// bootstrapMu serializes entry point calls so the process-wide staging token
// in bridge.c always belongs to the one instantiation in progress. Calling
// Instance from inside a host callback deadlocks on it.
var bootstrapMu sync.Mutex

var bridgeLog = debug.Default().With("bridge")

// callMain runs the plugin entry point with token as the bootstrap token.
func callMain(entry unsafe.Pointer, token uintptr) *C.AEffect {
	bootstrapMu.Lock()
	defer bootstrapMu.Unlock()
	return C.vst2go_call_main(entry, C.uintptr_t(token))
}

// bindToken stores token in the descriptor's host reserved field, ending
// the bootstrap window for this instance.
func bindToken(effect *C.AEffect, token uintptr) {
	effect.resvd1 = C.intptr_t(token)
}

//export goHostCallback
func goHostCallback(effect *C.AEffect, opcode C.int32_t, index C.int32_t, value C.intptr_t, ptr unsafe.Pointer, opt C.float, token C.uintptr_t) C.intptr_t {
	var reserved uintptr
	if effect != nil {
		reserved = uintptr(effect.resvd1)
	}
	return C.intptr_t(hostCallback(reserved, uintptr(token), vst2.HostOpcode(opcode), int32(index), int64(value), ptr, float32(opt)))
}

// hostCallback resolves the host for a plugin request and forwards it.
// Nothing may unwind into the plugin, so panics become a zero reply.
func hostCallback(reserved, bootstrap uintptr, op vst2.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) (reply int64) {
	defer func() {
		if r := recover(); r != nil {
			bridgeLog.Error("recovered panic in host callback %s: %v", op, r)
			reply = 0
		}
	}()

	entry := hosts.resolve(reserved, bootstrap)
	if entry == nil {
		bridgeLog.Debug("no host for %s (reserved=%d bootstrap=%d)", op, reserved, bootstrap)
		return 0
	}
	return entry.call(op, index, value, ptr, opt)
}

// dispatch calls effect->dispatcher. The caller checks for nil.
func dispatch(effect *C.AEffect, op vst2.PluginOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	return int64(C.vst2go_dispatch(effect, C.int32_t(op), C.int32_t(index), C.intptr_t(value), ptr, C.float(opt)))
}
