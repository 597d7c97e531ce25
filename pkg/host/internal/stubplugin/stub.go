// Package stubplugin links small native VST 2.4 plugins into test binaries.
// The entry points are real C functions with the VSTPluginMain signature, so
// tests exercise the same ABI path as a plugin loaded from disk.
//
// Every stub reports 2 inputs, 2 outputs, 3 parameters, 1 preset, unique id
// 1234, version 1100, an initial delay of 64 and the replacing, chunk and
// double precision flags. Descriptors are never freed.
package stubplugin

// #cgo CFLAGS: -I${SRCDIR}/../../../../include
// #cgo LDFLAGS: -lpthread
// #include "stub.h"
import "C"
import "unsafe"

// UniqueID is the id every stub reports.
const UniqueID = 1234

// ValidEntry returns an entry point that calls the host for its version, the
// current plugin id (with and without its own descriptor) and automates
// parameter 7 to 0.25 before returning a descriptor.
func ValidEntry() unsafe.Pointer {
	return unsafe.Pointer(C.stub_main_valid)
}

// ThreadedEntry returns an entry point that asks for the current plugin id
// from a thread it spawns and joins before returning.
func ThreadedEntry() unsafe.Pointer {
	return unsafe.Pointer(C.stub_main_threaded)
}

// NullEntry returns an entry point that asks for the host version and then
// returns a null descriptor.
func NullEntry() unsafe.Pointer {
	return unsafe.Pointer(C.stub_main_null)
}

// NoDispatcherEntry returns an entry point whose descriptor has no
// dispatcher.
func NoDispatcherEntry() unsafe.Pointer {
	return unsafe.Pointer(C.stub_main_no_dispatcher)
}

func stub(effect unsafe.Pointer) *C.StubEffect {
	return (*C.StubEffect)(effect)
}

// Opens returns how many initialize opcodes the descriptor received.
func Opens(effect unsafe.Pointer) int {
	return int(stub(effect).opens)
}

// Closes returns how many shutdown opcodes the descriptor received.
func Closes(effect unsafe.Pointer) int {
	return int(stub(effect).closes)
}

// Opcodes returns every opcode the descriptor received, in order.
func Opcodes(effect unsafe.Pointer) []int32 {
	s := stub(effect)
	out := make([]int32, int(s.logLen))
	for i := range out {
		out[i] = int32(s.log[i])
	}
	return out
}

// BootstrapVersion is the host version the entry point received.
func BootstrapVersion(effect unsafe.Pointer) int64 {
	return int64(stub(effect).bootVersion)
}

// BootstrapID is the plugin id the entry point received with a null
// descriptor.
func BootstrapID(effect unsafe.Pointer) int64 {
	return int64(stub(effect).bootID)
}

// BootstrapIDSelf is the plugin id the entry point received when passing
// its own, not yet bound, descriptor.
func BootstrapIDSelf(effect unsafe.Pointer) int64 {
	return int64(stub(effect).bootIDSelf)
}

// BootstrapIDThread is the plugin id the threaded entry point's helper
// thread received.
func BootstrapIDThread(effect unsafe.Pointer) int64 {
	return int64(stub(effect).bootIDThread)
}

// NullBootstrapVersion is the host version NullEntry received on its last
// call.
func NullBootstrapVersion() int64 {
	return int64(C.stub_null_boot_version())
}

// SampleRate returns the last sample rate set on the descriptor.
func SampleRate(effect unsafe.Pointer) float32 {
	return float32(stub(effect).sampleRate)
}

// BlockSize returns the last block size set on the descriptor.
func BlockSize(effect unsafe.Pointer) int64 {
	return int64(stub(effect).blockSize)
}

// State returns the last value sent with the state changed opcode.
func State(effect unsafe.Pointer) int64 {
	return int64(stub(effect).state)
}

// SetNumInputs changes the descriptor's input count, as a plugin might
// after reconfiguring itself.
func SetNumInputs(effect unsafe.Pointer, n int32) {
	stub(effect).effect.numInputs = C.int32_t(n)
}

// Reserved returns the descriptor's host reserved field.
func Reserved(effect unsafe.Pointer) uintptr {
	return uintptr(stub(effect).effect.resvd1)
}

// LastEffect returns the descriptor most recently created by any stub.
func LastEffect() unsafe.Pointer {
	return unsafe.Pointer(C.stub_last_effect())
}

// CallHost makes the plugin call its host callback with its own descriptor,
// as it would from its audio or editor thread.
func CallHost(effect unsafe.Pointer, opcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	return int64(C.stub_call_host((*C.AEffect)(effect), C.int32_t(opcode), C.int32_t(index), C.intptr_t(value), ptr, C.float(opt)))
}
