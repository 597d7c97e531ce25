package host

// #cgo LDFLAGS: -ldl
// #include <dlfcn.h>
// #include <stdlib.h>
//
// static void* lib_open(const char* path) {
//     return dlopen(path, RTLD_NOW | RTLD_LOCAL);
// }
//
// static const char* lib_error(void) {
//     return dlerror();
// }
//
// // Clears dlerror before dlsym so a NULL symbol can be told apart from a
// // missing one.
// static void* lib_symbol(void* handle, const char* name, const char** err) {
//     dlerror();
//     void* sym = dlsym(handle, name);
//     *err = dlerror();
//     return sym;
// }
//
// static int lib_close(void* handle) {
//     return dlclose(handle);
// }
import "C"
import (
	"fmt"
	"sync/atomic"
	"unsafe"
)

// Library is a mapped shared library. It stays mapped while the Loader or
// any Instance created from it is alive, since descriptor function pointers
// point into its code.
type Library struct {
	path   string
	handle unsafe.Pointer
	refs   atomic.Int32
}

// OpenLibrary maps the shared library at path. The returned library holds
// one reference; Close releases it.
func OpenLibrary(path string) (*Library, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	handle := C.lib_open(cpath)
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, dlerr())
	}

	lib := &Library{path: path, handle: handle}
	lib.refs.Store(1)
	return lib, nil
}

// Path returns the path the library was opened from.
func (l *Library) Path() string {
	return l.path
}

// Symbol resolves an exported symbol. A symbol that exists but resolves to
// NULL is reported as missing too, since it cannot be called.
func (l *Library) Symbol(name string) (unsafe.Pointer, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerr *C.char
	sym := C.lib_symbol(l.handle, cname, &cerr)
	if cerr != nil {
		return nil, fmt.Errorf("dlsym(%q): %s", name, C.GoString(cerr))
	}
	if sym == nil {
		return nil, fmt.Errorf("dlsym(%q): null symbol", name)
	}
	return sym, nil
}

// Close drops the caller's reference.
func (l *Library) Close() error {
	return l.release()
}

func (l *Library) retain() *Library {
	if l != nil {
		l.refs.Add(1)
	}
	return l
}

func (l *Library) release() error {
	if l == nil || l.handle == nil {
		return nil
	}
	if l.refs.Add(-1) != 0 {
		return nil
	}
	if C.lib_close(l.handle) != 0 {
		return fmt.Errorf("dlclose(%q): %s", l.path, dlerr())
	}
	return nil
}

func dlerr() string {
	if e := C.lib_error(); e != nil {
		return C.GoString(e)
	}
	return "unknown dlerror"
}
