package host

import "errors"

// LoadError is one of the failures that can occur while loading a plugin or
// creating an instance of it.
type LoadError int

const (
	// ErrInvalidPath: the path could not be opened as a shared library.
	ErrInvalidPath LoadError = iota + 1
	// ErrNotAPlugin: the library does not export a VST 2.x entry point.
	ErrNotAPlugin
	// ErrInstanceFailed: the entry point returned a null descriptor. Plugins
	// do this when they need a newer host version, fail licensing, or cannot
	// allocate.
	ErrInstanceFailed
)

func (e LoadError) Error() string {
	switch e {
	case ErrInvalidPath:
		return "could not open the requested path"
	case ErrNotAPlugin:
		return "the given path does not contain a VST 2.4 compatible library"
	case ErrInstanceFailed:
		return "failed to create a plugin instance"
	default:
		return "unknown load error"
	}
}

var (
	errNilHandle    = errors.New("host: nil host handle")
	errLoaderClosed = errors.New("host: loader is closed")
)
