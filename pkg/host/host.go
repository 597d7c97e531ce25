package host

import "sync"

// Host receives the calls a plugin makes back into the host application.
// Embed BaseHost to pick up no-op defaults.
type Host interface {
	// Automate is called when the plugin changed a parameter itself, for
	// example from its editor.
	Automate(index int32, value float32)

	// PluginID returns the unique id of the plugin currently being loaded.
	// Only shell plugins care; they use it to decide which sub-plugin the
	// entry point returns.
	PluginID() int32

	// Idle gives the host a chance to run, e.g. while the plugin editor is
	// tracking the mouse in a modal loop.
	Idle()
}

// IOChangeListener is implemented by hosts that react to a plugin changing
// its input or output count.
type IOChangeListener interface {
	// IOChanged returns true if the host re-read the descriptor.
	IOChanged() bool
}

// EditListener is implemented by hosts that track parameter gestures, so
// automation recording can group the values between BeginEdit and EndEdit.
type EditListener interface {
	BeginEdit(index int32)
	EndEdit(index int32)
}

// DisplayListener is implemented by hosts that refresh their view of the
// plugin (preset names, parameter text) on request.
type DisplayListener interface {
	UpdateDisplay()
}

// BaseHost implements Host with no-op methods.
type BaseHost struct{}

func (BaseHost) Automate(int32, float32) {}
func (BaseHost) PluginID() int32         { return 0 }
func (BaseHost) Idle()                   {}

// Handle is the lock protecting a Host. The same Handle is shared by every
// loader and instance created with it, and plugin callbacks may arrive on
// threads other than the one that loaded the plugin, so all access to the
// Host goes through Do.
//
// Do is not reentrant: a Host method that dispatches into a plugin which then
// calls back into the same Handle deadlocks.
type Handle struct {
	mu   sync.Mutex
	host Host
}

// NewHandle wraps h for sharing with plugins.
func NewHandle(h Host) *Handle {
	return &Handle{host: h}
}

// Do runs fn with exclusive access to the Host.
func (h *Handle) Do(fn func(Host)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn(h.host)
}
