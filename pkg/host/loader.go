package host

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Loader is a loaded plugin library with a resolved entry point. Any number
// of instances can be created from it.
type Loader struct {
	path   string
	symbol string
	entry  *hostEntry

	mu   sync.Mutex
	lib  *Library
	main unsafe.Pointer
}

// Load opens the plugin at path. Callbacks from every instance created by
// the returned loader go to handle.
func Load(path string, handle *Handle, opts ...Option) (*Loader, error) {
	return LoadContext(context.Background(), path, handle, opts...)
}

// LoadContext is Load with a parent context for tracing.
func LoadContext(ctx context.Context, path string, handle *Handle, opts ...Option) (_ *Loader, err error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, errNilHandle
	}

	_, span := cfg.tracer().Start(ctx, "vst2.Load",
		trace.WithAttributes(attribute.String("vst2.path", path)))
	defer func() { endSpan(span, err) }()

	log := cfg.Logger
	lib, err := OpenLibrary(path)
	if err != nil {
		log.Warn("load %s: %v", path, err)
		return nil, err
	}

	for _, name := range cfg.EntrySymbols {
		main, symErr := lib.Symbol(name)
		if symErr != nil {
			log.Debug("load %s: %v", path, symErr)
			continue
		}
		span.SetAttributes(attribute.String("vst2.entry_symbol", name))
		log.Debug("loaded %s (entry %s)", path, name)
		return newLoader(path, name, lib, main, handle, cfg), nil
	}

	_ = lib.release()
	err = fmt.Errorf("%w: %s exports none of %v", ErrNotAPlugin, path, cfg.EntrySymbols)
	log.Warn("load %s: %v", path, err)
	return nil, err
}

func newLoader(path, symbol string, lib *Library, main unsafe.Pointer, handle *Handle, cfg *Config) *Loader {
	return &Loader{
		path:   path,
		symbol: symbol,
		lib:    lib,
		main:   main,
		entry: &hostEntry{
			handle: handle,
			cfg:    cfg,
			log:    cfg.Logger,
		},
	}
}

// Path returns the path the plugin was loaded from.
func (l *Loader) Path() string {
	return l.path
}

// Instance creates a new plugin instance. The plugin may call back into the
// host before Instance returns; those calls reach this loader's Handle.
//
// Instance may be called concurrently from any number of goroutines and
// loaders; entry point calls are serialized internally. It must not be
// called from inside a Host method.
func (l *Loader) Instance() (*Instance, error) {
	return l.InstanceContext(context.Background())
}

// InstanceContext is Instance with a parent context for tracing.
func (l *Loader) InstanceContext(ctx context.Context) (_ *Instance, err error) {
	cfg := l.entry.cfg
	_, span := cfg.tracer().Start(ctx, "vst2.Instance",
		trace.WithAttributes(attribute.String("vst2.path", l.path)))
	defer func() { endSpan(span, err) }()

	l.mu.Lock()
	main, lib := l.main, l.lib
	if main != nil {
		lib.retain()
	}
	l.mu.Unlock()
	if main == nil {
		return nil, errLoaderClosed
	}

	token := hosts.register(l.entry)
	effect := callMain(main, token)
	if effect == nil {
		hosts.unregister(token)
		_ = lib.release()
		err = fmt.Errorf("%w: %s returned a null descriptor", ErrInstanceFailed, l.symbol)
		cfg.Logger.Warn("instance %s: %v", l.path, err)
		return nil, err
	}

	bindToken(effect, token)

	inst := newInstance(effect, token, lib, cfg.Logger)
	span.SetAttributes(
		attribute.Int("vst2.unique_id", int(inst.info.UniqueID)),
		attribute.String("vst2.name", inst.info.Name),
	)
	cfg.Logger.Debug("instance %s: %q by %q (id %d)", l.path, inst.info.Name, inst.info.Vendor, inst.info.UniqueID)
	return inst, nil
}

// Close releases the loader's reference to the library. Instances created
// earlier keep working and keep the library mapped until they are closed.
func (l *Loader) Close() error {
	l.mu.Lock()
	lib := l.lib
	l.lib, l.main = nil, nil
	l.mu.Unlock()
	return lib.release()
}
