// Package host loads VST 2.4 plugins from shared libraries and bridges calls
// in both directions: host to plugin through the descriptor's dispatcher,
// and plugin to host through the audioMaster callback, which is forwarded
// to a Host implementation.
//
// Basic usage:
//
//	handle := host.NewHandle(myHost)
//	loader, err := host.Load("/usr/lib/vst/Plugin.so", handle)
//	if err != nil {
//		return err
//	}
//	defer loader.Close()
//
//	inst, err := loader.Instance()
//	if err != nil {
//		return err
//	}
//	defer inst.Close()
//	inst.Init()
//
// On macOS the path points at the Mach-O file inside the bundle, e.g.
// "Plugin.vst/Contents/MacOS/Plugin".
package host
