package host

import (
	"bytes"
	"strings"
	"unsafe"

	"github.com/justyntemme/vst2go/pkg/vst2"
)

// call translates one plugin request into a call on the Host, holding the
// handle's lock for the duration.
func (e *hostEntry) call(op vst2.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	var reply int64
	e.handle.Do(func(h Host) {
		reply = e.dispatch(h, op, index, value, ptr, opt)
	})
	return reply
}

func (e *hostEntry) dispatch(h Host, op vst2.HostOpcode, index int32, value int64, ptr unsafe.Pointer, opt float32) int64 {
	switch op {
	case vst2.HostAutomate:
		h.Automate(index, opt)
	case vst2.HostVersion:
		return int64(e.cfg.HostVersion)
	case vst2.HostCurrentID:
		return int64(h.PluginID())
	case vst2.HostIdle:
		h.Idle()
	case vst2.HostIOChanged:
		if l, ok := h.(IOChangeListener); ok && l.IOChanged() {
			return 1
		}
	case vst2.HostGetSampleRate:
		return int64(e.cfg.SampleRate)
	case vst2.HostGetBlockSize:
		return int64(e.cfg.BlockSize)
	case vst2.HostGetVendorString:
		return writeCString(ptr, e.cfg.VendorName, vst2.MaxVendorStrLen)
	case vst2.HostGetProductString:
		return writeCString(ptr, e.cfg.ProductName, vst2.MaxProductStrLen)
	case vst2.HostGetVendorVersion:
		return int64(e.cfg.VendorVersion)
	case vst2.HostCanDo:
		if ptr == nil {
			return 0
		}
		if e.cfg.canDo(readCString(ptr, vst2.MaxStringBufLen)) {
			return 1
		}
		return -1
	case vst2.HostBeginEdit:
		if l, ok := h.(EditListener); ok {
			l.BeginEdit(index)
			return 1
		}
	case vst2.HostEndEdit:
		if l, ok := h.(EditListener); ok {
			l.EndEdit(index)
			return 1
		}
	case vst2.HostUpdateDisplay:
		if l, ok := h.(DisplayListener); ok {
			l.UpdateDisplay()
			return 1
		}
	case vst2.HostGetTime, vst2.HostProcessEvents, vst2.HostSizeWindow:
		// No transport, MIDI or editor support.
	default:
		if !op.Deprecated() {
			e.log.Debug("unhandled host opcode %s (index=%d value=%d)", op, index, value)
		}
	}
	return 0
}

// writeCString copies s into the plugin supplied buffer at ptr, truncated
// to leave room for the NUL terminator.
func writeCString(ptr unsafe.Pointer, s string, capacity int) int64 {
	if ptr == nil || capacity <= 0 {
		return 0
	}
	dst := unsafe.Slice((*byte)(ptr), capacity)
	n := copy(dst[:capacity-1], s)
	dst[n] = 0
	return 1
}

// readCString reads a NUL terminated string of at most limit bytes.
func readCString(ptr unsafe.Pointer, limit int) string {
	if ptr == nil {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < limit; i++ {
		b := *(*byte)(unsafe.Add(ptr, i))
		if b == 0 {
			break
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// trimCString returns the contents of buf up to the first NUL, with invalid
// UTF-8 replaced.
func trimCString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return strings.ToValidUTF8(string(buf), "�")
}
