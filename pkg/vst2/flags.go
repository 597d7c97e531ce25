package vst2

// Flags is the capability bit set stored in the descriptor's flags field.
type Flags int32

// Flag bits defined by VST 2.4. Bits 1-3, 10 and 11 are deprecated and
// intentionally absent.
const (
	FlagHasEditor          Flags = 1 << 0
	FlagCanReplacing       Flags = 1 << 4
	FlagProgramChunks      Flags = 1 << 5
	FlagIsSynth            Flags = 1 << 8
	FlagNoSoundInStop      Flags = 1 << 9
	FlagCanDoubleReplacing Flags = 1 << 12
)

// Intersects reports whether any bit of mask is set in f.
func (f Flags) Intersects(mask Flags) bool {
	return f&mask != 0
}

// Effect magic number, the ASCII bytes "VstP".
const EffectMagic int32 = 0x56737450

// Capacities of the string buffers exchanged through dispatcher calls,
// including the terminating NUL.
const (
	MaxVendorStrLen   = 64
	MaxProductStrLen  = 64
	MaxEffectNameLen  = 32
	MaxPresetNameLen  = 24
	MaxParamStrLen    = 8
	MaxStringBufLen   = 64 // buffer hosts hand out for short strings
	DefaultAPIVersion = 2400
)
