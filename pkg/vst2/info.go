package vst2

// Info is the host-side snapshot of a plugin's descriptor, taken once when
// the plugin is instantiated. It is a plain value: later changes to the
// descriptor are not reflected.
type Info struct {
	Name   string // product name
	Vendor string

	Presets    int32
	Parameters int32
	Inputs     int32
	Outputs    int32

	UniqueID int32
	Version  int32

	Category     Category
	InitialDelay int32

	PresetChunks      bool // stores presets as opaque chunks
	F64Precision      bool // supports double precision processing
	SilentWhenStopped bool
	HasEditor         bool
	CanReplacing      bool
	IsSynth           bool
}

// UniqueIDString renders the unique id as its four character code when every
// byte is printable ASCII, which is how vendors usually assign them.
func (i Info) UniqueIDString() string {
	b := []byte{
		byte(uint32(i.UniqueID) >> 24),
		byte(uint32(i.UniqueID) >> 16),
		byte(uint32(i.UniqueID) >> 8),
		byte(uint32(i.UniqueID)),
	}
	for _, c := range b {
		if c < 0x20 || c > 0x7e {
			return ""
		}
	}
	return string(b)
}
