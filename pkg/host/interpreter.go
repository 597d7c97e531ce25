package host

// #cgo CFLAGS: -I${SRCDIR}/../../include
// #include "vst2/aeffect.h"
import "C"
import "github.com/justyntemme/vst2go/pkg/vst2"

// readInfo copies the descriptor fields a host cares about. Besides reading
// fields it only sends the product, vendor and category queries.
func readInfo(i *Instance) vst2.Info {
	e := i.effect
	flags := vst2.Flags(e.flags)

	return vst2.Info{
		Name:   i.readString(vst2.PluginGetProductName, 0, vst2.MaxProductStrLen),
		Vendor: i.readString(vst2.PluginGetVendorName, 0, vst2.MaxVendorStrLen),

		Presets:    int32(e.numPrograms),
		Parameters: int32(e.numParams),
		Inputs:     int32(e.numInputs),
		Outputs:    int32(e.numOutputs),

		UniqueID: int32(e.uniqueID),
		Version:  int32(e.version),

		Category:     vst2.CategoryFromReply(i.opcode(vst2.PluginGetCategory)),
		InitialDelay: int32(e.initialDelay),

		PresetChunks:      flags.Intersects(vst2.FlagProgramChunks),
		F64Precision:      flags.Intersects(vst2.FlagCanDoubleReplacing),
		SilentWhenStopped: flags.Intersects(vst2.FlagNoSoundInStop),
		HasEditor:         flags.Intersects(vst2.FlagHasEditor),
		CanReplacing:      flags.Intersects(vst2.FlagCanReplacing),
		IsSynth:           flags.Intersects(vst2.FlagIsSynth),
	}
}
