package vst2

// Category is the plugin category reported through PluginGetCategory.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryEffect
	CategorySynth
	CategoryAnalysis
	CategoryMastering
	CategorySpatial
	CategoryRoomFx
	CategorySurroundFx
	CategoryRestoration
	CategoryOfflineProcess
	CategoryShell
	CategoryGenerator
)

var categoryNames = [...]string{
	CategoryUnknown:        "Unknown",
	CategoryEffect:         "Effect",
	CategorySynth:          "Synth",
	CategoryAnalysis:       "Analysis",
	CategoryMastering:      "Mastering",
	CategorySpatial:        "Spatial",
	CategoryRoomFx:         "RoomFx",
	CategorySurroundFx:     "SurroundFx",
	CategoryRestoration:    "Restoration",
	CategoryOfflineProcess: "OfflineProcess",
	CategoryShell:          "Shell",
	CategoryGenerator:      "Generator",
}

// CategoryFromReply maps a raw dispatcher reply to a Category. Values
// outside the known range map to CategoryUnknown.
func CategoryFromReply(reply int64) Category {
	if reply < 0 || reply >= int64(len(categoryNames)) {
		return CategoryUnknown
	}
	return Category(reply)
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}
