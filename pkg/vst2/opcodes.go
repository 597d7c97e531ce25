// Package vst2 holds the fixed vocabulary of the VST 2.4 binary interface:
// opcodes for both call directions, descriptor flag bits, plugin categories
// and the Info snapshot a host keeps for each loaded plugin.
package vst2

import "fmt"

// HostOpcode identifies a plugin-to-host request sent through the
// audioMaster callback. Values match the VST 2.4 SDK.
type HostOpcode int32

const (
	// HostAutomate: [index] parameter index, [opt] parameter value.
	HostAutomate HostOpcode = 0
	// HostVersion returns the host VST version (2400 for VST 2.4).
	HostVersion HostOpcode = 1
	// HostCurrentID returns the id of the plugin currently being loaded.
	// Shell plugins use it to pick which sub-plugin to return.
	HostCurrentID HostOpcode = 2
	// HostIdle gives idle time to the host.
	HostIdle HostOpcode = 3
	// HostPinConnected is deprecated.
	HostPinConnected HostOpcode = 4

	// HostWantMidi is deprecated. There is no opcode 5.
	HostWantMidi HostOpcode = 6
	// HostGetTime: [value] request mask, returns a VstTimeInfo pointer or 0.
	HostGetTime HostOpcode = 7
	// HostProcessEvents: [ptr] VstEvents pointer.
	HostProcessEvents HostOpcode = 8
	// HostSetTime is deprecated.
	HostSetTime HostOpcode = 9
	// HostTempoAt is deprecated.
	HostTempoAt HostOpcode = 10
	// HostGetNumAutomatableParameters is deprecated.
	HostGetNumAutomatableParameters HostOpcode = 11
	// HostGetParameterQuantization is deprecated.
	HostGetParameterQuantization HostOpcode = 12
	// HostIOChanged notifies the host that numInputs/numOutputs changed.
	// Returns 1 if supported.
	HostIOChanged HostOpcode = 13
	// HostNeedIdle is deprecated.
	HostNeedIdle HostOpcode = 14
	// HostSizeWindow: [index] width, [value] height.
	HostSizeWindow HostOpcode = 15
	// HostGetSampleRate returns the current sample rate.
	HostGetSampleRate HostOpcode = 16
	// HostGetBlockSize returns the current block size.
	HostGetBlockSize HostOpcode = 17
	// HostGetInputLatency returns the input latency in samples.
	HostGetInputLatency HostOpcode = 18
	// HostGetOutputLatency returns the output latency in samples.
	HostGetOutputLatency HostOpcode = 19
	// HostGetPreviousPlug is deprecated.
	HostGetPreviousPlug HostOpcode = 20
	// HostGetNextPlug is deprecated.
	HostGetNextPlug HostOpcode = 21
	// HostWillReplaceOrAccumulate is deprecated.
	HostWillReplaceOrAccumulate HostOpcode = 22
	// HostGetCurrentProcessLevel returns the current process level.
	HostGetCurrentProcessLevel HostOpcode = 23
	// HostGetAutomationState returns the current automation state.
	HostGetAutomationState HostOpcode = 24
	HostOfflineStart           HostOpcode = 25
	HostOfflineRead            HostOpcode = 26
	HostOfflineWrite           HostOpcode = 27
	HostOfflineGetCurrentPass  HostOpcode = 28
	HostOfflineGetCurrentMeta  HostOpcode = 29
	// HostSetOutputSampleRate is deprecated.
	HostSetOutputSampleRate HostOpcode = 30
	// HostGetOutputSpeakerArrangement is deprecated.
	HostGetOutputSpeakerArrangement HostOpcode = 31
	// HostGetVendorString: [ptr] char buffer of MaxVendorStrLen.
	HostGetVendorString HostOpcode = 32
	// HostGetProductString: [ptr] char buffer of MaxProductStrLen.
	HostGetProductString HostOpcode = 33
	// HostGetVendorVersion returns the vendor specific host version.
	HostGetVendorVersion HostOpcode = 34
	HostVendorSpecific   HostOpcode = 35
	// HostSetIcon is deprecated.
	HostSetIcon HostOpcode = 36
	// HostCanDo: [ptr] capability name. Returns 1 yes, -1 no, 0 unknown.
	HostCanDo       HostOpcode = 37
	HostGetLanguage HostOpcode = 38
	// HostOpenWindow is deprecated.
	HostOpenWindow HostOpcode = 39
	// HostCloseWindow is deprecated.
	HostCloseWindow    HostOpcode = 40
	HostGetDirectory   HostOpcode = 41
	HostUpdateDisplay  HostOpcode = 42
	HostBeginEdit      HostOpcode = 43
	HostEndEdit        HostOpcode = 44
	HostOpenFileSelect HostOpcode = 45
	HostCloseFileSelect HostOpcode = 46
	// HostEditFile is deprecated.
	HostEditFile HostOpcode = 47
	// HostGetChunkFile is deprecated.
	HostGetChunkFile HostOpcode = 48
	// HostGetInputSpeakerArrangement is deprecated.
	HostGetInputSpeakerArrangement HostOpcode = 49
)

var hostOpcodeNames = map[HostOpcode]string{
	HostAutomate:                    "Automate",
	HostVersion:                     "Version",
	HostCurrentID:                   "CurrentId",
	HostIdle:                        "Idle",
	HostPinConnected:                "PinConnected",
	HostWantMidi:                    "WantMidi",
	HostGetTime:                     "GetTime",
	HostProcessEvents:               "ProcessEvents",
	HostSetTime:                     "SetTime",
	HostTempoAt:                     "TempoAt",
	HostGetNumAutomatableParameters: "GetNumAutomatableParameters",
	HostGetParameterQuantization:    "GetParameterQuantization",
	HostIOChanged:                   "IOChanged",
	HostNeedIdle:                    "NeedIdle",
	HostSizeWindow:                  "SizeWindow",
	HostGetSampleRate:               "GetSampleRate",
	HostGetBlockSize:                "GetBlockSize",
	HostGetInputLatency:             "GetInputLatency",
	HostGetOutputLatency:            "GetOutputLatency",
	HostGetPreviousPlug:             "GetPreviousPlug",
	HostGetNextPlug:                 "GetNextPlug",
	HostWillReplaceOrAccumulate:     "WillReplaceOrAccumulate",
	HostGetCurrentProcessLevel:      "GetCurrentProcessLevel",
	HostGetAutomationState:          "GetAutomationState",
	HostOfflineStart:                "OfflineStart",
	HostOfflineRead:                 "OfflineRead",
	HostOfflineWrite:                "OfflineWrite",
	HostOfflineGetCurrentPass:       "OfflineGetCurrentPass",
	HostOfflineGetCurrentMeta:       "OfflineGetCurrentMetaPass",
	HostSetOutputSampleRate:         "SetOutputSampleRate",
	HostGetOutputSpeakerArrangement: "GetOutputSpeakerArrangement",
	HostGetVendorString:             "GetVendorString",
	HostGetProductString:            "GetProductString",
	HostGetVendorVersion:            "GetVendorVersion",
	HostVendorSpecific:              "VendorSpecific",
	HostSetIcon:                     "SetIcon",
	HostCanDo:                       "CanDo",
	HostGetLanguage:                 "GetLanguage",
	HostOpenWindow:                  "OpenWindow",
	HostCloseWindow:                 "CloseWindow",
	HostGetDirectory:                "GetDirectory",
	HostUpdateDisplay:               "UpdateDisplay",
	HostBeginEdit:                   "BeginEdit",
	HostEndEdit:                     "EndEdit",
	HostOpenFileSelect:              "OpenFileSelector",
	HostCloseFileSelect:             "CloseFileSelector",
	HostEditFile:                    "EditFile",
	HostGetChunkFile:                "GetChunkFile",
	HostGetInputSpeakerArrangement:  "GetInputSpeakerArrangement",
}

// String returns the SDK name of the opcode without its audioMaster prefix.
func (o HostOpcode) String() string {
	if name, ok := hostOpcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("HostOpcode(%d)", int32(o))
}

// Deprecated reports whether the opcode was retired by VST 2.4. Hosts must
// still accept these and answer with a zero reply.
func (o HostOpcode) Deprecated() bool {
	switch o {
	case HostPinConnected, HostWantMidi, HostSetTime, HostTempoAt,
		HostGetNumAutomatableParameters, HostGetParameterQuantization,
		HostNeedIdle, HostGetPreviousPlug, HostGetNextPlug,
		HostWillReplaceOrAccumulate, HostSetOutputSampleRate,
		HostGetOutputSpeakerArrangement, HostSetIcon, HostOpenWindow,
		HostCloseWindow, HostEditFile, HostGetChunkFile,
		HostGetInputSpeakerArrangement:
		return true
	}
	return false
}

// PluginOpcode identifies a host-to-plugin request sent through the
// descriptor's dispatcher.
type PluginOpcode int32

const (
	// PluginInitialize (effOpen) is sent once before the plugin is used.
	PluginInitialize PluginOpcode = 0
	// PluginShutdown (effClose) asks the plugin to release the descriptor.
	PluginShutdown PluginOpcode = 1
	// PluginChangePreset: [value] preset index.
	PluginChangePreset PluginOpcode = 2
	// PluginGetCurrentPresetNum returns the current preset index.
	PluginGetCurrentPresetNum PluginOpcode = 3
	// PluginSetCurrentPresetName: [ptr] name, at most MaxPresetNameLen.
	PluginSetCurrentPresetName PluginOpcode = 4
	// PluginGetCurrentPresetName: [ptr] buffer for the name.
	PluginGetCurrentPresetName PluginOpcode = 5
	// PluginGetParameterLabel: [index] parameter, [ptr] unit buffer ("dB").
	PluginGetParameterLabel PluginOpcode = 6
	// PluginGetParameterDisplay: [index] parameter, [ptr] value text buffer.
	PluginGetParameterDisplay PluginOpcode = 7
	// PluginGetParameterName: [index] parameter, [ptr] name buffer.
	PluginGetParameterName PluginOpcode = 8
	// PluginGetVu is deprecated.
	PluginGetVu PluginOpcode = 9
	// PluginSetSampleRate: [opt] sample rate.
	PluginSetSampleRate PluginOpcode = 10
	// PluginSetBlockSize: [value] maximum block size.
	PluginSetBlockSize PluginOpcode = 11
	// PluginStateChanged: [value] 0 suspend, 1 resume.
	PluginStateChanged PluginOpcode = 12
	PluginEditorGetRect PluginOpcode = 13
	PluginEditorOpen    PluginOpcode = 14
	PluginEditorClose   PluginOpcode = 15
	PluginEditorIdle    PluginOpcode = 19
	PluginGetData       PluginOpcode = 23
	PluginSetData       PluginOpcode = 24
	PluginProcessEvents PluginOpcode = 25
	// PluginCanBeAutomated: [index] parameter. Returns 1 if automatable.
	PluginCanBeAutomated PluginOpcode = 26
	// PluginStringToParameter: [index] parameter, [ptr] text.
	PluginStringToParameter PluginOpcode = 27
	// PluginGetPresetName: [index] preset, [ptr] name buffer.
	PluginGetPresetName PluginOpcode = 29
	// PluginGetCategory returns a Category value.
	PluginGetCategory PluginOpcode = 35
	// PluginGetEffectName: [ptr] buffer of MaxEffectNameLen.
	PluginGetEffectName PluginOpcode = 45
	// PluginGetVendorName: [ptr] buffer of MaxVendorStrLen.
	PluginGetVendorName PluginOpcode = 47
	// PluginGetProductName: [ptr] buffer of MaxProductStrLen.
	PluginGetProductName PluginOpcode = 48
	// PluginGetVendorVersion returns the vendor specific plugin version.
	PluginGetVendorVersion PluginOpcode = 49
	PluginVendorSpecific   PluginOpcode = 50
	// PluginCanDo: [ptr] capability name. Returns 1 yes, -1 no, 0 unknown.
	PluginCanDo PluginOpcode = 51
	// PluginGetTailSize returns the tail length in samples.
	PluginGetTailSize PluginOpcode = 52
	// PluginGetAPIVersion returns the VST version the plugin was built for.
	PluginGetAPIVersion PluginOpcode = 58
)

var pluginOpcodeNames = map[PluginOpcode]string{
	PluginInitialize:           "Initialize",
	PluginShutdown:             "Shutdown",
	PluginChangePreset:         "ChangePreset",
	PluginGetCurrentPresetNum:  "GetCurrentPresetNum",
	PluginSetCurrentPresetName: "SetCurrentPresetName",
	PluginGetCurrentPresetName: "GetCurrentPresetName",
	PluginGetParameterLabel:    "GetParameterLabel",
	PluginGetParameterDisplay:  "GetParameterDisplay",
	PluginGetParameterName:     "GetParameterName",
	PluginGetVu:                "GetVu",
	PluginSetSampleRate:        "SetSampleRate",
	PluginSetBlockSize:         "SetBlockSize",
	PluginStateChanged:         "StateChanged",
	PluginEditorGetRect:        "EditorGetRect",
	PluginEditorOpen:           "EditorOpen",
	PluginEditorClose:          "EditorClose",
	PluginEditorIdle:           "EditorIdle",
	PluginGetData:              "GetData",
	PluginSetData:              "SetData",
	PluginProcessEvents:        "ProcessEvents",
	PluginCanBeAutomated:       "CanBeAutomated",
	PluginStringToParameter:    "StringToParameter",
	PluginGetPresetName:        "GetPresetName",
	PluginGetCategory:          "GetCategory",
	PluginGetEffectName:        "GetEffectName",
	PluginGetVendorName:        "GetVendorName",
	PluginGetProductName:       "GetProductName",
	PluginGetVendorVersion:     "GetVendorVersion",
	PluginVendorSpecific:       "VendorSpecific",
	PluginCanDo:                "CanDo",
	PluginGetTailSize:          "GetTailSize",
	PluginGetAPIVersion:        "GetApiVersion",
}

func (o PluginOpcode) String() string {
	if name, ok := pluginOpcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("PluginOpcode(%d)", int32(o))
}
