// Copyright 2026 The EFX Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package efx

// Extension names.
const (
	ExtensionName = "ALC_EXT_EFX"
)

// EffectType selects the algorithm of an effect object.
type EffectType int32

const (
	EffectNull             EffectType = 0x0000
	EffectReverb           EffectType = 0x0001
	EffectChorus           EffectType = 0x0002
	EffectDistortion       EffectType = 0x0003
	EffectEcho             EffectType = 0x0004
	EffectFlanger          EffectType = 0x0005
	EffectFrequencyShifter EffectType = 0x0006
	EffectVocalMorpher     EffectType = 0x0007
	EffectPitchShifter     EffectType = 0x0008
	EffectRingModulator    EffectType = 0x0009
	EffectAutowah          EffectType = 0x000A
	EffectCompressor       EffectType = 0x000B
	EffectEqualizer        EffectType = 0x000C
	EffectEAXReverb        EffectType = 0x8000
)

// FilterType selects the algorithm of a filter object.
type FilterType int32

const (
	FilterNull     FilterType = 0x0000
	FilterLowpass  FilterType = 0x0001
	FilterHighpass FilterType = 0x0002
	FilterBandpass FilterType = 0x0003
)

// EffectParami is an integer effect parameter.
type EffectParami int32

// EffectParamf is a float effect parameter.
type EffectParamf int32

// EffectParam3f is a three-float (vector) effect parameter.
type EffectParam3f int32

// FilterParami is an integer filter parameter.
type FilterParami int32

// FilterParamf is a float filter parameter.
type FilterParamf int32

// SlotParami is an integer auxiliary effect slot parameter.
type SlotParami int32

// SlotParamf is a float auxiliary effect slot parameter.
type SlotParamf int32

// Effect object parameters shared by all effect types.
const (
	EffectFirstParameter EffectParami = 0x0000
	EffectLastParameter  EffectParami = 0x8000
	EffectTypeParam      EffectParami = 0x8001
)

// Filter object parameters shared by all filter types.
const (
	FilterFirstParameter FilterParami = 0x0000
	FilterLastParameter  FilterParami = 0x8000
	FilterTypeParam      FilterParami = 0x8001
)

// Reverb parameters.
const (
	ReverbDensity             EffectParamf = 0x0001
	ReverbDiffusion           EffectParamf = 0x0002
	ReverbGain                EffectParamf = 0x0003
	ReverbGainHF              EffectParamf = 0x0004
	ReverbDecayTime           EffectParamf = 0x0005
	ReverbDecayHFRatio        EffectParamf = 0x0006
	ReverbReflectionsGain     EffectParamf = 0x0007
	ReverbReflectionsDelay    EffectParamf = 0x0008
	ReverbLateReverbGain      EffectParamf = 0x0009
	ReverbLateReverbDelay     EffectParamf = 0x000A
	ReverbAirAbsorptionGainHF EffectParamf = 0x000B
	ReverbRoomRolloffFactor   EffectParamf = 0x000C
	ReverbDecayHFLimit        EffectParami = 0x000D
)

// EAX reverb parameters.
const (
	EAXReverbDensity             EffectParamf  = 0x0001
	EAXReverbDiffusion           EffectParamf  = 0x0002
	EAXReverbGain                EffectParamf  = 0x0003
	EAXReverbGainHF              EffectParamf  = 0x0004
	EAXReverbGainLF              EffectParamf  = 0x0005
	EAXReverbDecayTime           EffectParamf  = 0x0006
	EAXReverbDecayHFRatio        EffectParamf  = 0x0007
	EAXReverbDecayLFRatio        EffectParamf  = 0x0008
	EAXReverbReflectionsGain     EffectParamf  = 0x0009
	EAXReverbReflectionsDelay    EffectParamf  = 0x000A
	EAXReverbReflectionsPan      EffectParam3f = 0x000B
	EAXReverbLateReverbGain      EffectParamf  = 0x000C
	EAXReverbLateReverbDelay     EffectParamf  = 0x000D
	EAXReverbLateReverbPan       EffectParam3f = 0x000E
	EAXReverbEchoTime            EffectParamf  = 0x000F
	EAXReverbEchoDepth           EffectParamf  = 0x0010
	EAXReverbModulationTime      EffectParamf  = 0x0011
	EAXReverbModulationDepth     EffectParamf  = 0x0012
	EAXReverbAirAbsorptionGainHF EffectParamf  = 0x0013
	EAXReverbHFReference         EffectParamf  = 0x0014
	EAXReverbLFReference         EffectParamf  = 0x0015
	EAXReverbRoomRolloffFactor   EffectParamf  = 0x0016
	EAXReverbDecayHFLimit        EffectParami  = 0x0017
)

// Chorus parameters.
const (
	ChorusWaveform EffectParami = 0x0001
	ChorusPhase    EffectParami = 0x0002
	ChorusRate     EffectParamf = 0x0003
	ChorusDepth    EffectParamf = 0x0004
	ChorusFeedback EffectParamf = 0x0005
	ChorusDelay    EffectParamf = 0x0006
)

// Distortion parameters.
const (
	DistortionEdge          EffectParamf = 0x0001
	DistortionGain          EffectParamf = 0x0002
	DistortionLowpassCutoff EffectParamf = 0x0003
	DistortionEQCenter      EffectParamf = 0x0004
	DistortionEQBandwidth   EffectParamf = 0x0005
)

// Echo parameters.
const (
	EchoDelay    EffectParamf = 0x0001
	EchoLRDelay  EffectParamf = 0x0002
	EchoDamping  EffectParamf = 0x0003
	EchoFeedback EffectParamf = 0x0004
	EchoSpread   EffectParamf = 0x0005
)

// Flanger parameters.
const (
	FlangerWaveform EffectParami = 0x0001
	FlangerPhase    EffectParami = 0x0002
	FlangerRate     EffectParamf = 0x0003
	FlangerDepth    EffectParamf = 0x0004
	FlangerFeedback EffectParamf = 0x0005
	FlangerDelay    EffectParamf = 0x0006
)

// Frequency shifter parameters.
const (
	FrequencyShifterFrequency      EffectParamf = 0x0001
	FrequencyShifterLeftDirection  EffectParami = 0x0002
	FrequencyShifterRightDirection EffectParami = 0x0003
)

// Vocal morpher parameters.
const (
	VocalMorpherPhonemeA             EffectParami = 0x0001
	VocalMorpherPhonemeACoarseTuning EffectParami = 0x0002
	VocalMorpherPhonemeB             EffectParami = 0x0003
	VocalMorpherPhonemeBCoarseTuning EffectParami = 0x0004
	VocalMorpherWaveform             EffectParami = 0x0005
	VocalMorpherRate                 EffectParamf = 0x0006
)

// Pitch shifter parameters.
const (
	PitchShifterCoarseTune EffectParami = 0x0001
	PitchShifterFineTune   EffectParami = 0x0002
)

// Ring modulator parameters.
const (
	RingModulatorFrequency      EffectParamf = 0x0001
	RingModulatorHighpassCutoff EffectParamf = 0x0002
	RingModulatorWaveform       EffectParami = 0x0003
)

// Autowah parameters.
const (
	AutowahAttackTime  EffectParamf = 0x0001
	AutowahReleaseTime EffectParamf = 0x0002
	AutowahResonance   EffectParamf = 0x0003
	AutowahPeakGain    EffectParamf = 0x0004
)

// Compressor parameters.
const (
	CompressorOnOff EffectParami = 0x0001
)

// Equalizer parameters.
const (
	EqualizerLowGain    EffectParamf = 0x0001
	EqualizerLowCutoff  EffectParamf = 0x0002
	EqualizerMid1Gain   EffectParamf = 0x0003
	EqualizerMid1Center EffectParamf = 0x0004
	EqualizerMid1Width  EffectParamf = 0x0005
	EqualizerMid2Gain   EffectParamf = 0x0006
	EqualizerMid2Center EffectParamf = 0x0007
	EqualizerMid2Width  EffectParamf = 0x0008
	EqualizerHighGain   EffectParamf = 0x0009
	EqualizerHighCutoff EffectParamf = 0x000A
)

// Lowpass filter parameters.
const (
	LowpassGain   FilterParamf = 0x0001
	LowpassGainHF FilterParamf = 0x0002
)

// Highpass filter parameters.
const (
	HighpassGain   FilterParamf = 0x0001
	HighpassGainLF FilterParamf = 0x0002
)

// Bandpass filter parameters.
const (
	BandpassGain   FilterParamf = 0x0001
	BandpassGainLF FilterParamf = 0x0002
	BandpassGainHF FilterParamf = 0x0003
)

// Auxiliary effect slot parameters.
const (
	SlotEffect            SlotParami = 0x0001
	SlotGain              SlotParamf = 0x0002
	SlotAuxiliarySendAuto SlotParami = 0x0003
)

// Null object names. Binding one of these detaches the current object.
const (
	NullSlot   AuxiliaryEffectSlot = 0
	NullFilter Filter              = 0
	NullEffect Effect              = 0
)

// Source parameters added by the extension.
const (
	SourceDirectFilter                  = 0x20005
	SourceAuxiliarySendFilter           = 0x20006
	SourceAirAbsorptionFactor           = 0x20007
	SourceRoomRolloffFactor             = 0x20008
	SourceConeOuterGainHF               = 0x20009
	SourceDirectFilterGainHFAuto        = 0x2000A
	SourceAuxiliarySendFilterGainAuto   = 0x2000B
	SourceAuxiliarySendFilterGainHFAuto = 0x2000C
)

// Listener parameters added by the extension.
const (
	ListenerMetersPerUnit = 0x20004
)

// Waveforms for the chorus, flanger, vocal morpher and ring modulator.
const (
	WaveformSinusoid = 0
	WaveformTriangle = 1
	WaveformSawtooth = 2
)
