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

package preset

import (
	"github.com/ebitengine/efx"
)

type kind int

const (
	kindInt kind = iota
	kindFloat
	kindVector
)

type param struct {
	kind kind
	id   int32
}

func intParam(p efx.EffectParami) param     { return param{kindInt, int32(p)} }
func floatParam(p efx.EffectParamf) param   { return param{kindFloat, int32(p)} }
func vectorParam(p efx.EffectParam3f) param { return param{kindVector, int32(p)} }

var effectTypes = map[string]efx.EffectType{
	"null":              efx.EffectNull,
	"reverb":            efx.EffectReverb,
	"eaxreverb":         efx.EffectEAXReverb,
	"chorus":            efx.EffectChorus,
	"distortion":        efx.EffectDistortion,
	"echo":              efx.EffectEcho,
	"flanger":           efx.EffectFlanger,
	"frequency_shifter": efx.EffectFrequencyShifter,
	"vocal_morpher":     efx.EffectVocalMorpher,
	"pitch_shifter":     efx.EffectPitchShifter,
	"ring_modulator":    efx.EffectRingModulator,
	"autowah":           efx.EffectAutowah,
	"compressor":        efx.EffectCompressor,
	"equalizer":         efx.EffectEqualizer,
}

var effectParams = map[efx.EffectType]map[string]param{
	efx.EffectNull: {},
	efx.EffectReverb: {
		"density":               floatParam(efx.ReverbDensity),
		"diffusion":             floatParam(efx.ReverbDiffusion),
		"gain":                  floatParam(efx.ReverbGain),
		"gainhf":                floatParam(efx.ReverbGainHF),
		"decay_time":            floatParam(efx.ReverbDecayTime),
		"decay_hfratio":         floatParam(efx.ReverbDecayHFRatio),
		"reflections_gain":      floatParam(efx.ReverbReflectionsGain),
		"reflections_delay":     floatParam(efx.ReverbReflectionsDelay),
		"late_reverb_gain":      floatParam(efx.ReverbLateReverbGain),
		"late_reverb_delay":     floatParam(efx.ReverbLateReverbDelay),
		"air_absorption_gainhf": floatParam(efx.ReverbAirAbsorptionGainHF),
		"room_rolloff_factor":   floatParam(efx.ReverbRoomRolloffFactor),
		"decay_hflimit":         intParam(efx.ReverbDecayHFLimit),
	},
	efx.EffectEAXReverb: {
		"density":               floatParam(efx.EAXReverbDensity),
		"diffusion":             floatParam(efx.EAXReverbDiffusion),
		"gain":                  floatParam(efx.EAXReverbGain),
		"gainhf":                floatParam(efx.EAXReverbGainHF),
		"gainlf":                floatParam(efx.EAXReverbGainLF),
		"decay_time":            floatParam(efx.EAXReverbDecayTime),
		"decay_hfratio":         floatParam(efx.EAXReverbDecayHFRatio),
		"decay_lfratio":         floatParam(efx.EAXReverbDecayLFRatio),
		"reflections_gain":      floatParam(efx.EAXReverbReflectionsGain),
		"reflections_delay":     floatParam(efx.EAXReverbReflectionsDelay),
		"reflections_pan":       vectorParam(efx.EAXReverbReflectionsPan),
		"late_reverb_gain":      floatParam(efx.EAXReverbLateReverbGain),
		"late_reverb_delay":     floatParam(efx.EAXReverbLateReverbDelay),
		"late_reverb_pan":       vectorParam(efx.EAXReverbLateReverbPan),
		"echo_time":             floatParam(efx.EAXReverbEchoTime),
		"echo_depth":            floatParam(efx.EAXReverbEchoDepth),
		"modulation_time":       floatParam(efx.EAXReverbModulationTime),
		"modulation_depth":      floatParam(efx.EAXReverbModulationDepth),
		"air_absorption_gainhf": floatParam(efx.EAXReverbAirAbsorptionGainHF),
		"hfreference":           floatParam(efx.EAXReverbHFReference),
		"lfreference":           floatParam(efx.EAXReverbLFReference),
		"room_rolloff_factor":   floatParam(efx.EAXReverbRoomRolloffFactor),
		"decay_hflimit":         intParam(efx.EAXReverbDecayHFLimit),
	},
	efx.EffectChorus: {
		"waveform": intParam(efx.ChorusWaveform),
		"phase":    intParam(efx.ChorusPhase),
		"rate":     floatParam(efx.ChorusRate),
		"depth":    floatParam(efx.ChorusDepth),
		"feedback": floatParam(efx.ChorusFeedback),
		"delay":    floatParam(efx.ChorusDelay),
	},
	efx.EffectDistortion: {
		"edge":           floatParam(efx.DistortionEdge),
		"gain":           floatParam(efx.DistortionGain),
		"lowpass_cutoff": floatParam(efx.DistortionLowpassCutoff),
		"eqcenter":       floatParam(efx.DistortionEQCenter),
		"eqbandwidth":    floatParam(efx.DistortionEQBandwidth),
	},
	efx.EffectEcho: {
		"delay":    floatParam(efx.EchoDelay),
		"lrdelay":  floatParam(efx.EchoLRDelay),
		"damping":  floatParam(efx.EchoDamping),
		"feedback": floatParam(efx.EchoFeedback),
		"spread":   floatParam(efx.EchoSpread),
	},
	efx.EffectFlanger: {
		"waveform": intParam(efx.FlangerWaveform),
		"phase":    intParam(efx.FlangerPhase),
		"rate":     floatParam(efx.FlangerRate),
		"depth":    floatParam(efx.FlangerDepth),
		"feedback": floatParam(efx.FlangerFeedback),
		"delay":    floatParam(efx.FlangerDelay),
	},
	efx.EffectFrequencyShifter: {
		"frequency":       floatParam(efx.FrequencyShifterFrequency),
		"left_direction":  intParam(efx.FrequencyShifterLeftDirection),
		"right_direction": intParam(efx.FrequencyShifterRightDirection),
	},
	efx.EffectVocalMorpher: {
		"phonemea":               intParam(efx.VocalMorpherPhonemeA),
		"phonemea_coarse_tuning": intParam(efx.VocalMorpherPhonemeACoarseTuning),
		"phonemeb":               intParam(efx.VocalMorpherPhonemeB),
		"phonemeb_coarse_tuning": intParam(efx.VocalMorpherPhonemeBCoarseTuning),
		"waveform":               intParam(efx.VocalMorpherWaveform),
		"rate":                   floatParam(efx.VocalMorpherRate),
	},
	efx.EffectPitchShifter: {
		"coarse_tune": intParam(efx.PitchShifterCoarseTune),
		"fine_tune":   intParam(efx.PitchShifterFineTune),
	},
	efx.EffectRingModulator: {
		"frequency":       floatParam(efx.RingModulatorFrequency),
		"highpass_cutoff": floatParam(efx.RingModulatorHighpassCutoff),
		"waveform":        intParam(efx.RingModulatorWaveform),
	},
	efx.EffectAutowah: {
		"attack_time":  floatParam(efx.AutowahAttackTime),
		"release_time": floatParam(efx.AutowahReleaseTime),
		"resonance":    floatParam(efx.AutowahResonance),
		"peak_gain":    floatParam(efx.AutowahPeakGain),
	},
	efx.EffectCompressor: {
		"onoff": intParam(efx.CompressorOnOff),
	},
	efx.EffectEqualizer: {
		"low_gain":    floatParam(efx.EqualizerLowGain),
		"low_cutoff":  floatParam(efx.EqualizerLowCutoff),
		"mid1_gain":   floatParam(efx.EqualizerMid1Gain),
		"mid1_center": floatParam(efx.EqualizerMid1Center),
		"mid1_width":  floatParam(efx.EqualizerMid1Width),
		"mid2_gain":   floatParam(efx.EqualizerMid2Gain),
		"mid2_center": floatParam(efx.EqualizerMid2Center),
		"mid2_width":  floatParam(efx.EqualizerMid2Width),
		"high_gain":   floatParam(efx.EqualizerHighGain),
		"high_cutoff": floatParam(efx.EqualizerHighCutoff),
	},
}

var filterTypes = map[string]efx.FilterType{
	"null":     efx.FilterNull,
	"lowpass":  efx.FilterLowpass,
	"highpass": efx.FilterHighpass,
	"bandpass": efx.FilterBandpass,
}

// Filters only have float parameters.
var filterParams = map[efx.FilterType]map[string]efx.FilterParamf{
	efx.FilterNull: {},
	efx.FilterLowpass: {
		"gain":   efx.LowpassGain,
		"gainhf": efx.LowpassGainHF,
	},
	efx.FilterHighpass: {
		"gain":   efx.HighpassGain,
		"gainlf": efx.HighpassGainLF,
	},
	efx.FilterBandpass: {
		"gain":   efx.BandpassGain,
		"gainlf": efx.BandpassGainLF,
		"gainhf": efx.BandpassGainHF,
	},
}
