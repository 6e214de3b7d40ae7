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

import (
	"fmt"
)

// ReverbProperties describes a reverb in terms of the EAX reverb parameters.
// When only the standard reverb is available the EAX-specific fields are
// ignored.
type ReverbProperties struct {
	Density             float32
	Diffusion           float32
	Gain                float32
	GainHF              float32
	GainLF              float32
	DecayTime           float32
	DecayHFRatio        float32
	DecayLFRatio        float32
	ReflectionsGain     float32
	ReflectionsDelay    float32
	ReflectionsPan      Vector3
	LateReverbGain      float32
	LateReverbDelay     float32
	LateReverbPan       Vector3
	EchoTime            float32
	EchoDepth           float32
	ModulationTime      float32
	ModulationDepth     float32
	AirAbsorptionGainHF float32
	HFReference         float32
	LFReference         float32
	RoomRolloffFactor   float32
	DecayHFLimit        bool
}

// DefaultReverb holds the default values of the EAX reverb parameters.
var DefaultReverb = ReverbProperties{
	Density:             1.0,
	Diffusion:           1.0,
	Gain:                0.32,
	GainHF:              0.89,
	GainLF:              1.0,
	DecayTime:           1.49,
	DecayHFRatio:        0.83,
	DecayLFRatio:        1.0,
	ReflectionsGain:     0.05,
	ReflectionsDelay:    0.007,
	LateReverbGain:      1.26,
	LateReverbDelay:     0.011,
	EchoTime:            0.25,
	EchoDepth:           0.0,
	ModulationTime:      0.25,
	ModulationDepth:     0.0,
	AirAbsorptionGainHF: 0.994,
	HFReference:         5000.0,
	LFReference:         250.0,
	RoomRolloffFactor:   0.0,
	DecayHFLimit:        true,
}

func boolParam(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// LoadReverb generates an effect configured with p. It uses the EAX reverb
// when the device accepts it and falls back to the standard reverb otherwise.
// The effect is deleted if setting it up fails.
func (e *Extension) LoadReverb(p ReverbProperties) (Effect, error) {
	// Drop stale errors so the type check below only sees its own.
	_ = e.Err()

	effect := e.GenEffect()
	if err := e.Err(); err != nil {
		return 0, fmt.Errorf("efx: alGenEffects: %w", err)
	}

	e.BindEffect(effect, EffectEAXReverb)
	if err := e.Err(); err == nil {
		e.Effectf(effect, EAXReverbDensity, p.Density)
		e.Effectf(effect, EAXReverbDiffusion, p.Diffusion)
		e.Effectf(effect, EAXReverbGain, p.Gain)
		e.Effectf(effect, EAXReverbGainHF, p.GainHF)
		e.Effectf(effect, EAXReverbGainLF, p.GainLF)
		e.Effectf(effect, EAXReverbDecayTime, p.DecayTime)
		e.Effectf(effect, EAXReverbDecayHFRatio, p.DecayHFRatio)
		e.Effectf(effect, EAXReverbDecayLFRatio, p.DecayLFRatio)
		e.Effectf(effect, EAXReverbReflectionsGain, p.ReflectionsGain)
		e.Effectf(effect, EAXReverbReflectionsDelay, p.ReflectionsDelay)
		e.Effect3f(effect, EAXReverbReflectionsPan, p.ReflectionsPan)
		e.Effectf(effect, EAXReverbLateReverbGain, p.LateReverbGain)
		e.Effectf(effect, EAXReverbLateReverbDelay, p.LateReverbDelay)
		e.Effect3f(effect, EAXReverbLateReverbPan, p.LateReverbPan)
		e.Effectf(effect, EAXReverbEchoTime, p.EchoTime)
		e.Effectf(effect, EAXReverbEchoDepth, p.EchoDepth)
		e.Effectf(effect, EAXReverbModulationTime, p.ModulationTime)
		e.Effectf(effect, EAXReverbModulationDepth, p.ModulationDepth)
		e.Effectf(effect, EAXReverbAirAbsorptionGainHF, p.AirAbsorptionGainHF)
		e.Effectf(effect, EAXReverbHFReference, p.HFReference)
		e.Effectf(effect, EAXReverbLFReference, p.LFReference)
		e.Effectf(effect, EAXReverbRoomRolloffFactor, p.RoomRolloffFactor)
		e.Effecti(effect, EAXReverbDecayHFLimit, boolParam(p.DecayHFLimit))
	} else {
		e.log.WithError(err).Debug("efx: EAX reverb is unavailable, using the standard reverb")
		e.BindEffect(effect, EffectReverb)
		e.Effectf(effect, ReverbDensity, p.Density)
		e.Effectf(effect, ReverbDiffusion, p.Diffusion)
		e.Effectf(effect, ReverbGain, p.Gain)
		e.Effectf(effect, ReverbGainHF, p.GainHF)
		e.Effectf(effect, ReverbDecayTime, p.DecayTime)
		e.Effectf(effect, ReverbDecayHFRatio, p.DecayHFRatio)
		e.Effectf(effect, ReverbReflectionsGain, p.ReflectionsGain)
		e.Effectf(effect, ReverbReflectionsDelay, p.ReflectionsDelay)
		e.Effectf(effect, ReverbLateReverbGain, p.LateReverbGain)
		e.Effectf(effect, ReverbLateReverbDelay, p.LateReverbDelay)
		e.Effectf(effect, ReverbAirAbsorptionGainHF, p.AirAbsorptionGainHF)
		e.Effectf(effect, ReverbRoomRolloffFactor, p.RoomRolloffFactor)
		e.Effecti(effect, ReverbDecayHFLimit, boolParam(p.DecayHFLimit))
	}

	if err := e.Err(); err != nil {
		e.DeleteEffects(effect)
		return 0, fmt.Errorf("efx: setting up the reverb: %w", err)
	}
	return effect, nil
}
