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
	"unsafe"
)

// Effect is the name of an effect object.
type Effect uint32

// Vector3 is a three-component float parameter value, such as a reverb pan.
type Vector3 [3]float32

// GenEffects generates n effect objects.
func (e *Extension) GenEffects(n int) []Effect {
	if n <= 0 {
		return nil
	}
	effects := make([]Effect, n)
	e.effect.Gen(int32(n), (*uint32)(unsafe.Pointer(&effects[0])))
	return effects
}

// GenEffect generates a single effect object.
func (e *Extension) GenEffect() Effect {
	var effect Effect
	e.effect.Gen(1, (*uint32)(&effect))
	return effect
}

// DeleteEffects deletes the given effect objects.
func (e *Extension) DeleteEffects(effects ...Effect) {
	if len(effects) == 0 {
		return
	}
	e.effect.Delete(int32(len(effects)), (*uint32)(unsafe.Pointer(&effects[0])))
}

// IsEffect reports whether effect names an effect object.
func (e *Extension) IsEffect(effect Effect) bool {
	return e.effect.Is(uint32(effect)) != 0
}

// Effecti sets an integer parameter of an effect.
func (e *Extension) Effecti(effect Effect, param EffectParami, value int32) {
	e.effect.Seti(uint32(effect), int32(param), value)
}

// Effectf sets a float parameter of an effect.
func (e *Extension) Effectf(effect Effect, param EffectParamf, value float32) {
	e.effect.Setf(uint32(effect), int32(param), value)
}

// Effect3f sets a vector parameter of an effect.
func (e *Extension) Effect3f(effect Effect, param EffectParam3f, value Vector3) {
	e.effect.Setfv(uint32(effect), int32(param), &value[0])
}

// GetEffecti returns an integer parameter of an effect.
func (e *Extension) GetEffecti(effect Effect, param EffectParami) int32 {
	var v int32
	e.effect.Geti(uint32(effect), int32(param), &v)
	return v
}

// GetEffectf returns a float parameter of an effect.
func (e *Extension) GetEffectf(effect Effect, param EffectParamf) float32 {
	var v float32
	e.effect.Getf(uint32(effect), int32(param), &v)
	return v
}

// GetEffect3f returns a vector parameter of an effect.
func (e *Extension) GetEffect3f(effect Effect, param EffectParam3f) Vector3 {
	var v Vector3
	e.effect.Getfv(uint32(effect), int32(param), &v[0])
	return v
}
