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

// AuxiliaryEffectSlot is the name of an auxiliary effect slot. A slot holds
// one effect and mixes the sends of every source routed into it.
type AuxiliaryEffectSlot uint32

// GenAuxiliaryEffectSlots generates n auxiliary effect slots.
func (e *Extension) GenAuxiliaryEffectSlots(n int) []AuxiliaryEffectSlot {
	if n <= 0 {
		return nil
	}
	slots := make([]AuxiliaryEffectSlot, n)
	e.slot.Gen(int32(n), (*uint32)(unsafe.Pointer(&slots[0])))
	return slots
}

// GenAuxiliaryEffectSlot generates a single auxiliary effect slot.
func (e *Extension) GenAuxiliaryEffectSlot() AuxiliaryEffectSlot {
	var slot AuxiliaryEffectSlot
	e.slot.Gen(1, (*uint32)(&slot))
	return slot
}

// DeleteAuxiliaryEffectSlots deletes the given auxiliary effect slots.
func (e *Extension) DeleteAuxiliaryEffectSlots(slots ...AuxiliaryEffectSlot) {
	if len(slots) == 0 {
		return
	}
	e.slot.Delete(int32(len(slots)), (*uint32)(unsafe.Pointer(&slots[0])))
}

// IsAuxiliaryEffectSlot reports whether slot names an auxiliary effect slot.
func (e *Extension) IsAuxiliaryEffectSlot(slot AuxiliaryEffectSlot) bool {
	return e.slot.Is(uint32(slot)) != 0
}

// AuxiliaryEffectSloti sets an integer parameter of a slot.
func (e *Extension) AuxiliaryEffectSloti(slot AuxiliaryEffectSlot, param SlotParami, value int32) {
	e.slot.Seti(uint32(slot), int32(param), value)
}

// AuxiliaryEffectSlotf sets a float parameter of a slot.
func (e *Extension) AuxiliaryEffectSlotf(slot AuxiliaryEffectSlot, param SlotParamf, value float32) {
	e.slot.Setf(uint32(slot), int32(param), value)
}

// GetAuxiliaryEffectSloti returns an integer parameter of a slot.
func (e *Extension) GetAuxiliaryEffectSloti(slot AuxiliaryEffectSlot, param SlotParami) int32 {
	var v int32
	e.slot.Geti(uint32(slot), int32(param), &v)
	return v
}

// GetAuxiliaryEffectSlotf returns a float parameter of a slot.
func (e *Extension) GetAuxiliaryEffectSlotf(slot AuxiliaryEffectSlot, param SlotParamf) float32 {
	var v float32
	e.slot.Getf(uint32(slot), int32(param), &v)
	return v
}
