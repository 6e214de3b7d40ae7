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
	"github.com/ebitengine/efx/al"
)

// BindEffect selects the algorithm used by effect. Changing the type resets
// every parameter of the effect to its default.
func (e *Extension) BindEffect(effect Effect, typ EffectType) {
	e.effect.Seti(uint32(effect), int32(EffectTypeParam), int32(typ))
}

// BindFilter selects the algorithm used by filter.
func (e *Extension) BindFilter(filter Filter, typ FilterType) {
	e.filter.Seti(uint32(filter), int32(FilterTypeParam), int32(typ))
}

// BindFilterToSource reroutes the direct (dry) output of source through
// filter. NullFilter removes the filter.
func (e *Extension) BindFilterToSource(source al.Source, filter Filter) {
	e.loader.Sourcei(source, SourceDirectFilter, int32(filter))
}

// BindEffectToAuxiliarySlot attaches effect to slot. The slot takes a copy of
// the effect's parameters; later changes to the effect need to be bound again.
// NullEffect empties the slot.
func (e *Extension) BindEffectToAuxiliarySlot(slot AuxiliaryEffectSlot, effect Effect) {
	e.AuxiliaryEffectSloti(slot, SlotEffect, int32(effect))
}

// BindSourceToAuxiliarySlot routes the output of source into slot through the
// source's send number send. The number of sends per source is limited by the
// context's MaxAuxiliarySends attribute. filter is applied between the source
// and the slot; NullFilter applies none.
func (e *Extension) BindSourceToAuxiliarySlot(source al.Source, slot AuxiliaryEffectSlot, send int, filter Filter) {
	e.loader.Source3i(source, SourceAuxiliarySendFilter, int32(slot), int32(send), int32(filter))
}
