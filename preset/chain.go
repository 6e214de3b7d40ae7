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
	"fmt"

	"github.com/ebitengine/efx"
	"github.com/ebitengine/efx/al"
)

// Chain is the set of objects a preset created for one source.
type Chain struct {
	Source       al.Source
	Send         int
	Effect       efx.Effect
	Slot         efx.AuxiliaryEffectSlot
	DirectFilter efx.Filter
	SendFilter   efx.Filter
}

// Apply creates the preset's objects and routes source through them using
// the given auxiliary send. If any native call fails, the objects created so
// far are released and the error is returned.
func (p *Preset) Apply(ext *efx.Extension, source al.Source, send int) (*Chain, error) {
	effect, err := p.Effect.resolve()
	if err != nil {
		return nil, err
	}
	var direct, sendFilter *resolvedFilter
	if p.DirectFilter != nil {
		if direct, err = p.DirectFilter.resolve(); err != nil {
			return nil, fmt.Errorf("preset: direct_filter: %w", err)
		}
	}
	if p.SendFilter != nil {
		if sendFilter, err = p.SendFilter.resolve(); err != nil {
			return nil, fmt.Errorf("preset: send_filter: %w", err)
		}
	}

	// Drop stale errors so that failures below are attributed to this chain.
	_ = ext.Err()

	c := &Chain{Source: source, Send: send}
	c.Effect = ext.GenEffect()
	ext.BindEffect(c.Effect, effect.typ)
	for _, v := range effect.values {
		switch v.param.kind {
		case kindInt:
			ext.Effecti(c.Effect, efx.EffectParami(v.param.id), v.i)
		case kindFloat:
			ext.Effectf(c.Effect, efx.EffectParamf(v.param.id), v.f)
		case kindVector:
			ext.Effect3f(c.Effect, efx.EffectParam3f(v.param.id), v.v)
		}
	}
	if err := ext.Err(); err != nil {
		c.Release(ext)
		return nil, fmt.Errorf("preset: %s: effect: %w", p.Name, err)
	}

	c.Slot = ext.GenAuxiliaryEffectSlot()
	if p.Slot.Gain != nil {
		ext.AuxiliaryEffectSlotf(c.Slot, efx.SlotGain, *p.Slot.Gain)
	}
	if p.Slot.SendAuto != nil {
		var v int32
		if *p.Slot.SendAuto {
			v = 1
		}
		ext.AuxiliaryEffectSloti(c.Slot, efx.SlotAuxiliarySendAuto, v)
	}
	ext.BindEffectToAuxiliarySlot(c.Slot, c.Effect)

	if direct != nil {
		c.DirectFilter = newFilter(ext, direct)
		ext.BindFilterToSource(source, c.DirectFilter)
	}
	if sendFilter != nil {
		c.SendFilter = newFilter(ext, sendFilter)
	}
	ext.BindSourceToAuxiliarySlot(source, c.Slot, send, c.SendFilter)
	if err := ext.Err(); err != nil {
		c.Release(ext)
		return nil, fmt.Errorf("preset: %s: routing: %w", p.Name, err)
	}
	return c, nil
}

func newFilter(ext *efx.Extension, r *resolvedFilter) efx.Filter {
	f := ext.GenFilter()
	ext.BindFilter(f, r.typ)
	for _, v := range r.values {
		ext.Filterf(f, v.param, v.value)
	}
	return f
}

// Release detaches the chain from its source and deletes its objects.
func (c *Chain) Release(ext *efx.Extension) error {
	if c.Slot != efx.NullSlot {
		ext.BindSourceToAuxiliarySlot(c.Source, efx.NullSlot, c.Send, efx.NullFilter)
		ext.BindEffectToAuxiliarySlot(c.Slot, efx.NullEffect)
		ext.DeleteAuxiliaryEffectSlots(c.Slot)
		c.Slot = efx.NullSlot
	}
	if c.DirectFilter != efx.NullFilter {
		ext.BindFilterToSource(c.Source, efx.NullFilter)
	}
	var filters []efx.Filter
	for _, f := range []efx.Filter{c.DirectFilter, c.SendFilter} {
		if f != efx.NullFilter {
			filters = append(filters, f)
		}
	}
	ext.DeleteFilters(filters...)
	c.DirectFilter, c.SendFilter = efx.NullFilter, efx.NullFilter
	if c.Effect != efx.NullEffect {
		ext.DeleteEffects(c.Effect)
		c.Effect = efx.NullEffect
	}
	return ext.Err()
}
