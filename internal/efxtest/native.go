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

// Package efxtest provides an in-memory stand-in for the native EFX
// implementation, so the binding can be exercised without an audio device.
package efxtest

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/ebitengine/efx"
	"github.com/ebitengine/efx/al"
)

// Object is the parameter state of a fake effect, filter or slot.
type Object struct {
	Ints    map[int32]int32
	Floats  map[int32]float32
	Vectors map[int32][3]float32
}

func newObject() *Object {
	return &Object{
		Ints:    map[int32]int32{},
		Floats:  map[int32]float32{},
		Vectors: map[int32][3]float32{},
	}
}

// Send is the routing of one auxiliary send of a source.
type Send struct {
	Slot   int32
	Filter int32
}

// Source is the EFX routing state of a fake source.
type Source struct {
	DirectFilter int32
	Sends        map[int32]Send
}

// Native implements efx.Loader on top of Go maps.
type Native struct {
	// Extensions lists the ALC extensions the fake device advertises.
	Extensions map[string]bool

	// Missing lists entry points that cannot be resolved.
	Missing map[string]bool

	// Unsupported lists effect types the fake device rejects with an invalid value error.
	Unsupported map[efx.EffectType]bool

	m       sync.Mutex
	next    uint32
	effects map[uint32]*Object
	filters map[uint32]*Object
	slots   map[uint32]*Object
	sources map[al.Source]*Source
	calls   map[string]int
	err     error
}

// New returns a fake device that advertises ALC_EXT_EFX and resolves every entry point.
func New() *Native {
	return &Native{
		Extensions:  map[string]bool{efx.ExtensionName: true},
		Missing:     map[string]bool{},
		Unsupported: map[efx.EffectType]bool{},
		effects:     map[uint32]*Object{},
		filters:     map[uint32]*Object{},
		slots:       map[uint32]*Object{},
		sources:     map[al.Source]*Source{},
		calls:       map[string]int{},
	}
}

func (n *Native) IsExtensionPresent(name string) bool {
	return n.Extensions[name]
}

// Load stores the fake implementation of name into fptr. Names listed in
// Missing, or unknown to the fake, leave fptr untouched.
func (n *Native) Load(fptr any, name string) error {
	if n.Missing[name] {
		return nil
	}
	fn, ok := n.funcs()[name]
	if !ok {
		return nil
	}
	reflect.ValueOf(fptr).Elem().Set(reflect.ValueOf(fn))
	return nil
}

func (n *Native) Sourcei(source al.Source, param int32, value int32) {
	n.m.Lock()
	defer n.m.Unlock()
	n.calls["alSourcei"]++

	if param != efx.SourceDirectFilter {
		n.setError(al.ErrInvalidEnum)
		return
	}
	if value != 0 && n.filters[uint32(value)] == nil {
		n.setError(al.ErrInvalidValue)
		return
	}
	n.source(source).DirectFilter = value
}

func (n *Native) Source3i(source al.Source, param int32, v1, v2, v3 int32) {
	n.m.Lock()
	defer n.m.Unlock()
	n.calls["alSource3i"]++

	if param != efx.SourceAuxiliarySendFilter {
		n.setError(al.ErrInvalidEnum)
		return
	}
	if (v1 != 0 && n.slots[uint32(v1)] == nil) || (v3 != 0 && n.filters[uint32(v3)] == nil) {
		n.setError(al.ErrInvalidValue)
		return
	}
	n.source(source).Sends[v2] = Send{Slot: v1, Filter: v3}
}

func (n *Native) Err() error {
	n.m.Lock()
	defer n.m.Unlock()
	err := n.err
	n.err = nil
	return err
}

// Effect returns the state of the named effect, or nil.
func (n *Native) Effect(id efx.Effect) *Object {
	n.m.Lock()
	defer n.m.Unlock()
	return n.effects[uint32(id)]
}

// Filter returns the state of the named filter, or nil.
func (n *Native) Filter(id efx.Filter) *Object {
	n.m.Lock()
	defer n.m.Unlock()
	return n.filters[uint32(id)]
}

// Slot returns the state of the named slot, or nil.
func (n *Native) Slot(id efx.AuxiliaryEffectSlot) *Object {
	n.m.Lock()
	defer n.m.Unlock()
	return n.slots[uint32(id)]
}

// Source returns the routing state of source.
func (n *Native) Source(source al.Source) Source {
	n.m.Lock()
	defer n.m.Unlock()
	s := n.source(source)
	sends := make(map[int32]Send, len(s.Sends))
	for k, v := range s.Sends {
		sends[k] = v
	}
	return Source{DirectFilter: s.DirectFilter, Sends: sends}
}

// Calls returns how many times the named entry point was called.
func (n *Native) Calls(name string) int {
	n.m.Lock()
	defer n.m.Unlock()
	return n.calls[name]
}

// Live returns the number of effects, filters and slots that exist.
func (n *Native) Live() (effects, filters, slots int) {
	n.m.Lock()
	defer n.m.Unlock()
	return len(n.effects), len(n.filters), len(n.slots)
}

func (n *Native) source(source al.Source) *Source {
	s, ok := n.sources[source]
	if !ok {
		s = &Source{Sends: map[int32]Send{}}
		n.sources[source] = s
	}
	return s
}

// setError keeps the first error until it is read, as OpenAL does.
func (n *Native) setError(err error) {
	if n.err == nil {
		n.err = err
	}
}

func (n *Native) funcs() map[string]any {
	fs := map[string]any{}
	n.objectFuncs(fs, "Effects", "Effect", &n.effects, int32(efx.EffectTypeParam))
	n.objectFuncs(fs, "Filters", "Filter", &n.filters, int32(efx.FilterTypeParam))
	n.objectFuncs(fs, "AuxiliaryEffectSlots", "AuxiliaryEffectSlot", &n.slots, 0)
	return fs
}

// objectFuncs registers the entry points of one object kind. typeParam is the
// parameter that selects the object's algorithm, or 0 if there is none.
func (n *Native) objectFuncs(fs map[string]any, plural, singular string, objects *map[uint32]*Object, typeParam int32) {
	enter := func(name string) func() {
		n.m.Lock()
		n.calls[name]++
		return n.m.Unlock
	}
	lookup := func(id uint32) *Object {
		o := (*objects)[id]
		if o == nil {
			n.setError(al.ErrInvalidName)
		}
		return o
	}

	fs["alGen"+plural] = func(count int32, ids *uint32) {
		defer enter("alGen" + plural)()
		if count < 0 {
			n.setError(al.ErrInvalidValue)
			return
		}
		s := unsafe.Slice(ids, count)
		for i := range s {
			n.next++
			(*objects)[n.next] = newObject()
			s[i] = n.next
		}
	}
	fs["alDelete"+plural] = func(count int32, ids *uint32) {
		defer enter("alDelete" + plural)()
		s := unsafe.Slice(ids, count)
		for _, id := range s {
			if id != 0 && (*objects)[id] == nil {
				n.setError(al.ErrInvalidName)
				return
			}
		}
		for _, id := range s {
			delete(*objects, id)
		}
	}
	fs["alIs"+singular] = func(id uint32) uint8 {
		defer enter("alIs" + singular)()
		if (*objects)[id] != nil {
			return 1
		}
		return 0
	}

	setter := "al" + singular
	getter := "alGet" + singular
	fs[setter+"i"] = func(id uint32, param int32, value int32) {
		defer enter(setter + "i")()
		o := lookup(id)
		if o == nil {
			return
		}
		if typeParam != 0 && param == typeParam {
			if singular == "Effect" && n.Unsupported[efx.EffectType(value)] {
				n.setError(al.ErrInvalidValue)
				return
			}
			*o = *newObject()
		}
		if singular == "AuxiliaryEffectSlot" && param == int32(efx.SlotEffect) && value != 0 && n.effects[uint32(value)] == nil {
			n.setError(al.ErrInvalidValue)
			return
		}
		o.Ints[param] = value
	}
	fs[setter+"f"] = func(id uint32, param int32, value float32) {
		defer enter(setter + "f")()
		if o := lookup(id); o != nil {
			o.Floats[param] = value
		}
	}
	fs[getter+"i"] = func(id uint32, param int32, value *int32) {
		defer enter(getter + "i")()
		if o := lookup(id); o != nil {
			*value = o.Ints[param]
		}
	}
	fs[getter+"f"] = func(id uint32, param int32, value *float32) {
		defer enter(getter + "f")()
		if o := lookup(id); o != nil {
			*value = o.Floats[param]
		}
	}
	if singular != "Effect" {
		return
	}
	fs[setter+"fv"] = func(id uint32, param int32, values *float32) {
		defer enter(setter + "fv")()
		if o := lookup(id); o != nil {
			o.Vectors[param] = *(*[3]float32)(unsafe.Pointer(values))
		}
	}
	fs[getter+"fv"] = func(id uint32, param int32, values *float32) {
		defer enter(getter + "fv")()
		if o := lookup(id); o != nil {
			*(*[3]float32)(unsafe.Pointer(values)) = o.Vectors[param]
		}
	}
}
