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

// Filter is the name of a filter object.
type Filter uint32

// GenFilters generates n filter objects.
func (e *Extension) GenFilters(n int) []Filter {
	if n <= 0 {
		return nil
	}
	filters := make([]Filter, n)
	e.filter.Gen(int32(n), (*uint32)(unsafe.Pointer(&filters[0])))
	return filters
}

// GenFilter generates a single filter object.
func (e *Extension) GenFilter() Filter {
	var filter Filter
	e.filter.Gen(1, (*uint32)(&filter))
	return filter
}

// DeleteFilters deletes the given filter objects.
func (e *Extension) DeleteFilters(filters ...Filter) {
	if len(filters) == 0 {
		return
	}
	e.filter.Delete(int32(len(filters)), (*uint32)(unsafe.Pointer(&filters[0])))
}

// IsFilter reports whether filter names a filter object.
func (e *Extension) IsFilter(filter Filter) bool {
	return e.filter.Is(uint32(filter)) != 0
}

// Filteri sets an integer parameter of a filter.
func (e *Extension) Filteri(filter Filter, param FilterParami, value int32) {
	e.filter.Seti(uint32(filter), int32(param), value)
}

// Filterf sets a float parameter of a filter.
func (e *Extension) Filterf(filter Filter, param FilterParamf, value float32) {
	e.filter.Setf(uint32(filter), int32(param), value)
}

// GetFilteri returns an integer parameter of a filter.
func (e *Extension) GetFilteri(filter Filter, param FilterParami) int32 {
	var v int32
	e.filter.Geti(uint32(filter), int32(param), &v)
	return v
}

// GetFilterf returns a float parameter of a filter.
func (e *Extension) GetFilterf(filter Filter, param FilterParamf) float32 {
	var v float32
	e.filter.Getf(uint32(filter), int32(param), &v)
	return v
}
