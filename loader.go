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

// nativeLoader resolves entry points with alGetProcAddress on the OpenAL
// library loaded by package al.
type nativeLoader struct{}

func (nativeLoader) IsExtensionPresent(name string) bool {
	c := al.CurrentContext()
	if c == nil {
		return false
	}
	return c.Device().IsExtensionPresent(name)
}

func (nativeLoader) Load(fptr any, name string) error {
	if !al.BindProc(fptr, name) {
		return ErrSymbolNotFound
	}
	return nil
}

func (nativeLoader) Sourcei(source al.Source, param int32, value int32) {
	source.Seti(param, value)
}

func (nativeLoader) Source3i(source al.Source, param int32, v1, v2, v3 int32) {
	source.Set3i(param, v1, v2, v3)
}

func (nativeLoader) Err() error {
	return al.Err()
}
