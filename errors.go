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

import "errors"

var (
	// ErrNotSupported is returned by New when the current device does not
	// advertise ALC_EXT_EFX.
	ErrNotSupported = errors.New("efx: ALC_EXT_EFX is unknown to the device")

	// ErrNoContext is returned by New when no OpenAL context is current.
	ErrNoContext = errors.New("efx: no current OpenAL context")

	// ErrSymbolNotFound is wrapped by the error New returns when an entry
	// point of the extension cannot be resolved.
	ErrSymbolNotFound = errors.New("efx: symbol not found")
)
