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

//go:build !windows && (android || faketime || !(darwin || freebsd || linux))

package al

import (
	"fmt"
	"runtime"
)

func openLibrary(path string) (uintptr, error) {
	return 0, fmt.Errorf("al: loading %s: shared libraries are not supported on %s", path, runtime.GOOS)
}

func symbol(handle uintptr, name string) (uintptr, error) {
	return 0, fmt.Errorf("al: symbol %s: shared libraries are not supported on %s", name, runtime.GOOS)
}

// registerFunc is unreachable: openLibrary always fails, so no address exists.
func registerFunc(fptr any, addr uintptr) {
	panic("al: registerFunc called on " + runtime.GOOS)
}
