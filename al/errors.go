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

package al

import (
	"errors"
	"fmt"
)

const (
	noError = 0

	alInvalidName      = 0xA001
	alInvalidEnum      = 0xA002
	alInvalidValue     = 0xA003
	alInvalidOperation = 0xA004
	alOutOfMemory      = 0xA005

	alcInvalidDevice  = 0xA001
	alcInvalidContext = 0xA002
	alcInvalidEnum    = 0xA003
	alcInvalidValue   = 0xA004
	alcOutOfMemory    = 0xA005
)

// Errors reported by the context (alGetError).
var (
	ErrInvalidName      = errors.New("OpenAL error: invalid name")
	ErrInvalidEnum      = errors.New("OpenAL error: invalid enum")
	ErrInvalidValue     = errors.New("OpenAL error: invalid value")
	ErrInvalidOperation = errors.New("OpenAL error: invalid operation")
	ErrOutOfMemory      = errors.New("OpenAL error: out of memory")
)

// Errors reported by a device (alcGetError).
var (
	ErrInvalidDevice  = errors.New("OpenAL error: invalid device")
	ErrInvalidContext = errors.New("OpenAL error: invalid context")
)

// Error is an OpenAL error code without a dedicated sentinel.
type Error int32

func (e Error) Error() string {
	return fmt.Sprintf("OpenAL error: code %d", int32(e))
}

func alError(code int32) error {
	switch code {
	case noError:
		return nil
	case alInvalidName:
		return ErrInvalidName
	case alInvalidEnum:
		return ErrInvalidEnum
	case alInvalidValue:
		return ErrInvalidValue
	case alInvalidOperation:
		return ErrInvalidOperation
	case alOutOfMemory:
		return ErrOutOfMemory
	default:
		return Error(code)
	}
}

func alcError(code int32) error {
	switch code {
	case noError:
		return nil
	case alcInvalidDevice:
		return ErrInvalidDevice
	case alcInvalidContext:
		return ErrInvalidContext
	case alcInvalidEnum:
		return ErrInvalidEnum
	case alcInvalidValue:
		return ErrInvalidValue
	case alcOutOfMemory:
		return ErrOutOfMemory
	default:
		return Error(code)
	}
}
