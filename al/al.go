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

// Package al loads the OpenAL shared library at runtime and exposes the part of
// the core AL and ALC API that the effects extension needs.
//
// No cgo is involved. The library is opened with purego and every entry point
// is resolved when Load is called. Load must succeed before sources, buffers
// or devices are used; GetProcAddress, CurrentContext, OpenDevice and Err
// report the missing library instead of panicking and may run concurrently
// with Load. Load fails on platforms other than Linux, FreeBSD, macOS and
// Windows.
package al

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"
)

// LibraryEnv names the environment variable that overrides the OpenAL library path.
const LibraryEnv = "OPENAL_LIBRARY"

// ErrNotLoaded is returned when a function is used before Load succeeded.
var ErrNotLoaded = errors.New("al: OpenAL library is not loaded")

// funcs holds the core entry points. Each field is filled by purego from the
// symbol named in its al tag.
type funcs struct {
	OpenDevice         func(name *byte) uintptr                                `al:"alcOpenDevice"`
	CloseDevice        func(device uintptr) uint8                              `al:"alcCloseDevice"`
	CreateContext      func(device uintptr, attrs *int32) uintptr              `al:"alcCreateContext"`
	MakeContextCurrent func(context uintptr) uint8                             `al:"alcMakeContextCurrent"`
	DestroyContext     func(context uintptr)                                   `al:"alcDestroyContext"`
	GetCurrentContext  func() uintptr                                          `al:"alcGetCurrentContext"`
	GetContextsDevice  func(context uintptr) uintptr                           `al:"alcGetContextsDevice"`
	ALCGetError        func(device uintptr) int32                              `al:"alcGetError"`
	ALCIsExtension     func(device uintptr, name *byte) uint8                  `al:"alcIsExtensionPresent"`
	GetIntegerv        func(device uintptr, param int32, size int32, v *int32) `al:"alcGetIntegerv"`

	GetError       func() int32             `al:"alGetError"`
	GetProcAddress func(name *byte) uintptr `al:"alGetProcAddress"`
	IsExtension    func(name *byte) uint8   `al:"alIsExtensionPresent"`
	GetEnumValue   func(name *byte) int32   `al:"alGetEnumValue"`

	GenSources    func(n int32, sources *uint32)                     `al:"alGenSources"`
	DeleteSources func(n int32, sources *uint32)                     `al:"alDeleteSources"`
	Sourcei       func(source uint32, param int32, v int32)          `al:"alSourcei"`
	Source3i      func(source uint32, param int32, v1, v2, v3 int32) `al:"alSource3i"`
	Sourcef       func(source uint32, param int32, v float32)        `al:"alSourcef"`
	GetSourcei    func(source uint32, param int32, v *int32)         `al:"alGetSourcei"`
	SourcePlay    func(source uint32)                                `al:"alSourcePlay"`
	SourceStop    func(source uint32)                                `al:"alSourceStop"`

	GenBuffers    func(n int32, buffers *uint32)                                           `al:"alGenBuffers"`
	DeleteBuffers func(n int32, buffers *uint32)                                           `al:"alDeleteBuffers"`
	BufferData    func(buffer uint32, format int32, data unsafe.Pointer, size, freq int32) `al:"alBufferData"`
}

var (
	loadOnce sync.Once
	loadErr  error
	lib      atomic.Pointer[funcs]
)

// Load opens the OpenAL library and resolves the core entry points.
// It is safe to call Load more than once; only the first call does any work.
func Load() error {
	loadOnce.Do(func() {
		var f *funcs
		f, loadErr = loadLibrary(libraryCandidates(runtime.GOOS, os.Getenv(LibraryEnv)))
		if f != nil {
			lib.Store(f)
		}
	})
	return loadErr
}

func loadLibrary(paths []string) (*funcs, error) {
	var lastErr error
	for _, path := range paths {
		handle, err := openLibrary(path)
		if err != nil {
			lastErr = err
			continue
		}
		f := &funcs{}
		if err := bind(f, handle); err != nil {
			return nil, fmt.Errorf("al: %s: %w", path, err)
		}
		return f, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("al: failed to open the OpenAL library: %w", lastErr)
	}
	return nil, errors.New("al: no OpenAL library candidates")
}

func bind(f *funcs, handle uintptr) error {
	t := reflect.TypeOf(f).Elem()
	v := reflect.ValueOf(f).Elem()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("al")
		if name == "" {
			continue
		}
		sym, err := symbol(handle, name)
		if err != nil {
			return err
		}
		if sym == 0 {
			return fmt.Errorf("symbol %s not found", name)
		}
		registerFunc(v.Field(i).Addr().Interface(), sym)
	}
	return nil
}

// libraryCandidates returns the paths tried by Load, in order.
func libraryCandidates(goos, override string) []string {
	var paths []string
	if override != "" {
		paths = append(paths, override)
	}
	switch goos {
	case "darwin", "ios":
		paths = append(paths,
			"/System/Library/Frameworks/OpenAL.framework/OpenAL",
			"libopenal.1.dylib",
			"libopenal.dylib")
	case "windows":
		paths = append(paths, "OpenAL32.dll", "soft_oal.dll")
	case "linux", "freebsd":
		paths = append(paths, "libopenal.so.1", "libopenal.so")
	}
	return paths
}

func loaded() *funcs {
	f := lib.Load()
	if f == nil {
		panic(ErrNotLoaded)
	}
	return f
}

// cString returns a NUL-terminated copy of s. The empty string maps to nil.
func cString(s string) *byte {
	if s == "" {
		return nil
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	return &b[0]
}

// GetProcAddress returns the address of the named AL function, or 0 if the
// implementation does not know it. Extension entry points must be looked up
// this way because they are not guaranteed to be exported by the library.
func GetProcAddress(name string) uintptr {
	f := lib.Load()
	if f == nil {
		return 0
	}
	return f.GetProcAddress(cString(name))
}

// BindProc looks up the named AL function with GetProcAddress and stores a Go
// function that calls it in fptr, which must point to a func variable. It
// reports whether the function was found.
func BindProc(fptr any, name string) bool {
	addr := GetProcAddress(name)
	if addr == 0 {
		return false
	}
	registerFunc(fptr, addr)
	return true
}

// GetEnumValue returns the value of the named AL enum, or 0 if it is unknown.
func GetEnumValue(name string) int32 {
	return loaded().GetEnumValue(cString(name))
}

// IsExtensionPresent reports whether the AL extension ext is supported by the
// current context.
func IsExtensionPresent(ext string) bool {
	return loaded().IsExtension(cString(ext)) != 0
}

// Err returns and clears the error state of the current context.
func Err() error {
	f := lib.Load()
	if f == nil {
		return ErrNotLoaded
	}
	return alError(f.GetError())
}
