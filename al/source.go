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
	"fmt"
	"unsafe"
)

// Source parameters.
const (
	Looping      = 0x1007
	SourceBuffer = 0x1009
	Gain         = 0x100A
	SourceState  = 0x1010

	BuffersQueued    = 0x1015
	BuffersProcessed = 0x1016
)

// Source states returned by (Source).State.
const (
	Initial = 0x1011
	Playing = 0x1012
	Paused  = 0x1013
	Stopped = 0x1014
)

// Format is a PCM buffer format.
type Format int32

const (
	FormatMono8    Format = 0x1100
	FormatMono16   Format = 0x1101
	FormatStereo8  Format = 0x1102
	FormatStereo16 Format = 0x1103
)

// FormatFor returns the buffer format for the given channel count and sample width.
func FormatFor(channels, bytesPerSample int) (Format, error) {
	switch {
	case channels == 1 && bytesPerSample == 1:
		return FormatMono8, nil
	case channels == 1 && bytesPerSample == 2:
		return FormatMono16, nil
	case channels == 2 && bytesPerSample == 1:
		return FormatStereo8, nil
	case channels == 2 && bytesPerSample == 2:
		return FormatStereo16, nil
	}
	return 0, fmt.Errorf("al: invalid channel count (%d) or bytes per sample (%d)", channels, bytesPerSample)
}

// Source is the name of an OpenAL source.
type Source uint32

// GenSources generates n sources.
func GenSources(n int) []Source {
	if n <= 0 {
		return nil
	}
	s := make([]Source, n)
	loaded().GenSources(int32(n), (*uint32)(unsafe.Pointer(&s[0])))
	return s
}

// DeleteSources deletes the given sources.
func DeleteSources(sources ...Source) {
	if len(sources) == 0 {
		return
	}
	loaded().DeleteSources(int32(len(sources)), (*uint32)(unsafe.Pointer(&sources[0])))
}

// Seti sets an integer source parameter.
func (s Source) Seti(param int32, v int32) {
	loaded().Sourcei(uint32(s), param, v)
}

// Set3i sets a three-integer source parameter.
func (s Source) Set3i(param int32, v1, v2, v3 int32) {
	loaded().Source3i(uint32(s), param, v1, v2, v3)
}

// Setf sets a float source parameter.
func (s Source) Setf(param int32, v float32) {
	loaded().Sourcef(uint32(s), param, v)
}

// Geti returns an integer source parameter.
func (s Source) Geti(param int32) int32 {
	var v int32
	loaded().GetSourcei(uint32(s), param, &v)
	return v
}

// SetBuffer attaches a static buffer to the source.
func (s Source) SetBuffer(b Buffer) {
	s.Seti(SourceBuffer, int32(b))
}

// State returns one of Initial, Playing, Paused or Stopped.
func (s Source) State() int32 {
	return s.Geti(SourceState)
}

func (s Source) Play() {
	loaded().SourcePlay(uint32(s))
}

func (s Source) Stop() {
	loaded().SourceStop(uint32(s))
}

// Buffer is the name of an OpenAL buffer.
type Buffer uint32

// GenBuffers generates n buffers.
func GenBuffers(n int) []Buffer {
	if n <= 0 {
		return nil
	}
	b := make([]Buffer, n)
	loaded().GenBuffers(int32(n), (*uint32)(unsafe.Pointer(&b[0])))
	return b
}

// DeleteBuffers deletes the given buffers.
func DeleteBuffers(buffers ...Buffer) {
	if len(buffers) == 0 {
		return
	}
	loaded().DeleteBuffers(int32(len(buffers)), (*uint32)(unsafe.Pointer(&buffers[0])))
}

// Data uploads PCM data to the buffer.
func (b Buffer) Data(format Format, data []byte, freq int) {
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	loaded().BufferData(uint32(b), int32(format), p, int32(len(data)), int32(freq))
}
