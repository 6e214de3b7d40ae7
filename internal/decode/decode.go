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

// Package decode turns audio files into 16-bit PCM clips that can be uploaded
// to an OpenAL buffer.
package decode

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// ErrUnsupportedFormat is returned for files whose extension is not recognized.
var ErrUnsupportedFormat = errors.New("decode: unsupported format")

// Clip is interleaved signed 16-bit little-endian PCM.
type Clip struct {
	PCM        []byte
	SampleRate int
	Channels   int
}

// BytesPerSample is the size of one sample of one channel in a Clip.
const BytesPerSample = 2

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	frames := len(c.PCM) / (BytesPerSample * c.Channels)
	return time.Duration(frames) * time.Second / time.Duration(c.SampleRate)
}

// File decodes the file at path. The format is chosen by the file extension:
// .wav, .mp3, .ogg or .oga.
func File(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("decode: %s: %w", path, err)
	}
	return c, nil
}

// Decode decodes r as the named format ("wav", "mp3", "ogg" or "oga").
func Decode(r io.ReadSeeker, format string) (*Clip, error) {
	switch format {
	case "wav":
		return decodeWAV(r)
	case "mp3":
		return decodeMP3(r)
	case "ogg", "oga":
		return decodeVorbis(r)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

func decodeWAV(r io.ReadSeeker) (*Clip, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid WAV file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, err
	}
	shift := int(d.BitDepth) - 16
	pcm := make([]byte, len(buf.Data)*BytesPerSample)
	for i, v := range buf.Data {
		var s int
		switch {
		case d.BitDepth == 8:
			// 8-bit WAV samples are unsigned.
			s = (v - 128) << 8
		case shift > 0:
			s = v >> shift
		default:
			s = v << -shift
		}
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(s)))
	}
	return &Clip{
		PCM:        pcm,
		SampleRate: int(d.SampleRate),
		Channels:   int(d.NumChans),
	}, nil
}

func decodeMP3(r io.Reader) (*Clip, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, err
	}
	// go-mp3 always produces 16-bit stereo.
	pcm, err := io.ReadAll(d)
	if err != nil {
		return nil, err
	}
	return &Clip{
		PCM:        pcm,
		SampleRate: d.SampleRate(),
		Channels:   2,
	}, nil
}

func decodeVorbis(r io.Reader) (*Clip, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return &Clip{
		PCM:        floatsToPCM(samples),
		SampleRate: format.SampleRate,
		Channels:   format.Channels,
	}, nil
}

func floatsToPCM(samples []float32) []byte {
	pcm := make([]byte, len(samples)*BytesPerSample)
	for i, v := range samples {
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(v*32767)))
	}
	return pcm
}
