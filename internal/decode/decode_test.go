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

package decode_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebitengine/efx/internal/decode"
)

func writeWAV(t *testing.T, bitDepth, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	enc := wav.NewEncoder(f, 22050, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: 22050},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	return path
}

func samples(pcm []byte) []int16 {
	s := make([]int16, len(pcm)/2)
	for i := range s {
		s[i] = int16(binary.LittleEndian.Uint16(pcm[i*2:]))
	}
	return s
}

func TestWAV16(t *testing.T) {
	path := writeWAV(t, 16, 2, []int{0, 1000, -1000, 32767, -32768, 5})

	c, err := decode.File(path)
	require.NoError(t, err)
	assert.Equal(t, 22050, c.SampleRate)
	assert.Equal(t, 2, c.Channels)
	assert.Equal(t, []int16{0, 1000, -1000, 32767, -32768, 5}, samples(c.PCM))
}

func TestWAV24(t *testing.T) {
	path := writeWAV(t, 24, 1, []int{0, 256, -256, 8388607})

	c, err := decode.File(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Channels)
	assert.Equal(t, []int16{0, 1, -1, 32767}, samples(c.PCM))
}

func TestWAV8(t *testing.T) {
	// Unsigned 8-bit samples are centered on 128.
	path := writeWAV(t, 8, 1, []int{128, 255, 0, 192})

	c, err := decode.File(path)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Channels)
	assert.Equal(t, []int16{0, 32512, -32768, 16384}, samples(c.PCM))
}

func TestMP3(t *testing.T) {
	// 24 MPEG-2 layer III frames of mono speech at 22.05 kHz.
	c, err := decode.File(filepath.Join("testdata", "speech.mp3"))
	require.NoError(t, err)
	assert.Equal(t, 22050, c.SampleRate)
	assert.Equal(t, 2, c.Channels)
	assert.Len(t, c.PCM, 24*576*2*decode.BytesPerSample)

	s := samples(c.PCM)
	nonzero := false
	for i := 0; i < len(s); i += 2 {
		// A mono stream comes out on both channels.
		require.Equal(t, s[i], s[i+1])
		if s[i] != 0 {
			nonzero = true
		}
	}
	assert.True(t, nonzero)
}

func TestVorbis(t *testing.T) {
	// One second of mono audio at 44.1 kHz.
	c, err := decode.File(filepath.Join("testdata", "mono.ogg"))
	require.NoError(t, err)
	assert.Equal(t, 44100, c.SampleRate)
	assert.Equal(t, 1, c.Channels)
	assert.Len(t, c.PCM, 44100*decode.BytesPerSample)
	assert.Equal(t, time.Second, c.Duration())

	f, err := os.Open(filepath.Join("testdata", "mono.ogg"))
	require.NoError(t, err)
	defer f.Close()
	c2, err := decode.Decode(f, "oga")
	require.NoError(t, err)
	assert.Equal(t, c.PCM, c2.PCM)
}

func TestInvalidWAV(t *testing.T) {
	_, err := decode.Decode(bytes.NewReader([]byte("definitely not a RIFF file")), "wav")
	assert.Error(t, err)
}

func TestInvalidVorbis(t *testing.T) {
	_, err := decode.Decode(bytes.NewReader([]byte("definitely not an Ogg stream")), "ogg")
	assert.Error(t, err)
}

func TestUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.flac")
	require.NoError(t, os.WriteFile(path, []byte("fLaC"), 0o644))

	_, err := decode.File(path)
	assert.ErrorIs(t, err, decode.ErrUnsupportedFormat)
}

func TestMissingFile(t *testing.T) {
	_, err := decode.File(filepath.Join(t.TempDir(), "missing.wav"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTone(t *testing.T) {
	c, err := decode.Tone(441, 100*time.Millisecond, 44100, 2)
	require.NoError(t, err)
	assert.Equal(t, 44100, c.SampleRate)
	assert.Equal(t, 2, c.Channels)
	assert.Len(t, c.PCM, 4410*2*decode.BytesPerSample)
	assert.Equal(t, 100*time.Millisecond, c.Duration())

	const peak = 9831 // 0.3 of full scale, rounded up

	s := samples(c.PCM)
	assert.Zero(t, s[0])
	for i := 0; i < len(s); i += 2 {
		// Both channels carry the same signal.
		require.Equal(t, s[i], s[i+1])
		require.LessOrEqual(t, s[i], int16(peak))
		require.GreaterOrEqual(t, s[i], int16(-peak))
	}
	// A quarter period in, the wave is at its peak.
	assert.InDelta(t, 0.3*32767, float64(s[25*2]), 2)
}

func TestToneInvalidLayout(t *testing.T) {
	for _, tc := range []struct {
		name       string
		sampleRate int
		channels   int
		duration   time.Duration
	}{
		{"negative channels", 44100, -1, time.Second},
		{"zero channels", 44100, 0, time.Second},
		{"zero sample rate", 0, 2, time.Second},
		{"negative duration", 44100, 2, -time.Second},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c, err := decode.Tone(440, tc.duration, tc.sampleRate, tc.channels)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestClipDurationEmpty(t *testing.T) {
	assert.Zero(t, (&decode.Clip{}).Duration())
}
