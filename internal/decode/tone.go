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

package decode

import (
	"fmt"
	"math"
	"time"
)

// Tone returns a sine wave of the given frequency, length and layout. The
// amplitude leaves headroom for effects that add gain.
func Tone(freq float64, duration time.Duration, sampleRate, channels int) (*Clip, error) {
	const amplitude = 0.3

	if sampleRate <= 0 {
		return nil, fmt.Errorf("decode: invalid sample rate %d", sampleRate)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("decode: invalid channel count %d", channels)
	}
	if duration < 0 {
		return nil, fmt.Errorf("decode: negative duration %s", duration)
	}

	frames := int(int64(sampleRate) * int64(duration) / int64(time.Second))
	samples := make([]float32, frames*channels)
	p := 2 * math.Pi * freq / float64(sampleRate)
	for i := 0; i < frames; i++ {
		v := float32(amplitude * math.Sin(p*float64(i)))
		for ch := 0; ch < channels; ch++ {
			samples[i*channels+ch] = v
		}
	}
	return &Clip{
		PCM:        floatsToPCM(samples),
		SampleRate: sampleRate,
		Channels:   channels,
	}, nil
}
