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

package preset_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebitengine/efx"
	"github.com/ebitengine/efx/al"
	"github.com/ebitengine/efx/internal/efxtest"
	"github.com/ebitengine/efx/preset"
)

func newExtension(t *testing.T) (*efx.Extension, *efxtest.Native) {
	t.Helper()
	n := efxtest.New()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	ext, err := efx.New(efx.WithLoader(n), efx.WithLogger(logger))
	require.NoError(t, err)
	return ext, n
}

func TestLoad(t *testing.T) {
	p, err := preset.Load(filepath.Join("testdata", "cathedral.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cathedral", p.Name)
	assert.Equal(t, "eaxreverb", p.Effect.Type)
	require.NotNil(t, p.Slot.Gain)
	assert.Equal(t, float32(0.8), *p.Slot.Gain)
	require.NotNil(t, p.Slot.SendAuto)
	assert.False(t, *p.Slot.SendAuto)
	require.NotNil(t, p.DirectFilter)
	assert.Equal(t, float32(0.6), p.DirectFilter.Params["gainhf"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := preset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		Name string
		YAML string
	}{
		{"empty", ""},
		{"unknown field", "name: x\neffect: {type: echo}\nvolume: 3\n"},
		{"unknown effect", "effect: {type: phaser}\n"},
		{"unknown parameter", "effect: {type: echo, params: {decay_time: 1}}\n"},
		{"float for int", "effect: {type: chorus, params: {waveform: 1.5}}\n"},
		{"int above int32", "effect: {type: chorus, params: {waveform: 4294967297}}\n"},
		{"int below int32", "effect: {type: chorus, params: {waveform: -2147483649}}\n"},
		{"float above int32", "effect: {type: chorus, params: {waveform: 3.0e10}}\n"},
		{"string for float", "effect: {type: echo, params: {delay: fast}}\n"},
		{"short vector", "effect: {type: eaxreverb, params: {reflections_pan: [0, 1]}}\n"},
		{"unknown filter", "effect: {type: echo}\ndirect_filter: {type: notch}\n"},
		{"unknown filter parameter", "effect: {type: echo}\nsend_filter: {type: lowpass, params: {gainlf: 1}}\n"},
		{"slot gain", "effect: {type: echo}\nslot: {gain: 2}\n"},
	}
	for _, c := range cases {
		_, err := preset.Parse([]byte(c.YAML))
		assert.Error(t, err, c.Name)
	}
}

func TestApply(t *testing.T) {
	ext, n := newExtension(t)
	p, err := preset.Load(filepath.Join("testdata", "cathedral.yaml"))
	require.NoError(t, err)

	const source = al.Source(7)
	c, err := p.Apply(ext, source, 1)
	require.NoError(t, err)

	effect := n.Effect(c.Effect)
	require.NotNil(t, effect)
	assert.Equal(t, int32(efx.EffectEAXReverb), effect.Ints[int32(efx.EffectTypeParam)])
	assert.Equal(t, float32(5.5), effect.Floats[int32(efx.EAXReverbDecayTime)])
	assert.Equal(t, float32(1), effect.Floats[int32(efx.EAXReverbGain)])
	assert.Equal(t, int32(1), effect.Ints[int32(efx.EAXReverbDecayHFLimit)])
	assert.Equal(t, [3]float32{0, 0, -1}, effect.Vectors[int32(efx.EAXReverbLateReverbPan)])

	slot := n.Slot(c.Slot)
	require.NotNil(t, slot)
	assert.Equal(t, float32(0.8), slot.Floats[int32(efx.SlotGain)])
	assert.Equal(t, int32(0), slot.Ints[int32(efx.SlotAuxiliarySendAuto)])
	assert.Equal(t, int32(c.Effect), slot.Ints[int32(efx.SlotEffect)])

	direct := n.Filter(c.DirectFilter)
	require.NotNil(t, direct)
	assert.Equal(t, int32(efx.FilterLowpass), direct.Ints[int32(efx.FilterTypeParam)])
	assert.Equal(t, float32(0.6), direct.Floats[int32(efx.LowpassGainHF)])

	send := n.Filter(c.SendFilter)
	require.NotNil(t, send)
	assert.Equal(t, int32(efx.FilterHighpass), send.Ints[int32(efx.FilterTypeParam)])

	routing := n.Source(source)
	assert.Equal(t, int32(c.DirectFilter), routing.DirectFilter)
	assert.Equal(t, efxtest.Send{Slot: int32(c.Slot), Filter: int32(c.SendFilter)}, routing.Sends[1])

	require.NoError(t, c.Release(ext))
	effects, filters, slots := n.Live()
	assert.Zero(t, effects)
	assert.Zero(t, filters)
	assert.Zero(t, slots)
	routing = n.Source(source)
	assert.Zero(t, routing.DirectFilter)
	assert.Equal(t, efxtest.Send{}, routing.Sends[1])
}

func TestApplyWithoutFilters(t *testing.T) {
	ext, n := newExtension(t)
	p, err := preset.Parse([]byte("name: slapback\neffect: {type: echo, params: {delay: 0.1, feedback: 0.2}}\n"))
	require.NoError(t, err)

	c, err := p.Apply(ext, al.Source(3), 0)
	require.NoError(t, err)
	assert.Equal(t, efx.NullFilter, c.DirectFilter)
	assert.Equal(t, efx.NullFilter, c.SendFilter)
	assert.Equal(t, float32(0.1), n.Effect(c.Effect).Floats[int32(efx.EchoDelay)])
	assert.Equal(t, 0, n.Calls("alSourcei"))
	assert.Equal(t, efxtest.Send{Slot: int32(c.Slot)}, n.Source(al.Source(3)).Sends[0])
}

func TestApplyReleasesOnFailure(t *testing.T) {
	ext, n := newExtension(t)
	n.Unsupported[efx.EffectEAXReverb] = true
	p, err := preset.Load(filepath.Join("testdata", "cathedral.yaml"))
	require.NoError(t, err)

	_, err = p.Apply(ext, al.Source(1), 0)
	assert.ErrorIs(t, err, al.ErrInvalidValue)
	effects, filters, slots := n.Live()
	assert.Zero(t, effects)
	assert.Zero(t, filters)
	assert.Zero(t, slots)
}
