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

package efx_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ebitengine/efx"
	"github.com/ebitengine/efx/al"
	"github.com/ebitengine/efx/internal/efxtest"
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

func TestNewWithoutExtension(t *testing.T) {
	n := efxtest.New()
	n.Extensions = map[string]bool{}
	logger, hook := test.NewNullLogger()

	ext, err := efx.New(efx.WithLoader(n), efx.WithLogger(logger))
	assert.Nil(t, ext)
	assert.ErrorIs(t, err, efx.ErrNotSupported)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, efx.ExtensionName, hook.LastEntry().Data["extension"])
}

func TestNewMissingSymbol(t *testing.T) {
	cases := []struct {
		Symbol string
		Group  string
	}{
		{"alGenEffects", "effect"},
		{"alGetEffectfv", "effect"},
		{"alIsFilter", "filter"},
		{"alGetFilterf", "filter"},
		{"alAuxiliaryEffectSlotf", "auxiliary effect slot"},
		{"alGetAuxiliaryEffectSloti", "auxiliary effect slot"},
	}
	for _, c := range cases {
		n := efxtest.New()
		n.Missing[c.Symbol] = true
		logger, hook := test.NewNullLogger()

		ext, err := efx.New(efx.WithLoader(n), efx.WithLogger(logger))
		assert.Nil(t, ext, c.Symbol)
		assert.ErrorIs(t, err, efx.ErrSymbolNotFound, c.Symbol)
		assert.ErrorContains(t, err, c.Symbol)
		assert.ErrorContains(t, err, c.Group)
		require.NotNil(t, hook.LastEntry(), c.Symbol)
		assert.Equal(t, c.Group, hook.LastEntry().Data["group"])
	}
}

type failingLoader struct {
	*efxtest.Native
}

var errLoad = errors.New("load failed")

func (failingLoader) Load(fptr any, name string) error {
	return errLoad
}

func TestNewLoaderError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	_, err := efx.New(efx.WithLoader(failingLoader{efxtest.New()}), efx.WithLogger(logger))
	assert.ErrorIs(t, err, errLoad)
	assert.ErrorContains(t, err, "alGenEffects")
}

func TestEffects(t *testing.T) {
	ext, n := newExtension(t)

	effects := ext.GenEffects(3)
	require.Len(t, effects, 3)
	for _, e := range effects {
		assert.True(t, ext.IsEffect(e))
		assert.NotEqual(t, efx.NullEffect, e)
	}
	assert.NoError(t, ext.Err())

	e := ext.GenEffect()
	assert.True(t, ext.IsEffect(e))

	ext.BindEffect(e, efx.EffectChorus)
	assert.Equal(t, int32(efx.EffectChorus), ext.GetEffecti(e, efx.EffectTypeParam))

	ext.Effecti(e, efx.ChorusWaveform, efx.WaveformTriangle)
	ext.Effectf(e, efx.ChorusRate, 1.25)
	assert.Equal(t, int32(efx.WaveformTriangle), ext.GetEffecti(e, efx.ChorusWaveform))
	assert.Equal(t, float32(1.25), ext.GetEffectf(e, efx.ChorusRate))

	ext.BindEffect(e, efx.EffectEAXReverb)
	pan := efx.Vector3{0.5, -0.25, 1}
	ext.Effect3f(e, efx.EAXReverbReflectionsPan, pan)
	assert.Equal(t, pan, ext.GetEffect3f(e, efx.EAXReverbReflectionsPan))
	assert.Equal(t, [3]float32(pan), n.Effect(e).Vectors[int32(efx.EAXReverbReflectionsPan)])
	assert.NoError(t, ext.Err())

	ext.DeleteEffects(append(effects, e)...)
	assert.False(t, ext.IsEffect(e))
	live, _, _ := n.Live()
	assert.Zero(t, live)
	assert.NoError(t, ext.Err())
}

func TestBindEffectResetsParameters(t *testing.T) {
	ext, _ := newExtension(t)

	e := ext.GenEffect()
	ext.BindEffect(e, efx.EffectEcho)
	ext.Effectf(e, efx.EchoDelay, 0.2)
	ext.BindEffect(e, efx.EffectFlanger)
	assert.Zero(t, ext.GetEffectf(e, efx.EchoDelay))
}

func TestZeroLengthCallsStayInGo(t *testing.T) {
	ext, n := newExtension(t)

	assert.Nil(t, ext.GenEffects(0))
	assert.Nil(t, ext.GenFilters(-1))
	assert.Nil(t, ext.GenAuxiliaryEffectSlots(0))
	ext.DeleteEffects()
	ext.DeleteFilters()
	ext.DeleteAuxiliaryEffectSlots()

	for _, name := range []string{
		"alGenEffects", "alGenFilters", "alGenAuxiliaryEffectSlots",
		"alDeleteEffects", "alDeleteFilters", "alDeleteAuxiliaryEffectSlots",
	} {
		assert.Zero(t, n.Calls(name), name)
	}
}

func TestNativeErrorsAreReported(t *testing.T) {
	ext, _ := newExtension(t)

	ext.Effectf(efx.Effect(12345), efx.ReverbGain, 1)
	assert.ErrorIs(t, ext.Err(), al.ErrInvalidName)
	assert.NoError(t, ext.Err())

	ext.DeleteFilters(efx.Filter(777))
	assert.ErrorIs(t, ext.Err(), al.ErrInvalidName)
}

func TestFilters(t *testing.T) {
	ext, n := newExtension(t)

	filters := ext.GenFilters(2)
	require.Len(t, filters, 2)
	f := filters[0]
	assert.True(t, ext.IsFilter(f))
	assert.False(t, ext.IsFilter(efx.NullFilter))

	ext.BindFilter(f, efx.FilterLowpass)
	assert.Equal(t, int32(efx.FilterLowpass), ext.GetFilteri(f, efx.FilterTypeParam))
	ext.Filterf(f, efx.LowpassGainHF, 0.3)
	assert.Equal(t, float32(0.3), ext.GetFilterf(f, efx.LowpassGainHF))
	ext.Filteri(f, efx.FilterTypeParam, int32(efx.FilterBandpass))
	assert.Equal(t, int32(efx.FilterBandpass), n.Filter(f).Ints[int32(efx.FilterTypeParam)])
	assert.Zero(t, ext.GetFilterf(f, efx.LowpassGainHF))

	g := ext.GenFilter()
	assert.True(t, ext.IsFilter(g))
	ext.DeleteFilters(append(filters, g)...)
	assert.False(t, ext.IsFilter(f))
	assert.NoError(t, ext.Err())
}

func TestAuxiliaryEffectSlots(t *testing.T) {
	ext, n := newExtension(t)

	slots := ext.GenAuxiliaryEffectSlots(4)
	require.Len(t, slots, 4)
	s := ext.GenAuxiliaryEffectSlot()
	assert.True(t, ext.IsAuxiliaryEffectSlot(s))

	ext.AuxiliaryEffectSlotf(s, efx.SlotGain, 0.75)
	ext.AuxiliaryEffectSloti(s, efx.SlotAuxiliarySendAuto, 0)
	assert.Equal(t, float32(0.75), ext.GetAuxiliaryEffectSlotf(s, efx.SlotGain))
	assert.Zero(t, ext.GetAuxiliaryEffectSloti(s, efx.SlotAuxiliarySendAuto))

	e := ext.GenEffect()
	ext.BindEffect(e, efx.EffectReverb)
	ext.BindEffectToAuxiliarySlot(s, e)
	assert.Equal(t, int32(e), ext.GetAuxiliaryEffectSloti(s, efx.SlotEffect))
	assert.Equal(t, int32(e), n.Slot(s).Ints[int32(efx.SlotEffect)])
	assert.NoError(t, ext.Err())

	ext.BindEffectToAuxiliarySlot(s, efx.NullEffect)
	assert.Zero(t, ext.GetAuxiliaryEffectSloti(s, efx.SlotEffect))

	ext.BindEffectToAuxiliarySlot(s, efx.Effect(9999))
	assert.ErrorIs(t, ext.Err(), al.ErrInvalidValue)

	ext.DeleteAuxiliaryEffectSlots(append(slots, s)...)
	assert.False(t, ext.IsAuxiliaryEffectSlot(s))
	_, _, live := n.Live()
	assert.Zero(t, live)
}

func TestSourceRouting(t *testing.T) {
	ext, n := newExtension(t)
	const source = al.Source(42)

	f := ext.GenFilter()
	ext.BindFilter(f, efx.FilterLowpass)
	ext.BindFilterToSource(source, f)
	assert.Equal(t, int32(f), n.Source(source).DirectFilter)

	s := ext.GenAuxiliaryEffectSlot()
	ext.BindSourceToAuxiliarySlot(source, s, 1, efx.NullFilter)
	assert.Equal(t, efxtest.Send{Slot: int32(s)}, n.Source(source).Sends[1])

	ext.BindSourceToAuxiliarySlot(source, s, 0, f)
	assert.Equal(t, efxtest.Send{Slot: int32(s), Filter: int32(f)}, n.Source(source).Sends[0])
	assert.NoError(t, ext.Err())

	ext.BindFilterToSource(source, efx.NullFilter)
	assert.Zero(t, n.Source(source).DirectFilter)
	assert.Equal(t, 2, n.Calls("alSourcei"))
	assert.Equal(t, 2, n.Calls("alSource3i"))
}

func TestLoadReverb(t *testing.T) {
	ext, n := newExtension(t)

	e, err := ext.LoadReverb(efx.DefaultReverb)
	require.NoError(t, err)
	o := n.Effect(e)
	require.NotNil(t, o)
	assert.Equal(t, int32(efx.EffectEAXReverb), o.Ints[int32(efx.EffectTypeParam)])
	assert.Equal(t, float32(1.49), o.Floats[int32(efx.EAXReverbDecayTime)])
	assert.Equal(t, float32(5000), o.Floats[int32(efx.EAXReverbHFReference)])
	assert.Equal(t, int32(1), o.Ints[int32(efx.EAXReverbDecayHFLimit)])
	assert.Contains(t, o.Vectors, int32(efx.EAXReverbLateReverbPan))
}

func TestLoadReverbFallsBackToStandardReverb(t *testing.T) {
	ext, n := newExtension(t)
	n.Unsupported[efx.EffectEAXReverb] = true

	p := efx.DefaultReverb
	p.DecayTime = 4.5
	p.DecayHFLimit = false
	e, err := ext.LoadReverb(p)
	require.NoError(t, err)
	o := n.Effect(e)
	require.NotNil(t, o)
	assert.Equal(t, int32(efx.EffectReverb), o.Ints[int32(efx.EffectTypeParam)])
	assert.Equal(t, float32(4.5), o.Floats[int32(efx.ReverbDecayTime)])
	assert.Equal(t, int32(0), o.Ints[int32(efx.ReverbDecayHFLimit)])
	assert.Empty(t, o.Vectors)
}

func TestLoadReverbUnsupported(t *testing.T) {
	ext, n := newExtension(t)
	n.Unsupported[efx.EffectEAXReverb] = true
	n.Unsupported[efx.EffectReverb] = true

	_, err := ext.LoadReverb(efx.DefaultReverb)
	assert.ErrorIs(t, err, al.ErrInvalidValue)
	live, _, _ := n.Live()
	assert.Zero(t, live)
}
