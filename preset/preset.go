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

// Package preset describes effect chains in YAML and applies them to a source.
//
// A preset names one effect, the slot that hosts it, and optional filters on
// the source's direct path and on its send into the slot:
//
//	name: cathedral
//	effect:
//	  type: eaxreverb
//	  params:
//	    decay_time: 5.5
//	    late_reverb_pan: [0, 0, -1]
//	slot:
//	  gain: 0.8
//	direct_filter:
//	  type: lowpass
//	  params:
//	    gainhf: 0.6
package preset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/ebitengine/efx"
)

// Preset is a parsed effect chain.
type Preset struct {
	Name         string      `yaml:"name"`
	Effect       EffectSpec  `yaml:"effect"`
	Slot         SlotSpec    `yaml:"slot"`
	DirectFilter *FilterSpec `yaml:"direct_filter"`
	SendFilter   *FilterSpec `yaml:"send_filter"`
}

// EffectSpec is an effect type and its parameters by name. Integer parameters
// take integers or booleans, float parameters take numbers and vector
// parameters take a list of three numbers.
type EffectSpec struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params"`
}

// FilterSpec is a filter type and its parameters by name.
type FilterSpec struct {
	Type   string             `yaml:"type"`
	Params map[string]float32 `yaml:"params"`
}

// SlotSpec holds the auxiliary effect slot settings. Unset fields keep the
// slot's defaults.
type SlotSpec struct {
	Gain     *float32 `yaml:"gain"`
	SendAuto *bool    `yaml:"send_auto"`
}

// Load reads a preset from a YAML file.
func Load(path string) (*Preset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("preset: %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a preset and checks that every type and parameter name is known.
func Parse(b []byte) (*Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var p Preset
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("preset: empty document")
		}
		return nil, fmt.Errorf("preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the preset without touching OpenAL.
func (p *Preset) Validate() error {
	if _, err := p.Effect.resolve(); err != nil {
		return err
	}
	if p.Slot.Gain != nil && (*p.Slot.Gain < 0 || *p.Slot.Gain > 1) {
		return fmt.Errorf("preset: slot gain %v is out of range [0, 1]", *p.Slot.Gain)
	}
	if p.DirectFilter != nil {
		if _, err := p.DirectFilter.resolve(); err != nil {
			return fmt.Errorf("preset: direct_filter: %w", err)
		}
	}
	if p.SendFilter != nil {
		if _, err := p.SendFilter.resolve(); err != nil {
			return fmt.Errorf("preset: send_filter: %w", err)
		}
	}
	return nil
}

type effectValue struct {
	param param
	i     int32
	f     float32
	v     efx.Vector3
}

type resolvedEffect struct {
	typ    efx.EffectType
	values []effectValue
}

func (s *EffectSpec) resolve() (*resolvedEffect, error) {
	typ, ok := effectTypes[s.Type]
	if !ok {
		return nil, fmt.Errorf("preset: unknown effect type %q", s.Type)
	}
	known := effectParams[typ]

	// Map iteration order is random; apply parameters in a stable order.
	names := make([]string, 0, len(s.Params))
	for name := range s.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &resolvedEffect{typ: typ}
	for _, name := range names {
		p, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("preset: %s has no parameter %q", s.Type, name)
		}
		ev := effectValue{param: p}
		var err error
		switch p.kind {
		case kindInt:
			ev.i, err = toInt(s.Params[name])
		case kindFloat:
			ev.f, err = toFloat(s.Params[name])
		case kindVector:
			ev.v, err = toVector(s.Params[name])
		}
		if err != nil {
			return nil, fmt.Errorf("preset: %s.%s: %w", s.Type, name, err)
		}
		r.values = append(r.values, ev)
	}
	return r, nil
}

type filterValue struct {
	param efx.FilterParamf
	value float32
}

type resolvedFilter struct {
	typ    efx.FilterType
	values []filterValue
}

func (s *FilterSpec) resolve() (*resolvedFilter, error) {
	typ, ok := filterTypes[s.Type]
	if !ok {
		return nil, fmt.Errorf("unknown filter type %q", s.Type)
	}
	known := filterParams[typ]
	names := make([]string, 0, len(s.Params))
	for name := range s.Params {
		names = append(names, name)
	}
	sort.Strings(names)

	r := &resolvedFilter{typ: typ}
	for _, name := range names {
		p, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("%s has no parameter %q", s.Type, name)
		}
		r.values = append(r.values, filterValue{param: p, value: s.Params[name]})
	}
	return r, nil
}

func toInt(v any) (int32, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%d is out of range", v)
		}
		return int32(v), nil
	case float64:
		if v < math.MinInt32 || v > math.MaxInt32 {
			return 0, fmt.Errorf("%v is out of range", v)
		}
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%v is not an integer", v)
		}
		return int32(v), nil
	}
	return 0, fmt.Errorf("expected an integer, got %T", v)
}

func toFloat(v any) (float32, error) {
	switch v := v.(type) {
	case int:
		return float32(v), nil
	case float64:
		return float32(v), nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}

func toVector(v any) (efx.Vector3, error) {
	var vec efx.Vector3
	list, ok := v.([]any)
	if !ok || len(list) != len(vec) {
		return vec, fmt.Errorf("expected a list of %d numbers", len(vec))
	}
	for i, x := range list {
		f, err := toFloat(x)
		if err != nil {
			return vec, err
		}
		vec[i] = f
	}
	return vec, nil
}
