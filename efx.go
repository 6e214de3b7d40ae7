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

// Package efx binds the OpenAL Effects Extension (EFX).
//
// The extension's entry points are not exported by the OpenAL library. They
// are looked up by name with alGetProcAddress when an Extension is created,
// and each address is bound to a typed Go function. Every method forwards
// directly to the native implementation, which is responsible for validating
// arguments; native errors are read with (*Extension).Err.
//
// Objects (effects, filters and auxiliary effect slots) are plain names.
// Callers generate and delete them explicitly.
//
// A typical setup routes a source through a reverb:
//
//	ext, err := efx.New()
//	if err != nil {
//		return err
//	}
//	slot := ext.GenAuxiliaryEffectSlot()
//	effect := ext.GenEffect()
//	ext.BindEffect(effect, efx.EffectReverb)
//	ext.Effectf(effect, efx.ReverbDecayTime, 3.5)
//	ext.BindEffectToAuxiliarySlot(slot, effect)
//	ext.BindSourceToAuxiliarySlot(source, slot, 0, efx.NullFilter)
package efx

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/ebitengine/efx/al"
)

// Loader resolves native entry points and forwards the core source calls the
// helper functions need. The default Loader talks to the OpenAL library
// loaded by package al.
type Loader interface {
	// IsExtensionPresent reports whether the current device advertises the
	// named ALC extension.
	IsExtensionPresent(name string) bool

	// Load resolves the named native function and stores a callable for it
	// into fptr, which is a pointer to a variable of func type.
	Load(fptr any, name string) error

	// Sourcei and Source3i forward to alSourcei and alSource3i.
	Sourcei(source al.Source, param int32, value int32)
	Source3i(source al.Source, param int32, v1, v2, v3 int32)

	// Err returns and clears the native error state.
	Err() error
}

type effectFuncs struct {
	Gen    func(n int32, effects *uint32)                    `efx:"alGenEffects"`
	Delete func(n int32, effects *uint32)                    `efx:"alDeleteEffects"`
	Is     func(effect uint32) uint8                         `efx:"alIsEffect"`
	Seti   func(effect uint32, param int32, value int32)     `efx:"alEffecti"`
	Setf   func(effect uint32, param int32, value float32)   `efx:"alEffectf"`
	Setfv  func(effect uint32, param int32, values *float32) `efx:"alEffectfv"`
	Geti   func(effect uint32, param int32, value *int32)    `efx:"alGetEffecti"`
	Getf   func(effect uint32, param int32, value *float32)  `efx:"alGetEffectf"`
	Getfv  func(effect uint32, param int32, values *float32) `efx:"alGetEffectfv"`
}

type filterFuncs struct {
	Gen    func(n int32, filters *uint32)                   `efx:"alGenFilters"`
	Delete func(n int32, filters *uint32)                   `efx:"alDeleteFilters"`
	Is     func(filter uint32) uint8                        `efx:"alIsFilter"`
	Seti   func(filter uint32, param int32, value int32)    `efx:"alFilteri"`
	Setf   func(filter uint32, param int32, value float32)  `efx:"alFilterf"`
	Geti   func(filter uint32, param int32, value *int32)   `efx:"alGetFilteri"`
	Getf   func(filter uint32, param int32, value *float32) `efx:"alGetFilterf"`
}

type slotFuncs struct {
	Gen    func(n int32, slots *uint32)                   `efx:"alGenAuxiliaryEffectSlots"`
	Delete func(n int32, slots *uint32)                   `efx:"alDeleteAuxiliaryEffectSlots"`
	Is     func(slot uint32) uint8                        `efx:"alIsAuxiliaryEffectSlot"`
	Seti   func(slot uint32, param int32, value int32)    `efx:"alAuxiliaryEffectSloti"`
	Setf   func(slot uint32, param int32, value float32)  `efx:"alAuxiliaryEffectSlotf"`
	Geti   func(slot uint32, param int32, value *int32)   `efx:"alGetAuxiliaryEffectSloti"`
	Getf   func(slot uint32, param int32, value *float32) `efx:"alGetAuxiliaryEffectSlotf"`
}

// Extension is an initialized EFX binding. It is bound to the device of the
// context that was current when it was created.
//
// The methods of Extension call into OpenAL, which applies them to the
// current context. They are as concurrent-safe as the OpenAL implementation.
type Extension struct {
	loader Loader
	log    logrus.FieldLogger

	effect effectFuncs
	filter filterFuncs
	slot   slotFuncs
}

// Option configures New.
type Option func(*options)

type options struct {
	loader Loader
	log    logrus.FieldLogger
}

// WithLoader makes New resolve entry points through l instead of the OpenAL
// library loaded by package al.
func WithLoader(l Loader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithLogger sets the logger New reports initialization failures to.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New initializes the extension for the current OpenAL context.
//
// New fails with ErrNotSupported if the device does not advertise ALC_EXT_EFX,
// and with an error wrapping ErrSymbolNotFound if any entry point of the
// effect, filter or auxiliary effect slot groups cannot be resolved.
func New(opts ...Option) (*Extension, error) {
	o := options{
		log: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.loader == nil {
		if err := al.Load(); err != nil {
			return nil, err
		}
		if al.CurrentContext() == nil {
			return nil, ErrNoContext
		}
		o.loader = nativeLoader{}
	}

	log := o.log.WithField("extension", ExtensionName)
	if !o.loader.IsExtensionPresent(ExtensionName) {
		log.Warn("efx: extension is unknown to the device")
		return nil, ErrNotSupported
	}

	e := &Extension{
		loader: o.loader,
		log:    o.log,
	}
	groups := []struct {
		name  string
		funcs any
	}{
		{"effect", &e.effect},
		{"filter", &e.filter},
		{"auxiliary effect slot", &e.slot},
	}
	for _, g := range groups {
		if err := loadGroup(o.loader, g.funcs); err != nil {
			log.WithError(err).WithField("group", g.name).Warn("efx: failed to bind functions")
			return nil, fmt.Errorf("efx: %s functions: %w", g.name, err)
		}
	}
	log.Debug("efx: extension initialized")
	return e, nil
}

// loadGroup resolves every func field of the struct pointed to by funcs from
// the symbol named in its efx tag.
func loadGroup(l Loader, funcs any) error {
	v := reflect.ValueOf(funcs).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("efx")
		if name == "" {
			continue
		}
		if err := l.Load(v.Field(i).Addr().Interface(), name); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if v.Field(i).IsNil() {
			return fmt.Errorf("%s: %w", name, ErrSymbolNotFound)
		}
	}
	return nil
}

// Err returns and clears the native error state, reporting whether the
// preceding calls succeeded.
func (e *Extension) Err() error {
	return e.loader.Err()
}
