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
	"runtime"
)

// Context attributes for (*Device).CreateContext and properties for (*Device).Integer.
const (
	Frequency         = 0x1007
	Refresh           = 0x1008
	Sync              = 0x1009
	MonoSources       = 0x1010
	StereoSources     = 0x1011
	MaxAuxiliarySends = 0x20003
	EFXMajorVersion   = 0x20001
	EFXMinorVersion   = 0x20002
)

// Device is an open OpenAL output device.
type Device struct {
	// device represents a pointer to ALCdevice. The type is uintptr since the value
	// can be invalid as a Go pointer value, and this might cause GC errors.
	device uintptr
	closed bool
}

// Context is an OpenAL rendering context on a device.
type Context struct {
	context uintptr
	device  *Device
}

// OpenDevice opens the named output device. An empty name opens the default device.
func OpenDevice(name string) (*Device, error) {
	f := lib.Load()
	if f == nil {
		return nil, ErrNotLoaded
	}
	d := f.OpenDevice(cString(name))
	if d == 0 {
		return nil, fmt.Errorf("al: alcOpenDevice must not return null (device %q)", name)
	}
	dev := &Device{device: d}
	runtime.SetFinalizer(dev, (*Device).Close)
	return dev, nil
}

// Err returns and clears the error state of the device.
func (d *Device) Err() error {
	return alcError(loaded().ALCGetError(d.device))
}

// IsExtensionPresent reports whether the device supports the ALC extension ext.
func (d *Device) IsExtensionPresent(ext string) bool {
	return loaded().ALCIsExtension(d.device, cString(ext)) != 0
}

// Integer queries a single integer device property, such as MaxAuxiliarySends.
func (d *Device) Integer(param int32) (int32, error) {
	var v int32
	loaded().GetIntegerv(d.device, param, 1, &v)
	if err := d.Err(); err != nil {
		return 0, fmt.Errorf("al: alcGetIntegerv(0x%x): %w", param, err)
	}
	return v, nil
}

// CreateContext creates a context on the device. attrs is a list of
// attribute/value pairs; the terminating zero is appended automatically.
func (d *Device) CreateContext(attrs ...int32) (*Context, error) {
	if len(attrs)%2 != 0 {
		return nil, fmt.Errorf("al: context attributes must be pairs, got %d values", len(attrs))
	}
	var p *int32
	if len(attrs) > 0 {
		list := make([]int32, 0, len(attrs)+1)
		list = append(list, attrs...)
		list = append(list, 0)
		p = &list[0]
	}
	c := loaded().CreateContext(d.device, p)
	if c == 0 {
		return nil, fmt.Errorf("al: alcCreateContext must not return null: %v", d.Err())
	}
	return &Context{context: c, device: d}, nil
}

// Close closes the device. Contexts created on it must be destroyed first.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	if loaded().CloseDevice(d.device) == 0 {
		return fmt.Errorf("al: alcCloseDevice failed: %v", d.Err())
	}
	d.closed = true
	runtime.SetFinalizer(d, nil)
	return nil
}

// MakeCurrent makes c the current context of the process.
func (c *Context) MakeCurrent() error {
	loaded().MakeContextCurrent(c.context)
	// Don't trust the return value alone; some Linux drivers report failure
	// even though the context is usable. Ask the device instead.
	if err := c.device.Err(); err != nil {
		return fmt.Errorf("al: alcMakeContextCurrent: %w", err)
	}
	return nil
}

// Device returns the device the context was created on.
func (c *Context) Device() *Device {
	return c.device
}

// Destroy destroys the context. If it is current, the current context is cleared first.
func (c *Context) Destroy() {
	f := loaded()
	if f.GetCurrentContext() == c.context {
		f.MakeContextCurrent(0)
	}
	f.DestroyContext(c.context)
}

// CurrentContext returns the current context, or nil if there is none.
func CurrentContext() *Context {
	f := lib.Load()
	if f == nil {
		return nil
	}
	c := f.GetCurrentContext()
	if c == 0 {
		return nil
	}
	d := f.GetContextsDevice(c)
	if d == 0 {
		return nil
	}
	return &Context{context: c, device: &Device{device: d}}
}
