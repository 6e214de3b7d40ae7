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

// Command efxplay plays a sound through an OpenAL effect chain.
//
//	efxplay -preset cathedral.yaml voice.wav
//	efxplay -tone 220 -duration 5s
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/ebitengine/efx"
	"github.com/ebitengine/efx/al"
	"github.com/ebitengine/efx/internal/decode"
	"github.com/ebitengine/efx/preset"
)

func main() {
	app := &cli.App{
		Name:      "efxplay",
		Usage:     "play a sound through an OpenAL EFX effect chain",
		ArgsUsage: "[file.wav|file.mp3|file.ogg]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "device",
				Usage:   "output device name (default device if empty)",
				EnvVars: []string{"EFXPLAY_DEVICE"},
			},
			&cli.StringFlag{
				Name:    "preset",
				Aliases: []string{"p"},
				Usage:   "YAML effect preset (default reverb if empty)",
				EnvVars: []string{"EFXPLAY_PRESET"},
			},
			&cli.IntFlag{
				Name:  "sends",
				Value: 2,
				Usage: "auxiliary sends to request per source",
			},
			&cli.IntFlag{
				Name:  "send",
				Value: 0,
				Usage: "auxiliary send used by the source",
			},
			&cli.Float64Flag{
				Name:  "tone",
				Value: 440,
				Usage: "frequency of the test tone played when no file is given",
			},
			&cli.DurationFlag{
				Name:  "duration",
				Value: 3 * time.Second,
				Usage: "length of the test tone",
			},
			&cli.IntFlag{
				Name:  "samplerate",
				Value: 48000,
				Usage: "sample rate of the test tone",
			},
			&cli.IntFlag{
				Name:  "channelcount",
				Value: 1,
				Usage: "number of channels of the test tone",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				EnvVars: []string{"EFXPLAY_LOG_LEVEL"},
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("efxplay failed")
	}
}

func run(c *cli.Context) error {
	log := logrus.StandardLogger()
	level, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	clip, err := loadClip(c)
	if err != nil {
		return err
	}
	format, err := al.FormatFor(clip.Channels, decode.BytesPerSample)
	if err != nil {
		return err
	}

	if err := al.Load(); err != nil {
		return err
	}
	dev, err := al.OpenDevice(c.String("device"))
	if err != nil {
		return err
	}
	defer dev.Close()

	alctx, err := dev.CreateContext(al.MaxAuxiliarySends, int32(c.Int("sends")))
	if err != nil {
		return err
	}
	defer alctx.Destroy()
	if err := alctx.MakeCurrent(); err != nil {
		return err
	}

	ext, err := efx.New(efx.WithLogger(log))
	if err != nil {
		return err
	}
	if sends, err := dev.Integer(al.MaxAuxiliarySends); err == nil {
		log.WithField("sends", sends).Debug("auxiliary sends per source")
		if c.Int("send") >= int(sends) {
			return fmt.Errorf("send %d is not available, the device grants %d sends", c.Int("send"), sends)
		}
	}

	buffer := al.GenBuffers(1)[0]
	defer al.DeleteBuffers(buffer)
	buffer.Data(format, clip.PCM, clip.SampleRate)
	source := al.GenSources(1)[0]
	defer al.DeleteSources(source)
	source.SetBuffer(buffer)
	if err := al.Err(); err != nil {
		return fmt.Errorf("uploading the clip: %w", err)
	}

	release, err := route(ext, c.String("preset"), source, c.Int("send"))
	if err != nil {
		return err
	}
	defer release()

	log.WithFields(logrus.Fields{
		"duration":   clip.Duration(),
		"samplerate": clip.SampleRate,
		"channels":   clip.Channels,
	}).Info("playing")
	source.Play()
	defer source.Stop()
	return wait(ctx, source)
}

func loadClip(c *cli.Context) (*decode.Clip, error) {
	if c.NArg() > 0 {
		return decode.File(c.Args().First())
	}
	return decode.Tone(c.Float64("tone"), c.Duration("duration"), c.Int("samplerate"), c.Int("channelcount"))
}

// route connects source to the effect chain of the named preset, or to the
// default reverb if name is empty. The returned function tears the chain down.
func route(ext *efx.Extension, name string, source al.Source, send int) (func(), error) {
	if name != "" {
		p, err := preset.Load(name)
		if err != nil {
			return nil, err
		}
		chain, err := p.Apply(ext, source, send)
		if err != nil {
			return nil, err
		}
		return func() {
			if err := chain.Release(ext); err != nil {
				logrus.WithError(err).Warn("releasing the effect chain")
			}
		}, nil
	}

	effect, err := ext.LoadReverb(efx.DefaultReverb)
	if err != nil {
		return nil, err
	}
	slot := ext.GenAuxiliaryEffectSlot()
	ext.BindEffectToAuxiliarySlot(slot, effect)
	ext.BindSourceToAuxiliarySlot(source, slot, send, efx.NullFilter)
	if err := ext.Err(); err != nil {
		ext.DeleteAuxiliaryEffectSlots(slot)
		ext.DeleteEffects(effect)
		return nil, err
	}
	return func() {
		ext.BindSourceToAuxiliarySlot(source, efx.NullSlot, send, efx.NullFilter)
		ext.BindEffectToAuxiliarySlot(slot, efx.NullEffect)
		ext.DeleteAuxiliaryEffectSlots(slot)
		ext.DeleteEffects(effect)
	}, nil
}

// wait blocks until source stops playing or ctx is done.
func wait(ctx context.Context, source al.Source) error {
	t := time.NewTicker(10 * time.Millisecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if source.State() != al.Playing {
				return al.Err()
			}
		}
	}
}
