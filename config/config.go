// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the cube
// renderer, and loading them from a TOML file.
package config

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/cube/base/errors"
	"cogentcore.org/cube/base/logx"
	"github.com/pelletier/go-toml/v2"
)

// File is the name of the optional config file,
// looked up in the working directory.
const File = "cube.toml"

// Config is the main config struct.
type Config struct {

	// the window to draw into
	Window Window

	// where the shader sources are read from
	Shaders Shaders

	// options for the render loop
	Render Render

	// logging options
	Log Log
}

type Window struct {

	// initial width of the window in screen coordinates
	Width int

	// initial height of the window in screen coordinates
	Height int

	// title of the window
	Title string

	// whether presenting a frame waits for the display refresh
	VSync bool
}

// Size returns the window size as a point.
func (w *Window) Size() image.Point {
	return image.Pt(w.Width, w.Height)
}

type Shaders struct {

	// directory the shader files are read from
	Dir string

	// file name of the vertex shader, relative to Dir
	Vertex string

	// file name of the fragment shader, relative to Dir
	Fragment string
}

type Render struct {

	// whether to check for graphics API errors after each frame
	CheckErrors bool

	// how often to log frame rate statistics; 0 disables them
	StatsInterval Duration
}

type Log struct {

	// minimum level of messages to show: debug, info, warn or error;
	// defaults to info, debug with the debug build tag and warn with
	// the release build tag
	Level slog.Level
}

// Duration is a [time.Duration] written as a string such as "10s".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Defaults returns the config used when no file is present.
// The log level is the one selected by the build tags.
func Defaults() *Config {
	return &Config{
		Window: Window{
			Width:  800,
			Height: 600,
			Title:  "cube",
			VSync:  true,
		},
		Shaders: Shaders{
			Dir:      "shaders",
			Vertex:   "vertex.glsl",
			Fragment: "fragment.glsl",
		},
		Log: Log{Level: logx.UserLevel},
	}
}

// Read decodes TOML data on top of the defaults.
// Unknown keys are an error.
func Read(data []byte) (*Config, error) {
	cfg := Defaults()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Open reads the config file at path. If the file does not
// exist the defaults are returned without error.
func Open(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the values can be used.
func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("config: invalid window size %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Shaders.Vertex == "" || cfg.Shaders.Fragment == "" {
		return errors.New("config: shader file names must not be empty")
	}
	if cfg.Render.StatsInterval < 0 {
		return fmt.Errorf("config: negative stats interval %s", time.Duration(cfg.Render.StatsInterval))
	}
	return nil
}

// Marshal returns the config as TOML.
func (cfg *Config) Marshal() ([]byte, error) {
	return toml.Marshal(cfg)
}
