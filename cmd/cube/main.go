// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cube draws a colored cube in a window until it is closed.
// Settings are read from cube.toml in the working directory, if present.
package main

import (
	"log/slog"
	"os"
	"runtime"
	"time"

	"cogentcore.org/cube/base/errors"
	"cogentcore.org/cube/base/logx"
	"cogentcore.org/cube/config"
	"cogentcore.org/cube/gpu/glgpu"
	"cogentcore.org/cube/mesh"
	"cogentcore.org/cube/render"
	"cogentcore.org/cube/shaders"
	"cogentcore.org/cube/system/driver/desktop"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	if errors.Log(run()) != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Open(config.File)
	if err != nil {
		return err
	}
	logx.UserLevel = cfg.Log.Level
	logx.SetDefaultLogger()

	vs, fs, err := shaders.Sources(os.DirFS(cfg.Shaders.Dir), cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}

	if err := desktop.Init(); err != nil {
		return err
	}
	defer desktop.Terminate()

	win, err := desktop.NewWindow(desktop.Options{
		Size:  cfg.Window.Size(),
		Title: cfg.Window.Title,
		VSync: cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()
	win.MakeCurrent()

	api, err := glgpu.Init(win.ProcAddress)
	if err != nil {
		return err
	}
	sc, err := render.NewScene(api, vs, fs, mesh.Cube())
	if err != nil {
		return err
	}

	lp := render.NewLoop(win, sc)
	lp.CheckErrors = cfg.Render.CheckErrors
	lp.StatsInterval = time.Duration(cfg.Render.StatsInterval)
	lp.Run()
	slog.Info("cube: window closed")
	return nil
}
