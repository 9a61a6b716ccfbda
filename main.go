package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	"mdl/interp"
	"mdl/raster"
	"mdl/scenes"
)

func init() {
	// GLFW and OpenGL calls must come from the main thread.
	runtime.LockOSThread()
}

func main() {
	sceneName := flag.String("scene", "robot", "built-in scene to render (see -list)")
	out := flag.String("o", "", "output file, default <scene>.png; the extension picks the format (.png, .bmp, .tif, .ppm)")
	width := flag.Int("width", 500, "screen width in pixels")
	height := flag.Int("height", 500, "screen height in pixels")
	step := flag.Int("step", 20, "tessellation step for spheres and tori")
	display := flag.Bool("display", false, "show the result in a window")
	list := flag.Bool("list", false, "list the built-in scenes and exit")
	verbose := flag.Bool("v", false, "log every operation")
	flag.Parse()

	if *list {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	interp.SetLogger(logger)

	ops, ok := scenes.All[*sceneName]
	if !ok {
		logger.Error("unknown scene", "scene", *sceneName, "available", scenes.Names())
		os.Exit(2)
	}
	if *width <= 0 || *height <= 0 {
		logger.Error("bad screen size", "width", *width, "height", *height)
		os.Exit(2)
	}

	cfg := interp.DefaultConfig()
	cfg.Step = *step
	cfg.SaveName = *sceneName + ".png"
	if *out != "" {
		cfg.SaveName = *out
	}

	target := raster.NewTarget(*width, *height, color.RGBA{0, 0, 0, 255})
	var opts []interp.Option
	if *display {
		opts = append(opts, interp.WithDisplayer(windowDisplay{title: "mdl: " + *sceneName}))
	}
	in := interp.New(cfg, target, opts...)

	if err := in.Run(ops); err != nil {
		logger.Warn("scene rendered with errors", "scene", *sceneName, "err", err)
	}
	if err := in.Exec(interp.Save{}); err != nil {
		logger.Error("saving failed", "file", cfg.SaveName, "err", err)
		os.Exit(1)
	}
	if *display {
		if err := in.Exec(interp.Display{}); err != nil {
			logger.Error("display failed", "err", err)
			os.Exit(1)
		}
	}
}
