// Command lifesnap runs a pattern headlessly for a while and writes a PNG
// snapshot of the view.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"seehuhn.de/go/geom/vec"

	"lifeview/internal/app"
	"lifeview/internal/core"
	_ "lifeview/internal/elementary"
	_ "lifeview/internal/life"
	"lifeview/internal/render"
	"lifeview/internal/rle"
	"lifeview/internal/session"
)

type pngWriter interface {
	SavePNG(path string) error
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "snapshot.png", "PNG file to write")
	duration := flag.Duration("duration", 3*time.Second, "how long to run before the snapshot")
	spacing := flag.Int("spacing", 8, "cells between patterns placed side by side")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	logger := core.Logger()

	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q", cfg.Engine)
	}

	sources := flag.Args()
	if cfg.Pattern != "" {
		sources = append([]string{cfg.Pattern}, sources...)
	}

	patterns, err := rle.LoadAll(context.Background(), sources, nil)
	if err != nil {
		log.Fatalf("load patterns: %v", err)
	}

	sc := cfg.Session()
	sc.Grid = factory(cfg.EngineParams())
	sc.Theme = app.ResolveTheme(cfg.Theme)
	sc.NewCanvas = func(w, h int) render.Canvas { return render.NewGGCanvas(w, h) }
	sess := session.New(sc)

	x := 0
	for _, p := range patterns {
		at := vec.Vec2{X: float64(x + p.Width/2), Y: 0}
		sess.Post(session.LoadPattern{Pattern: p, At: &at})
		sess.Post(session.Commit{})
		x += p.Width + *spacing
	}

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()
	start := time.Now()
	if err := sess.Run(ctx); err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	sess.Redraw(time.Now())

	snap, ok := sess.Canvas().(pngWriter)
	if !ok {
		log.Fatal("canvas cannot be saved as PNG")
	}
	if err := snap.SavePNG(*out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}
	logger.Info("snapshot written",
		"path", *out,
		"patterns", len(patterns),
		"elapsed", time.Since(start).Round(time.Millisecond),
		"stats", sess.Stats().String())
}
