//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"lifeview/internal/app"
	"lifeview/internal/core"
	_ "lifeview/internal/elementary"
	_ "lifeview/internal/life"
	"lifeview/internal/session"
	"lifeview/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	core.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()})))

	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		log.Fatalf("unknown engine %q", cfg.Engine)
	}
	grid := factory(cfg.EngineParams())

	sc := cfg.Session()
	sc.Grid = grid
	sc.Theme = app.ResolveTheme(cfg.Theme)
	sc.NewCanvas = app.NewCanvas
	sess := session.New(sc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.Pattern != "" {
		go func() {
			if err := app.LoadPattern(ctx, sess, cfg.Pattern, nil); err != nil {
				core.Logger().Error("initial pattern", "err", err)
			}
		}()
	}

	title := ui.Title(cfg.Engine, cfg.Rule)
	game := app.New(ctx, sess, title)

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
