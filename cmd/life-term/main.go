package main

import (
	"context"
	"flag"
	"log"
	"time"

	"life-matrix/internal/app"
	"life-matrix/internal/core"
	"life-matrix/internal/sims/life"
	"life-matrix/internal/term"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	fit := flag.Bool("fit", false, "size the world to the terminal")
	flag.Parse()

	logger := cfg.Logger()
	sim := life.New(life.FromMap(cfg.SimConfig()),
		life.WithLogger(logger),
		life.WithSummaryHook(func(s life.Summary) {
			logger.Info("run finished", "reason", string(s.Reason), "generation", s.Generation, "population", s.Population)
		}))
	host := app.NewHost(sim, cfg.CycleMs, logger)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	view := term.NewView(screen, host, cfg.Seed)
	view.Fit = *fit
	clock := cfg.Clock()
	events := make(chan tcell.Event, 16)

	g, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)
	g.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		// Fini unblocks PollEvent in the event pump.
		defer screen.Fini()
		defer cancel()
		ticker := time.NewTicker(core.TickPeriod(cfg.TPS))
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if view.HandleKey(ev, clock.Now()) {
						return nil
					}
				case *tcell.EventResize:
					view.HandleResize()
				}
			case <-ticker.C:
				now := clock.Now()
				host.Frame(now)
				view.Draw(now)
			}
		}
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}
