// camsim drives the adjustment core against a synthetic in-memory camera
// object, standing in for the hooked game process. It cycles through camera
// variants, hot-reloads the config file, and serves the adjustment feed, so
// the whole stack can be exercised without a live game.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/camtune/camtune/internal/core/camera"
	"github.com/camtune/camtune/internal/core/config"
	"github.com/camtune/camtune/internal/core/memview"
	"github.com/camtune/camtune/internal/core/observability/log"
	"github.com/camtune/camtune/internal/server"
)

// script is the sequence of camera variants the fake game walks through,
// roughly a session: quest, sprint, back to base, into the room, photo
// mode, out again.
var script = []camera.CameraID{
	camera.IDNormal,
	camera.IDSprint,
	camera.IDCombat,
	camera.IDBaseHub,
	camera.IDLivingQuarters,
	camera.IDPrivateSuite,
	camera.IDSurveyorSet,
	camera.IDSeliana,
	camera.IDSelianaRoom,
	camera.IDNormal,
}

func main() {
	configPath := flag.String("config", "camtune.yml", "path to the camera settings file")
	listen := flag.String("listen", "127.0.0.1:8787", "address for the adjustment feed")
	reloadEvery := flag.Duration("reload-interval", 2*time.Second, "config poll interval")
	tickEvery := flag.Duration("tick", 500*time.Millisecond, "camera update cadence")
	flag.Parse()

	logger := log.New(log.LevelDebug).With(log.String("session", uuid.NewString()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	provider := config.NewProvider(*configPath, logger)
	if err := provider.Reload(); err != nil {
		logger.Warn("starting with built-in defaults", log.Err(err))
	}

	feed := server.NewFeed(logger)
	tracker := camera.NewTracker()
	engine := camera.NewEngine(tracker, provider, logger, camera.WithSink(feed.Publish))

	obj := make(memview.Buffer, camera.ObjectSize)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return provider.Watch(ctx, *reloadEvery) })
	g.Go(func() error { return feed.Run(ctx, *listen) })
	g.Go(func() error { return simulate(ctx, engine, obj, *tickEvery) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "camsim:", err)
		os.Exit(1)
	}
}

// simulate re-seeds the object with vanilla framing before every tick, the
// way the game's own camera update rewrites its parameters each frame, then
// lets the engine adjust it.
func simulate(ctx context.Context, engine *camera.Engine, obj memview.Buffer, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	step := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			camera.Seed(obj, script[step%len(script)])
			engine.Update(obj)
			step++
		}
	}
}
