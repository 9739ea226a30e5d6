package main

import (
	"context"

	"radialmenu/cmd/radialmenu/cli"
	"radialmenu/internal/config"
	"radialmenu/internal/errors"
	"radialmenu/internal/input"
	"radialmenu/internal/launcher"
	"radialmenu/internal/log"
	"radialmenu/internal/overlay"
)

// runLauncher wires the hook, the config watcher and the launcher loop and
// blocks until ctx is done or the hook fails.
func runLauncher(ctx context.Context, path string) error {
	store, err := config.Open(path)
	if err != nil {
		log.LogWithError(err).Warn("Running with unsaved defaults")
	}
	cfg := store.Snapshot()
	cli.SetTheme(cfg.Visual.Theme)

	watcher, err := config.NewWatcher(store, config.DefaultSettle)
	if err != nil {
		return errors.Wrap(err, "cannot watch configuration")
	}
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	hub := input.NewHub(input.NewTracker())
	hookErr := make(chan error, 1)
	go func() {
		hookErr <- hub.Run(ctx, input.NewGlobalHook())
		cancel()
	}()

	wheel, unsubscribe := hub.SubscribeWheel()
	defer unsubscribe()

	robot := input.NewRobot()
	l := launcher.New(store, launcher.Deps{
		Probe:    hub.Tracker(),
		Cursor:   robot,
		Surface:  overlay.NewLogSurface(),
		Injector: robot,
	},
		launcher.WithWheel(wheel),
		launcher.WithChanges(watcher.Changes()),
	)

	cli.PrintInfo("Hold " + cfg.ActivationCombo() + " to open the menu, Ctrl+C to quit")
	if err := l.Run(ctx); err != nil {
		return err
	}

	st := l.Status()
	log.LogWithFields(
		log.F("sessions", st.Sessions),
		log.F("committed", st.Committed),
		log.F("failed", st.Failed),
	).Info("Launcher finished")

	cancel()
	return <-hookErr
}
