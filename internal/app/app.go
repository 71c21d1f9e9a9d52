package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/diegok/pong/internal/audio"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/logging"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
	state  *game.GameState
	sound  *audio.Player

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: zap.NewNop(),
		state:  game.NewGameState(),
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It sets up logging, sound and signal handling, then plays until the
// window is closed, a quit key is pressed or a signal arrives.
func (a *App) Run() error {
	logger, err := logging.New(logging.Config{
		Level:       a.cfg.LogLevel,
		Development: a.cfg.Debug,
		File:        a.cfg.LogFile,
		Discard:     a.cfg.Terminal, // stderr belongs to the screen
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	a.logger = logger

	a.logger.Info("starting pong",
		zap.Bool("terminal", a.cfg.Terminal),
		zap.Bool("mute", a.cfg.Mute),
		zap.Int("winning_score", a.state.WinningScore))

	// Game works without sound
	if !a.cfg.Mute {
		player, err := audio.Open()
		if err != nil {
			a.logger.Warn("audio unavailable, playing silent", zap.Error(err))
		}
		a.sound = player
	}

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if _, ok := <-a.sigChan; ok {
			close(a.quit)
		}
	}()

	var runErr error
	if a.cfg.Terminal {
		runErr = a.runTerminal()
	} else {
		runErr = a.runWindow()
	}

	a.cleanup()

	return runErr
}

// step advances the match by one frame and reacts to what happened
func (a *App) step(keys game.Keys) {
	events := a.state.Step(keys)
	if events == 0 {
		return
	}
	if effect, ok := soundFor(events); ok {
		a.sound.Play(effect)
	}
	a.logEvents(events)
}

// soundFor picks the most significant sound of a frame
func soundFor(events game.Events) (audio.Effect, bool) {
	switch {
	case events.Has(game.EventMatchWon):
		return audio.Win, true
	case events.Has(game.EventPoint):
		return audio.Score, true
	case events.Has(game.EventPaddleHit):
		return audio.PaddleHit, true
	case events.Has(game.EventWallBounce):
		return audio.WallBounce, true
	}
	return 0, false
}

func (a *App) logEvents(events game.Events) {
	gs := a.state
	if events.Has(game.EventPoint) {
		a.logger.Debug("point scored",
			zap.Stringer("scorer", gs.LastScorer),
			zap.Int("left", gs.LeftScore),
			zap.Int("right", gs.RightScore),
			zap.Int("tick", gs.Tick))
	}
	if events.Has(game.EventMatchWon) {
		a.logger.Info("match won",
			zap.Stringer("winner", gs.Winner),
			zap.Int("left", gs.LeftScore),
			zap.Int("right", gs.RightScore))
	}
	if events.Has(game.EventMatchReset) {
		a.logger.Debug("match reset", zap.Int("tick", gs.Tick))
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.sound.Close()
	a.sound = nil

	// Stop signal handling
	signal.Stop(a.sigChan)
	close(a.sigChan)

	a.logger.Info("pong stopped", zap.Int("ticks", a.state.Tick))
	_ = a.logger.Sync()
}
