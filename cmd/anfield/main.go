// The anfield robot plays Filler over the engine's stdin/stdout protocol:
// read a turn, pick a placement, answer with its anchor. Everything except
// the move line goes to stderr.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mkalinowski/filler/config"
	"github.com/mkalinowski/filler/placement"
	"github.com/mkalinowski/filler/protocol"
	"github.com/mkalinowski/filler/strategy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not forfeit the game.
		cfg = &config.Config{Strategy: strategy.Default.String(), Workers: 1}
		log.Warn().Err(err).Msg("using default config")
	}

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	strat, err := strategy.FromName(cfg.Strategy)
	if err != nil {
		log.Warn().Err(err).Stringer("fallback", strategy.Default).Msg("bad strategy name")
		strat = strategy.Default
	}
	var opts []strategy.Option
	if cfg.FloodFillBound > 0 {
		opts = append(opts, strategy.WithFloodFillBound(cfg.FloodFillBound))
	}
	log.Info().Stringer("strategy", strat).Int("workers", cfg.Workers).Msg("robot starting")

	reader := protocol.NewReader(os.Stdin)
	for {
		gs, err := reader.ReadTurn()
		if errors.Is(err, io.EOF) {
			log.Info().Msg("engine closed the stream")
			return
		}
		if err != nil {
			// The stream is desynced; forfeit the turn and bail out
			// rather than feed garbage back to the engine.
			log.Error().Err(err).Msg("failed to parse turn")
			submit(protocol.Fallback())
			return
		}

		if cfg.Debug {
			gs.LogDebug(log.Logger)
		}

		candidates := placement.FindAll(gs)
		var best *placement.Placement
		if cfg.Workers > 1 {
			best = strategy.SelectConcurrent(candidates, gs, strat, cfg.Workers, opts...)
		} else {
			best = strategy.Select(candidates, gs, strat, opts...)
		}

		move := protocol.Fallback()
		if best != nil {
			move = protocol.Move{X: best.Anchor.X, Y: best.Anchor.Y}
		} else {
			log.Debug().Msg("no valid placement, forfeiting turn")
		}
		submit(move)
	}
}

func submit(m protocol.Move) {
	if err := m.Write(os.Stdout); err != nil {
		log.Error().Err(err).Msg("failed to submit move")
		os.Exit(1)
	}
}
