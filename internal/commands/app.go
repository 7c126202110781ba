package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/greet/internal/config"
)

// EnvLogLevel sets the diagnostic log level (debug, info, warn, error, fatal, panic).
const EnvLogLevel = "LOG_LEVEL"

const defaultLogLevel = zerolog.InfoLevel

// NewApp builds the root command. Flag parsing is skipped so every argument,
// including ones starting with a dash, is taken as a positional name.
func NewApp(ctrl *Controller) *cli.Command {
	return &cli.Command{
		Name:            "greet",
		Usage:           "Print a greeting as a structured log line",
		ArgsUsage:       "[name]",
		SkipFlagParsing: true,
		HideHelp:        true,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := logLevel(ctrl.lookup())
			log.Logger = log.Level(level)
			if err != nil {
				log.Warn().Err(err).Msg("ignoring invalid log level")
			}

			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ctrl.Greet(ctx, c.Args().Slice())
		},
	}
}

// logLevel reads EnvLogLevel. An unset or unparsable value yields the
// default level; the parse error is returned alongside it and never aborts a run.
func logLevel(lookup config.Lookup) (zerolog.Level, error) {
	raw, ok := lookup(EnvLogLevel)
	if !ok || raw == "" {
		return defaultLogLevel, nil
	}

	level, err := zerolog.ParseLevel(raw)
	if err != nil {
		return defaultLogLevel, fmt.Errorf("failed to parse log level: %w", err)
	}
	return level, nil
}
