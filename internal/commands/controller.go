// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/okra-platform/greet/internal/config"
	"github.com/okra-platform/greet/internal/greeter"
	"github.com/okra-platform/greet/internal/logrecord"
)

// Controller runs the greet command against its inputs and output.
// Nil fields fall back to the process stdout, environment and clock.
type Controller struct {
	Stdout io.Writer
	Lookup config.Lookup
	Clock  func() time.Time
}

// Greet resolves the greeting options from args and the environment and
// writes the greeting as one log record.
func (c *Controller) Greet(ctx context.Context, args []string) error {
	cfg := config.Resolve(args, c.lookup())
	message := greeter.Greet(cfg)

	log.Debug().
		Bool("named", cfg.Name != nil).
		Bool("excited", cfg.Excited == nil || *cfg.Excited).
		Msg("resolved greeting")

	return logrecord.NewEmitter(c.stdout(), logrecord.WithClock(c.clock())).Emit(message)
}

func (c *Controller) stdout() io.Writer {
	if c.Stdout == nil {
		return os.Stdout
	}
	return c.Stdout
}

func (c *Controller) lookup() config.Lookup {
	if c.Lookup == nil {
		return os.LookupEnv
	}
	return c.Lookup
}

func (c *Controller) clock() func() time.Time {
	if c.Clock == nil {
		return time.Now
	}
	return c.Clock
}
