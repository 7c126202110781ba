package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/okra-platform/greet/internal/commands"
)

func main() {
	ctrl := &commands.Controller{
		Stdout: os.Stdout,
		Lookup: os.LookupEnv,
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	app := commands.NewApp(ctrl)

	ctx := context.Background()

	if err := app.Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run greet")
	}
}
