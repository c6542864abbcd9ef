package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/psemenov/raclient/internal/buildinfo"
	"github.com/psemenov/raclient/internal/client/cli"
	"github.com/psemenov/raclient/internal/client/config"
	"github.com/psemenov/raclient/internal/flagx"
	"github.com/psemenov/raclient/internal/logging"
)

// verifyCode extracts the -verify flag: the dedicated entry point for
// magic-link codes landing from an email client, independent of any state
// the request phase may or may not have left behind.
func verifyCode() string {
	var code string

	args := flagx.FilterArgs(os.Args[1:], []string{"-verify"})

	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.StringVar(&code, "verify", "", "magic link code to verify")
	_ = fs.Parse(args)

	return code
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if code := verifyCode(); code != "" {
		app.RunVerify(ctx, code)
		return
	}

	app.Run(ctx)
}
