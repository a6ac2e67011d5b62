package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/creativeyann17/go-pixz/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app := &cli.App{
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}
	code := app.Run(ctx, os.Args[1:])

	stop()
	os.Exit(code)
}
