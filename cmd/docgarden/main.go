package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docgarden/cmd/docgarden/commands"
	derrors "git.home.luguber.info/inful/docgarden/internal/foundation/errors"
	"git.home.luguber.info/inful/docgarden/internal/version"
	"github.com/alecthomas/kong"
)

func main() {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("docgarden"),
		kong.Description("Build a digital garden site from a directory of markdown notes."),
		kong.Vars{"version": version.String()},
		kong.BindTo(sigCtx, (*context.Context)(nil)),
	)

	err := kctx.Run(&commands.Global{Logger: slog.Default()}, &cli)
	if err != nil {
		stop()
		derrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
