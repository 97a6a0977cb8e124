package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
)

// CLI is the top-level command-line interface for chainscript.
type CLI struct {
	LogLevel string `help:"Minimum log level." enum:"debug,info,warn,error" default:"info"`

	Run   RunCmd   `cmd:"" help:"Run a script file."`
	Check CheckCmd `cmd:"" help:"Parse a script file without executing it."`
	Repl  ReplCmd  `cmd:"" help:"Start an interactive session."`
}

type appContext struct {
	ctx    context.Context
	stdout io.Writer
	stderr io.Writer
}

func main() {
	var cli CLI

	kctx := kong.Parse(&cli,
		kong.Name("chainscript"),
		kong.Description("Tree-walking interpreter for the ChainScript contract scripting language."),
		kong.UsageOnError(),
	)

	setupLogging(os.Stderr, cli.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := kctx.Run(&appContext{ctx: ctx, stdout: os.Stdout, stderr: os.Stderr})
	kctx.FatalIfErrorf(err)
}
