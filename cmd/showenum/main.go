package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"github.com/broady/showenum"
	"github.com/broady/showenum/cmd/showenum/internal/gen"
)

type CLI struct {
	Gen     gen.Cmd    `cmd:"" default:"withargs" help:"Generate a C function that returns the name of each enumerator."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Println(Version())
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("showenum"),
		kong.Description("Generate stringification functions for C enums."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	if err := kctx.Run(); err != nil {
		e := showenum.DefaultErrorTransformer(err)
		fmt.Fprintf(os.Stderr, "error: %v\n", e)
		stop()
		os.Exit(e.Code.ExitCode())
	}
}
