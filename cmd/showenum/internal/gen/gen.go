package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/broady/showenum/enumgen"
	"github.com/broady/showenum/enumgen/sink"
	"github.com/broady/showenum/internal/logging"
	"github.com/broady/showenum/internal/watch"
)

type Cmd struct {
	File        string `arg:"" help:"C source file containing the enum declaration." type:"path"`
	Start       int    `help:"First line of the declaration (1-based, inclusive)." short:"s"`
	End         int    `help:"Last line of the declaration (1-based, inclusive)." short:"e"`
	Output      string `help:"Write the function to this file instead of stdout." short:"o" type:"path"`
	MaxVariants int    `help:"Maximum number of enumerators accepted." default:"50" name:"max-variants"`
	Prefix      string `help:"Prefix of the generated function name." default:"show_"`
	Watch       bool   `help:"Regenerate whenever the file changes." short:"w"`
	LogLevel    string `help:"Log level." default:"warn" enum:"debug,info,warn,error" name:"log-level"`
	LogFormat   string `help:"Log format." default:"text" enum:"text,json" name:"log-format"`
}

func (c *Cmd) Run(ctx context.Context) error {
	return c.run(ctx, os.Stdout, os.Stderr)
}

func (c *Cmd) run(ctx context.Context, stdout, stderr io.Writer) error {
	logger, err := logging.New(stderr, c.LogLevel, c.LogFormat)
	if err != nil {
		return err
	}

	cfg, err := c.config(stdout, logger)
	if err != nil {
		return err
	}

	if !c.Watch {
		_, err := enumgen.GenerateFile(ctx, c.File, cfg)
		return err
	}
	return c.watch(ctx, cfg, logger)
}

func (c *Cmd) config(stdout io.Writer, logger *slog.Logger) (*enumgen.Config, error) {
	cfg := &enumgen.Config{
		Start:           c.Start,
		End:             c.End,
		MaxVariants:     c.MaxVariants,
		FunctionPrefix:  c.Prefix,
		TrailingNewline: true,
		Logger:          logger,
	}

	if c.Output == "" {
		cfg.Sink = sink.NewWriterSink(stdout)
		return cfg, nil
	}

	out, err := filepath.Abs(c.Output)
	if err != nil {
		return nil, fmt.Errorf("resolve output path: %w", err)
	}
	cfg.Sink = sink.NewFilesystemSink(filepath.Dir(out))
	cfg.OutputPath = filepath.Base(out)
	return cfg, nil
}

// watch generates once, then again after every change to the input file.
// Generation errors are logged and do not stop the loop.
func (c *Cmd) watch(ctx context.Context, cfg *enumgen.Config, logger *slog.Logger) error {
	w, err := watch.New(c.File)
	if err != nil {
		return fmt.Errorf("watch %s: %w", c.File, err)
	}
	defer w.Close()

	regenerate := func() {
		if _, err := enumgen.GenerateFile(ctx, c.File, cfg); err != nil {
			logger.ErrorContext(ctx, "generation failed",
				slog.String("file", c.File),
				slog.Any("error", err),
			)
		}
	}

	regenerate()
	logger.InfoContext(ctx, "watching for changes", slog.String("file", c.File))
	return w.Run(ctx, regenerate)
}
