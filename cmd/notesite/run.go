package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	notesite "github.com/alnah/go-notesite"
	"github.com/alnah/go-notesite/internal/assets"
	"github.com/alnah/go-notesite/internal/config"
	"github.com/alnah/go-notesite/internal/hints"
)

// runMain runs the command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err == nil && len(positional) > 0 {
		err = fmt.Errorf("%w: unexpected arguments %v", ErrUsage, positional)
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}

	if flags.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "notesite %s\n", Version)
		return ExitSuccess
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := run(ctx, flags, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err, cfg))
	}
	return exitCodeFor(err)
}

// run loads configuration and builds the site. The returned config is the
// one in effect, for error hints; it may be nil if loading failed.
func run(ctx context.Context, flags *cliFlags, env *Environment) (*config.Config, error) {
	logger := newLogger(env.Stderr, flags)

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	logger.Debug("configuration", "content", cfg.Content.Root, "output", cfg.Output.Dir,
		"static", cfg.Static.Dir, "templates", cfg.Templates.Dir, "catalog", cfg.Catalog.Path)

	stdout := env.Stdout
	if flags.quiet {
		stdout = io.Discard
	}

	b, err := notesite.NewBuilder(cfg,
		notesite.WithStdout(stdout),
		notesite.WithLogger(logger),
	)
	if err != nil {
		return cfg, err
	}

	result, err := b.Build(ctx)
	if err != nil {
		return cfg, err
	}
	if len(result.Pages) == 0 {
		fmt.Fprintf(stdout, "No markdown files found in %s%s\n", cfg.Content.Root, hints.ForNoContent(cfg.Content.Extensions))
	}
	return cfg, nil
}

// newLogger returns a text logger on w. Quiet keeps errors only; verbose
// adds debug events.
func newLogger(w io.Writer, flags *cliFlags) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case flags.quiet:
		level = slog.LevelError
	case flags.verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error, cfg *config.Config) string {
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound()
	case errors.Is(err, notesite.ErrContentRootNotFound):
		return hints.ForContentRoot()
	case errors.Is(err, notesite.ErrTemplateNotFound) && cfg != nil:
		return hints.ForTemplateNotFound(cfg.Templates.Dir)
	case errors.Is(err, notesite.ErrUnknownHighlightStyle):
		return hints.ForHighlightStyle(assets.HighlightStyles())
	case errors.Is(err, notesite.ErrInvalidEncoding):
		return hints.ForEncoding()
	case errors.Is(err, notesite.ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
