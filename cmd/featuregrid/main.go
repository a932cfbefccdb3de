package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/goliatone/go-featuregrid/internal/config"
	"github.com/goliatone/go-featuregrid/internal/prompt"
	"github.com/goliatone/go-featuregrid/internal/server"
	"github.com/goliatone/go-featuregrid/pkg/feature"
	"github.com/goliatone/go-featuregrid/pkg/orchestrator"
	"github.com/goliatone/go-featuregrid/pkg/render"
)

func main() {
	log.SetPrefix("[featuregrid] ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], environ(), os.Stdout, prompt.NewSurveyDriver()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		if errors.Is(err, prompt.ErrAborted) {
			log.Print("aborted")
			os.Exit(130)
		}
		log.Fatal(err)
	}
}

// errNoThemeManifest is returned when a theme or variant is named without a
// manifest to select it from.
var errNoThemeManifest = errors.New("theme requested but no theme manifest configured (set -theme-file or FEATUREGRID_THEME_FILE)")

type options struct {
	cfg         config.Config
	output      string
	serve       bool
	interactive bool
}

func run(ctx context.Context, args []string, env map[string]string, stdout io.Writer, driver prompt.Driver) error {
	cfg, err := config.LoadFrom(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts, err := parseFlags(args, cfg, stdout)
	if err != nil {
		return err
	}

	orc, err := buildOrchestrator(opts.cfg)
	if err != nil {
		return err
	}

	if opts.serve {
		srv, err := server.New(server.Config{
			Addr:         opts.cfg.Addr,
			AssetPrefix:  opts.cfg.AssetPrefix,
			ThemeName:    opts.cfg.Theme,
			ThemeVariant: opts.cfg.ThemeVariant,
			HeadingLevel: render.HeadingLevel(opts.cfg.HeadingLevel),
			Orchestrator: orc,
			Logger:       log.Default(),
		})
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	}

	if opts.interactive {
		if driver == nil {
			return errors.New("interactive mode requires a prompt driver")
		}
		choice, err := driver.Select(ctx, prompt.SelectConfig{
			Message: "Renderer",
			Options: orc.Renderers(),
			Default: opts.cfg.Renderer,
		})
		if err != nil {
			return err
		}
		opts.cfg.Renderer = choice

		if opts.output != "" {
			proceed, err := confirmOverwrite(ctx, driver, opts.output)
			if err != nil {
				return err
			}
			if !proceed {
				fmt.Fprintf(stdout, "Skipped writing %s\n", opts.output)
				return nil
			}
		}
	}

	out, err := orc.Generate(ctx, orchestrator.Request{
		Renderer:      opts.cfg.Renderer,
		ThemeName:     opts.cfg.Theme,
		ThemeVariant:  opts.cfg.ThemeVariant,
		RenderOptions: render.RenderOptions{HeadingLevel: render.HeadingLevel(opts.cfg.HeadingLevel)},
	})
	if err != nil {
		return fmt.Errorf("generate features: %w", err)
	}

	if opts.output == "" {
		_, err := fmt.Fprintln(stdout, string(out))
		return err
	}
	if err := os.WriteFile(opts.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(stdout, "Features written to %s\n", opts.output)
	return nil
}

func parseFlags(args []string, cfg config.Config, stdout io.Writer) (options, error) {
	fset := flag.NewFlagSet("featuregrid", flag.ContinueOnError)
	fset.SetOutput(stdout)

	opts := options{cfg: cfg}
	fset.StringVar(&opts.cfg.Renderer, "renderer", cfg.Renderer, "renderer to use (html, markdown)")
	fset.StringVar(&opts.output, "output", "", "output file (stdout if empty)")
	fset.StringVar(&opts.cfg.FeaturesFile, "features", cfg.FeaturesFile, "YAML feature list (built-in homepage list if empty)")
	fset.StringVar(&opts.cfg.ThemeFile, "theme-file", cfg.ThemeFile, "YAML theme manifest")
	fset.StringVar(&opts.cfg.Theme, "theme", cfg.Theme, "theme name")
	fset.StringVar(&opts.cfg.ThemeVariant, "variant", cfg.ThemeVariant, "theme variant")
	fset.IntVar(&opts.cfg.HeadingLevel, "heading", cfg.HeadingLevel, "heading level for card titles (1-6)")
	fset.StringVar(&opts.cfg.Addr, "addr", cfg.Addr, "listen address used with -serve")
	fset.BoolVar(&opts.serve, "serve", false, "serve the features page over HTTP")
	fset.BoolVar(&opts.interactive, "interactive", false, "pick the renderer and confirm overwrites interactively")

	if err := fset.Parse(args); err != nil {
		return options{}, err
	}
	if fset.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fset.Args(), " "))
	}
	opts.output = strings.TrimSpace(opts.output)
	if opts.cfg.ThemeFile == "" && (opts.cfg.Theme != "" || opts.cfg.ThemeVariant != "") {
		return options{}, fmt.Errorf("%w: theme %q variant %q", errNoThemeManifest, opts.cfg.Theme, opts.cfg.ThemeVariant)
	}
	return opts, nil
}

func buildOrchestrator(cfg config.Config) (*orchestrator.Orchestrator, error) {
	var orcOpts []orchestrator.Option

	if cfg.FeaturesFile != "" {
		list, err := feature.LoadFile(cfg.FeaturesFile)
		if err != nil {
			return nil, err
		}
		orcOpts = append(orcOpts, orchestrator.WithList(list))
	}

	if cfg.ThemeFile != "" {
		manifest, err := orchestrator.LoadManifestFile(cfg.ThemeFile)
		if err != nil {
			return nil, err
		}
		selector, err := orchestrator.NewManifestSelector(manifest)
		if err != nil {
			return nil, err
		}
		orcOpts = append(orcOpts,
			orchestrator.WithThemeSelector(selector),
			orchestrator.WithDefaultTheme(cfg.Theme, cfg.ThemeVariant),
		)
	}

	orcOpts = append(orcOpts,
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithAssetPrefix(cfg.AssetPrefix),
	)
	return orchestrator.New(orcOpts...), nil
}

func confirmOverwrite(ctx context.Context, driver prompt.Driver, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, fmt.Errorf("stat output: %w", err)
	}
	return driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("%s exists. Overwrite?", path),
	})
}

func environ() map[string]string {
	out := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok {
			out[key] = value
		}
	}
	return out
}
