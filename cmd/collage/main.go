// Command collage tessellates a canvas into cells, fits one photo into each
// cell in submission order, and writes the collage and an optional garment
// mockup as PNG files.
//
// Usage:
//
//	collage -layout hexagonal -columns 7 -rows 8 -o out.png photo1.jpg photo2.png ...
//	collage -config project.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/collage"
	"github.com/gogpu/collage/internal/config"
	"github.com/gogpu/collage/surface"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "collage:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("collage", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML project file")
		layout     = fs.String("layout", "", "layout: hexagonal, square, circular, center-focus")
		rows       = fs.Int("rows", 0, "rows (hexagonal, square)")
		columns    = fs.Int("columns", 0, "columns (hexagonal, square)")
		count      = fs.Int("count", 0, "cell count (circular, center-focus)")
		width      = fs.Int("width", 0, "canvas width")
		height     = fs.Int("height", 0, "canvas height")
		output     = fs.String("o", "", "collage output file")
		mockup     = fs.String("mockup", "", "mockup output file")
		garment    = fs.String("garment", "", "garment photo for the mockup")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	collage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	log := collage.Logger()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["layout"] {
		kind, err := collage.ParseLayoutKind(*layout)
		if err != nil {
			return err
		}
		if kind != cfg.Layout.Kind {
			cfg.Layout = collage.Layout{Kind: kind}
		}
	}
	if set["rows"] {
		cfg.Layout.Rows = *rows
	}
	if set["columns"] {
		cfg.Layout.Columns = *columns
	}
	if set["count"] {
		cfg.Layout.Count = *count
	}
	cfg.Layout = config.DefaultLayout(cfg.Layout)
	if set["width"] {
		cfg.Canvas.Width = *width
	}
	if set["height"] {
		cfg.Canvas.Height = *height
	}
	if set["o"] {
		cfg.Output.Collage = *output
	}
	if set["mockup"] {
		cfg.Output.Mockup = *mockup
	}
	if set["garment"] {
		cfg.Mockup.Garment = *garment
	}
	cfg.Photos = append(cfg.Photos, fs.Args()...)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return build(ctx, cfg, log)
}

func build(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	cells, err := collage.Generate(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Layout)
	if err != nil {
		return err
	}
	if len(cells) == 0 {
		return fmt.Errorf("%w: canvas %dx%d is too small for layout %s",
			collage.ErrEmptyGrid, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Layout.Kind)
	}
	log.Info("grid generated", "layout", cfg.Layout.Kind, "cells", len(cells), "capacity", cfg.Layout.Capacity())

	canvas := surface.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height)
	renderers := []collage.Renderer{canvas}

	var mock *surface.Mockup
	if cfg.Output.Mockup != "" {
		var g *collage.Image
		if cfg.Mockup.Garment != "" {
			if g, err = collage.LoadImageFile(cfg.Mockup.Garment); err != nil {
				return err
			}
		}
		mock = surface.NewMockup(cfg.Mockup.Width, cfg.Mockup.Height, g,
			cfg.Mockup.PrintArea.Rect(), cfg.Canvas.Width, cfg.Canvas.Height)
		renderers = append(renderers, mock.Renderer())
	}

	reg := collage.NewRegistry(collage.MultiRenderer(renderers...), collage.WithFitter(cfg.Fit.Fitter()))
	reg.Reset(cells)

	if len(cfg.Photos) > len(cells) {
		log.Warn("more photos than cells, extra photos skipped", "photos", len(cfg.Photos), "cells", len(cells))
	}

	var results []<-chan collage.AssignResult
	for i, p := range cfg.Photos {
		if i >= len(cells) {
			break
		}
		results = append(results, reg.AssignAsync(ctx, i, collage.FileLoader(p)))
	}

	var failed int
	for i, ch := range results {
		res := <-ch
		switch {
		case res.Err == nil:
		case errors.Is(res.Err, collage.ErrStaleAssignment):
		case errors.Is(res.Err, context.Canceled):
			return res.Err
		default:
			failed++
			log.Warn("photo skipped", "cell", i, "path", cfg.Photos[i], "err", res.Err)
		}
	}

	if err := canvas.SavePNG(cfg.Output.Collage); err != nil {
		return err
	}
	log.Info("collage written", "path", cfg.Output.Collage, "photos", reg.Len(), "failed", failed)

	if mock != nil {
		if err := mock.SavePNG(cfg.Output.Mockup); err != nil {
			return err
		}
		log.Info("mockup written", "path", cfg.Output.Mockup)
	}
	return nil
}
