package main

import (
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/klippa-app/go-pdfium/webassembly"
	"github.com/urfave/cli/v3"

	"github.com/halvorsen/tablefind"
)

func main() {
	cmd := &cli.Command{
		Name:  "tablefind",
		Usage: "Detect and extract tables from a PDF file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Input PDF file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output JSON file path (default: stdout)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML settings file path",
			},
			&cli.StringFlag{
				Name:  "debug-image-dir",
				Usage: "If set, write one annotated PNG per page with detected tables here",
			},
			&cli.BoolFlag{
				Name:  "metrics-log",
				Usage: "Log per-page timing to stderr",
			},
		},
		Action: findTables,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func findTables(_ context.Context, cmd *cli.Command) error {
	inputPath := cmd.String("input")
	outputPath := cmd.String("output")
	configPath := cmd.String("config")
	debugDir := cmd.String("debug-image-dir")

	settings, err := tablefind.LoadSettings(configPath, nil)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	pool, err := webassembly.Init(webassembly.Config{MinIdle: 1, MaxIdle: 1, MaxTotal: 1})
	if err != nil {
		return fmt.Errorf("failed to initialise pdfium: %w", err)
	}
	defer pool.Close()

	instance, err := pool.GetInstance(30 * time.Second)
	if err != nil {
		return fmt.Errorf("failed to get pdfium instance: %w", err)
	}

	finder := tablefind.NewFinderWithSettings(instance, settings)
	finder.EnableMetricsLogging = cmd.Bool("metrics-log")

	results, err := finder.FindInFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to detect tables: %w", err)
	}

	if debugDir != "" {
		if err := writeDebugImages(results, debugDir); err != nil {
			return fmt.Errorf("failed to write debug images: %w", err)
		}
	}

	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, encoded, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Results written to %s\n", outputPath)
		return nil
	}
	fmt.Println(string(encoded))
	return nil
}

func writeDebugImages(results []tablefind.PageResult, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for _, r := range results {
		if len(r.Tables) == 0 {
			continue
		}
		page := &tablefind.Page{Width: maxX1(r.Tables), Height: maxBottom(r.Tables)}
		canvas := tablefind.VisualizeTables(tablefind.BlankCanvas(page, 150), r.Tables, 150, tablefind.DefaultDebugColors())

		f, err := os.Create(fmt.Sprintf("%s/page-%03d.png", dir, r.PageNumber))
		if err != nil {
			return err
		}
		err = png.Encode(f, canvas)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func maxX1(tables []tablefind.Table) float64 {
	var m float64
	for _, t := range tables {
		if t.X1 > m {
			m = t.X1
		}
	}
	return m
}

func maxBottom(tables []tablefind.Table) float64 {
	var m float64
	for _, t := range tables {
		if t.Bottom > m {
			m = t.Bottom
		}
	}
	return m
}
