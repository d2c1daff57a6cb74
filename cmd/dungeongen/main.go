package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/dungo/pkg/dungeon"
	"github.com/dshills/dungo/pkg/export"
	"github.com/dshills/dungo/pkg/validation"
)

const version = "1.0.0"

// CLI flags
var (
	configPath = flag.String("config", "", "Path to YAML configuration file")
	preset     = flag.String("preset", "", "Size preset to resolve instead of -config: small, medium, or large")
	style      = flag.String("style", "classic", "Style override used with -preset: classic, cavern, fortress, or crypt")
	outputDir  = flag.String("output", ".", "Output directory for generated files")
	format     = flag.String("format", "json", "Export format: json, tmj, svg, or all")
	seedFlag   = flag.Uint64("seed", 0, "Override the seed from config/preset (0 = use config/auto seed)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	validate   = flag.Bool("validate", true, "Run validation and report hard/soft constraint results")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeongen version %s\n", version)
		os.Exit(0)
	}

	if *help {
		printHelp()
		os.Exit(0)
	}

	if *configPath == "" && *preset == "" {
		fmt.Fprintln(os.Stderr, "Error: one of -config or -preset is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"json": true, "tmj": true, "svg": true, "all": true}
	if !validFormats[*format] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: json, tmj, svg, all\n", *format)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := resolveConfig()
	if err != nil {
		return fmt.Errorf("failed to resolve config: %w", err)
	}

	if *verbose {
		fmt.Printf("Using seed: %d\n", cfg.Seed)
		fmt.Printf("Grid: %dx%d\n", cfg.GridWidth, cfg.GridHeight)
		fmt.Printf("Room count: %d-%d\n", cfg.RoomCount.Min, cfg.RoomCount.Max)
		fmt.Printf("Style: %s\n", cfg.Style)
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	start := time.Now()
	if *verbose {
		fmt.Println("Generating dungeon...")
	}

	artifact, err := dungeon.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	var report *validation.ValidationReport
	if *validate {
		report, err = validation.NewValidator().Validate(ctx, artifact, cfg)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	if *verbose {
		fmt.Printf("Generation completed in %v\n", elapsed)
		printStats(artifact, report)
	}

	baseName := fmt.Sprintf("dungeon_%d", cfg.Seed)

	if *format == "json" || *format == "all" {
		if err := exportJSON(artifact, baseName); err != nil {
			return err
		}
	}
	if *format == "tmj" || *format == "all" {
		if err := exportTMJ(artifact, baseName); err != nil {
			return err
		}
	}
	if *format == "svg" || *format == "all" {
		if err := exportSVG(artifact, baseName); err != nil {
			return err
		}
	}

	status := ""
	if report != nil {
		status = fmt.Sprintf(", validation %s", validationStatus(report.Passed))
	}
	fmt.Printf("Successfully generated dungeon (seed=%d) in %v%s\n", cfg.Seed, elapsed, status)
	return nil
}

// resolveConfig builds a Config either from a YAML file (-config) or from
// a named size/style preset pair (-preset/-style), applying a -seed
// override on top either way.
func resolveConfig() (dungeon.Config, error) {
	var cfg dungeon.Config

	if *preset != "" {
		overrides := &dungeon.Overrides{}
		if *seedFlag != 0 {
			seed := *seedFlag
			overrides.Seed = &seed
		}
		resolved, err := dungeon.Resolve(*preset, *style, overrides)
		if err != nil {
			return dungeon.Config{}, err
		}
		return resolved, nil
	}

	loaded, err := dungeon.LoadConfig(*configPath)
	if err != nil {
		return dungeon.Config{}, err
	}
	cfg = *loaded
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	return cfg, nil
}

func exportJSON(artifact *dungeon.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Exporting JSON to %s\n", filename)
	}
	if err := export.SaveJSONToFile(artifact, filename); err != nil {
		return fmt.Errorf("failed to export JSON: %w", err)
	}
	reportSize(filename)
	return nil
}

func exportTMJ(artifact *dungeon.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".tmj")
	if *verbose {
		fmt.Printf("Exporting TMJ to %s\n", filename)
	}
	if err := export.SaveArtifactToTMJFile(artifact, filename, true); err != nil {
		return fmt.Errorf("failed to export TMJ: %w", err)
	}
	reportSize(filename)
	return nil
}

func exportSVG(artifact *dungeon.Artifact, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Exporting SVG to %s\n", filename)
	}

	opts := export.DefaultSVGOptions()
	opts.Title = fmt.Sprintf("Dungeon (%s)", artifact.Metadata.Style)

	if err := export.SaveSVGToFile(artifact, filename, opts); err != nil {
		return fmt.Errorf("failed to export SVG: %w", err)
	}
	reportSize(filename)
	return nil
}

func reportSize(filename string) {
	if !*verbose {
		return
	}
	info, err := os.Stat(filename)
	if err != nil {
		return
	}
	fmt.Printf("  Wrote %d bytes\n", info.Size())
}

func printStats(artifact *dungeon.Artifact, report *validation.ValidationReport) {
	meta := artifact.Metadata
	fmt.Println("\nDungeon Statistics:")
	fmt.Printf("  Rooms: %d (requested %d)\n", meta.RoomCount, meta.RequestedRoomCount)
	fmt.Printf("  Grid: %dx%d\n", meta.GridWidth, meta.GridHeight)
	fmt.Printf("  Cells: %d\n", len(artifact.Cells))
	fmt.Printf("  Objects: %d\n", len(artifact.Objects))
	fmt.Printf("  Doors: %d (secret: %d)\n", meta.DoorCount, meta.SecretDoorCount)

	if report == nil {
		return
	}
	fmt.Printf("\nValidation: %s\n", validationStatus(report.Passed))
	if len(report.Warnings) > 0 {
		fmt.Printf("  Warnings: %d\n", len(report.Warnings))
	}
	if len(report.Errors) > 0 {
		fmt.Printf("  Errors: %d\n", len(report.Errors))
	}
	if report.Metrics != nil {
		fmt.Println("\nMetrics:")
		fmt.Printf("  BranchingFactor: %.3f\n", report.Metrics.BranchingFactor)
		fmt.Printf("  AverageCorridorLen: %.3f\n", report.Metrics.AverageCorridorLen)
		fmt.Printf("  RoomDensity: %.3f\n", report.Metrics.RoomDensity)
		fmt.Printf("  DoorsPerRoom: %.3f\n", report.Metrics.DoorsPerRoom)
	}
}

func validationStatus(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: dungeongen (-config <config.yaml> | -preset <small|medium|large>) [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'dungeongen -help' for detailed help")
}

func printHelp() {
	fmt.Printf("dungeongen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural B/X-style dungeons.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeongen -config <config.yaml> [options]")
	fmt.Println("  dungeongen -preset <small|medium|large> [-style <classic|cavern|fortress|crypt>] [options]")
	fmt.Println("\nFlags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file")
	fmt.Println("  -preset string")
	fmt.Println("        Size preset to resolve instead of -config: small, medium, or large")
	fmt.Println("  -style string")
	fmt.Println("        Style override used with -preset (default: classic)")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Export format: json, tmj, svg, or all (default: json)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the seed from config/preset (0 = use config/auto seed)")
	fmt.Println("  -validate")
	fmt.Println("        Run validation and report constraint results (default: true)")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  dungeongen -preset medium -style cavern -format all -output ./out")
	fmt.Println("  dungeongen -config dungeon.yaml -seed 12345 -verbose")
}
