package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// Config holds the parsed command line
type Config struct {
	Scene     string
	ScenesDir string
	Sampling  core.SamplingConfig // Zero fields keep the scene's values
	Render    renderer.RenderConfig
	Out       string
	List      bool
	Help      bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line arguments into a Config
func parseFlags(args []string, stderr io.Writer) (*Config, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	config := &Config{}
	fs.StringVar(&config.Scene, "scene", "default", "Built-in scene ID or path to a JSON scene file")
	fs.StringVar(&config.ScenesDir, "scenes", "scenes", "Directory searched for JSON scene files by -list")
	fs.IntVar(&config.Sampling.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Sampling.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&config.Sampling.SamplesPerPixel, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&config.Sampling.MaxDepth, "depth", 0, "Maximum ray bounce depth (0 = scene default)")
	fs.IntVar(&config.Render.NumWorkers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.Int64Var(&config.Render.Seed, "seed", renderer.DefaultRenderConfig().Seed, "Random seed")
	fs.StringVar(&config.Out, "out", "-", "Output file: '-' for PPM on stdout, *.ppm or *.png")
	fs.BoolVar(&config.List, "list", false, "List available scenes and exit")
	fs.BoolVar(&config.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return nil, fs, err
	}

	s := config.Sampling
	if s.Width < 0 || s.Height < 0 || s.SamplesPerPixel < 0 || s.MaxDepth < 0 {
		return nil, fs, errors.New("-width, -height, -samples and -depth must not be negative")
	}
	if fs.NArg() > 0 {
		return nil, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return config, fs, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	config, fs, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if config.Help {
		printHelp(fs, stdout)
		return nil
	}
	if config.List {
		return listScenes(config.ScenesDir, stdout)
	}

	logger := renderer.NewWriterLogger(stderr)

	selectedScene, err := createScene(config.Scene)
	if err != nil {
		return err
	}
	selectedScene.ApplySamplingOverrides(config.Sampling)
	logger.Printf("Using scene %q (%d primitives)\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	raytracer, err := renderer.NewRaytracer(selectedScene, config.Render, logger)
	if err != nil {
		return err
	}

	img, stats, err := raytracer.RenderPass(context.Background())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Render completed in %v (%d samples, average luminance %.3f)\n",
		stats.Duration, stats.TotalSamples, stats.AverageLuminance)

	if err := writeOutput(config.Out, img, stdout); err != nil {
		return err
	}
	if config.Out != "-" {
		logger.Printf("Render saved as %s\n", config.Out)
	}
	return nil
}

// createScene builds a built-in scene or loads a scene file
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Create(sceneType)
}

// writeOutput writes img to stdout as PPM ("-") or to a file chosen by extension
func writeOutput(out string, img *image.RGBA, stdout io.Writer) error {
	if out == "-" {
		return writePPM(stdout, img)
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".png":
		return output.SavePNG(out, img)
	case ".ppm":
		file, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		if err := writePPM(file, img); err != nil {
			file.Close()
			return err
		}
		return file.Close()
	default:
		return fmt.Errorf("unsupported output format %q (use .ppm or .png)", out)
	}
}

func writePPM(w io.Writer, img *image.RGBA) error {
	ppm := output.NewPPMWriter(w)
	if err := renderer.WriteImage(ppm, img); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return ppm.Flush()
}

func listScenes(dir string, w io.Writer) error {
	scenes, err := scene.ListScenes(dir)
	if err != nil {
		return err
	}

	group := ""
	for _, info := range scenes {
		if info.Group != group {
			group = info.Group
			fmt.Fprintf(w, "%s:\n", group)
		}
		id := info.ID
		if info.Type == "file" {
			id = info.FilePath
		}
		fmt.Fprintf(w, "  %-24s %s\n", id, info.Description)
	}
	return nil
}

func printHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Recursive Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options] > image.ppm")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use -list to see available scenes. Progress is written to stderr.")
}
