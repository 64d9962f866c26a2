// Command register aligns a moving grayscale image to a fixed reference
// image and writes the registered result.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"med-register/internal/imagef"
	"med-register/internal/registration"
	"med-register/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	fixedPath := flag.String("f", "", "Path to fixed (reference) image")
	movingPath := flag.String("m", "", "Path to moving image")
	outPath := flag.String("o", "registered.png", "Path for the registered output image")
	costPath := flag.String("costs", "", "Optional CSV file for the per-iteration cost history")
	configPath := flag.String("config", "", "Optional YAML run configuration")
	quiet := flag.Bool("q", false, "Suppress per-iteration progress output")
	flag.Parse()

	if *showVersion {
		fmt.Printf("register %s (%s)\n", version.Version, version.GitCommit)
		return
	}

	if *fixedPath == "" || *movingPath == "" {
		fmt.Println("Usage: register -f <fixed> -m <moving> [-o <out.png>] [-costs <costs.csv>] [-config <reg.yaml>] [-q]")
		os.Exit(1)
	}

	opts := registration.DefaultOptions()
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg.apply(&opts)
	}

	fmt.Printf("=== Loading images ===\n")
	fixed, err := imagef.Load(*fixedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load fixed image: %v\n", err)
		os.Exit(1)
	}
	moving, err := imagef.Load(*movingPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load moving image: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Fixed: %dx%d, Moving: %dx%d\n", fixed.W, fixed.H, moving.W, moving.H)

	if !*quiet {
		opts.Progress = printProgress
	}

	result, err := registration.Register(fixed, moving, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Registration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n=== Final parameters ===\n")
	fmt.Printf("Scale:       %.4f\n", result.Params.Scale)
	fmt.Printf("Rotation:    %.4f deg\n", result.Params.Theta)
	fmt.Printf("Translation: (%.2f, %.2f) px\n", result.Params.Tx, result.Params.Ty)
	if n := len(result.CostHistory); n > 0 {
		fmt.Printf("Cost: %.2f -> %.2f over %d iterations\n",
			result.CostHistory[0], result.CostHistory[n-1], n)
	}

	if err := writePNG(*outPath, result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", *outPath)

	if *costPath != "" {
		if err := writeCostCSV(*costPath, result.CostHistory); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write cost history: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *costPath)
	}
}

// printProgress mirrors the solver's cadence: a header when a level starts,
// then every 10th iteration.
func printProgress(rec registration.ProgressRecord) {
	if rec.Iteration == 1 {
		fmt.Printf("\n=== Optimizing at pyramid level %d ===\n", rec.Level)
	}
	if rec.Iteration%10 == 0 {
		fmt.Printf("Iteration %d/%d, Cost: %.2f, Params: s=%.3f theta=%.3f tx=%.3f ty=%.3f\n",
			rec.Iteration, rec.Iterations, rec.Cost,
			rec.Params.Scale, rec.Params.Theta, rec.Params.Tx, rec.Params.Ty)
	}
}

func writePNG(path string, result *registration.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, result.Registered.ToImage()); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func writeCostCSV(path string, history []float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "iteration,cost")
	for i, cost := range history {
		fmt.Fprintf(file, "%d,%g\n", i+1, cost)
	}
	return nil
}
