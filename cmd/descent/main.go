// Package main provides the Descent command line interface.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/descent-ml/descent/autodiff"
	"github.com/descent-ml/descent/backend/cpu"
	"github.com/descent-ml/descent/dataset"
	"github.com/descent-ml/descent/plotutil"
	"github.com/descent-ml/descent/regress"
	"github.com/descent-ml/descent/train"
)

const version = "v0.1.0-dev"

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("Descent %s\n", version)
	case "fit":
		if err := runFit(os.Args[2:]); err != nil {
			log.Fatalf("descent fit: %v", err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("Descent - Gradient Descent Linear Regression")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  fit        Train a linear model on synthetic data")
	fmt.Println("  version    Show version")
	fmt.Println("")
	fmt.Println("Run 'descent fit -h' for training flags.")
}

func runFit(args []string) error {
	fs := flag.NewFlagSet("fit", flag.ExitOnError)
	coeffsFlag := fs.String("coeffs", "3,5,2,7", "ground-truth coefficients, intercept first")
	samples := fs.Int("n", 10000, "number of samples to generate")
	lr := fs.Float64("lr", 0.1, "learning rate")
	iters := fs.Int("iters", 5000, "number of full-batch iterations")
	seed := fs.Int64("seed", 42, "seed for data generation and weight init")
	plotPath := fs.String("plot", "", "write a loss curve image to this path (.png, .svg, .pdf)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	coeffs, err := parseCoeffs(*coeffsFlag)
	if err != nil {
		return err
	}

	data, err := dataset.Linear(coeffs, *samples, *seed)
	if err != nil {
		return fmt.Errorf("generate data: %w", err)
	}
	log.Printf("Generated %d samples, %d features (intercept included)", data.Rows, data.Cols)

	backend := autodiff.New(cpu.New())
	trainer, err := train.NewTrainer(train.Config{
		FeatureDim:   data.Cols,
		LearningRate: *lr,
		Iterations:   *iters,
		Seed:         *seed,
	}, backend)
	if err != nil {
		return err
	}

	result, err := trainer.FitData(data)
	if err != nil {
		return fmt.Errorf("train: %w", err)
	}

	ols, err := regress.OLS(data.Features, data.Targets, data.Rows, data.Cols)
	if err != nil {
		return fmt.Errorf("least squares baseline: %w", err)
	}

	log.Printf("Final loss after %d iterations: %.3e", len(result.History), result.FinalLoss())
	log.Printf("%-12s %14s %14s %14s", "coefficient", "true", "descent", "ols")
	for j := range coeffs {
		log.Printf("w[%d]         %14.6f %14.6f %14.6f", j, coeffs[j], result.Weights[j], ols.Coeffs[j])
	}
	log.Printf("OLS R²: %.9f", ols.R2)

	if *plotPath != "" {
		if err := plotutil.LossCurve(result.History, plotutil.Window{}, *plotPath); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		log.Printf("Loss curve written to %s", *plotPath)
	}
	return nil
}

func parseCoeffs(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	coeffs := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parse coefficient %q: %w", p, err)
		}
		coeffs = append(coeffs, v)
	}
	return coeffs, nil
}
