package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/tracemineral/synthesis-engine/internal/calibration"
	"github.com/tracemineral/synthesis-engine/internal/grading"
	"github.com/tracemineral/synthesis-engine/internal/infrastructure/observability"
	"github.com/tracemineral/synthesis-engine/internal/paradigm"
	"github.com/tracemineral/synthesis-engine/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	cases, err := calibration.LoadGoldenCases(cfg.Engine.GoldenGradingsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load golden cases")
	}
	if err := calibration.ValidateGoldenCases(cases); err != nil {
		log.Fatal().Err(err).Msg("golden case set is invalid")
	}

	runner := calibration.NewRunner(grading.NewGrader(paradigm.NewRegistry()))
	summary, err := runner.Run(cases)
	if err != nil {
		log.Fatal().Err(err).Msg("calibration failed")
	}

	out, _ := json.MarshalIndent(summary, "", "  ")
	fmt.Println(string(out))
}
