package main

import (
	"context"
	"flag"
	"os"

	"HealthFeas/internal/handler/cli"
	"HealthFeas/internal/services/ventures"
	"HealthFeas/internal/usecase"
	applogger "HealthFeas/pkg/logger"
)

func main() {
	scenario := flag.String("scenario", "config/scenario.example.yaml", "scenario YAML file")
	venture := flag.String("venture", "", "evaluate a single venture: diagnostics, tele_wellness or cosmetic_studio")
	xlsx := flag.String("xlsx", "", "also write the results to this workbook")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	l, err := applogger.New(&applogger.Config{Level: *level, Format: "console", Output: "stderr"})
	if err != nil {
		l = applogger.Nop()
	}

	calc := usecase.NewScenarioCalculator(usecase.NewScenarioRunner(ventures.All()...), nil, nil, l, 0)
	opts := cli.Options{ScenarioPath: *scenario, Venture: *venture, XLSXPath: *xlsx}
	if err := cli.Run(context.Background(), calc, opts, os.Stdout); err != nil {
		l.Error("feasibility run failed", applogger.String("scenario", *scenario), applogger.Error(err))
		os.Exit(1)
	}
}
