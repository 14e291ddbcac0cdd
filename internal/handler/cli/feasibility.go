// Package cli runs scenario files from the command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"HealthFeas/internal/domain/models"
	"HealthFeas/internal/presenter"
	"HealthFeas/internal/usecase"
	xhttp "HealthFeas/pkg/http"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// Options select what a run evaluates and where it writes.
type Options struct {
	ScenarioPath string
	Venture      string // empty runs the whole portfolio
	XLSXPath     string
}

// ParseScenario decodes a YAML portfolio over the defaults and validates it.
// Sections and fields left out keep their default values.
func ParseScenario(ctx context.Context, b []byte) (*models.PortfolioRequest, error) {
	req := &models.PortfolioRequest{}
	if err := defaults.Set(req); err != nil {
		return nil, fmt.Errorf("scenario defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, req); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if verr := xhttp.ValidateStruct(ctx, req); verr != nil {
		return nil, &ValidationError{Errors: verr}
	}
	return req, nil
}

// ValidationError lists every out-of-range input in a scenario file.
type ValidationError struct {
	Errors []xhttp.ValidationError
}

func (e *ValidationError) Error() string {
	msg := "invalid scenario:"
	for _, v := range e.Errors {
		msg += "\n  " + v.Message
	}
	return msg
}

// Run evaluates the scenario file, prints one table per venture to w and
// optionally writes a workbook.
func Run(ctx context.Context, calc *usecase.ScenarioCalculator, opts Options, w io.Writer) error {
	b, err := os.ReadFile(opts.ScenarioPath)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}
	req, err := ParseScenario(ctx, b)
	if err != nil {
		return err
	}

	params := req.Params()
	if opts.Venture != "" {
		id, err := models.ParseVentureID(opts.Venture)
		if err != nil {
			return err
		}
		params = filterParams(params, id)
	}

	results, err := calc.CalculatePortfolio(ctx, req.Globals, params...)
	if err != nil {
		return err
	}
	if err := WriteTables(w, presenter.Views(results)); err != nil {
		return err
	}

	if opts.XLSXPath != "" {
		f, err := os.Create(opts.XLSXPath)
		if err != nil {
			return fmt.Errorf("create workbook: %w", err)
		}
		if err := presenter.WriteWorkbook(f, results); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close workbook: %w", err)
		}
	}
	return nil
}

// WriteTables prints each view as an aligned two-column table.
func WriteTables(w io.Writer, views []models.ScenarioView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, v := range views {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		fmt.Fprintf(tw, "## %s\n", v.Title)
		fmt.Fprintln(tw, "Metric\tValue")
		for _, row := range v.Table {
			fmt.Fprintf(tw, "%s\t%s\n", row.Metric, row.Value)
		}
	}
	return tw.Flush()
}

func filterParams(params []models.VentureParameters, id models.VentureID) []models.VentureParameters {
	for _, p := range params {
		if p.Venture() == id {
			return []models.VentureParameters{p}
		}
	}
	return nil
}
