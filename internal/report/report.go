// Package report prints calculation results for a terminal.
package report

import (
	"fmt"
	"io"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"

	"github.com/fatih/color"
	"golang.org/x/text/message"
)

// Terminal colours closest to each worker's web colour.
var workerColors = map[domain.TaskCode]color.Attribute{
	domain.TaskSwap:   color.FgGreen,
	domain.TaskFix:    color.FgYellow,
	domain.TaskRepair: color.FgRed,
}

// Print writes the total and each worker's breakdown.
// Colour output follows color.NoColor.
func Print(w io.Writer, result *domain.TotalTimeResult, p *message.Printer) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(w, locale.Total(p, result.TotalMinutes)); err != nil {
		return fmt.Errorf("print report: %w", err)
	}

	for _, wb := range result.Workers {
		heading := color.New(workerColors[wb.Worker.Task], color.Bold)
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("print report: %w", err)
		}
		if _, err := heading.Fprintln(w, locale.WorkerTotal(p, wb)); err != nil {
			return fmt.Errorf("print report: %w", err)
		}

		for _, item := range wb.Items {
			if _, err := fmt.Fprintf(w, "  - %s\n", locale.DescribeItem(p, item)); err != nil {
				return fmt.Errorf("print report: %w", err)
			}
		}
	}

	return nil
}
