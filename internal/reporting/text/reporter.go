package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/sentinelops/dbx-resource-monitor/internal/core/domain"
	"github.com/sentinelops/dbx-resource-monitor/internal/core/ports"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `yaml:"no_color"`
}

type Reporter struct {
	config Config
	writer io.Writer
	logger ports.Logger
}

func NewReporter(cfg Config, logger ports.Logger) (*Reporter, error) {
	if cfg.NoColor || !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	return &Reporter{
		config: cfg,
		writer: os.Stdout,
		logger: logger,
	}, nil
}

func isTerminal(f *os.File) bool {
	stat, err := f.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func (r *Reporter) Report(ctx context.Context, report domain.Report) error {
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintln(r.writer, "Resource Monitor Report")
	fmt.Fprintln(r.writer, "=======================")
	fmt.Fprintf(r.writer, "Resource type: %s\n", cyan(report.ResourceType))
	fmt.Fprintf(r.writer, "Action mode:   %s\n", report.Mode)
	if report.DryRun {
		fmt.Fprintf(r.writer, "Dry run:       %s\n", yellow("yes"))
	}
	fmt.Fprintf(r.writer, "Checked:       %d\n", report.Checked)
	fmt.Fprintln(r.writer)

	if len(report.Unauthorized) == 0 {
		fmt.Fprintln(r.writer, green("No violations found. All resources are whitelisted."))
		return nil
	}

	fmt.Fprintf(r.writer, "%s\n\n", red(fmt.Sprintf("Violations: %d", len(report.Unauthorized))))

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tID\tDETAILS")
	fmt.Fprintln(tw, "------\t--\t-------")
	for _, res := range report.Unauthorized {
		status := r.statusFor(report, res.ID)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", status, res.ID, res.Details())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(r.writer)
	switch {
	case report.DryRun && report.Mode == domain.ModeDelete:
		fmt.Fprintf(r.writer, "%s\n", yellow(fmt.Sprintf("Would delete %d resources.", len(report.Summary.WouldDelete))))
	case report.DryRun:
		fmt.Fprintln(r.writer, yellow("Would fail the job to trigger the alert notification."))
	case report.Mode == domain.ModeDelete:
		line := fmt.Sprintf("Deleted %d resources, %d failed.", len(report.Summary.Deleted), len(report.Summary.Failed))
		if report.Summary.PartialFailure() {
			fmt.Fprintln(r.writer, red(line))
		} else {
			fmt.Fprintln(r.writer, green(line))
		}
	default:
		fmt.Fprintln(r.writer, red("Alerting: the job will fail to trigger notifications."))
	}

	return nil
}

func (r *Reporter) statusFor(report domain.Report, id string) string {
	if report.Mode == domain.ModeAlert {
		if report.DryRun {
			return "WOULD ALERT"
		}
		return "ALERT"
	}
	for _, d := range report.Summary.Deleted {
		if d == id {
			return "DELETED"
		}
	}
	for _, f := range report.Summary.Failed {
		if f == id {
			return "DELETE FAILED"
		}
	}
	return "WOULD DELETE"
}
