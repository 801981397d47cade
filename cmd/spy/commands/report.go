package commands

import (
	"context"
	"fmt"

	"github.com/alecthomas/kingpin/v2"

	"github.com/slok/spy/internal/app/report"
)

type ReportCommand struct {
	Cmd     *kingpin.CmdClause
	rootCmd *RootCommand

	job      string
	elapsed  float64
	complete float64
}

// NewReportCommand returns the report command.
func NewReportCommand(rootCmd *RootCommand, app *kingpin.Application) *ReportCommand {
	c := &ReportCommand{rootCmd: rootCmd}

	c.Cmd = app.Command("report", "Report progress for a job, replacing its previous status.")
	c.Cmd.Arg("job", "Name of the job.").Required().StringVar(&c.job)
	c.Cmd.Flag("elapsed", "Elapsed job time in seconds.").Required().Float64Var(&c.elapsed)
	c.Cmd.Flag("complete", "Fraction of the work done, in (0, 1]. Must not be zero.").Required().Float64Var(&c.complete)

	return c
}

func (c ReportCommand) Name() string { return c.Cmd.FullCommand() }

func (c ReportCommand) Run(ctx context.Context) error {
	logger := c.rootCmd.Logger

	// Initialize storage.
	repo, err := c.rootCmd.NewRepository(ctx)
	if err != nil {
		return fmt.Errorf("could not create repository: %w", err)
	}

	// Create report service.
	svc, err := report.NewService(report.ServiceConfig{
		Repository: repo,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("could not create service: %w", err)
	}

	// Execute report.
	rec, err := svc.Run(ctx, report.Request{
		Name:             c.job,
		ElapsedSeconds:   c.elapsed,
		FractionComplete: c.complete,
	})
	if err != nil {
		return fmt.Errorf("could not report job status: %w", err)
	}

	// Output success message.
	fmt.Fprintf(c.rootCmd.Stdout, "Status reported!\n")
	for _, f := range rec.Fields {
		fmt.Fprintf(c.rootCmd.Stdout, "  %s: %s\n", f.Key, f.Value)
	}

	return nil
}
