package solve

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgkit/pkgsolve/internal/universe"
	"github.com/pkgkit/pkgsolve/pkg/solver"
)

func NewSolveCommand() *cobra.Command {
	var job string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Decides a demo package universe and prints the resulting actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobType, err := parseJob(job)
			if err != nil {
				return err
			}
			return run(jobType, verbose)
		},
	}

	cmd.Flags().StringVar(&job, "job", "upgrade", "job type: install, upgrade, delete, or fetch")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "trace failed decision frames to stderr")

	return cmd
}

func parseJob(s string) (solver.JobType, error) {
	switch s {
	case "install":
		return solver.JobInstall, nil
	case "upgrade":
		return solver.JobUpgrade, nil
	case "delete":
		return solver.JobDelete, nil
	case "fetch":
		return solver.JobFetch, nil
	default:
		return 0, fmt.Errorf("unknown job type %q", s)
	}
}

func run(job solver.JobType, verbose bool) error {
	u := universe.Demo(job)

	var opts []solver.Option
	if verbose {
		opts = append(opts, solver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
	}

	result, err := solver.Solve(u, opts...)
	if err != nil {
		fmt.Printf("no solution found: %s\n", err)
		return nil
	}

	fmt.Println("solution found:")
	for _, action := range result.Actions {
		fmt.Println(action)
	}
	for _, warn := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", warn)
	}
	return nil
}
