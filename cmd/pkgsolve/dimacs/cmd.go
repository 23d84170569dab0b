package dimacs

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pkgkit/pkgsolve/internal/extsolver"
	"github.com/pkgkit/pkgsolve/internal/sat"
	"github.com/pkgkit/pkgsolve/internal/universe"
	"github.com/pkgkit/pkgsolve/pkg/solver"
)

// NewDimacsCommand groups the DIMACS interchange operations: exporting an
// encoded problem for an external solver, and deciding one in-process
// with go-air/gini instead of this repository's own DPLL search.
func NewDimacsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dimacs",
		Short: "Export or solve the demo universe's CNF via the DIMACS interchange format",
	}

	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newGiniCmd())

	return cmd
}

func newExportCmd() *cobra.Command {
	var job string

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Writes the demo universe's CNF in DIMACS format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobType, err := parseJob(job)
			if err != nil {
				return err
			}
			p, err := sat.Encode(universe.Demo(jobType))
			if err != nil {
				return err
			}

			out := os.Stdout
			if len(args) == 1 {
				f, err := os.Create(args[0])
				if err != nil {
					return fmt.Errorf("error creating dimacs file (%s): %w", args[0], err)
				}
				defer f.Close()
				out = f
			}
			return sat.ExportDIMACS(p, out)
		},
	}
	cmd.Flags().StringVar(&job, "job", "upgrade", "job type: install, upgrade, delete, or fetch")
	return cmd
}

func newGiniCmd() *cobra.Command {
	var job string

	cmd := &cobra.Command{
		Use:   "gini",
		Short: "Decides the demo universe with the go-air/gini backend and prints the resulting actions",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobType, err := parseJob(job)
			if err != nil {
				return err
			}

			result, err := extsolver.Solve(universe.Demo(jobType))
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
		},
	}
	cmd.Flags().StringVar(&job, "job", "upgrade", "job type: install, upgrade, delete, or fetch")
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
