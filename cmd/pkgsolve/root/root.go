package root

import (
	"github.com/spf13/cobra"

	"github.com/pkgkit/pkgsolve/cmd/pkgsolve/dimacs"
	"github.com/pkgkit/pkgsolve/cmd/pkgsolve/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgsolve",
		Short: "pkgsolve is a package-management dependency solver",
		Long: `A SAT-based core for deciding package transactions: given a
universe of candidate packages and a set of install/upgrade/delete
requests, it decides a coherent subset of candidates to keep and
projects the decision into install/upgrade/delete/fetch actions.`,
	}

	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())

	return rootCmd
}
