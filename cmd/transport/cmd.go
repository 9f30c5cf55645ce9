package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transportation/internal/config"
	"github.com/katalvlaran/transportation/internal/logging"
	"github.com/katalvlaran/transportation/transport"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "transport",
		Short:         "Initial plans and optimality checks for the transportation problem",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())

	return root
}

type solveFlags struct {
	config   string
	method   string
	logLevel string
}

func newSolveCmd() *cobra.Command {
	var fl solveFlags
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build an initial plan and certify it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(cmd, fl)
		},
	}
	cmd.Flags().StringVarP(&fl.config, "config", "c", "", "problem file (yaml, json or toml)")
	cmd.Flags().StringVarP(&fl.method, "method", "m", "", "northwest or leastcost (overrides the file)")
	cmd.Flags().StringVar(&fl.logLevel, "log-level", "", "debug, info, warn or error (overrides the file)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runSolve(cmd *cobra.Command, fl solveFlags) error {
	f, err := config.Load(fl.config)
	if err != nil {
		return err
	}
	if fl.method != "" {
		f.Method = fl.method
	}
	if fl.logLevel != "" {
		f.Log.Level = fl.logLevel
	}

	logger := logging.New(f.Log, cmd.ErrOrStderr())
	defer func() { _ = logger.Close() }()

	p, err := f.Problem()
	if err != nil {
		return err
	}
	opts, err := f.Options()
	if err != nil {
		return err
	}
	opts = append(opts, transport.WithLogger(logger.Logger))

	if !p.Balanced() {
		logger.Warn("transport: instance is not balanced", "imbalance", p.Imbalance().String())
	}

	res, err := transport.Solve(p, opts...)
	if err != nil {
		return err
	}

	return report(cmd.OutOrStdout(), res)
}

// report prints a solve result in the layout of the interactive tool.
func report(w io.Writer, res transport.Result) error {
	_, err := fmt.Fprintf(w, "Method: %s\n%sTarget function: %g\n%sConstruction time: %s\n",
		res.Method, res.Plan, res.Cost, res.Certificate, res.Elapsed)

	return err
}
