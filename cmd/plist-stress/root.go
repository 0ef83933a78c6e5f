package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/qjpcpu/persistent/internal/cli"
	"github.com/qjpcpu/persistent/internal/printer"
	"github.com/qjpcpu/persistent/internal/stress"
)

type rootOpts struct {
	depth      int
	branches   int
	debug      bool
	noProgress bool
}

var longRootCmdDescription = `plist-stress builds a deep persistent list, branches several lists off
its shared tail and tears everything down again, reporting how many nodes
each phase reclaimed and whether the teardown stopped at a shared node.
`

func newRootCmd(out io.Writer) *cobra.Command {
	var opts rootOpts
	cmd := &cobra.Command{
		Use:           "plist-stress",
		Short:         "Stress persistent list teardown",
		Long:          longRootCmdDescription,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, opts)
		},
	}
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", stress.DefaultDepth, "number of elements in the base list")
	cmd.Flags().IntVarP(&opts.branches, "branches", "b", 16, "number of lists sharing the base as tail")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "trace every release (slow on deep lists)")
	cmd.Flags().BoolVar(&opts.noProgress, "no-progress", false, "disable the progress bar")
	return cmd
}

// Execute run the root command with args
func Execute(args []string) error {
	cmd := newRootCmd(os.Stdout)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		printer.Print("plist-stress: %v", err)
		return err
	}
	return nil
}

func run(out io.Writer, opts rootOpts) error {
	cfg := stress.Config{Depth: opts.depth, Branches: opts.branches, Trace: opts.debug}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	var newBar stress.NewBar
	if !opts.noProgress && isTerminal(out) {
		progress := cli.NewProgress(out)
		defer progress.Stop()
		newBar = func(phase string, total int) cli.ProgressBar {
			return progress.NewBar(phase, total)
		}
	}

	results, err := stress.Run(cfg, newBar)
	if err != nil {
		return fmt.Errorf("stress run: %w", err)
	}
	renderResults(out, results)
	return nil
}

func renderResults(out io.Writer, results []stress.Result) {
	t := cli.NewTable(out).
		SetHeader("phase", "handles", "releases", "reclaimed", "stopped at shared", "elapsed")
	for _, r := range results {
		t.AddRow(r.Phase, r.Handles, r.Releases, r.Reclaimed, r.Shared, r.Elapsed.Round(time.Microsecond))
	}
	t.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
