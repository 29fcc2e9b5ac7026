package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oxblood/morph"
	"github.com/oxblood/morph/internal/cli"
	"github.com/oxblood/morph/internal/logging"
	"github.com/oxblood/morph/internal/presentation/tui"
	"github.com/oxblood/morph/pkg/domain"
)

// runCmd replays a scenario file step by step, reporting what each action
// changed.
var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario against a fresh workspace",
	Long:  `Loads a YAML scenario, applies its steps in order through the editing core, and reports the changes each step produced.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		quiet, _ := cmd.Flags().GetBool("quiet")
		logger := logging.New(logging.ParseLevel(level))

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open scenario: %w", err)
		}
		defer f.Close()

		scenario, err := cli.Load(f)
		if err != nil {
			return err
		}

		if !quiet && term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
		}

		editor := morph.New(morph.WithLogger(logger))
		ctx := cmd.Context()
		for i, step := range scenario.Steps {
			prev := editor.Document()
			action, err := step.Action(prev)
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			next, err := editor.Dispatch(ctx, action)
			if err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
			}
			if !quiet {
				fmt.Printf("%2d. %-24s %s\n", i+1, step.Kind, summarize(domain.Diff(prev, next)))
			}
		}

		fmt.Printf("Scenario %q: %d steps applied.\n", scenario.Name, len(scenario.Steps))
		return nil
	},
}

// summarize renders a diff as a one-line change report.
func summarize(d *domain.DocumentDiff) string {
	if d.IsEmpty() {
		return "no change"
	}
	var parts []string
	if len(d.ChangedVectorLayerIDs) > 0 {
		parts = append(parts, fmt.Sprintf("layers(%d)", len(d.ChangedVectorLayerIDs)))
	} else if d.LayersChanged {
		parts = append(parts, "layers")
	}
	if len(d.ChangedAnimationIDs) > 0 {
		parts = append(parts, fmt.Sprintf("animations(%d)", len(d.ChangedAnimationIDs)))
	} else if d.TimelineChanged {
		parts = append(parts, "timeline")
	}
	if d.SelectionChanged {
		parts = append(parts, "selection")
	}
	return "changed: " + strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolP("quiet", "q", false, "Only print the final summary")
}
