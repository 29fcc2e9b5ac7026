package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/oxblood/morph"
	"github.com/oxblood/morph/internal/cli"
	"github.com/oxblood/morph/internal/logging"
	"github.com/oxblood/morph/internal/presentation/outline"
	"github.com/oxblood/morph/internal/presentation/tui"
)

// inspectCmd replays a scenario and renders the final workspace outline.
var inspectCmd = &cobra.Command{
	Use:   "inspect <scenario.yaml>",
	Short: "Show the workspace a scenario produces",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		plain, _ := cmd.Flags().GetBool("plain")
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

		editor := morph.New(morph.WithLogger(logger))
		ctx := cmd.Context()
		for i, step := range scenario.Steps {
			action, err := step.Action(editor.Document())
			if err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
			if _, err := editor.Dispatch(ctx, action); err != nil {
				return fmt.Errorf("step %d (%s): %w", i+1, step.Kind, err)
			}
		}

		markdown := outline.Render(editor.Document())
		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return nil
		}

		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to raw markdown rather than failing the inspection.
			fmt.Print(markdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("plain", false, "Print raw markdown without terminal styling")
}
