package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/renderers/text"
	"github.com/goliatone/go-identityform/pkg/renderers/tui"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the package interactively in the terminal",
	Long:  `Runs a menu-driven terminal session and prints the final state when done.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")
		format := tui.OutputFormat(output)
		if format != tui.OutputFormatJSON && format != tui.OutputFormatPrettyText {
			return fmt.Errorf("unknown output format %q", output)
		}

		binder := form.NewBinder(rt.binderOptions()...)
		binder.Sync(rt.resources.Package)

		out := cmd.OutOrStdout()
		session, err := tui.NewSession(binder, rt.resources.Catalog,
			tui.WithOutput(out),
			tui.WithOutputFormat(format),
			tui.WithSummaryRenderer(text.New(text.WithOutput(out))),
		)
		if err != nil {
			return err
		}

		state, err := session.Run(cmd.Context())
		if errors.Is(err, tui.ErrAborted) {
			rt.logger.Info("edit aborted")
			return nil
		}
		if err != nil {
			return err
		}
		rt.logger.Debug("edit finished", "items", len(state.Items), "dirty", state.Dirty)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringP("output", "o", string(tui.OutputFormatJSON), "Output format: json or pretty")
}
