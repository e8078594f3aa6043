package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/render"
	"github.com/goliatone/go-identityform/pkg/renderers/jsonview"
	"github.com/goliatone/go-identityform/pkg/renderers/text"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the package summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		out := cmd.OutOrStdout()

		registry, err := summaryRenderers(out)
		if err != nil {
			return err
		}
		if !registry.Has(format) {
			return fmt.Errorf("unknown format %q (available: %s)", format, strings.Join(registry.List(), ", "))
		}

		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}

		binder := form.NewBinder(rt.binderOptions()...)
		binder.Sync(rt.resources.Package)
		view := render.BuildView(binder, nil, rt.resources.Catalog, render.Labels{})

		payload, _, err := registry.Render(cmd.Context(), format, view, render.RenderOptions{})
		if err != nil {
			return err
		}
		_, err = out.Write(payload)
		return err
	},
}

// summaryRenderers registers the renderers selectable with --format.
func summaryRenderers(out io.Writer) (*render.Registry, error) {
	return render.NewRegistry(
		text.New(text.WithOutput(out)),
		jsonview.New(),
	)
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringP("format", "f", "text", "Output format: text or json")
}
