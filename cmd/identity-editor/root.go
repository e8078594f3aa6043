package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-identityform"
	"github.com/goliatone/go-identityform/internal/config"
	"github.com/goliatone/go-identityform/internal/logging"
	"github.com/goliatone/go-identityform/pkg/form"
	"github.com/goliatone/go-identityform/pkg/source"
)

var rootCmd = &cobra.Command{
	Use:           "identity-editor",
	Short:         "Edit the identity selections of a package",
	Long:          `identity-editor serves or runs the identity editor: pick preset identities from a catalog and set the age range of each.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", ".env", "Optional .env file read before the environment")
	flags.String("package", "", "Package to edit (file path or http(s) URL); defaults to a sample package")
	flags.String("catalog", "", "Identity catalog (file path or http(s) URL); defaults to the built-in catalog")
	flags.String("validation", "", "Validation policy: permissive, advisory or strict")
	flags.String("duplicates", "", "Duplicate policy: allow or reject")
	flags.String("log-level", "", "Log level: debug, info, warn or error")
	flags.Bool("allow-http", false, "Allow loading the package and catalog over HTTP")
}

// runtime bundles what every command needs.
type runtime struct {
	cfg       config.Config
	logger    *slog.Logger
	resources identityform.Resources
}

// loadRuntime reads configuration, applies flag overrides and loads the
// catalog and package.
func loadRuntime(cmd *cobra.Command) (*runtime, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, err
	}

	level, _ := cfg.Level()
	logger := logging.New(level)

	var loaderOpts []source.Option
	if cfg.AllowHTTP {
		loaderOpts = append(loaderOpts, source.WithHTTP(cfg.RequestTimeout))
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout(cfg))
	defer cancel()

	resources, err := identityform.LoadResources(ctx, identityform.LoadRequest{
		CatalogSource: cfg.CatalogSource,
		PackageSource: cfg.PackageSource,
		Loader:        identityform.NewLoader(loaderOpts...),
	})
	if err != nil {
		return nil, err
	}
	logger.Debug("resources loaded",
		"catalog", cfg.CatalogSource,
		"package", cfg.PackageSource,
		"options", resources.Catalog.Len(),
		"items", len(resources.Package.Items),
	)

	return &runtime{cfg: cfg, logger: logger, resources: resources}, nil
}

// binderOptions returns the policy options plus the debug logging observer.
func (rt *runtime) binderOptions(extra ...form.Option) []form.Option {
	options := rt.cfg.BinderOptions()
	options = append(options, form.WithObserver(logging.BinderObserver(rt.logger)))
	return append(options, extra...)
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	overrides := []struct {
		name string
		dst  *string
	}{
		{"package", &cfg.PackageSource},
		{"catalog", &cfg.CatalogSource},
		{"validation", &cfg.Validation},
		{"duplicates", &cfg.Duplicates},
		{"log-level", &cfg.LogLevel},
	}
	for _, o := range overrides {
		if flags.Changed(o.name) {
			value, _ := flags.GetString(o.name)
			*o.dst = value
		}
	}
	if flags.Changed("allow-http") {
		cfg.AllowHTTP, _ = flags.GetBool("allow-http")
	}
	return cfg.Validate()
}

func loadTimeout(cfg config.Config) time.Duration {
	if cfg.RequestTimeout > 0 {
		return 2 * cfg.RequestTimeout
	}
	return 30 * time.Second
}
