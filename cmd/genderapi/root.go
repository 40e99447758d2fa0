package main

import (
	"io"
	"time"

	"github.com/genderapi-toolkit/genderapi/pkg/config"
	"github.com/genderapi-toolkit/genderapi/pkg/genderapi"
	"github.com/genderapi-toolkit/genderapi/pkg/observability"
	"github.com/genderapi-toolkit/genderapi/pkg/output"
	"github.com/genderapi-toolkit/genderapi/pkg/version"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	config    string
	key       string
	baseURL   string
	timeout   time.Duration
	output    string
	logLevel  string
	logFormat string
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "genderapi",
		Short: "Query gender-api.com from the command line",
		Long: `genderapi - a client for the gender-api.com prediction API.

Look up the likely gender of a first name, a list of names, an email
address or a full name, optionally localized by country, IP or language.
It can also run as an HTTP service exposing the same lookups.`,
		Version:       version.FullString(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.config, "config", "c", "", "Path to configuration file (default ./"+config.ProjectConfigFile+")")
	pf.StringVar(&opts.key, "key", "", "Server key (overrides config and environment)")
	pf.StringVar(&opts.baseURL, "base-url", "", "API base URL")
	pf.DurationVar(&opts.timeout, "timeout", 0, "Request timeout, e.g. 10s")
	pf.StringVarP(&opts.output, "output", "o", "json", "Output format: json or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: text or json")

	rootCmd.AddCommand(
		newNameCmd(opts),
		newEmailCmd(opts),
		newSplitCmd(opts),
		newStatsCmd(opts),
		newCountriesCmd(opts),
		newServeCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

// loadConfig loads file and environment config, then applies flags.
func (g *globalFlags) loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if g.config != "" {
		loader.WithConfigFile(g.config)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	if g.key != "" {
		cfg.API.ServerKey = g.key
	}
	if g.baseURL != "" {
		cfg.API.BaseURL = g.baseURL
	}
	if g.timeout > 0 {
		cfg.API.Timeout = g.timeout
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}

	return cfg, nil
}

// newClient validates cfg and builds an API client.
func newClient(cfg *config.Config, logger observability.Logger, extra ...genderapi.Option) (*genderapi.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []genderapi.Option{genderapi.WithLogger(logger)}
	if cfg.API.BaseURL != "" {
		opts = append(opts, genderapi.WithBaseURL(cfg.API.BaseURL))
	}
	if cfg.API.Timeout > 0 {
		opts = append(opts, genderapi.WithTimeout(cfg.API.Timeout))
	}
	opts = append(opts, extra...)

	return genderapi.NewClient(cfg.API.ResolveServerKey(), opts...)
}

// newLogger builds the CLI logger on w.
func newLogger(w io.Writer, cfg *config.Config) observability.Logger {
	return observability.NewLoggerWithWriter(w, cfg.Log.Level, cfg.Log.Format)
}

// writeOutput prints v as indented JSON or YAML.
func writeOutput(w io.Writer, format string, v any) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return err
	}
	return output.NewFormatter(f).Write(w, v)
}
