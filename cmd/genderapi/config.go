package main

import (
	"fmt"
	"sort"

	"github.com/genderapi-toolkit/genderapi/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (server key masked)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}

			if cfg.API.ServerKey != "" {
				cfg.API.ServerKey = "****"
			}

			out := cmd.OutOrStdout()
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			if err := enc.Close(); err != nil {
				return err
			}

			if cfg.API.ResolveServerKey() == "" {
				fmt.Fprintln(out, "# warning: no server key resolved")
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "paths",
		Short: "List config files and GENDERAPI_* variables in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "files:")
			for _, p := range config.FindConfigPaths() {
				fmt.Fprintf(out, "  - %s\n", p)
			}
			if g.config != "" {
				fmt.Fprintf(out, "  - %s (--config)\n", g.config)
			}
			fmt.Fprintln(out, "environment:")
			env := config.GetEnvConfig()
			keys := make([]string, 0, len(env))
			for k := range env {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Fprintf(out, "  %s=%s\n", k, env[k])
			}
			return nil
		},
	})

	return cmd
}
