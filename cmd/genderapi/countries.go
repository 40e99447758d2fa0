package main

import (
	"fmt"
	"strings"

	"github.com/genderapi-toolkit/genderapi/pkg/country"
	"github.com/spf13/cobra"
)

func newCountriesCmd(g *globalFlags) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "countries [code...]",
		Short: "List supported country codes, or check the given ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				codes := country.Codes()
				if plain {
					fmt.Fprintln(cmd.OutOrStdout(), strings.Join(codes, " "))
					return nil
				}
				return writeOutput(cmd.OutOrStdout(), g.output, codes)
			}

			result := make(map[string]bool, len(args))
			for _, code := range args {
				result[country.Normalize(code)] = country.IsSupported(code)
			}
			return writeOutput(cmd.OutOrStdout(), g.output, result)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print codes on one line")
	return cmd
}
