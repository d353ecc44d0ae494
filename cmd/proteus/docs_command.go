package main

import (
	_ "embed"
	"fmt"

	"github.com/spf13/cobra"
)

//go:embed docs.txt
var quickReference string

func newDocsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "docs",
		Short:       "Show the quick-reference documentation",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), quickReference)
			return nil
		},
	}
}
