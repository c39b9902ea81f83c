package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/labreport/source"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create the patients, tests and patient_tests tables",
	Long: `Creates any missing tables of the records database. Existing tables and rows are
left untouched, so the command can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	src, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := source.Bootstrap(ctx, src.DB(), src.Dialect()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s schema ready\n", src.Dialect())
	return nil
}
