package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hotelhub/hotel-booking/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  `Inspect the effective client configuration and its JSON Schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration after struct defaults, the YAML file and
environment variables have been applied, in that order.`,
	RunE: runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	RunE:  runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON Schema",
	RunE:  runConfigSchema,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if format == formatTable {
		format = formatYAML
		for _, source := range current.loader.Provenance() {
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", source)
		}
	}
	return render(cmd.OutOrStdout(), format, current.cfg, nil)
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	// setup already loaded and validated the configuration
	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
	for _, source := range current.loader.Provenance() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", source)
	}
	return nil
}

func runConfigSchema(cmd *cobra.Command, args []string) error {
	schema, err := config.JSONSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return err
}
