package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/mosaic/internal/cli/styles"
	"github.com/bnema/mosaic/internal/infrastructure/config"
)

var configSchemaStdout bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show where the config file lives, print the effective settings or write the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, environment overrides and normalization are applied.`,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the config JSON schema",
	Long: `Write config.schema.json next to config.toml for editor completion.

With --stdout the schema is printed instead.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configSchemaCmd.Flags().BoolVar(&configSchemaStdout, "stdout", false, "print the schema instead of writing it")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderNoConfigFile(configFile))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderConfigInfo(configFile))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	data, err := config.EncodeTOML(app.CurrentConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("app not initialized")
	}

	if configSchemaStdout {
		schema, err := config.GenerateSchema()
		if err != nil {
			return fmt.Errorf("generate schema: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(append(schema, '\n'))
		return err
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path, err := config.GenerateSchemaFile()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSchemaWritten(path))
	return nil
}
