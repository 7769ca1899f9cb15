package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/skillsync/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the skill catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known skills",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a skill with its learning resources",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd)

	catalogCmd.PersistentFlags().StringP("output", "o", outputText, "output format: json or text")
	catalogListCmd.Flags().String("category", "", "only list skills of this category")
}

func configuredCatalog() (*catalog.Catalog, error) {
	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}

	c, _, err := loadCatalog(config)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := validateOutput(output); err != nil {
		return err
	}

	c, err := configuredCatalog()
	if err != nil {
		return err
	}

	defs := c.Entries()
	if category, _ := cmd.Flags().GetString("category"); category != "" {
		filtered := make([]catalog.Definition, 0)
		for _, def := range defs {
			if strings.EqualFold(def.Category, category) {
				filtered = append(filtered, def)
			}
		}
		defs = filtered
	}

	if output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), defs)
	}

	renderCatalog(cmd.OutOrStdout(), c.Categories(), defs)
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	if err := validateOutput(output); err != nil {
		return err
	}

	c, err := configuredCatalog()
	if err != nil {
		return err
	}

	def, ok := c.Lookup(args[0])
	if !ok {
		return fmt.Errorf("skill %q is not in the catalog (names are case sensitive)", args[0])
	}

	if output == outputJSON {
		return writeJSON(cmd.OutOrStdout(), def)
	}

	renderDefinition(cmd.OutOrStdout(), def)
	return nil
}
