package main

import (
	"errors"
	"fmt"

	"burokrat-site/domain/catalog"
	"burokrat-site/domain/content"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the product catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed categories and products from the content files",
	Long: `Read products_services.yaml, featured_products.yaml and shop_categories.yaml
and write them to the database. A non-empty catalog is left alone unless --force
is given, in which case products and then categories are deleted first.`,
	Args: cobra.NoArgs,
	RunE: runCatalogImport,
}

func init() {
	catalogImportCmd.Flags().Bool("force", false, "replace an existing catalog")
	catalogCmd.AddCommand(catalogImportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, _ []string) error {
	force, _ := cmd.Flags().GetBool("force")

	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	db, err := openDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	src := content.NewStore(content.FileLoader{Dir: cfg.ContentDir}, content.WithLogger(log))
	sum, err := catalog.NewImporter(src, catalog.NewRepository(db), log).Import(cmd.Context(), force)
	if errors.Is(err, catalog.ErrCatalogNotEmpty) {
		return fmt.Errorf("%w; rerun with --force to replace it", err)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Categories: %d\n", len(sum.Categories))
	fmt.Fprintf(out, "Products:   %d\n", sum.Products)
	fmt.Fprintf(out, "Featured:   %d\n", sum.Featured)
	fmt.Fprintln(out, "Per category:")
	for _, c := range sum.Categories {
		if c.ID == catalog.AllCategoryID {
			continue
		}
		fmt.Fprintf(out, "  %-32s %d\n", c.Name, sum.PerCategory[c.ID])
	}
	for _, s := range sum.Skipped {
		fmt.Fprintf(out, "Skipped: %s\n", s)
	}
	return nil
}
