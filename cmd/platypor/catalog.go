package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/platypor/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List actions and shop products",
	Long: `Shows every action the pet can perform and every product in the shop,
as loaded from the catalog config.

Examples:
  platypor catalog
  platypor catalog --file ./my-catalog.yaml`,
	Args: cobra.NoArgs,
	Run:  runCatalog,
}

var flagCatalogFile string

func init() {
	catalogCmd.Flags().StringVar(&flagCatalogFile, "file", "", "Path to custom catalog YAML")
}

func runCatalog(cmd *cobra.Command, args []string) {
	cat, err := catalog.Load(flagCatalogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		os.Exit(1)
	}

	// Calculate column width
	maxIDLen := 2 // "ID" header
	for _, a := range cat.Actions {
		if len(a.ID) > maxIDLen {
			maxIDLen = len(a.ID)
		}
	}
	for _, p := range cat.Products {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Println("Actions:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Label")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, a := range cat.Actions {
		fmt.Printf("  %-*s  %s\n", maxIDLen, a.ID, a.Text)
	}

	fmt.Println()
	fmt.Println("Products:")
	fmt.Println()
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "ID", "Price", "Label")
	fmt.Printf("  %-*s  %-10s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, p := range cat.Products {
		fmt.Printf("  %-*s  %-10.2f  %s\n", maxIDLen, p.ID, p.Price, p.Text)
	}

	fmt.Println()
	fmt.Println("Run 'platypor play' to put them to use.")
}
