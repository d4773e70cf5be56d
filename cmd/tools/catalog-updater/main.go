// cmd/tools/catalog-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"unitconv/pkg/catalog"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	checkCmd := flag.NewFlagSet("check", flag.ExitOnError)

	// Export command flags
	exportPath := exportCmd.String("path", "configs/unit-catalog.json", "Path to catalog file")
	exportVersion := exportCmd.String("version", "1.0.0", "Catalog version")

	// Validate command flags
	validatePath := validateCmd.String("path", "configs/unit-catalog.json", "Path to catalog file")

	// Check command flags
	checkPath := checkCmd.String("path", "configs/unit-catalog.json", "Path to catalog file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		if err := exportCatalog(*exportPath, *exportVersion); err != nil {
			fmt.Printf("Error exporting catalog: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Exported catalog to %s\n", *exportPath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateCatalog(*validatePath); err != nil {
			fmt.Printf("Catalog validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog validation passed.")

	case "check":
		checkCmd.Parse(os.Args[2:])
		if err := checkCatalog(*checkPath); err != nil {
			fmt.Printf("Catalog drift check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Catalog matches the engine tables.")

	case "help":
		fallthrough
	default:
		help()
	}
}

// exportCatalog regenerates the catalog file from the engine tables
func exportCatalog(path, version string) error {
	cat := catalog.Default(version)
	cat.LastUpdated = time.Now().Format(time.RFC3339)
	return saveCatalog(cat, path)
}

func validateCatalog(path string) error {
	cat, err := catalog.LoadCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return err
	}

	fmt.Printf("Catalog validation passed. Found %d categories.\n", len(cat.Categories))
	return nil
}

// checkCatalog reports drift between the published file and the tables
// compiled into the engine.
func checkCatalog(path string) error {
	published, err := catalog.LoadCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	current := catalog.Default(published.Version)

	if len(published.Categories) != len(current.Categories) {
		return fmt.Errorf("category count drifted: file has %d, engine has %d",
			len(published.Categories), len(current.Categories))
	}

	for _, entry := range current.Categories {
		got, ok := published.Find(entry.Name)
		if !ok {
			return fmt.Errorf("category %s missing from file", entry.Name)
		}
		if got.Kind != entry.Kind {
			return fmt.Errorf("category %s drifted: kind is %q, engine has %q", entry.Name, got.Kind, entry.Kind)
		}
		if got.BaseUnit != entry.BaseUnit {
			return fmt.Errorf("category %s drifted: base unit is %q, engine has %q", entry.Name, got.BaseUnit, entry.BaseUnit)
		}
		if len(got.Units) != len(entry.Units) {
			return fmt.Errorf("category %s drifted: file has %d units, engine has %d", entry.Name, len(got.Units), len(entry.Units))
		}
		for i, unit := range entry.Units {
			if got.Units[i].Name != unit.Name || got.Units[i].Factor != unit.Factor {
				return fmt.Errorf("category %s drifted at unit %q", entry.Name, unit.Name)
			}
		}
	}

	return nil
}

// saveCatalog handles saving the catalog to file
func saveCatalog(cat *catalog.Catalog, path string) error {
	data, err := json.MarshalIndent(cat, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}

	return nil
}

func help() {
	fmt.Println(`
Usage: catalog-updater <command> [flags]

Commands:
  export   Regenerate the catalog file from the engine tables
  validate Validate the catalog file
  check    Report drift between the catalog file and the engine tables
  help     Show this help message

Examples:
  catalog-updater export -path configs/unit-catalog.json -version 1.0.0
  catalog-updater validate -path configs/unit-catalog.json
  catalog-updater check -path configs/unit-catalog.json

Use 'catalog-updater <command> -h' for more information about a command.
`)
}
