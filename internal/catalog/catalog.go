// Package catalog provides the action and product reference data: string
// ids, display labels, and prices. The catalog is loaded once at startup and
// treated as read-only; the engine only looks entries up by id.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/catalog.yaml
var defaultCatalogYAML []byte

// ActionDef describes a player action button.
type ActionDef struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// ProductDef describes a purchasable product.
type ProductDef struct {
	ID    string  `yaml:"id"`
	Text  string  `yaml:"text"`
	Price float64 `yaml:"price"`
}

// Catalog holds all action and product definitions.
type Catalog struct {
	Actions  []ActionDef  `yaml:"actions"`
	Products []ProductDef `yaml:"products"`
}

// Load loads the catalog.
// Search order: customPath -> ~/.platypor/configs/catalog.yaml -> ./configs/catalog.yaml -> embedded default
func Load(customPath string) (Catalog, error) {
	var cat Catalog

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cat, fmt.Errorf("failed to read catalog %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cat); err != nil {
			return cat, fmt.Errorf("failed to parse catalog %s: %w", customPath, err)
		}
		return cat, cat.Validate()
	}

	if userCfgPath := userConfigPath("catalog.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cat); err == nil {
				return cat, cat.Validate()
			}
		}
	}

	if data, err := os.ReadFile("configs/catalog.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cat); err == nil {
			return cat, cat.Validate()
		}
	}

	if err := yaml.Unmarshal(defaultCatalogYAML, &cat); err != nil {
		return cat, fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	return cat, cat.Validate()
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platypor", "configs", filename)
}

// Action looks up an action definition by id.
func (c Catalog) Action(id string) (ActionDef, bool) {
	for _, a := range c.Actions {
		if a.ID == id {
			return a, true
		}
	}
	return ActionDef{}, false
}

// Product looks up a product definition by id.
func (c Catalog) Product(id string) (ProductDef, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return ProductDef{}, false
}

// Validate checks the catalog for structural problems. A malformed catalog
// is startup-fatal for the application, not an engine concern.
func (c Catalog) Validate() error {
	seen := make(map[string]bool)

	for i, a := range c.Actions {
		if a.ID == "" {
			return fmt.Errorf("catalog: action %d has empty id", i)
		}
		if seen[a.ID] {
			return fmt.Errorf("catalog: duplicate id %q", a.ID)
		}
		seen[a.ID] = true
	}

	for i, p := range c.Products {
		if p.ID == "" {
			return fmt.Errorf("catalog: product %d has empty id", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("catalog: duplicate id %q", p.ID)
		}
		if p.Price < 0 {
			return fmt.Errorf("catalog: product %q has negative price %v", p.ID, p.Price)
		}
		seen[p.ID] = true
	}

	return nil
}
