package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedCatalogIsValid(t *testing.T) {
	var cat Catalog
	if err := yaml.Unmarshal(defaultCatalogYAML, &cat); err != nil {
		t.Fatalf("Embedded catalog failed to parse: %v", err)
	}
	if err := cat.Validate(); err != nil {
		t.Errorf("Embedded catalog failed validation: %v", err)
	}
	if len(cat.Actions) == 0 || len(cat.Products) == 0 {
		t.Errorf("Embedded catalog is incomplete: %d actions, %d products",
			len(cat.Actions), len(cat.Products))
	}
}

func TestLookup(t *testing.T) {
	cat := Catalog{
		Actions:  []ActionDef{{ID: "action_peck", Text: "Peck"}},
		Products: []ProductDef{{ID: "product_beer", Text: "Beer", Price: 5}},
	}

	a, ok := cat.Action("action_peck")
	if !ok || a.Text != "Peck" {
		t.Errorf("Action lookup failed: %+v, %v", a, ok)
	}
	if _, ok := cat.Action("action_nope"); ok {
		t.Error("Lookup of an unknown action should fail")
	}

	p, ok := cat.Product("product_beer")
	if !ok || p.Price != 5 {
		t.Errorf("Product lookup failed: %+v, %v", p, ok)
	}
	if _, ok := cat.Product("product_nope"); ok {
		t.Error("Lookup of an unknown product should fail")
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		cat  Catalog
	}{
		{"empty action id", Catalog{Actions: []ActionDef{{ID: ""}}}},
		{"empty product id", Catalog{Products: []ProductDef{{ID: ""}}}},
		{"duplicate id", Catalog{Actions: []ActionDef{{ID: "x"}, {ID: "x"}}}},
		{"action colliding with product", Catalog{
			Actions:  []ActionDef{{ID: "x"}},
			Products: []ProductDef{{ID: "x"}},
		}},
		{"negative price", Catalog{Products: []ProductDef{{ID: "p", Price: -1}}}},
	}

	for _, c := range cases {
		if err := c.cat.Validate(); err == nil {
			t.Errorf("%s: expected validation error, got nil", c.name)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "catalog.yaml")

	content := `
actions:
  - id: action_peck
    text: Peck the ground
products:
  - id: product_beer
    text: Cheap beer
    price: 7.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if len(cat.Actions) != 1 || cat.Actions[0].Text != "Peck the ground" {
		t.Errorf("Custom actions not loaded: %+v", cat.Actions)
	}
	if p, ok := cat.Product("product_beer"); !ok || p.Price != 7.5 {
		t.Errorf("Custom product not loaded: %+v", p)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for a missing custom path")
	}
}
