package seed

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"gopkg.in/yaml.v3"
)

//go:embed menu.yaml
var menuYAML []byte

type menuFile struct {
	Items []models.MenuItem `yaml:"items"`
}

// Catalog is the part of a menu store that seeding needs.
type Catalog interface {
	ReplaceAll(ctx context.Context, items []models.MenuItem) error
}

// Load parses the embedded seed menu.
func Load() ([]models.MenuItem, error) {
	return parse(menuYAML)
}

func parse(data []byte) ([]models.MenuItem, error) {
	var file menuFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed menu: %w", err)
	}

	seen := make(map[string]bool, len(file.Items))
	for i, item := range file.Items {
		switch {
		case item.ID == "":
			return nil, fmt.Errorf("seed item %d: missing id", i)
		case seen[item.ID]:
			return nil, fmt.Errorf("seed item %d: duplicate id %s", i, item.ID)
		case !item.Category.Valid():
			return nil, fmt.Errorf("seed item %s: unknown category %q", item.ID, item.Category)
		case item.Price < 0:
			return nil, fmt.Errorf("seed item %s: negative price", item.ID)
		case item.PreparationTime <= 0:
			return nil, fmt.Errorf("seed item %s: preparation_time must be positive", item.ID)
		}
		seen[item.ID] = true
		if item.Ingredients == nil {
			file.Items[i].Ingredients = []string{}
		}
	}
	return file.Items, nil
}

// Populate replaces the whole catalog with the seed menu and returns the
// number of items written.
func Populate(ctx context.Context, catalog Catalog) (int, error) {
	items, err := Load()
	if err != nil {
		return 0, err
	}
	if err := catalog.ReplaceAll(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}
