package config

import (
	"fmt"
	"os"

	"github.com/ShriyanshSinghPatel/AngularForm/models"
	"gopkg.in/yaml.v3"
)

// LoadRestaurantInfo returns the built-in restaurant record, with any fields
// present in the YAML file at path layered on top. An empty path returns the
// built-in record unchanged.
func LoadRestaurantInfo(path string) (models.RestaurantInfo, error) {
	info := models.DefaultRestaurantInfo()
	if path == "" {
		return info, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.RestaurantInfo{}, fmt.Errorf("read restaurant info: %w", err)
	}
	if err := yaml.Unmarshal(data, &info); err != nil {
		return models.RestaurantInfo{}, fmt.Errorf("parse restaurant info %s: %w", path, err)
	}
	return info, nil
}
