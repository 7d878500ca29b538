package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuCategory string

const (
	CategoryAppetizers MenuCategory = "appetizers"
	CategoryMainCourse MenuCategory = "main_course"
	CategoryBreads     MenuCategory = "breads"
	CategoryRice       MenuCategory = "rice"
	CategoryBeverages  MenuCategory = "beverages"
	CategoryDesserts   MenuCategory = "desserts"
	CategorySnacks     MenuCategory = "snacks"
)

// MenuCategories lists every recognized category in display order.
var MenuCategories = []MenuCategory{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryBreads,
	CategoryRice,
	CategoryBeverages,
	CategoryDesserts,
	CategorySnacks,
}

func (c MenuCategory) Valid() bool {
	for _, known := range MenuCategories {
		if c == known {
			return true
		}
	}
	return false
}

const DefaultPreparationTime = 15

type MenuItem struct {
	ObjectID        primitive.ObjectID `bson:"_id,omitempty" json:"-" yaml:"-"`
	ID              string             `bson:"id" json:"id" yaml:"id"`
	Name            string             `bson:"name" json:"name" yaml:"name"`
	Description     string             `bson:"description" json:"description" yaml:"description"`
	Price           float64            `bson:"price" json:"price" yaml:"price"`
	Category        MenuCategory       `bson:"category" json:"category" yaml:"category"`
	IsAvailable     bool               `bson:"is_available" json:"is_available" yaml:"is_available"`
	IsSpicy         bool               `bson:"is_spicy" json:"is_spicy" yaml:"is_spicy"`
	PreparationTime int                `bson:"preparation_time" json:"preparation_time" yaml:"preparation_time"`
	Ingredients     []string           `bson:"ingredients" json:"ingredients" yaml:"ingredients"`
	ImageURL        *string            `bson:"image_url" json:"image_url" yaml:"image_url,omitempty"`
}

// MenuItemCreate is the body accepted by both create and full-replace update.
// Pointer fields distinguish "absent" from the zero value so defaults can apply.
type MenuItemCreate struct {
	Name            *string      `json:"name" validate:"required,min=1"`
	Description     *string      `json:"description" validate:"required,min=1"`
	Price           *float64     `json:"price" validate:"required,gte=0"`
	Category        MenuCategory `json:"category" validate:"required,menucategory"`
	IsAvailable     *bool        `json:"is_available"`
	IsSpicy         bool         `json:"is_spicy"`
	PreparationTime *int         `json:"preparation_time" validate:"omitempty,gt=0"`
	Ingredients     []string     `json:"ingredients"`
	ImageURL        *string      `json:"image_url"`
}

// ToMenuItem fills server defaults and attaches id.
func (c MenuItemCreate) ToMenuItem(id string) MenuItem {
	item := MenuItem{
		ID:              id,
		Category:        c.Category,
		IsAvailable:     true,
		IsSpicy:         c.IsSpicy,
		PreparationTime: DefaultPreparationTime,
		Ingredients:     []string{},
		ImageURL:        c.ImageURL,
	}
	if c.Name != nil {
		item.Name = *c.Name
	}
	if c.Description != nil {
		item.Description = *c.Description
	}
	if c.Price != nil {
		item.Price = *c.Price
	}
	if c.IsAvailable != nil {
		item.IsAvailable = *c.IsAvailable
	}
	if c.PreparationTime != nil {
		item.PreparationTime = *c.PreparationTime
	}
	if c.Ingredients != nil {
		item.Ingredients = append([]string{}, c.Ingredients...)
	}
	return item
}
