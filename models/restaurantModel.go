package models

type RestaurantInfo struct {
	Name         string            `json:"name" yaml:"name"`
	Description  string            `json:"description" yaml:"description"`
	Address      string            `json:"address" yaml:"address"`
	Phone        string            `json:"phone" yaml:"phone"`
	Email        string            `json:"email" yaml:"email"`
	OpeningHours map[string]string `json:"opening_hours" yaml:"opening_hours"`
	Services     []string          `json:"services" yaml:"services"`
	Specialties  []string          `json:"specialties" yaml:"specialties"`
}

func DefaultRestaurantInfo() RestaurantInfo {
	return RestaurantInfo{
		Name:        "Shriyansh Restaurant",
		Description: "Authentic Pure Vegetarian Indian Cuisine",
		Address:     "Narsinghpur, Madhya Pradesh, India",
		Phone:       "+91-XXXXXXXXXX",
		Email:       "info@shriyanshrestaurant.com",
		OpeningHours: map[string]string{
			"monday":    "11:00 AM - 10:00 PM",
			"tuesday":   "11:00 AM - 10:00 PM",
			"wednesday": "11:00 AM - 10:00 PM",
			"thursday":  "11:00 AM - 10:00 PM",
			"friday":    "11:00 AM - 10:00 PM",
			"saturday":  "11:00 AM - 11:00 PM",
			"sunday":    "11:00 AM - 11:00 PM",
		},
		Services:    []string{"Takeout", "Delivery", "Catering"},
		Specialties: []string{"Pure Vegetarian", "North Indian", "Traditional Recipes"},
	}
}
