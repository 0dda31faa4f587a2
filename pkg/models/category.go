package models

import "fmt"

// Category identifies the kind of Move being planned.
type Category string

const (
	CategoryIgnite    Category = "ignite"
	CategoryCapture   Category = "capture"
	CategoryAuthority Category = "authority"
	CategoryRepair    Category = "repair"
	CategoryRally     Category = "rally"
)

// Categories returns every category in catalog order.
func Categories() []Category {
	return []Category{
		CategoryIgnite,
		CategoryCapture,
		CategoryAuthority,
		CategoryRepair,
		CategoryRally,
	}
}

// Valid reports whether c is one of the five known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryIgnite, CategoryCapture, CategoryAuthority, CategoryRepair, CategoryRally:
		return true
	}
	return false
}

// ParseCategory converts s into a Category, rejecting unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q, must be one of: ignite, capture, authority, repair, rally", s)
	}
	return c, nil
}

// CategoryProfile is the static metadata attached to a category.
type CategoryProfile struct {
	Category    Category  `yaml:"category" json:"category"`
	Name        string    `yaml:"name" json:"name"`
	Tagline     string    `yaml:"tagline" json:"tagline"`
	DefaultGoal string    `yaml:"default_goal" json:"default_goal"`
	Tone        string    `yaml:"tone" json:"tone"`
	Pillars     [7]string `yaml:"pillars" json:"pillars"`
	Metrics     [3]string `yaml:"metrics" json:"metrics"`
}
