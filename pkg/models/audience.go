package models

// GeneralAudience is the audience name used when none is selected.
const GeneralAudience = "General Audience"

// Audience is a cohort or ICP definition a Move can target.
type Audience struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}
