package models

import (
	"fmt"

	"gorm.io/gorm"
)

// Project is a top-level grouping entity owning zero or more tasks
type Project struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"not null; uniqueIndex"`
	Description string `json:"description" gorm:"type:text"`
	Tasks       []Task `json:"-" gorm:"foreignKey:ProjectID"`
}

// Validate ensures that the project data is valid
func (p *Project) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	return nil
}

// BeforeCreate is a GORM hook that runs before creating a new project
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	return p.Validate()
}
