package models

import (
	"time"

	"gorm.io/datatypes"
)

type Project struct {
	BaseModel

	Title   string                      `gorm:"not null" json:"title"`
	Summary string                      `json:"summary"`
	Details string                      `json:"details"`
	Images  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"images"`

	// Legacy fields kept for older records
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `json:"email"`
	Completion  *time.Time `json:"completion"`
	Description string     `json:"description"`
}
