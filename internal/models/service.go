package models

import "gorm.io/datatypes"

type Service struct {
	BaseModel

	Title       string                      `gorm:"not null" json:"title"`
	Description string                      `gorm:"not null" json:"description"`
	Checklist   datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"checklist"`
	Icon        string                      `json:"icon"`  // e.g. gamepad, code, robot, compass
	Color       string                      `json:"color"` // e.g. amber, blue, green
}
