package models

import "time"

// Education is exposed through the API as a qualification.
type Education struct {
	BaseModel

	Title       string     `gorm:"not null" json:"title"`
	Firstname   string     `json:"firstname"`
	Lastname    string     `json:"lastname"`
	Email       string     `gorm:"not null" json:"email"`
	Completion  *time.Time `json:"completion"`
	Description string     `json:"description"`
}
