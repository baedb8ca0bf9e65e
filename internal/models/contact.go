package models

// Contact is a lead submitted through the public contact form.
type Contact struct {
	BaseModel

	Firstname     string `json:"firstname"`
	Lastname      string `json:"lastname"`
	Email         string `gorm:"not null" json:"email"`
	ContactNumber string `json:"contactNumber"`
	Message       string `json:"message"`
}
