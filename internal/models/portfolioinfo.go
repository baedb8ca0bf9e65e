package models

import "gorm.io/datatypes"

// PortfolioInfo is a singleton collection: reads always fetch the first row.
type PortfolioInfo struct {
	BaseModel

	Name      string                      `gorm:"not null" json:"name"`
	Headline  string                      `json:"headline"`
	Bio       string                      `json:"bio"`
	Email     string                      `json:"email"`
	Phone     string                      `json:"phone"`
	Location  string                      `json:"location"`
	Github    string                      `json:"github"`
	Linkedin  string                      `json:"linkedin"`
	ResumeUrl string                      `json:"resumeUrl"`
	AvatarUrl string                      `json:"avatarUrl"`
	Skills    datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"skills"`
}
