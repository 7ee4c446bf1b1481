package models

import (
	"time"

	"gorm.io/datatypes"
)

// CompanyProfile is the directory entry owned by exactly one user.
type CompanyProfile struct {
	BaseModel
	OwnerID     string `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	PostalCode  string `json:"postal_code"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	LogoURL     string `json:"logo_url,omitempty"`
	BannerURL   string `json:"banner_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	FoundedDate *time.Time        `json:"founded_date,omitempty"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	SocialLinks datatypes.JSONMap `gorm:"type:jsonb" json:"social_links,omitempty"`
}
