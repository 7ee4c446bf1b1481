package models

// Upload usage tags, matching the media types the company profile links to.
const (
	UploadUsageLogo   = "logo"
	UploadUsageBanner = "banner"
	UploadUsageVideo  = "video"
)

// Upload records one stored media object. PublicID is the storage key
// returned to clients and accepted back by DELETE /api/company/media.
type Upload struct {
	BaseModel
	UserID          string `gorm:"type:uuid;not null;index" json:"user_id"`
	Usage           string `gorm:"type:varchar(20);not null" json:"usage"`
	PublicID        string `gorm:"uniqueIndex;not null" json:"public_id"`
	URL             string `json:"url"`
	MimeType        string `json:"mime_type"`
	Size            int64  `json:"bytes"`
	StorageProvider string `gorm:"default:'local'" json:"-"`
}
