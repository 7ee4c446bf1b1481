package dto

// UploadMediaRequest is the JSON variant of media upload: a base64 data URL
// plus the media usage.
type UploadMediaRequest struct {
	File string `json:"file" validate:"required"`
	Type string `json:"type" validate:"required,oneof=logo banner video"`
}

type DeleteMediaRequest struct {
	PublicID string `json:"public_id" validate:"required"`
}

// UploadResponse mirrors the fields the original API exposed from its CDN.
type UploadResponse struct {
	URL          string `json:"url"`
	PublicID     string `json:"public_id"`
	ResourceType string `json:"resource_type"`
	Format       string `json:"format"`
	Bytes        int64  `json:"bytes"`
}
