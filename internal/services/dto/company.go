package dto

// CompanyRequest is the body of both company registration and profile
// update; the original API treats update as a full replace.
type CompanyRequest struct {
	CompanyName string                 `json:"company_name" validate:"required,min=2,max=255"`
	Address     string                 `json:"address" validate:"required,min=5"`
	City        string                 `json:"city" validate:"required,min=2,max=50"`
	State       string                 `json:"state" validate:"required,min=2,max=50"`
	Country     string                 `json:"country" validate:"required,min=2,max=50"`
	PostalCode  string                 `json:"postal_code" validate:"required,min=3,max=20"`
	Industry    string                 `json:"industry" validate:"required,min=2"`
	Website     string                 `json:"website,omitempty" validate:"omitempty,url"`
	FoundedDate string                 `json:"founded_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Description string                 `json:"description,omitempty"`
	SocialLinks map[string]interface{} `json:"social_links,omitempty"`
}
