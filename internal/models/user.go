package models

// Gender is the single-letter gender tag used by the registration API.
type Gender string

const (
	GenderMale   Gender = "m"
	GenderFemale Gender = "f"
	GenderOther  Gender = "o"
)

// SignupType records how the account was created. "e" is a plain
// email/password signup; social signups would carry their own tag.
const SignupTypeEmail = "e"

type User struct {
	BaseModel
	Email            string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash     string `gorm:"column:password;not null" json:"-"`
	FullName         string `gorm:"not null" json:"full_name"`
	Gender           Gender `gorm:"type:varchar(1);not null" json:"gender"`
	MobileNo         string `gorm:"column:mobile_no;uniqueIndex;not null" json:"mobile_no"`
	SignupType       string `gorm:"type:varchar(10);default:'e'" json:"signup_type"`
	IsMobileVerified bool   `gorm:"default:false" json:"is_mobile_verified"`
	IsEmailVerified  bool   `gorm:"default:false" json:"is_email_verified"`

	// Random token mailed out at registration and consumed by
	// GET /api/auth/verify-email. Never serialized.
	VerificationToken string `json:"-"`

	// Relations
	CompanyProfile *CompanyProfile `gorm:"foreignKey:OwnerID" json:"company_profile,omitempty"`
	Uploads        []Upload        `gorm:"foreignKey:UserID" json:"-"`
}
