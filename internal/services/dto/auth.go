package dto

import (
	"time"

	"github.com/sunileswar-collab/BusinessCheck/internal/models"
)

type RegisterRequest struct {
	Email      string        `json:"email" validate:"required,email"`
	Password   string        `json:"password" validate:"required,min=6"`
	FullName   string        `json:"full_name" validate:"required,min=2,max=255"`
	Gender     models.Gender `json:"gender" validate:"required,oneof=m f o"`
	MobileNo   string        `json:"mobile_no" validate:"required,mobile"`
	SignupType string        `json:"signup_type,omitempty" validate:"omitempty,oneof=e g f"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RequestOTPRequest struct {
	MobileNo string `json:"mobile_no" validate:"required,mobile"`
}

type VerifyMobileRequest struct {
	MobileNo string `json:"mobile_no" validate:"required,mobile"`
	OTP      string `json:"otp" validate:"required,min=4,max=8"`
}

// UserResponse is the user payload returned by auth endpoints. It carries no
// password material by construction.
type UserResponse struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	FullName         string        `json:"full_name"`
	Gender           models.Gender `json:"gender"`
	MobileNo         string        `json:"mobile_no"`
	SignupType       string        `json:"signup_type"`
	IsMobileVerified bool          `json:"is_mobile_verified"`
	IsEmailVerified  bool          `json:"is_email_verified"`
	CreatedAt        time.Time     `json:"created_at"`
}

// AuthResponse pairs a fresh token with the user it authenticates.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// NewUserResponse maps the model onto the wire shape.
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		FullName:         user.FullName,
		Gender:           user.Gender,
		MobileNo:         user.MobileNo,
		SignupType:       user.SignupType,
		IsMobileVerified: user.IsMobileVerified,
		IsEmailVerified:  user.IsEmailVerified,
		CreatedAt:        user.CreatedAt,
	}
}
