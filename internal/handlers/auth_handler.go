package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sunileswar-collab/BusinessCheck/internal/middleware"
	"github.com/sunileswar-collab/BusinessCheck/internal/services"
	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/verify-email", h.VerifyEmail)
		auth.POST("/request-otp", h.RequestOTP)
		auth.POST("/verify-mobile", h.VerifyMobile)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/me", h.Me)
			protected.DELETE("/user", h.DeleteAccount)
		}
	}
}

// Register creates the account and returns a session token with the user.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), db, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "User registered successfully", resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.authService.Login(db, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Login successful", resp)
}

// Me returns the authenticated user's account.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := h.GetAuthenticatedUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	user, err := h.authService.GetCurrentUser(db, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "User retrieved", user)
}

// RequestOTP issues a verification code for the given mobile number.
func (h *AuthHandler) RequestOTP(c *gin.Context) {
	var req dto.RequestOTPRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.authService.RequestOTP(c.Request.Context(), db, req.MobileNo); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "OTP sent", nil)
}

// VerifyMobile checks the submitted OTP and marks the mobile verified.
func (h *AuthHandler) VerifyMobile(c *gin.Context) {
	var req dto.VerifyMobileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.authService.VerifyMobile(c.Request.Context(), db, &req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Mobile number verified", nil)
}

// VerifyEmail consumes the token from the verification link.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		h.HandleError(c, apperrors.NewBadRequestError("token is required"))
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.authService.VerifyEmail(db, token); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Email verified", nil)
}

// DeleteAccount removes the account, its company profile and its uploads.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, err := h.GetAuthenticatedUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), db, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Account deleted", nil)
}
