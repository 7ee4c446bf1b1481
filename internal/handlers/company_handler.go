package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sunileswar-collab/BusinessCheck/internal/middleware"
	"github.com/sunileswar-collab/BusinessCheck/internal/services"
	"github.com/sunileswar-collab/BusinessCheck/internal/services/dto"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
)

type CompanyHandler struct {
	*BaseHandler
	companyService services.CompanyService
	uploadService  services.UploadService
}

func NewCompanyHandler(base *BaseHandler, companyService services.CompanyService, uploadService services.UploadService) *CompanyHandler {
	return &CompanyHandler{
		BaseHandler:    base,
		companyService: companyService,
		uploadService:  uploadService,
	}
}

func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	company := rg.Group("/company")
	company.Use(middleware.AuthMiddleware())
	{
		company.POST("/register", h.Register)
		company.GET("/profile", h.GetProfile)
		company.PUT("/profile", h.UpdateProfile)
		company.DELETE("/profile", h.DeleteProfile)
		company.POST("/upload-media", h.UploadMedia)
		company.POST("/upload-file", h.UploadFile)
		company.DELETE("/media", h.DeleteMedia)
	}
}

// Register creates the caller's company profile.
func (h *CompanyHandler) Register(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

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

	profile, err := h.companyService.Register(db, userID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, "Company registered successfully", profile)
}

func (h *CompanyHandler) GetProfile(c *gin.Context) {
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

	profile, err := h.companyService.GetProfile(db, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Company profile retrieved", profile)
}

func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

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

	profile, err := h.companyService.UpdateProfile(db, userID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Company profile updated", profile)
}

func (h *CompanyHandler) DeleteProfile(c *gin.Context) {
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

	if err := h.companyService.DeleteProfile(db, userID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Company profile deleted", nil)
}

// UploadMedia accepts a base64 data URL payload.
func (h *CompanyHandler) UploadMedia(c *gin.Context) {
	var req dto.UploadMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

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

	resp, err := h.uploadService.UploadMedia(c.Request.Context(), db, userID, &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Media uploaded successfully", resp)
}

// UploadFile accepts a multipart form with a "file" part and a "type" field.
func (h *CompanyHandler) UploadFile(c *gin.Context) {
	userID, err := h.GetAuthenticatedUserID(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		h.HandleError(c, apperrors.NewBadRequestError("file is required"))
		return
	}
	mediaType := c.PostForm("type")

	db, err := h.GetDB(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.uploadService.UploadFile(c.Request.Context(), db, userID, header, mediaType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Media uploaded successfully", resp)
}

func (h *CompanyHandler) DeleteMedia(c *gin.Context) {
	var req dto.DeleteMediaRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

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

	if err := h.uploadService.DeleteMedia(c.Request.Context(), db, userID, req.PublicID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, "Media deleted", nil)
}
