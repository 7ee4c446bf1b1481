package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sunileswar-collab/BusinessCheck/internal/middleware"
	"github.com/sunileswar-collab/BusinessCheck/internal/validator"
	"github.com/sunileswar-collab/BusinessCheck/pkg/apperrors"
	"github.com/sunileswar-collab/BusinessCheck/pkg/contextkeys"
)

// SuccessResponse is the uniform success envelope:
// {"success":true,"message":...,"data":...}.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler carries the helpers shared by every handler.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler() *BaseHandler {
	return &BaseHandler{validator: validator.New()}
}

// GetDB pulls the request-scoped database handle installed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) (*gorm.DB, error) {
	db, ok := c.Request.Context().Value(contextkeys.DBContextKey).(*gorm.DB)
	if !ok || db == nil {
		return nil, apperrors.InternalError(nil)
	}
	return db, nil
}

// BindAndValidate decodes the JSON body into req and runs struct validation.
// The caller gets back false when the response has already been written.
func (h *BaseHandler) BindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body"))
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		var verr *validator.ValidationError
		if apperrors.As(err, &verr) {
			apperrors.HandleError(c, apperrors.ValidationError(verr.Errors))
		} else {
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

// GetAuthenticatedUserID returns the user id set by the auth middleware.
func (h *BaseHandler) GetAuthenticatedUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrAccessTokenMissing
	}
	return userID, nil
}

// HandleError forwards to the shared error envelope writer.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

func (h *BaseHandler) OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message, Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: message, Data: data})
}
