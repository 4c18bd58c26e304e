package handler

import (
	"net/http"

	"moveboss/internal/usecase/settlement"
	apperrors "moveboss/pkg/errors"
	"moveboss/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettlementHandler struct {
	service *settlement.Service
}

func NewSettlementHandler(service *settlement.Service) *SettlementHandler {
	return &SettlementHandler{service: service}
}

func (h *SettlementHandler) RegisterOwnerRoutes(router *gin.RouterGroup) {
	trips := router.Group("/trips")
	{
		// Owner routes
		trips.POST("/:id/settle", h.Settle)
		trips.POST("/:id/recalculate", h.Recalculate)
	}
}

func (h *SettlementHandler) RegisterRoutes(router *gin.RouterGroup) {
	trips := router.Group("/trips")
	{
		trips.GET("/:id/settlement", h.GetSettlement)
	}
}

func (h *SettlementHandler) Settle(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	// Owner ID from context (set by auth middleware)
	ownerID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	ownerUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return
	}

	result, err := h.service.Settle(c.Request.Context(), tripID, ownerUUID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Trip settled successfully", result)
}

func (h *SettlementHandler) Recalculate(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	ownerID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	ownerUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return
	}

	result, err := h.service.Recalculate(c.Request.Context(), tripID, ownerUUID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settlement recalculated successfully", result)
}

func (h *SettlementHandler) GetSettlement(c *gin.Context) {
	tripID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid trip ID")
		return
	}

	ownerID, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return
	}

	ownerUUID, ok := ownerID.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return
	}

	result, err := h.service.GetByTrip(c.Request.Context(), tripID, ownerUUID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Settlement retrieved successfully", result)
}

// statusForError maps service errors to HTTP status codes.
func statusForError(err error) int {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		return http.StatusInternalServerError
	}

	switch appErr.Code {
	case apperrors.CodeValidation:
		return http.StatusUnprocessableEntity
	case apperrors.CodeNotFound:
		return http.StatusNotFound
	case apperrors.CodeConflict:
		return http.StatusConflict
	case apperrors.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
