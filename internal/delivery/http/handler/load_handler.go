package handler

import (
	"net/http"

	"moveboss/internal/usecase/delivery"
	"moveboss/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LoadHandler struct {
	service *delivery.Service
}

func NewLoadHandler(service *delivery.Service) *LoadHandler {
	return &LoadHandler{service: service}
}

func (h *LoadHandler) RegisterRoutes(router *gin.RouterGroup) {
	loads := router.Group("/loads")
	{
		// Owner and driver routes
		loads.GET("/:id/financials", h.GetFinancials)
		loads.GET("/:id/pre-delivery-check", h.PreDeliveryCheck)
	}
}

func (h *LoadHandler) RegisterDriverRoutes(router *gin.RouterGroup) {
	loads := router.Group("/loads")
	{
		// Driver routes
		loads.POST("/:id/cod-received", h.MarkCODReceived)
	}
}

func (h *LoadHandler) GetFinancials(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid load ID")
		return
	}

	result, err := h.service.Financials(c.Request.Context(), loadID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Load financials retrieved successfully", result)
}

func (h *LoadHandler) PreDeliveryCheck(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid load ID")
		return
	}

	result, err := h.service.PreDeliveryCheck(c.Request.Context(), loadID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pre-delivery check completed", result)
}

func (h *LoadHandler) MarkCODReceived(c *gin.Context) {
	loadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid load ID")
		return
	}

	if err := h.service.MarkCODReceived(c.Request.Context(), loadID); err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "COD marked as received", nil)
}
