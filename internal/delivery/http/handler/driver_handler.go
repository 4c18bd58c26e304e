package handler

import (
	"net/http"

	"moveboss/internal/usecase/driverpay"
	"moveboss/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DriverHandler struct {
	service *driverpay.Service
}

func NewDriverHandler(service *driverpay.Service) *DriverHandler {
	return &DriverHandler{service: service}
}

func (h *DriverHandler) RegisterOwnerRoutes(router *gin.RouterGroup) {
	drivers := router.Group("/drivers")
	{
		// Owner routes
		drivers.PUT("/:id/pay-plan", h.UpsertPayPlan)
		drivers.GET("/:id/pay-plan", h.GetPayPlan)
	}
}

func (h *DriverHandler) UpsertPayPlan(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	var req driverpay.UpsertPayPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.UpsertPayPlan(c.Request.Context(), driverID, &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pay plan saved successfully", result)
}

func (h *DriverHandler) GetPayPlan(c *gin.Context) {
	driverID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid driver ID")
		return
	}

	result, err := h.service.GetPayPlan(c.Request.Context(), driverID)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), err.Error())
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pay plan retrieved successfully", result)
}
