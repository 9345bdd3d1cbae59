package handlers

import (
	"net/http"

	"github.com/clubhub/clubhub-api/internal/adapters/controller/http/middleware"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type FeeHandler struct {
	feeService *service.FeeService
}

func NewFeeHandler(feeService *service.FeeService) *FeeHandler {
	return &FeeHandler{feeService: feeService}
}

func (h *FeeHandler) CreateCycle(c *gin.Context) {
	var input dto.CreateFeeCycle
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cycle, err := h.feeService.CreateCycle(c.Request.Context(), input, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cycle)
}

func (h *FeeHandler) UpdateCycle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input dto.UpdateFeeCycle
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cycle, err := h.feeService.UpdateCycle(c.Request.Context(), id, input, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cycle)
}

func (h *FeeHandler) GetCycle(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cycle, err := h.feeService.GetCycle(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cycle)
}

func (h *FeeHandler) ListCycleRequests(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	requests, err := h.feeService.ListByCycle(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *FeeHandler) ListClubCycles(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	cycles, err := h.feeService.GetClubCycles(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, cycles)
}

func (h *FeeHandler) Report(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	request, err := h.feeService.Report(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *FeeHandler) Confirm(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input dto.ConfirmFeeRequest
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.feeService.Confirm(c.Request.Context(), id, middleware.UserID(c), input.AdminNote)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *FeeHandler) ListMine(c *gin.Context) {
	requests, err := h.feeService.ListMine(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
