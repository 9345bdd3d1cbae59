package handlers

import (
	"net/http"

	"github.com/clubhub/clubhub-api/internal/adapters/controller/http/middleware"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type JoinRequestHandler struct {
	joinRequestService *service.JoinRequestService
}

func NewJoinRequestHandler(joinRequestService *service.JoinRequestService) *JoinRequestHandler {
	return &JoinRequestHandler{joinRequestService: joinRequestService}
}

func (h *JoinRequestHandler) Create(c *gin.Context) {
	var input dto.CreateJoinRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	request, err := h.joinRequestService.Create(c.Request.Context(), input.ClubID, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, request)
}

func (h *JoinRequestHandler) ListByClub(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	requests, err := h.joinRequestService.GetByClubID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *JoinRequestHandler) ListMine(c *gin.Context) {
	requests, err := h.joinRequestService.GetByUserID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *JoinRequestHandler) Approve(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	request, err := h.joinRequestService.Approve(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *JoinRequestHandler) Reject(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	request, err := h.joinRequestService.Reject(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, request)
}
