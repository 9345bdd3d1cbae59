package handlers

import (
	"net/http"

	"github.com/clubhub/clubhub-api/internal/adapters/controller/http/middleware"
	"github.com/clubhub/clubhub-api/internal/domain/dto"
	"github.com/clubhub/clubhub-api/internal/domain/entity"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/gin-gonic/gin"
)

type ClubHandler struct {
	clubService   *service.ClubService
	memberService *service.ClubMemberService
	userService   *service.UserService
}

func NewClubHandler(clubService *service.ClubService, memberService *service.ClubMemberService, userService *service.UserService) *ClubHandler {
	return &ClubHandler{
		clubService:   clubService,
		memberService: memberService,
		userService:   userService,
	}
}

func (h *ClubHandler) Create(c *gin.Context) {
	var input dto.CreateClub
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.Create(c.Request.Context(), input, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, club)
}

func (h *ClubHandler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	club, err := h.clubService.Get(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) List(c *gin.Context) {
	clubs, err := h.clubService.GetAll(c.Request.Context())
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

func (h *ClubHandler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var input dto.UpdateClub
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	club, err := h.clubService.Update(c.Request.Context(), id, input, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.clubService.Delete(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClubHandler) ListMembers(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	members, err := h.memberService.GetByClubID(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *ClubHandler) Leave(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	member, err := h.memberService.Leave(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

func (h *ClubHandler) MyClub(c *gin.Context) {
	club, err := h.clubService.GetByAdmin(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

func (h *ClubHandler) MyMemberships(c *gin.Context) {
	memberships, err := h.memberService.GetByUserID(c.Request.Context(), middleware.UserID(c), entity.MemberStatus(c.Query("status")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberships)
}
