package http

import (
	"github.com/clubhub/clubhub-api/internal/adapters/controller/http/handlers"
	"github.com/clubhub/clubhub-api/internal/adapters/controller/http/middleware"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/clubhub/clubhub-api/pkg/logger/types"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Auth         *service.AuthService
	User         *service.UserService
	Club         *service.ClubService
	ClubMember   *service.ClubMemberService
	JoinRequest  *service.JoinRequestService
	Fee          *service.FeeService
	Notification *service.NotificationService
	Match        *service.MatchService
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(services Services, log *types.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))

	authHandler := handlers.NewAuthHandler(services.Auth)
	userHandler := handlers.NewUserHandler(services.User)
	clubHandler := handlers.NewClubHandler(services.Club, services.ClubMember, services.User)
	joinRequestHandler := handlers.NewJoinRequestHandler(services.JoinRequest)
	feeHandler := handlers.NewFeeHandler(services.Fee)
	notificationHandler := handlers.NewNotificationHandler(services.Notification)
	matchHandler := handlers.NewMatchHandler(services.Match)

	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", middleware.Auth(services.Auth), authHandler.Logout)
	}

	me := r.Group("/me", middleware.Auth(services.Auth))
	{
		me.GET("", userHandler.Me)
		me.PATCH("/onboarding-type", userHandler.UpdateOnboardingType)
		me.GET("/club", clubHandler.MyClub)
		me.GET("/memberships", clubHandler.MyMemberships)
		me.GET("/join-requests", joinRequestHandler.ListMine)
		me.GET("/fees", feeHandler.ListMine)
		me.GET("/attendance", matchHandler.ListMyAttendance)
		me.GET("/notifications", notificationHandler.ListMine)
		me.GET("/notifications/audit", notificationHandler.ListAudit)
		me.PATCH("/notifications/read-all", notificationHandler.MarkAllRead)
	}

	api := r.Group("/", middleware.Auth(services.Auth))
	{
		api.GET("/users", userHandler.List)
		api.GET("/users/:id", userHandler.Get)

		api.POST("/clubs", clubHandler.Create)
		api.GET("/clubs", clubHandler.List)
		api.GET("/clubs/:id", clubHandler.Get)
		api.PATCH("/clubs/:id", clubHandler.Update)
		api.DELETE("/clubs/:id", clubHandler.Delete)
		api.GET("/clubs/:id/members", clubHandler.ListMembers)
		api.POST("/clubs/:id/leave", clubHandler.Leave)
		api.GET("/clubs/:id/join-requests", joinRequestHandler.ListByClub)
		api.GET("/clubs/:id/fee-cycles", feeHandler.ListClubCycles)
		api.GET("/clubs/:id/matches", matchHandler.ListByClub)

		api.POST("/join-requests", joinRequestHandler.Create)
		api.POST("/join-requests/:id/approve", joinRequestHandler.Approve)
		api.POST("/join-requests/:id/reject", joinRequestHandler.Reject)

		api.POST("/fees/cycles", feeHandler.CreateCycle)
		api.GET("/fees/cycles/:id", feeHandler.GetCycle)
		api.PUT("/fees/cycles/:id", feeHandler.UpdateCycle)
		api.GET("/fees/cycles/:id/requests", feeHandler.ListCycleRequests)
		api.POST("/fees/requests/:id/report", feeHandler.Report)
		api.POST("/fees/requests/:id/confirm", feeHandler.Confirm)

		api.POST("/notifications/club", notificationHandler.Broadcast)
		api.PATCH("/notifications/:id/read", notificationHandler.MarkRead)

		api.POST("/matches", matchHandler.Create)
		api.GET("/matches/:id", matchHandler.Get)
		api.PATCH("/matches/:id", matchHandler.Update)
		api.DELETE("/matches/:id", matchHandler.Delete)
		api.POST("/matches/:id/attendance", matchHandler.SetAttendance)
		api.GET("/matches/:id/attendance", matchHandler.ListAttendance)
	}

	return r
}
