package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/clubhub/clubhub-api/internal/adapters/config"
	httpController "github.com/clubhub/clubhub-api/internal/adapters/controller/http"
	postgresStorage "github.com/clubhub/clubhub-api/internal/adapters/database/postgres"
	"github.com/clubhub/clubhub-api/internal/adapters/database/redis"
	"github.com/clubhub/clubhub-api/internal/domain/service"
	"github.com/clubhub/clubhub-api/pkg/logger"
	"github.com/clubhub/clubhub-api/pkg/logger/types"
	"github.com/clubhub/clubhub-api/pkg/smtp"
)

type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
	Logger *types.Logger
}

func New(cfg *config.Config) (*App, error) {
	apiLogger, err := logger.Named("api")
	if err != nil {
		return nil, err
	}

	if !viper.GetBool("settings.debug") {
		gin.SetMode(gin.ReleaseMode)
	}

	userStorage := postgresStorage.NewUserStorage(cfg.Database)
	clubStorage := postgresStorage.NewClubStorage(cfg.Database)
	memberStorage := postgresStorage.NewClubMemberStorage(cfg.Database)
	joinRequestStorage := postgresStorage.NewJoinRequestStorage(cfg.Database)
	feeCycleStorage := postgresStorage.NewFeeCycleStorage(cfg.Database)
	feeRequestStorage := postgresStorage.NewFeeRequestStorage(cfg.Database)
	notificationStorage := postgresStorage.NewNotificationStorage(cfg.Database)
	matchStorage := postgresStorage.NewMatchStorage(cfg.Database)
	attendanceStorage := postgresStorage.NewMatchAttendanceStorage(cfg.Database)

	smtpClient := smtp.NewClient(cfg.SMTPDialer)

	services := httpController.Services{
		Auth: service.NewAuthService(
			userStorage,
			cfg.Redis.Sessions,
			smtpClient,
			viper.GetString("service.auth.secret"),
		),
		User:        service.NewUserService(userStorage),
		Club:        service.NewClubService(clubStorage, userStorage),
		ClubMember:  service.NewClubMemberService(memberStorage),
		JoinRequest: service.NewJoinRequestService(joinRequestStorage, clubStorage, userStorage),
		Fee: service.NewFeeService(
			feeCycleStorage,
			feeRequestStorage,
			clubStorage,
			userStorage,
			memberStorage,
		),
		Notification: service.NewNotificationService(notificationStorage, clubStorage, memberStorage),
		Match: service.NewMatchService(
			matchStorage,
			attendanceStorage,
			clubStorage,
			memberStorage,
		),
	}

	return &App{
		Router: httpController.NewRouter(services, apiLogger),
		DB:     cfg.Database,
		Redis:  cfg.Redis,
		Logger: apiLogger,
	}, nil
}

func (a *App) Start() error {
	addr := fmt.Sprintf(":%d", viper.GetInt("service.http.port"))
	logger.Log.Infof("HTTP server starting on %s", addr)
	return a.Router.Run(addr)
}
