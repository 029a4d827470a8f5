package wire

import (
	"FitPulse/internal/api"
	"FitPulse/internal/api/config"
	"FitPulse/internal/api/handler"
	"FitPulse/internal/job"
	"FitPulse/internal/pkg/cron"
	"FitPulse/internal/pkg/kafka"
	"FitPulse/internal/pkg/period"
	"FitPulse/internal/repository"
	"FitPulse/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	periods := period.NewResolver(cfg.Period.UTCOffsetHours)

	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepository(db)
	actionRepo := repository.NewPostActionRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	statRepo := repository.NewQuarterlyStatisticsRepo(db)
	rankingRepo := repository.NewQuarterlyRankingRepo(db)
	dailyRepo := repository.NewDailyGroupActivityRepo(db)

	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(periods, postRepo, groupRepo, statRepo, rankingRepo, dailyRepo)
	postService := service.NewPostService(postRepo, groupRepo, activityService)
	actionService := service.NewPostActionService(actionRepo, postRepo)
	groupService := service.NewGroupService(groupRepo)
	rankingService := service.NewRankingService(periods, rankingRepo, groupRepo)

	handlers := &api.HandlersGroup{
		UserHandler:       handler.NewUserHandler(userService),
		PostHandler:       handler.NewPostHandler(postService),
		PostActionHandler: handler.NewPostActionHandler(actionService),
		GroupHandler:      handler.NewGroupHandler(groupService),
		ActivityHandler:   handler.NewActivityHandler(periods, activityService, rankingService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, postRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewQuarterFinalizeJob(rankingService))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
