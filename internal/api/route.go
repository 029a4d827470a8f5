package api

import (
	"FitPulse/internal/api/handler"
	"FitPulse/internal/api/middleware"
	"FitPulse/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 路由依赖的全部 Handler
type HandlersGroup struct {
	UserHandler       *handler.UserHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	GroupHandler      *handler.GroupHandler
	ActivityHandler   *handler.ActivityHandler
}

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			// 无需登录即可访问的接口
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetMyInfo)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			authOptGroup := postGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/popular", group.PostHandler.GetPopularPosts)
				authOptGroup.GET("/detail/:post_id", group.PostHandler.GetPost)
				authOptGroup.GET("/list/:user_id", group.PostHandler.GetUserPosts)
				authOptGroup.GET("/:post_id/comments", group.PostActionHandler.GetComments)
				authOptGroup.GET("/:post_id/state", group.PostActionHandler.GetActionState)
			}

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.GET("/mine", group.PostHandler.GetMyPosts)
				authGroup.GET("/feed", group.PostHandler.GetGroupPosts)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.DeletePost)

				authGroup.POST("/like", group.PostActionHandler.LikeAction)
				authGroup.POST("/comment", group.PostActionHandler.CreateComment)
				authGroup.DELETE("/comment/:comment_id", group.PostActionHandler.DeleteComment)
			}
		}

		groupGroup := apiGroup.Group("/groups")
		{
			groupGroup.GET("", group.GroupHandler.GetGroups)
			groupGroup.GET("/:group_id", group.GroupHandler.GetGroup)
			groupGroup.GET("/:group_id/members", group.GroupHandler.GetMembers)

			authGroup := groupGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.GroupHandler.CreateGroup)
				authGroup.GET("/mine", group.GroupHandler.GetMyGroup)
				authGroup.POST("/:group_id/join", group.GroupHandler.JoinGroup)
				authGroup.DELETE("/:group_id/leave", group.GroupHandler.LeaveGroup)
			}
		}

		activityGroup := apiGroup.Group("/activity")
		{
			activityGroup.GET("/leaderboard", group.ActivityHandler.GetLeaderboard)

			authGroup := activityGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.GET("/statistics", group.ActivityHandler.GetMyStatistics)
			}
		}
	}

	return r
}
