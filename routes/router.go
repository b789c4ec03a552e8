// file: routes/router.go
package routes

import (
	"hguoj/controllers"
	"hguoj/middlewares"
	"hguoj/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogMiddleware())

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}
		usersAuth := apiV1.Group("/users")
		usersAuth.Use(middlewares.JWTAuthMiddleware())
		{
			usersAuth.GET("/:id", controllers.GetUserDetail)
		}
		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin))
		{
			adminRoutes.GET("/users", controllers.GetUserList)
			adminRoutes.DELETE("/users/:id", controllers.DeleteUser)
		}

		contestRoutes := apiV1.Group("/contests")
		{
			contestRoutes.GET("", controllers.GetContestList)
			contestRoutes.GET("/:id", controllers.GetContestDetail)
			contestRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateContest)
			contestRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateContest)
			contestRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteContest)
		}

		problemRoutes := apiV1.Group("/problems")
		{
			problemRoutes.GET("", middlewares.JWTAuthMiddleware(), controllers.GetProblemList)
			problemRoutes.GET("/:id", middlewares.JWTAuthMiddleware(), controllers.GetProblemDetail)
			problemRoutes.POST("", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.CreateProblem)
			problemRoutes.PUT("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.UpdateProblem)
			problemRoutes.DELETE("/:id", middlewares.JWTAuthMiddleware(), middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.DeleteProblem)
		}

		teamRoutes := apiV1.Group("/teams")
		teamRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			teamRoutes.GET("/exists", controllers.ExistsTeamName)
			teamRoutes.GET("/ranking", controllers.GetContestRanking)
			teamRoutes.GET("/feed", controllers.GetSolveFeed)
			teamRoutes.POST("", controllers.CreateTeam)
			teamRoutes.GET("", controllers.GetTeamList)
			teamRoutes.GET("/:id", controllers.GetTeamDetail)
			teamRoutes.DELETE("/:id", controllers.DeleteTeam)
			teamRoutes.POST("/:id/members", controllers.AddTeamMembers)
			teamRoutes.DELETE("/:id/members", controllers.RemoveTeamMembers)
			// 解题事实由判题服务投递，走管理员凭证
			teamRoutes.POST("/:id/problems/:problem_id", middlewares.RoleAuthMiddleware(models.RoleAdmin), controllers.RecordTeamSolve)
			teamRoutes.GET("/:id/problems", controllers.GetTeamSolvedProblems)
		}
	}

	return r
}
