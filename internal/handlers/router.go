package handlers

import "github.com/gin-gonic/gin"

type Handlers struct {
	Level    *LevelHandler
	Session  *SessionHandler
	Question *QuestionHandler
	Result   *ResultHandler
	Stats    *StatsHandler
}

// RegisterRoutes wires the API surface onto the engine.
func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		api.GET("/levels/", h.Level.GetLevels)
		api.POST("/start-session/", h.Session.StartSession)
		api.GET("/questions/:session_id/", h.Question.GetQuestions)
		api.POST("/submit-test/", h.Result.SubmitTest)
		api.GET("/test-results/:session_id/", h.Result.GetTestResult)
		api.GET("/statistics/", h.Stats.GetStatistics)
		api.GET("/results/", h.Stats.GetRecentResults)

		admin := api.Group("/admin")
		{
			admin.GET("/levels", h.Level.ListAllLevels)
			admin.POST("/levels", h.Level.CreateLevel)
			admin.PUT("/levels/:id", h.Level.UpdateLevel)
			admin.DELETE("/levels/:id", h.Level.DeleteLevel)
			admin.POST("/levels/:id/questions", h.Question.CreateQuestion)
			admin.PUT("/questions/:id", h.Question.UpdateQuestion)
			admin.DELETE("/questions/:id", h.Question.DeleteQuestion)
		}
	}
}
