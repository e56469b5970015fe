package routes

import (
	controller "github.com/Sri-Charith/AI-HealthVault/controllers"

	"github.com/gin-gonic/gin"
)

func FitnessRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.FitnessController) {
	incomingRoutes.GET("/fitness", ctl.GetDay())
	incomingRoutes.POST("/fitness/update", ctl.UpdateSteps())
	incomingRoutes.POST("/fitness/set-target", ctl.SetTarget())
	incomingRoutes.POST("/fitness/set-workout-type", ctl.SetWorkoutType())
	incomingRoutes.POST("/fitness/add-exercise", ctl.AddExercise())
	incomingRoutes.PUT("/fitness/exercise/:exercise_id", ctl.UpdateExercise())
	incomingRoutes.DELETE("/fitness/exercise/:exercise_id", ctl.DeleteExercise())
	incomingRoutes.GET("/fitness/exercises/:category", ctl.ExercisesByCategory())
	incomingRoutes.GET("/fitness/monthly", ctl.Monthly())
}
