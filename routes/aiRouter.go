package routes

import (
	controller "github.com/Sri-Charith/AI-HealthVault/controllers"

	"github.com/gin-gonic/gin"
)

func AIRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.AIController) {
	incomingRoutes.GET("/recommendations/fitness", ctl.FitnessRecommendations())
	incomingRoutes.GET("/recommendations/medication", ctl.MedicationRecommendations())
}
