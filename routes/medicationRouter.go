package routes

import (
	controller "github.com/Sri-Charith/AI-HealthVault/controllers"

	"github.com/gin-gonic/gin"
)

func MedicationRoutes(incomingRoutes *gin.RouterGroup, ctl *controller.MedicationController) {
	incomingRoutes.POST("/medication", ctl.CreateMedication())
	incomingRoutes.GET("/medication", ctl.GetMedications())
	incomingRoutes.PUT("/medication/:medication_id/stock", ctl.UpdateStock())
	incomingRoutes.POST("/medication/mark-taken", ctl.MarkTaken())
}
