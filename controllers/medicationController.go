package controllers

import (
	"net/http"

	"github.com/Sri-Charith/AI-HealthVault/services"
	"github.com/gin-gonic/gin"
)

// MedicationController exposes the medication schedule and stock endpoints.
type MedicationController struct {
	medications *services.MedicationService
}

func NewMedicationController(medications *services.MedicationService) *MedicationController {
	return &MedicationController{medications: medications}
}

// CreateMedication stores a new medication and its initial refill projection.
func (ctl *MedicationController) CreateMedication() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			TabletName     string   `json:"tablet_name" validate:"required"`
			Times          []string `json:"times" validate:"required,min=1"`
			StartDate      string   `json:"start_date" validate:"required"`
			Frequency      string   `json:"frequency" validate:"required"`
			StockQuantity  *int     `json:"stock_quantity"`
			TabletsPerDose *int     `json:"tablets_per_dose"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.medications.Create(ctx, requestUser(c), services.CreateMedicationInput{
			TabletName:     body.TabletName,
			Times:          body.Times,
			StartDate:      body.StartDate,
			Frequency:      body.Frequency,
			StockQuantity:  body.StockQuantity,
			TabletsPerDose: body.TabletsPerDose,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "medication added", "medication": record})
	}
}

// GetMedications lists the caller's medications.
func (ctl *MedicationController) GetMedications() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		records, err := ctl.medications.List(ctx, requestUser(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}

// UpdateStock partially updates stock quantity and tablets per dose; the
// refill estimate is reprojected from the resulting values.
func (ctl *MedicationController) UpdateStock() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			StockQuantity  *int `json:"stock_quantity"`
			TabletsPerDose *int `json:"tablets_per_dose"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.medications.UpdateStock(ctx, requestUser(c), c.Param("medication_id"),
			body.StockQuantity, body.TabletsPerDose)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "stock updated", "medication": record})
	}
}

// MarkTaken appends (today, time) to the medication's taken log.
func (ctl *MedicationController) MarkTaken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			MedicationID string `json:"medication_id" validate:"required"`
			Time         string `json:"time" validate:"required"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := validate.Struct(body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := ctl.medications.MarkTaken(ctx, requestUser(c), body.MedicationID, body.Time); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "marked as taken"})
	}
}
