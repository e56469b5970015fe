package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/middleware"
	"github.com/Sri-Charith/AI-HealthVault/models"
	"github.com/Sri-Charith/AI-HealthVault/services"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

const requestTimeout = 10 * time.Second

// FitnessController exposes the daily activity record endpoints.
type FitnessController struct {
	fitness *services.FitnessService
}

func NewFitnessController(fitness *services.FitnessService) *FitnessController {
	return &FitnessController{fitness: fitness}
}

func requestUser(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

func requestDate(c *gin.Context, value string) string {
	if value == "" {
		return helpers.Today(time.Local)
	}
	return value
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

type setDTO struct {
	Reps     int     `json:"reps" validate:"required"`
	Weight   float64 `json:"weight"`
	RestTime int     `json:"rest_time"`
}

func toModelSets(dtos []setDTO) []models.ExerciseSet {
	sets := make([]models.ExerciseSet, len(dtos))
	for i, d := range dtos {
		sets[i] = models.ExerciseSet{Reps: d.Reps, Weight: d.Weight, RestTime: d.RestTime}
	}
	return sets
}

// GetDay returns the record for ?date= (today by default), creating it with
// carry-forward defaults on first access.
func (ctl *FitnessController) GetDay() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.fitness.GetOrCreate(ctx, requestUser(c), requestDate(c, c.Query("date")))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// UpdateSteps adds a positive step count to the day's total.
func (ctl *FitnessController) UpdateSteps() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Steps int    `json:"steps"`
			Date  string `json:"date"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.fitness.IncrementSteps(ctx, requestUser(c), requestDate(c, body.Date), body.Steps)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// SetTarget sets the step target for one day, or propagates it over the whole
// month when use_for_month is set. The month form answers with a summary, not
// 31 records.
func (ctl *FitnessController) SetTarget() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Target      int    `json:"target"`
			Date        string `json:"date"`
			UseForMonth bool   `json:"use_for_month"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		userID := requestUser(c)
		date := requestDate(c, body.Date)

		if body.UseForMonth {
			summary, err := ctl.fitness.SetMonthlyTarget(ctx, userID, date, body.Target)
			if err != nil {
				respondError(c, err)
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "monthly target updated", "summary": summary})
			return
		}

		record, err := ctl.fitness.SetTarget(ctx, userID, date, body.Target)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// SetWorkoutType labels the day's workout; omitting workout_type clears it.
func (ctl *FitnessController) SetWorkoutType() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			WorkoutType string `json:"workout_type"`
			Date        string `json:"date"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.fitness.SetWorkoutType(ctx, requestUser(c), requestDate(c, body.Date), body.WorkoutType)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// AddExercise logs a strength exercise with its sets on the day's record.
func (ctl *FitnessController) AddExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			ExerciseName string   `json:"exercise_name" validate:"required"`
			Category     string   `json:"category" validate:"required"`
			Sets         []setDTO `json:"sets" validate:"required"`
			Notes        string   `json:"notes"`
			Date         string   `json:"date"`
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

		record, err := ctl.fitness.AddExercise(ctx, requestUser(c), requestDate(c, body.Date),
			body.ExerciseName, body.Category, toModelSets(body.Sets), body.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// UpdateExercise replaces an exercise's sets and, when given, its notes.
func (ctl *FitnessController) UpdateExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Sets  []setDTO `json:"sets" validate:"required"`
			Notes *string  `json:"notes"`
			Date  string   `json:"date"`
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

		record, err := ctl.fitness.UpdateExercise(ctx, requestUser(c), requestDate(c, body.Date),
			c.Param("exercise_id"), toModelSets(body.Sets), body.Notes)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// DeleteExercise removes an exercise and subtracts its volume.
func (ctl *FitnessController) DeleteExercise() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		record, err := ctl.fitness.RemoveExercise(ctx, requestUser(c),
			requestDate(c, c.Query("date")), c.Param("exercise_id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// ExercisesByCategory lists the day's exercises in one category.
func (ctl *FitnessController) ExercisesByCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := requestContext(c)
		defer cancel()

		exercises, err := ctl.fitness.ExercisesByCategory(ctx, requestUser(c),
			requestDate(c, c.Query("date")), c.Param("category"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"exercises": exercises})
	}
}

// Monthly lists the month's records ascending by date; ?month=YYYY-MM,
// defaulting to the current month.
func (ctl *FitnessController) Monthly() gin.HandlerFunc {
	return func(c *gin.Context) {
		month := c.Query("month")
		if month == "" {
			month = time.Now().Format(helpers.MonthLayout)
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		records, err := ctl.fitness.Monthly(ctx, requestUser(c), month)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, records)
	}
}
