package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Sri-Charith/AI-HealthVault/ai"
	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AIController builds read-shaped snapshots of the user's data, hands them to
// the advice generator and passes the returned text through verbatim.
type AIController struct {
	fitness     *services.FitnessService
	medications *services.MedicationService
	gemini      *ai.Client
	users       *mongo.Collection
}

func NewAIController(fitness *services.FitnessService, medications *services.MedicationService, gemini *ai.Client, users *mongo.Collection) *AIController {
	return &AIController{fitness: fitness, medications: medications, gemini: gemini, users: users}
}

func (ctl *AIController) userGoals(ctx context.Context, userID string) []string {
	var user struct {
		Goals []string `bson:"goals"`
	}
	if err := ctl.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user); err != nil {
		return nil
	}
	return user.Goals
}

// FitnessRecommendations generates advice from the day's activity snapshot.
func (ctl *AIController) FitnessRecommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 40*time.Second)
		defer cancel()

		userID := requestUser(c)
		snapshot, err := ctl.fitness.FitnessSnapshot(ctx, userID, requestDate(c, c.Query("date")))
		if err != nil {
			respondError(c, err)
			return
		}

		prompt := ai.FitnessPrompt(ctl.userGoals(ctx, userID), snapshot)
		advice, err := ctl.gemini.Generate(ctx, prompt)
		if err != nil {
			respondAIError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": advice})
	}
}

// MedicationRecommendations generates advice from the medication snapshots.
func (ctl *AIController) MedicationRecommendations() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 40*time.Second)
		defer cancel()

		userID := requestUser(c)
		snapshots, err := ctl.medications.MedicationSnapshots(ctx, userID, helpers.Today(time.Local))
		if err != nil {
			respondError(c, err)
			return
		}

		prompt := ai.MedicationPrompt(ctl.userGoals(ctx, userID), snapshots)
		advice, err := ctl.gemini.Generate(ctx, prompt)
		if err != nil {
			respondAIError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"recommendations": advice})
	}
}

func respondAIError(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrNotConfigured) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "recommendations are not available"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate recommendations"})
}
