package ai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FitnessPrompt frames the day's activity snapshot for the coach persona.
func FitnessPrompt(goals []string, snapshot interface{}) string {
	data, _ := json.Marshal(snapshot)
	return fmt.Sprintf(`You are a fitness coach. Analyze the following fitness data and provide personalized, actionable recommendations in a friendly, encouraging tone. Keep recommendations concise (3-5 bullet points).

User Goals: %s
Fitness Data: %s

Provide specific, actionable recommendations based on this data. Focus on:
- Workout optimization
- Recovery and rest days
- Progressive overload suggestions
- Form and technique tips
- Goal achievement strategies

Format as a friendly, encouraging message with bullet points.`, formatGoals(goals), data)
}

// MedicationPrompt frames the medication snapshots for the advisor persona.
// It stays on reminders and organization; medical decisions are explicitly
// deferred to a healthcare provider.
func MedicationPrompt(goals []string, snapshots interface{}) string {
	data, _ := json.Marshal(snapshots)
	return fmt.Sprintf(`You are a healthcare advisor. Analyze the following medication data and provide personalized, helpful recommendations in a friendly, professional tone. Keep recommendations concise (3-5 bullet points).

User Goals: %s
Medications: %s

Provide specific, actionable recommendations based on this data. Focus on:
- Medication adherence tips
- Stock management
- Timing optimization
- Safety reminders
- Health monitoring suggestions

IMPORTANT: Do not provide medical advice. Only give general reminders and organizational tips. Always remind users to consult their healthcare provider for medical decisions.

Format as a friendly, professional message with bullet points.`, formatGoals(goals), data)
}

func formatGoals(goals []string) string {
	if len(goals) == 0 {
		return "Not specified"
	}
	return strings.Join(goals, ", ")
}
