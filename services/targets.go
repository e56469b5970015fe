package services

import (
	"context"

	"github.com/Sri-Charith/AI-HealthVault/helpers"
	"github.com/Sri-Charith/AI-HealthVault/models"
)

// TargetSummary reports a whole-month propagation. Individual records are not
// returned; a month touches up to 31 of them.
type TargetSummary struct {
	Target      int    `json:"target"`
	DaysUpdated int    `json:"days_updated"`
	FirstDate   string `json:"first_date"`
	LastDate    string `json:"last_date"`
}

// SetTarget applies a step target to a single day. The record is created with
// carry-forward defaults when absent. FixedMonthly is cleared: a one-day
// override does not propagate into later days.
func (s *FitnessService) SetTarget(ctx context.Context, userID, date string, target int) (*models.FitnessRecord, error) {
	if target <= 0 {
		return nil, invalidInput("target must be a positive number, got %d", target)
	}

	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.GetOrCreate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	record.Target = target
	record.FixedMonthly = false
	if err := s.store.Replace(ctx, record); err != nil {
		return nil, storage("set target", err)
	}
	return record, nil
}

// SetMonthlyTarget applies the target to every calendar day of the month
// containing date, marking each day fixed-monthly so the target carries
// forward into later months. Steps, exercises and workout type on existing
// days are left alone. Each day is updated atomically on its own; the loop is
// idempotent and safely resumable when a day in the middle fails.
func (s *FitnessService) SetMonthlyTarget(ctx context.Context, userID, date string, target int) (*TargetSummary, error) {
	if target <= 0 {
		return nil, invalidInput("target must be a positive number, got %d", target)
	}
	day, err := helpers.ParseDay(date)
	if err != nil {
		return nil, invalidInput("%v", err)
	}

	days := helpers.DaysOfMonth(day)
	for _, d := range days {
		if err := s.setTargetFixed(ctx, userID, d, target); err != nil {
			return nil, err
		}
	}
	return &TargetSummary{
		Target:      target,
		DaysUpdated: len(days),
		FirstDate:   days[0],
		LastDate:    days[len(days)-1],
	}, nil
}

func (s *FitnessService) setTargetFixed(ctx context.Context, userID, date string, target int) error {
	unlock := s.locks.lock(dayKey(userID, date))
	defer unlock.Unlock()

	record, err := s.GetOrCreate(ctx, userID, date)
	if err != nil {
		return err
	}
	if record.Target == target && record.FixedMonthly {
		return nil
	}
	record.Target = target
	record.FixedMonthly = true
	if err := s.store.Replace(ctx, record); err != nil {
		return storage("propagate monthly target", err)
	}
	return nil
}
