// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	"github.com/finance-tracker/goals/internal/domain/entity"
)

// amountPlaces is the precision of monetary values in responses.
const amountPlaces = 2

// GoalRequest represents the request body for goal creation and update.
// Every mutable field is replaced on update.
type GoalRequest struct {
	Name                string      `json:"name"`
	Category            string      `json:"category,omitempty"`
	TargetAmount        json.Number `json:"target_amount"`
	CurrentAmount       json.Number `json:"current_amount,omitempty"`
	Deadline            string      `json:"deadline"`
	MonthlyContribution json.Number `json:"monthly_contribution,omitempty"`
	Priority            string      `json:"priority,omitempty"`
	Automate            *bool       `json:"automate,omitempty"`
}

// ToRawDraft converts the request into unparsed use case input.
func (r GoalRequest) ToRawDraft() goal.RawGoalDraft {
	return goal.RawGoalDraft{
		Name:                r.Name,
		Category:            r.Category,
		TargetAmount:        r.TargetAmount.String(),
		CurrentAmount:       r.CurrentAmount.String(),
		Deadline:            r.Deadline,
		MonthlyContribution: r.MonthlyContribution.String(),
		Priority:            r.Priority,
		Automate:            r.Automate,
	}
}

// SuggestMonthlyRequest represents the partially filled goal form.
type SuggestMonthlyRequest struct {
	TargetAmount  json.Number `json:"target_amount"`
	CurrentAmount json.Number `json:"current_amount,omitempty"`
	Deadline      string      `json:"deadline"`
}

// SuggestMonthlyResponse represents the suggested monthly contribution.
type SuggestMonthlyResponse struct {
	SuggestedMonthly json.Number `json:"suggested_monthly"`
}

// GoalMetricsResponse holds the derived values of a goal.
type GoalMetricsResponse struct {
	ProgressPercent  json.Number `json:"progress_percent"`
	Completed        bool        `json:"completed"`
	DaysRemaining    int         `json:"days_remaining"`
	MonthsRemaining  int         `json:"months_remaining"`
	Overdue          bool        `json:"overdue"`
	Urgency          string      `json:"urgency"`
	RemainingAmount  json.Number `json:"remaining_amount"`
	RequiredMonthly  json.Number `json:"required_monthly"`
	MonthlyShortfall json.Number `json:"monthly_shortfall"`
	Pacing           string      `json:"pacing"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	Category            string              `json:"category"`
	TargetAmount        json.Number         `json:"target_amount"`
	CurrentAmount       json.Number         `json:"current_amount"`
	Deadline            string              `json:"deadline"`
	MonthlyContribution json.Number         `json:"monthly_contribution"`
	Priority            string              `json:"priority"`
	Automate            bool                `json:"automate"`
	CreatedAt           string              `json:"created_at"`
	Metrics             GoalMetricsResponse `json:"metrics"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalSummaryResponse represents the aggregate metrics of all goals.
type GoalSummaryResponse struct {
	GoalCount              int         `json:"goal_count"`
	CompletedCount         int         `json:"completed_count"`
	RemainingCount         int         `json:"remaining_count"`
	AutomatedCount         int         `json:"automated_count"`
	AutomatedPercent       int         `json:"automated_percent"`
	TotalTarget            json.Number `json:"total_target"`
	TotalCurrent           json.Number `json:"total_current"`
	OverallProgressPercent json.Number `json:"overall_progress_percent"`
	MonthlyRequiredTotal   json.Number `json:"monthly_required_total"`
}

// Amount renders a decimal as a JSON number rounded to two places.
func Amount(d decimal.Decimal) json.Number {
	return json.Number(d.Round(amountPlaces).String())
}

// ToGoalResponse converts a GoalOutput to a GoalResponse DTO.
func ToGoalResponse(output *goal.GoalOutput) GoalResponse {
	g := output.Goal
	m := output.Metrics
	return GoalResponse{
		ID:                  g.ID,
		Name:                g.Name,
		Category:            string(g.Category),
		TargetAmount:        Amount(g.TargetAmount),
		CurrentAmount:       Amount(g.CurrentAmount),
		Deadline:            entity.FormatDate(g.Deadline),
		MonthlyContribution: Amount(g.MonthlyContribution),
		Priority:            string(g.Priority),
		Automate:            g.Automate,
		CreatedAt:           entity.FormatDate(g.CreatedAt),
		Metrics: GoalMetricsResponse{
			ProgressPercent:  Amount(m.ProgressPercent),
			Completed:        m.Completed,
			DaysRemaining:    m.DaysRemaining,
			MonthsRemaining:  m.MonthsRemaining,
			Overdue:          m.Overdue,
			Urgency:          string(m.Urgency),
			RemainingAmount:  Amount(m.RemainingAmount),
			RequiredMonthly:  Amount(m.RequiredMonthly),
			MonthlyShortfall: Amount(m.MonthlyShortfall),
			Pacing:           string(m.Pacing),
		},
	}
}

// ToGoalListResponse converts goal outputs to a GoalListResponse DTO.
func ToGoalListResponse(outputs []*goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		goals[i] = ToGoalResponse(output)
	}
	return GoalListResponse{Goals: goals}
}

// ToGoalSummaryResponse converts a domain summary to a GoalSummaryResponse DTO.
func ToGoalSummaryResponse(s entity.GoalSummary) GoalSummaryResponse {
	return GoalSummaryResponse{
		GoalCount:              s.GoalCount,
		CompletedCount:         s.CompletedCount,
		RemainingCount:         s.RemainingCount,
		AutomatedCount:         s.AutomatedCount,
		AutomatedPercent:       s.AutomatedPercent,
		TotalTarget:            Amount(s.TotalTarget),
		TotalCurrent:           Amount(s.TotalCurrent),
		OverallProgressPercent: Amount(s.OverallProgressPercent),
		MonthlyRequiredTotal:   Amount(s.MonthlyRequiredTotal),
	}
}
