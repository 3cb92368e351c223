package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/goals/internal/application/usecase/goal"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/dto"
)

// GoalController handles goal endpoints.
type GoalController struct {
	listUseCase    *goal.ListGoalsUseCase
	createUseCase  *goal.CreateGoalUseCase
	getUseCase     *goal.GetGoalUseCase
	updateUseCase  *goal.UpdateGoalUseCase
	deleteUseCase  *goal.DeleteGoalUseCase
	summaryUseCase *goal.GetSummaryUseCase
	suggestUseCase *goal.SuggestMonthlyUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	listUseCase *goal.ListGoalsUseCase,
	createUseCase *goal.CreateGoalUseCase,
	getUseCase *goal.GetGoalUseCase,
	updateUseCase *goal.UpdateGoalUseCase,
	deleteUseCase *goal.DeleteGoalUseCase,
	summaryUseCase *goal.GetSummaryUseCase,
	suggestUseCase *goal.SuggestMonthlyUseCase,
) *GoalController {
	return &GoalController{
		listUseCase:    listUseCase,
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
		suggestUseCase: suggestUseCase,
	}
}

// List handles GET /goals requests.
func (c *GoalController) List(ctx *gin.Context) {
	input := goal.ListGoalsInput{
		Category: ctx.Query("category"),
		SortBy:   ctx.Query("sort"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		Draft: req.ToRawDraft(),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(output.Goal))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		GoalID: ctx.Param("id"),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Update handles PUT /goals/:id requests.
func (c *GoalController) Update(ctx *gin.Context) {
	var req dto.GoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalInput{
		GoalID: ctx.Param("id"),
		Draft:  req.ToRawDraft(),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Delete handles DELETE /goals/:id requests. Unknown ids also return 204.
func (c *GoalController) Delete(ctx *gin.Context) {
	err := c.deleteUseCase.Execute(ctx.Request.Context(), goal.DeleteGoalInput{
		GoalID: ctx.Param("id"),
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /goals/summary requests.
func (c *GoalController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalSummaryResponse(output.Summary))
}

// Suggest handles POST /goals/suggest requests.
func (c *GoalController) Suggest(ctx *gin.Context) {
	var req dto.SuggestMonthlyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingGoalFields),
		})
		return
	}

	output, err := c.suggestUseCase.Execute(goal.SuggestMonthlyInput{
		TargetAmount:  req.TargetAmount.String(),
		CurrentAmount: req.CurrentAmount.String(),
		Deadline:      req.Deadline,
	})
	if err != nil {
		c.handleGoalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuggestMonthlyResponse{
		SuggestedMonthly: dto.Amount(output.SuggestedMonthly),
	})
}

// handleGoalError handles goal errors and returns appropriate HTTP responses.
func (c *GoalController) handleGoalError(ctx *gin.Context, err error) {
	var validationErr *domainerror.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   validationErr.Error(),
			Code:    string(validationErr.Code()),
			Details: validationErr.Field,
		})
		return
	}

	var notFoundErr *domainerror.NotFoundError
	if errors.As(err, &notFoundErr) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: notFoundErr.Error(),
			Code:  string(notFoundErr.Code()),
		})
		return
	}

	var persistenceErr *domainerror.PersistenceError
	if errors.As(err, &persistenceErr) {
		slog.Error("Goal storage unavailable", "op", persistenceErr.Op, "error", persistenceErr.Cause)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Goal storage is unavailable",
			Code:  string(persistenceErr.Code()),
		})
		return
	}

	slog.Error("Unexpected goal error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
