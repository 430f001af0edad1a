package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	domainerr "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/domain/port/usecase"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/api/dto"
)

// CategoryHandler handles category assignment and budget HTTP requests
type CategoryHandler struct {
	categoryUseCase usecase.CategoryUseCase
	authUseCase     usecase.AuthUseCase
	logger          coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(
	categoryUseCase usecase.CategoryUseCase,
	authUseCase usecase.AuthUseCase,
	logger coreport.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		authUseCase:     authUseCase,
		logger:          logger,
	}
}

// categoryIDParam parses the :categoryId path parameter
func categoryIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "invalid category ID format",
		})
		return 0, false
	}
	return id, true
}

// Create handles the POST /categories endpoint
func (h *CategoryHandler) Create(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: err.Error(),
		})
		return
	}

	category, err := h.categoryUseCase.CreateAndAssignCategory(
		c.Request.Context(), h.authUseCase.UserID(principal), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	})
}

// Assign handles the POST /categories/:categoryId/assign endpoint
func (h *CategoryHandler) Assign(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	categoryID, ok := categoryIDParam(c)
	if !ok {
		return
	}

	err := h.categoryUseCase.AssignCategoryToUser(
		c.Request.Context(), h.authUseCase.UserID(principal), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove handles the DELETE /categories/:categoryId endpoint
func (h *CategoryHandler) Remove(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	categoryID, ok := categoryIDParam(c)
	if !ok {
		return
	}

	err := h.categoryUseCase.RemoveCategoryFromUser(
		c.Request.Context(), h.authUseCase.UserID(principal), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SetBudget handles the PUT /categories/:categoryId/budget endpoint
func (h *CategoryHandler) SetBudget(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	categoryID, ok := categoryIDParam(c)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: err.Error(),
		})
		return
	}

	budget, err := h.categoryUseCase.SetMonthlyBudget(
		c.Request.Context(), h.authUseCase.UserID(principal), categoryID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BudgetResponse{
		CategoryID:   budget.CategoryID,
		YearMonth:    budget.YearMonth,
		BudgetAmount: entity.AmountInCentsToString(budget.BudgetAmount),
		SpentAmount:  entity.AmountInCentsToString(budget.SpentAmount),
	})
}

// DeleteBudget handles the DELETE /categories/:categoryId/budget endpoint
func (h *CategoryHandler) DeleteBudget(c *gin.Context) {
	principal, ok := principalFromContext(c)
	if !ok {
		return
	}

	categoryID, ok := categoryIDParam(c)
	if !ok {
		return
	}

	err := h.categoryUseCase.DeleteMonthlyBudget(
		c.Request.Context(), h.authUseCase.UserID(principal), categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
