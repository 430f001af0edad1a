package dto

// CreateCategoryRequest represents the payload for POST /categories
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// SetBudgetRequest represents the payload for PUT /categories/:categoryId/budget
type SetBudgetRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// BudgetResponse represents a monthly budget in API responses
type BudgetResponse struct {
	CategoryID   uint64 `json:"categoryId"`
	YearMonth    string `json:"yearMonth"`
	BudgetAmount string `json:"budgetAmount"`
	SpentAmount  string `json:"spentAmount"`
}
