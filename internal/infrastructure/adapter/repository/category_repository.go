package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/moneywise/finance-tracker/internal/domain/entity"
	errs "github.com/moneywise/finance-tracker/internal/domain/error"
	coreport "github.com/moneywise/finance-tracker/internal/domain/port/core"
	"github.com/moneywise/finance-tracker/internal/infrastructure/adapter/model"
)

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *CategoryRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCategoryNotFound
	}

	r.logger.Error("Database error when "+operation, map[string]any{
		"error": err.Error(),
	})
	return r.errorClassifier.mapStorageError(err)
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(ctx context.Context, id uint64) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).First(&categoryModel, id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting category", result.Error)
	}
	return &entity.Category{ID: categoryModel.ID, Name: categoryModel.Name}, nil
}

// FindByName retrieves a category by name, matched case-insensitively so
// "food" and "FOOD" resolve to the same stored row
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var categoryModel model.Category
	result := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&categoryModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("finding category by name", result.Error)
	}
	return &entity.Category{ID: categoryModel.ID, Name: categoryModel.Name}, nil
}

// Create persists a new category and backfills the generated ID
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.Category{Name: category.Name}

	result := r.db.WithContext(ctx).Create(&categoryModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating category", result.Error)
	}

	category.ID = categoryModel.ID
	return nil
}
