// Package adapters provides repository implementations for the feedback feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"feedback_backend/internal/feature/feedback/domain/entity"
	"feedback_backend/internal/feature/feedback/usecase"
)

// feedbackMySQL is a MySQL implementation of the FeedbackRepository interface.
type feedbackMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure feedbackMySQL implements FeedbackRepository.
var _ usecase.FeedbackRepository = (*feedbackMySQL)(nil)

// NewFeedbackMySQL creates a new instance of feedbackMySQL.
func NewFeedbackMySQL(db *gorm.DB) *feedbackMySQL {
	return &feedbackMySQL{db: db}
}

// Create adds a feedback row to the database.
func (r *feedbackMySQL) Create(ctx context.Context, f *entity.Feedback) error {
	return r.db.WithContext(ctx).Create(f).Error
}

// FindByID retrieves feedback by ID.
// Returns usecase.ErrFeedbackNotFound when no such row exists.
func (r *feedbackMySQL) FindByID(ctx context.Context, id uint) (*entity.Feedback, error) {
	var f entity.Feedback
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&f).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrFeedbackNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByUserID retrieves all feedback owned by a user, newest first.
func (r *feedbackMySQL) ListByUserID(ctx context.Context, userID uint) ([]entity.Feedback, error) {
	var rows []entity.Feedback
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update overwrites an existing feedback row.
func (r *feedbackMySQL) Update(ctx context.Context, f *entity.Feedback) error {
	return r.db.WithContext(ctx).Save(f).Error
}

// Delete removes a feedback row by ID.
// Returns usecase.ErrFeedbackNotFound when no row was deleted.
func (r *feedbackMySQL) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Feedback{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrFeedbackNotFound
	}
	return nil
}
