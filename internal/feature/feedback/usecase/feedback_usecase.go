package usecase

import (
	"context"

	"feedback_backend/internal/feature/feedback/domain/entity"
)

// FeedbackRepository abstracts the persistence layer for feedback entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type FeedbackRepository interface {
	// Create persists a new feedback row.
	Create(ctx context.Context, f *entity.Feedback) error

	// FindByID retrieves feedback by ID.
	// Returns ErrFeedbackNotFound when no such row exists.
	FindByID(ctx context.Context, id uint) (*entity.Feedback, error)

	// ListByUserID retrieves all feedback owned by a user, newest first.
	ListByUserID(ctx context.Context, userID uint) ([]entity.Feedback, error)

	// Update overwrites an existing feedback row.
	Update(ctx context.Context, f *entity.Feedback) error

	// Delete removes a feedback row by ID.
	Delete(ctx context.Context, id uint) error
}

// FeedbackUsecase provides ownership-checked CRUD on feedback.
// Every mutation verifies that the caller owns the row before touching it;
// the existence check runs first so a missing row is reported as not found
// rather than as an authorization failure.
type FeedbackUsecase struct {
	repo FeedbackRepository
}

// NewFeedbackUsecase creates a new FeedbackUsecase with the given repository.
func NewFeedbackUsecase(r FeedbackRepository) *FeedbackUsecase {
	return &FeedbackUsecase{repo: r}
}

// Create stores a new feedback row owned by the given user.
func (u *FeedbackUsecase) Create(ctx context.Context, userID uint, title, content string) (*entity.Feedback, error) {
	f := &entity.Feedback{
		UserID:  userID,
		Title:   title,
		Content: content,
	}
	if err := u.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ListForUser returns all feedback owned by the given user.
func (u *FeedbackUsecase) ListForUser(ctx context.Context, userID uint) ([]entity.Feedback, error) {
	return u.repo.ListByUserID(ctx, userID)
}

// Update overwrites the title and content of a feedback row.
// Last write wins; there is no optimistic concurrency control.
func (u *FeedbackUsecase) Update(ctx context.Context, id, callerID uint, title, content string) (*entity.Feedback, error) {
	f, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.UserID != callerID {
		return nil, ErrNotFeedbackOwner
	}

	f.Title = title
	f.Content = content
	if err := u.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Delete removes a feedback row after checking ownership.
func (u *FeedbackUsecase) Delete(ctx context.Context, id, callerID uint) error {
	f, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if f.UserID != callerID {
		return ErrNotFeedbackOwner
	}
	return u.repo.Delete(ctx, id)
}
