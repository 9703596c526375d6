package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"lawmanBack/internal/models"
)

type ReviewStore interface {
	CreateReview(ctx context.Context, rev models.Review) (models.Review, error)
	GetReviewsByServiceID(ctx context.Context, serviceID string) ([]models.Review, error)
	GetReviewsByAuthorID(ctx context.Context, authorID string) ([]models.Review, error)
	SummarizeReviews(ctx context.Context) ([]models.ReviewSummary, error)
	UpdateReview(ctx context.Context, id primitive.ObjectID, authorID string, patch models.ReviewPatch) (int64, error)
	DeleteReview(ctx context.Context, id primitive.ObjectID, authorID string) (int64, error)
}

// ReviewService applies the ownership rules: actor is the verified user
// behind the request, and it may only write and read its own reviews.
type ReviewService struct {
	ReviewsRepo ReviewStore
}

func (s *ReviewService) CreateReview(ctx context.Context, actor string, rev models.Review) (models.Review, error) {
	if rev.AuthorID == "" {
		rev.AuthorID = actor
	}
	if rev.AuthorID != actor {
		return models.Review{}, models.ErrForbidden
	}
	return s.ReviewsRepo.CreateReview(ctx, rev)
}

func (s *ReviewService) GetReviewsByServiceID(ctx context.Context, serviceID string) ([]models.Review, error) {
	return s.ReviewsRepo.GetReviewsByServiceID(ctx, serviceID)
}

func (s *ReviewService) GetReviewsByAuthorID(ctx context.Context, actor, authorID string) ([]models.Review, error) {
	if authorID != actor {
		return nil, models.ErrForbidden
	}
	return s.ReviewsRepo.GetReviewsByAuthorID(ctx, authorID)
}

func (s *ReviewService) SummarizeReviews(ctx context.Context) ([]models.ReviewSummary, error) {
	return s.ReviewsRepo.SummarizeReviews(ctx)
}

// UpdateReview reports ErrNoRecord both for a missing review and for one
// written by someone else.
func (s *ReviewService) UpdateReview(ctx context.Context, actor, id string, patch models.ReviewPatch) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	matched, err := s.ReviewsRepo.UpdateReview(ctx, oid, actor, patch)
	if err != nil {
		return err
	}
	if matched == 0 {
		return models.ErrNoRecord
	}
	return nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, actor, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	deleted, err := s.ReviewsRepo.DeleteReview(ctx, oid, actor)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return models.ErrNoRecord
	}
	return nil
}
