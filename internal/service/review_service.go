package service

import (
	"unicode/utf8"

	"barberia/internal/db"
	"barberia/internal/entities"
	apperrors "barberia/internal/errors"
	"barberia/internal/repository"
)

const maxCommentLength = 500

type ReviewService struct {
	Repo *repository.ReviewRepository
}

func NewReviewService(repo *repository.ReviewRepository) *ReviewService {
	return &ReviewService{Repo: repo}
}

// Submit appends a review. Only the comment length is validated; the rating
// is stored as coerced from the wire, bounds and all.
func (s *ReviewService) Submit(req entities.ReviewRequest) (*db.Review, error) {
	if utf8.RuneCountInString(req.Comment) > maxCommentLength {
		return nil, apperrors.ErrValidation("Comment must be 500 characters or fewer.")
	}
	review := db.Review{
		Name:    req.Name,
		Rating:  int(req.Rating),
		Comment: req.Comment,
	}
	s.Repo.Add(review)
	return &review, nil
}

// List returns reviews in insertion order; the display layer reverses, caps
// and averages on its own.
func (s *ReviewService) List() []db.Review {
	return s.Repo.List()
}
