package tour

import (
	"errors"
	"time"

	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"
)

// AddReview appends a review to the tour's embedded list and recomputes
// the derived rating fields. Duplicate reviews from the same user are not
// rejected here; one-per-user stays a client-side policy.
func (s *DefaultTourService) AddReview(tourID string, reviewer *models.User, rating int, comment string) (*models.Tour, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	t, err := s.Repo.GetByID(tourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review := models.Review{
		UserID:    reviewer.ID,
		Username:  reviewer.Name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	reviews := append(t.Reviews, review)
	avg := AverageRating(reviews)

	if err := s.Repo.SetReviews(t.ID, reviews, avg, len(reviews)); err != nil {
		return nil, err
	}

	t.Reviews = reviews
	t.AvgRating = avg
	t.TotalReviews = len(reviews)
	return t, nil
}

// AverageRating computes the exact arithmetic mean of the review ratings.
// Returns 0 for an empty list.
func AverageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews))
}
