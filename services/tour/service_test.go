package tour

import (
	"errors"
	"testing"

	tourRepo "tourhub/database/repository/tour"
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeTourRepo is an in-memory TourRepository for service tests.
type fakeTourRepo struct {
	tours       map[string]*models.Tour
	lastUpdate  bson.M
	distinctHit int
}

func newFakeTourRepo(tours ...*models.Tour) *fakeTourRepo {
	r := &fakeTourRepo{tours: make(map[string]*models.Tour)}
	for _, t := range tours {
		r.tours[t.ID] = t
	}
	return r
}

func (r *fakeTourRepo) Create(t *models.Tour) error {
	r.tours[t.ID] = t
	return nil
}

func (r *fakeTourRepo) GetByID(id string) (*models.Tour, error) {
	t, ok := r.tours[id]
	if !ok {
		return nil, tourRepo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTourRepo) List(filter tourRepo.ListFilter) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if !t.IsActive {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.City != "" && t.City != filter.City {
			continue
		}
		if filter.Featured != nil && t.Featured != *filter.Featured {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *fakeTourRepo) Categories() ([]string, error) {
	r.distinctHit++
	seen := map[string]bool{}
	var out []string
	for _, t := range r.tours {
		if t.IsActive && !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) Cities() ([]string, error) {
	r.distinctHit++
	seen := map[string]bool{}
	var out []string
	for _, t := range r.tours {
		if t.IsActive && !seen[t.City] {
			seen[t.City] = true
			out = append(out, t.City)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) ListByBusiness(businessID string) ([]models.Tour, error) {
	var out []models.Tour
	for _, t := range r.tours {
		if t.BusinessID == businessID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *fakeTourRepo) GetOwned(id, businessID string) (*models.Tour, error) {
	t, ok := r.tours[id]
	if !ok || t.BusinessID != businessID {
		return nil, tourRepo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTourRepo) UpdateOwned(id, businessID string, updateDoc bson.M) error {
	t, ok := r.tours[id]
	if !ok || t.BusinessID != businessID {
		return tourRepo.ErrNotFound
	}
	r.lastUpdate = updateDoc
	if v, ok := updateDoc["title"].(string); ok {
		t.Title = v
	}
	if v, ok := updateDoc["price"].(float64); ok {
		t.Price = v
	}
	if v, ok := updateDoc["isActive"].(bool); ok {
		t.IsActive = v
	}
	return nil
}

func (r *fakeTourRepo) DeleteOwned(id, businessID string) error {
	t, ok := r.tours[id]
	if !ok || t.BusinessID != businessID {
		return tourRepo.ErrNotFound
	}
	delete(r.tours, id)
	return nil
}

func (r *fakeTourRepo) SetReviews(id string, reviews []models.Review, avgRating float64, totalReviews int) error {
	t, ok := r.tours[id]
	if !ok {
		return tourRepo.ErrNotFound
	}
	t.Reviews = reviews
	t.AvgRating = avgRating
	t.TotalReviews = totalReviews
	return nil
}

func (r *fakeTourRepo) CountByBusiness(businessID string) (int64, error) {
	var n int64
	for _, t := range r.tours {
		if t.BusinessID == businessID {
			n++
		}
	}
	return n, nil
}

func testService(repo *fakeTourRepo) *DefaultTourService {
	return &DefaultTourService{Repo: repo}
}

func TestAverageRating(t *testing.T) {
	cases := []struct {
		name    string
		ratings []int
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []int{3}, 3},
		{"exact half", []int{4, 5}, 4.5},
		{"repeating fraction", []int{5, 4, 4}, 13.0 / 3.0},
		{"all fives", []int{5, 5, 5, 5}, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reviews := make([]models.Review, len(tc.ratings))
			for i, r := range tc.ratings {
				reviews[i] = models.Review{Rating: r}
			}
			if got := AverageRating(reviews); got != tc.want {
				t.Errorf("AverageRating(%v) = %v, want %v", tc.ratings, got, tc.want)
			}
		})
	}
}

func TestCreateTour(t *testing.T) {
	repo := newFakeTourRepo()
	svc := testService(repo)

	created, err := svc.Create(&models.Tour{
		BusinessID:   "biz-1",
		Title:        "Harbour Kayaking",
		Price:        80,
		MaxGroupSize: 6,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.ID == "" {
		t.Error("expected a generated tour id")
	}
	if !created.IsActive || !created.Available {
		t.Errorf("isActive=%v available=%v, want both true", created.IsActive, created.Available)
	}
	if created.Reviews == nil || len(created.Reviews) != 0 {
		t.Errorf("reviews = %v, want empty slice", created.Reviews)
	}
	if created.Includes == nil || created.Excludes == nil || created.Tags == nil {
		t.Error("expected list fields initialized to empty slices")
	}
	if _, ok := repo.tours[created.ID]; !ok {
		t.Error("tour was not persisted")
	}
}

func TestCreateTourValidation(t *testing.T) {
	cases := []struct {
		name string
		tour models.Tour
	}{
		{"missing title", models.Tour{Price: 10, MaxGroupSize: 2}},
		{"zero price", models.Tour{Title: "x", Price: 0, MaxGroupSize: 2}},
		{"negative price", models.Tour{Title: "x", Price: -5, MaxGroupSize: 2}},
		{"zero group size", models.Tour{Title: "x", Price: 10, MaxGroupSize: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := testService(newFakeTourRepo())
			if _, err := svc.Create(&tc.tour); !errors.Is(err, ErrValidation) {
				t.Errorf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestAddReview(t *testing.T) {
	repo := newFakeTourRepo(&models.Tour{
		ID:         "tour-1",
		BusinessID: "biz-1",
		Reviews: []models.Review{
			{UserID: "user-9", Rating: 4, Comment: "great guide"},
		},
		AvgRating:    4,
		TotalReviews: 1,
	})
	svc := testService(repo)

	reviewer := &models.User{ID: "user-1", Name: "Asha Patel"}
	updated, err := svc.AddReview("tour-1", reviewer, 5, "unforgettable")
	if err != nil {
		t.Fatalf("AddReview returned error: %v", err)
	}

	if updated.TotalReviews != 2 {
		t.Errorf("totalReviews = %d, want 2", updated.TotalReviews)
	}
	if updated.AvgRating != 4.5 {
		t.Errorf("avgRating = %v, want 4.5", updated.AvgRating)
	}
	last := updated.Reviews[len(updated.Reviews)-1]
	if last.UserID != "user-1" || last.Username != "Asha Patel" || last.Rating != 5 {
		t.Errorf("appended review = %+v, want reviewer's id, name and rating", last)
	}
	if last.CreatedAt.IsZero() {
		t.Error("expected review timestamp to be set")
	}
}

func TestAddReviewSameUserTwice(t *testing.T) {
	repo := newFakeTourRepo(&models.Tour{ID: "tour-1", Reviews: []models.Review{}})
	svc := testService(repo)

	reviewer := &models.User{ID: "user-1", Name: "Asha Patel"}
	if _, err := svc.AddReview("tour-1", reviewer, 4, "first"); err != nil {
		t.Fatalf("first AddReview returned error: %v", err)
	}
	updated, err := svc.AddReview("tour-1", reviewer, 2, "second thoughts")
	if err != nil {
		t.Fatalf("second AddReview returned error: %v", err)
	}
	if updated.TotalReviews != 2 {
		t.Errorf("totalReviews = %d, want 2 (duplicates are accepted)", updated.TotalReviews)
	}
	if updated.AvgRating != 3 {
		t.Errorf("avgRating = %v, want 3", updated.AvgRating)
	}
}

func TestAddReviewInvalidRating(t *testing.T) {
	svc := testService(newFakeTourRepo(&models.Tour{ID: "tour-1"}))
	reviewer := &models.User{ID: "user-1"}

	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := svc.AddReview("tour-1", reviewer, rating, ""); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestAddReviewTourNotFound(t *testing.T) {
	svc := testService(newFakeTourRepo())
	if _, err := svc.AddReview("missing", &models.User{ID: "user-1"}, 4, ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateOwnedStripsImmutableFields(t *testing.T) {
	repo := newFakeTourRepo(&models.Tour{ID: "tour-1", BusinessID: "biz-1", Title: "Old", Price: 40, AvgRating: 4.2})
	svc := testService(repo)

	_, err := svc.UpdateOwned("tour-1", "biz-1", map[string]interface{}{
		"title":      "New Title",
		"businessId": "biz-2",
		"avgRating":  5.0,
		"reviews":    []interface{}{},
		"id":         "tour-99",
	})
	if err != nil {
		t.Fatalf("UpdateOwned returned error: %v", err)
	}

	for _, field := range []string{"businessId", "avgRating", "reviews", "id"} {
		if _, ok := repo.lastUpdate[field]; ok {
			t.Errorf("immutable field %q reached the store", field)
		}
	}
	if repo.tours["tour-1"].Title != "New Title" {
		t.Errorf("title = %q, want %q", repo.tours["tour-1"].Title, "New Title")
	}
	if repo.tours["tour-1"].BusinessID != "biz-1" {
		t.Errorf("businessId = %q, ownership must not change", repo.tours["tour-1"].BusinessID)
	}
}

func TestUpdateOwnedInvalidPrice(t *testing.T) {
	svc := testService(newFakeTourRepo(&models.Tour{ID: "tour-1", BusinessID: "biz-1", Price: 40}))

	for _, price := range []interface{}{0.0, -10.0, "free"} {
		if _, err := svc.UpdateOwned("tour-1", "biz-1", map[string]interface{}{"price": price}); !errors.Is(err, ErrValidation) {
			t.Errorf("price %v: err = %v, want ErrValidation", price, err)
		}
	}
}

func TestUpdateOwnedNotOwner(t *testing.T) {
	svc := testService(newFakeTourRepo(&models.Tour{ID: "tour-1", BusinessID: "biz-1"}))

	_, err := svc.UpdateOwned("tour-1", "biz-2", map[string]interface{}{"title": "Hijacked"})
	if !errors.Is(err, ErrNotFoundOwned) {
		t.Errorf("err = %v, want ErrNotFoundOwned", err)
	}
}

func TestDeleteOwned(t *testing.T) {
	repo := newFakeTourRepo(&models.Tour{ID: "tour-1", BusinessID: "biz-1"})
	svc := testService(repo)

	if err := svc.DeleteOwned("tour-1", "biz-2"); !errors.Is(err, ErrNotFoundOwned) {
		t.Errorf("non-owner delete: err = %v, want ErrNotFoundOwned", err)
	}
	if err := svc.DeleteOwned("tour-1", "biz-1"); err != nil {
		t.Fatalf("DeleteOwned returned error: %v", err)
	}
	if _, ok := repo.tours["tour-1"]; ok {
		t.Error("tour still present after delete")
	}
}

func TestToggleVisibility(t *testing.T) {
	repo := newFakeTourRepo(&models.Tour{ID: "tour-1", BusinessID: "biz-1", IsActive: true})
	svc := testService(repo)

	toggled, err := svc.ToggleVisibility("tour-1", "biz-1")
	if err != nil {
		t.Fatalf("ToggleVisibility returned error: %v", err)
	}
	if toggled.IsActive {
		t.Error("isActive = true after toggle, want false")
	}

	toggled, err = svc.ToggleVisibility("tour-1", "biz-1")
	if err != nil {
		t.Fatalf("second ToggleVisibility returned error: %v", err)
	}
	if !toggled.IsActive {
		t.Error("isActive = false after second toggle, want true")
	}
}

func TestCategoriesWithoutCache(t *testing.T) {
	repo := newFakeTourRepo(
		&models.Tour{ID: "t1", Category: "adventure", City: "Pokhara", IsActive: true},
		&models.Tour{ID: "t2", Category: "adventure", City: "Kathmandu", IsActive: true},
		&models.Tour{ID: "t3", Category: "culinary", City: "Kathmandu", IsActive: true},
		&models.Tour{ID: "t4", Category: "hidden", City: "Patan", IsActive: false},
	)
	svc := testService(repo)

	categories, err := svc.Categories()
	if err != nil {
		t.Fatalf("Categories returned error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("categories = %v, want 2 distinct active values", categories)
	}

	cities, err := svc.Cities()
	if err != nil {
		t.Fatalf("Cities returned error: %v", err)
	}
	if len(cities) != 2 {
		t.Errorf("cities = %v, want 2 distinct active values", cities)
	}

	// With no cache wired every call goes to the store.
	if repo.distinctHit != 2 {
		t.Errorf("distinct queries = %d, want 2", repo.distinctHit)
	}
}
