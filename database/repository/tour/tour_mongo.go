package tourRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourhub/database"
	"tourhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no tour matches the lookup. For owner-scoped
// methods this also covers tours owned by another business.
var ErrNotFound = errors.New("tour not found")

// MongoTourRepo implements TourRepository using MongoDB.
type MongoTourRepo struct {
	coll *mongo.Collection
}

// NewMongoTourRepo creates a new instance of TourRepository using MongoDB.
func NewMongoTourRepo() TourRepository {
	repo := &MongoTourRepo{coll: database.Collection("tours")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries.
func (r *MongoTourRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "businessId", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "city", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new tour document.
func (r *MongoTourRepo) Create(tour *models.Tour) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	tour.CreatedAt = now
	tour.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, tour)
	if err != nil {
		return fmt.Errorf("failed to create tour: %w", err)
	}
	return nil
}

// GetByID retrieves a tour by its unique ID.
func (r *MongoTourRepo) GetByID(id string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

// List retrieves active tours matching the filter, newest first.
func (r *MongoTourRepo) List(filter ListFilter) ([]models.Tour, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	query := bson.M{"isActive": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.City != "" {
		query["city"] = filter.City
	}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filter.Limit > 0 {
		opts.SetLimit(int64(filter.Limit))
		if filter.Page > 1 {
			opts.SetSkip(int64((filter.Page - 1) * filter.Limit))
		}
	}

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tours: %w", err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

// Categories returns the distinct categories across active tours.
func (r *MongoTourRepo) Categories() ([]string, error) {
	return r.distinct("category")
}

// Cities returns the distinct cities across active tours.
func (r *MongoTourRepo) Cities() ([]string, error) {
	return r.distinct("city")
}

func (r *MongoTourRepo) distinct(field string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	values, err := r.coll.Distinct(ctx, field, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch distinct %s values: %w", field, err)
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListByBusiness retrieves all tours owned by a business, newest first.
func (r *MongoTourRepo) ListByBusiness(businessID string) ([]models.Tour, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"businessId": businessID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve tours for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var tours []models.Tour
	if err := cursor.All(ctx, &tours); err != nil {
		return nil, fmt.Errorf("failed to decode tours: %w", err)
	}
	return tours, nil
}

// GetOwned retrieves a tour scoped to its owning business.
func (r *MongoTourRepo) GetOwned(id, businessID string) (*models.Tour, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var tour models.Tour
	filter := bson.M{"id": id, "businessId": businessID}
	if err := r.coll.FindOne(ctx, filter).Decode(&tour); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch tour with id %s: %w", id, err)
	}
	return &tour, nil
}

// UpdateOwned applies a partial $set update scoped to the owning business.
func (r *MongoTourRepo) UpdateOwned(id, businessID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	filter := bson.M{"id": id, "businessId": businessID}
	update := bson.M{"$set": updateDoc}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update tour with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOwned removes a tour scoped to its owning business.
func (r *MongoTourRepo) DeleteOwned(id, businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "businessId": businessID}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete tour with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetReviews replaces the embedded review list and its derived fields.
func (r *MongoTourRepo) SetReviews(id string, reviews []models.Review, avgRating float64, totalReviews int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"reviews":      reviews,
		"avgRating":    avgRating,
		"totalReviews": totalReviews,
		"updatedAt":    time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update reviews for tour %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByBusiness counts all tours owned by a business.
func (r *MongoTourRepo) CountByBusiness(businessID string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"businessId": businessID})
	if err != nil {
		return 0, fmt.Errorf("failed to count tours for business %s: %w", businessID, err)
	}
	return count, nil
}
