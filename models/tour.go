package models

import "time"

// Tour difficulty levels.
const (
	DifficultyEasy        = "Easy"
	DifficultyModerate    = "Moderate"
	DifficultyChallenging = "Challenging"
)

// Review is a traveller review embedded in a tour document.
type Review struct {
	UserID    string    `bson:"userId" json:"userId"`
	Username  string    `bson:"username" json:"username"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Tour represents a bookable listing owned by exactly one business.
// AvgRating and TotalReviews are derived from the embedded reviews and
// recomputed on every review append.
type Tour struct {
	ID           string    `bson:"id" json:"id"`
	BusinessID   string    `bson:"businessId" json:"businessId"`
	Title        string    `bson:"title" json:"title"`
	City         string    `bson:"city" json:"city"`
	Country      string    `bson:"country" json:"country"`
	Address      string    `bson:"address" json:"address"`
	Distance     float64   `bson:"distance" json:"distance"`
	Photo        string    `bson:"photo" json:"photo"`
	Desc         string    `bson:"desc" json:"desc"`
	Price        float64   `bson:"price" json:"price"`
	MaxGroupSize int       `bson:"maxGroupSize" json:"maxGroupSize"`
	Duration     string    `bson:"duration" json:"duration"`
	Difficulty   string    `bson:"difficulty" json:"difficulty"`
	Category     string    `bson:"category" json:"category"`
	Includes     []string  `bson:"includes" json:"includes"`
	Excludes     []string  `bson:"excludes" json:"excludes"`
	Tags         []string  `bson:"tags" json:"tags"`
	Featured     bool      `bson:"featured" json:"featured"`
	Available    bool      `bson:"available" json:"available"`
	IsActive     bool      `bson:"isActive" json:"isActive"`
	Reviews      []Review  `bson:"reviews" json:"reviews"`
	AvgRating    float64   `bson:"avgRating" json:"avgRating"`
	TotalReviews int       `bson:"totalReviews" json:"totalReviews"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
