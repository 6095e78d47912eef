package models

import "time"

// BusinessAddress is the nested postal address on a business profile.
type BusinessAddress struct {
	Street  string `bson:"street" json:"street"`
	City    string `bson:"city" json:"city"`
	State   string `bson:"state" json:"state"`
	Country string `bson:"country" json:"country"`
	ZipCode string `bson:"zipCode" json:"zipCode"`
}

// SocialLinks holds optional marketing links on a business profile.
type SocialLinks struct {
	Website   string `bson:"website" json:"website"`
	Facebook  string `bson:"facebook" json:"facebook"`
	Instagram string `bson:"instagram" json:"instagram"`
	Twitter   string `bson:"twitter" json:"twitter"`
}

// Business represents a tour operator account.
type Business struct {
	ID              string          `bson:"id" json:"id"`
	BusinessName    string          `bson:"businessName" json:"businessName"`
	ContactPerson   string          `bson:"contactPerson" json:"contactPerson"`
	Email           string          `bson:"email" json:"email"`
	PasswordHash    string          `bson:"passwordHash" json:"-"`
	Phone           string          `bson:"phone" json:"phone"`
	GSTNumber       string          `bson:"gstNumber" json:"gstNumber"`
	BusinessAddress BusinessAddress `bson:"businessAddress" json:"businessAddress"`
	Logo            string          `bson:"logo" json:"logo"`
	Banner          string          `bson:"banner" json:"banner"`
	Description     string          `bson:"description" json:"description"`
	SocialLinks     SocialLinks     `bson:"socialLinks" json:"socialLinks"`
	Status          string          `bson:"status" json:"status"`
	IsActive        bool            `bson:"isActive" json:"isActive"`
	Role            string          `bson:"role" json:"role"`
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}
