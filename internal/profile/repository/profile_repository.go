package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Team-DAS/profile-cell/internal/profile/models"
)

// ProfileRepository persists the Profile aggregate as one document keyed by
// the user id. Reads and writes always move the whole document.
type ProfileRepository struct {
	collection *mongo.Collection
	mu         *sync.Mutex
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{
		collection: db.Collection("profiles"),
		mu:         &sync.Mutex{},
	}
}

// FindByUserID returns the full aggregate, or (nil, nil) when no document
// exists for the user.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Insert stores a brand-new profile document.
func (r *ProfileRepository) Insert(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.collection.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to insert profile for user %s: %w", profile.UserID, err)
	}
	return nil
}

// Replace overwrites the stored document with the in-memory aggregate. The
// last replace wins; there is no version token (see DESIGN.md).
func (r *ProfileRepository) Replace(ctx context.Context, profile *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": profile.UserID}, profile)
	if err != nil {
		return fmt.Errorf("failed to replace profile for user %s: %w", profile.UserID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile for user %s vanished during update", profile.UserID)
	}
	return nil
}

func (r *ProfileRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "metadata.createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "metadata.lastUpdatedAt", Value: -1}},
		},
		{
			Keys:    bson.D{{Key: "personalInfo.email", Value: 1}},
			Options: options.Index().SetSparse(true),
		},
	}

	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
