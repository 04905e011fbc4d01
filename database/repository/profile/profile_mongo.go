package profileRepo

import (
	"context"
	"fmt"
	"time"

	"lawlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepo implements ProfileRepository for one role collection.
// T is the profile variant; PT pins *T to the ProfileDoc interface so the
// repo can reach the embedded metadata and run validation.
type MongoProfileRepo[T any, PT models.ProfilePtr[T]] struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a profile repository over the given
// collection and ensures the one-profile-per-account constraint.
func NewMongoProfileRepo[T any, PT models.ProfilePtr[T]](db *mongo.Database, collection string) (*MongoProfileRepo[T, PT], error) {
	repo := &MongoProfileRepo[T, PT]{coll: db.Collection(collection)}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo[T, PT]) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "ownerAccountId", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create index on %s: %w", r.coll.Name(), err)
	}
	return nil
}

// Create validates the variant's fields and inserts the profile document.
func (r *MongoProfileRepo[T, PT]) Create(ownerAccountID string, fields T) (*T, error) {
	doc := fields
	meta := PT(&doc).Meta()
	meta.OwnerAccountID = ownerAccountID
	now := time.Now()
	meta.CreatedAt = now
	meta.UpdatedAt = now

	if err := PT(&doc).Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create profile in %s: %w", r.coll.Name(), err)
	}
	return &doc, nil
}

// FindByOwner retrieves the profile owned by the given account id.
func (r *MongoProfileRepo[T, PT]) FindByOwner(ownerAccountID string) (*T, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc T
	if err := r.coll.FindOne(ctx, bson.M{"ownerAccountId": ownerAccountID}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile for owner %s: %w", ownerAccountID, err)
	}
	return &doc, nil
}

// UpdateByOwner merges the supplied fields into the stored document,
// re-validates the result, and persists it.
func (r *MongoProfileRepo[T, PT]) UpdateByOwner(ownerAccountID string, patch bson.M) (*T, error) {
	existing, err := r.FindByOwner(ownerAccountID)
	if err != nil {
		return nil, err
	}

	merged, err := mergeDocument[T, PT](*existing, patch)
	if err != nil {
		return nil, err
	}
	PT(&merged).Meta().UpdatedAt = time.Now()
	if err := PT(&merged).Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()
	result, err := r.coll.ReplaceOne(ctx, bson.M{"ownerAccountId": ownerAccountID}, merged)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile for owner %s: %w", ownerAccountID, err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return &merged, nil
}

// immutableFields cannot be changed through UpdateByOwner.
var immutableFields = map[string]struct{}{
	"_id":            {},
	"ownerAccountId": {},
	"createdAt":      {},
	"updatedAt":      {},
}

// mergeDocument overlays the patch on the existing document through its
// BSON form, leaving unspecified and immutable fields unchanged.
func mergeDocument[T any, PT models.ProfilePtr[T]](existing T, patch bson.M) (T, error) {
	var zero T

	raw, err := bson.Marshal(existing)
	if err != nil {
		return zero, fmt.Errorf("failed to encode existing profile: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return zero, fmt.Errorf("failed to decode existing profile: %w", err)
	}

	for key, value := range patch {
		if _, immutable := immutableFields[key]; immutable {
			continue
		}
		doc[key] = value
	}

	mergedRaw, err := bson.Marshal(doc)
	if err != nil {
		return zero, fmt.Errorf("failed to encode merged profile: %w", err)
	}
	var merged T
	if err := bson.Unmarshal(mergedRaw, &merged); err != nil {
		return zero, &models.ValidationError{Field: "body", Reason: "wrong shape for one or more fields"}
	}
	return merged, nil
}
