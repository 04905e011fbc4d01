package accountRepo

import (
	"context"
	"fmt"
	"time"

	"lawlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAccountRepo implements AccountRepository using MongoDB.
type MongoAccountRepo struct {
	coll *mongo.Collection
}

// NewMongoAccountRepo creates an AccountRepository backed by the "accounts"
// collection of the given database.
func NewMongoAccountRepo(db *mongo.Database) (AccountRepository, error) {
	repo := &MongoAccountRepo{coll: db.Collection("accounts")}
	if err := repo.ensureIndexes(); err != nil {
		return nil, err
	}
	return repo, nil
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates the uniqueness constraints login depends on.
func (r *MongoAccountRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create account indexes: %w", err)
	}
	return nil
}

// Create inserts a new account document. A duplicate key violation on the
// email index surfaces as ErrDuplicateEmail.
func (r *MongoAccountRepo) Create(acct *models.Account) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, acct); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByEmail retrieves an account by its email address.
func (r *MongoAccountRepo) GetByEmail(email string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with email %s: %w", email, err)
	}
	return &acct, nil
}

// GetByID retrieves an account by its unique ID.
func (r *MongoAccountRepo) GetByID(id string) (*models.Account, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var acct models.Account
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&acct); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch account with id %s: %w", id, err)
	}
	return &acct, nil
}

// Delete removes an account document by its ID.
func (r *MongoAccountRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete account with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("account with id %s not found", id)
	}
	return nil
}
