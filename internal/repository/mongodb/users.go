package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

const usersCollection = "users"

// UserRepository is the MongoDB-backed seller account store.
type UserRepository struct {
	client *Client
}

// NewUserRepository builds a user store on the shared client.
func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) coll() *mongo.Collection {
	return r.client.db.Collection(usersCollection)
}

// Create assigns the next user id and inserts the account.
func (r *UserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	id, err := r.client.nextSequence(ctx, usersCollection)
	if err != nil {
		return models.User{}, err
	}
	user.ID = id

	if _, err := r.coll().InsertOne(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

// FindByPhone looks an account up by phone number, nil when absent.
func (r *UserRepository) FindByPhone(ctx context.Context, phone string) (*models.User, error) {
	var user models.User
	err := r.coll().FindOne(ctx, bson.M{"phone": phone}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by phone: %w", err)
	}

	return &user, nil
}
