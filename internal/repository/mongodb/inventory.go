package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

const lotsCollection = "lots"

// InventoryRepository is the MongoDB-backed lot store.
type InventoryRepository struct {
	client *Client
}

// NewInventoryRepository builds a lot store on the shared client.
func NewInventoryRepository(client *Client) *InventoryRepository {
	return &InventoryRepository{client: client}
}

func (r *InventoryRepository) coll() *mongo.Collection {
	return r.client.db.Collection(lotsCollection)
}

// CurrentLot returns the lot with the highest id, or nil when none exists.
func (r *InventoryRepository) CurrentLot(ctx context.Context) (*models.Lot, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "lot_id", Value: -1}})

	var lot models.Lot
	err := r.coll().FindOne(ctx, bson.M{}, opts).Decode(&lot)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find current lot: %w", err)
	}

	return &lot, nil
}

// AddLot assigns the next lot id and inserts the document.
func (r *InventoryRepository) AddLot(ctx context.Context, lot models.Lot) (models.Lot, error) {
	id, err := r.client.nextSequence(ctx, lotsCollection)
	if err != nil {
		return models.Lot{}, err
	}
	lot.ID = id

	if _, err := r.coll().InsertOne(ctx, lot); err != nil {
		return models.Lot{}, fmt.Errorf("insert lot: %w", err)
	}

	return lot, nil
}

// DecrementStock runs a conditional update so the check and the subtraction
// are a single server-side operation. A missing lot and insufficient stock
// both come back as a zero modified count.
func (r *InventoryRepository) DecrementStock(ctx context.Context, lotID, qty int) (bool, error) {
	filter := bson.M{
		"lot_id":          lotID,
		"units_available": bson.M{"$gte": qty},
	}
	update := bson.M{"$inc": bson.M{"units_available": -qty}}

	res, err := r.coll().UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("decrement stock on lot %d: %w", lotID, err)
	}

	return res.ModifiedCount == 1, nil
}

// RestoreStock re-adds units consumed by a sale that failed to persist.
func (r *InventoryRepository) RestoreStock(ctx context.Context, lotID, qty int) error {
	update := bson.M{"$inc": bson.M{"units_available": qty}}

	if _, err := r.coll().UpdateOne(ctx, bson.M{"lot_id": lotID}, update); err != nil {
		return fmt.Errorf("restore stock on lot %d: %w", lotID, err)
	}
	return nil
}

// ListLots returns every lot ordered by id.
func (r *InventoryRepository) ListLots(ctx context.Context) ([]models.Lot, error) {
	opts := options.Find().SetSort(bson.D{{Key: "lot_id", Value: 1}})

	cursor, err := r.coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	defer cursor.Close(ctx)

	lots := []models.Lot{}
	if err := cursor.All(ctx, &lots); err != nil {
		return nil, fmt.Errorf("decode lots: %w", err)
	}

	return lots, nil
}
