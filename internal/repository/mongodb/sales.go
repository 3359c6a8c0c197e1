package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mvalderrama/ventas/internal/domain/models"
)

const salesCollection = "sales"

// SalesRepository is the MongoDB-backed sale store.
type SalesRepository struct {
	client *Client
}

// NewSalesRepository builds a sale store on the shared client.
func NewSalesRepository(client *Client) *SalesRepository {
	return &SalesRepository{client: client}
}

func (r *SalesRepository) coll() *mongo.Collection {
	return r.client.db.Collection(salesCollection)
}

// Append assigns the next sale id and inserts the document.
func (r *SalesRepository) Append(ctx context.Context, sale models.Sale) (models.Sale, error) {
	id, err := r.client.nextSequence(ctx, salesCollection)
	if err != nil {
		return models.Sale{}, err
	}
	sale.ID = id

	if _, err := r.coll().InsertOne(ctx, sale); err != nil {
		return models.Sale{}, fmt.Errorf("insert sale: %w", err)
	}

	return sale, nil
}

// All returns every sale ordered by id.
func (r *SalesRepository) All(ctx context.Context) ([]models.Sale, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sale_id", Value: 1}})

	cursor, err := r.coll().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer cursor.Close(ctx)

	sales := []models.Sale{}
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, fmt.Errorf("decode sales: %w", err)
	}

	return sales, nil
}

// SetPaid flips the paid flag. Matching an already-paid sale still counts as
// success, which keeps the operation idempotent.
func (r *SalesRepository) SetPaid(ctx context.Context, saleID int) (bool, error) {
	res, err := r.coll().UpdateOne(ctx,
		bson.M{"sale_id": saleID},
		bson.M{"$set": bson.M{"paid": true}})
	if err != nil {
		return false, fmt.Errorf("set sale %d paid: %w", saleID, err)
	}

	return res.MatchedCount == 1, nil
}
