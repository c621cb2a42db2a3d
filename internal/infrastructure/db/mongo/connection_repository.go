package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

const collectionConnections = "connections"

// ConnectionRepository implements ports.ConnectionRepository on MongoDB.
type ConnectionRepository struct {
	col *mongo.Collection
}

func NewConnectionRepository(db *mongo.Database) *ConnectionRepository {
	return &ConnectionRepository{col: db.Collection(collectionConnections)}
}

func (r *ConnectionRepository) List(ctx context.Context) ([]domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	connections := make([]domain.Connection, 0)
	if err := cur.All(ctx, &connections); err != nil {
		return nil, err
	}
	return connections, nil
}

func (r *ConnectionRepository) FindByID(ctx context.Context, id string) (*domain.Connection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Connection
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Upsert replaces the record keyed by c.ID, inserting when absent.
func (r *ConnectionRepository) Upsert(ctx context.Context, c *domain.Connection) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, options.Replace().SetUpsert(true))
	return err
}

// RemoveCategoryFromAll strips the category id from every connection's
// membership set.
func (r *ConnectionRepository) RemoveCategoryFromAll(ctx context.Context, categoryID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx,
		bson.M{"categories": categoryID},
		bson.M{"$pull": bson.M{"categories": categoryID}},
	)
	return err
}

// ReplaceAll swaps the whole collection for the given set.
func (r *ConnectionRepository) ReplaceAll(ctx context.Context, connections []domain.Connection) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(connections) == 0 {
		return nil
	}

	docs := make([]interface{}, len(connections))
	for i := range connections {
		docs[i] = connections[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// EnsureIndexes creates necessary indexes on the connections collection.
func (r *ConnectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "categories", Value: 1}}},
		{Keys: bson.D{{Key: "added_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
