package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/talha-mahmood/Linkedin-list/internal/core/domain"
)

const collectionSettings = "settings"

// settingsDocID keys the single settings document.
const settingsDocID = "settings"

type settingsDoc struct {
	ID       string          `bson:"_id"`
	Settings domain.Settings `bson:"settings"`
}

// SettingsRepository implements ports.SettingsRepository on MongoDB as a
// singleton document.
type SettingsRepository struct {
	col *mongo.Collection
}

func NewSettingsRepository(db *mongo.Database) *SettingsRepository {
	return &SettingsRepository{col: db.Collection(collectionSettings)}
}

// Get returns the stored settings, or the defaults when nothing has been
// written yet.
func (r *SettingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc settingsDoc
	err := r.col.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}
	return doc.Settings, nil
}

func (r *SettingsRepository) Put(ctx context.Context, s domain.Settings) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.ReplaceOne(ctx,
		bson.M{"_id": settingsDocID},
		settingsDoc{ID: settingsDocID, Settings: s},
		options.Replace().SetUpsert(true),
	)
	return err
}

// Exists reports whether the settings document has ever been written. Used as
// the install marker by the bootstrap seeding.
func (r *SettingsRepository) Exists(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": settingsDocID})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
