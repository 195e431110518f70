// Package repository provides data access for optimization config presets.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// ConfigPreset is a stored optimization configuration document. At most one
// preset is active at a time; requests without an inline config fall back to
// the active preset.
type ConfigPreset struct {
	ID        primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	Name      string                   `bson:"name" json:"name"`
	Config    model.OptimizationConfig `bson:"config" json:"config"`
	Active    bool                     `bson:"active" json:"active"`
	Version   int                      `bson:"version" json:"version"`
	CreatedAt time.Time                `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time                `bson:"updated_at" json:"updated_at"`
	CreatedBy string                   `bson:"created_by,omitempty" json:"created_by,omitempty"`
}

// ConfigsRepository provides methods for config preset operations.
type ConfigsRepository struct {
	collection *mongo.Collection
}

// NewConfigsRepository creates a new config presets repository.
func NewConfigsRepository(db *MongoDB) *ConfigsRepository {
	return &ConfigsRepository{
		collection: db.Configs,
	}
}

// GetActive returns the active config preset, or nil when none is stored.
func (r *ConfigsRepository) GetActive(ctx context.Context) (*ConfigPreset, error) {
	var preset ConfigPreset
	err := r.collection.FindOne(ctx, bson.M{"active": true}).Decode(&preset)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

// Create stores a new preset and makes it the active one, deactivating any
// previously active preset.
func (r *ConfigsRepository) Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*ConfigPreset, error) {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"active": true},
		bson.M{"$set": bson.M{"active": false, "updated_at": time.Now()}},
	)
	if err != nil {
		return nil, err
	}

	preset := ConfigPreset{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Config:    cfg,
		Active:    true,
		Version:   1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		CreatedBy: createdBy,
	}

	if _, err = r.collection.InsertOne(ctx, preset); err != nil {
		return nil, err
	}

	return &preset, nil
}

// Update replaces the configuration of an existing preset and bumps its
// version.
func (r *ConfigsRepository) Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*ConfigPreset, error) {
	var current ConfigPreset
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&current)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"$set": bson.M{
			"config":     cfg,
			"updated_at": time.Now(),
			"version":    current.Version + 1,
		},
	}
	if updatedBy != "" {
		if setDoc, ok := update["$set"].(bson.M); ok {
			setDoc["updated_by"] = updatedBy
		}
	}

	var preset ConfigPreset
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&preset)
	if err != nil {
		return nil, err
	}

	return &preset, nil
}

// List returns presets ordered newest-first.
func (r *ConfigsRepository) List(ctx context.Context, limit int) ([]ConfigPreset, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var presets []ConfigPreset
	if err := cursor.All(ctx, &presets); err != nil {
		return nil, err
	}

	return presets, nil
}
