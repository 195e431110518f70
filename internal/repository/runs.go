// Package repository provides data access for optimization run history.
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

// OptimizationRun is one recorded engine invocation: a summary of the
// request plus the full result, kept for audit and capacity planning.
type OptimizationRun struct {
	ID           primitive.ObjectID       `bson:"_id,omitempty" json:"id"`
	RequestID    string                   `bson:"request_id,omitempty" json:"request_id,omitempty"`
	ProductCount int                      `bson:"product_count" json:"product_count"`
	Config       model.OptimizationConfig `bson:"config" json:"config"`
	Result       model.OptimizationResult `bson:"result" json:"result"`
	Status       string                   `bson:"status" json:"status"`
	DurationMs   int64                    `bson:"duration_ms" json:"duration_ms"`
	SolverNodes  int                      `bson:"solver_nodes" json:"solver_nodes"`
	CreatedAt    time.Time                `bson:"created_at" json:"created_at"`
}

// RunsRepository provides methods for run history operations.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a new run history repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{
		collection: db.Runs,
	}
}

// Create inserts a run record.
func (r *RunsRepository) Create(ctx context.Context, run *OptimizationRun) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// RunQueryOptions filters run history queries.
type RunQueryOptions struct {
	RequestID string
	Status    string
	StartTime *time.Time
	EndTime   *time.Time
	Limit     int
	Skip      int
}

func (o RunQueryOptions) filter() bson.M {
	filter := bson.M{}
	if o.RequestID != "" {
		filter["request_id"] = o.RequestID
	}
	if o.Status != "" {
		filter["status"] = o.Status
	}
	if o.StartTime != nil || o.EndTime != nil {
		timeFilter := bson.M{}
		if o.StartTime != nil {
			timeFilter["$gte"] = *o.StartTime
		}
		if o.EndTime != nil {
			timeFilter["$lte"] = *o.EndTime
		}
		filter["created_at"] = timeFilter
	}
	return filter
}

// List returns run records matching the filter, newest first.
func (r *RunsRepository) List(ctx context.Context, opts RunQueryOptions) ([]*OptimizationRun, error) {
	findOptions := options.Find().SetSort(bson.M{"created_at": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, opts.filter(), findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var runs []*OptimizationRun
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}

	return runs, nil
}

// Count returns the number of run records matching the filter.
func (r *RunsRepository) Count(ctx context.Context, opts RunQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, opts.filter())
}
