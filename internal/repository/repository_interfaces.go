// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-optimizer/internal/domain/model"
)

// ConfigsRepositoryInterface defines the interface for config preset operations.
type ConfigsRepositoryInterface interface {
	GetActive(ctx context.Context) (*ConfigPreset, error)
	Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*ConfigPreset, error)
	Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*ConfigPreset, error)
	List(ctx context.Context, limit int) ([]ConfigPreset, error)
}

// RunsRepositoryInterface defines the interface for run history operations.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, run *OptimizationRun) error
	List(ctx context.Context, opts RunQueryOptions) ([]*OptimizationRun, error)
	Count(ctx context.Context, opts RunQueryOptions) (int64, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
