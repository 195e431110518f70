package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guttosm/container-optimizer/internal/domain/model"
	"github.com/guttosm/container-optimizer/internal/repository"
)

// ErrRepositoryNotConfigured is returned when the repository is not configured.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// ConfigsService provides optimization config preset operations.
type ConfigsService interface {
	GetActive(ctx context.Context) (*repository.ConfigPreset, error)
	Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*repository.ConfigPreset, error)
	Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*repository.ConfigPreset, error)
	List(ctx context.Context, limit int) ([]repository.ConfigPreset, error)
}

// ConfigsServiceImpl implements ConfigsService.
type ConfigsServiceImpl struct {
	configsRepo repository.ConfigsRepositoryInterface
}

// NewConfigsService creates a new config presets service. A nil repository
// is allowed; operations then return ErrRepositoryNotConfigured so the
// service can run without persistence.
func NewConfigsService(configsRepo repository.ConfigsRepositoryInterface) ConfigsService {
	if configsRepo == nil {
		return &ConfigsServiceImpl{}
	}
	return &ConfigsServiceImpl{
		configsRepo: configsRepo,
	}
}

func (s *ConfigsServiceImpl) GetActive(ctx context.Context) (*repository.ConfigPreset, error) {
	if s.configsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.configsRepo.GetActive(ctx)
}

func (s *ConfigsServiceImpl) Create(ctx context.Context, name string, cfg model.OptimizationConfig, createdBy string) (*repository.ConfigPreset, error) {
	if s.configsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.configsRepo.Create(ctx, name, cfg, createdBy)
}

func (s *ConfigsServiceImpl) Update(ctx context.Context, id primitive.ObjectID, cfg model.OptimizationConfig, updatedBy string) (*repository.ConfigPreset, error) {
	if s.configsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.configsRepo.Update(ctx, id, cfg, updatedBy)
}

func (s *ConfigsServiceImpl) List(ctx context.Context, limit int) ([]repository.ConfigPreset, error) {
	if s.configsRepo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return s.configsRepo.List(ctx, limit)
}
