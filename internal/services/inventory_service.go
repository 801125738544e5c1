package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

// InventoryService manages workshop supplies, their lines and physical
// inventory counts.
type InventoryService interface {
	ListSupplies(ctx context.Context) ([]*models.Supply, error)
	AddSupply(ctx context.Context, supply *models.Supply) error
	EditSupply(ctx context.Context, supply *models.Supply) error
	RemoveSupply(ctx context.Context, code int) error
	ListLines(ctx context.Context) ([]*models.SupplyLine, error)
	AddLine(ctx context.Context, name string) error
	EditLine(ctx context.Context, line *models.SupplyLine) error
	RemoveLine(ctx context.Context, code int) error
	ListCounts(ctx context.Context) ([]*models.PhysicalCount, error)
	AddCount(ctx context.Context, count *models.PhysicalCount) error
}

type inventoryService struct {
	supplyRepo repositories.SupplyRepository
}

func NewInventoryService(supplyRepo repositories.SupplyRepository) InventoryService {
	return &inventoryService{supplyRepo: supplyRepo}
}

func (s *inventoryService) ListSupplies(ctx context.Context) ([]*models.Supply, error) {
	supplies, err := s.supplyRepo.ListSupplies(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return supplies, nil
}

func (s *inventoryService) validateSupply(supply *models.Supply) error {
	if err := common.ValidateStruct(supply); err != nil {
		return err
	}
	if !supply.Price.IsPositive() {
		return common.NewValidationError("price", "must be positive")
	}
	if supply.MaxStock < supply.MinStock {
		return common.NewValidationError("max_stock", "must be at least min_stock")
	}
	return nil
}

func (s *inventoryService) AddSupply(ctx context.Context, supply *models.Supply) error {
	if err := s.validateSupply(supply); err != nil {
		return err
	}
	if err := s.supplyRepo.CreateSupply(ctx, supply); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) EditSupply(ctx context.Context, supply *models.Supply) error {
	if err := s.validateSupply(supply); err != nil {
		return err
	}
	if err := s.supplyRepo.UpdateSupply(ctx, supply); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) RemoveSupply(ctx context.Context, code int) error {
	if code <= 0 {
		return common.NewValidationError("code", "must be positive")
	}
	if err := s.supplyRepo.DeleteSupply(ctx, code); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) ListLines(ctx context.Context) ([]*models.SupplyLine, error) {
	lines, err := s.supplyRepo.ListLines(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return lines, nil
}

func (s *inventoryService) AddLine(ctx context.Context, name string) error {
	if name == "" || len(name) > 30 {
		return common.NewValidationError("name", "must be between 1 and 30 characters")
	}
	if err := s.supplyRepo.CreateLine(ctx, name); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) EditLine(ctx context.Context, line *models.SupplyLine) error {
	if err := common.ValidateStruct(line); err != nil {
		return err
	}
	if err := s.supplyRepo.UpdateLine(ctx, line); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) RemoveLine(ctx context.Context, code int) error {
	if code <= 0 {
		return common.NewValidationError("code", "must be positive")
	}
	if err := s.supplyRepo.DeleteLine(ctx, code); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *inventoryService) ListCounts(ctx context.Context) ([]*models.PhysicalCount, error) {
	counts, err := s.supplyRepo.ListCounts(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return counts, nil
}

func (s *inventoryService) AddCount(ctx context.Context, count *models.PhysicalCount) error {
	if err := common.ValidateStruct(count); err != nil {
		return err
	}
	if err := s.supplyRepo.CreateCount(ctx, count); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
