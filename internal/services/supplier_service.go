package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type SupplierService interface {
	List(ctx context.Context) ([]*models.Supplier, error)
	Add(ctx context.Context, supplier *models.Supplier) error
	Edit(ctx context.Context, supplier *models.Supplier) error
	Remove(ctx context.Context, rif string) error
}

type supplierService struct {
	supplierRepo repositories.SupplierRepository
}

func NewSupplierService(supplierRepo repositories.SupplierRepository) SupplierService {
	return &supplierService{supplierRepo: supplierRepo}
}

func (s *supplierService) List(ctx context.Context) ([]*models.Supplier, error) {
	suppliers, err := s.supplierRepo.List(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return suppliers, nil
}

func (s *supplierService) Add(ctx context.Context, supplier *models.Supplier) error {
	if err := common.ValidateStruct(supplier); err != nil {
		return err
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *supplierService) Edit(ctx context.Context, supplier *models.Supplier) error {
	if err := common.ValidateStruct(supplier); err != nil {
		return err
	}
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *supplierService) Remove(ctx context.Context, rif string) error {
	if rif == "" || len(rif) > 12 {
		return common.NewValidationError("rif", "must be between 1 and 12 characters")
	}
	if err := s.supplierRepo.Delete(ctx, rif); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
