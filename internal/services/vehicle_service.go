package services

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

// VehicleService covers registered vehicles plus the reference catalog
// behind them (types, brands, models).
type VehicleService interface {
	List(ctx context.Context) ([]*models.VehicleRow, error)
	ListForIntake(ctx context.Context, branchRIF string) ([]*models.VehicleRef, error)
	Add(ctx context.Context, vehicle *models.Vehicle) error
	Edit(ctx context.Context, vehicle *models.Vehicle) error
	Remove(ctx context.Context, code int) error

	ListTypes(ctx context.Context) ([]*models.VehicleType, error)
	AddType(ctx context.Context, name string) error
	ListBrands(ctx context.Context) ([]*models.BrandModelRow, error)
	AddBrand(ctx context.Context, name string) error
	GetModel(ctx context.Context, brandCode, modelCode int) (*models.ModelDetail, error)
	AddModel(ctx context.Context, model *models.Model) error
}

type vehicleService struct {
	vehicleRepo repositories.VehicleRepository
	catalogRepo repositories.VehicleCatalogRepository
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, catalogRepo repositories.VehicleCatalogRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, catalogRepo: catalogRepo}
}

func (s *vehicleService) List(ctx context.Context) ([]*models.VehicleRow, error) {
	vehicles, err := s.vehicleRepo.ListRows(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return vehicles, nil
}

func (s *vehicleService) ListForIntake(ctx context.Context, branchRIF string) ([]*models.VehicleRef, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	refs, err := s.vehicleRepo.ListRefsByBranch(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return refs, nil
}

func (s *vehicleService) Add(ctx context.Context, vehicle *models.Vehicle) error {
	if err := common.ValidateStruct(vehicle); err != nil {
		return err
	}
	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *vehicleService) Edit(ctx context.Context, vehicle *models.Vehicle) error {
	if err := common.ValidateStruct(vehicle); err != nil {
		return err
	}
	if err := s.vehicleRepo.Update(ctx, vehicle); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *vehicleService) Remove(ctx context.Context, code int) error {
	if code <= 0 {
		return common.NewValidationError("code", "must be positive")
	}
	if err := s.vehicleRepo.Delete(ctx, code); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *vehicleService) ListTypes(ctx context.Context) ([]*models.VehicleType, error) {
	types, err := s.catalogRepo.ListTypes(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return types, nil
}

func (s *vehicleService) AddType(ctx context.Context, name string) error {
	if name == "" || len(name) > 20 {
		return common.NewValidationError("name", "must be between 1 and 20 characters")
	}
	if err := s.catalogRepo.CreateType(ctx, name); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *vehicleService) ListBrands(ctx context.Context) ([]*models.BrandModelRow, error) {
	brands, err := s.catalogRepo.ListBrandModelRows(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return brands, nil
}

func (s *vehicleService) AddBrand(ctx context.Context, name string) error {
	if name == "" || len(name) > 20 {
		return common.NewValidationError("name", "must be between 1 and 20 characters")
	}
	if err := s.catalogRepo.CreateBrand(ctx, name); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}

func (s *vehicleService) GetModel(ctx context.Context, brandCode, modelCode int) (*models.ModelDetail, error) {
	if brandCode <= 0 || modelCode <= 0 {
		return nil, common.NewValidationError("code", "must be positive")
	}
	detail, err := s.catalogRepo.GetModelDetail(ctx, brandCode, modelCode)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, common.ClassifyStorageError(err)
	}
	return detail, nil
}

func (s *vehicleService) AddModel(ctx context.Context, model *models.Model) error {
	if err := common.ValidateStruct(model); err != nil {
		return err
	}
	if err := s.catalogRepo.CreateModel(ctx, model); err != nil {
		return common.ClassifyStorageError(err)
	}
	return nil
}
