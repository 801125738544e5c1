package services

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"
)

type StatsService interface {
	BrandsByService(ctx context.Context) ([]*models.BrandServiceCount, error)
	StaffMonthlyServices(ctx context.Context, branchRIF string) ([]*models.StaffMonthlyServices, error)
	FrequentCustomers(ctx context.Context, branchRIF string) ([]*models.FrequentCustomer, error)
	ItemsBySales(ctx context.Context, branchRIF string) ([]*models.ItemSales, error)
	MostRequestedServices(ctx context.Context) ([]*models.ServiceDemand, error)
	VehicleHistory(ctx context.Context, vehicleCode int) ([]*models.VehicleHistoryEntry, error)
	BranchComparison(ctx context.Context, invoiceType string) ([]*models.BranchInvoiceTotals, error)
	CancellingCustomers(ctx context.Context) ([]*models.CancellingCustomer, error)
	SuppliersByVolume(ctx context.Context) ([]*models.SupplierVolume, error)
	StockAdjustments(ctx context.Context) ([]*models.StockAdjustment, error)
}

type statsService struct {
	statsRepo repositories.StatsRepository
}

func NewStatsService(statsRepo repositories.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) BrandsByService(ctx context.Context) ([]*models.BrandServiceCount, error) {
	result, err := s.statsRepo.BrandsByService(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) StaffMonthlyServices(ctx context.Context, branchRIF string) ([]*models.StaffMonthlyServices, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	result, err := s.statsRepo.StaffMonthlyServices(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) FrequentCustomers(ctx context.Context, branchRIF string) ([]*models.FrequentCustomer, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	result, err := s.statsRepo.FrequentCustomers(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) ItemsBySales(ctx context.Context, branchRIF string) ([]*models.ItemSales, error) {
	if err := common.ValidateBranchRIF(branchRIF); err != nil {
		return nil, err
	}
	result, err := s.statsRepo.ItemsBySales(ctx, branchRIF)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) MostRequestedServices(ctx context.Context) ([]*models.ServiceDemand, error) {
	result, err := s.statsRepo.MostRequestedServices(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) VehicleHistory(ctx context.Context, vehicleCode int) ([]*models.VehicleHistoryEntry, error) {
	if vehicleCode <= 0 {
		return nil, common.NewValidationError("vehicle_code", "must be positive")
	}
	result, err := s.statsRepo.VehicleHistory(ctx, vehicleCode)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

// BranchComparison ranks every branch by invoice count and billed total for
// one of the two invoice kinds the shop issues.
func (s *statsService) BranchComparison(ctx context.Context, invoiceType string) ([]*models.BranchInvoiceTotals, error) {
	var result []*models.BranchInvoiceTotals
	var err error
	switch invoiceType {
	case "services":
		result, err = s.statsRepo.ServiceInvoiceTotalsByBranch(ctx)
	case "store":
		result, err = s.statsRepo.StoreInvoiceTotalsByBranch(ctx)
	default:
		return nil, common.NewValidationError("type", "must be services or store")
	}
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) CancellingCustomers(ctx context.Context) ([]*models.CancellingCustomer, error) {
	result, err := s.statsRepo.CancellingCustomers(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) SuppliersByVolume(ctx context.Context) ([]*models.SupplierVolume, error) {
	result, err := s.statsRepo.SuppliersByVolume(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}

func (s *statsService) StockAdjustments(ctx context.Context) ([]*models.StockAdjustment, error) {
	result, err := s.statsRepo.StockAdjustments(ctx)
	if err != nil {
		return nil, common.ClassifyStorageError(err)
	}
	return result, nil
}
