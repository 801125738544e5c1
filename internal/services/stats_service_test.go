package services

import (
	"context"
	"errors"
	"testing"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) BrandsByService(ctx context.Context) ([]*models.BrandServiceCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BrandServiceCount), args.Error(1)
}

func (m *MockStatsRepository) StaffMonthlyServices(ctx context.Context, branchRIF string) ([]*models.StaffMonthlyServices, error) {
	args := m.Called(ctx, branchRIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StaffMonthlyServices), args.Error(1)
}

func (m *MockStatsRepository) FrequentCustomers(ctx context.Context, branchRIF string) ([]*models.FrequentCustomer, error) {
	args := m.Called(ctx, branchRIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FrequentCustomer), args.Error(1)
}

func (m *MockStatsRepository) ItemsBySales(ctx context.Context, branchRIF string) ([]*models.ItemSales, error) {
	args := m.Called(ctx, branchRIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ItemSales), args.Error(1)
}

func (m *MockStatsRepository) MostRequestedServices(ctx context.Context) ([]*models.ServiceDemand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceDemand), args.Error(1)
}

func (m *MockStatsRepository) VehicleHistory(ctx context.Context, vehicleCode int) ([]*models.VehicleHistoryEntry, error) {
	args := m.Called(ctx, vehicleCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.VehicleHistoryEntry), args.Error(1)
}

func (m *MockStatsRepository) ServiceInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BranchInvoiceTotals), args.Error(1)
}

func (m *MockStatsRepository) StoreInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BranchInvoiceTotals), args.Error(1)
}

func (m *MockStatsRepository) CancellingCustomers(ctx context.Context) ([]*models.CancellingCustomer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CancellingCustomer), args.Error(1)
}

func (m *MockStatsRepository) SuppliersByVolume(ctx context.Context) ([]*models.SupplierVolume, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SupplierVolume), args.Error(1)
}

func (m *MockStatsRepository) StockAdjustments(ctx context.Context) ([]*models.StockAdjustment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StockAdjustment), args.Error(1)
}

type StatsServiceTestSuite struct {
	suite.Suite
	repo    *MockStatsRepository
	service StatsService
	context context.Context
}

func (suite *StatsServiceTestSuite) SetupTest() {
	suite.repo = new(MockStatsRepository)
	suite.service = NewStatsService(suite.repo)
	suite.context = context.Background()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (suite *StatsServiceTestSuite) TestBranchComparison_Services() {
	totals := []*models.BranchInvoiceTotals{
		{BranchRIF: "J-301234567", BranchName: "Centro", TotalInvoices: 14, TotalBilled: decimal.RequireFromString("1820.00")},
	}
	suite.repo.On("ServiceInvoiceTotalsByBranch", suite.context).Return(totals, nil)

	result, err := suite.service.BranchComparison(suite.context, "services")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), totals, result)
	suite.repo.AssertNotCalled(suite.T(), "StoreInvoiceTotalsByBranch")
}

func (suite *StatsServiceTestSuite) TestBranchComparison_Store() {
	totals := []*models.BranchInvoiceTotals{
		{BranchRIF: "J-301234567", BranchName: "Centro", TotalInvoices: 31, TotalBilled: decimal.RequireFromString("412.75")},
	}
	suite.repo.On("StoreInvoiceTotalsByBranch", suite.context).Return(totals, nil)

	result, err := suite.service.BranchComparison(suite.context, "store")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), totals, result)
	suite.repo.AssertNotCalled(suite.T(), "ServiceInvoiceTotalsByBranch")
}

func (suite *StatsServiceTestSuite) TestBranchComparison_RejectsUnknownType() {
	_, err := suite.service.BranchComparison(suite.context, "reservations")

	var vErr *common.ValidationError
	assert.True(suite.T(), errors.As(err, &vErr))
	assert.Equal(suite.T(), "type", vErr.Field)
	suite.repo.AssertNotCalled(suite.T(), "ServiceInvoiceTotalsByBranch")
	suite.repo.AssertNotCalled(suite.T(), "StoreInvoiceTotalsByBranch")
}

func (suite *StatsServiceTestSuite) TestStockAdjustments_Passthrough() {
	suite.repo.On("StockAdjustments", suite.context).Return([]*models.StockAdjustment{}, nil)

	result, err := suite.service.StockAdjustments(suite.context)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result)
	suite.repo.AssertExpectations(suite.T())
}
