package services

import (
	"context"
	"errors"
	"testing"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) ListByBranchWithActivities(ctx context.Context, branchRIF string) ([]repositories.ServiceActivityRow, error) {
	args := m.Called(ctx, branchRIF)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.ServiceActivityRow), args.Error(1)
}

func (m *MockServiceRepository) ListRefs(ctx context.Context) ([]*models.ServiceRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ServiceRef), args.Error(1)
}

func (m *MockServiceRepository) Create(ctx context.Context, service *models.Service) (int, error) {
	args := m.Called(ctx, service)
	return args.Int(0), args.Error(1)
}

func (m *MockServiceRepository) Update(ctx context.Context, service *models.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *MockServiceRepository) Delete(ctx context.Context, code int) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockServiceRepository) Offer(ctx context.Context, offering *models.BranchService) error {
	args := m.Called(ctx, offering)
	return args.Error(0)
}

func (m *MockServiceRepository) CreateActivity(ctx context.Context, activity *models.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockServiceRepository) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockServiceRepository) DeleteActivity(ctx context.Context, serviceCode, activityCode int) error {
	args := m.Called(ctx, serviceCode, activityCode)
	return args.Error(0)
}

type CatalogServiceTestSuite struct {
	suite.Suite
	repo    *MockServiceRepository
	service CatalogService
	context context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.repo = new(MockServiceRepository)
	suite.service = NewCatalogService(suite.repo)
	suite.context = context.Background()
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}

func intPtr(v int) *int                         { return &v }
func strPtr(v string) *string                   { return &v }
func decPtr(v decimal.Decimal) *decimal.Decimal { return &v }

// Flat join rows collapse into one entry per service, activities nested and
// in row order.
func (suite *CatalogServiceTestSuite) TestListByBranch_GroupsActivities() {
	rate := decimal.RequireFromString("15.00")
	rows := []repositories.ServiceActivityRow{
		{Code: 1, Name: "Oil change", Charge: decimal.RequireFromString("25.00"), SupervisorCI: "V1", CoordinatorCI: "V2",
			ActivityCode: intPtr(1), ActivityDesc: strPtr("Drain oil"), ActivityHourlyRate: decPtr(rate)},
		{Code: 1, Name: "Oil change", Charge: decimal.RequireFromString("25.00"), SupervisorCI: "V1", CoordinatorCI: "V2",
			ActivityCode: intPtr(2), ActivityDesc: strPtr("Replace filter"), ActivityHourlyRate: decPtr(rate)},
		{Code: 2, Name: "Alignment", Charge: decimal.RequireFromString("40.00"), SupervisorCI: "V3", CoordinatorCI: "V4"},
	}
	suite.repo.On("ListByBranchWithActivities", suite.context, "J-301234567").Return(rows, nil)

	result, err := suite.service.ListByBranch(suite.context, "J-301234567")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), result, 2)
	assert.Equal(suite.T(), 1, result[0].Code)
	assert.Len(suite.T(), result[0].Activities, 2)
	assert.Equal(suite.T(), "Drain oil", *result[0].Activities[0].Description)
	assert.Equal(suite.T(), "Replace filter", *result[0].Activities[1].Description)
	// A service with no activities nests an empty list, not a null entry.
	assert.Equal(suite.T(), 2, result[1].Code)
	assert.Empty(suite.T(), result[1].Activities)
	suite.repo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestListByBranch_MissingBranchRejected() {
	_, err := suite.service.ListByBranch(suite.context, "")

	var vErr *common.ValidationError
	assert.True(suite.T(), errors.As(err, &vErr))
	suite.repo.AssertNotCalled(suite.T(), "ListByBranchWithActivities")
}

// Creating a service registers it in the catalog and immediately offers it
// at the requesting branch.
func (suite *CatalogServiceTestSuite) TestAdd_CreatesAndOffers() {
	service := &models.Service{
		Name:          "Brake check",
		Charge:        decimal.RequireFromString("30.00"),
		SupervisorCI:  "V1",
		CoordinatorCI: "V2",
	}
	offering := &models.BranchService{
		BranchRIF:     "J-301234567",
		Capacity:      4,
		BookingWindow: 14,
	}
	suite.repo.On("Create", suite.context, service).Return(9, nil)
	suite.repo.On("Offer", suite.context, mock.MatchedBy(func(o *models.BranchService) bool {
		return o.ServiceCode == 9 && o.BranchRIF == "J-301234567"
	})).Return(nil)

	err := suite.service.Add(suite.context, service, offering)

	assert.NoError(suite.T(), err)
	suite.repo.AssertExpectations(suite.T())
}
