package repositories

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type SupplyRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    SupplyRepository
	context context.Context
}

func (suite *SupplyRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewSupplyRepo(mock)
	suite.context = context.Background()
}

func (suite *SupplyRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestSupplyRepoTestSuite(t *testing.T) {
	suite.Run(t, new(SupplyRepoTestSuite))
}

func supplyRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"code", "name", "description", "maker", "eco",
		"price", "stock", "min_stock", "max_stock", "unit", "line_code",
	})
}

func (suite *SupplyRepoTestSuite) TestListLowStock() {
	suite.mock.ExpectQuery(`WHERE stock <= min_stock`).
		WillReturnRows(supplyRows().
			AddRow(1, "Oil 10W40", "Engine oil", "Vistony", false,
				decimal.RequireFromString("8.00"), 2, 10, 50, "liter", 1))

	supplies, err := suite.repo.ListLowStock(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), supplies, 1)
	assert.Equal(suite.T(), "Oil 10W40", supplies[0].Name)
	assert.Equal(suite.T(), 2, supplies[0].Stock)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *SupplyRepoTestSuite) TestListLowStock_Empty() {
	suite.mock.ExpectQuery(`WHERE stock <= min_stock`).
		WillReturnRows(supplyRows())

	supplies, err := suite.repo.ListLowStock(suite.context)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), supplies)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
