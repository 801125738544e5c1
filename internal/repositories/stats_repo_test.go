package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StatsRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    StatsRepository
	context context.Context
}

func (suite *StatsRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewStatsRepo(mock)
	suite.context = context.Background()
}

func (suite *StatsRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestStatsRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StatsRepoTestSuite))
}

func (suite *StatsRepoTestSuite) TestServiceInvoiceTotalsByBranch() {
	suite.mock.ExpectQuery(`SELECT branch_rif, branch_name, total_invoices, total_billed FROM branch_service_invoice_totals`).
		WillReturnRows(pgxmock.NewRows([]string{"branch_rif", "branch_name", "total_invoices", "total_billed"}).
			AddRow("J-301234567", "Centro", 14, decimal.RequireFromString("1820.00")).
			AddRow("J-409876543", "Norte", 9, decimal.RequireFromString("990.50")))

	totals, err := suite.repo.ServiceInvoiceTotalsByBranch(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), totals, 2)
	assert.Equal(suite.T(), "Centro", totals[0].BranchName)
	assert.Equal(suite.T(), 14, totals[0].TotalInvoices)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StatsRepoTestSuite) TestStoreInvoiceTotalsByBranch() {
	suite.mock.ExpectQuery(`SELECT branch_rif, branch_name, total_invoices, total_billed FROM branch_store_invoice_totals`).
		WillReturnRows(pgxmock.NewRows([]string{"branch_rif", "branch_name", "total_invoices", "total_billed"}).
			AddRow("J-301234567", "Centro", 31, decimal.RequireFromString("412.75")))

	totals, err := suite.repo.StoreInvoiceTotalsByBranch(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), totals, 1)
	assert.Equal(suite.T(), "J-301234567", totals[0].BranchRIF)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StatsRepoTestSuite) TestCancellingCustomers() {
	suite.mock.ExpectQuery(`SELECT customer_ci, customer_name, cancelled_reservations FROM cancelling_customers`).
		WillReturnRows(pgxmock.NewRows([]string{"customer_ci", "customer_name", "cancelled_reservations"}).
			AddRow("V11222333", "Ana Perez", 3))

	customers, err := suite.repo.CancellingCustomers(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), customers, 1)
	assert.Equal(suite.T(), 3, customers[0].CancelledReservations)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StatsRepoTestSuite) TestSuppliersByVolume() {
	suite.mock.ExpectQuery(`SELECT supplier_rif, supplier_name, total_supplied FROM suppliers_by_volume`).
		WillReturnRows(pgxmock.NewRows([]string{"supplier_rif", "supplier_name", "total_supplied"}).
			AddRow("J-500011122", "Lubricantes CA", 480))

	suppliers, err := suite.repo.SuppliersByVolume(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suppliers, 1)
	assert.Equal(suite.T(), 480, suppliers[0].TotalSupplied)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StatsRepoTestSuite) TestStockAdjustments() {
	adjusted := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	suite.mock.ExpectQuery(`SELECT supply_code, supply_name, adjustment_code, adjusted_at, kind, comment, difference`).
		WillReturnRows(pgxmock.NewRows([]string{
			"supply_code", "supply_name", "adjustment_code", "adjusted_at", "kind", "comment", "difference",
		}).AddRow(7, "Oil 10W40", 2, adjusted, "shortage", "count below book stock", -3))

	adjustments, err := suite.repo.StockAdjustments(suite.context)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), adjustments, 1)
	assert.Equal(suite.T(), "shortage", adjustments[0].Kind)
	assert.Equal(suite.T(), -3, adjustments[0].Difference)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StatsRepoTestSuite) TestCancellingCustomers_QueryError() {
	suite.mock.ExpectQuery(`FROM cancelling_customers`).
		WillReturnError(errors.New("connection refused"))

	customers, err := suite.repo.CancellingCustomers(suite.context)

	assert.Nil(suite.T(), customers)
	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
