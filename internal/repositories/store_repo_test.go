package repositories

import (
	"context"
	"errors"
	"testing"

	"tallerix/internal/common"
	"tallerix/internal/models"

	pgx "github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type StoreRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    StoreRepository
	context context.Context
}

func (suite *StoreRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewStoreRepo(mock)
	suite.context = context.Background()
}

func (suite *StoreRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestStoreRepoTestSuite(t *testing.T) {
	suite.Run(t, new(StoreRepoTestSuite))
}

func (suite *StoreRepoTestSuite) TestCreateInvoiceWithItems_Success() {
	price1 := decimal.RequireFromString("10.50")
	price2 := decimal.RequireFromString("5.00")

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO store_invoices \(issued_at, total, customer_ci, branch_rif\)`).
		WithArgs("V11222333", "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code"}).AddRow(41))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(7, "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(price1))
	suite.mock.ExpectExec(`INSERT INTO store_invoice_items \(invoice_code, item_code, quantity, price\)`).
		WithArgs(41, 7, 2, price1).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(9, "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(price2))
	suite.mock.ExpectExec(`INSERT INTO store_invoice_items \(invoice_code, item_code, quantity, price\)`).
		WithArgs(41, 9, 1, price2).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`UPDATE store_invoices SET total = \$1 WHERE code = \$2`).
		WithArgs(decimal.RequireFromString("26.00"), 41).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	code, err := suite.repo.CreateInvoiceWithItems(suite.context, "V11222333", "J-301234567", []models.CartLine{
		{ItemCode: 7, Quantity: 2},
		{ItemCode: 9, Quantity: 1},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 41, code)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// A line referencing a missing item must abort the whole invoice: the header
// inserted before the failure never survives.
func (suite *StoreRepoTestSuite) TestCreateInvoiceWithItems_MissingItemRollsBack() {
	price := decimal.RequireFromString("10.50")

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO store_invoices \(issued_at, total, customer_ci, branch_rif\)`).
		WithArgs("V11222333", "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code"}).AddRow(42))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(7, "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(price))
	suite.mock.ExpectExec(`INSERT INTO store_invoice_items \(invoice_code, item_code, quantity, price\)`).
		WithArgs(42, 7, 1, price).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(999, "J-301234567").
		WillReturnError(pgx.ErrNoRows)
	suite.mock.ExpectRollback()

	code, err := suite.repo.CreateInvoiceWithItems(suite.context, "V11222333", "J-301234567", []models.CartLine{
		{ItemCode: 7, Quantity: 1},
		{ItemCode: 999, Quantity: 1},
	})

	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
	assert.Equal(suite.T(), 0, code)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StoreRepoTestSuite) TestCreateInvoiceWithItems_LineInsertFailureRollsBack() {
	price := decimal.RequireFromString("3.25")

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO store_invoices \(issued_at, total, customer_ci, branch_rif\)`).
		WithArgs("V11222333", "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code"}).AddRow(43))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(7, "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(price))
	suite.mock.ExpectExec(`INSERT INTO store_invoice_items \(invoice_code, item_code, quantity, price\)`).
		WithArgs(43, 7, 4, price).
		WillReturnError(errors.New("insert failed"))
	suite.mock.ExpectRollback()

	_, err := suite.repo.CreateInvoiceWithItems(suite.context, "V11222333", "J-301234567", []models.CartLine{
		{ItemCode: 7, Quantity: 4},
	})

	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// The price written on the line is the one read inside the transaction, not
// anything the caller supplied.
func (suite *StoreRepoTestSuite) TestCreateInvoiceWithItems_SnapshotsCurrentPrice() {
	current := decimal.RequireFromString("99.99")

	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO store_invoices \(issued_at, total, customer_ci, branch_rif\)`).
		WithArgs("V99887766", "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code"}).AddRow(44))
	suite.mock.ExpectQuery(`SELECT price FROM store_items WHERE code = \$1 AND branch_rif = \$2`).
		WithArgs(3, "J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"price"}).AddRow(current))
	suite.mock.ExpectExec(`INSERT INTO store_invoice_items \(invoice_code, item_code, quantity, price\)`).
		WithArgs(44, 3, 1, current).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	suite.mock.ExpectExec(`UPDATE store_invoices SET total = \$1 WHERE code = \$2`).
		WithArgs(current, 44).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectCommit()

	code, err := suite.repo.CreateInvoiceWithItems(suite.context, "V99887766", "J-301234567", []models.CartLine{
		{ItemCode: 3, Quantity: 1},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 44, code)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StoreRepoTestSuite) TestCreateInvoiceWithItems_BeginFailure() {
	suite.mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := suite.repo.CreateInvoiceWithItems(suite.context, "V11222333", "J-301234567", []models.CartLine{
		{ItemCode: 7, Quantity: 1},
	})

	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StoreRepoTestSuite) TestGetInvoice_NotFound() {
	suite.mock.ExpectQuery(`SELECT code, issued_at, total, customer_ci, branch_rif`).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	inv, err := suite.repo.GetInvoice(suite.context, 404)

	assert.Nil(suite.T(), inv)
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *StoreRepoTestSuite) TestListItems_Success() {
	suite.mock.ExpectQuery(`SELECT code, name, price, branch_rif`).
		WithArgs("J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "price", "branch_rif"}).
			AddRow(1, "Oil filter", decimal.RequireFromString("4.50"), "J-301234567").
			AddRow(2, "Air freshener", decimal.RequireFromString("1.25"), "J-301234567"))

	items, err := suite.repo.ListItems(suite.context, "J-301234567")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 2)
	assert.Equal(suite.T(), "Oil filter", items[0].Name)
	assert.True(suite.T(), items[0].Price.Equal(decimal.RequireFromString("4.50")))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// Rows that violate schema bounds are rejected on the way out, not passed on.
func (suite *StoreRepoTestSuite) TestListItems_InvalidRowRejected() {
	suite.mock.ExpectQuery(`SELECT code, name, price, branch_rif`).
		WithArgs("J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code", "name", "price", "branch_rif"}).
			AddRow(1, "", decimal.RequireFromString("4.50"), "J-301234567"))

	items, err := suite.repo.ListItems(suite.context, "J-301234567")

	assert.Nil(suite.T(), items)
	var vErr *common.ValidationError
	assert.True(suite.T(), errors.As(err, &vErr))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
