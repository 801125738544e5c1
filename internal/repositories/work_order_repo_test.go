package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type WorkOrderRepoTestSuite struct {
	suite.Suite
	mock    pgxmock.PgxPoolIface
	repo    WorkOrderRepository
	context context.Context
}

func (suite *WorkOrderRepoTestSuite) SetupTest() {
	mock, err := pgxmock.NewPool()
	assert.NoError(suite.T(), err)
	suite.mock = mock

	suite.repo = NewWorkOrderRepo(mock)
	suite.context = context.Background()
}

func (suite *WorkOrderRepoTestSuite) TearDownTest() {
	suite.mock.Close()
}

func TestWorkOrderRepoTestSuite(t *testing.T) {
	suite.Run(t, new(WorkOrderRepoTestSuite))
}

func (suite *WorkOrderRepoTestSuite) TestCloseOut_StampsExitAndOpensInvoice() {
	suite.mock.ExpectExec(`UPDATE work_orders SET real_out = \$1 WHERE code = \$2`).
		WithArgs("2026-08-30 17:00", 12).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	suite.mock.ExpectExec(`INSERT INTO service_invoices \(issued_at, amount, discount_pct, work_order_code\)`).
		WithArgs("2026-08-30 17:00", 12).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.CloseOut(suite.context, 12, "2026-08-30 17:00")

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestCloseOut_UpdateFailureSkipsInvoice() {
	suite.mock.ExpectExec(`UPDATE work_orders SET real_out = \$1 WHERE code = \$2`).
		WithArgs("2026-08-30 17:00", 12).
		WillReturnError(errors.New("update failed"))

	err := suite.repo.CloseOut(suite.context, 12, "2026-08-30 17:00")

	assert.Error(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestHasInvoice_Found() {
	suite.mock.ExpectQuery(`SELECT code FROM service_invoices WHERE work_order_code = \$1`).
		WithArgs(12).
		WillReturnRows(pgxmock.NewRows([]string{"code"}).AddRow(5))

	found, err := suite.repo.HasInvoice(suite.context, 12)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestHasInvoice_NotFound() {
	suite.mock.ExpectQuery(`SELECT code FROM service_invoices WHERE work_order_code = \$1`).
		WithArgs(13).
		WillReturnRows(pgxmock.NewRows([]string{"code"}))

	found, err := suite.repo.HasInvoice(suite.context, 13)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), found)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestCreate_Success() {
	timeIn := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	estOut := timeIn.Add(4 * time.Hour)
	order := &models.WorkOrder{
		VehicleCode: 3,
		TimeIn:      timeIn,
		EstOut:      estOut,
		BranchRIF:   "J-301234567",
	}

	suite.mock.ExpectExec(`INSERT INTO work_orders \(vehicle_code, authorized_by, time_in, est_out, branch_rif\)`).
		WithArgs(order.VehicleCode, order.AuthorizedBy, order.TimeIn, order.EstOut, order.BranchRIF).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.Create(suite.context, order)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestGetRowByCode_NotFound() {
	suite.mock.ExpectQuery(`SELECT w.code, w.vehicle_code, w.authorized_by, w.time_in, w.est_out, w.real_out, w.branch_rif, v.owner_ci`).
		WithArgs(404).
		WillReturnError(pgx.ErrNoRows)

	order, err := suite.repo.GetRowByCode(suite.context, 404)

	assert.Nil(suite.T(), order)
	assert.True(suite.T(), errors.Is(err, common.ErrNotFound))
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// The sequence column never appears in the insert: the database assigns it
// so the same activity can be performed repeatedly on one order.
func (suite *WorkOrderRepoTestSuite) TestCreatePerformedActivity_OmitsSequence() {
	activity := &models.PerformedActivity{
		WorkOrderCode: 12, ServiceCode: 1, ActivityCode: 2,
		HourlyRate: decimal.RequireFromString("10.00"),
		Hours:      decimal.RequireFromString("0.50"),
	}

	suite.mock.ExpectExec(`INSERT INTO performed_activities \(work_order_code, service_code, activity_code, hourly_rate, hours\)`).
		WithArgs(12, 1, 2, activity.HourlyRate, activity.Hours).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.CreatePerformedActivity(suite.context, activity)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestCreateConsumption_Success() {
	consumption := &models.SupplyConsumption{
		WorkOrderCode: 12, ServiceCode: 1, ActivityCode: 2, Sequence: 1,
		SupplyCode: 7, EmployeeCI: "V99887766", Quantity: 4,
		Price: decimal.RequireFromString("8.00"),
	}

	suite.mock.ExpectExec(`INSERT INTO performed_consumptions \(work_order_code, service_code, activity_code, sequence, supply_code, employee_ci, quantity, price\)`).
		WithArgs(12, 1, 2, 1, 7, "V99887766", 4, consumption.Price).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := suite.repo.CreateConsumption(suite.context, consumption)

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestGetActivityRows_NullConsumptionColumns() {
	columns := []string{
		"service_code", "activity_code", "description", "sequence", "hourly_rate", "hours",
		"supply_code", "name", "employee_ci", "quantity", "price",
	}
	rate := decimal.RequireFromString("10.00")
	hours := decimal.RequireFromString("0.50")
	price := decimal.RequireFromString("8.00")
	supplyCode, supplyName, employeeCI, qty := 7, "Oil 10W40", "V99887766", 4

	suite.mock.ExpectQuery(`SELECT pa.service_code, pa.activity_code, a.description, pa.sequence`).
		WithArgs(12).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(1, 2, "Drain oil", 1, rate, hours, &supplyCode, &supplyName, &employeeCI, &qty, &price).
			AddRow(1, 5, "Inspect brakes", 2, rate, hours, nil, nil, nil, nil, nil))

	rows, err := suite.repo.GetActivityRows(suite.context, 12)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), rows, 2)
	assert.Equal(suite.T(), "Oil 10W40", *rows[0].SupplyName)
	assert.Nil(suite.T(), rows[1].SupplyCode)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *WorkOrderRepoTestSuite) TestListInvoicesByBranch_Success() {
	issued := time.Date(2026, 8, 30, 17, 0, 0, 0, time.UTC)
	suite.mock.ExpectQuery(`SELECT si.code, si.issued_at, si.amount, si.discount_pct, si.work_order_code`).
		WithArgs("J-301234567").
		WillReturnRows(pgxmock.NewRows([]string{"code", "issued_at", "amount", "discount_pct", "work_order_code"}).
			AddRow(5, issued, decimal.RequireFromString("120.00"), decimal.RequireFromString("10"), 12))

	invoices, err := suite.repo.ListInvoicesByBranch(suite.context, "J-301234567")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), invoices, 1)
	assert.Equal(suite.T(), 12, invoices[0].WorkOrderCode)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
