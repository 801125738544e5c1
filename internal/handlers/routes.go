package handlers

import (
	"github.com/labstack/echo/v4"
)

// Registry groups every handler set so route registration stays in one
// place.
type Registry struct {
	Sessions     *SessionHandlers
	Branches     *BranchHandlers
	Customers    *CustomerHandlers
	Employees    *EmployeeHandlers
	Suppliers    *SupplierHandlers
	Vehicles     *VehicleHandlers
	Catalog      *CatalogHandlers
	Inventory    *InventoryHandlers
	Store        *StoreHandlers
	Reservations *ReservationHandlers
	WorkOrders   *WorkOrderHandlers
	Stats        *StatsHandlers
}

// RegisterRoutes wires every endpoint under /api.
func (r *Registry) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/session", r.Sessions.SelectBranch)
	api.GET("/session", r.Sessions.CurrentBranch)
	api.DELETE("/session", r.Sessions.Logout)

	api.GET("/branches", r.Branches.ListRefs)
	api.POST("/branches", r.Branches.Add)
	api.GET("/branches/current", r.Branches.GetCurrent)
	api.PUT("/branches/current/manager", r.Branches.AssignManager)

	api.GET("/customers", r.Customers.List)
	api.GET("/customers/ids", r.Customers.ListIDs)
	api.POST("/customers", r.Customers.Add)
	api.PUT("/customers/:ci", r.Customers.Edit)
	api.DELETE("/customers/:ci", r.Customers.Remove)

	api.GET("/employees", r.Employees.List)
	api.POST("/employees", r.Employees.Add)
	api.PUT("/employees/:ci", r.Employees.Edit)
	api.DELETE("/employees/:ci", r.Employees.Remove)

	api.GET("/suppliers", r.Suppliers.List)
	api.POST("/suppliers", r.Suppliers.Add)
	api.PUT("/suppliers/:rif", r.Suppliers.Edit)
	api.DELETE("/suppliers/:rif", r.Suppliers.Remove)

	api.GET("/vehicles", r.Vehicles.List)
	api.GET("/vehicles/intake", r.Vehicles.ListForIntake)
	api.POST("/vehicles", r.Vehicles.Add)
	api.PUT("/vehicles/:code", r.Vehicles.Edit)
	api.DELETE("/vehicles/:code", r.Vehicles.Remove)
	api.GET("/vehicle-types", r.Vehicles.ListTypes)
	api.POST("/vehicle-types", r.Vehicles.AddType)
	api.GET("/brands", r.Vehicles.ListBrands)
	api.POST("/brands", r.Vehicles.AddBrand)
	api.GET("/brands/:brand/models/:model", r.Vehicles.GetModel)
	api.POST("/brands/:brand/models", r.Vehicles.AddModel)

	api.GET("/catalog/services", r.Catalog.List)
	api.GET("/catalog/services/refs", r.Catalog.ListRefs)
	api.POST("/catalog/services", r.Catalog.Add)
	api.PUT("/catalog/services/:code", r.Catalog.Edit)
	api.DELETE("/catalog/services/:code", r.Catalog.Remove)
	api.POST("/catalog/services/:code/offer", r.Catalog.Offer)
	api.POST("/catalog/services/:code/activities", r.Catalog.AddActivity)
	api.PUT("/catalog/services/:code/activities/:activity", r.Catalog.EditActivity)
	api.DELETE("/catalog/services/:code/activities/:activity", r.Catalog.RemoveActivity)

	api.GET("/inventory/supplies", r.Inventory.ListSupplies)
	api.POST("/inventory/supplies", r.Inventory.AddSupply)
	api.PUT("/inventory/supplies/:code", r.Inventory.EditSupply)
	api.DELETE("/inventory/supplies/:code", r.Inventory.RemoveSupply)
	api.GET("/inventory/lines", r.Inventory.ListLines)
	api.POST("/inventory/lines", r.Inventory.AddLine)
	api.PUT("/inventory/lines/:code", r.Inventory.EditLine)
	api.DELETE("/inventory/lines/:code", r.Inventory.RemoveLine)
	api.GET("/inventory/counts", r.Inventory.ListCounts)
	api.POST("/inventory/counts", r.Inventory.AddCount)

	api.GET("/store/items", r.Store.ListItems)
	api.POST("/store/items", r.Store.AddItem)
	api.PUT("/store/items/:code", r.Store.EditItem)
	api.GET("/store/invoices", r.Store.ListInvoices)
	api.GET("/store/invoices/:code", r.Store.GetInvoice)
	api.POST("/store/invoices", r.Store.Checkout)

	api.GET("/reservations", r.Reservations.List)
	api.POST("/reservations", r.Reservations.Add)

	api.GET("/work-orders", r.WorkOrders.List)
	api.POST("/work-orders", r.WorkOrders.Add)
	api.GET("/work-orders/:code", r.WorkOrders.GetDetail)
	api.POST("/work-orders/:code/activities", r.WorkOrders.PerformActivity)
	api.POST("/work-orders/:code/consumptions", r.WorkOrders.ConsumeSupply)
	api.GET("/work-orders/:code/invoice-status", r.WorkOrders.HasInvoice)
	api.PUT("/work-orders/:code/close", r.WorkOrders.CloseOut)
	api.GET("/service-invoices", r.WorkOrders.ListInvoices)
	api.GET("/service-invoices/:code", r.WorkOrders.GetInvoiceDetail)

	api.GET("/stats/brands-by-service", r.Stats.BrandsByService)
	api.GET("/stats/staff-monthly", r.Stats.StaffMonthlyServices)
	api.GET("/stats/frequent-customers", r.Stats.FrequentCustomers)
	api.GET("/stats/items-by-sales", r.Stats.ItemsBySales)
	api.GET("/stats/most-requested-services", r.Stats.MostRequestedServices)
	api.GET("/stats/vehicles/:code/history", r.Stats.VehicleHistory)
	api.GET("/stats/branch-comparison", r.Stats.BranchComparison)
	api.GET("/stats/cancelled-reservations", r.Stats.CancellingCustomers)
	api.GET("/stats/top-suppliers", r.Stats.SuppliersByVolume)
	api.GET("/stats/stock-adjustments", r.Stats.StockAdjustments)
}
