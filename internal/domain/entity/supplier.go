package entity

import "github.com/shopspring/decimal"

// Supplier proveedor con datos de contacto para reposición.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
}

// ProductSupplier vincula un producto con un proveedor. A lo sumo un vínculo
// por producto debería estar marcado como primario.
type ProductSupplier struct {
	ProductID            string
	Supplier             Supplier
	IsPrimary            bool
	LeadTimeDays         int
	MinimumOrderQuantity int
	UnitCost             decimal.Decimal
}
