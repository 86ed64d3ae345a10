package dataset

// Dataset is the complete entity graph produced by one generation run.
// Collections are ordered by generation, and every foreign key in a later
// collection refers to an identifier from an earlier one, so inserting the
// collections in Collections() order never violates referential constraints.
// A Dataset is write-once: the generator builds it in a single pass and hands
// it off immutable.
type Dataset struct {
	// Reference data
	Currencies        []Currency
	PaymentTerms      []PaymentTerms
	PricingSchemes    []PricingScheme
	TaxingSchemes     []TaxingScheme
	TaxCodes          []TaxCode
	AdjustmentReasons []AdjustmentReason
	OperationTypes    []OperationType
	Categories        []Category
	Locations         []Location

	// Team and custom fields
	TeamMembers                []TeamMember
	CustomFieldDefinitions     []CustomFieldDefinition
	CustomFieldDropdownOptions []CustomFieldDropdownOption
	CustomFieldSettings        []CustomFieldSettings

	// Parties
	Vendors   []Vendor
	Customers []Customer

	// Products and product details
	Products         []Product
	ProductBarcodes  []ProductBarcode
	InventoryLines   []InventoryLine
	ItemBOMs         []ItemBOM
	ProductOperations []ProductOperation
	ProductPrices    []ProductPrice
	ReorderSettings  []ReorderSetting
	VendorItems      []VendorItem

	// Order documents
	PurchaseOrders      []PurchaseOrder
	PurchaseOrderLines  []PurchaseOrderLine
	SalesOrders         []SalesOrder
	SalesOrderLines     []SalesOrderLine
	ManufacturingOrders []ManufacturingOrder

	// Stock operations
	StockTransfers       []StockTransfer
	StockTransferLines   []StockTransferLine
	StockAdjustments     []StockAdjustment
	StockAdjustmentLines []StockAdjustmentLine
	StockCounts          []StockCount
	CountSheets          []CountSheet
	CountSheetLines      []CountSheetLine

	// Cost adjustments
	ProductCostAdjustments     []ProductCostAdjustment
	ProductCostAdjustmentLines []ProductCostAdjustmentLine

	// Computed
	ProductSummaries []ProductSummary
}

// Collection pairs a table name with its generated rows.
type Collection struct {
	Name string
	Rows []any
}

// Collections returns every collection in strict dependency order: reference
// data, then parties, then products and their detail records, then orders and
// stock operations, then cost adjustments and the precomputed summary.
// Bulk-insert drivers must preserve this order (or defer constraint checks).
func (d *Dataset) Collections() []Collection {
	return []Collection{
		{"currencies", rows(d.Currencies)},
		{"payment_terms", rows(d.PaymentTerms)},
		{"pricing_schemes", rows(d.PricingSchemes)},
		{"taxing_schemes", rows(d.TaxingSchemes)},
		{"tax_codes", rows(d.TaxCodes)},
		{"adjustment_reasons", rows(d.AdjustmentReasons)},
		{"operation_types", rows(d.OperationTypes)},
		{"categories", rows(d.Categories)},
		{"locations", rows(d.Locations)},
		{"team_members", rows(d.TeamMembers)},
		{"custom_field_definitions", rows(d.CustomFieldDefinitions)},
		{"custom_field_dropdown_options", rows(d.CustomFieldDropdownOptions)},
		{"custom_fields", rows(d.CustomFieldSettings)},
		{"vendors", rows(d.Vendors)},
		{"customers", rows(d.Customers)},
		{"products", rows(d.Products)},
		{"product_barcodes", rows(d.ProductBarcodes)},
		{"inventory_lines", rows(d.InventoryLines)},
		{"item_boms", rows(d.ItemBOMs)},
		{"product_operations", rows(d.ProductOperations)},
		{"product_prices", rows(d.ProductPrices)},
		{"reorder_settings", rows(d.ReorderSettings)},
		{"vendor_items", rows(d.VendorItems)},
		{"purchase_orders", rows(d.PurchaseOrders)},
		{"purchase_order_lines", rows(d.PurchaseOrderLines)},
		{"sales_orders", rows(d.SalesOrders)},
		{"sales_order_lines", rows(d.SalesOrderLines)},
		{"manufacturing_orders", rows(d.ManufacturingOrders)},
		{"stock_transfers", rows(d.StockTransfers)},
		{"stock_transfer_lines", rows(d.StockTransferLines)},
		{"stock_adjustments", rows(d.StockAdjustments)},
		{"stock_adjustment_lines", rows(d.StockAdjustmentLines)},
		{"stock_counts", rows(d.StockCounts)},
		{"count_sheets", rows(d.CountSheets)},
		{"count_sheet_lines", rows(d.CountSheetLines)},
		{"product_cost_adjustments", rows(d.ProductCostAdjustments)},
		{"product_cost_adjustment_lines", rows(d.ProductCostAdjustmentLines)},
		{"product_summary", rows(d.ProductSummaries)},
	}
}

// TotalRows returns the number of records across all collections.
func (d *Dataset) TotalRows() int {
	total := 0
	for _, c := range d.Collections() {
		total += len(c.Rows)
	}
	return total
}

func rows[T any](records []T) []any {
	out := make([]any, len(records))
	for i := range records {
		out[i] = records[i]
	}
	return out
}
