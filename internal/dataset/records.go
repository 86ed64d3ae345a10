package dataset

import "github.com/shopspring/decimal"

// Record types for every table in the manufacturing inventory schema.
// Identifiers are generator-assigned UUID strings. Monetary values are
// decimals; quantities are plain integers. Fields that only exist in some
// document states (counted quantities, completion dates) are pointers so a
// missing value is distinguishable from zero.

type Currency struct {
	CurrencyID     string          `db:"currency_id" json:"currencyId"`
	Name           string          `db:"name" json:"name"`
	Code           string          `db:"code" json:"code"`
	Symbol         string          `db:"symbol" json:"symbol"`
	ExchangeRate   decimal.Decimal `db:"exchange_rate" json:"exchangeRate"`
	IsBaseCurrency bool            `db:"is_base_currency" json:"isBaseCurrency"`
	Timestamp      string          `db:"timestamp" json:"timestamp"`
}

type PaymentTerms struct {
	PaymentTermsID  string           `db:"payment_terms_id" json:"paymentTermsId"`
	Name            string           `db:"name" json:"name"`
	NetDays         int              `db:"net_days" json:"netDays"`
	DiscountDays    *int             `db:"discount_days" json:"discountDays,omitempty"`
	DiscountPercent *decimal.Decimal `db:"discount_percent" json:"discountPercent,omitempty"`
	Timestamp       string           `db:"timestamp" json:"timestamp"`
}

type PricingScheme struct {
	PricingSchemeID string `db:"pricing_scheme_id" json:"pricingSchemeId"`
	Name            string `db:"name" json:"name"`
	IsDefault       bool   `db:"is_default" json:"isDefault"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
}

type TaxingScheme struct {
	TaxingSchemeID string `db:"taxing_scheme_id" json:"taxingSchemeId"`
	Name           string `db:"name" json:"name"`
	Timestamp      string `db:"timestamp" json:"timestamp"`
}

type TaxCode struct {
	TaxCodeID      string          `db:"tax_code_id" json:"taxCodeId"`
	TaxingSchemeID string          `db:"taxing_scheme_id" json:"taxingSchemeId"`
	Name           string          `db:"name" json:"name"`
	Rate           decimal.Decimal `db:"rate" json:"rate"`
	IsDefault      bool            `db:"is_default" json:"isDefault"`
	Timestamp      string          `db:"timestamp" json:"timestamp"`
}

type AdjustmentReason struct {
	AdjustmentReasonID string `db:"adjustment_reason_id" json:"adjustmentReasonId"`
	Name               string `db:"name" json:"name"`
	IsActive           bool   `db:"is_active" json:"isActive"`
	Timestamp          string `db:"timestamp" json:"timestamp"`
}

type OperationType struct {
	OperationTypeID string `db:"operation_type_id" json:"operationTypeId"`
	Name            string `db:"name" json:"name"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
}

type Category struct {
	CategoryID  string `db:"category_id" json:"categoryId"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	IsActive    bool   `db:"is_active" json:"isActive"`
	Timestamp   string `db:"timestamp" json:"timestamp"`
}

type Location struct {
	LocationID   string `db:"location_id" json:"locationId"`
	Name         string `db:"name" json:"name"`
	Abbreviation string `db:"abbreviation" json:"abbreviation"`
	IsActive     bool   `db:"is_active" json:"isActive"`
	IsShippable  bool   `db:"is_shippable" json:"isShippable"`
	IsReceivable bool   `db:"is_receivable" json:"isReceivable"`
	Timestamp    string `db:"timestamp" json:"timestamp"`
}

type TeamMember struct {
	TeamMemberID string `db:"team_member_id" json:"teamMemberId"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	IsActive     bool   `db:"is_active" json:"isActive"`
}

type CustomFieldDefinition struct {
	CustomFieldDefinitionID string `db:"custom_field_definition_id" json:"customFieldDefinitionId"`
	Label                   string `db:"label" json:"label"`
	PropertyName            string `db:"property_name" json:"propertyName"`
	CustomFieldType         string `db:"custom_field_type" json:"customFieldType"`
	EntityType              string `db:"entity_type" json:"entityType"`
	IsActive                bool   `db:"is_active" json:"isActive"`
}

type CustomFieldDropdownOption struct {
	ID              string `db:"id" json:"id"`
	EntityType      string `db:"entity_type" json:"entityType"`
	PropertyName    string `db:"property_name" json:"propertyName"`
	DropdownOptions string `db:"dropdown_options" json:"dropdownOptions"`
}

// CustomFieldSettings mirrors the schema's single-row custom_fields table of
// print toggles.
type CustomFieldSettings struct {
	CustomFieldsID            string `db:"custom_fields_id" json:"customFieldsId"`
	PurchaseOrderCustom1Print bool   `db:"purchase_order_custom1_print" json:"purchaseOrderCustom1Print"`
	PurchaseOrderCustom2Print bool   `db:"purchase_order_custom2_print" json:"purchaseOrderCustom2Print"`
	PurchaseOrderCustom3Print bool   `db:"purchase_order_custom3_print" json:"purchaseOrderCustom3Print"`
	SalesOrderCustom1Print    bool   `db:"sales_order_custom1_print" json:"salesOrderCustom1Print"`
	SalesOrderCustom2Print    bool   `db:"sales_order_custom2_print" json:"salesOrderCustom2Print"`
	SalesOrderCustom3Print    bool   `db:"sales_order_custom3_print" json:"salesOrderCustom3Print"`
	StockAdjustmentCustom1Print bool `db:"stock_adjustment_custom1_print" json:"stockAdjustmentCustom1Print"`
	StockAdjustmentCustom2Print bool `db:"stock_adjustment_custom2_print" json:"stockAdjustmentCustom2Print"`
	StockAdjustmentCustom3Print bool `db:"stock_adjustment_custom3_print" json:"stockAdjustmentCustom3Print"`
	StockTransferCustom1Print   bool `db:"stock_transfer_custom1_print" json:"stockTransferCustom1Print"`
	StockTransferCustom2Print   bool `db:"stock_transfer_custom2_print" json:"stockTransferCustom2Print"`
	StockTransferCustom3Print   bool `db:"stock_transfer_custom3_print" json:"stockTransferCustom3Print"`
	WorkOrderCustom1Print       bool `db:"work_order_custom1_print" json:"workOrderCustom1Print"`
	WorkOrderCustom2Print       bool `db:"work_order_custom2_print" json:"workOrderCustom2Print"`
	WorkOrderCustom3Print       bool `db:"work_order_custom3_print" json:"workOrderCustom3Print"`
}

type Vendor struct {
	VendorID       string `db:"vendor_id" json:"vendorId"`
	Name           string `db:"name" json:"name"`
	VendorCode     string `db:"vendor_code" json:"vendorCode"`
	IsActive       bool   `db:"is_active" json:"isActive"`
	CurrencyID     string `db:"currency_id" json:"currencyId"`
	PaymentTermsID string `db:"payment_terms_id" json:"paymentTermsId"`
	TaxingSchemeID string `db:"taxing_scheme_id" json:"taxingSchemeId"`
	Timestamp      string `db:"timestamp" json:"timestamp"`
}

type Customer struct {
	CustomerID      string `db:"customer_id" json:"customerId"`
	Name            string `db:"name" json:"name"`
	CustomerCode    string `db:"customer_code" json:"customerCode"`
	IsActive        bool   `db:"is_active" json:"isActive"`
	CurrencyID      string `db:"currency_id" json:"currencyId"`
	PricingSchemeID string `db:"pricing_scheme_id" json:"pricingSchemeId"`
	PaymentTermsID  string `db:"payment_terms_id" json:"paymentTermsId"`
	TaxingSchemeID  string `db:"taxing_scheme_id" json:"taxingSchemeId"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
}

type Product struct {
	ProductID        string `db:"product_id" json:"productId"`
	Name             string `db:"name" json:"name"`
	Description      string `db:"description" json:"description"`
	SKU              string `db:"sku" json:"sku"`
	ItemType         string `db:"item_type" json:"itemType"`
	IsActive         bool   `db:"is_active" json:"isActive"`
	CategoryID       string `db:"category_id" json:"categoryId"`
	StandardUOMName  string `db:"standard_uom_name" json:"standardUomName"`
	IsManufacturable bool   `db:"is_manufacturable" json:"isManufacturable"`
	Timestamp        string `db:"timestamp" json:"timestamp"`
}

type ProductBarcode struct {
	ProductBarcodeID string `db:"product_barcode_id" json:"productBarcodeId"`
	ProductID        string `db:"product_id" json:"productId"`
	Barcode          string `db:"barcode" json:"barcode"`
	LineNum          int    `db:"line_num" json:"lineNum"`
	Timestamp        string `db:"timestamp" json:"timestamp"`
}

type InventoryLine struct {
	InventoryLineID string `db:"inventory_line_id" json:"inventoryLineId"`
	ProductID       string `db:"product_id" json:"productId"`
	LocationID      string `db:"location_id" json:"locationId"`
	QuantityOnHand  int    `db:"quantity_on_hand" json:"quantityOnHand"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
}

type ItemBOM struct {
	ItemBOMID      string `db:"item_bom_id" json:"itemBomId"`
	ProductID      string `db:"product_id" json:"productId"`
	ChildProductID string `db:"child_product_id" json:"childProductId"`
	Quantity       int    `db:"quantity" json:"quantity"`
	UOMName        string `db:"uom_name" json:"uomName"`
	Timestamp      string `db:"timestamp" json:"timestamp"`
}

type ProductOperation struct {
	ProductOperationID string          `db:"product_operation_id" json:"productOperationId"`
	ProductID          string          `db:"product_id" json:"productId"`
	OperationTypeID    string          `db:"operation_type_id" json:"operationTypeId"`
	LineNum            int             `db:"line_num" json:"lineNum"`
	Instructions       string          `db:"instructions" json:"instructions"`
	EstimatedMinutes   int             `db:"estimated_minutes" json:"estimatedMinutes"`
	Cost               decimal.Decimal `db:"cost" json:"cost"`
	Timestamp          string          `db:"timestamp" json:"timestamp"`
}

type ProductPrice struct {
	ProductPriceID  string          `db:"product_price_id" json:"productPriceId"`
	ProductID       string          `db:"product_id" json:"productId"`
	PricingSchemeID string          `db:"pricing_scheme_id" json:"pricingSchemeId"`
	PriceType       string          `db:"price_type" json:"priceType"`
	UnitPrice       decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Timestamp       string          `db:"timestamp" json:"timestamp"`
}

type ReorderSetting struct {
	ReorderSettingsID string `db:"reorder_settings_id" json:"reorderSettingsId"`
	ProductID         string `db:"product_id" json:"productId"`
	LocationID        string `db:"location_id" json:"locationId"`
	VendorID          string `db:"vendor_id" json:"vendorId"`
	EnableReordering  bool   `db:"enable_reordering" json:"enableReordering"`
	ReorderMethod     string `db:"reorder_method" json:"reorderMethod"`
	ReorderPoint      int    `db:"reorder_point" json:"reorderPoint"`
	ReorderQuantity   int    `db:"reorder_quantity" json:"reorderQuantity"`
	Timestamp         string `db:"timestamp" json:"timestamp"`
}

type VendorItem struct {
	VendorItemID   string          `db:"vendor_item_id" json:"vendorItemId"`
	VendorID       string          `db:"vendor_id" json:"vendorId"`
	ProductID      string          `db:"product_id" json:"productId"`
	VendorItemCode string          `db:"vendor_item_code" json:"vendorItemCode"`
	Cost           decimal.Decimal `db:"cost" json:"cost"`
	LeadTimeDays   int             `db:"lead_time_days" json:"leadTimeDays"`
	LineNum        int             `db:"line_num" json:"lineNum"`
	Timestamp      string          `db:"timestamp" json:"timestamp"`
}

type PurchaseOrder struct {
	PurchaseOrderID string          `db:"purchase_order_id" json:"purchaseOrderId"`
	OrderNumber     string          `db:"order_number" json:"orderNumber"`
	VendorID        string          `db:"vendor_id" json:"vendorId"`
	Status          string          `db:"status" json:"status"`
	OrderDate       string          `db:"order_date" json:"orderDate"`
	ExpectedDate    string          `db:"expected_date" json:"expectedDate"`
	LocationID      string          `db:"location_id" json:"locationId"`
	CurrencyID      string          `db:"currency_id" json:"currencyId"`
	ExchangeRate    decimal.Decimal `db:"exchange_rate" json:"exchangeRate"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total           decimal.Decimal `db:"total" json:"total"`
	Timestamp       string          `db:"timestamp" json:"timestamp"`
}

type PurchaseOrderLine struct {
	PurchaseOrderLineID string          `db:"purchase_order_line_id" json:"purchaseOrderLineId"`
	PurchaseOrderID     string          `db:"purchase_order_id" json:"purchaseOrderId"`
	ProductID           string          `db:"product_id" json:"productId"`
	LineNum             int             `db:"line_num" json:"lineNum"`
	Description         string          `db:"description" json:"description"`
	Quantity            int             `db:"quantity" json:"quantity"`
	UnitCost            decimal.Decimal `db:"unit_cost" json:"unitCost"`
	LineTotal           decimal.Decimal `db:"line_total" json:"lineTotal"`
	QuantityReceived    int             `db:"quantity_received" json:"quantityReceived"`
	Timestamp           string          `db:"timestamp" json:"timestamp"`
}

type SalesOrder struct {
	SalesOrderID     string          `db:"sales_order_id" json:"salesOrderId"`
	OrderNumber      string          `db:"order_number" json:"orderNumber"`
	CustomerID       string          `db:"customer_id" json:"customerId"`
	Status           string          `db:"status" json:"status"`
	OrderDate        string          `db:"order_date" json:"orderDate"`
	ExpectedShipDate string          `db:"expected_ship_date" json:"expectedShipDate"`
	LocationID       string          `db:"location_id" json:"locationId"`
	CurrencyID       string          `db:"currency_id" json:"currencyId"`
	ExchangeRate     decimal.Decimal `db:"exchange_rate" json:"exchangeRate"`
	Subtotal         decimal.Decimal `db:"subtotal" json:"subtotal"`
	Total            decimal.Decimal `db:"total" json:"total"`
	Timestamp        string          `db:"timestamp" json:"timestamp"`
}

type SalesOrderLine struct {
	SalesOrderLineID string          `db:"sales_order_line_id" json:"salesOrderLineId"`
	SalesOrderID     string          `db:"sales_order_id" json:"salesOrderId"`
	ProductID        string          `db:"product_id" json:"productId"`
	LineNum          int             `db:"line_num" json:"lineNum"`
	Description      string          `db:"description" json:"description"`
	Quantity         int             `db:"quantity" json:"quantity"`
	UnitPrice        decimal.Decimal `db:"unit_price" json:"unitPrice"`
	LineTotal        decimal.Decimal `db:"line_total" json:"lineTotal"`
	QuantityPicked   int             `db:"quantity_picked" json:"quantityPicked"`
	QuantityShipped  int             `db:"quantity_shipped" json:"quantityShipped"`
	Timestamp        string          `db:"timestamp" json:"timestamp"`
}

type ManufacturingOrder struct {
	ManufacturingOrderID string `db:"manufacturing_order_id" json:"manufacturingOrderId"`
	OrderNumber          string `db:"order_number" json:"orderNumber"`
	ProductID            string `db:"product_id" json:"productId"`
	Status               string `db:"status" json:"status"`
	Quantity             int    `db:"quantity" json:"quantity"`
	// QuantityCompleted is set only once the order reaches Completed.
	QuantityCompleted *int   `db:"quantity_completed" json:"quantityCompleted,omitempty"`
	OrderDate         string `db:"order_date" json:"orderDate"`
	ExpectedDate      string `db:"expected_date" json:"expectedDate"`
	LocationID        string `db:"location_id" json:"locationId"`
	Timestamp         string `db:"timestamp" json:"timestamp"`
}

type StockTransfer struct {
	StockTransferID string `db:"stock_transfer_id" json:"stockTransferId"`
	TransferNumber  string `db:"transfer_number" json:"transferNumber"`
	Status          string `db:"status" json:"status"`
	TransferDate    string `db:"transfer_date" json:"transferDate"`
	FromLocationID  string `db:"from_location_id" json:"fromLocationId"`
	ToLocationID    string `db:"to_location_id" json:"toLocationId"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
}

type StockTransferLine struct {
	StockTransferLineID string `db:"stock_transfer_line_id" json:"stockTransferLineId"`
	StockTransferID     string `db:"stock_transfer_id" json:"stockTransferId"`
	ProductID           string `db:"product_id" json:"productId"`
	LineNum             int    `db:"line_num" json:"lineNum"`
	Quantity            int    `db:"quantity" json:"quantity"`
	Timestamp           string `db:"timestamp" json:"timestamp"`
}

type StockAdjustment struct {
	StockAdjustmentID  string `db:"stock_adjustment_id" json:"stockAdjustmentId"`
	AdjustmentNumber   string `db:"adjustment_number" json:"adjustmentNumber"`
	AdjustmentDate     string `db:"adjustment_date" json:"adjustmentDate"`
	LocationID         string `db:"location_id" json:"locationId"`
	AdjustmentReasonID string `db:"adjustment_reason_id" json:"adjustmentReasonId"`
	Timestamp          string `db:"timestamp" json:"timestamp"`
}

type StockAdjustmentLine struct {
	StockAdjustmentLineID string `db:"stock_adjustment_line_id" json:"stockAdjustmentLineId"`
	StockAdjustmentID     string `db:"stock_adjustment_id" json:"stockAdjustmentId"`
	ProductID             string `db:"product_id" json:"productId"`
	LineNum               int    `db:"line_num" json:"lineNum"`
	// Quantity is a signed delta, negative for shrinkage.
	Quantity  int    `db:"quantity" json:"quantity"`
	Timestamp string `db:"timestamp" json:"timestamp"`
}

type ProductCostAdjustment struct {
	ProductCostAdjustmentID string `db:"product_cost_adjustment_id" json:"productCostAdjustmentId"`
	AdjustmentNumber        string `db:"adjustment_number" json:"adjustmentNumber"`
	AdjustmentDate          string `db:"adjustment_date" json:"adjustmentDate"`
	Remarks                 string `db:"remarks" json:"remarks"`
	Timestamp               string `db:"timestamp" json:"timestamp"`
}

type ProductCostAdjustmentLine struct {
	ProductCostAdjustmentLineID string          `db:"product_cost_adjustment_line_id" json:"productCostAdjustmentLineId"`
	ProductCostAdjustmentID     string          `db:"product_cost_adjustment_id" json:"productCostAdjustmentId"`
	ProductID                   string          `db:"product_id" json:"productId"`
	LineNum                     int             `db:"line_num" json:"lineNum"`
	OldCost                     decimal.Decimal `db:"old_cost" json:"oldCost"`
	NewCost                     decimal.Decimal `db:"new_cost" json:"newCost"`
	Timestamp                   string          `db:"timestamp" json:"timestamp"`
}

type StockCount struct {
	StockCountID           string  `db:"stock_count_id" json:"stockCountId"`
	StockCountNumber       string  `db:"stock_count_number" json:"stockCountNumber"`
	Status                 string  `db:"status" json:"status"`
	LocationID             string  `db:"location_id" json:"locationId"`
	AssignedToTeamMemberID string  `db:"assigned_to_team_member_id" json:"assignedToTeamMemberId"`
	IsPrepared             bool    `db:"is_prepared" json:"isPrepared"`
	IsStarted              bool    `db:"is_started" json:"isStarted"`
	IsReviewed             bool    `db:"is_reviewed" json:"isReviewed"`
	IsCompleted            bool    `db:"is_completed" json:"isCompleted"`
	IsCancelled            bool    `db:"is_cancelled" json:"isCancelled"`
	StartedDate            *string `db:"started_date" json:"startedDate,omitempty"`
	CompletedDate          *string `db:"completed_date" json:"completedDate,omitempty"`
	Timestamp              string  `db:"timestamp" json:"timestamp"`
}

type CountSheet struct {
	CountSheetID           string `db:"count_sheet_id" json:"countSheetId"`
	StockCountID           string `db:"stock_count_id" json:"stockCountId"`
	SheetNumber            int    `db:"sheet_number" json:"sheetNumber"`
	Status                 string `db:"status" json:"status"`
	AssignedToTeamMemberID string `db:"assigned_to_team_member_id" json:"assignedToTeamMemberId"`
	IsCancelled            bool   `db:"is_cancelled" json:"isCancelled"`
	IsCompleted            bool   `db:"is_completed" json:"isCompleted"`
	Timestamp              string `db:"timestamp" json:"timestamp"`
}

type CountSheetLine struct {
	CountSheetLineID string `db:"count_sheet_line_id" json:"countSheetLineId"`
	CountSheetID     string `db:"count_sheet_id" json:"countSheetId"`
	ProductID        string `db:"product_id" json:"productId"`
	Description      string `db:"description" json:"description"`
	// CountedQuantity is present only once the owning count is in review or
	// completed; nil means "not yet counted", which is not the same as zero.
	CountedQuantity  *int   `db:"counted_quantity" json:"countedQuantity,omitempty"`
	CountedUOM       string `db:"counted_uom" json:"countedUom"`
	SnapshotQuantity int    `db:"snapshot_quantity" json:"snapshotQuantity"`
	SnapshotUOM      string `db:"snapshot_uom" json:"snapshotUom"`
	Timestamp        string `db:"timestamp" json:"timestamp"`
}

type ProductSummary struct {
	ProductSummaryID        string `db:"product_summary_id" json:"productSummaryId"`
	ProductID               string `db:"product_id" json:"productId"`
	LocationID              string `db:"location_id" json:"locationId"`
	QuantityOnHand          int    `db:"quantity_on_hand" json:"quantityOnHand"`
	QuantityAvailable       int    `db:"quantity_available" json:"quantityAvailable"`
	QuantityOnOrder         int    `db:"quantity_on_order" json:"quantityOnOrder"`
	QuantityOnPurchaseOrder int    `db:"quantity_on_purchase_order" json:"quantityOnPurchaseOrder"`
	QuantityReserved        int    `db:"quantity_reserved" json:"quantityReserved"`
}
