// Package generator builds a complete, internally consistent snapshot of the
// manufacturing inventory schema from a seeded random source. Generation is
// strictly sequential and order-dependent: reference data first, then
// parties, then products and their detail records, then the order and stock
// documents that reference them. Identical (options, seed) pairs always
// produce identical output.
package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Lumos-Labs-HQ/stockforge/internal/dataset"
	"github.com/Lumos-Labs-HQ/stockforge/internal/rng"
)

// ErrNoTemplates is returned when a generated category has no product
// templates to draw from. This is a configuration error; generation stops
// before any products are built.
var ErrNoTemplates = errors.New("generator: no product templates for category")

// Generate builds the full entity graph for the given options. It is
// all-or-nothing: any error aborts the whole run and no partial dataset is
// returned. The run is single-threaded by design; determinism depends on
// every random decision flowing through one Source in one fixed order.
func Generate(opts Options) (*dataset.Dataset, error) {
	opts, err := opts.resolve()
	if err != nil {
		return nil, err
	}

	b := &builder{
		opts:      opts,
		rng:       rng.New(opts.Seed, opts.Now),
		ds:        &dataset.Dataset{},
		cost:      make(map[string]decimal.Decimal),
		price:     make(map[string]decimal.Decimal),
		inventory: make(map[invKey]int),
		onHand:    make(map[string]int),
		leadTime:  make(map[string]int),
		seenSKUs:  make(map[string]bool),
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"reference data", b.buildReferenceData},
		{"team members", b.buildTeamAndCustomFields},
		{"parties", b.buildParties},
		{"products", b.buildProducts},
		{"bills of materials", b.buildBOMs},
		{"purchase orders", b.buildPurchaseOrders},
		{"sales orders", b.buildSalesOrders},
		{"manufacturing orders", b.buildManufacturingOrders},
		{"stock transfers", b.buildStockTransfers},
		{"stock adjustments", b.buildStockAdjustments},
		{"cost adjustments", b.buildCostAdjustments},
		{"stock counts", b.buildStockCounts},
		{"product summaries", b.buildProductSummaries},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return nil, fmt.Errorf("generate %s: %w", step.name, err)
		}
	}
	return b.ds, nil
}

type invKey struct {
	product  string
	location string
}

// builder holds the in-flight dataset plus the foreign-key indexes later
// steps read. The indexes replace linear scans over the collections and make
// the "referenced record must already exist" invariant explicit.
type builder struct {
	opts Options
	rng  *rng.Source
	ds   *dataset.Dataset
	err  error

	cost      map[string]decimal.Decimal // product -> vendor item cost
	price     map[string]decimal.Decimal // product -> default-scheme unit price
	inventory map[invKey]int             // product+location -> on-hand quantity
	onHand    map[string]int             // product -> on-hand total across locations
	leadTime  map[string]int             // vendor -> template lead time days
	seenSKUs  map[string]bool

	manufacturable []dataset.Product
	stockProducts  []dataset.Product
}

// pick and pickN record the first empty-pick error on the builder so the
// owning step can return it; after an error the zero value flows through the
// rest of the step and the run aborts at the step boundary.
func pick[T any](b *builder, items []T) T {
	v, err := rng.Pick(b.rng, items)
	if err != nil && b.err == nil {
		b.err = err
	}
	return v
}

func pickN[T any](b *builder, items []T, n int) []T {
	v, err := rng.PickN(b.rng, items, n)
	if err != nil && b.err == nil {
		b.err = err
	}
	return v
}

func (b *builder) money(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(b.rng.RangeFloat(min, max)).Round(2)
}

func (b *builder) buildReferenceData() error {
	ds, r := b.ds, b.rng

	ds.Currencies = []dataset.Currency{{
		CurrencyID:     r.UUID(),
		Name:           "US Dollar",
		Code:           "USD",
		Symbol:         "$",
		ExchangeRate:   decimal.NewFromInt(1),
		IsBaseCurrency: true,
		Timestamp:      r.Timestamp(),
	}}

	discountDays := 10
	discountPercent := decimal.NewFromInt(2)
	ds.PaymentTerms = []dataset.PaymentTerms{
		{PaymentTermsID: r.UUID(), Name: "Net 30", NetDays: 30, Timestamp: r.Timestamp()},
		{PaymentTermsID: r.UUID(), Name: "Net 60", NetDays: 60, Timestamp: r.Timestamp()},
		{PaymentTermsID: r.UUID(), Name: "Due on Receipt", NetDays: 0, Timestamp: r.Timestamp()},
		{PaymentTermsID: r.UUID(), Name: "2/10 Net 30", NetDays: 30, DiscountDays: &discountDays, DiscountPercent: &discountPercent, Timestamp: r.Timestamp()},
	}

	// The first scheme is the default one.
	ds.PricingSchemes = []dataset.PricingScheme{
		{PricingSchemeID: r.UUID(), Name: "Standard", IsDefault: true, Timestamp: r.Timestamp()},
		{PricingSchemeID: r.UUID(), Name: "Wholesale", Timestamp: r.Timestamp()},
		{PricingSchemeID: r.UUID(), Name: "Preferred", Timestamp: r.Timestamp()},
	}

	ds.TaxingSchemes = []dataset.TaxingScheme{
		{TaxingSchemeID: r.UUID(), Name: "Standard Tax", Timestamp: r.Timestamp()},
		{TaxingSchemeID: r.UUID(), Name: "Tax Exempt", Timestamp: r.Timestamp()},
	}

	// One default tax code per scheme, the first candidate in each.
	ds.TaxCodes = []dataset.TaxCode{
		{TaxCodeID: r.UUID(), TaxingSchemeID: ds.TaxingSchemes[0].TaxingSchemeID, Name: "Sales Tax", Rate: decimal.NewFromFloat(8.25), IsDefault: true, Timestamp: r.Timestamp()},
		{TaxCodeID: r.UUID(), TaxingSchemeID: ds.TaxingSchemes[0].TaxingSchemeID, Name: "Reduced Rate", Rate: decimal.NewFromInt(5), Timestamp: r.Timestamp()},
		{TaxCodeID: r.UUID(), TaxingSchemeID: ds.TaxingSchemes[1].TaxingSchemeID, Name: "Exempt", Rate: decimal.Zero, IsDefault: true, Timestamp: r.Timestamp()},
	}

	for _, name := range adjustmentReasonNames {
		ds.AdjustmentReasons = append(ds.AdjustmentReasons, dataset.AdjustmentReason{
			AdjustmentReasonID: r.UUID(),
			Name:               name,
			IsActive:           true,
			Timestamp:          r.Timestamp(),
		})
	}

	for _, name := range operationTypeNames {
		ds.OperationTypes = append(ds.OperationTypes, dataset.OperationType{
			OperationTypeID: r.UUID(),
			Name:            name,
			Timestamp:       r.Timestamp(),
		})
	}

	for _, ct := range categoryTemplates {
		ds.Categories = append(ds.Categories, dataset.Category{
			CategoryID:  r.UUID(),
			Name:        ct.Name,
			Description: ct.Description,
			IsActive:    true,
			Timestamp:   r.Timestamp(),
		})
	}

	for _, lt := range locationTemplates[:b.opts.Locations] {
		ds.Locations = append(ds.Locations, dataset.Location{
			LocationID:   r.UUID(),
			Name:         lt.Name,
			Abbreviation: lt.Abbr,
			IsActive:     true,
			IsShippable:  lt.Abbr == "SHIP",
			IsReceivable: lt.Abbr == "RECV" || lt.Abbr == "MAIN",
			Timestamp:    r.Timestamp(),
		})
	}
	return b.err
}

func (b *builder) buildTeamAndCustomFields() error {
	ds, r := b.ds, b.rng

	for _, tm := range teamMemberTemplates {
		ds.TeamMembers = append(ds.TeamMembers, dataset.TeamMember{
			TeamMemberID: r.UUID(),
			Name:         tm.Name,
			Email:        tm.Email,
			IsActive:     true,
		})
	}

	ds.CustomFieldDefinitions = []dataset.CustomFieldDefinition{
		{CustomFieldDefinitionID: r.UUID(), Label: "Project Code", PropertyName: "custom1", CustomFieldType: "text", EntityType: "salesOrder", IsActive: true},
		{CustomFieldDefinitionID: r.UUID(), Label: "Priority", PropertyName: "custom2", CustomFieldType: "dropdown", EntityType: "salesOrder", IsActive: true},
		{CustomFieldDefinitionID: r.UUID(), Label: "Approved By", PropertyName: "custom1", CustomFieldType: "text", EntityType: "purchaseOrder", IsActive: true},
		{CustomFieldDefinitionID: r.UUID(), Label: "Bin Location", PropertyName: "custom1", CustomFieldType: "text", EntityType: "product", IsActive: true},
	}

	ds.CustomFieldDropdownOptions = []dataset.CustomFieldDropdownOption{
		{ID: r.UUID(), EntityType: "salesOrder", PropertyName: "custom2", DropdownOptions: `["Low","Medium","High","Critical"]`},
	}

	ds.CustomFieldSettings = []dataset.CustomFieldSettings{{
		CustomFieldsID:            r.UUID(),
		PurchaseOrderCustom1Print: true,
		SalesOrderCustom1Print:    true,
		SalesOrderCustom2Print:    true,
	}}
	return b.err
}

func (b *builder) buildParties() error {
	ds, r := b.ds, b.rng

	for _, vt := range rng.Shuffle(r, vendorTemplates)[:b.opts.Vendors] {
		vendorID := r.UUID()
		b.leadTime[vendorID] = vt.LeadTimeDays
		ds.Vendors = append(ds.Vendors, dataset.Vendor{
			VendorID:       vendorID,
			Name:           vt.Name,
			VendorCode:     codeFromName(vt.Name),
			IsActive:       true,
			CurrencyID:     ds.Currencies[0].CurrencyID,
			PaymentTermsID: pick(b, ds.PaymentTerms).PaymentTermsID,
			TaxingSchemeID: pick(b, ds.TaxingSchemes).TaxingSchemeID,
			Timestamp:      r.Timestamp(),
		})
	}

	for _, name := range rng.Shuffle(r, customerNames)[:b.opts.Customers] {
		ds.Customers = append(ds.Customers, dataset.Customer{
			CustomerID:      r.UUID(),
			Name:            name,
			CustomerCode:    codeFromName(name),
			IsActive:        true,
			CurrencyID:      ds.Currencies[0].CurrencyID,
			PricingSchemeID: pick(b, ds.PricingSchemes).PricingSchemeID,
			PaymentTermsID:  pick(b, ds.PaymentTerms).PaymentTermsID,
			TaxingSchemeID:  pick(b, ds.TaxingSchemes).TaxingSchemeID,
			Timestamp:       r.Timestamp(),
		})
	}
	return b.err
}

// codeFromName derives a party display code from the initials of the name.
func codeFromName(name string) string {
	var code strings.Builder
	for _, word := range strings.Fields(name) {
		code.WriteString(strings.ToUpper(word[:1]))
	}
	return code.String()
}

var patternToken = regexp.MustCompile(`\{(\w+)\}`)

// expandPattern fills the {token} placeholders of a product name pattern from
// the dimension vocabularies, falling back to the size vocabulary for tokens
// without one of their own.
func (b *builder) expandPattern(pattern string) string {
	return patternToken.ReplaceAllStringFunc(pattern, func(match string) string {
		token := match[1 : len(match)-1]
		vocab, ok := dimensionVocab[token]
		if !ok {
			vocab = dimensionVocab["size"]
		}
		return pick(b, vocab)
	})
}

var schemeMultipliers = map[string]decimal.Decimal{
	"Wholesale": decimal.NewFromFloat(0.85),
	"Preferred": decimal.NewFromFloat(0.90),
}

func (b *builder) buildProducts() error {
	ds, r := b.ds, b.rng

	for i := 0; i < b.opts.Products; i++ {
		category := pick(b, ds.Categories)
		if b.err != nil {
			return b.err
		}
		templates := productTemplates[category.Name]
		if len(templates) == 0 {
			return fmt.Errorf("%w: %s", ErrNoTemplates, category.Name)
		}
		tpl := pick(b, templates)
		vendor := pick(b, ds.Vendors)
		if b.err != nil {
			return b.err
		}

		productID := r.UUID()
		name := b.expandPattern(tpl.NamePattern)
		sku := b.nextSKU(tpl.SKUPrefix)
		unitPrice := b.money(tpl.PriceMin, tpl.PriceMax)
		cost := unitPrice.Mul(decimal.NewFromFloat(r.RangeFloat(0.4, 0.7))).Round(2)

		itemType := "Stock"
		if tpl.Manufacturable {
			itemType = "Assembly"
		}

		product := dataset.Product{
			ProductID:        productID,
			Name:             name,
			Description:      fmt.Sprintf("%s (%s)", name, category.Name),
			SKU:              sku,
			ItemType:         itemType,
			IsActive:         true,
			CategoryID:       category.CategoryID,
			StandardUOMName:  tpl.UOM,
			IsManufacturable: tpl.Manufacturable,
			Timestamp:        r.Timestamp(),
		}
		ds.Products = append(ds.Products, product)
		if tpl.Manufacturable {
			b.manufacturable = append(b.manufacturable, product)
		} else {
			b.stockProducts = append(b.stockProducts, product)
		}

		// Most products carry a barcode.
		if r.Bool(0.8) {
			ds.ProductBarcodes = append(ds.ProductBarcodes, dataset.ProductBarcode{
				ProductBarcodeID: r.UUID(),
				ProductID:        productID,
				Barcode:          r.Barcode(),
				LineNum:          1,
				Timestamp:        r.Timestamp(),
			})
		}

		// One inventory line per location, omitted when the quantity is zero.
		for _, location := range ds.Locations {
			qty := r.Range(0, 200)
			if qty == 0 {
				continue
			}
			ds.InventoryLines = append(ds.InventoryLines, dataset.InventoryLine{
				InventoryLineID: r.UUID(),
				ProductID:       productID,
				LocationID:      location.LocationID,
				QuantityOnHand:  qty,
				Timestamp:       r.Timestamp(),
			})
			b.inventory[invKey{productID, location.LocationID}] = qty
			b.onHand[productID] += qty
		}

		// One price per pricing scheme.
		for _, scheme := range ds.PricingSchemes {
			price := unitPrice
			if m, ok := schemeMultipliers[scheme.Name]; ok {
				price = unitPrice.Mul(m).Round(2)
			}
			ds.ProductPrices = append(ds.ProductPrices, dataset.ProductPrice{
				ProductPriceID:  r.UUID(),
				ProductID:       productID,
				PricingSchemeID: scheme.PricingSchemeID,
				PriceType:       "Fixed",
				UnitPrice:       price,
				Timestamp:       r.Timestamp(),
			})
		}
		b.price[productID] = unitPrice

		// Reorder settings at the primary location.
		ds.ReorderSettings = append(ds.ReorderSettings, dataset.ReorderSetting{
			ReorderSettingsID: r.UUID(),
			ProductID:         productID,
			LocationID:        ds.Locations[0].LocationID,
			VendorID:          vendor.VendorID,
			EnableReordering:  true,
			ReorderMethod:     "ReorderPoint",
			ReorderPoint:      r.Range(tpl.ReorderMin, tpl.ReorderMax),
			ReorderQuantity:   r.Range(tpl.ReorderMin, tpl.ReorderMax),
			Timestamp:         r.Timestamp(),
		})

		ds.VendorItems = append(ds.VendorItems, dataset.VendorItem{
			VendorItemID:   r.UUID(),
			VendorID:       vendor.VendorID,
			ProductID:      productID,
			VendorItemCode: sku,
			Cost:           cost,
			LeadTimeDays:   b.vendorItemLeadTime(vendor.VendorID),
			LineNum:        1,
			Timestamp:      r.Timestamp(),
		})
		b.cost[productID] = cost
	}
	return b.err
}

// nextSKU synthesizes a category-prefixed SKU. Uniqueness is best effort:
// a colliding numeric suffix is redrawn a few times, then accepted.
func (b *builder) nextSKU(prefix string) string {
	sku := fmt.Sprintf("%s-%d", prefix, b.rng.Range(1000, 9999))
	for retry := 0; b.seenSKUs[sku] && retry < 3; retry++ {
		sku = fmt.Sprintf("%s-%d", prefix, b.rng.Range(1000, 9999))
	}
	b.seenSKUs[sku] = true
	return sku
}

// vendorItemLeadTime jitters the vendor's template lead time, at least a day.
func (b *builder) vendorItemLeadTime(vendorID string) int {
	days := b.leadTime[vendorID] + b.rng.Range(-2, 7)
	if days < 1 {
		days = 1
	}
	return days
}

func (b *builder) buildBOMs() error {
	ds, r := b.ds, b.rng

	for _, product := range b.manufacturable {
		// Components come only from the non-manufacturable partition, so a
		// bill of materials can never cycle.
		components := pickN(b, b.stockProducts, r.Range(2, 5))
		for _, component := range components {
			ds.ItemBOMs = append(ds.ItemBOMs, dataset.ItemBOM{
				ItemBOMID:      r.UUID(),
				ProductID:      product.ProductID,
				ChildProductID: component.ProductID,
				Quantity:       r.Range(1, 10),
				UOMName:        component.StandardUOMName,
				Timestamp:      r.Timestamp(),
			})
		}

		operations := pickN(b, ds.OperationTypes, r.Range(1, 3))
		for i, op := range operations {
			ds.ProductOperations = append(ds.ProductOperations, dataset.ProductOperation{
				ProductOperationID: r.UUID(),
				ProductID:          product.ProductID,
				OperationTypeID:    op.OperationTypeID,
				LineNum:            i + 1,
				Instructions:       fmt.Sprintf("Perform %s operation", op.Name),
				EstimatedMinutes:   r.Range(15, 120),
				Cost:               b.money(10, 100),
				Timestamp:          r.Timestamp(),
			})
		}
	}
	return b.err
}

func (b *builder) buildPurchaseOrders() error {
	ds, r := b.ds, b.rng

	for i := 0; i < len(ds.Vendors)*2; i++ {
		vendor := pick(b, ds.Vendors)
		location := pick(b, ds.Locations)
		poID := r.UUID()
		status := pick(b, purchaseOrderStatuses)

		po := dataset.PurchaseOrder{
			PurchaseOrderID: poID,
			OrderNumber:     fmt.Sprintf("PO-%d", 1000+i),
			VendorID:        vendor.VendorID,
			Status:          status,
			OrderDate:       r.Date(90),
			ExpectedDate:    r.Date(30),
			LocationID:      location.LocationID,
			CurrencyID:      ds.Currencies[0].CurrencyID,
			ExchangeRate:    decimal.NewFromInt(1),
			Timestamp:       r.Timestamp(),
		}

		subtotal := decimal.Zero
		for j, product := range pickN(b, ds.Products, r.Range(1, 5)) {
			qty := r.Range(10, 100)
			unitCost, ok := b.cost[product.ProductID]
			if !ok {
				unitCost = b.money(5, 100)
			}
			lineTotal := unitCost.Mul(decimal.NewFromInt(int64(qty)))
			subtotal = subtotal.Add(lineTotal)

			received := 0
			if status == "Received" {
				received = qty
			}
			ds.PurchaseOrderLines = append(ds.PurchaseOrderLines, dataset.PurchaseOrderLine{
				PurchaseOrderLineID: r.UUID(),
				PurchaseOrderID:     poID,
				ProductID:           product.ProductID,
				LineNum:             j + 1,
				Description:         product.Name,
				Quantity:            qty,
				UnitCost:            unitCost,
				LineTotal:           lineTotal,
				QuantityReceived:    received,
				Timestamp:           r.Timestamp(),
			})
		}

		// Totals are the exact sum of the lines, set only after all lines
		// for this header exist.
		po.Subtotal = subtotal
		po.Total = subtotal
		ds.PurchaseOrders = append(ds.PurchaseOrders, po)
	}
	return b.err
}

func (b *builder) buildSalesOrders() error {
	ds, r := b.ds, b.rng

	for i := 0; i < len(ds.Customers)*3; i++ {
		customer := pick(b, ds.Customers)
		location := pick(b, ds.Locations)
		soID := r.UUID()
		status := pick(b, salesOrderStatuses)

		so := dataset.SalesOrder{
			SalesOrderID:     soID,
			OrderNumber:      fmt.Sprintf("SO-%d", 2000+i),
			CustomerID:       customer.CustomerID,
			Status:           status,
			OrderDate:        r.Date(90),
			ExpectedShipDate: r.Date(14),
			LocationID:       location.LocationID,
			CurrencyID:       ds.Currencies[0].CurrencyID,
			ExchangeRate:     decimal.NewFromInt(1),
			Timestamp:        r.Timestamp(),
		}

		subtotal := decimal.Zero
		for j, product := range pickN(b, ds.Products, r.Range(1, 5)) {
			qty := r.Range(1, 50)
			unitPrice, ok := b.price[product.ProductID]
			if !ok {
				unitPrice = b.money(10, 200)
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(qty)))
			subtotal = subtotal.Add(lineTotal)

			shipped := 0
			if status == "Shipped" {
				shipped = qty
			}
			ds.SalesOrderLines = append(ds.SalesOrderLines, dataset.SalesOrderLine{
				SalesOrderLineID: r.UUID(),
				SalesOrderID:     soID,
				ProductID:        product.ProductID,
				LineNum:          j + 1,
				Description:      product.Name,
				Quantity:         qty,
				UnitPrice:        unitPrice,
				LineTotal:        lineTotal,
				QuantityPicked:   shipped,
				QuantityShipped:  shipped,
				Timestamp:        r.Timestamp(),
			})
		}

		so.Subtotal = subtotal
		so.Total = subtotal
		ds.SalesOrders = append(ds.SalesOrders, so)
	}
	return b.err
}

func (b *builder) buildManufacturingOrders() error {
	ds, r := b.ds, b.rng

	for i := 0; i < len(b.manufacturable)/2; i++ {
		product := pick(b, b.manufacturable)
		location := pick(b, ds.Locations)
		status := pick(b, manufacturingStatuses)
		qty := r.Range(10, 100)

		mo := dataset.ManufacturingOrder{
			ManufacturingOrderID: r.UUID(),
			OrderNumber:          fmt.Sprintf("MO-%d", 3000+i),
			ProductID:            product.ProductID,
			Status:               status,
			Quantity:             qty,
			OrderDate:            r.Date(60),
			ExpectedDate:         r.Date(30),
			LocationID:           location.LocationID,
			Timestamp:            r.Timestamp(),
		}
		if status == "Completed" {
			completed := qty
			mo.QuantityCompleted = &completed
		}
		ds.ManufacturingOrders = append(ds.ManufacturingOrders, mo)
	}
	return b.err
}

func (b *builder) buildStockTransfers() error {
	ds, r := b.ds, b.rng

	// Transfers need two distinct endpoints.
	if len(ds.Locations) < 2 {
		return nil
	}

	count := r.Range(5, 10)
	for i := 0; i < count; i++ {
		endpoints := pickN(b, ds.Locations, 2)
		if b.err != nil {
			return b.err
		}
		transferID := r.UUID()

		ds.StockTransfers = append(ds.StockTransfers, dataset.StockTransfer{
			StockTransferID: transferID,
			TransferNumber:  fmt.Sprintf("TR-%d", 4000+i),
			Status:          pick(b, transferStatuses),
			TransferDate:    r.Date(30),
			FromLocationID:  endpoints[0].LocationID,
			ToLocationID:    endpoints[1].LocationID,
			Timestamp:       r.Timestamp(),
		})

		for j, product := range pickN(b, ds.Products, r.Range(1, 4)) {
			ds.StockTransferLines = append(ds.StockTransferLines, dataset.StockTransferLine{
				StockTransferLineID: r.UUID(),
				StockTransferID:     transferID,
				ProductID:           product.ProductID,
				LineNum:             j + 1,
				Quantity:            r.Range(5, 50),
				Timestamp:           r.Timestamp(),
			})
		}
	}
	return b.err
}

func (b *builder) buildStockAdjustments() error {
	ds, r := b.ds, b.rng

	count := r.Range(5, 10)
	for i := 0; i < count; i++ {
		location := pick(b, ds.Locations)
		reason := pick(b, ds.AdjustmentReasons)
		adjustmentID := r.UUID()

		ds.StockAdjustments = append(ds.StockAdjustments, dataset.StockAdjustment{
			StockAdjustmentID:  adjustmentID,
			AdjustmentNumber:   fmt.Sprintf("ADJ-%d", 5000+i),
			AdjustmentDate:     r.Date(60),
			LocationID:         location.LocationID,
			AdjustmentReasonID: reason.AdjustmentReasonID,
			Timestamp:          r.Timestamp(),
		})

		for j, product := range pickN(b, ds.Products, r.Range(1, 3)) {
			qty := r.Range(1, 20)
			if r.Bool(0.5) {
				qty = -qty
			}
			ds.StockAdjustmentLines = append(ds.StockAdjustmentLines, dataset.StockAdjustmentLine{
				StockAdjustmentLineID: r.UUID(),
				StockAdjustmentID:     adjustmentID,
				ProductID:             product.ProductID,
				LineNum:               j + 1,
				Quantity:              qty,
				Timestamp:             r.Timestamp(),
			})
		}
	}
	return b.err
}

var fallbackCost = decimal.NewFromInt(10)

func (b *builder) buildCostAdjustments() error {
	ds, r := b.ds, b.rng

	count := r.Range(2, 5)
	for i := 0; i < count; i++ {
		adjustmentID := r.UUID()

		ds.ProductCostAdjustments = append(ds.ProductCostAdjustments, dataset.ProductCostAdjustment{
			ProductCostAdjustmentID: adjustmentID,
			AdjustmentNumber:        fmt.Sprintf("CA-%d", 6000+i),
			AdjustmentDate:          r.Date(90),
			Remarks:                 "Periodic cost review",
			Timestamp:               r.Timestamp(),
		})

		for j, product := range pickN(b, ds.Products, r.Range(2, 6)) {
			oldCost, ok := b.cost[product.ProductID]
			if !ok {
				oldCost = fallbackCost
			}
			newCost := oldCost.Mul(decimal.NewFromFloat(r.RangeFloat(0.9, 1.15))).Round(2)

			ds.ProductCostAdjustmentLines = append(ds.ProductCostAdjustmentLines, dataset.ProductCostAdjustmentLine{
				ProductCostAdjustmentLineID: r.UUID(),
				ProductCostAdjustmentID:     adjustmentID,
				ProductID:                   product.ProductID,
				LineNum:                     j + 1,
				OldCost:                     oldCost,
				NewCost:                     newCost,
				Timestamp:                   r.Timestamp(),
			})
		}
	}
	return b.err
}

func (b *builder) buildStockCounts() error {
	ds, r := b.ds, b.rng

	count := r.Range(2, 4)
	for i := 0; i < count; i++ {
		location := pick(b, ds.Locations)
		assignee := pick(b, ds.TeamMembers)
		stockCountID := r.UUID()
		status := pick(b, stockCountStatuses)
		counted := status == "InReview" || status == "Completed"

		sc := dataset.StockCount{
			StockCountID:           stockCountID,
			StockCountNumber:       fmt.Sprintf("SC-%d", 7000+i),
			Status:                 status,
			LocationID:             location.LocationID,
			AssignedToTeamMemberID: assignee.TeamMemberID,
			IsPrepared:             true,
			IsStarted:              status != "Open",
			IsReviewed:             counted,
			IsCompleted:            status == "Completed",
			Timestamp:              r.Timestamp(),
		}
		if status != "Open" {
			started := r.Date(30)
			sc.StartedDate = &started
		}
		if status == "Completed" {
			completed := r.Date(7)
			sc.CompletedDate = &completed
		}
		ds.StockCounts = append(ds.StockCounts, sc)

		sheets := r.Range(1, 3)
		for s := 0; s < sheets; s++ {
			countSheetID := r.UUID()
			sheetStatus := pick(b, countSheetStatuses)
			if status == "Completed" {
				sheetStatus = "Completed"
			}

			ds.CountSheets = append(ds.CountSheets, dataset.CountSheet{
				CountSheetID:           countSheetID,
				StockCountID:           stockCountID,
				SheetNumber:            s + 1,
				Status:                 sheetStatus,
				AssignedToTeamMemberID: pick(b, ds.TeamMembers).TeamMemberID,
				IsCompleted:            status == "Completed",
				Timestamp:              r.Timestamp(),
			})

			for _, product := range pickN(b, ds.Products, r.Range(3, 8)) {
				// Snapshot what was on hand at this count's location when
				// the count was created; zero when the product has no
				// inventory line there.
				snapshot := b.inventory[invKey{product.ProductID, location.LocationID}]

				line := dataset.CountSheetLine{
					CountSheetLineID: r.UUID(),
					CountSheetID:     countSheetID,
					ProductID:        product.ProductID,
					Description:      product.Name,
					CountedUOM:       product.StandardUOMName,
					SnapshotQuantity: snapshot,
					SnapshotUOM:      product.StandardUOMName,
					Timestamp:        r.Timestamp(),
				}
				if counted {
					countedQty := snapshot + r.Range(-5, 5)
					if countedQty < 0 {
						countedQty = 0
					}
					line.CountedQuantity = &countedQty
				}
				ds.CountSheetLines = append(ds.CountSheetLines, line)
			}
		}
	}
	return b.err
}

// buildProductSummaries emits the precomputed per-product aggregate at the
// primary location, from the on-hand totals accumulated while the inventory
// lines were built. The summary is a generation-time cache, never recomputed.
func (b *builder) buildProductSummaries() error {
	ds, r := b.ds, b.rng

	for _, product := range ds.Products {
		total := b.onHand[product.ProductID]
		ds.ProductSummaries = append(ds.ProductSummaries, dataset.ProductSummary{
			ProductSummaryID:  r.UUID(),
			ProductID:         product.ProductID,
			LocationID:        ds.Locations[0].LocationID,
			QuantityOnHand:    total,
			QuantityAvailable: total,
		})
	}
	return b.err
}
