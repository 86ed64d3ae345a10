package dataset

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCollectionsCoverAllTables(t *testing.T) {
	d := &Dataset{}
	collections := d.Collections()

	if len(collections) != 38 {
		t.Fatalf("Collections() returned %d collections, want 38", len(collections))
	}

	seen := make(map[string]bool)
	for _, c := range collections {
		if c.Name == "" {
			t.Error("collection with empty name")
		}
		if seen[c.Name] {
			t.Errorf("duplicate collection name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestCollectionsDependencyOrder(t *testing.T) {
	// A collection that references another must come after it.
	deps := map[string][]string{
		"tax_codes":                     {"taxing_schemes"},
		"vendors":                       {"currencies", "payment_terms", "taxing_schemes"},
		"customers":                     {"currencies", "pricing_schemes", "payment_terms", "taxing_schemes"},
		"products":                      {"categories"},
		"product_barcodes":              {"products"},
		"inventory_lines":               {"products", "locations"},
		"item_boms":                     {"products"},
		"product_operations":            {"products", "operation_types"},
		"product_prices":                {"products", "pricing_schemes"},
		"reorder_settings":              {"products", "locations", "vendors"},
		"vendor_items":                  {"vendors", "products"},
		"purchase_orders":               {"vendors", "locations", "currencies"},
		"purchase_order_lines":          {"purchase_orders", "products"},
		"sales_orders":                  {"customers", "locations", "currencies"},
		"sales_order_lines":             {"sales_orders", "products"},
		"manufacturing_orders":          {"products", "locations"},
		"stock_transfer_lines":          {"stock_transfers", "products"},
		"stock_adjustments":             {"locations", "adjustment_reasons"},
		"stock_adjustment_lines":        {"stock_adjustments", "products"},
		"stock_counts":                  {"locations", "team_members"},
		"count_sheets":                  {"stock_counts", "team_members"},
		"count_sheet_lines":             {"count_sheets", "products"},
		"product_cost_adjustment_lines": {"product_cost_adjustments", "products"},
		"product_summary":               {"products", "locations"},
	}

	position := make(map[string]int)
	for i, c := range (&Dataset{}).Collections() {
		position[c.Name] = i
	}

	for name, requires := range deps {
		for _, dep := range requires {
			if position[name] <= position[dep] {
				t.Errorf("collection %q (pos %d) must come after %q (pos %d)",
					name, position[name], dep, position[dep])
			}
		}
	}
}

func TestColumnsMatchValues(t *testing.T) {
	record := PurchaseOrderLine{
		PurchaseOrderLineID: "a",
		PurchaseOrderID:     "b",
		ProductID:           "c",
		LineNum:             1,
		Description:         "Hex Bolt M10",
		Quantity:            25,
		UnitCost:            decimal.NewFromFloat(1.50),
		LineTotal:           decimal.NewFromFloat(37.50),
		Timestamp:           "2025-06-01T12:00:00Z",
	}

	columns, err := Columns(record)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	values, err := Values(record)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}

	if len(columns) != len(values) {
		t.Fatalf("got %d columns but %d values", len(columns), len(values))
	}
	if columns[0] != "purchase_order_line_id" {
		t.Errorf("first column = %q, want purchase_order_line_id", columns[0])
	}
	if values[0] != "a" {
		t.Errorf("first value = %v, want \"a\"", values[0])
	}
}

func TestValuesNilPointerBecomesNull(t *testing.T) {
	qty := 40
	withValue := ManufacturingOrder{Quantity: 40, QuantityCompleted: &qty}
	without := ManufacturingOrder{Quantity: 40}

	columns, err := Columns(without)
	if err != nil {
		t.Fatalf("Columns: %v", err)
	}
	idx := -1
	for i, c := range columns {
		if c == "quantity_completed" {
			idx = i
		}
	}
	if idx < 0 {
		t.Fatal("quantity_completed column not found")
	}

	values, err := Values(without)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values[idx] != nil {
		t.Errorf("nil pointer field: got %v, want nil", values[idx])
	}

	values, err = Values(withValue)
	if err != nil {
		t.Fatalf("Values: %v", err)
	}
	if values[idx] != 40 {
		t.Errorf("set pointer field: got %v, want 40", values[idx])
	}
}

func TestColumnsRejectsNonStruct(t *testing.T) {
	if _, err := Columns("not a struct"); err == nil {
		t.Error("Columns accepted a non-struct value")
	}
	if _, err := Values(42); err == nil {
		t.Error("Values accepted a non-struct value")
	}
}
