package generator

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Lumos-Labs-HQ/stockforge/internal/dataset"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testOptions(preset Preset, seed int64) Options {
	return Options{Preset: preset, Seed: seed, Now: testNow}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical seeds produced different datasets")
	}
}

func TestGenerateSeedsDiverge(t *testing.T) {
	a, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(testOptions(PresetSmall, 43))
	if err != nil {
		t.Fatal(err)
	}
	if a.Products[0].ProductID == b.Products[0].ProductID {
		t.Error("different seeds produced the same product IDs")
	}
}

func TestGeneratePresetCounts(t *testing.T) {
	cases := []struct {
		preset    Preset
		products  int
		vendors   int
		customers int
		locations int
	}{
		// Vendor and customer counts clamp to their name-pool sizes, so the
		// larger presets top out at the same party counts as small.
		{PresetSmall, 100, 15, 20, 3},
		{PresetMedium, 500, 15, 20, 4},
		{PresetLarge, 1000, 15, 20, 5},
	}
	for _, tc := range cases {
		ds, err := Generate(testOptions(tc.preset, 42))
		if err != nil {
			t.Fatalf("%s: %v", tc.preset, err)
		}
		if got := len(ds.Products); got != tc.products {
			t.Errorf("%s: products = %d, want %d", tc.preset, got, tc.products)
		}
		if got := len(ds.Vendors); got != tc.vendors {
			t.Errorf("%s: vendors = %d, want %d", tc.preset, got, tc.vendors)
		}
		if got := len(ds.Customers); got != tc.customers {
			t.Errorf("%s: customers = %d, want %d", tc.preset, got, tc.customers)
		}
		if got := len(ds.Locations); got != tc.locations {
			t.Errorf("%s: locations = %d, want %d", tc.preset, got, tc.locations)
		}
		if got := len(ds.PurchaseOrders); got != tc.vendors*2 {
			t.Errorf("%s: purchase orders = %d, want %d", tc.preset, got, tc.vendors*2)
		}
		if got := len(ds.SalesOrders); got != tc.customers*3 {
			t.Errorf("%s: sales orders = %d, want %d", tc.preset, got, tc.customers*3)
		}
	}
}

func TestGenerateReferenceData(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Currencies) != 1 || !ds.Currencies[0].IsBaseCurrency {
		t.Error("expected exactly one base currency")
	}
	if len(ds.Categories) != 12 {
		t.Errorf("categories = %d, want 12", len(ds.Categories))
	}
	defaults := 0
	for _, scheme := range ds.PricingSchemes {
		if scheme.IsDefault {
			defaults++
		}
	}
	if defaults != 1 {
		t.Errorf("default pricing schemes = %d, want 1", defaults)
	}
}

func TestGenerateReferentialClosure(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}

	products := make(map[string]bool)
	for _, p := range ds.Products {
		products[p.ProductID] = true
	}
	locations := make(map[string]bool)
	for _, l := range ds.Locations {
		locations[l.LocationID] = true
	}
	vendors := make(map[string]bool)
	for _, v := range ds.Vendors {
		vendors[v.VendorID] = true
	}
	pos := make(map[string]bool)
	for _, po := range ds.PurchaseOrders {
		pos[po.PurchaseOrderID] = true
		if !vendors[po.VendorID] {
			t.Errorf("purchase order %s references unknown vendor %s", po.OrderNumber, po.VendorID)
		}
		if !locations[po.LocationID] {
			t.Errorf("purchase order %s references unknown location %s", po.OrderNumber, po.LocationID)
		}
	}
	for _, line := range ds.PurchaseOrderLines {
		if !pos[line.PurchaseOrderID] {
			t.Errorf("purchase order line %s references unknown order %s", line.PurchaseOrderLineID, line.PurchaseOrderID)
		}
		if !products[line.ProductID] {
			t.Errorf("purchase order line %s references unknown product %s", line.PurchaseOrderLineID, line.ProductID)
		}
	}
	for _, inv := range ds.InventoryLines {
		if !products[inv.ProductID] || !locations[inv.LocationID] {
			t.Errorf("inventory line %s has a dangling reference", inv.InventoryLineID)
		}
	}
	for _, bom := range ds.ItemBOMs {
		if !products[bom.ProductID] || !products[bom.ChildProductID] {
			t.Errorf("bom row %s has a dangling product reference", bom.ItemBOMID)
		}
	}
	for _, mo := range ds.ManufacturingOrders {
		if !products[mo.ProductID] {
			t.Errorf("manufacturing order %s references unknown product %s", mo.OrderNumber, mo.ProductID)
		}
	}
}

func TestGenerateBOMsAcyclic(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}
	manufacturable := make(map[string]bool)
	for _, p := range ds.Products {
		if p.IsManufacturable {
			manufacturable[p.ProductID] = true
		}
	}
	for _, bom := range ds.ItemBOMs {
		if !manufacturable[bom.ProductID] {
			t.Errorf("bom parent %s is not manufacturable", bom.ProductID)
		}
		if manufacturable[bom.ChildProductID] {
			t.Errorf("bom component %s is manufacturable; cycles become possible", bom.ChildProductID)
		}
	}
}

func TestGenerateOrderTotals(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}
	for _, po := range ds.PurchaseOrders {
		sum := decimal.Zero
		for _, line := range ds.PurchaseOrderLines {
			if line.PurchaseOrderID == po.PurchaseOrderID {
				sum = sum.Add(line.LineTotal)
				if !line.UnitCost.Mul(intDecimal(line.Quantity)).Equal(line.LineTotal) {
					t.Errorf("order %s line %d: total %s != cost x qty", po.OrderNumber, line.LineNum, line.LineTotal)
				}
			}
		}
		if !sum.Equal(po.Subtotal) {
			t.Errorf("order %s: subtotal %s, lines sum %s", po.OrderNumber, po.Subtotal, sum)
		}
		if !po.Total.Equal(po.Subtotal) {
			t.Errorf("order %s: total %s != subtotal %s", po.OrderNumber, po.Total, po.Subtotal)
		}
	}
}

func TestGenerateStatusGatedFields(t *testing.T) {
	ds, err := Generate(testOptions(PresetMedium, 42))
	if err != nil {
		t.Fatal(err)
	}
	for _, mo := range ds.ManufacturingOrders {
		completed := mo.Status == "Completed"
		if completed != (mo.QuantityCompleted != nil) {
			t.Errorf("order %s status %s: quantityCompleted presence mismatch", mo.OrderNumber, mo.Status)
		}
		if completed && *mo.QuantityCompleted != mo.Quantity {
			t.Errorf("order %s: completed %d != quantity %d", mo.OrderNumber, *mo.QuantityCompleted, mo.Quantity)
		}
	}
	for _, line := range ds.PurchaseOrderLines {
		if line.QuantityReceived != 0 && line.QuantityReceived != line.Quantity {
			t.Errorf("line %s: partial receipt %d of %d", line.PurchaseOrderLineID, line.QuantityReceived, line.Quantity)
		}
	}
}

func TestGenerateCountSheetSnapshots(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}

	onHand := make(map[[2]string]int)
	for _, inv := range ds.InventoryLines {
		onHand[[2]string{inv.ProductID, inv.LocationID}] = inv.QuantityOnHand
	}
	countByID := make(map[string]dataset.StockCount)
	for _, sc := range ds.StockCounts {
		countByID[sc.StockCountID] = sc
	}
	sheetByID := make(map[string]dataset.CountSheet)
	for _, cs := range ds.CountSheets {
		sheetByID[cs.CountSheetID] = cs
	}

	if len(ds.CountSheetLines) == 0 {
		t.Fatal("no count sheet lines generated")
	}
	for _, line := range ds.CountSheetLines {
		sheet, ok := sheetByID[line.CountSheetID]
		if !ok {
			t.Fatalf("line %s references unknown sheet %s", line.CountSheetLineID, line.CountSheetID)
		}
		sc, ok := countByID[sheet.StockCountID]
		if !ok {
			t.Fatalf("sheet %s references unknown count %s", sheet.CountSheetID, sheet.StockCountID)
		}
		if want := onHand[[2]string{line.ProductID, sc.LocationID}]; line.SnapshotQuantity != want {
			t.Errorf("line %s: snapshot %d, on hand %d", line.CountSheetLineID, line.SnapshotQuantity, want)
		}
		counted := sc.Status == "InReview" || sc.Status == "Completed"
		if counted != (line.CountedQuantity != nil) {
			t.Errorf("line %s: countedQuantity presence mismatch for status %s", line.CountSheetLineID, sc.Status)
		}
		if line.CountedQuantity != nil && *line.CountedQuantity < 0 {
			t.Errorf("line %s: negative counted quantity %d", line.CountSheetLineID, *line.CountedQuantity)
		}
	}
}

func TestGenerateProductSummaries(t *testing.T) {
	ds, err := Generate(testOptions(PresetSmall, 42))
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.ProductSummaries) != len(ds.Products) {
		t.Fatalf("summaries = %d, want one per product (%d)", len(ds.ProductSummaries), len(ds.Products))
	}
	totals := make(map[string]int)
	for _, inv := range ds.InventoryLines {
		totals[inv.ProductID] += inv.QuantityOnHand
	}
	for _, summary := range ds.ProductSummaries {
		if summary.QuantityOnHand != totals[summary.ProductID] {
			t.Errorf("product %s: summary on hand %d, inventory total %d", summary.ProductID, summary.QuantityOnHand, totals[summary.ProductID])
		}
	}
}

func TestGenerateUnknownPreset(t *testing.T) {
	if _, err := Generate(Options{Preset: "gigantic", Seed: 1, Now: testNow}); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestGenerateCountOverrides(t *testing.T) {
	ds, err := Generate(Options{Preset: PresetSmall, Products: 25, Vendors: 5, Seed: 7, Now: testNow})
	if err != nil {
		t.Fatal(err)
	}
	if len(ds.Products) != 25 {
		t.Errorf("products = %d, want 25", len(ds.Products))
	}
	if len(ds.Vendors) != 5 {
		t.Errorf("vendors = %d, want 5", len(ds.Vendors))
	}
	// The unset counts still come from the preset.
	if len(ds.Customers) != 20 {
		t.Errorf("customers = %d, want 20", len(ds.Customers))
	}
}

func intDecimal(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
