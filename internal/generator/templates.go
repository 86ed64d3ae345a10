package generator

// Static template pools. These are immutable configuration data: the builder
// reads them, never writes them. Vendor and customer names are drawn without
// replacement, so those pools bound the respective entity counts.

type locationTemplate struct {
	Name string
	Abbr string
}

type vendorTemplate struct {
	Name           string
	Specialization string
	LeadTimeDays   int
}

type teamMemberTemplate struct {
	Name  string
	Email string
}

type productTemplate struct {
	NamePattern    string
	SKUPrefix      string
	UOM            string
	PriceMin       float64
	PriceMax       float64
	ReorderMin     int
	ReorderMax     int
	Manufacturable bool
}

type categoryTemplate struct {
	Name        string
	Description string
}

var categoryTemplates = []categoryTemplate{
	{"Fasteners", "Bolts, nuts, screws, and related hardware"},
	{"Raw Materials", "Steel, aluminum, plastics, and other base materials"},
	{"Bearings", "Ball bearings, roller bearings, bushings"},
	{"Electronics", "Circuit boards, sensors, controllers"},
	{"Hydraulics", "Pumps, valves, cylinders, hoses"},
	{"Seals & Gaskets", "O-rings, gaskets, sealing compounds"},
	{"Safety Equipment", "PPE, guards, safety devices"},
	{"Tooling", "Cutting tools, dies, fixtures"},
	{"Electrical", "Wiring, connectors, switches, motors"},
	{"Lubricants", "Oils, greases, cutting fluids"},
	{"Abrasives", "Grinding wheels, sandpaper, polishing compounds"},
	{"Packaging", "Boxes, pallets, stretch wrap, labels"},
}

var locationTemplates = []locationTemplate{
	{"Main Warehouse", "MAIN"},
	{"Secondary Storage", "SEC"},
	{"Production Floor", "PROD"},
	{"Receiving Dock", "RECV"},
	{"Shipping Area", "SHIP"},
}

var vendorTemplates = []vendorTemplate{
	{"Precision Fasteners Inc", "hardware", 7},
	{"Allied Steel Supply", "metals", 14},
	{"Midwest Industrial Components", "components", 10},
	{"Global Electronics Distributors", "electronics", 21},
	{"National Bearing Company", "bearings", 5},
	{"Thompson Plastics", "plastics", 12},
	{"Valley Machine Parts", "machined", 18},
	{"Premier Rubber Products", "rubber", 8},
	{"Central Hydraulics", "hydraulics", 14},
	{"United Electrical Supply", "electrical", 7},
	{"American Tubing Corp", "tubing", 10},
	{"Quality Seal Systems", "seals", 6},
	{"Industrial Adhesives Ltd", "adhesives", 5},
	{"Metro Packaging Solutions", "packaging", 3},
	{"Coastal Abrasives", "abrasives", 7},
}

var customerNames = []string{
	"Acme Manufacturing", "Summit Industries", "Pinnacle Products", "Atlas Fabrication",
	"Frontier Engineering", "Apex Machining", "Prime Assembly", "Titan Manufacturing",
	"Sterling Products", "Vanguard Industries", "Eagle Precision", "Liberty Manufacturing",
	"Patriot Products", "Champion Industries", "Victory Manufacturing", "Horizon Fabrication",
	"Pioneer Products", "Guardian Manufacturing", "Sentinel Industries", "Phoenix Assembly",
}

var teamMemberTemplates = []teamMemberTemplate{
	{"John Smith", "jsmith@company.com"},
	{"Sarah Johnson", "sjohnson@company.com"},
	{"Mike Williams", "mwilliams@company.com"},
	{"Emily Davis", "edavis@company.com"},
	{"Robert Brown", "rbrown@company.com"},
}

var adjustmentReasonNames = []string{
	"Damaged Goods", "Cycle Count Adjustment", "Shrinkage", "Found Inventory",
	"Quality Rejection", "Expired Product", "Customer Return", "Sample/Demo",
}

var operationTypeNames = []string{
	"Assembly", "Machining", "Welding", "Painting", "Inspection",
	"Packaging", "Testing", "Heat Treatment",
}

// productTemplates keys must match category names above; a category without
// templates is a configuration error at generation time.
var productTemplates = map[string][]productTemplate{
	"Fasteners": {
		{"Hex Bolt {size} x {length}", "HB", "EA", 0.05, 2.00, 100, 1000, false},
		{"Socket Cap Screw {size} x {length}", "SC", "EA", 0.10, 3.00, 50, 500, false},
		{"Hex Nut {size}", "HN", "EA", 0.02, 0.50, 200, 2000, false},
		{"Lock Washer {size}", "LW", "EA", 0.01, 0.25, 500, 5000, false},
		{"Flat Washer {size}", "FW", "EA", 0.01, 0.20, 500, 5000, false},
	},
	"Raw Materials": {
		{"Steel Plate {thickness} x {length}", "SP", "EA", 50, 500, 5, 20, false},
		{"Aluminum Bar {size} x {length}", "AB", "EA", 20, 200, 10, 50, false},
		{"Steel Round {diameter} x {length}", "SR", "EA", 15, 150, 10, 100, false},
		{"Plastic Sheet {material} {thickness}", "PL", "EA", 25, 250, 5, 25, false},
	},
	"Bearings": {
		{"Ball Bearing {size}", "BB", "EA", 5, 150, 10, 100, false},
		{"Roller Bearing {size}", "RB", "EA", 15, 300, 5, 50, false},
		{"Bushing {material} {diameter}", "BU", "EA", 2, 50, 20, 200, false},
		{"Pillow Block {size}", "PB", "EA", 25, 200, 5, 25, false},
	},
	"Electronics": {
		{"Proximity Sensor {size}", "PS", "EA", 25, 250, 5, 20, false},
		{"PLC Module {size}", "PLC", "EA", 100, 2000, 1, 5, false},
		{"Motor Controller {size}", "MC", "EA", 50, 500, 2, 10, true},
		{"Power Supply {size}", "PWR", "EA", 30, 300, 2, 15, false},
	},
	"Hydraulics": {
		{"Hydraulic Cylinder {diameter} x {length}", "HC", "EA", 100, 1500, 1, 5, true},
		{"Hydraulic Pump {size}", "HP", "EA", 200, 3000, 1, 3, true},
		{"Directional Valve {size}", "DV", "EA", 75, 500, 2, 10, false},
		{"Hydraulic Hose {diameter} x {length}", "HH", "EA", 15, 150, 5, 25, false},
	},
	"Seals & Gaskets": {
		{"O-Ring {material} {diameter}", "OR", "EA", 0.10, 5.00, 50, 500, false},
		{"Oil Seal {diameter}", "OS", "EA", 2, 50, 10, 100, false},
		{"Gasket Set {size}", "GS", "EA", 15, 150, 5, 25, true},
		{"V-Ring Seal {size}", "VR", "EA", 3, 25, 20, 100, false},
	},
	"Safety Equipment": {
		{"Safety Glasses {color}", "SG", "EA", 5, 50, 10, 50, false},
		{"Work Gloves {material} {size}", "WG", "PR", 5, 30, 20, 100, false},
		{"Ear Plugs {size}", "EP", "PR", 0.25, 5.00, 100, 500, false},
		{"Face Shield {size}", "FS", "EA", 10, 75, 5, 25, false},
	},
	"Tooling": {
		{"End Mill {diameter} {material}", "EM", "EA", 15, 200, 5, 25, false},
		{"Drill Bit {diameter} {material}", "DB", "EA", 5, 100, 10, 50, false},
		{"Insert {size} {grit}", "IN", "EA", 5, 50, 20, 100, false},
		{"Tap {size}", "TP", "EA", 10, 150, 5, 25, false},
	},
	"Electrical": {
		{"Wire Spool {color} {length}", "WR", "RL", 20, 200, 5, 25, false},
		{"Connector {size}", "CN", "EA", 1, 50, 20, 200, false},
		{"Switch {size}", "SW", "EA", 5, 100, 10, 50, false},
		{"Motor {size}", "MT", "EA", 100, 2000, 1, 5, true},
	},
	"Lubricants": {
		{"Machine Oil {size}", "MO", "GAL", 15, 100, 5, 20, false},
		{"Grease {size}", "GR", "EA", 5, 50, 10, 50, false},
		{"Cutting Fluid {size}", "CF", "GAL", 20, 150, 5, 25, false},
		{"Penetrating Oil {size}", "PO", "EA", 5, 25, 10, 50, false},
	},
	"Abrasives": {
		{"Grinding Wheel {diameter} {grit}", "GW", "EA", 10, 150, 5, 25, false},
		{"Sanding Disc {diameter} {grit}", "SD", "EA", 0.50, 10.00, 50, 500, false},
		{"Flap Disc {diameter} {grit}", "FD", "EA", 3, 25, 20, 100, false},
		{"Wire Brush {diameter}", "WB", "EA", 5, 50, 10, 50, false},
	},
	"Packaging": {
		{"Corrugated Box {size}", "BX", "EA", 0.50, 10.00, 100, 1000, false},
		{"Stretch Wrap {length}", "STW", "RL", 20, 100, 10, 50, false},
		{"Pallet {size}", "PLT", "EA", 10, 50, 20, 100, false},
		{"Packing Tape {size}", "PT", "RL", 3, 15, 20, 100, false},
	},
}

// Vocabularies for the {token} placeholders in product name patterns.
var dimensionVocab = map[string][]string{
	"size":      {"Small", "Medium", "Large", "XL", `1/4"`, `3/8"`, `1/2"`, `3/4"`, `1"`, "M6", "M8", "M10", "M12"},
	"length":    {"10mm", "15mm", "20mm", "25mm", "30mm", "40mm", "50mm", `1"`, `1.5"`, `2"`, `3"`, `4"`},
	"thickness": {`1/8"`, `1/4"`, `3/8"`, `1/2"`, `3/4"`, `1"`, "3mm", "6mm", "10mm", "12mm"},
	"diameter":  {`1/4"`, `3/8"`, `1/2"`, `3/4"`, `1"`, `1.5"`, `2"`, "6mm", "10mm", "12mm", "16mm", "20mm", "25mm"},
	"grit":      {"40", "60", "80", "100", "120", "150", "180", "220", "320"},
	"color":     {"Black", "Red", "Blue", "Green", "White", "Yellow"},
	"material":  {"Steel", "Stainless", "Aluminum", "Brass", "Bronze", "Nylon", "UHMW", "Delrin"},
}

// Weighted status pools: repetition sets the weight, as the generator picks
// uniformly.
var (
	purchaseOrderStatuses = []string{"Open", "Open", "Open", "Received", "Received", "PartiallyReceived"}
	salesOrderStatuses    = []string{"Open", "Open", "Shipped", "Shipped", "Shipped", "PartiallyShipped"}
	manufacturingStatuses = []string{"Open", "Open", "InProgress", "InProgress", "Completed"}
	transferStatuses      = []string{"Open", "InTransit", "Completed", "Completed"}
	stockCountStatuses    = []string{"Open", "InProgress", "InReview", "Completed"}
	countSheetStatuses    = []string{"Open", "InProgress"}
)
