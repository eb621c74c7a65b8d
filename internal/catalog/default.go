package catalog

// Default returns the built-in nine-phase construction catalog with its ten
// standard building components. Deployments can replace it with a YAML file
// via Load; the ids here are stable and referenced by seeded demo data.
func Default() *Catalog {
	phases := []Phase{
		{ID: 1, Name: "Site Preparation", Sequence: 1, Description: "Clearing, leveling, and site setup", TypicalDurationDays: 7},
		{ID: 2, Name: "Foundation", Sequence: 2, Description: "Excavation, footing, and foundation work", TypicalDurationDays: 21},
		{ID: 3, Name: "Structure", Sequence: 3, Description: "Columns, beams, and structural elements", TypicalDurationDays: 45},
		{ID: 4, Name: "Masonry", Sequence: 4, Description: "Brickwork, blockwork, and wall construction", TypicalDurationDays: 30},
		{ID: 5, Name: "Roofing", Sequence: 5, Description: "Roof structure and covering", TypicalDurationDays: 15},
		{ID: 6, Name: "Electrical", Sequence: 6, Description: "Electrical wiring and installations", TypicalDurationDays: 20},
		{ID: 7, Name: "Plumbing", Sequence: 7, Description: "Plumbing pipes and fixtures", TypicalDurationDays: 18},
		{ID: 8, Name: "Finishing", Sequence: 8, Description: "Flooring, painting, and final touches", TypicalDurationDays: 25},
		{ID: 9, Name: "Testing & Commissioning", Sequence: 9, Description: "Final testing and handover", TypicalDurationDays: 7},
	}
	components := []Component{
		{ID: 1, Name: "Excavation", Category: "Earthwork", Unit: "Cubic Meter", TypicalCostPerUnit: 450.00, PhaseID: 2},
		{ID: 2, Name: "RCC Foundation", Category: "Concrete", Unit: "Cubic Meter", TypicalCostPerUnit: 8500.00, PhaseID: 2},
		{ID: 3, Name: "RCC Columns", Category: "Concrete", Unit: "Cubic Meter", TypicalCostPerUnit: 9500.00, PhaseID: 3},
		{ID: 4, Name: "RCC Beams", Category: "Concrete", Unit: "Cubic Meter", TypicalCostPerUnit: 9200.00, PhaseID: 3},
		{ID: 5, Name: "Brick Masonry", Category: "Masonry", Unit: "Cubic Meter", TypicalCostPerUnit: 4500.00, PhaseID: 4},
		{ID: 6, Name: "Roof Slab", Category: "Concrete", Unit: "Cubic Meter", TypicalCostPerUnit: 9800.00, PhaseID: 5},
		{ID: 7, Name: "Electrical Wiring", Category: "Electrical", Unit: "Square Meter", TypicalCostPerUnit: 180.00, PhaseID: 6},
		{ID: 8, Name: "Plumbing Pipes", Category: "Plumbing", Unit: "Meter", TypicalCostPerUnit: 120.00, PhaseID: 7},
		{ID: 9, Name: "Floor Tiles", Category: "Finishing", Unit: "Square Meter", TypicalCostPerUnit: 1800.00, PhaseID: 8},
		{ID: 10, Name: "Wall Paint", Category: "Finishing", Unit: "Square Meter", TypicalCostPerUnit: 45.00, PhaseID: 8},
	}

	c, err := New(phases, components)
	if err != nil {
		// built-in data is validated by tests; a failure here is a programming error
		panic(err)
	}
	return c
}
