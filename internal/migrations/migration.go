package migrations

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"siteops/internal/model"
)

// RunMigrations creates the schema and seeds reference data on first run
func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&model.User{},
		&model.Project{},
		&model.Task{},
		&model.TaskMaterial{},
		&model.TaskLabor{},
		&model.TaskDependency{},
		&model.MaterialCategory{},
		&model.Material{},
		&model.Supplier{},
		&model.MaterialPrice{},
		&model.LaborType{},
	)
	if err != nil {
		return err
	}

	if err := seedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

func seedDefaultData(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := &model.User{
			ID:             uuid.New(),
			Email:          "admin@siteops.local",
			FullName:       "System Administrator",
			HashedPassword: string(hash),
			Role:           model.RoleAdmin,
		}
		if err := db.Create(admin).Error; err != nil {
			return err
		}
		log.Println("Created default admin user")
	}

	var categoryCount int64
	if err := db.Model(&model.MaterialCategory{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		categories := []model.MaterialCategory{
			{ID: uuid.New(), Name: "Concrete & Cement", Description: "Cement, ready mix, sand, and aggregates", Level: 1},
			{ID: uuid.New(), Name: "Bricks & Blocks", Description: "Clay bricks, fly ash bricks, and blocks", Level: 1},
			{ID: uuid.New(), Name: "Steel & Metal", Description: "TMT bars and structural steel", Level: 1},
			{ID: uuid.New(), Name: "Electrical", Description: "Wiring, breakers, and fittings", Level: 1},
			{ID: uuid.New(), Name: "Plumbing", Description: "Pipes and sanitary fixtures", Level: 1},
			{ID: uuid.New(), Name: "Finishing", Description: "Tiles, flooring, and paint", Level: 1},
		}
		if err := db.Create(&categories).Error; err != nil {
			return err
		}

		materials := []model.Material{
			{ID: uuid.New(), Name: "Portland Cement (OPC 53 Grade)", CategoryID: categories[0].ID, Unit: "Bag (50kg)", BaseCostPerUnit: 350.00,
				Properties: `{"strength": "53 MPa", "setting_time": "45 min"}`, IsActive: true},
			{ID: uuid.New(), Name: "Ready Mix Concrete M25", CategoryID: categories[0].ID, Unit: "Cubic Meter", BaseCostPerUnit: 4500.00,
				Properties: `{"strength": "25 MPa", "aggregate_size": "20mm"}`, IsActive: true},
			{ID: uuid.New(), Name: "Clay Bricks (Standard)", CategoryID: categories[1].ID, Unit: "Piece", BaseCostPerUnit: 12.00,
				Properties: `{"size": "230x110x75mm", "strength": "3.5 MPa"}`, IsActive: true},
			{ID: uuid.New(), Name: "TMT Steel Bars (Fe 500D)", CategoryID: categories[2].ID, Unit: "Ton", BaseCostPerUnit: 65000.00,
				Properties: `{"grade": "Fe 500D", "yield_strength": "500 MPa"}`, IsActive: true},
			{ID: uuid.New(), Name: "Copper Wire (2.5 sqmm)", CategoryID: categories[3].ID, Unit: "Meter", BaseCostPerUnit: 45.00,
				Properties: `{"conductor": "Copper", "insulation": "PVC"}`, IsActive: true},
			{ID: uuid.New(), Name: "PVC Pipes (110mm)", CategoryID: categories[4].ID, Unit: "Meter", BaseCostPerUnit: 280.00,
				Properties: `{"diameter": "110mm", "pressure": "6kg/cm2"}`, IsActive: true},
			{ID: uuid.New(), Name: "Vitrified Tiles (60x60cm)", CategoryID: categories[5].ID, Unit: "Square Meter", BaseCostPerUnit: 1200.00,
				Properties: `{"size": "60x60cm", "thickness": "8mm"}`, IsActive: true},
		}
		if err := db.Create(&materials).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d material categories with %d materials", len(categories), len(materials))
	}

	var laborCount int64
	if err := db.Model(&model.LaborType{}).Count(&laborCount).Error; err != nil {
		return err
	}
	if laborCount == 0 {
		laborTypes := []model.LaborType{
			{ID: uuid.New(), Name: "Mason", Category: "Masonry", SkillLevel: "skilled", HourlyRate: 100, DailyRate: 800, Unit: "Day"},
			{ID: uuid.New(), Name: "Helper", Category: "General", SkillLevel: "unskilled", HourlyRate: 60, DailyRate: 450, Unit: "Day"},
			{ID: uuid.New(), Name: "Electrician", Category: "Electrical", SkillLevel: "skilled", HourlyRate: 120, DailyRate: 950, Unit: "Day"},
			{ID: uuid.New(), Name: "Plumber", Category: "Plumbing", SkillLevel: "skilled", HourlyRate: 110, DailyRate: 900, Unit: "Day"},
			{ID: uuid.New(), Name: "Carpenter", Category: "Carpentry", SkillLevel: "skilled", HourlyRate: 110, DailyRate: 850, Unit: "Day"},
			{ID: uuid.New(), Name: "Painter", Category: "Finishing", SkillLevel: "semi-skilled", HourlyRate: 90, DailyRate: 700, Unit: "Day"},
		}
		if err := db.Create(&laborTypes).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d labor types", len(laborTypes))
	}

	return nil
}
