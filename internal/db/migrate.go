package db

import (
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/types"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Documents + authoring state
		&types.Plan{},
		&types.QuestionnaireProgress{},
		&types.Refinement{},

		// Accountability
		&types.Milestone{},
		&types.CheckIn{},
		&types.Reminder{},
	)
}
