// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"ecomission/models"

	"gorm.io/gorm"
)

// RunMigrations runs all database migrations against the global connection
// and seeds reference data. Any failure here is fatal: the engine refuses to
// start on a broken schema or an invalid level table.
func RunMigrations() {
	log.Println("🔄 Running database migrations...")

	if err := Migrate(GetDB()); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if err := Seed(GetDB()); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ All migrations completed successfully")
}

// Migrate applies the schema to the given connection. Kept separate from the
// global wiring so tests can run it against their own database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.TeamMember{},
		&models.Mission{},
		&models.Submission{},
		&models.Badge{},
		&models.UserBadge{},
		&models.LevelDefinition{},
		&models.TeamActivity{},
	); err != nil {
		return err
	}

	return createIndexes(db)
}

func createIndexes(db *gorm.DB) error {
	stmts := []string{
		// One open submission per (user, mission): pending and approved rows
		// are unique, rejected rows are free to pile up. This closes the
		// submit/submit race at the storage layer.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_submissions_open
			ON submissions(user_id, mission_id)
			WHERE status IN ('pending', 'approved')`,

		"CREATE INDEX IF NOT EXISTS idx_submissions_status_submitted ON submissions(status, submitted_at)",
		"CREATE INDEX IF NOT EXISTS idx_users_points ON users(points DESC)",
		"CREATE INDEX IF NOT EXISTS idx_missions_category_active ON missions(category, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_team_activities_team_created ON team_activities(team_id, created_at DESC)",
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
