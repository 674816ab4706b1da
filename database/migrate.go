// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"gorm.io/gorm"

	"ecoverse/models"
)

func allModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Task{},
		&models.DailyTask{},
		&models.UserTask{},
		&models.DailyProgress{},
		&models.Item{},
		&models.EnergyPack{},
		&models.Inventory{},
		&models.QuizResult{},
		&models.Notification{},
		&models.News{},
		&models.Announcement{},
	}
}

// Migrate runs the schema migration on the given connection.
// Exposed separately so tests can migrate their own temp database.
func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(allModels()...)
}

// DropAll removes every application table.
func DropAll(conn *gorm.DB) error {
	return conn.Migrator().DropTable(allModels()...)
}

// RunMigrations runs all database migrations
func RunMigrations() {
	conn := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := Migrate(conn); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes(conn)

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates the non-unique lookup indexes. The uniqueness
// constraints that guard the one-per-(user,date) and one-per-(user,task)
// invariants live on the models themselves.
func createIndexes(conn *gorm.DB) {
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_users_coins ON users(coins DESC)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)")

	conn.Exec("CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_quiz_results_completed ON quiz_results(completed_at DESC)")

	conn.Exec("CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications(user_id, is_read)")

	conn.Exec("CREATE INDEX IF NOT EXISTS idx_news_status ON news(status)")
	conn.Exec("CREATE INDEX IF NOT EXISTS idx_announcements_window ON announcements(start_date, end_date)")
}
