package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gormDB, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			if err := gormDB.Exec("DELETE FROM attendances").Error; err != nil {
				log.Fatalf("failed to clear attendances: %v", err)
			}
			if err := gormDB.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		employees := []struct {
			ID         string
			Name       string
			Email      string
			Department string
		}{
			{"EMP-001", "Alice Hartono", "alice.hartono@example.com", "Engineering"},
			{"EMP-002", "Budi Santoso", "budi.santoso@example.com", "Finance"},
			{"EMP-003", "Citra Lestari", "citra.lestari@example.com", "People Ops"},
		}

		for _, e := range employees {
			var exists int
			row := gormDB.Raw("SELECT 1 FROM employees WHERE employee_id = ?", e.ID).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Println("employee already exists, skipping:", e.ID)
				continue
			}

			if err := gormDB.Exec(
				"INSERT INTO employees (employee_id, full_name, email, department, created_at, updated_at) VALUES (?, ?, ?, ?, now(), now())",
				e.ID, e.Name, e.Email, e.Department,
			).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.ID, err)
			}
			fmt.Println("Seeded employee:", e.ID)
		}

		// one Present mark for today per seeded employee; rerunning the
		// seeder must not violate the (employee_id, date) unique index
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		for _, e := range employees {
			var exists int
			row := gormDB.Raw("SELECT 1 FROM attendances WHERE employee_id = ? AND date = ?", e.ID, today).Row()
			if err := row.Scan(&exists); err == nil {
				fmt.Println("attendance already marked today, skipping:", e.ID)
				continue
			}

			if err := gormDB.Exec(
				"INSERT INTO attendances (employee_id, date, status, created_at, updated_at) VALUES (?, ?, 'Present', now(), now())",
				e.ID, today,
			).Error; err != nil {
				log.Fatalf("failed to insert attendance for %s: %v", e.ID, err)
			}
			fmt.Println("Seeded attendance for:", e.ID)
		}

		fmt.Println("Seeding complete")
	},
}
