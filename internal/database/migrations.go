package database

import (
	"database/sql"
	"fmt"
)

// The schema is applied statement by statement on startup; every statement
// is idempotent so restarts are safe. Entry and payment rows reference the
// member id with a real foreign key on both drivers, and timestamps keep
// microsecond precision (DATETIME(6) on MySQL) so listing order matches
// write order.

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NULL,
		phone VARCHAR(20) NULL,
		created_at DATETIME(6) NOT NULL,
		PRIMARY KEY (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS entry_logs (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		member_id BIGINT UNSIGNED NOT NULL,
		timestamp DATETIME(6) NOT NULL,
		notes VARCHAR(255) NULL,
		PRIMARY KEY (id),
		KEY idx_entry_logs_member_id (member_id),
		CONSTRAINT fk_entry_logs_member FOREIGN KEY (member_id) REFERENCES members (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS payment_logs (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
		member_id BIGINT UNSIGNED NOT NULL,
		amount_cents BIGINT NOT NULL,
		timestamp DATETIME(6) NOT NULL,
		notes VARCHAR(255) NULL,
		PRIMARY KEY (id),
		KEY idx_payment_logs_member_id (member_id),
		CONSTRAINT fk_payment_logs_member FOREIGN KEY (member_id) REFERENCES members (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS members (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT,
		phone TEXT,
		created_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS entry_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		notes TEXT,
		FOREIGN KEY (member_id) REFERENCES members (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_entry_logs_member_id ON entry_logs (member_id)`,
	`CREATE TABLE IF NOT EXISTS payment_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		member_id INTEGER NOT NULL,
		amount_cents INTEGER NOT NULL,
		timestamp DATETIME NOT NULL,
		notes TEXT,
		FOREIGN KEY (member_id) REFERENCES members (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payment_logs_member_id ON payment_logs (member_id)`,
}

// Migrate creates the three tables for the given driver if they do not
// already exist.
func Migrate(db *sql.DB, driver string) error {
	var stmts []string
	switch driver {
	case DriverMySQL:
		stmts = mysqlSchema
	case DriverSQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("unknown database driver %q", driver)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
