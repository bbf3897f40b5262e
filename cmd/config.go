package cmd

import "time"

// Config carries the runtime settings read from the environment.
// DBHost left empty selects the in-memory store instead of PostgreSQL.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DelayedOrderThreshold is how long an order may sit in preparing
	// before the delayed order job escalates it to staff.
	DelayedOrderThreshold time.Duration
}
