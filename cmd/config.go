package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SweepCron is the pickup reminder schedule, "@hourly" when empty.
	SweepCron string
	// RemindAfter is how long after completion the first pickup reminder is sent.
	RemindAfter time.Duration
	// ExpireAfter is how long after completion an uncollected order is closed.
	ExpireAfter time.Duration
	// SweepMinInterval is the least time between two sweeps across all instances.
	SweepMinInterval time.Duration
}

// DSN is the Postgres connection string.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, sslMode,
	)
}
