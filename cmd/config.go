package cmd

import (
	"fmt"
	"time"
)

// Config is the process configuration, read from the environment (and .env when present).
type Config struct {
	HTTPPort             string
	TimeZone             string
	SubscriberBuffer     int
	LogLevel             string
	JournalEnabled       bool
	JournalFlushSchedule string
	JournalCapacity      int
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
}

// Location resolves TimeZone; an empty value means the host's local zone.
func (c Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// DSN returns the PostgreSQL connection string for the journal database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
