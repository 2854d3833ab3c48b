package cmd_test

import (
	"testing"
	"time"

	"tracking/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Location(t *testing.T) {
	loc, err := cmd.Config{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = cmd.Config{TimeZone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = cmd.Config{TimeZone: "Nowhere/Atlantis"}.Location()
	require.Error(t, err)
}

func TestConfig_DSN(t *testing.T) {
	config := cmd.Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "tracking",
		DBPassword: "secret",
		DBName:     "journal",
		DBSslMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=tracking password=secret dbname=journal sslmode=disable", config.DSN())
}

func TestCompositionRoot_WithoutJournal(t *testing.T) {
	root := cmd.NewCompositionRoot(cmd.Config{}, time.UTC, nil, nil)

	require.NotNil(t, root.CreateHTTPServer())
	require.NotNil(t, root.CreateJobManager())
	assert.Zero(t, root.Hub().Len())
}
