package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "test-secret-key-for-jwt")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3002, cfg.App.Port)
	assert.Equal(t, 5.194133, cfg.Office.Latitude)
	assert.Equal(t, 97.017938, cfg.Office.Longitude)
	assert.Equal(t, "PT Pupuk Iskandar Muda", cfg.Office.Name)
	assert.Equal(t, 50, cfg.Office.MaxDistanceMeters)
	assert.Equal(t, 8, cfg.Attendance.CheckInOpenHour)
	assert.Equal(t, 15, cfg.Attendance.CheckInGraceMinute)
	assert.Equal(t, 17, cfg.Attendance.CheckOutOpenHour)
	assert.Equal(t, 7, cfg.Attendance.UTCOffsetHours)
	assert.False(t, cfg.Cron.ProvisionEnabled)
	assert.Equal(t, time.Hour, cfg.Cron.ProvisionInterval)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OFFICE_LATITUDE", "-6.2")
	t.Setenv("OFFICE_LONGITUDE", "106.816666")
	t.Setenv("OFFICE_NAME", "Jakarta")
	t.Setenv("OFFICE_MAX_DISTANCE_METERS", "120")
	t.Setenv("CHECKIN_OPEN_HOUR", "7")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	policy := cfg.AttendancePolicy()
	assert.Equal(t, -6.2, policy.Office.Latitude)
	assert.Equal(t, "Jakarta", policy.Office.Name)
	assert.Equal(t, 120, policy.MaxDistanceMeters)
	assert.Equal(t, 7, policy.CheckInOpenHour)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.AllowedOrigins)
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET_KEY", "test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_InvalidNumber(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OFFICE_MAX_DISTANCE_METERS", "fifty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OFFICE_MAX_DISTANCE_METERS")
}

func TestValidate_Ranges(t *testing.T) {
	setRequiredEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	bad := *cfg
	bad.Office.MaxDistanceMeters = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Attendance.CheckOutOpenHour = 24
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Attendance.CheckInGraceMinute = 60
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Office.Latitude = 91
	assert.Error(t, bad.Validate())
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5432, User: "postgres", Password: "pw", Name: "pim", SSLMode: "disable",
	}}
	assert.Equal(t, "postgres://postgres:pw@db:5432/pim?sslmode=disable", cfg.DatabaseURL())
}
