package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pim-intern/attendance-backend/internal/domain/attendance"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Office     OfficeConfig
	Attendance AttendanceConfig
	Cron       CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	Version        string
	AllowedOrigins []string
}

// OfficeConfig holds the geofence center and radius
type OfficeConfig struct {
	Latitude          float64
	Longitude         float64
	Name              string
	MaxDistanceMeters int
}

// AttendanceConfig holds the civil time windows
type AttendanceConfig struct {
	CheckInOpenHour    int
	CheckInGraceMinute int
	CheckOutOpenHour   int
	UTCOffsetHours     int
}

// CronConfig holds background job configuration
type CronConfig struct {
	ProvisionEnabled  bool
	ProvisionInterval time.Duration
}

func Load() (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	config := &Config{}
	var err error

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	minConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pim_attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
		MinConns: int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "3002"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Version:        getEnv("APP_VERSION", "v1.0.0"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "12h"),
	}

	// Office (geofence) configuration
	defaults := attendance.DefaultPolicy()
	officeLat, err := strconv.ParseFloat(getEnv("OFFICE_LATITUDE", strconv.FormatFloat(defaults.Office.Latitude, 'f', -1, 64)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LATITUDE: %w", err)
	}
	officeLon, err := strconv.ParseFloat(getEnv("OFFICE_LONGITUDE", strconv.FormatFloat(defaults.Office.Longitude, 'f', -1, 64)), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFICE_LONGITUDE: %w", err)
	}
	maxDistance, err := getEnvInt("OFFICE_MAX_DISTANCE_METERS", defaults.MaxDistanceMeters)
	if err != nil {
		return nil, err
	}

	config.Office = OfficeConfig{
		Latitude:          officeLat,
		Longitude:         officeLon,
		Name:              getEnv("OFFICE_NAME", defaults.Office.Name),
		MaxDistanceMeters: maxDistance,
	}

	// Attendance windows (civil time)
	if config.Attendance.CheckInOpenHour, err = getEnvInt("CHECKIN_OPEN_HOUR", defaults.CheckInOpenHour); err != nil {
		return nil, err
	}
	if config.Attendance.CheckInGraceMinute, err = getEnvInt("CHECKIN_GRACE_MINUTE", defaults.CheckInGraceMinute); err != nil {
		return nil, err
	}
	if config.Attendance.CheckOutOpenHour, err = getEnvInt("CHECKOUT_OPEN_HOUR", defaults.CheckOutOpenHour); err != nil {
		return nil, err
	}
	if config.Attendance.UTCOffsetHours, err = getEnvInt("CIVIL_UTC_OFFSET_HOURS", 7); err != nil {
		return nil, err
	}

	// Cron configuration
	provisionEnabled, err := strconv.ParseBool(getEnv("ATTENDANCE_PROVISION_ENABLED", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PROVISION_ENABLED: %w", err)
	}
	provisionInterval, err := time.ParseDuration(getEnv("ATTENDANCE_PROVISION_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PROVISION_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{
		ProvisionEnabled:  provisionEnabled,
		ProvisionInterval: provisionInterval,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Office.Latitude < -90 || c.Office.Latitude > 90 {
		return fmt.Errorf("OFFICE_LATITUDE must be between -90 and 90")
	}
	if c.Office.Longitude < -180 || c.Office.Longitude > 180 {
		return fmt.Errorf("OFFICE_LONGITUDE must be between -180 and 180")
	}
	if c.Office.MaxDistanceMeters <= 0 {
		return fmt.Errorf("OFFICE_MAX_DISTANCE_METERS must be positive")
	}
	if !validHour(c.Attendance.CheckInOpenHour) {
		return fmt.Errorf("CHECKIN_OPEN_HOUR must be between 0 and 23")
	}
	if !validHour(c.Attendance.CheckOutOpenHour) {
		return fmt.Errorf("CHECKOUT_OPEN_HOUR must be between 0 and 23")
	}
	if c.Attendance.CheckInGraceMinute < 0 || c.Attendance.CheckInGraceMinute > 59 {
		return fmt.Errorf("CHECKIN_GRACE_MINUTE must be between 0 and 59")
	}
	if c.Attendance.UTCOffsetHours < -12 || c.Attendance.UTCOffsetHours > 14 {
		return fmt.Errorf("CIVIL_UTC_OFFSET_HOURS must be between -12 and 14")
	}
	if c.Cron.ProvisionEnabled && c.Cron.ProvisionInterval <= 0 {
		return fmt.Errorf("ATTENDANCE_PROVISION_INTERVAL must be positive")
	}
	return nil
}

// AttendancePolicy builds the immutable rule set consumed by the attendance service
func (c *Config) AttendancePolicy() attendance.Policy {
	return attendance.Policy{
		Office: attendance.OfficeLocation{
			Latitude:  c.Office.Latitude,
			Longitude: c.Office.Longitude,
			Name:      c.Office.Name,
		},
		MaxDistanceMeters:  c.Office.MaxDistanceMeters,
		CheckInOpenHour:    c.Attendance.CheckInOpenHour,
		CheckInGraceMinute: c.Attendance.CheckInGraceMinute,
		CheckOutOpenHour:   c.Attendance.CheckOutOpenHour,
	}
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.App.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func validHour(h int) bool {
	return h >= 0 && h <= 23
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvSlice(env string, fallback []string) []string {
	value := getEnv(env, "")
	if value == "" {
		return fallback
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
