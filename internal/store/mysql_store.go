package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evyataryagoni/cityweather/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// DeviceLocationModel is the GORM model for the device_locations table
type DeviceLocationModel struct {
	DeviceID  string    `gorm:"column:device_id;primaryKey;size:64"`
	IP        string    `gorm:"column:ip;size:64"`
	Province  string    `gorm:"column:province"`
	City      string    `gorm:"column:city"`
	District  string    `gorm:"column:district"`
	Address   string    `gorm:"column:address"`
	Provider  string    `gorm:"column:provider;size:32"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides GORM's pluralized default
func (DeviceLocationModel) TableName() string {
	return "device_locations"
}

// DeviceWeatherModel is the GORM model for the device_weather table
type DeviceWeatherModel struct {
	DeviceID    string    `gorm:"column:device_id;primaryKey;size:64"`
	City        string    `gorm:"column:city"`
	Temperature string    `gorm:"column:temperature;size:32"`
	Text        string    `gorm:"column:text"`
	Valid       bool      `gorm:"column:valid"`
	RegionKey   string    `gorm:"column:region_key"`
	Lat         float64   `gorm:"column:lat"`
	Lon         float64   `gorm:"column:lon"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

// TableName overrides GORM's pluralized default
func (DeviceWeatherModel) TableName() string {
	return "device_weather"
}

// MySQLStore keeps device state in MySQL using GORM
// Each device has one row per table, upserted on every save
type MySQLStore struct {
	db *gorm.DB
}

// NewMySQLStore connects, configures the pool and migrates both tables
//
// dsn format: user:password@tcp(host:port)/dbname?parseTime=true&charset=utf8mb4
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL with GORM: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping MySQL database: %w", err)
	}

	return newMySQLStore(db)
}

// newMySQLStore migrates both tables on an open connection
// The connection is closed if migration fails
func newMySQLStore(db *gorm.DB) (*MySQLStore, error) {
	if err := db.AutoMigrate(&DeviceLocationModel{}, &DeviceWeatherModel{}); err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("failed to migrate device state tables: %w", err)
	}
	return &MySQLStore{db: db}, nil
}

// SaveLocation upserts the device's location row
func (s *MySQLStore) SaveLocation(ctx context.Context, deviceID string, loc *models.Location) error {
	rec := DeviceLocationModel{
		DeviceID:  deviceID,
		IP:        loc.IP,
		Province:  loc.Province,
		City:      loc.City,
		District:  loc.District,
		Address:   loc.Address,
		Provider:  loc.Provider,
		UpdatedAt: loc.UpdatedAt,
	}
	if err := s.upsert(ctx, &rec); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// LatestLocation reads the device's location row
func (s *MySQLStore) LatestLocation(ctx context.Context, deviceID string) (*models.Location, error) {
	var rec DeviceLocationModel
	if err := s.first(ctx, deviceID, &rec); err != nil {
		return nil, err
	}
	return &models.Location{
		IP:        rec.IP,
		Province:  rec.Province,
		City:      rec.City,
		District:  rec.District,
		Address:   rec.Address,
		Provider:  rec.Provider,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

// SaveWeather upserts the device's weather row
func (s *MySQLStore) SaveWeather(ctx context.Context, deviceID string, w *models.Weather) error {
	rec := DeviceWeatherModel{
		DeviceID:    deviceID,
		City:        w.City,
		Temperature: w.Temperature,
		Text:        w.Text,
		Valid:       w.Valid,
		RegionKey:   w.Key,
		Lat:         w.Coordinates.Lat,
		Lon:         w.Coordinates.Lon,
		UpdatedAt:   w.UpdatedAt,
	}
	if err := s.upsert(ctx, &rec); err != nil {
		return fmt.Errorf("failed to save weather: %w", err)
	}
	return nil
}

// LatestWeather reads the device's weather row
func (s *MySQLStore) LatestWeather(ctx context.Context, deviceID string) (*models.Weather, error) {
	var rec DeviceWeatherModel
	if err := s.first(ctx, deviceID, &rec); err != nil {
		return nil, err
	}
	return &models.Weather{
		City:        rec.City,
		Temperature: rec.Temperature,
		Text:        rec.Text,
		Valid:       rec.Valid,
		Key:         rec.RegionKey,
		Coordinates: models.Coordinates{Lat: rec.Lat, Lon: rec.Lon},
		UpdatedAt:   rec.UpdatedAt,
	}, nil
}

func (s *MySQLStore) upsert(ctx context.Context, rec any) error {
	// INSERT ... ON DUPLICATE KEY UPDATE
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(rec).Error
}

func (s *MySQLStore) first(ctx context.Context, deviceID string, rec any) error {
	err := s.db.WithContext(ctx).Where("device_id = ?", deviceID).First(rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database query failed: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *MySQLStore) Close() error {
	if s.db != nil {
		sqlDB, err := s.db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}

var _ Store = (*MySQLStore)(nil)
