package database

import (
	"time"

	"entrust_service/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// NewMySQLConnection create a new mysql handle, retrying RetryCount times.
// The caller owns the handle and closes it with CloseMySQL.
func NewMySQLConnection(d Connection) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	attempts := d.RetryCount
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		db, err = gorm.Open(mysql.Open(d.DSN), &gorm.Config{
			Logger: gorm_logger.Default.LogMode(gorm_logger.Silent),
		})
		if err == nil {
			break
		}
		logger.Log.Warn(
			"Failed to connect to mysql database, retrying...",
			zap.Int("attempt", i+1),
			zap.Error(err),
		)
		time.Sleep(d.RetryInterval * time.Second)
	}
	if err != nil {
		return nil, errors.Wrap(err, "connect mysql")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB")
	}
	if d.ConnectionLifetime > 0 {
		sqlDB.SetConnMaxLifetime(d.ConnectionLifetime)
	}
	if d.MaxOpenConnections > 0 {
		sqlDB.SetMaxOpenConns(d.MaxOpenConnections)
	}
	if d.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(d.MaxIdleConnections)
	}

	return db, nil
}

// CloseMySQL close the pool behind db
func CloseMySQL(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error("mysql close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Log.Error("mysql close", zap.Error(err))
	}
}
