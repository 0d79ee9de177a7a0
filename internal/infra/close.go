package infra

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"gorm.io/gorm"
)

// Close releases every infrastructure handle and reports all failures
// together. Nil handles are skipped.
func Close(ctx context.Context, db *gorm.DB, rdb *redis.Client, shutdownTracing func(context.Context) error) error {
	var err error
	if shutdownTracing != nil {
		err = multierr.Append(err, shutdownTracing(ctx))
	}
	if rdb != nil {
		err = multierr.Append(err, rdb.Close())
	}
	if db != nil {
		sqlDB, dbErr := db.DB()
		if dbErr != nil {
			err = multierr.Append(err, dbErr)
		} else {
			err = multierr.Append(err, sqlDB.Close())
		}
	}
	return err
}
