package main

import (
	"errors"
	"fmt"

	"cadastro/internal/database"
	"cadastro/pkg/cache"
	"cadastro/pkg/rabbitmq"

	"gorm.io/gorm"
)

// closeResources releases the broker, cache and database in that order.
// Nil resources are skipped.
func closeResources(mq *rabbitmq.Client, c cache.Cache, db *gorm.DB) error {
	var errs []error
	if mq != nil {
		if err := mq.Close(); err != nil {
			errs = append(errs, fmt.Errorf("rabbitmq: %w", err))
		}
	}
	if c != nil {
		if err := c.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cache: %w", err))
		}
	}
	if db != nil {
		if err := database.Close(db); err != nil {
			errs = append(errs, fmt.Errorf("database: %w", err))
		}
	}
	return errors.Join(errs...)
}
