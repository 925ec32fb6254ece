package utils

import "gorm.io/gorm"

// DBOption adjusts a query before a repository runs it.
type DBOption func(*gorm.DB) *gorm.DB

func ApplyOptions(db *gorm.DB, opts ...DBOption) *gorm.DB {
	for _, opt := range opts {
		db = opt(db)
	}
	return db
}

// WithTx swaps the session for tx; pass it first so later options refine tx.
func WithTx(tx *gorm.DB) DBOption {
	return func(_ *gorm.DB) *gorm.DB {
		return tx
	}
}

func WithPreload(association string) DBOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(association)
	}
}

// WithWhere adds a condition ANDed with the repository's own filters.
func WithWhere(query interface{}, args ...interface{}) DBOption {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}
