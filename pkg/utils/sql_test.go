package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

type ledger struct {
	ID      uint
	Name    string
	Entries []entry
}

type entry struct {
	ID       uint
	LedgerID uint
	Status   string
}

func newSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&ledger{}, &entry{}))
	return db
}

func TestApplyOptions(t *testing.T) {
	db := newSQLite(t)
	require.NoError(t, db.Create(&ledger{Name: "main", Entries: []entry{{Status: "open"}, {Status: "closed"}, {Status: "closed"}}}).Error)

	tests := []struct {
		name string
		opts []DBOption
		want int64
	}{
		{name: "no options", want: 3},
		{name: "where", opts: []DBOption{WithWhere("status = ?", "closed")}, want: 2},
		{name: "stacked where", opts: []DBOption{WithWhere("status = ?", "closed"), WithWhere("id > ?", 2)}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n int64
			require.NoError(t, ApplyOptions(db.Model(&entry{}), tt.opts...).Count(&n).Error)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestWithPreload(t *testing.T) {
	db := newSQLite(t)
	require.NoError(t, db.Create(&ledger{Name: "main", Entries: []entry{{Status: "open"}}}).Error)

	var plain ledger
	require.NoError(t, ApplyOptions(db).First(&plain).Error)
	assert.Empty(t, plain.Entries)

	var loaded ledger
	require.NoError(t, ApplyOptions(db, WithPreload("Entries")).First(&loaded).Error)
	assert.Len(t, loaded.Entries, 1)
}

func TestWithTx(t *testing.T) {
	db := newSQLite(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		require.NoError(t, ApplyOptions(db, WithTx(tx)).Create(&ledger{Name: "inside"}).Error)
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)

	var n int64
	require.NoError(t, db.Model(&ledger{}).Count(&n).Error)
	assert.Zero(t, n)
}
