package helper

import (
	"cinema_api/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

func TestFreeSeatsQuerySkipsLockedRows(t *testing.T) {
	db, err := gorm.Open(postgres.New(postgres.Config{DSN: "host=localhost user=cinema dbname=cinema"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var free []model.ScreeningSeat
	q := freeSeatsQuery(db, 3, 2).Find(&free)
	require.NoError(t, q.Error)

	c, ok := q.Statement.Clauses["FOR"]
	require.True(t, ok)
	locking, ok := c.Expression.(clause.Locking)
	require.True(t, ok)
	assert.Equal(t, "UPDATE", locking.Strength)
	assert.Equal(t, "SKIP LOCKED", locking.Options)

	sql := q.Statement.SQL.String()
	assert.Contains(t, sql, `FROM "screening_seats"`)
	assert.Contains(t, sql, "ORDER BY id")
	assert.Contains(t, sql, "FOR UPDATE SKIP LOCKED")
}
