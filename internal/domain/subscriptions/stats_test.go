package subscriptions

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowthRate(t *testing.T) {
	cases := []struct {
		current  int64
		previous int64
		want     int
	}{
		{10, 5, 100},
		{5, 5, 0},
		{3, 4, -25},
		{7, 3, 133},
		// division-by-zero guard, not an error
		{12, 0, 0},
		{0, 0, 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, growthRate(tc.current, tc.previous),
			"current=%d previous=%d", tc.current, tc.previous)
	}
}

func TestGetStats(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(8))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(price\), 0\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"coalesce"}).AddRow(299.92))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(4))

	stats, err := GetStats(db, time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, int64(8), stats.TotalSubscriptions)
	assert.Equal(t, 299.92, stats.MonthlyRevenue)
	assert.Equal(t, 100, stats.GrowthRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStatsZeroPreviousPeriod(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(5))
	mock.ExpectQuery(`SELECT COALESCE\(SUM\(price\), 0\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"coalesce"}).AddRow(99.95))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"count"}).AddRow(0))

	stats, err := GetStats(db, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, 0, stats.GrowthRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
