package subscriptions

import (
	"testing"
	"time"

	"scouting-admin/internal/domain/billing"
	"scouting-admin/internal/domain/directory"
	"scouting-admin/internal/domain/plans"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextRenewal(t *testing.T) {
	cases := []struct {
		start string
		want  string
	}{
		{"2024-01-15", "2024-02-15"},
		{"2024-02-15", "2024-03-15"},
		{"2024-12-01", "2025-01-01"},
		// Day overflow normalizes forward rather than clamping.
		{"2024-01-31", "2024-03-02"},
		{"2023-01-31", "2023-03-03"},
	}

	for _, tc := range cases {
		got := NextRenewal(date(tc.start))
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "start %s", tc.start)
	}
}

func premiumPlanRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "code", "name", "price", "interval"}).
		AddRow(2, plans.CodePremium, "Premium Club", 49.99, "month")
}

func TestCreateTeamSubscription(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(premiumPlanRows())
	mock.ExpectQuery(`SELECT \* FROM "clubs"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).AddRow(7, "Demo Club"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(1))
	// one ledger entry, amount = snapshot price, supplied method tag
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 49.99, "visa", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	sub, err := Create(db, CreateInput{
		SubscriberType: directory.SubscriberTeam,
		SubscriberID:   7,
		PlanCode:       plans.CodePremium,
		StartDate:      date("2024-01-01"),
		PaymentMethod:  "visa",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, "Premium Club", sub.PlanName)
	assert.Equal(t, 49.99, sub.Price)
	assert.Equal(t, "2024-02-01", sub.RenewalDate.Format("2006-01-02"))

	// exactly one subscriber reference
	require.NotNil(t, sub.ClubID)
	assert.Equal(t, uint(7), *sub.ClubID)
	assert.Nil(t, sub.ScoutID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateScoutSubscription(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "code", "name", "price", "interval"}).
			AddRow(1, plans.CodeBasic, "Basic Club", 19.99, "month"))
	mock.ExpectQuery(`SELECT \* FROM "scouts"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Jane Doe"))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectQuery(`INSERT INTO "payments"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(2))
	mock.ExpectCommit()

	sub, err := Create(db, CreateInput{
		SubscriberType: directory.SubscriberScout,
		SubscriberID:   3,
		PlanCode:       plans.CodeBasic,
		StartDate:      date("2024-03-10"),
		PaymentMethod:  "mastercard",
	})
	require.NoError(t, err)

	require.NotNil(t, sub.ScoutID)
	assert.Equal(t, uint(3), *sub.ScoutID)
	assert.Nil(t, sub.ClubID)
	assert.Equal(t, "2024-04-10", sub.RenewalDate.Format("2006-01-02"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsInvalidSubscriberType(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := Create(db, CreateInput{
		SubscriberType: "sponsor",
		SubscriberID:   1,
		PlanCode:       plans.CodeBasic,
		StartDate:      time.Now(),
		PaymentMethod:  "visa",
	})
	assert.ErrorIs(t, err, directory.ErrInvalidSubscriberType)
}

func TestCreateRejectsUnknownPlan(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "code", "name", "price", "interval"}))

	_, err := Create(db, CreateInput{
		SubscriberType: directory.SubscriberTeam,
		SubscriberID:   1,
		PlanCode:       "gold",
		StartDate:      time.Now(),
		PaymentMethod:  "visa",
	})
	assert.ErrorIs(t, err, plans.ErrUnknownPlan)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMissingSubscriber(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(premiumPlanRows())
	mock.ExpectQuery(`SELECT \* FROM "clubs"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "name"}))

	_, err := Create(db, CreateInput{
		SubscriberType: directory.SubscriberTeam,
		SubscriberID:   99,
		PlanCode:       plans.CodePremium,
		StartDate:      time.Now(),
		PaymentMethod:  "visa",
	})
	assert.ErrorIs(t, err, ErrUnknownSubscriber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func subscriptionRows(id uint, status, start, renewal string, price float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "description", "plan_code", "plan_name", "price", "status",
		"start_date", "renewal_date", "club_id", "scout_id",
	}).AddRow(id, "", "premium", "Premium Club", price, status, date(start), date(renewal), 7, nil)
}

func TestRenewAdvancesFromStoredRenewalDate(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		subscriptionRows(1, StatusActive, "2024-01-15", "2024-02-15", 49.99))
	mock.ExpectExec(`UPDATE "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "payments"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 49.99, billing.MethodRenewal, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	sub, err := Renew(db, 1)
	require.NoError(t, err)

	// anchored to the stored renewal date, not time.Now()
	assert.Equal(t, "2024-03-15", sub.RenewalDate.Format("2006-01-02"))
	assert.Equal(t, StatusActive, sub.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenewReactivatesCancelledSubscription(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		subscriptionRows(1, StatusCancelled, "2024-01-01", "2024-02-01", 49.99))
	mock.ExpectExec(`UPDATE "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "payments"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	sub, err := Renew(db, 1)
	require.NoError(t, err)

	assert.Equal(t, StatusActive, sub.Status)
	assert.Equal(t, "2024-03-01", sub.RenewalDate.Format("2006-01-02"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenewNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := Renew(db, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelSetsStatus(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		subscriptionRows(1, StatusActive, "2024-01-01", "2024-02-01", 49.99))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := Cancel(db, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)

	// already cancelled: no write happens, still a success
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		subscriptionRows(1, StatusCancelled, "2024-01-01", "2024-02-01", 49.99))

	err := Cancel(db, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelNotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}))

	err := Cancel(db, 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePlanSwapsSnapshotOnly(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "code", "name", "price", "interval"}).
			AddRow(3, plans.CodeEnterprise, "Enterprise Club", 99.99, "month"))
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		subscriptionRows(1, StatusActive, "2024-01-01", "2024-02-01", 49.99))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "subscriptions"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := ChangePlan(db, 1, plans.CodeEnterprise)
	require.NoError(t, err)

	// no payment insert expected anywhere above
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChangePlanUnknownPlan(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "plans"`).WillReturnRows(
		sqlmock.NewRows([]string{"id", "code", "name", "price", "interval"}))

	err := ChangePlan(db, 1, "gold")
	assert.ErrorIs(t, err, plans.ErrUnknownPlan)
	assert.NoError(t, mock.ExpectationsWereMet())
}
