package subscriptions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"scouting-admin/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	database.DB = db
	return mock
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/subscriptions/:id", GetSubscription)
	r.POST("/subscriptions", CreateSubscription)
	r.POST("/subscriptions/:id/renew", RenewSubscription)
	return r
}

func TestGetSubscriptionNotFound(t *testing.T) {
	mock := setupMockDB(t)
	r := setupRouter()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/subscriptions/99", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSubscriptionRejectsBadSubscriberType(t *testing.T) {
	setupMockDB(t)
	r := setupRouter()

	body, _ := json.Marshal(gin.H{
		"subscriber_type": "sponsor",
		"subscriber_id":   1,
		"plan_id":         "premium",
		"payment_method":  "visa",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "subscriber_type")
}

func TestCreateSubscriptionRejectsBadStartDate(t *testing.T) {
	setupMockDB(t)
	r := setupRouter()

	body, _ := json.Marshal(gin.H{
		"subscriber_type": "team",
		"subscriber_id":   1,
		"plan_id":         "premium",
		"start_date":      "15-01-2024",
		"payment_method":  "visa",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRenewSubscriptionNotFound(t *testing.T) {
	mock := setupMockDB(t)
	r := setupRouter()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions"`).WillReturnRows(
		sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/subscriptions/5/renew", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
