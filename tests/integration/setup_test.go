package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"spendtrack/internal/handlers"
	"spendtrack/internal/logger"
	"spendtrack/internal/middleware"
	"spendtrack/internal/models"
	"spendtrack/internal/services"
	"spendtrack/internal/store"
	"spendtrack/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:ledgertest%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Expense{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	// Shared-cache SQLite uses table-level locks; a single connection keeps
	// concurrent test requests from tripping over them.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	ledger := store.NewLedger(db, 10*time.Second)
	expenseService := services.NewExpenseService(ledger)
	auditService := services.NewAuditService(db)

	expenseHandler := handlers.NewExpenseHandler(expenseService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")
	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.ListExpenses)
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("/summary", expenseHandler.GetCategorySummary)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	return &testApp{DB: db, Router: router}
}

// request performs an HTTP request against the test app.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// createExpense records an expense and fails the test on any non-201 response.
func (app *testApp) createExpense(t *testing.T, body string) map[string]interface{} {
	t.Helper()

	rec := app.request("POST", "/api/v1/expenses", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating expense, got %d: %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["expense"].(map[string]interface{})
}

// backdate rewinds an expense's created_at so the dedup window elapses
// without sleeping.
func (app *testApp) backdate(t *testing.T, id string, age time.Duration) {
	t.Helper()

	result := app.DB.Model(&models.Expense{}).
		Where("id = ?", id).
		Update("created_at", time.Now().Add(-age))
	if result.Error != nil || result.RowsAffected != 1 {
		t.Fatalf("failed to backdate expense %s: %v", id, result.Error)
	}
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func listExpenses(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 listing expenses, got %d: %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["expenses"].([]interface{})
}
