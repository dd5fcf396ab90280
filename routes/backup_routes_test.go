package routes

import (
	"net/http/httptest"
	"testing"
	"time"

	"farm-app/config"
	"farm-app/database"
	"farm-app/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

func signTestToken(t *testing.T, role, sessionID string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":    float64(1),
		"role":       role,
		"session_id": sessionID,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.JWTSecret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func TestBackupRoutesAreAdminOnly(t *testing.T) {
	config.MAIN_ROUTES = "/api/v1"
	config.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal(err)
	}

	sessions := []models.UserSession{
		{UserID: 1, SessionID: "staff-session", IsActive: true, ExpiresAt: time.Now().Add(time.Hour)},
		{UserID: 2, SessionID: "admin-session", IsActive: true, ExpiresAt: time.Now().Add(time.Hour)},
	}
	for i := range sessions {
		if err := db.Create(&sessions[i]).Error; err != nil {
			t.Fatal(err)
		}
	}

	app := fiber.New()
	SetupBackupRoutes(app, db)

	get := func(token string) int {
		req := httptest.NewRequest(fiber.MethodGet, "/api/v1/backup/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		return resp.StatusCode
	}

	staffToken := signTestToken(t, models.RoleStaff, "staff-session")
	if status := get(staffToken); status != fiber.StatusForbidden {
		t.Errorf("staff export status = %d, want 403", status)
	}

	adminToken := signTestToken(t, models.RoleAdmin, "admin-session")
	if status := get(adminToken); status != fiber.StatusOK {
		t.Errorf("admin export status = %d, want 200", status)
	}
}
