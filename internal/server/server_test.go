package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"homegenie/internal/config"
	"homegenie/internal/models"
	"homegenie/internal/repository"
	"homegenie/internal/session"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:           "5000",
		Env:            "test",
		StorageBackend: "memory",
		SessionBackend: "memory",
	}
}

// newMemoryTestServer builds a server on the in-memory backend.
func newMemoryTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	s := &Server{
		config:   testConfig(),
		repos:    repository.NewMemoryRepositories(),
		sessions: session.NewMemoryStore(),
	}
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// newSQLiteTestServer builds a server on the GORM backend over sqlite.
func newSQLiteTestServer(t *testing.T) (*Server, *fiber.App) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.ServiceCategory{},
		&models.ServiceProvider{},
		&models.Appointment{},
		&models.CommunityPost{},
		&models.PostTag{},
		&models.PostLike{},
	); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	s := &Server{
		config:   testConfig(),
		db:       db,
		repos:    repository.NewGormRepositories(db),
		sessions: session.NewMemoryStore(),
	}
	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// createTestUser inserts a user with the password "password123".
func createTestUser(t *testing.T, s *Server, username string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.User{
		Username:        username,
		Password:        string(hash),
		FullName:        "Test " + username,
		Email:           username + "@example.com",
		ApartmentNumber: "B-204",
	}
	if err := s.repos.Users.Create(context.Background(), user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}

// loginAs creates a session for the user and returns its cookie.
func loginAs(t *testing.T, s *Server, userID uint) *http.Cookie {
	t.Helper()
	token, err := s.sessions.Create(context.Background(), userID)
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func jsonRequest(method, target string, body any, cookies ...*http.Cookie) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

// sessionCookieFromResponse extracts the session cookie set by a response.
func sessionCookieFromResponse(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}
