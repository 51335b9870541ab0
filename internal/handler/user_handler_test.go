package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"usersvc/internal/config"
	"usersvc/internal/db"
	"usersvc/internal/handler"
	"usersvc/internal/model"
	"usersvc/internal/repository"
	"usersvc/internal/router"
	"usersvc/internal/service"
)

// newTestServer wires the full HTTP stack against a fresh named
// in-memory database. The cache is nil so every read hits the store.
func newTestServer(t *testing.T, name string) (*echo.Echo, *gorm.DB) {
	t.Helper()

	gormDB, err := db.Open("sqlite://file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	userRepo := repository.NewUserRepository(gormDB)
	healthRepo := repository.NewHealthCheckRepository(gormDB)
	userService := service.NewUserService(userRepo, nil)
	healthService := service.NewHealthService(healthRepo)

	e := echo.New()
	router.Register(
		e,
		handler.NewUserHandler(userService),
		handler.NewHealthHandler(healthService, userService),
		handler.NewDatabaseHandler(gormDB),
		handler.NewWebHandler(userService, healthService, config.EnvTesting),
	)
	return e, gormDB
}

func request(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateUser(t *testing.T) {
	e, _ := newTestServer(t, "handler_create")

	t.Run("creates a user", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"username":"alice","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusCreated, rec.Code)

		var user model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.NotZero(t, user.ID)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"username":"alice","email":"new@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t,
			`{"error":"user with this username or email already exists","code":"USER_ALREADY_EXISTS"}`,
			rec.Body.String())
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"username":"newname","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects missing username", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"email":"no-name@example.com"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t,
			`{"error":"username and email are required","code":"VALIDATION_ERROR"}`,
			rec.Body.String())
	})

	t.Run("rejects missing email", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"username":"no-email"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects empty payload", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		rec := request(e, http.MethodPost, "/api/users", `{"username":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListUsers(t *testing.T) {
	e, _ := newTestServer(t, "handler_list")

	t.Run("empty directory yields an empty array", func(t *testing.T) {
		rec := request(e, http.MethodGet, "/api/users", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("returns users newest first", func(t *testing.T) {
		for _, name := range []string{"alice", "bob", "carol"} {
			rec := request(e, http.MethodPost, "/api/users",
				`{"username":"`+name+`","email":"`+name+`@example.com"}`)
			assert.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := request(e, http.MethodGet, "/api/users", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		var users []model.User
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
		assert.Len(t, users, 3)
		assert.Equal(t, "carol", users[0].Username)
		assert.Equal(t, "bob", users[1].Username)
		assert.Equal(t, "alice", users[2].Username)
	})
}

func TestListUsersStoreFailure(t *testing.T) {
	e, gormDB := newTestServer(t, "handler_list_failure")

	sqlDB, err := gormDB.DB()
	assert.NoError(t, err)
	assert.NoError(t, sqlDB.Close())

	rec := request(e, http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DATABASE_ERROR", body["code"])
	assert.NotEmpty(t, body["error"])
}

func TestDeleteUser(t *testing.T) {
	e, _ := newTestServer(t, "handler_delete")

	rec := request(e, http.MethodPost, "/api/users", `{"username":"alice","email":"alice@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var created model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	idPath := "/api/users/" + strconv.Itoa(int(created.ID))

	t.Run("deletes an existing user", func(t *testing.T) {
		rec := request(e, http.MethodDelete, idPath, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"user deleted successfully"}`, rec.Body.String())

		rec = request(e, http.MethodGet, "/api/users", "")
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("deleting the same user again yields not found", func(t *testing.T) {
		rec := request(e, http.MethodDelete, idPath, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"user not found","code":"USER_NOT_FOUND"}`, rec.Body.String())
	})

	t.Run("rejects a non-integer id", func(t *testing.T) {
		rec := request(e, http.MethodDelete, "/api/users/abc", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":"invalid user id","code":"INVALID_ID"}`, rec.Body.String())
	})

	t.Run("rejects a negative id", func(t *testing.T) {
		rec := request(e, http.MethodDelete, "/api/users/-1", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
