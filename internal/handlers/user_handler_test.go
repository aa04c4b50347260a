package handlers

import (
	"net/http"
	"testing"

	"internal-task-api/internal/database"
	"internal-task-api/internal/models"
	"internal-task-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestCreateUser_AdminOnly(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "admin", "pw", models.RoleAdmin)
	testutil.CreateUser(t, database.DB, "emp", "pw", models.RoleEmployee)

	body := map[string]string{
		"username":     "e1",
		"password":     "p1",
		"display_name": "Employee One",
	}

	w := doJSON(t, r, http.MethodPost, "/users", tokenFor(t, "emp"), body)
	require.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/users", tokenFor(t, "admin"), body)
	require.Equal(t, http.StatusCreated, w.Code)

	resp := decode[UserResponse](t, w)
	require.Equal(t, "e1", resp.Username)
	require.Equal(t, models.RoleEmployee, resp.Role) // role defaults to employee
	require.True(t, resp.IsActive)
	require.NotContains(t, w.Body.String(), "password")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "admin", "pw", models.RoleAdmin)
	testutil.CreateUser(t, database.DB, "taken", "pw", models.RoleEmployee)

	w := doJSON(t, r, http.MethodPost, "/users", tokenFor(t, "admin"), map[string]string{
		"username":     "taken",
		"password":     "p1",
		"display_name": "Dup",
	})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "admin", "pw", models.RoleAdmin)

	w := doJSON(t, r, http.MethodPost, "/users", tokenFor(t, "admin"), map[string]string{
		"username":     "e1",
		"password":     "p1",
		"display_name": "Employee One",
		"role":         "superuser",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMe(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "alice", "pw", models.RoleEmployee)

	w := doJSON(t, r, http.MethodGet, "/users/me", tokenFor(t, "alice"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[UserResponse](t, w)
	require.Equal(t, "alice", resp.Username)
	require.Equal(t, models.RoleEmployee, resp.Role)
}

func TestGetAllUsers(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "alice", "pw", models.RoleEmployee)
	testutil.CreateUser(t, database.DB, "bob", "pw", models.RoleEmployee)

	w := doJSON(t, r, http.MethodGet, "/users", tokenFor(t, "bob"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[[]UserResponse](t, w)
	require.Len(t, resp, 2)
}
