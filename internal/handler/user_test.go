package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRoutesAdminOnly(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)

	w := doJSON(r, http.MethodGet, "/api/users", tokenFor(t, member), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodGet, "/api/users", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUserCreateValidationEndpoint(t *testing.T) {
	r, db := setupAPI(t)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)
	token := tokenFor(t, admin)

	// role=MEMBER without member_type fails.
	w := doJSON(r, http.MethodPost, "/api/users", token, map[string]interface{}{
		"email":    "new@club.io",
		"password": "password123",
		"name":     "New",
		"role":     "MEMBER",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// role=ADMIN with a member_type fails.
	w = doJSON(r, http.MethodPost, "/api/users", token, map[string]interface{}{
		"email":       "new@club.io",
		"password":    "password123",
		"name":        "New",
		"role":        "ADMIN",
		"member_type": "FULL",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/users", token, map[string]interface{}{
		"email":       "new@club.io",
		"password":    "password123",
		"name":        "New",
		"role":        "MEMBER",
		"member_type": "FULL",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate email conflicts.
	w = doJSON(r, http.MethodPost, "/api/users", token, map[string]interface{}{
		"email":       "new@club.io",
		"password":    "password123",
		"name":        "New Again",
		"role":        "MEMBER",
		"member_type": "FULL",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUserPromoteToAdminEndpoint(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)
	token := tokenFor(t, admin)

	w := doJSON(r, http.MethodPatch, fmt.Sprintf("/api/users/%d", member.ID), token, map[string]interface{}{
		"role": "ADMIN",
	})
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "ADMIN", data["role"])
	assert.Nil(t, data["member_type"])
}

func TestProfileEndpoints(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	token := tokenFor(t, member)

	w := doJSON(r, http.MethodPatch, "/api/profile", token, map[string]interface{}{
		"description": "two-handed cranker",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "two-handed cranker", data["description"])
}

func TestUserDeactivateEndpoint(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)

	w := doJSON(r, http.MethodDelete, "/api/users/999", tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/users/%d", member.ID), tokenFor(t, admin), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// The deactivated member's token stops working.
	w = doJSON(r, http.MethodGet, "/api/auth/me", tokenFor(t, member), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
