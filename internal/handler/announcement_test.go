package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/seungHoon0422/Degururu/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnouncementAdminGate(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)

	body := map[string]interface{}{"title": "Season start", "content": "Lanes open at 7."}

	w := doJSON(r, http.MethodPost, "/api/announcements", tokenFor(t, member), body)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(r, http.MethodPost, "/api/announcements", tokenFor(t, admin), body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAnnouncementSoftDeleteHiddenFromAPI(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)
	adminToken := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/api/announcements", adminToken, map[string]interface{}{
		"title": "Goes away", "content": "x",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeData(t, w)["id"]

	w = doJSON(r, http.MethodDelete, fmt.Sprintf("/api/announcements/%v", id), adminToken, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Hidden from reads and from the list, count included.
	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/announcements/%v", id), tokenFor(t, member), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/announcements", tokenFor(t, member), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data struct {
			List  []json.RawMessage `json:"list"`
			Total int64             `json:"total"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Empty(t, envelope.Data.List)
	assert.EqualValues(t, 0, envelope.Data.Total)
}

func TestAnnouncementListPaged(t *testing.T) {
	r, db := setupAPI(t)
	member := seedUser(t, db, "member@club.io", model.RoleMember)
	admin := seedUser(t, db, "admin@club.io", model.RoleAdmin)
	adminToken := tokenFor(t, admin)

	for i := 0; i < 3; i++ {
		w := doJSON(r, http.MethodPost, "/api/announcements", adminToken, map[string]interface{}{
			"title": fmt.Sprintf("Post %d", i), "content": "x",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(r, http.MethodGet, "/api/announcements?page=2&size=2", tokenFor(t, member), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var envelope struct {
		Data struct {
			List     []json.RawMessage `json:"list"`
			Total    int64             `json:"total"`
			Page     int               `json:"page"`
			PageSize int               `json:"page_size"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.List, 1)
	assert.EqualValues(t, 3, envelope.Data.Total)
	assert.Equal(t, 2, envelope.Data.Page)
	assert.Equal(t, 2, envelope.Data.PageSize)
}
