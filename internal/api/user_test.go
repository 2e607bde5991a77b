package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserListAndGet(t *testing.T) {
	engine, _ := setupAPITest(t)
	registerAndLogin(t, engine, "alice")

	w := doRequest(t, engine, http.MethodGet, "/api/v1/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Users []struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"users"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list.Users, 1)

	w = doRequest(t, engine, http.MethodGet, fmt.Sprintf("/api/v1/users/%d", list.Users[0].ID), nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, engine, http.MethodGet, "/api/v1/users/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserPartialUpdate(t *testing.T) {
	engine, _ := setupAPITest(t)
	token := registerAndLogin(t, engine, "alice")

	w := doRequest(t, engine, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &me)

	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", me.ID), gin.H{
		"full_name": "Alice Liddell",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		FullName string `json:"full_name"`
	}
	decodeBody(t, w, &updated)
	assert.Equal(t, "Alice Liddell", updated.FullName)
	assert.Equal(t, "alice", updated.Username)
	assert.Equal(t, "alice@example.com", updated.Email)
}

func TestUserUpdateConflicts(t *testing.T) {
	engine, _ := setupAPITest(t)
	registerAndLogin(t, engine, "alice")
	token := registerAndLogin(t, engine, "bob")

	w := doRequest(t, engine, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var me struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &me)

	w = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/users/%d", me.ID), gin.H{
		"username": "alice",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)
}
