package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup_EnvelopeShape(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/api/member/signup", "", gin.H{
		"nickname": "닉네임1",
		"email":    "new@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var member struct {
		MemberID int64  `json:"memberId"`
		Nickname string `json:"nickname"`
	}
	decodeResponse(t, w, &member)
	assert.NotZero(t, member.MemberID)
	assert.Equal(t, "닉네임1", member.Nickname)
}

func TestSignup_DuplicateEmailConflict(t *testing.T) {
	router := newTestServer(t)
	signupAndLogin(t, router, "닉네임1", "dup@test.com")

	w := doJSON(t, router, http.MethodPost, "/api/member/signup", "", gin.H{
		"nickname": "닉네임2",
		"email":    "dup@test.com",
		"password": "password456",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, http.StatusConflict, env.Error.Status)
}

func TestLogin_SetsAuthorizationHeader(t *testing.T) {
	router := newTestServer(t)
	signupAndLogin(t, router, "닉네임1", "header@test.com")

	w := doJSON(t, router, http.MethodPost, "/api/member/login", "", gin.H{
		"email":    "header@test.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Authorization"), "Bearer ")
}

func TestLogin_WrongPassword(t *testing.T) {
	router := newTestServer(t)
	signupAndLogin(t, router, "닉네임1", "creds@test.com")

	w := doJSON(t, router, http.MethodPost, "/api/member/login", "", gin.H{
		"email":    "creds@test.com",
		"password": "wrongpass1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "이메일 혹은 비밀번호를 확인해주세요.", env.Error.Message)
}

func TestProfile_RoundTrip(t *testing.T) {
	router := newTestServer(t)
	token, memberID := signupAndLogin(t, router, "닉네임1", "profile@test.com")

	w := doJSON(t, router, http.MethodGet, "/api/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profile struct {
		MemberID int64  `json:"memberId"`
		Nickname string `json:"nickname"`
	}
	decodeResponse(t, w, &profile)
	assert.Equal(t, memberID, profile.MemberID)
	assert.Equal(t, "닉네임1", profile.Nickname)
}

func TestProfile_RequiresToken(t *testing.T) {
	router := newTestServer(t)

	w := doJSON(t, router, http.MethodGet, "/api/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A garbage token is rejected the same way.
	w = doJSON(t, router, http.MethodGet, "/api/profile", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
