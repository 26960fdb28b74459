package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"dogwalking_backend/internal/handlers"
	"dogwalking_backend/internal/repositories/memory"
	"dogwalking_backend/internal/routes"
	"dogwalking_backend/internal/services"
	"dogwalking_backend/internal/storage"
	"dogwalking_backend/internal/validator"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the wire shape of every API response.
type envelope struct {
	Success  bool            `json:"success"`
	Response json.RawMessage `json:"response"`
	Error    *struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

// newTestServer wires the full router over the in-memory store, the same way
// the application wires it over the database.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	store := memory.NewStore()
	fileStore, err := storage.NewStorage(storage.Config{
		BasePath: t.TempDir(),
		BaseURL:  "/files",
	})
	require.NoError(t, err)

	imageService := services.NewImageService(fileStore, 10*1024*1024, nil)
	authService := services.NewAuthService(store.MemberRepository(), "test-secret", time.Hour)
	memberService := services.NewMemberService(store.MemberRepository(), store.DogRepository(), imageService)
	dogService := services.NewDogService(store.DogRepository(), imageService)
	notificationService := services.NewNotificationService(store.NotificationRepository(), store.DogRepository(), store.ApplicationRepository())
	applicationService := services.NewApplicationService(store.ApplicationRepository(), store.NotificationRepository())
	matchService := services.NewMatchService(store.MatchStore())
	seedService := services.NewSeedService(store.MemberRepository(), store.DogRepository(), store.NotificationRepository())

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		MemberHandler:       handlers.NewMemberHandler(base, authService, memberService),
		DogHandler:          handlers.NewDogHandler(base, dogService),
		NotificationHandler: handlers.NewNotificationHandler(base, notificationService, applicationService),
		ApplicationHandler:  handlers.NewApplicationHandler(base, applicationService),
		MatchHandler:        handlers.NewMatchHandler(base, matchService),
		HomeHandler:         handlers.NewHomeHandler(base, notificationService, seedService),
	}

	router := gin.New()
	routes.RegisterRoutes(router, appHandlers, authService)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	env := decodeEnvelope(t, w)
	require.True(t, env.Success, "expected success envelope, got: %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Response, out))
}

// signupAndLogin registers a fresh member over HTTP and returns their bearer
// token and member id.
func signupAndLogin(t *testing.T, router *gin.Engine, nickname, email string) (string, int64) {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/member/signup", "", gin.H{
		"nickname": nickname,
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/member/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		AccessToken string `json:"accessToken"`
		Member      struct {
			MemberID int64 `json:"memberId"`
		} `json:"member"`
	}
	decodeResponse(t, w, &login)
	require.NotEmpty(t, login.AccessToken)
	return login.AccessToken, login.Member.MemberID
}

// registerDog creates a dog over the multipart endpoint and returns its id.
func registerDog(t *testing.T, router *gin.Engine, token, name string) int64 {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("breed", "푸들"))
	require.NoError(t, mw.WriteField("name", name))
	require.NoError(t, mw.WriteField("sex", "수컷"))
	require.NoError(t, mw.WriteField("size", "대형견"))
	part, err := mw.CreateFormFile("image", "dog.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/profile/dog", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var dog struct {
		DogID int64 `json:"dogId"`
	}
	decodeResponse(t, w, &dog)
	return dog.DogID
}

// postNotification publishes a walk posting for the dog and returns its id.
func postNotification(t *testing.T, router *gin.Engine, token string, dogID int64) int64 {
	t.Helper()

	start := time.Date(2023, time.October, 13, 22, 36, 0, 0, time.UTC)
	w := doJSON(t, router, http.MethodPost, "/api/notification", token, gin.H{
		"dogId":       dogID,
		"title":       "제목1",
		"significant": "우리 아이는 착해용",
		"start":       start,
		"end":         start.Add(time.Hour),
		"coin":        40000,
		"lat":         34.25,
		"lng":         43.1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var n struct {
		NotificationID int64 `json:"notificationId"`
	}
	decodeResponse(t, w, &n)
	return n.NotificationID
}

// apply submits an application for the notification and returns its id.
func apply(t *testing.T, router *gin.Engine, token string, notificationID int64) int64 {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/application", token, gin.H{
		"notificationId": notificationID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var a struct {
		ApplicationID int64 `json:"applicationId"`
	}
	decodeResponse(t, w, &a)
	return a.ApplicationID
}

func notificationPath(id int64) string {
	return fmt.Sprintf("/api/notification/%d", id)
}
