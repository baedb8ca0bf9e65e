package router_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-dev/portfolio/internal/auth"
	"github.com/portfolio-dev/portfolio/internal/config"
	"github.com/portfolio-dev/portfolio/internal/models"
	"github.com/portfolio-dev/portfolio/internal/router"
	"github.com/portfolio-dev/portfolio/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.Stores) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	require.NoError(t, auth.Init("test-secret"))

	st := store.NewMemoryStores()
	cfg := &config.Config{Port: "0"}

	return router.NewRouter(cfg, st), st
}

func seedUser(t *testing.T, st *store.Stores, name, email, password string, admin bool) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      admin,
	}
	require.NoError(t, st.Users.Create(context.Background(), &user))

	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()

	token, err := auth.GenerateJWT(user.ID, user.Email, user.IsAdmin)
	require.NoError(t, err)

	return token
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader

	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)

	return body.Error
}

func TestSigninReturnsTokenAndUser(t *testing.T) {
	r, st := newTestRouter(t)
	seedUser(t, st, "Admin", "admin@example.com", "secret123", true)

	w := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"admin@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	decode(t, w, &res)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin@example.com", res.User.Email)
	assert.True(t, res.User.IsAdmin)

	// The hash never leaves the server.
	assert.NotContains(t, w.Body.String(), "PasswordHash")
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestSigninFailuresShareOneMessage(t *testing.T) {
	r, st := newTestRouter(t)
	seedUser(t, st, "Admin", "admin@example.com", "secret123", true)

	wrongPassword := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"admin@example.com","password":"nope-nope"}`, "")
	unknownEmail := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"ghost@example.com","password":"secret123"}`, "")

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, "Invalid email or password", errorBody(t, wrongPassword))
	assert.Equal(t, "Invalid email or password", errorBody(t, unknownEmail))
}

func TestSignoutClearsCookie(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(r, http.MethodGet, "/auth/signout", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestAdminGuardDistinguishes401And403(t *testing.T) {
	r, st := newTestRouter(t)
	visitor := seedUser(t, st, "Visitor", "visitor@example.com", "secret123", false)

	body := `{"title":"Web Dev","description":"APIs"}`

	unauthenticated := doJSON(r, http.MethodPost, "/api/services", body, "")
	assert.Equal(t, http.StatusUnauthorized, unauthenticated.Code)

	garbageToken := doJSON(r, http.MethodPost, "/api/services", body, "garbage")
	assert.Equal(t, http.StatusUnauthorized, garbageToken.Code)

	forbidden := doJSON(r, http.MethodPost, "/api/services", body, tokenFor(t, visitor))
	assert.Equal(t, http.StatusForbidden, forbidden.Code)
}

func TestAuthCookieAcceptedAsToken(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)

	req := httptest.NewRequest(http.MethodGet, "/api/contacts", strings.NewReader(""))
	req.AddCookie(&http.Cookie{Name: "token", Value: tokenFor(t, admin)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServiceCreateScenario(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	body := `{"title":"Web Dev","description":"Full-stack builds","checklist":["API"],"icon":"code","color":"blue"}`

	created := doJSON(r, http.MethodPost, "/api/services", body, token)
	require.Equal(t, http.StatusCreated, created.Code)

	var svc models.Service
	decode(t, created, &svc)

	assert.NotZero(t, svc.ID)
	assert.False(t, svc.CreatedAt.IsZero())
	assert.Equal(t, "Web Dev", svc.Title)
	assert.Equal(t, []string{"API"}, []string(svc.Checklist))
	assert.Equal(t, "code", svc.Icon)
	assert.Equal(t, "blue", svc.Color)

	listed := doJSON(r, http.MethodGet, "/api/services", "", "")
	require.Equal(t, http.StatusOK, listed.Code)

	var services []models.Service
	decode(t, listed, &services)
	require.Len(t, services, 1)
	assert.Equal(t, svc.ID, services[0].ID)
}

func TestContactInvalidEmailScenario(t *testing.T) {
	r, st := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/contacts", `{"firstname":"A","lastname":"B","email":"bad-email"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid email is required", errorBody(t, w))

	n, err := st.Contacts.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestContactLeadLifecycle(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	// Anyone may submit a lead.
	submitted := doJSON(r, http.MethodPost, "/api/contacts", `{"firstname":"A","lastname":"B","email":"a@b.co","message":"hi"}`, "")
	require.Equal(t, http.StatusCreated, submitted.Code)

	// Reading the inbox needs the admin role.
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodGet, "/api/contacts", "", "").Code)

	listed := doJSON(r, http.MethodGet, "/api/contacts", "", token)
	require.Equal(t, http.StatusOK, listed.Code)

	var leads []models.Contact
	decode(t, listed, &leads)
	require.Len(t, leads, 1)
	assert.Equal(t, "hi", leads[0].Message)

	removed := doJSON(r, http.MethodDelete, fmt.Sprintf("/api/contacts/%d", leads[0].ID), "", token)
	require.Equal(t, http.StatusOK, removed.Code)

	var msg struct {
		Message string `json:"message"`
	}
	decode(t, removed, &msg)
	assert.Equal(t, "Contact removed", msg.Message)
}

func TestProjectPartialUpdateKeepsOmittedFields(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	created := doJSON(r, http.MethodPost, "/api/projects",
		`{"title":"Portfolio","summary":"v1","images":["a.png","b.png"]}`, token)
	require.Equal(t, http.StatusCreated, created.Code)

	var project models.Project
	decode(t, created, &project)

	updated := doJSON(r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID),
		`{"summary":"v2"}`, token)
	require.Equal(t, http.StatusOK, updated.Code)

	read := doJSON(r, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), "", "")
	require.Equal(t, http.StatusOK, read.Code)

	var got models.Project
	decode(t, read, &got)

	assert.Equal(t, "Portfolio", got.Title)
	assert.Equal(t, "v2", got.Summary)
	assert.Equal(t, []string{"a.png", "b.png"}, []string(got.Images))
}

func TestProjectUpdateRejectsBadEmail(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	created := doJSON(r, http.MethodPost, "/api/projects", `{"title":"Portfolio"}`, token)
	require.Equal(t, http.StatusCreated, created.Code)

	var project models.Project
	decode(t, created, &project)

	w := doJSON(r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), `{"email":"nope"}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid email is required", errorBody(t, w))
}

func TestProjectNotFoundAndInvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	missing := doJSON(r, http.MethodGet, "/api/projects/999", "", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "Project not found", errorBody(t, missing))

	malformed := doJSON(r, http.MethodGet, "/api/projects/abc", "", "")
	require.Equal(t, http.StatusBadRequest, malformed.Code)
	assert.Equal(t, "Invalid project id", errorBody(t, malformed))
}

func TestQualificationValidationPersistsNothing(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	w := doJSON(r, http.MethodPost, "/api/qualifications", `{"title":"BSc"}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "A valid email is required", errorBody(t, w))

	n, err := st.Educations.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRemoveAllReportsCountAndEmptiesCollection(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"title":"Service %d","description":"d"}`, i)
		require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/services", body, token).Code)
	}

	removed := doJSON(r, http.MethodDelete, "/api/services", "", token)
	require.Equal(t, http.StatusOK, removed.Code)

	var res struct {
		Message      string `json:"message"`
		DeletedCount int64  `json:"deletedCount"`
	}
	decode(t, removed, &res)
	assert.Equal(t, "All services removed", res.Message)
	assert.Equal(t, int64(3), res.DeletedCount)

	listed := doJSON(r, http.MethodGet, "/api/services", "", "")
	require.Equal(t, http.StatusOK, listed.Code)
	assert.Equal(t, "[]", strings.TrimSpace(listed.Body.String()))
}

func TestPortfolioInfoSingletonLifecycle(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	visitor := seedUser(t, st, "Visitor", "visitor@example.com", "secret123", false)
	token := tokenFor(t, admin)

	// Empty collection reads as 404 so the client can fall back to defaults.
	missing := doJSON(r, http.MethodGet, "/api/portfolioinfo", "", "")
	require.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "Portfolio info not found", errorBody(t, missing))

	// Upsert is admin-only.
	assert.Equal(t, http.StatusForbidden,
		doJSON(r, http.MethodPut, "/api/portfolioinfo", `{"name":"Jane"}`, tokenFor(t, visitor)).Code)

	created := doJSON(r, http.MethodPut, "/api/portfolioinfo", `{"name":"Jane","headline":"Engineer"}`, token)
	require.Equal(t, http.StatusOK, created.Code)

	// A second upsert merges into the same document.
	merged := doJSON(r, http.MethodPut, "/api/portfolioinfo", `{"bio":"Hi there"}`, token)
	require.Equal(t, http.StatusOK, merged.Code)

	read := doJSON(r, http.MethodGet, "/api/portfolioinfo", "", "")
	require.Equal(t, http.StatusOK, read.Code)

	var info models.PortfolioInfo
	decode(t, read, &info)
	assert.Equal(t, "Jane", info.Name)
	assert.Equal(t, "Engineer", info.Headline)
	assert.Equal(t, "Hi there", info.Bio)

	n, err := st.Infos.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestPortfolioInfoUpsertClearsEmptyFields(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	created := doJSON(r, http.MethodPut, "/api/portfolioinfo",
		`{"name":"Jane","headline":"Engineer","skills":["Go","SQL"]}`, token)
	require.Equal(t, http.StatusOK, created.Code)

	// An explicitly-supplied empty value clears the field.
	cleared := doJSON(r, http.MethodPut, "/api/portfolioinfo", `{"headline":"","skills":[]}`, token)
	require.Equal(t, http.StatusOK, cleared.Code)

	read := doJSON(r, http.MethodGet, "/api/portfolioinfo", "", "")
	require.Equal(t, http.StatusOK, read.Code)

	var info models.PortfolioInfo
	decode(t, read, &info)
	assert.Equal(t, "Jane", info.Name)
	assert.Empty(t, info.Headline)
	assert.Empty(t, []string(info.Skills))
}

func TestProjectCreatedWithoutImagesSerializesEmptyList(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	token := tokenFor(t, admin)

	created := doJSON(r, http.MethodPost, "/api/projects", `{"title":"Portfolio"}`, token)
	require.Equal(t, http.StatusCreated, created.Code)
	assert.Contains(t, created.Body.String(), `"images":[]`)

	var project models.Project
	decode(t, created, &project)

	read := doJSON(r, http.MethodGet, fmt.Sprintf("/api/projects/%d", project.ID), "", "")
	require.Equal(t, http.StatusOK, read.Code)
	assert.Contains(t, read.Body.String(), `"images":[]`)
}

func TestSignupAndDuplicateEmail(t *testing.T) {
	r, _ := newTestRouter(t)

	first := doJSON(r, http.MethodPost, "/api/users", `{"name":"Jane","email":"jane@example.com","password":"secret123"}`, "")
	require.Equal(t, http.StatusCreated, first.Code)

	duplicate := doJSON(r, http.MethodPost, "/api/users", `{"name":"Janet","email":"jane@example.com","password":"secret456"}`, "")
	require.Equal(t, http.StatusConflict, duplicate.Code)
	assert.Equal(t, "Email already exists", errorBody(t, duplicate))

	badEmail := doJSON(r, http.MethodPost, "/api/users", `{"name":"X","email":"nope","password":"secret123"}`, "")
	require.Equal(t, http.StatusBadRequest, badEmail.Code)
	assert.Equal(t, "A valid email is required", errorBody(t, badEmail))

	// Signup does not sign in, but the credentials work immediately.
	signin := doJSON(r, http.MethodPost, "/auth/signin", `{"email":"jane@example.com","password":"secret123"}`, "")
	assert.Equal(t, http.StatusOK, signin.Code)
}

func TestSelfOrAdminGuardOnUsers(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	alice := seedUser(t, st, "Alice", "alice@example.com", "secret123", false)
	bob := seedUser(t, st, "Bob", "bob@example.com", "secret123", false)

	alicePath := fmt.Sprintf("/api/users/%d", alice.ID)

	// Unauthenticated request is unauthorized, not forbidden.
	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodPut, alicePath, `{"name":"New"}`, "").Code)

	// Another non-admin user may not touch the record.
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodPut, alicePath, `{"name":"New"}`, tokenFor(t, bob)).Code)

	// The user herself may.
	self := doJSON(r, http.MethodPut, alicePath, `{"name":"Alice B"}`, tokenFor(t, alice))
	require.Equal(t, http.StatusOK, self.Code)

	// So may an admin.
	byAdmin := doJSON(r, http.MethodPut, alicePath, `{"name":"Alice C"}`, tokenFor(t, admin))
	require.Equal(t, http.StatusOK, byAdmin.Code)

	var updated models.User
	decode(t, byAdmin, &updated)
	assert.Equal(t, "Alice C", updated.Name)
}

func TestUserUpdateMalformedIDIs400ForEveryRole(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	alice := seedUser(t, st, "Alice", "alice@example.com", "secret123", false)

	for _, user := range []models.User{admin, alice} {
		w := doJSON(r, http.MethodPut, "/api/users/abc", `{"name":"New"}`, tokenFor(t, user))
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user id", errorBody(t, w))
	}
}

func TestUserListIsAdminOnly(t *testing.T) {
	r, st := newTestRouter(t)
	admin := seedUser(t, st, "Admin", "admin@example.com", "secret123", true)
	visitor := seedUser(t, st, "Visitor", "visitor@example.com", "secret123", false)

	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodGet, "/api/users", "", "").Code)
	assert.Equal(t, http.StatusForbidden, doJSON(r, http.MethodGet, "/api/users", "", tokenFor(t, visitor)).Code)

	listed := doJSON(r, http.MethodGet, "/api/users", "", tokenFor(t, admin))
	require.Equal(t, http.StatusOK, listed.Code)

	var users []models.User
	decode(t, listed, &users)
	assert.Len(t, users, 2)
}

func TestHealthAndWelcome(t *testing.T) {
	r, _ := newTestRouter(t)

	health := doJSON(r, http.MethodGet, "/api/health", "", "")
	require.Equal(t, http.StatusOK, health.Code)
	assert.Contains(t, health.Body.String(), "ok")

	welcome := doJSON(r, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, welcome.Code)
	assert.Contains(t, welcome.Body.String(), "Portfolio")
}
