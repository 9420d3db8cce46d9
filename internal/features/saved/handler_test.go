package saved

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/movira-app/movira-api/internal/features/auth"
	"github.com/movira-app/movira-api/internal/pkg/token"
	"github.com/movira-app/movira-api/internal/tmdb"
)

type pair struct {
	userID  string
	movieID int
}

type fakeStore struct {
	records map[pair]*SavedMovie
	creates []*SavedMovie
	deletes []pair
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: map[pair]*SavedMovie{}}
}

func (f *fakeStore) Create(_ context.Context, record *SavedMovie) error {
	key := pair{record.UserID, record.MovieID}
	f.creates = append(f.creates, record)
	if _, exists := f.records[key]; !exists {
		f.records[key] = record
	}
	return nil
}

func (f *fakeStore) Delete(_ context.Context, userID string, movieID int) error {
	key := pair{userID, movieID}
	f.deletes = append(f.deletes, key)
	delete(f.records, key)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, userID string, movieID int) (bool, error) {
	_, ok := f.records[pair{userID, movieID}]
	return ok, nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]SavedMovie, error) {
	var out []SavedMovie
	for key, record := range f.records {
		if key.userID == userID {
			out = append(out, *record)
		}
	}
	if out == nil {
		out = []SavedMovie{}
	}
	return out, nil
}

type fakeCatalog struct {
	details map[int]*tmdb.MovieDetails
	calls   int
}

func (f *fakeCatalog) MovieDetails(_ context.Context, id int) (*tmdb.MovieDetails, error) {
	f.calls++
	return f.details[id], nil
}

type fakeSessions struct {
	byID map[string]*auth.Session
}

func (f *fakeSessions) Create(_ context.Context, accountID, email string, ttl time.Duration) (*auth.Session, error) {
	session := &auth.Session{ID: "sess-" + accountID, AccountID: accountID, ExpiresAt: time.Now().Add(ttl)}
	f.byID[session.ID] = session
	return session, nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*auth.Session, error) {
	return f.byID[id], nil
}

func (f *fakeSessions) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeUsers struct {
	byAccountID map[string]*auth.User
}

func (f *fakeUsers) CreateUser(_ context.Context, user *auth.User) error {
	f.byAccountID[user.AccountID] = user
	return nil
}

func (f *fakeUsers) UserByAccountID(_ context.Context, accountID string) (*auth.User, error) {
	return f.byAccountID[accountID], nil
}

type savedEnv struct {
	router  *gin.Engine
	store   *fakeStore
	catalog *fakeCatalog
	token   string
}

// newSavedEnv wires the handlers behind the real auth middleware with a
// live fake session for account "acc-1".
func newSavedEnv(t *testing.T) *savedEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := &fakeSessions{byID: map[string]*auth.Session{}}
	users := &fakeUsers{byAccountID: map[string]*auth.User{
		"acc-1": {AccountID: "acc-1", Username: "jane"},
	}}

	session, err := sessions.Create(context.Background(), "acc-1", "jane@example.com", time.Hour)
	require.NoError(t, err)

	tokenString, err := token.GenerateToken("acc-1", session.ID, "jane@example.com")
	require.NoError(t, err)

	env := &savedEnv{
		store:   newFakeStore(),
		catalog: &fakeCatalog{details: map[int]*tmdb.MovieDetails{}},
		token:   tokenString,
	}

	handler := NewHandler(env.store, env.catalog)
	requireAuth := auth.Middleware(sessions, users)

	env.router = gin.New()
	env.router.GET("/movies/:id/saved", requireAuth, handler.Status)
	env.router.POST("/movies/:id/save", requireAuth, handler.Toggle)
	env.router.GET("/saved", requireAuth, handler.List)

	return env
}

func (e *savedEnv) do(t *testing.T, method, path, body string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if authed {
		r.Header.Set("Authorization", "Bearer "+e.token)
	}
	e.router.ServeHTTP(w, r)
	return w
}

func TestToggleRequiresSession(t *testing.T) {
	env := newSavedEnv(t)

	w := env.do(t, "POST", "/movies/42/save", `{"action":"save"}`, false)

	require.Equal(t, 401, w.Code)
	require.Empty(t, env.store.creates)
	require.Zero(t, env.catalog.calls)
}

func TestToggleSaveCreatesRecordFromCatalog(t *testing.T) {
	env := newSavedEnv(t)
	env.catalog.details[438631] = &tmdb.MovieDetails{
		ID:          438631,
		Title:       "Dune",
		PosterPath:  "/dune.jpg",
		VoteAverage: 7.8,
		ReleaseDate: "2021-09-15",
	}

	w := env.do(t, "POST", "/movies/438631/save", `{"action":"save"}`, true)

	require.Equal(t, 200, w.Code)
	require.Len(t, env.store.creates, 1)

	record := env.store.creates[0]
	require.Equal(t, "acc-1", record.UserID)
	require.Equal(t, 438631, record.MovieID)
	require.Equal(t, "Dune", record.Title)
	require.Equal(t, "/dune.jpg", record.PosterPath)
	require.Equal(t, 7.8, record.VoteAverage)

	var body struct {
		Data ToggleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Data.IsSaved)
}

func TestToggleUnsaveDeletesExactPair(t *testing.T) {
	env := newSavedEnv(t)
	env.store.records[pair{"acc-1", 438631}] = &SavedMovie{UserID: "acc-1", MovieID: 438631}
	env.store.records[pair{"acc-2", 438631}] = &SavedMovie{UserID: "acc-2", MovieID: 438631}

	w := env.do(t, "POST", "/movies/438631/save", `{"action":"unsave"}`, true)

	require.Equal(t, 200, w.Code)
	require.Equal(t, []pair{{"acc-1", 438631}}, env.store.deletes)
	// The other user's record is untouched.
	require.Contains(t, env.store.records, pair{"acc-2", 438631})
	// Unsave never needs the catalog.
	require.Zero(t, env.catalog.calls)
}

func TestToggleInvalidAction(t *testing.T) {
	env := newSavedEnv(t)

	w := env.do(t, "POST", "/movies/42/save", `{"action":"favorite"}`, true)

	require.Equal(t, 400, w.Code)
	require.Empty(t, env.store.creates)
	require.Empty(t, env.store.deletes)
}

func TestStatus(t *testing.T) {
	env := newSavedEnv(t)
	env.store.records[pair{"acc-1", 42}] = &SavedMovie{UserID: "acc-1", MovieID: 42}

	w := env.do(t, "GET", "/movies/42/saved", "", true)
	require.Equal(t, 200, w.Code)
	var body struct {
		Data StatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Data.IsSaved)

	w = env.do(t, "GET", "/movies/43/saved", "", true)
	require.Equal(t, 200, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.False(t, body.Data.IsSaved)
}

func TestListReturnsOnlyOwnRecords(t *testing.T) {
	env := newSavedEnv(t)
	env.store.records[pair{"acc-1", 1}] = &SavedMovie{UserID: "acc-1", MovieID: 1, Title: "Heat"}
	env.store.records[pair{"acc-2", 2}] = &SavedMovie{UserID: "acc-2", MovieID: 2, Title: "Alien"}

	w := env.do(t, "GET", "/saved", "", true)

	require.Equal(t, 200, w.Code)
	var body struct {
		Data []SavedMovie `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	require.Equal(t, "Heat", body.Data[0].Title)
}

func TestListEmptyIsArray(t *testing.T) {
	env := newSavedEnv(t)

	w := env.do(t, "GET", "/saved", "", true)

	require.Equal(t, 200, w.Code)
	require.Contains(t, w.Body.String(), `"data":[]`)
}
