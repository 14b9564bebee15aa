package profile_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/salesboard/salesboard/internal/app/features/profile"
	notestore "github.com/salesboard/salesboard/internal/app/store/notes"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/app/system/auth"
	"github.com/salesboard/salesboard/internal/domain/models"
	"github.com/salesboard/salesboard/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*profile.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	clocks, _ := testutil.FixedClock(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	h := profile.NewHandler(userstore.New(db, clocks), notestore.New(db), zap.NewNop())
	return h, testutil.NewFixtures(t, db)
}

func asUser(r *http.Request, u models.User) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID: u.ID.Hex(), Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin,
	})
}

func TestServeProfile(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Me", "me@x.io", 6)

	req := asUser(httptest.NewRequest("GET", "/api/profile", nil), u)
	rec := httptest.NewRecorder()
	h.ServeProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body)
	}
	var got models.PublicUser
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if got.Name != "Me" || got.FTDs != 6 {
		t.Errorf("profile: %+v", got)
	}
}

func TestServeProfile_NoSession(t *testing.T) {
	h, _ := newHandler(t)

	rec := httptest.NewRecorder()
	h.ServeProfile(rec, httptest.NewRequest("GET", "/api/profile", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusForbidden)
	}
}

func TestHandleUpdateProfile(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Old Name", "me@x.io", 0)

	body := `{"name":"New Name","profilePicture":"https://cdn.example.com/me.png"}`
	req := asUser(httptest.NewRequest("PUT", "/api/profile", strings.NewReader(body)), u)
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body)
	}
	var got models.PublicUser
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("Name: got %q, want New Name", got.Name)
	}
	if got.ProfilePicture != "https://cdn.example.com/me.png" {
		t.Errorf("ProfilePicture: got %q", got.ProfilePicture)
	}
	// Counters cannot be reached through profile updates.
	if got.FTDs != 0 {
		t.Errorf("FTDs: got %d, want 0", got.FTDs)
	}
}

func TestHandleUpdateProfile_EmptyName(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Keep", "me@x.io", 0)

	req := asUser(httptest.NewRequest("PUT", "/api/profile", strings.NewReader(`{"name":"  "}`)), u)
	rec := httptest.NewRecorder()
	h.HandleUpdateProfile(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestNotes_CRUD(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Me", "me@x.io", 0)

	// Empty list serializes as [], not null.
	rec := httptest.NewRecorder()
	h.ServeNotes(rec, asUser(httptest.NewRequest("GET", "/api/profile/notes", nil), u))
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("empty list: got %q, want []", body)
	}

	// Create.
	rec = httptest.NewRecorder()
	h.HandleCreateNote(rec, asUser(
		httptest.NewRequest("POST", "/api/profile/notes", strings.NewReader(`{"body":"call the lead"}`)), u))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status: got %d, want %d; body %s", rec.Code, http.StatusCreated, rec.Body)
	}
	var n models.Note
	if err := json.Unmarshal(rec.Body.Bytes(), &n); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if n.Body != "call the lead" {
		t.Errorf("Body: got %q", n.Body)
	}

	// Update.
	rec = httptest.NewRecorder()
	req := asUser(httptest.NewRequest("PUT", "/api/profile/notes/"+n.ID.Hex(),
		strings.NewReader(`{"body":"lead closed"}`)), u)
	req = testutil.WithChiURLParam(req, "noteID", n.ID.Hex())
	h.HandleUpdateNote(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("update status: got %d; body %s", rec.Code, rec.Body)
	}

	// List reflects the update.
	rec = httptest.NewRecorder()
	h.ServeNotes(rec, asUser(httptest.NewRequest("GET", "/api/profile/notes", nil), u))
	var notes []models.Note
	if err := json.Unmarshal(rec.Body.Bytes(), &notes); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if len(notes) != 1 || notes[0].Body != "lead closed" {
		t.Errorf("notes: %+v", notes)
	}

	// Delete.
	rec = httptest.NewRecorder()
	req = asUser(httptest.NewRequest("DELETE", "/api/profile/notes/"+n.ID.Hex(), nil), u)
	req = testutil.WithChiURLParam(req, "noteID", n.ID.Hex())
	h.HandleDeleteNote(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status: got %d; body %s", rec.Code, rec.Body)
	}
}

func TestNotes_InvalidNoteID(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u := fx.CreateUser(ctx, "Me", "me@x.io", 0)

	req := asUser(httptest.NewRequest("DELETE", "/api/profile/notes/junk", nil), u)
	req = testutil.WithChiURLParam(req, "noteID", "junk")
	rec := httptest.NewRecorder()
	h.HandleDeleteNote(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
