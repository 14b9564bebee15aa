package leaderboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/salesboard/salesboard/internal/app/features/leaderboard"
	userstore "github.com/salesboard/salesboard/internal/app/store/users"
	"github.com/salesboard/salesboard/internal/domain/models"
	"github.com/salesboard/salesboard/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*leaderboard.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	clocks, _ := testutil.FixedClock(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC))
	return leaderboard.NewHandler(userstore.New(db, clocks), zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestServeLeaderboard_RankedOrder(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "Low", "low@x.io", 1)
	fx.CreateUser(ctx, "High", "high@x.io", 9)
	fx.CreateUser(ctx, "Mid", "mid@x.io", 5)

	req := httptest.NewRequest("GET", "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	h.ServeLeaderboard(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var board []models.PublicUser
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if len(board) != 3 {
		t.Fatalf("entries: got %d, want 3", len(board))
	}
	if board[0].Name != "High" || board[1].Name != "Mid" || board[2].Name != "Low" {
		t.Errorf("order: got [%s %s %s], want FTDs descending",
			board[0].Name, board[1].Name, board[2].Name)
	}
	for i, u := range board {
		if u.Rank != i+1 {
			t.Errorf("rank at position %d: got %d, want %d", i, u.Rank, i+1)
		}
	}
}

func TestServeLeaderboard_TiesGetPositionalRanks(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "A", "a@x.io", 4)
	fx.CreateUser(ctx, "B", "b@x.io", 4)

	req := httptest.NewRequest("GET", "/api/leaderboard", nil)
	rec := httptest.NewRecorder()
	h.ServeLeaderboard(rec, req)

	var board []models.PublicUser
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("entries: got %d, want 2", len(board))
	}
	// Equal counters still occupy distinct positions.
	if board[0].Rank != 1 || board[1].Rank != 2 {
		t.Errorf("ranks: got [%d %d], want [1 2]", board[0].Rank, board[1].Rank)
	}
}

func TestHandleReset(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateUser(ctx, "A", "a@x.io", 4)
	fx.CreateUser(ctx, "B", "b@x.io", 7)

	req := httptest.NewRequest("POST", "/api/leaderboard/reset", nil)
	rec := httptest.NewRecorder()
	h.HandleReset(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if resp["reset"] != 2 {
		t.Errorf("reset count: got %d, want 2", resp["reset"])
	}

	rec = httptest.NewRecorder()
	h.ServeLeaderboard(rec, httptest.NewRequest("GET", "/api/leaderboard", nil))
	var board []models.PublicUser
	if err := json.Unmarshal(rec.Body.Bytes(), &board); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	for _, u := range board {
		if u.FTDs != 0 || u.PlusOnes != 0 {
			t.Errorf("user %s not zeroed: ftds=%d plusOnes=%d", u.Name, u.FTDs, u.PlusOnes)
		}
	}
}
