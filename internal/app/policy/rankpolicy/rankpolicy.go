// Package rankpolicy derives the leaderboard order.
//
// Ranking rules:
//   - Users are ordered by cumulative FTDs, highest first
//   - Ties break on creation time, then on ObjectID, so the order is
//     deterministic and stable across repeated reads of the same data
//   - Ranks are positional: 1..N with no gaps, and tied FTD values still get
//     distinct sequential ranks (this mirrors the leaderboard's observed
//     behavior and is covered by a test; it is not competition ranking)
//   - Rank is derived fresh on every read and never persisted
package rankpolicy

import (
	"sort"

	"github.com/salesboard/salesboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort orders users in leaderboard order, in place.
func Sort(users []models.User) {
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i], users[j]
		if a.FTDs != b.FTDs {
			return a.FTDs > b.FTDs
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID.Hex() < b.ID.Hex()
	})
}

// Rank returns the public profiles of users in leaderboard order with
// positional ranks assigned 1..N.
func Rank(users []models.User) []models.PublicUser {
	Sort(users)
	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public(i+1))
	}
	return out
}

// RankOf returns the 1-based rank of id within users, or 0 if absent.
// users is sorted as a side effect.
func RankOf(users []models.User, id primitive.ObjectID) int {
	Sort(users)
	for i := range users {
		if users[i].ID == id {
			return i + 1
		}
	}
	return 0
}
