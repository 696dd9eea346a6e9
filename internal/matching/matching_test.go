package matching

import (
	"reflect"
	"testing"

	"github.com/google/uuid"

	"github.com/influencer-marketplace/backend/internal/models"
	"github.com/influencer-marketplace/backend/internal/pricing"
)

func entry(handle string, followers int64, engagement float64) PoolEntry {
	return PoolEntry{
		UserID:         uuid.NewSHA1(uuid.NameSpaceOID, []byte(handle)),
		Handle:         handle,
		Followers:      followers,
		EngagementRate: engagement,
	}
}

func TestRankFollowerAndBudgetBounds(t *testing.T) {
	// Campaign with follower band [10k, 500k] and budget [500, 5000]; of the
	// three candidates only the 50k account survives both filters.
	c := &models.Campaign{
		Title:        "Spring drop",
		MinFollowers: 10000,
		MaxFollowers: 500000,
		MinBudget:    500,
		MaxBudget:    5000,
	}
	pool := []PoolEntry{
		entry("small", 5000, 2),
		entry("mid", 50000, 3),
		entry("huge", 1000000, 1),
	}

	got := Rank(c, pool, pricing.Default(), 10, nil)
	if len(got) != 1 {
		t.Fatalf("Rank() returned %d candidates, want 1", len(got))
	}
	if got[0].Handle != "mid" {
		t.Errorf("Rank()[0].Handle = %q, want %q", got[0].Handle, "mid")
	}
	if got[0].EstimatedPrice < 500 || got[0].EstimatedPrice > 5000 {
		t.Errorf("estimated price %v outside budget band", got[0].EstimatedPrice)
	}
}

func TestRankOpenBounds(t *testing.T) {
	// Zero bounds impose no constraint.
	c := &models.Campaign{Title: "Open"}
	pool := []PoolEntry{
		entry("a", 100, 0.5),
		entry("b", 2000000, 8),
	}

	got := Rank(c, pool, pricing.Default(), 10, nil)
	if len(got) != 2 {
		t.Fatalf("Rank() returned %d candidates, want 2", len(got))
	}
	if got[0].Handle != "b" {
		t.Errorf("expected follower-descending order, got %q first", got[0].Handle)
	}
}

func TestRankStableTieOrder(t *testing.T) {
	c := &models.Campaign{Title: "Ties"}
	pool := []PoolEntry{
		entry("first", 5000, 1),
		entry("second", 5000, 9),
		entry("third", 5000, 4),
	}

	got := Rank(c, pool, pricing.Default(), 10, nil)
	order := []string{got[0].Handle, got[1].Handle, got[2].Handle}
	if !reflect.DeepEqual(order, []string{"first", "second", "third"}) {
		t.Errorf("tie order = %v, want stable input order", order)
	}
}

func TestRankIdempotent(t *testing.T) {
	c := &models.Campaign{Title: "Repeat", MinFollowers: 1000}
	pool := []PoolEntry{
		entry("a", 30000, 2),
		entry("b", 30000, 5),
		entry("c", 90000, 1),
		entry("d", 500, 9),
	}

	first := Rank(c, pool, pricing.Default(), 10, nil)
	second := Rank(c, pool, pricing.Default(), 10, nil)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Rank() is not idempotent over unchanged inputs")
	}
}

func TestRankLimitTruncates(t *testing.T) {
	c := &models.Campaign{Title: "Limit"}
	var pool []PoolEntry
	for _, h := range []string{"a", "b", "c", "d", "e"} {
		pool = append(pool, entry(h, 10000, 1))
	}

	got := Rank(c, pool, pricing.Default(), 2, nil)
	if len(got) != 2 {
		t.Errorf("Rank() returned %d candidates, want 2", len(got))
	}
}

func TestRankAnnotatesInvitedWithoutFiltering(t *testing.T) {
	c := &models.Campaign{Title: "Reach"}
	a := entry("a", 20000, 2)
	b := entry("b", 10000, 2)
	invited := map[uuid.UUID]bool{a.UserID: true}

	got := Rank(c, []PoolEntry{a, b}, pricing.Default(), 10, invited)
	if len(got) != 2 {
		t.Fatalf("invited influencers must still appear, got %d candidates", len(got))
	}
	if !got[0].AlreadyInvited {
		t.Errorf("candidate %q should be flagged already invited", got[0].Handle)
	}
	if got[1].AlreadyInvited {
		t.Errorf("candidate %q should not be flagged", got[1].Handle)
	}
}

func TestRankEngagementBound(t *testing.T) {
	c := &models.Campaign{Title: "Engaged", MinEngagementRate: 2.0}
	pool := []PoolEntry{
		entry("low", 50000, 1.5),
		entry("high", 50000, 3.5),
	}

	got := Rank(c, pool, pricing.Default(), 10, nil)
	if len(got) != 1 || got[0].Handle != "high" {
		t.Errorf("engagement filter failed: %+v", got)
	}
}

func TestRankCategoryOverlap(t *testing.T) {
	c := &models.Campaign{Title: "Fitness", Categories: []string{"health", "sports"}}
	in := entry("match", 10000, 2)
	in.Categories = []string{"sports", "travel"}
	out := entry("miss", 10000, 2)
	out.Categories = []string{"food"}
	none := entry("untagged", 10000, 2)

	got := Rank(c, []PoolEntry{in, out, none}, pricing.Default(), 10, nil)
	if len(got) != 1 || got[0].Handle != "match" {
		t.Errorf("category filter failed: %+v", got)
	}
}
