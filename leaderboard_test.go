package main

import "testing"

func TestRankLeaderboard(t *testing.T) {
	records := map[string]LeaderboardStats{
		"Alice":   {Points: 100, TotalClicks: 5, Gems: 1},
		"Bob":     {Points: 300, TotalClicks: 50, Gems: 0},
		"Charlie": {Points: 200, TotalClicks: 5, Gems: 9},
	}
	order := []string{"Alice", "Bob", "Charlie"}

	ranked := rankLeaderboard(records, order, CategoryPoints, "Charlie")
	if len(ranked) != 3 {
		t.Fatalf("expected 3 entries got %d", len(ranked))
	}
	wantNames := []string{"Bob", "Charlie", "Alice"}
	for i, name := range wantNames {
		if ranked[i].Name != name {
			t.Fatalf("position %d: expected %q got %q", i, name, ranked[i].Name)
		}
		if ranked[i].Rank != i+1 {
			t.Fatalf("position %d: expected rank %d got %d", i, i+1, ranked[i].Rank)
		}
	}

	playerCount := 0
	for _, e := range ranked {
		if e.IsPlayer {
			playerCount++
			if e.Name != "Charlie" {
				t.Fatalf("isPlayer on wrong entry %q", e.Name)
			}
		}
	}
	if playerCount != 1 {
		t.Fatalf("expected exactly one isPlayer entry got %d", playerCount)
	}
}

func TestRankLeaderboardTiesAreStable(t *testing.T) {
	records := map[string]LeaderboardStats{
		"Alice":   {TotalClicks: 5},
		"Bob":     {TotalClicks: 5},
		"Charlie": {TotalClicks: 5},
	}
	order := []string{"Alice", "Bob", "Charlie"}

	ranked := rankLeaderboard(records, order, CategoryTotalClicks, "")
	for i, name := range order {
		if ranked[i].Name != name {
			t.Fatalf("tie order broken at %d: expected %q got %q", i, name, ranked[i].Name)
		}
	}
}

func TestRankLeaderboardByCategory(t *testing.T) {
	records := map[string]LeaderboardStats{
		"Alice": {Points: 1, Gems: 10},
		"Bob":   {Points: 100, Gems: 2},
	}
	order := []string{"Alice", "Bob"}

	byGems := rankLeaderboard(records, order, CategoryGems, "")
	if byGems[0].Name != "Alice" || byGems[0].Score != 10 {
		t.Fatalf("gems category: expected Alice first, got %+v", byGems[0])
	}
}

func TestRankLeaderboardEmpty(t *testing.T) {
	ranked := rankLeaderboard(map[string]LeaderboardStats{}, nil, CategoryPoints, "Alice")
	if len(ranked) != 0 {
		t.Fatalf("empty board: expected no entries got %d", len(ranked))
	}
}

func TestParseLeaderboardCategory(t *testing.T) {
	if got := parseLeaderboardCategory("gems"); got != CategoryGems {
		t.Fatalf("expected gems got %q", got)
	}
	if got := parseLeaderboardCategory("totalClicks"); got != CategoryTotalClicks {
		t.Fatalf("expected totalClicks got %q", got)
	}
	if got := parseLeaderboardCategory(""); got != CategoryPoints {
		t.Fatalf("empty category must default to points, got %q", got)
	}
	if got := parseLeaderboardCategory("bogus"); got != CategoryPoints {
		t.Fatalf("unknown category must default to points, got %q", got)
	}
}
