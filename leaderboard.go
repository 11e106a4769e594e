package main

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

type LeaderboardCategory string

const (
	CategoryPoints      LeaderboardCategory = "points"
	CategoryTotalClicks LeaderboardCategory = "totalClicks"
	CategoryGems        LeaderboardCategory = "gems"
)

type RankedEntry struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	IsPlayer bool    `json:"isPlayer"`
}

func categoryScore(stats LeaderboardStats, category LeaderboardCategory) float64 {
	switch category {
	case CategoryTotalClicks:
		return float64(stats.TotalClicks)
	case CategoryGems:
		return float64(stats.Gems)
	default:
		return stats.Points
	}
}

// rankLeaderboard orders every known player by the chosen category,
// descending, ties kept in the record's stable iteration order, ranks
// assigned 1-based by position. Pure over its inputs.
func rankLeaderboard(records map[string]LeaderboardStats, order []string, category LeaderboardCategory, currentPlayer string) []RankedEntry {
	entries := make([]RankedEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, RankedEntry{
			Name:     name,
			Score:    categoryScore(records[name], category),
			IsPlayer: name == currentPlayer,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}

func parseLeaderboardCategory(raw string) LeaderboardCategory {
	switch LeaderboardCategory(strings.TrimSpace(raw)) {
	case CategoryTotalClicks:
		return CategoryTotalClicks
	case CategoryGems:
		return CategoryGems
	default:
		return CategoryPoints
	}
}

func leaderboardHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		category := parseLeaderboardCategory(r.URL.Query().Get("category"))
		records, order, err := session.store.LoadLeaderboard()
		if err != nil {
			// A broken board must not break the game; serve an empty one.
			records, order = map[string]LeaderboardStats{}, nil
		}

		json.NewEncoder(w).Encode(LeaderboardResponse{
			Category: string(category),
			Results:  rankLeaderboard(records, order, category, session.PlayerName()),
		})
	}
}
