package main

import (
	"encoding/json"
	"net/http"
	"time"
)

type GeneratorView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Emoji      string  `json:"emoji"`
	Level      int     `json:"level"`
	Cost       float64 `json:"cost"`
	Output     float64 `json:"output"`
	Affordable bool    `json:"affordable"`
}

type UpgradeView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Multiplier  float64 `json:"multiplier"`
	Target      string  `json:"target"`
	Purchased   bool    `json:"purchased"`
	Affordable  bool    `json:"affordable"`
}

type AchievementView struct {
	ID       string `json:"id"`
	Icon     string `json:"icon"`
	Secret   bool   `json:"secret"`
	Unlocked bool   `json:"unlocked"`
}

// StateView is the full derived snapshot the client renders from: raw state
// plus every formula output it would otherwise have to recompute.
type StateView struct {
	ServerTime         string            `json:"serverTime"`
	PlayerName         string            `json:"playerName,omitempty"`
	Points             float64           `json:"points"`
	PointsDisplay      string            `json:"pointsDisplay"`
	PointsPerSecond    float64           `json:"pointsPerSecond"`
	PpsDisplay         string            `json:"ppsDisplay"`
	ClickPower         float64           `json:"clickPower"`
	ClickLevel         int               `json:"clickLevel"`
	ClickProgress      int               `json:"clickProgress"`
	ClicksForNextLevel int               `json:"clicksForNextLevel"`
	TotalClicks        int64             `json:"totalClicks"`
	Gems               int               `json:"gems"`
	PrestigeLevel      int               `json:"prestigeLevel"`
	RebirthCost        float64           `json:"rebirthCost"`
	CanRebirth         bool              `json:"canRebirth"`
	PrestigeCost       int               `json:"prestigeCost"`
	CanPrestige        bool              `json:"canPrestige"`
	Generators         []GeneratorView   `json:"generators"`
	Upgrades           []UpgradeView     `json:"upgrades"`
	Achievements       []AchievementView `json:"achievements"`
	Boost              *Boost            `json:"boost,omitempty"`
	GoldenToken        *GoldenToken      `json:"goldenToken,omitempty"`
}

// View assembles the snapshot under one lock so every derived number comes
// from the same state.
func (s *Session) View() StateView {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	boostMultiplier := s.bonus.Multiplier()
	pps := pointsPerSecond(state, boostMultiplier)
	token, boost := s.bonus.View()

	view := StateView{
		ServerTime:         time.Now().UTC().Format(time.RFC3339),
		PlayerName:         s.playerName,
		Points:             state.Points,
		PointsDisplay:      formatNumber(state.Points),
		PointsPerSecond:    pps,
		PpsDisplay:         formatNumber(pps),
		ClickPower:         clickPower(state, boostMultiplier),
		ClickLevel:         state.ClickLevel,
		ClickProgress:      state.ClickProgress,
		ClicksForNextLevel: clicksRequiredForLevel(state.ClickLevel),
		TotalClicks:        state.TotalClicks,
		Gems:               state.Gems,
		PrestigeLevel:      state.PrestigeLevel,
		RebirthCost:        rebirthCost(state.Gems),
		CanRebirth:         state.Points >= rebirthCost(state.Gems),
		PrestigeCost:       prestigeCost(state.PrestigeLevel),
		CanPrestige:        state.Gems >= prestigeCost(state.PrestigeLevel),
		Boost:              boost,
		GoldenToken:        token,
	}

	for _, g := range state.Generators {
		cost := generatorCost(g)
		view.Generators = append(view.Generators, GeneratorView{
			ID:         g.ID,
			Name:       g.Name,
			Emoji:      g.Emoji,
			Level:      g.Level,
			Cost:       cost,
			Output:     generatorOutput(g, state.Upgrades),
			Affordable: state.Points >= cost,
		})
	}
	for _, u := range state.Upgrades {
		view.Upgrades = append(view.Upgrades, UpgradeView{
			ID:          u.ID,
			Name:        u.Name,
			Description: u.Description,
			Cost:        u.Cost,
			Multiplier:  u.Multiplier,
			Target:      u.Target,
			Purchased:   u.Purchased,
			Affordable:  !u.Purchased && state.Points >= u.Cost,
		})
	}
	for _, def := range achievementDefs {
		view.Achievements = append(view.Achievements, AchievementView{
			ID:       def.ID,
			Icon:     def.Icon,
			Secret:   def.Secret,
			Unlocked: state.UnlockedAchievements[def.ID],
		})
	}
	return view
}

// eventsHandler streams the snapshot as server-sent events so the client can
// render without polling.
func eventsHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		sendSnapshot := func() bool {
			payload, err := json.Marshal(session.View())
			if err != nil {
				return false
			}
			if _, err := w.Write([]byte("event: snapshot\ndata: ")); err != nil {
				return false
			}
			if _, err := w.Write(payload); err != nil {
				return false
			}
			if _, err := w.Write([]byte("\n\n")); err != nil {
				return false
			}
			flusher.Flush()
			return true
		}

		if !sendSnapshot() {
			return
		}

		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if !sendSnapshot() {
					return
				}
			}
		}
	}
}
