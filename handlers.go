package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"time"
)

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func stateHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(session.View())
	}
}

func clickHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if session.PlayerName() == "" {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "NO_PLAYER"})
			return
		}

		newAchievements := session.Click()
		snap := session.Snapshot()
		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			ClickLevel:      snap.ClickLevel,
			ClickProgress:   snap.ClickProgress,
			NewAchievements: newAchievements,
		})
	}
}

func buyGeneratorHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req BuyGeneratorRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if session.PlayerName() == "" {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "NO_PLAYER"})
			return
		}

		ok, newAchievements := session.BuyGenerator(req.GeneratorID)
		snap := session.Snapshot()
		if !ok {
			code := "INSUFFICIENT_POINTS"
			if findGenerator(snap.Generators, req.GeneratorID) == nil {
				code = "UNKNOWN_GENERATOR"
			}
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: code, Points: snap.Points})
			return
		}

		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			NewAchievements: newAchievements,
		})
	}
}

func buyUpgradeHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req BuyUpgradeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if session.PlayerName() == "" {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "NO_PLAYER"})
			return
		}

		ok, newAchievements := session.BuyUpgrade(req.UpgradeID)
		snap := session.Snapshot()
		if !ok {
			code := "INSUFFICIENT_POINTS"
			if u := findUpgrade(snap.Upgrades, req.UpgradeID); u == nil {
				code = "UNKNOWN_UPGRADE"
			} else if u.Purchased {
				code = "ALREADY_PURCHASED"
			}
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: code, Points: snap.Points})
			return
		}

		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			NewAchievements: newAchievements,
		})
	}
}

func rebirthHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if session.PlayerName() == "" {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "NO_PLAYER"})
			return
		}

		ok, newAchievements := session.Rebirth()
		snap := session.Snapshot()
		if !ok {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "INSUFFICIENT_POINTS", Points: snap.Points})
			return
		}
		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			Gems:            snap.Gems,
			NewAchievements: newAchievements,
		})
	}
}

func prestigeHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if session.PlayerName() == "" {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "NO_PLAYER"})
			return
		}

		ok, newAchievements := session.Prestige()
		snap := session.Snapshot()
		if !ok {
			json.NewEncoder(w).Encode(MutationResponse{OK: false, Error: "INSUFFICIENT_GEMS", Gems: snap.Gems})
			return
		}
		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			Gems:            snap.Gems,
			PrestigeLevel:   snap.PrestigeLevel,
			NewAchievements: newAchievements,
		})
	}
}

func goldenClickHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if !session.CollectGoldenToken() {
			json.NewEncoder(w).Encode(SimpleResponse{OK: false, Error: "NO_TOKEN"})
			return
		}
		_, boost := session.bonus.View()
		json.NewEncoder(w).Encode(GoldenClickResponse{OK: true, Boost: boost})
	}
}

func playerHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(PlayerResponse{
				OK:         true,
				PlayerName: session.PlayerName(),
			})
		case http.MethodPost:
			var req PlayerRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			name := normalizePlayerName(req.Name)
			if name == "" {
				json.NewEncoder(w).Encode(PlayerResponse{OK: false, Error: "INVALID_NAME"})
				return
			}

			report, newAchievements, err := session.LoadPlayer(name)
			if err != nil {
				json.NewEncoder(w).Encode(PlayerResponse{OK: false, Error: "INTERNAL_ERROR"})
				return
			}
			json.NewEncoder(w).Encode(PlayerResponse{
				OK:              true,
				PlayerName:      name,
				OfflinePoints:   report.Points,
				OfflineSeconds:  int64(report.Duration.Seconds()),
				NewAchievements: newAchievements,
			})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func randomNameHandler() http.HandlerFunc {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		json.NewEncoder(w).Encode(PlayerResponse{OK: true, PlayerName: randomPlayerName(rng)})
	}
}

func switchAccountHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		session.SwitchAccount()
		json.NewEncoder(w).Encode(SimpleResponse{OK: true})
	}
}

func hardResetHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		session.HardReset()
		json.NewEncoder(w).Encode(SimpleResponse{OK: true})
	}
}

// cheatHandler is only mounted in dev mode, and double-checks anyway.
func cheatHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		ok, newAchievements := session.CheatUnlockAll()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		snap := session.Snapshot()
		json.NewEncoder(w).Encode(MutationResponse{
			OK:              true,
			Points:          snap.Points,
			Gems:            snap.Gems,
			PrestigeLevel:   snap.PrestigeLevel,
			NewAchievements: newAchievements,
		})
	}
}

func settingsHandler(session *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(SettingsResponse{OK: true, Settings: GetGameSettings()})
		case http.MethodPost:
			if !session.devMode {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var updates map[string]string
			if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			settings, err := UpdateGameSettings(session.store, updates)
			if err != nil {
				json.NewEncoder(w).Encode(SettingsResponse{OK: false, Error: "INTERNAL_ERROR", Settings: settings})
				return
			}
			json.NewEncoder(w).Encode(SettingsResponse{OK: true, Settings: settings})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}
