package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

/* ======================
   Request / Response Types
   ====================== */

type BuyGeneratorRequest struct {
	GeneratorID string `json:"generatorId"`
}

type BuyUpgradeRequest struct {
	UpgradeID string `json:"upgradeId"`
}

type PlayerRequest struct {
	Name string `json:"name"`
}

type MutationResponse struct {
	OK              bool     `json:"ok"`
	Error           string   `json:"error,omitempty"`
	Points          float64  `json:"points,omitempty"`
	Gems            int      `json:"gems,omitempty"`
	PrestigeLevel   int      `json:"prestigeLevel,omitempty"`
	ClickLevel      int      `json:"clickLevel,omitempty"`
	ClickProgress   int      `json:"clickProgress,omitempty"`
	NewAchievements []string `json:"newAchievements,omitempty"`
}

type PlayerResponse struct {
	OK              bool     `json:"ok"`
	Error           string   `json:"error,omitempty"`
	PlayerName      string   `json:"playerName,omitempty"`
	OfflinePoints   float64  `json:"offlinePoints,omitempty"`
	OfflineSeconds  int64    `json:"offlineSeconds,omitempty"`
	NewAchievements []string `json:"newAchievements,omitempty"`
}

type GoldenClickResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
	Boost *Boost `json:"boost,omitempty"`
}

type LeaderboardResponse struct {
	Category string        `json:"category"`
	Results  []RankedEntry `json:"results"`
}

type SettingsResponse struct {
	OK       bool         `json:"ok"`
	Error    string       `json:"error,omitempty"`
	Settings GameSettings `json:"settings"`
}

type SimpleResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

/* ======================
   main()
   ====================== */

func main() {
	config, err := LoadConfig(".")
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	log.Println("App environment:", config.AppEnv)
	if config.DevMode {
		log.Println("⚠️  DEV MODE ENABLED")
	}

	store, err := OpenStore(config.DataFile)
	if err != nil {
		log.Fatal("failed to open data file:", err)
	}
	log.Println("Data file:", config.DataFile)

	if err := LoadGameSettings(store); err != nil {
		log.Println("Failed to load game settings:", err)
	}

	bonus := NewBonusScheduler()
	session := NewSession(store, bonus, config.DevMode)

	// Resume the last player, if any.
	if name, err := store.PlayerIdentity(); err == nil && name != "" {
		report, _, err := session.LoadPlayer(name)
		if err != nil {
			log.Println("Failed to resume player:", err)
		} else {
			log.Printf("Resumed player %q (offline earnings: %s over %s)",
				name, formatNumber(report.Points), report.Duration.Round(0))
		}
	}

	bonus.Start()
	startTickLoop(session)
	startAutosaveLoop(session)

	// HTTP server
	mux := http.NewServeMux()
	registerRoutes(mux, session)

	addr := "127.0.0.1:" + config.Port
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Println("Listening on", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server failed:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	bonus.Stop()
	session.Flush()
	if err := store.Close(); err != nil {
		log.Println("Failed to close data file:", err)
	}
}

/* ======================
   Routes
   ====================== */

func registerRoutes(mux *http.ServeMux, session *Session) {
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/state", stateHandler(session))
	mux.HandleFunc("/events", eventsHandler(session))
	mux.HandleFunc("/click", clickHandler(session))
	mux.HandleFunc("/golden-click", goldenClickHandler(session))
	mux.HandleFunc("/buy-generator", buyGeneratorHandler(session))
	mux.HandleFunc("/buy-upgrade", buyUpgradeHandler(session))
	mux.HandleFunc("/rebirth", rebirthHandler(session))
	mux.HandleFunc("/prestige", prestigeHandler(session))
	mux.HandleFunc("/player", playerHandler(session))
	mux.HandleFunc("/player/random-name", randomNameHandler())
	mux.HandleFunc("/switch-account", switchAccountHandler(session))
	mux.HandleFunc("/hard-reset", hardResetHandler(session))
	mux.HandleFunc("/leaderboard", leaderboardHandler(session))
	mux.HandleFunc("/settings", settingsHandler(session))

	if session.devMode {
		mux.HandleFunc("/cheat", cheatHandler(session))
	}
}
