package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// autoplay drives the game API the way an idle player's browser would:
// click bursts, then greedy purchases of whatever is affordable.

type StateResponse struct {
	PlayerName string  `json:"playerName"`
	Points     float64 `json:"points"`
	Generators []struct {
		ID         string  `json:"id"`
		Cost       float64 `json:"cost"`
		Affordable bool    `json:"affordable"`
	} `json:"generators"`
	Upgrades []struct {
		ID         string `json:"id"`
		Purchased  bool   `json:"purchased"`
		Affordable bool   `json:"affordable"`
	} `json:"upgrades"`
	CanRebirth bool `json:"canRebirth"`
}

type SimpleResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func main() {
	baseURL := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	playerName := strings.TrimSpace(os.Getenv("AUTOPLAY_NAME"))
	if playerName == "" {
		playerName = "Autoplay Bot"
	}
	rounds := parseEnvInt("AUTOPLAY_ROUNDS", 0) // 0 = run forever
	clicksPerBurst := parseEnvInt("AUTOPLAY_CLICKS_PER_BURST", 20)
	minDelay := parseEnvInt("AUTOPLAY_MIN_DELAY_MS", 250)
	maxDelay := parseEnvInt("AUTOPLAY_MAX_DELAY_MS", 1500)

	client := &http.Client{Timeout: 10 * time.Second}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	if err := postJSON(client, baseURL+"/player", map[string]string{"name": playerName}); err != nil {
		logError(fmt.Sprintf("failed to register player: %v", err))
		os.Exit(1)
	}
	logInfo(fmt.Sprintf("playing as %q against %s", playerName, baseURL))

	for round := 0; rounds == 0 || round < rounds; round++ {
		for i := 0; i < clicksPerBurst; i++ {
			if err := postJSON(client, baseURL+"/click", nil); err != nil {
				logError(fmt.Sprintf("click failed: %v", err))
				break
			}
		}

		state, err := fetchState(client, baseURL)
		if err != nil {
			logError(fmt.Sprintf("state fetch failed: %v", err))
			sleepJitter(rng, minDelay, maxDelay)
			continue
		}

		// Cheapest-first keeps early generators leveling instead of
		// hoarding for the big ones.
		bought := 0
		for _, u := range state.Upgrades {
			if !u.Purchased && u.Affordable {
				if err := postJSON(client, baseURL+"/buy-upgrade", map[string]string{"upgradeId": u.ID}); err == nil {
					bought++
				}
				break
			}
		}
		for _, g := range state.Generators {
			if g.Affordable {
				if err := postJSON(client, baseURL+"/buy-generator", map[string]string{"generatorId": g.ID}); err == nil {
					bought++
				}
				break
			}
		}
		if state.CanRebirth {
			_ = postJSON(client, baseURL+"/rebirth", nil)
			logInfo("rebirthed")
		}
		if bought > 0 {
			logInfo(fmt.Sprintf("round %d: points=%.0f purchases=%d", round, state.Points, bought))
		}

		sleepJitter(rng, minDelay, maxDelay)
	}
}

func fetchState(client *http.Client, baseURL string) (*StateResponse, error) {
	resp, err := client.Get(baseURL + "/state")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var state StateResponse
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, err
	}
	return &state, nil
}

func postJSON(client *http.Client, url string, payload any) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}
	resp, err := client.Post(url, "application/json", &body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	var out SimpleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	if !out.OK && out.Error != "" && out.Error != "INSUFFICIENT_POINTS" {
		return fmt.Errorf("server error: %s", out.Error)
	}
	return nil
}

func sleepJitter(rng *rand.Rand, minMs, maxMs int) {
	delay := minMs
	if maxMs > minMs {
		delay += rng.Intn(maxMs - minMs)
	}
	time.Sleep(time.Duration(delay) * time.Millisecond)
}

func parseEnvInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return parsed
}

func logInfo(msg string) {
	fmt.Printf("[autoplay] %s\n", msg)
}

func logError(msg string) {
	fmt.Printf("[autoplay] ERROR: %s\n", msg)
}
