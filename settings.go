package main

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// GameSettings are the runtime-tunable knobs of the session: save cadence and
// the timed-bonus windows. Persisted as key/value pairs in the meta bucket.
type GameSettings struct {
	AutosaveSeconds      int
	FlushIntervalSeconds int
	TokenMinSpawnSeconds int
	TokenMaxSpawnSeconds int
	TokenLifetimeSeconds int
	BoostMultiplier      float64
	BoostDurationSeconds int
}

var (
	settingsMu     sync.RWMutex
	cachedSettings = GameSettings{
		AutosaveSeconds:      60,
		FlushIntervalSeconds: 2,
		TokenMinSpawnSeconds: 30,
		TokenMaxSpawnSeconds: 60,
		TokenLifetimeSeconds: 6,
		BoostMultiplier:      7,
		BoostDurationSeconds: 15,
	}
)

func LoadGameSettings(store *Store) error {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	return store.forEachSetting(func(key, value string) {
		applyGameSetting(&cachedSettings, key, value)
	})
}

func GetGameSettings() GameSettings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return cachedSettings
}

func UpdateGameSettings(store *Store, updates map[string]string) (GameSettings, error) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	for key, value := range updates {
		applyGameSetting(&cachedSettings, key, value)
		if err := store.putSetting(key, value); err != nil {
			return cachedSettings, err
		}
	}
	return cachedSettings, nil
}

func applyGameSetting(target *GameSettings, key string, value string) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "autosave_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.AutosaveSeconds = v
		}
	case "flush_interval_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.FlushIntervalSeconds = v
		}
	case "token_min_spawn_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.TokenMinSpawnSeconds = v
		}
	case "token_max_spawn_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.TokenMaxSpawnSeconds = v
		}
	case "token_lifetime_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.TokenLifetimeSeconds = v
		}
	case "boost_multiplier":
		if v, err := strconv.ParseFloat(value, 64); err == nil && v >= 1 {
			target.BoostMultiplier = v
		}
	case "boost_duration_seconds":
		if v, err := strconv.Atoi(value); err == nil && v > 0 {
			target.BoostDurationSeconds = v
		}
	}
}

func autosaveInterval() time.Duration {
	settings := GetGameSettings()
	if settings.AutosaveSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(settings.AutosaveSeconds) * time.Second
}

func flushInterval() time.Duration {
	settings := GetGameSettings()
	if settings.FlushIntervalSeconds <= 0 {
		return 2 * time.Second
	}
	return time.Duration(settings.FlushIntervalSeconds) * time.Second
}
