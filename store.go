package main

import (
	"bytes"
	"encoding/json"
	"log"
	"time"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketSaves       = "saves"
	bucketLeaderboard = "leaderboard"
	bucketMeta        = "meta"

	metaKeyPlayerIdentity = "player-identity"
	metaSettingsPrefix    = "setting:"
)

// LeaderboardStats is the per-player snapshot kept in the shared leaderboard
// record, upserted on every save.
type LeaderboardStats struct {
	Points      float64 `json:"points"`
	TotalClicks int64   `json:"totalClicks"`
	Gems        int     `json:"gems"`
}

// Store is the sole reader/writer of durable state: one bbolt file with a
// bucket per conceptual key (saves, leaderboard, meta).
type Store struct {
	db *bolt.DB
}

func OpenStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range []string{bucketSaves, bucketLeaderboard, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SavePlayer overwrites the player's save blob and upserts the leaderboard
// entry in one transaction. Safe to call repeatedly.
func (s *Store) SavePlayer(name string, state *GameState) error {
	state.SavedAt = time.Now().UTC()
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	stats, err := json.Marshal(LeaderboardStats{
		Points:      state.Points,
		TotalClicks: state.TotalClicks,
		Gems:        state.Gems,
	})
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketSaves)).Put([]byte(name), blob); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketLeaderboard)).Put([]byte(name), stats)
	})
}

// savedGame mirrors the save blob shape. Unknown fields are ignored; missing
// fields keep their zero values and get defaulted during the merge.
type savedGame struct {
	Points      float64 `json:"points"`
	Gems        int     `json:"gems"`
	TotalClicks int64   `json:"totalClicks"`
	Generators  []struct {
		ID    string `json:"id"`
		Level int    `json:"level"`
	} `json:"generators"`
	Upgrades []struct {
		ID        string `json:"id"`
		Purchased bool   `json:"purchased"`
	} `json:"upgrades"`
	ClickLevel           int             `json:"clickLevel"`
	ClickProgress        int             `json:"clickProgress"`
	UnlockedAchievements map[string]bool `json:"unlockedAchievements"`
	PrestigeLevel        int             `json:"prestigeLevel"`
	SavedAt              time.Time       `json:"savedAt"`
}

// LoadPlayer returns the player's progress merged over the current catalog:
// catalog entries missing from the save start at defaults, saved entries no
// longer in the catalog are dropped. Absent saves yield fresh state; a blob
// that fails to parse is purged and also yields fresh state.
func (s *Store) LoadPlayer(name string) (*GameState, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketSaves)).Get([]byte(name)); v != nil {
			blob = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if blob == nil {
		return newGameState(), nil
	}

	var saved savedGame
	if err := json.Unmarshal(blob, &saved); err != nil {
		log.Println("Corrupted save for", name, "- purging:", err)
		s.purgeSave(name)
		return newGameState(), nil
	}
	return mergeSavedGame(saved), nil
}

func mergeSavedGame(saved savedGame) *GameState {
	state := newGameState()
	state.Points = saved.Points
	state.Gems = saved.Gems
	state.TotalClicks = saved.TotalClicks
	state.ClickProgress = saved.ClickProgress
	state.PrestigeLevel = saved.PrestigeLevel
	state.SavedAt = saved.SavedAt
	if saved.ClickLevel >= 1 {
		state.ClickLevel = saved.ClickLevel
	}
	for id, unlocked := range saved.UnlockedAchievements {
		if unlocked {
			state.UnlockedAchievements[id] = true
		}
	}
	for _, sg := range saved.Generators {
		if g := findGenerator(state.Generators, sg.ID); g != nil {
			g.Level = sg.Level
		}
	}
	for _, su := range saved.Upgrades {
		if u := findUpgrade(state.Upgrades, su.ID); u != nil {
			u.Purchased = su.Purchased
		}
	}
	return state
}

func (s *Store) purgeSave(name string) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSaves)).Delete([]byte(name))
	})
	if err != nil {
		log.Println("Failed to purge save for", name, ":", err)
	}
}

// LoadLeaderboard returns the shared record plus a stable iteration order
// for tie-breaking.
func (s *Store) LoadLeaderboard() (map[string]LeaderboardStats, []string, error) {
	records := map[string]LeaderboardStats{}
	var order []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketLeaderboard)).ForEach(func(k, v []byte) error {
			var stats LeaderboardStats
			if err := json.Unmarshal(v, &stats); err != nil {
				// Skip damaged entries rather than failing the whole board.
				return nil
			}
			records[string(k)] = stats
			order = append(order, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, nil, err
	}
	return records, order, nil
}

// DeleteAll removes the save, the leaderboard entry and the identity record
// for name (hard reset).
func (s *Store) DeleteAll(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket([]byte(bucketSaves)).Delete([]byte(name)); err != nil {
			return err
		}
		if err := tx.Bucket([]byte(bucketLeaderboard)).Delete([]byte(name)); err != nil {
			return err
		}
		return tx.Bucket([]byte(bucketMeta)).Delete([]byte(metaKeyPlayerIdentity))
	})
}

func (s *Store) PlayerIdentity() (string, error) {
	var name string
	err := s.db.View(func(tx *bolt.Tx) error {
		name = string(tx.Bucket([]byte(bucketMeta)).Get([]byte(metaKeyPlayerIdentity)))
		return nil
	})
	return name, err
}

func (s *Store) SetPlayerIdentity(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMeta)).Put([]byte(metaKeyPlayerIdentity), []byte(name))
	})
}

// ClearIdentity drops only the identity pointer; the save stays for a later
// re-login (switch-account).
func (s *Store) ClearIdentity() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMeta)).Delete([]byte(metaKeyPlayerIdentity))
	})
}

func (s *Store) settingValue(key string) (string, bool) {
	var value string
	var found bool
	_ = s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket([]byte(bucketMeta)).Get([]byte(metaSettingsPrefix + key)); v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	return value, found
}

func (s *Store) putSetting(key, value string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketMeta)).Put([]byte(metaSettingsPrefix+key), []byte(value))
	})
}

func (s *Store) forEachSetting(fn func(key, value string)) error {
	return s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketMeta)).Cursor()
		prefix := []byte(metaSettingsPrefix)
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			fn(string(k[len(prefix):]), string(v))
		}
		return nil
	})
}
