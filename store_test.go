package main

import (
	"path/filepath"
	"testing"

	bolt "go.etcd.io/bbolt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLoadPlayer(t *testing.T) {
	store := newTestStore(t)

	state := newGameState()
	state.Points = 123.5
	state.Gems = 3
	state.TotalClicks = 777
	state.ClickLevel = 4
	state.ClickProgress = 12
	state.PrestigeLevel = 2
	state.UnlockedAchievements["click_1"] = true
	findGenerator(state.Generators, "farm").Level = 6
	findUpgrade(state.Upgrades, "click1").Purchased = true

	if err := store.SavePlayer("Alice", state); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.LoadPlayer("Alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Points != 123.5 || loaded.Gems != 3 || loaded.TotalClicks != 777 {
		t.Fatalf("currencies not round-tripped: %+v", loaded)
	}
	if loaded.ClickLevel != 4 || loaded.ClickProgress != 12 || loaded.PrestigeLevel != 2 {
		t.Fatalf("leveling not round-tripped: %+v", loaded)
	}
	if !loaded.UnlockedAchievements["click_1"] {
		t.Fatal("achievements not round-tripped")
	}
	if findGenerator(loaded.Generators, "farm").Level != 6 {
		t.Fatal("generator level not round-tripped")
	}
	if !findUpgrade(loaded.Upgrades, "click1").Purchased {
		t.Fatal("upgrade flag not round-tripped")
	}
	if loaded.SavedAt.IsZero() {
		t.Fatal("SavedAt must be stamped on save")
	}
}

func TestLoadAbsentPlayer(t *testing.T) {
	store := newTestStore(t)

	loaded, err := store.LoadPlayer("Nobody")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Points != 0 || loaded.ClickLevel != 1 {
		t.Fatalf("absent save must yield fresh state: %+v", loaded)
	}
	if len(loaded.Generators) != len(initialGenerators()) {
		t.Fatal("fresh state must carry the full catalog")
	}
}

func TestLoadMergesOverCatalog(t *testing.T) {
	store := newTestStore(t)

	// A save written by an older build: one retired generator, one current.
	blob := []byte(`{
		"points": 50,
		"generators": [
			{"id": "retired-widget", "level": 9},
			{"id": "grandma", "level": 2}
		],
		"upgrades": [{"id": "no-such-upgrade", "purchased": true}]
	}`)
	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSaves)).Put([]byte("Bob"), blob)
	})
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}

	loaded, err := store.LoadPlayer("Bob")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if findGenerator(loaded.Generators, "retired-widget") != nil {
		t.Fatal("retired catalog entries must be dropped")
	}
	if findGenerator(loaded.Generators, "grandma").Level != 2 {
		t.Fatal("saved level for a current generator must survive")
	}
	if findGenerator(loaded.Generators, "cursor").Level != 0 {
		t.Fatal("catalog entries missing from the save start at defaults")
	}
	if loaded.ClickLevel != 1 {
		t.Fatalf("missing clickLevel must default to 1, got %d", loaded.ClickLevel)
	}
}

func TestLoadCorruptSave(t *testing.T) {
	store := newTestStore(t)

	err := store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketSaves)).Put([]byte("Mallory"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("seed save: %v", err)
	}

	loaded, err := store.LoadPlayer("Mallory")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Points != 0 {
		t.Fatal("corrupt save must yield fresh state")
	}

	// The damaged blob was purged.
	var remaining []byte
	store.db.View(func(tx *bolt.Tx) error {
		remaining = tx.Bucket([]byte(bucketSaves)).Get([]byte("Mallory"))
		return nil
	})
	if remaining != nil {
		t.Fatal("corrupt blob must be purged")
	}
}

func TestLeaderboardUpsertOnSave(t *testing.T) {
	store := newTestStore(t)

	state := newGameState()
	state.Points = 10
	state.TotalClicks = 5
	if err := store.SavePlayer("Alice", state); err != nil {
		t.Fatalf("save: %v", err)
	}
	state.Points = 99
	if err := store.SavePlayer("Alice", state); err != nil {
		t.Fatalf("second save: %v", err)
	}

	records, order, err := store.LoadLeaderboard()
	if err != nil {
		t.Fatalf("load leaderboard: %v", err)
	}
	if len(order) != 1 {
		t.Fatalf("expected one leaderboard entry got %d", len(order))
	}
	if records["Alice"].Points != 99 {
		t.Fatalf("leaderboard must carry the latest save: %+v", records["Alice"])
	}
}

func TestDeleteAll(t *testing.T) {
	store := newTestStore(t)

	if err := store.SavePlayer("Alice", newGameState()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SetPlayerIdentity("Alice"); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if err := store.DeleteAll("Alice"); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	records, _, err := store.LoadLeaderboard()
	if err != nil {
		t.Fatalf("load leaderboard: %v", err)
	}
	if _, ok := records["Alice"]; ok {
		t.Fatal("leaderboard entry must be deleted")
	}
	name, err := store.PlayerIdentity()
	if err != nil {
		t.Fatalf("identity: %v", err)
	}
	if name != "" {
		t.Fatalf("identity must be cleared, got %q", name)
	}
}

func TestClearIdentityKeepsSave(t *testing.T) {
	store := newTestStore(t)

	state := newGameState()
	state.Points = 7
	if err := store.SavePlayer("Alice", state); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.SetPlayerIdentity("Alice"); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	if err := store.ClearIdentity(); err != nil {
		t.Fatalf("clear identity: %v", err)
	}

	loaded, err := store.LoadPlayer("Alice")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Points != 7 {
		t.Fatal("save must survive identity clear")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	if err := store.putSetting("autosave_seconds", "30"); err != nil {
		t.Fatalf("put setting: %v", err)
	}
	value, found := store.settingValue("autosave_seconds")
	if !found || value != "30" {
		t.Fatalf("setting not round-tripped: %q %v", value, found)
	}

	seen := map[string]string{}
	if err := store.forEachSetting(func(k, v string) { seen[k] = v }); err != nil {
		t.Fatalf("forEachSetting: %v", err)
	}
	if seen["autosave_seconds"] != "30" {
		t.Fatalf("forEachSetting missed the key: %v", seen)
	}
}
