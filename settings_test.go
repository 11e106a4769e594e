package main

import "testing"

func TestApplyGameSetting(t *testing.T) {
	s := GameSettings{AutosaveSeconds: 60, BoostMultiplier: 7}

	applyGameSetting(&s, "autosave_seconds", "30")
	if s.AutosaveSeconds != 30 {
		t.Fatalf("autosave_seconds: expected 30 got %d", s.AutosaveSeconds)
	}

	applyGameSetting(&s, "boost_multiplier", "3.5")
	if s.BoostMultiplier != 3.5 {
		t.Fatalf("boost_multiplier: expected 3.5 got %v", s.BoostMultiplier)
	}

	// Invalid values leave the current setting alone.
	applyGameSetting(&s, "autosave_seconds", "not-a-number")
	if s.AutosaveSeconds != 30 {
		t.Fatalf("bad value must be ignored, got %d", s.AutosaveSeconds)
	}
	applyGameSetting(&s, "autosave_seconds", "-5")
	if s.AutosaveSeconds != 30 {
		t.Fatalf("negative value must be ignored, got %d", s.AutosaveSeconds)
	}
	applyGameSetting(&s, "boost_multiplier", "0.5")
	if s.BoostMultiplier != 3.5 {
		t.Fatalf("sub-1 multiplier must be ignored, got %v", s.BoostMultiplier)
	}

	// Unknown keys are ignored.
	applyGameSetting(&s, "no_such_knob", "1")
}

func TestLoadGameSettingsFromStore(t *testing.T) {
	store := newTestStore(t)
	if err := store.putSetting("token_lifetime_seconds", "9"); err != nil {
		t.Fatalf("put setting: %v", err)
	}

	if err := LoadGameSettings(store); err != nil {
		t.Fatalf("load settings: %v", err)
	}
	t.Cleanup(func() {
		settingsMu.Lock()
		cachedSettings.TokenLifetimeSeconds = 6
		settingsMu.Unlock()
	})

	if got := GetGameSettings().TokenLifetimeSeconds; got != 9 {
		t.Fatalf("token_lifetime_seconds: expected 9 got %d", got)
	}
}
