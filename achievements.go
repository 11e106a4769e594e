package main

type achievementKind int

const (
	achTotalClicks achievementKind = iota
	achPoints
	achGems
	achClickLevel
	achGeneratorOwned
	achGeneratorLevelAny
	achAllGenerators
	achUpgradeCount
	achAllUpgrades
	achSecret
)

// AchievementDef is a data-only rule: a comparison kind plus its parameters.
// Secret achievements are never satisfied organically; only the cheat path
// unlocks them.
type AchievementDef struct {
	ID          string
	Icon        string
	Kind        achievementKind
	Threshold   float64
	GeneratorID string
	Secret      bool
}

var achievementDefs = []AchievementDef{
	// Clicks
	{ID: "click_1", Icon: "👆", Kind: achTotalClicks, Threshold: 1},
	{ID: "click_100", Icon: "👆", Kind: achTotalClicks, Threshold: 100},
	{ID: "click_1k", Icon: "👆", Kind: achTotalClicks, Threshold: 1000},
	{ID: "click_10k", Icon: "👆", Kind: achTotalClicks, Threshold: 10000},

	// Points
	{ID: "points_1k", Icon: "⭐", Kind: achPoints, Threshold: 1000},
	{ID: "points_1m", Icon: "⭐", Kind: achPoints, Threshold: 1e6},
	{ID: "points_1b", Icon: "⭐", Kind: achPoints, Threshold: 1e9},
	{ID: "points_1t", Icon: "⭐", Kind: achPoints, Threshold: 1e12},

	// Generators
	{ID: "gen_buy_cursor", Icon: "🖱️", Kind: achGeneratorOwned, GeneratorID: "cursor"},
	{ID: "gen_buy_grandma", Icon: "🍪", Kind: achGeneratorOwned, GeneratorID: "grandma"},
	{ID: "gen_buy_all", Icon: "🛠️", Kind: achAllGenerators},
	{ID: "gen_level_25", Icon: "🔧", Kind: achGeneratorLevelAny, Threshold: 25},
	{ID: "gen_level_100", Icon: "🔩", Kind: achGeneratorLevelAny, Threshold: 100},

	// Upgrades
	{ID: "upgrade_buy_1", Icon: "🌟", Kind: achUpgradeCount, Threshold: 1},
	{ID: "upgrade_buy_5", Icon: "🌟", Kind: achUpgradeCount, Threshold: 5},
	{ID: "upgrade_buy_all", Icon: "🌟", Kind: achAllUpgrades},

	// Rebirth
	{ID: "rebirth_1", Icon: "💎", Kind: achGems, Threshold: 1},
	{ID: "rebirth_5", Icon: "💎", Kind: achGems, Threshold: 5},
	{ID: "rebirth_10", Icon: "💎", Kind: achGems, Threshold: 10},

	// Click level
	{ID: "click_level_10", Icon: "💥", Kind: achClickLevel, Threshold: 10},
	{ID: "click_level_25", Icon: "💥", Kind: achClickLevel, Threshold: 25},

	// Secret
	{ID: "secret_cheater", Icon: "😈", Kind: achSecret, Secret: true},
	{ID: "secret_completed", Icon: "💯", Kind: achSecret, Secret: true},
}

func achievementSatisfied(def AchievementDef, state *GameState) bool {
	switch def.Kind {
	case achTotalClicks:
		return float64(state.TotalClicks) >= def.Threshold
	case achPoints:
		return state.Points >= def.Threshold
	case achGems:
		return float64(state.Gems) >= def.Threshold
	case achClickLevel:
		return float64(state.ClickLevel) >= def.Threshold
	case achGeneratorOwned:
		g := findGenerator(state.Generators, def.GeneratorID)
		return g != nil && g.Level > 0
	case achGeneratorLevelAny:
		for _, g := range state.Generators {
			if float64(g.Level) >= def.Threshold {
				return true
			}
		}
		return false
	case achAllGenerators:
		for _, g := range state.Generators {
			if g.Level == 0 {
				return false
			}
		}
		return true
	case achUpgradeCount:
		count := 0
		for _, u := range state.Upgrades {
			if u.Purchased {
				count++
			}
		}
		return float64(count) >= def.Threshold
	case achAllUpgrades:
		for _, u := range state.Upgrades {
			if !u.Purchased {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// evaluateAchievements scans every non-secret, not-yet-unlocked rule against
// the current state, records any that now hold, and returns their ids in
// definition order. Re-evaluating an unlocked achievement is a no-op.
func evaluateAchievements(state *GameState) []string {
	var newlyUnlocked []string
	for _, def := range achievementDefs {
		if def.Secret || state.UnlockedAchievements[def.ID] {
			continue
		}
		if achievementSatisfied(def, state) {
			state.UnlockedAchievements[def.ID] = true
			newlyUnlocked = append(newlyUnlocked, def.ID)
		}
	}
	return newlyUnlocked
}

// unlockAllAchievements marks every achievement (secret ones included) as
// unlocked and returns the ids that were not unlocked before.
func unlockAllAchievements(state *GameState) []string {
	var newlyUnlocked []string
	for _, def := range achievementDefs {
		if !state.UnlockedAchievements[def.ID] {
			newlyUnlocked = append(newlyUnlocked, def.ID)
		}
		state.UnlockedAchievements[def.ID] = true
	}
	return newlyUnlocked
}
