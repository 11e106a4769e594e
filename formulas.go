package main

import "math"

// Pure derivations over game state. Unknown ids contribute the multiplicative
// identity; none of these mutate state.

func upgradeMultiplier(upgrades []Upgrade, targetID string) float64 {
	total := 1.0
	for _, u := range upgrades {
		if u.Purchased && u.Target == targetID {
			total *= u.Multiplier
		}
	}
	return total
}

func generatorCost(g Generator) float64 {
	return g.BaseCost * math.Pow(g.CostMultiplier, float64(g.Level))
}

func generatorOutput(g Generator, upgrades []Upgrade) float64 {
	return float64(g.Level) * g.BasePps * upgradeMultiplier(upgrades, g.ID)
}

func gemBonus(gems int) float64 {
	return 1 + float64(gems)*GemBonusPerGem
}

func prestigeBonus(prestigeLevel int) float64 {
	return 1 + float64(prestigeLevel)*PrestigeBonusPerLevel
}

func clickLevelBonus(clickLevel int) float64 {
	return 1 + float64(clickLevel-1)*ClickLevelBonusStep
}

func pointsPerSecond(state *GameState, boostMultiplier float64) float64 {
	total := 0.0
	for _, g := range state.Generators {
		total += generatorOutput(g, state.Upgrades)
	}
	return total * gemBonus(state.Gems) * prestigeBonus(state.PrestigeLevel) * boostMultiplier
}

func clickPower(state *GameState, boostMultiplier float64) float64 {
	return upgradeMultiplier(state.Upgrades, UpgradeTargetClick) *
		gemBonus(state.Gems) *
		clickLevelBonus(state.ClickLevel) *
		prestigeBonus(state.PrestigeLevel) *
		boostMultiplier
}

func clicksRequiredForLevel(level int) int {
	return int(math.Floor(100 * math.Pow(1.5, float64(level-1))))
}

func rebirthCost(gems int) float64 {
	return RebirthCostBase + float64(gems)*PointsPerGem
}

func prestigeCost(prestigeLevel int) int {
	return PrestigeCostBase + prestigeLevel*PrestigeCostScaling
}
