package main

// UpgradeTargetClick is the upgrade target for manual click power, as opposed
// to a generator id.
const UpgradeTargetClick = "click"

const (
	RebirthCostBase = 1e12
	PointsPerGem    = 1e12

	PrestigeCostBase      = 10
	PrestigeCostScaling   = 10
	PrestigeBonusPerLevel = 0.5

	GemBonusPerGem      = 0.1
	ClickLevelBonusStep = 0.5
)

type Generator struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Emoji          string  `json:"emoji"`
	BaseCost       float64 `json:"baseCost"`
	BasePps        float64 `json:"basePps"`
	CostMultiplier float64 `json:"costMultiplier"`
	Level          int     `json:"level"`
}

type Upgrade struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Multiplier  float64 `json:"multiplier"`
	Target      string  `json:"target"`
	Purchased   bool    `json:"purchased"`
}

// initialGenerators returns a fresh copy of the generator catalog. Callers own
// the returned slice and may mutate levels freely.
func initialGenerators() []Generator {
	return []Generator{
		{ID: "cursor", Name: "Cursor", Emoji: "👆", BaseCost: 15, BasePps: 0.1, CostMultiplier: 1.15},
		{ID: "grandma", Name: "Grandma", Emoji: "🍪", BaseCost: 100, BasePps: 1, CostMultiplier: 1.15},
		{ID: "farm", Name: "Farm", Emoji: "🚜", BaseCost: 1100, BasePps: 8, CostMultiplier: 1.15},
		{ID: "factory", Name: "Factory", Emoji: "🏭", BaseCost: 12000, BasePps: 47, CostMultiplier: 1.15},
		{ID: "bank", Name: "Bank", Emoji: "💰", BaseCost: 130000, BasePps: 260, CostMultiplier: 1.15},
		{ID: "temple", Name: "Temple", Emoji: "🏛️", BaseCost: 1400000, BasePps: 1400, CostMultiplier: 1.15},
		{ID: "wizard", Name: "Wizard Tower", Emoji: "🧙‍♂️", BaseCost: 20000000, BasePps: 7800, CostMultiplier: 1.15},
		{ID: "rocket", Name: "Rocket", Emoji: "🚀", BaseCost: 330000000, BasePps: 44000, CostMultiplier: 1.15},
		{ID: "planet", Name: "Planet", Emoji: "🪐", BaseCost: 5100000000, BasePps: 260000, CostMultiplier: 1.15},
	}
}

// initialUpgrades returns a fresh copy of the upgrade catalog.
func initialUpgrades() []Upgrade {
	return []Upgrade{
		{ID: "click1", Name: "Reinforced Finger", Description: "Doubles your click power.", Cost: 100, Multiplier: 2, Target: UpgradeTargetClick},
		{ID: "cursor1", Name: "Ergonomic Mouse", Description: "Cursors are twice as efficient.", Cost: 500, Multiplier: 2, Target: "cursor"},
		{ID: "grandma1", Name: "Better Ovens", Description: "Grandmas are twice as efficient.", Cost: 1000, Multiplier: 2, Target: "grandma"},
		{ID: "click2", Name: "Titanium Finger", Description: "Doubles your click power again!", Cost: 2500, Multiplier: 2, Target: UpgradeTargetClick},
		{ID: "farm1", Name: "Advanced Fertilizers", Description: "Farms are twice as efficient.", Cost: 10000, Multiplier: 2, Target: "farm"},
		{ID: "cursor2", Name: "Ambidextrous Cursors", Description: "Cursors are twice as efficient again.", Cost: 10000, Multiplier: 2, Target: "cursor"},
		{ID: "grandma2", Name: "Rolling Pins", Description: "Grandmas are twice as efficient again.", Cost: 25000, Multiplier: 2, Target: "grandma"},
		{ID: "factory1", Name: "Automation", Description: "Factories are twice as efficient.", Cost: 120000, Multiplier: 2, Target: "factory"},
		{ID: "click3", Name: "Diamond Finger", Description: "Your click power is now 5x stronger.", Cost: 500000, Multiplier: 5, Target: UpgradeTargetClick},
		{ID: "bank1", Name: "Crypto Investments", Description: "Banks are twice as efficient.", Cost: 1300000, Multiplier: 2, Target: "bank"},
		{ID: "temple1", Name: "Divine Prayers", Description: "Temples are twice as efficient.", Cost: 1.4e7, Multiplier: 2, Target: "temple"},
		{ID: "wizard1", Name: "Ancient Grimoires", Description: "Wizard Towers are twice as efficient.", Cost: 2e8, Multiplier: 2, Target: "wizard"},
		{ID: "rocket1", Name: "Fuel Boosters", Description: "Rockets are twice as efficient.", Cost: 3.3e9, Multiplier: 2, Target: "rocket"},
		{ID: "planet1", Name: "Terraforming", Description: "Planets are twice as efficient.", Cost: 5.1e10, Multiplier: 2, Target: "planet"},
	}
}

func findGenerator(generators []Generator, id string) *Generator {
	for i := range generators {
		if generators[i].ID == id {
			return &generators[i]
		}
	}
	return nil
}

func findUpgrade(upgrades []Upgrade, id string) *Upgrade {
	for i := range upgrades {
		if upgrades[i].ID == id {
			return &upgrades[i]
		}
	}
	return nil
}
