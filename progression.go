package main

import (
	"log"
	"sync"
	"time"
)

// GameState is the root mutable record for one player. It is mutated only
// through Session operations, which all hold the session mutex.
type GameState struct {
	Points               float64         `json:"points"`
	Gems                 int             `json:"gems"`
	TotalClicks          int64           `json:"totalClicks"`
	Generators           []Generator     `json:"generators"`
	Upgrades             []Upgrade       `json:"upgrades"`
	ClickLevel           int             `json:"clickLevel"`
	ClickProgress        int             `json:"clickProgress"`
	UnlockedAchievements map[string]bool `json:"unlockedAchievements"`
	PrestigeLevel        int             `json:"prestigeLevel"`
	SavedAt              time.Time       `json:"savedAt,omitzero"`
}

func newGameState() *GameState {
	return &GameState{
		Generators:           initialGenerators(),
		Upgrades:             initialUpgrades(),
		ClickLevel:           1,
		UnlockedAchievements: map[string]bool{},
	}
}

func copyGameState(state *GameState) GameState {
	snap := *state
	snap.Generators = append([]Generator(nil), state.Generators...)
	snap.Upgrades = append([]Upgrade(nil), state.Upgrades...)
	snap.UnlockedAchievements = make(map[string]bool, len(state.UnlockedAchievements))
	for id, unlocked := range state.UnlockedAchievements {
		snap.UnlockedAchievements[id] = unlocked
	}
	return snap
}

// resetProgress applies the shared rebirth/prestige wipe: points, generators,
// upgrades and click leveling go back to defaults. Clicks, achievements and
// the caller-managed currencies are untouched.
func resetProgress(state *GameState) {
	state.Points = 0
	state.Generators = initialGenerators()
	state.Upgrades = initialUpgrades()
	state.ClickLevel = 1
	state.ClickProgress = 0
}

// Values applied by the dev-only cheat operation.
const (
	cheatPoints        = 1e30
	cheatGems          = 100
	cheatGeneratorLvl  = 100
	cheatClickLevel    = 50
	cheatPrestigeLevel = 5
)

// Session owns the active player's progression. All mutations serialize on
// its mutex, so an operation's points deduction is visible to the very next
// affordability check.
type Session struct {
	mu      sync.Mutex
	store   *Store
	bonus   *BonusScheduler
	devMode bool

	playerName string
	state      *GameState
	dirty      bool
}

func NewSession(store *Store, bonus *BonusScheduler, devMode bool) *Session {
	return &Session{
		store:   store,
		bonus:   bonus,
		devMode: devMode,
		state:   newGameState(),
	}
}

// OfflineReport describes points earned while no session was running.
type OfflineReport struct {
	Points   float64
	Duration time.Duration
}

// LoadPlayer makes name the active player: the previous player's progress is
// flushed, the save for name is merge-loaded (fresh state when absent), and
// production that accrued since the save's timestamp is credited.
func (s *Session) LoadPlayer(name string) (OfflineReport, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()

	state, err := s.store.LoadPlayer(name)
	if err != nil {
		log.Println("Load failed, starting fresh:", err)
		state = newGameState()
	}

	var report OfflineReport
	if !state.SavedAt.IsZero() {
		elapsed := time.Now().UTC().Sub(state.SavedAt)
		if elapsed > 0 {
			report.Duration = elapsed
			report.Points = pointsPerSecond(state, 1) * elapsed.Seconds()
			state.Points += report.Points
		}
	}

	s.playerName = name
	s.state = state
	s.dirty = true
	if err := s.store.SetPlayerIdentity(name); err != nil {
		log.Println("Failed to persist player identity:", err)
	}

	newlyUnlocked := evaluateAchievements(s.state)
	return report, newlyUnlocked, nil
}

func (s *Session) PlayerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerName
}

func (s *Session) hasPlayerLocked() bool {
	return s.playerName != ""
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyGameState(s.state)
}

// Click always succeeds: one click's worth of points, one unit of click
// progress, and at most one click-level-up per click.
func (s *Session) Click() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return nil
	}

	s.state.Points += clickPower(s.state, s.bonus.Multiplier())
	s.state.TotalClicks++
	s.state.ClickProgress++
	if s.state.ClickProgress >= clicksRequiredForLevel(s.state.ClickLevel) {
		s.state.ClickLevel++
		s.state.ClickProgress = 0
	}
	return s.afterMutationLocked()
}

// BuyGenerator deducts the current cost and adds one level. Unknown ids and
// unaffordable purchases are silent no-ops.
func (s *Session) BuyGenerator(generatorID string) (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return false, nil
	}

	g := findGenerator(s.state.Generators, generatorID)
	if g == nil {
		return false, nil
	}
	cost := generatorCost(*g)
	if s.state.Points < cost {
		return false, nil
	}
	s.state.Points -= cost
	g.Level++
	return true, s.afterMutationLocked()
}

// BuyUpgrade is permanent and single-shot: repurchasing is a no-op.
func (s *Session) BuyUpgrade(upgradeID string) (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return false, nil
	}

	u := findUpgrade(s.state.Upgrades, upgradeID)
	if u == nil || u.Purchased || s.state.Points < u.Cost {
		return false, nil
	}
	s.state.Points -= u.Cost
	u.Purchased = true
	return true, s.afterMutationLocked()
}

// PassiveTick credits deltaSeconds worth of generator production.
func (s *Session) PassiveTick(deltaSeconds float64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return nil
	}

	produced := pointsPerSecond(s.state, s.bonus.Multiplier()) * deltaSeconds
	if produced == 0 {
		return nil
	}
	s.state.Points += produced
	return s.afterMutationLocked()
}

// Rebirth trades the point balance for one gem and wipes run progress.
// TotalClicks, prestige level and achievements survive.
func (s *Session) Rebirth() (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return false, nil
	}
	if s.state.Points < rebirthCost(s.state.Gems) {
		return false, nil
	}

	resetProgress(s.state)
	s.state.Gems++
	return true, s.afterMutationLocked()
}

// Prestige trades the gem balance for one prestige level and wipes run
// progress plus gems.
func (s *Session) Prestige() (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return false, nil
	}
	if s.state.Gems < prestigeCost(s.state.PrestigeLevel) {
		return false, nil
	}

	resetProgress(s.state)
	s.state.Gems = 0
	s.state.PrestigeLevel++
	return true, s.afterMutationLocked()
}

// CollectGoldenToken consumes the visible token, if any, and activates its
// boost.
func (s *Session) CollectGoldenToken() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hasPlayerLocked() {
		return false
	}
	return s.bonus.Collect()
}

// CheatUnlockAll jumps the state to end-game values and unlocks every
// achievement, secret ones included. Refused outside dev mode.
func (s *Session) CheatUnlockAll() (bool, []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.devMode || !s.hasPlayerLocked() {
		return false, nil
	}

	s.state.Points = cheatPoints
	s.state.Gems = cheatGems
	for i := range s.state.Generators {
		s.state.Generators[i].Level = cheatGeneratorLvl
	}
	for i := range s.state.Upgrades {
		s.state.Upgrades[i].Purchased = true
	}
	s.state.ClickLevel = cheatClickLevel
	s.state.ClickProgress = 0
	s.state.PrestigeLevel = cheatPrestigeLevel
	newlyUnlocked := unlockAllAchievements(s.state)
	s.dirty = true
	return true, newlyUnlocked
}

// SwitchAccount detaches the current player but keeps the save, so the same
// name can log back in later.
func (s *Session) SwitchAccount() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushLocked()
	if err := s.store.ClearIdentity(); err != nil {
		log.Println("Failed to clear player identity:", err)
	}
	s.playerName = ""
	s.state = newGameState()
	s.dirty = false
	s.bonus.Reset()
}

// HardReset deletes the save, the identity record and the leaderboard entry,
// returning to the pre-first-run condition.
func (s *Session) HardReset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playerName != "" {
		if err := s.store.DeleteAll(s.playerName); err != nil {
			log.Println("Hard reset delete failed:", err)
		}
	}
	s.playerName = ""
	s.state = newGameState()
	s.dirty = false
	s.bonus.Reset()
}

func (s *Session) afterMutationLocked() []string {
	s.dirty = true
	return evaluateAchievements(s.state)
}

// FlushIfDirty persists the state only when a mutation happened since the
// last flush. The autosave loop calls this on a short cadence so rapid
// mutations coalesce into one write.
func (s *Session) FlushIfDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return
	}
	s.flushLocked()
}

// Flush persists unconditionally. Called on shutdown.
func (s *Session) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flushLocked()
}

func (s *Session) flushLocked() {
	if s.playerName == "" {
		return
	}
	if err := s.store.SavePlayer(s.playerName, s.state); err != nil {
		log.Println("Save failed:", err)
		return
	}
	s.dirty = false
}
