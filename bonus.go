package main

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Boost is a temporary production/click multiplier. Ephemeral: never saved.
type Boost struct {
	Multiplier float64 `json:"multiplier"`
	TimeLeft   int     `json:"timeLeft"`
}

// GoldenToken is the randomly spawned bonus target. Position is percent of
// the viewport, the way the client places it.
type GoldenToken struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// BonusScheduler runs the two ephemeral timers: the golden-token spawn cycle
// and the boost countdown. It never touches durable state.
type BonusScheduler struct {
	mu      sync.Mutex
	rng     *rand.Rand
	token   *GoldenToken
	boost   *Boost
	started bool
	stopped bool

	spawnTimer    *time.Timer
	lifetimeTimer *time.Timer
	stopCountdown chan struct{}
}

func NewBonusScheduler() *BonusScheduler {
	return &BonusScheduler{
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		stopCountdown: make(chan struct{}),
	}
}

// Start schedules the first spawn and begins the once-per-second boost
// countdown. The spawn schedule never stops until Stop.
func (b *BonusScheduler) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started || b.stopped {
		return
	}
	b.started = true
	b.scheduleSpawnLocked()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-b.stopCountdown:
				return
			case <-ticker.C:
				b.countdownStep()
			}
		}
	}()
}

// Stop cancels every timer. The scheduler cannot be restarted; sessions build
// a fresh one.
func (b *BonusScheduler) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.stopped = true
	if b.spawnTimer != nil {
		b.spawnTimer.Stop()
	}
	if b.lifetimeTimer != nil {
		b.lifetimeTimer.Stop()
	}
	if b.started {
		close(b.stopCountdown)
	}
	b.token = nil
	b.boost = nil
}

// Reset clears the visible token and any active boost but keeps the spawn
// schedule running. Used on player switch and hard reset.
func (b *BonusScheduler) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lifetimeTimer != nil {
		b.lifetimeTimer.Stop()
	}
	b.token = nil
	b.boost = nil
}

func (b *BonusScheduler) scheduleSpawnLocked() {
	if b.stopped {
		return
	}
	settings := GetGameSettings()
	min := time.Duration(settings.TokenMinSpawnSeconds) * time.Second
	max := time.Duration(settings.TokenMaxSpawnSeconds) * time.Second
	delay := min
	if max > min {
		delay += time.Duration(b.rng.Int63n(int64(max - min)))
	}
	b.spawnTimer = time.AfterFunc(delay, b.spawn)
}

// spawn puts a token on screen unless one is already visible or a boost is
// running, then reschedules either way.
func (b *BonusScheduler) spawn() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	if b.token != nil || b.boost != nil {
		b.scheduleSpawnLocked()
		return
	}

	token := &GoldenToken{
		ID: uuid.NewString(),
		X:  b.rng.Float64()*80 + 10,
		Y:  b.rng.Float64()*70 + 15,
	}
	b.token = token

	lifetime := time.Duration(GetGameSettings().TokenLifetimeSeconds) * time.Second
	b.lifetimeTimer = time.AfterFunc(lifetime, func() { b.expire(token.ID) })
	b.scheduleSpawnLocked()
}

// expire removes the token if it is still the one that was scheduled to die;
// a token collected and replaced in the meantime is left alone.
func (b *BonusScheduler) expire(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token != nil && b.token.ID == id {
		b.token = nil
	}
}

// Collect consumes the visible token and activates the boost. Returns false
// when no token is on screen.
func (b *BonusScheduler) Collect() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.token == nil {
		return false
	}
	if b.lifetimeTimer != nil {
		b.lifetimeTimer.Stop()
	}
	b.token = nil

	settings := GetGameSettings()
	b.boost = &Boost{
		Multiplier: settings.BoostMultiplier,
		TimeLeft:   settings.BoostDurationSeconds,
	}
	return true
}

// countdownStep ticks the boost down one second. A boost at 1 or less is
// cleared, so the window ends exactly at zero.
func (b *BonusScheduler) countdownStep() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.boost == nil {
		return
	}
	if b.boost.TimeLeft <= 1 {
		b.boost = nil
		return
	}
	b.boost.TimeLeft--
}

// Multiplier returns the active boost multiplier, or 1.
func (b *BonusScheduler) Multiplier() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.boost == nil {
		return 1
	}
	return b.boost.Multiplier
}

// View returns copies of the visible token and active boost, either may be
// nil.
func (b *BonusScheduler) View() (*GoldenToken, *Boost) {
	b.mu.Lock()
	defer b.mu.Unlock()
	var token *GoldenToken
	var boost *Boost
	if b.token != nil {
		t := *b.token
		token = &t
	}
	if b.boost != nil {
		bo := *b.boost
		boost = &bo
	}
	return token, boost
}
