package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClickHandler(t *testing.T) {
	session := newTestSession(t, false)
	handler := clickHandler(session)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/click", nil))

	var resp MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK {
		t.Fatalf("expected ok, got error %q", resp.Error)
	}
	if resp.Points != 1 {
		t.Fatalf("points: expected 1 got %v", resp.Points)
	}

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/click", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET /click: expected 405 got %d", rec.Code)
	}
}

func TestClickHandlerWithoutPlayer(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store, NewBonusScheduler(), false)
	handler := clickHandler(session)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodPost, "/click", nil))

	var resp MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || resp.Error != "NO_PLAYER" {
		t.Fatalf("expected NO_PLAYER, got %+v", resp)
	}
}

func TestBuyGeneratorHandlerUnknownID(t *testing.T) {
	session := newTestSession(t, false)
	handler := buyGeneratorHandler(session)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/buy-generator", strings.NewReader(`{"generatorId":"bogus"}`))
	handler(rec, req)

	var resp MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || resp.Error != "UNKNOWN_GENERATOR" {
		t.Fatalf("expected UNKNOWN_GENERATOR, got %+v", resp)
	}
}

func TestBuyUpgradeHandlerAlreadyPurchased(t *testing.T) {
	session := newTestSession(t, false)
	session.mu.Lock()
	session.state.Points = 10000
	findUpgrade(session.state.Upgrades, "click1").Purchased = true
	session.mu.Unlock()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/buy-upgrade", strings.NewReader(`{"upgradeId":"click1"}`))
	buyUpgradeHandler(session)(rec, req)

	var resp MutationResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || resp.Error != "ALREADY_PURCHASED" {
		t.Fatalf("expected ALREADY_PURCHASED, got %+v", resp)
	}
}

func TestPlayerHandlerRejectsInvalidName(t *testing.T) {
	session := newTestSession(t, false)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/player", strings.NewReader(`{"name":"<script>"}`))
	playerHandler(session)(rec, req)

	var resp PlayerResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || resp.Error != "INVALID_NAME" {
		t.Fatalf("expected INVALID_NAME, got %+v", resp)
	}
}

func TestStateHandlerView(t *testing.T) {
	session := newTestSession(t, false)
	session.Click()

	rec := httptest.NewRecorder()
	stateHandler(session)(rec, httptest.NewRequest(http.MethodGet, "/state", nil))

	var view StateView
	if err := json.NewDecoder(rec.Body).Decode(&view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.PlayerName != "Tester" {
		t.Fatalf("playerName: expected Tester got %q", view.PlayerName)
	}
	if view.Points != 1 {
		t.Fatalf("points: expected 1 got %v", view.Points)
	}
	if len(view.Generators) != len(initialGenerators()) {
		t.Fatal("view must carry the full generator catalog")
	}
	if len(view.Achievements) != len(achievementDefs) {
		t.Fatal("view must carry every achievement")
	}
	if view.ClicksForNextLevel != clicksRequiredForLevel(1) {
		t.Fatalf("clicksForNextLevel: expected %d got %d", clicksRequiredForLevel(1), view.ClicksForNextLevel)
	}
}

func TestCheatHandlerHiddenOutsideDevMode(t *testing.T) {
	session := newTestSession(t, false)

	rec := httptest.NewRecorder()
	cheatHandler(session)(rec, httptest.NewRequest(http.MethodPost, "/cheat", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("cheat outside dev mode: expected 404 got %d", rec.Code)
	}
}

func TestLeaderboardHandler(t *testing.T) {
	session := newTestSession(t, false)
	session.Click()
	session.Flush()

	rec := httptest.NewRecorder()
	leaderboardHandler(session)(rec, httptest.NewRequest(http.MethodGet, "/leaderboard?category=points", nil))

	var resp LeaderboardResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Category != "points" {
		t.Fatalf("category: expected points got %q", resp.Category)
	}
	if len(resp.Results) != 1 || resp.Results[0].Name != "Tester" || !resp.Results[0].IsPlayer {
		t.Fatalf("unexpected results: %+v", resp.Results)
	}
}
