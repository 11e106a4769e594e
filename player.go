package main

import (
	"math/rand"
	"strings"
	"unicode"
)

// maxPlayerNameLen matches the client-side input cap.
const maxPlayerNameLen = 15

// normalizePlayerName trims and truncates a submitted name to the allowed
// length. Returns "" for names that fail validation.
func normalizePlayerName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return ""
	}
	runes := []rune(name)
	if len(runes) > maxPlayerNameLen {
		runes = runes[:maxPlayerNameLen]
	}
	name = strings.TrimSpace(string(runes))
	if !isValidPlayerName(name) {
		return ""
	}
	return name
}

func isValidPlayerName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if r == '-' || r == '_' || r == ' ' || r == '\'' {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

var (
	nameAdjectives = []string{
		"Bouncing", "Glimmering", "Whispering", "Wobbly", "Zany", "Galactic",
		"Sleepy", "Grumpy", "Sparkly", "Silly", "Invisible", "Gigantic",
		"Tiny", "Clumsy", "Dapper", "Funky", "Ghostly", "Quantum", "Turbo",
		"Legendary",
	}
	nameNouns = []string{
		"Waffle", "Potato", "Ghost", "Ninja", "Pineapple", "Spaceman",
		"Puddle", "Sock", "Robot", "Wizard", "Donut", "Cactus",
		"Marshmallow", "Sloth", "Flamingo", "Gnome", "Yeti", "Pancake",
		"Unicorn", "T-Rex",
	}
)

// randomPlayerName builds an adjective+noun name, truncated to the cap.
func randomPlayerName(rng *rand.Rand) string {
	adjective := nameAdjectives[rng.Intn(len(nameAdjectives))]
	noun := nameNouns[rng.Intn(len(nameNouns))]
	name := adjective + " " + noun
	runes := []rune(name)
	if len(runes) > maxPlayerNameLen {
		runes = runes[:maxPlayerNameLen]
	}
	return strings.TrimSpace(string(runes))
}
