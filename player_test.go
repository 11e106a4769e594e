package main

import (
	"math/rand"
	"testing"
)

func TestNormalizePlayerName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alice", "Alice"},
		{"  Alice  ", "Alice"},
		{"Bob-the_2nd", "Bob-the_2nd"},
		{"O'Brien", "O'Brien"},
		{"This Name Is Way Too Long", "This Name Is Wa"},
		{"", ""},
		{"   ", ""},
		{"<script>", ""},
		{"semi;colon", ""},
	}
	for _, c := range cases {
		if got := normalizePlayerName(c.in); got != c.want {
			t.Fatalf("normalizePlayerName(%q): expected %q got %q", c.in, c.want, got)
		}
	}
}

func TestRandomPlayerName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		name := randomPlayerName(rng)
		if name == "" {
			t.Fatal("random name must not be empty")
		}
		if len([]rune(name)) > maxPlayerNameLen {
			t.Fatalf("random name %q exceeds the cap", name)
		}
		if normalizePlayerName(name) == "" {
			t.Fatalf("random name %q fails its own validation", name)
		}
	}
}
