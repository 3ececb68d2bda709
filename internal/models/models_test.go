package models

import "testing"

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		max      int
		expected float64
	}{
		{"normal ratio", 50, 100, 50},
		{"perfect", 100, 100, 100},
		{"above maximum clamps", 150, 100, 100},
		{"zero maximum", 10, 0, 0},
		{"negative maximum", 10, -5, 0},
		{"zero score", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := GameSession{Score: tt.score, MaxPossibleScore: tt.max}
			if got := s.Accuracy(); got != tt.expected {
				t.Errorf("Accuracy() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGameTypeIsValid(t *testing.T) {
	if !GameMemoryGrid.IsValid() {
		t.Error("MEMORY_GRID must be valid")
	}
	if GameType("CHESS").IsValid() {
		t.Error("CHESS must not be valid")
	}
}

func TestEveryGameBelongsToOneCategory(t *testing.T) {
	seen := make(map[GameType]int)
	for _, cat := range GameCategories {
		for _, g := range GamesInCategory(cat.Category) {
			seen[g]++
		}
	}

	if len(seen) != len(Games) {
		t.Errorf("categories cover %d games, want %d", len(seen), len(Games))
	}
	for g, count := range seen {
		if count != 1 {
			t.Errorf("game %s appears in %d categories", g, count)
		}
	}
}

func TestEveryCategoryHasMasteryBadge(t *testing.T) {
	for _, cat := range GameCategories {
		badge, ok := MasteryBadge[cat.Category]
		if !ok {
			t.Errorf("category %s has no mastery badge", cat.Category)
			continue
		}
		if !badge.IsValid() {
			t.Errorf("mastery badge %s for %s is unknown", badge, cat.Category)
		}
	}
}

func TestProfileHasPIN(t *testing.T) {
	p := Profile{}
	if p.HasPIN() {
		t.Error("profile without hash must not report a PIN")
	}
	p.PINHash = "$2a$10$abc"
	if !p.HasPIN() {
		t.Error("profile with hash must report a PIN")
	}
}
