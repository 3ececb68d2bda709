package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mindgym/internal/models"
)

func TestGameCatalog(t *testing.T) {
	recorder := httptest.NewRecorder()
	NewGameHandler().List(recorder, httptest.NewRequest("GET", "/api/games", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var catalog []catalogCategory
	if err := json.NewDecoder(recorder.Body).Decode(&catalog); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}

	if len(catalog) != len(models.GameCategories) {
		t.Fatalf("categories = %d, want %d", len(catalog), len(models.GameCategories))
	}

	total := 0
	for _, c := range catalog {
		if len(c.Games) == 0 {
			t.Errorf("category %s has no games", c.Category.Category)
		}
		for _, g := range c.Games {
			if g.Category != c.Category.Category {
				t.Errorf("game %s listed under %s but belongs to %s", g.Type, c.Category.Category, g.Category)
			}
		}
		total += len(c.Games)
	}
	if total != len(models.Games) {
		t.Errorf("catalog lists %d games, want %d", total, len(models.Games))
	}
}

func TestHealth(t *testing.T) {
	recorder := httptest.NewRecorder()
	Health(recorder, httptest.NewRequest("GET", "/healthz", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", recorder.Code)
	}

	var body map[string]string
	if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field = %q, want %q", body["status"], "ok")
	}
}
