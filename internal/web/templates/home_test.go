package templates

import (
	"context"
	"strings"
	"testing"
)

func TestHomeRendersDemoPage(t *testing.T) {
	var b strings.Builder
	if err := Home().Render(context.Background(), &b); err != nil {
		t.Fatalf("Home().Render() = %v", err)
	}
	got := b.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		"Abstract Factory Demo",
		`id="roll-button"`,
		"/random_enemy",
		"enemy_attack",
		"weapon_use",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected page to contain %q, got %q", want, got)
		}
	}
}
