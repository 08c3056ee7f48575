package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nadhir/social-graph/pkg/model"
)

func TestDefaultSeedBuilds(t *testing.T) {
	profiles, follows := Default()
	if len(profiles) != 7 {
		t.Fatalf("Expected 7 demo profiles, got %d", len(profiles))
	}
	if len(follows) != 15 {
		t.Fatalf("Expected 15 demo follows, got %d", len(follows))
	}

	n := Build(profiles, follows)
	if n.UserCount() != 7 {
		t.Errorf("Expected 7 users in the network, got %d", n.UserCount())
	}
	if n.FollowCount() != 15 {
		t.Errorf("Expected 15 follows in the network, got %d", n.FollowCount())
	}

	// Spot-check one relation and one private profile from the demo set.
	if !n.IsFollowing("alice123", "bob_dev") {
		t.Error("Expected alice123 to follow bob_dev")
	}
	charlie, ok := n.GetUser("charlie_art")
	if !ok || charlie.Visibility != model.VisibilityPrivate {
		t.Error("Expected charlie_art to be a private profile")
	}
}

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write seed file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeSeedFile(t, `
[[users]]
id = "zed"
name = "Zed Zhang"
age = 40
location = "Kuala Lumpur"
visibility = "private"

[[users]]
id = "yara"
name = "Yara Noor"

[[follows]]
from = "zed"
to = "yara"
`)

	profiles, follows, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("Expected 2 profiles, got %d", len(profiles))
	}

	zed := profiles[0]
	if zed.ID != "zed" || zed.DisplayName != "Zed Zhang" {
		t.Errorf("Unexpected first profile: %+v", zed)
	}
	if zed.Age == nil || *zed.Age != 40 {
		t.Errorf("Expected age 40, got %v", zed.Age)
	}
	if zed.Visibility != model.VisibilityPrivate {
		t.Error("Expected zed to be private")
	}

	yara := profiles[1]
	if yara.Age != nil {
		t.Errorf("Expected no age for yara, got %v", *yara.Age)
	}
	if yara.Visibility != model.VisibilityPublic {
		t.Error("Visibility should default to public")
	}

	if len(follows) != 1 || follows[0].From != "zed" || follows[0].To != "yara" {
		t.Errorf("Unexpected follows: %v", follows)
	}
}

func TestLoadFileRejectsBadVisibility(t *testing.T) {
	path := writeSeedFile(t, `
[[users]]
id = "zed"
name = "Zed Zhang"
visibility = "secret"
`)

	if _, _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should reject an unknown visibility tag")
	}
}

func TestLoadFileRejectsMissingID(t *testing.T) {
	path := writeSeedFile(t, `
[[users]]
name = "No ID"
`)

	if _, _, err := LoadFile(path); err == nil {
		t.Error("LoadFile() should reject a user without an id")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("LoadFile() should fail for a missing file")
	}
}

func TestBuildSkipsInvalidEntries(t *testing.T) {
	age := 30
	profiles := []*model.Profile{
		{ID: "a", DisplayName: "A", Age: &age},
		{ID: "a", DisplayName: "Duplicate"},
		{ID: "b", DisplayName: "B"},
	}
	follows := []Follow{
		{"a", "b"},
		{"a", "ghost"},
	}

	n := Build(profiles, follows)
	if n.UserCount() != 2 {
		t.Errorf("Expected duplicate user to be skipped, got %d users", n.UserCount())
	}
	if n.FollowCount() != 1 {
		t.Errorf("Expected unknown endpoint to be skipped, got %d follows", n.FollowCount())
	}
}
