package social

import (
	"testing"

	"github.com/nadhir/social-graph/pkg/model"
)

func newTestNetwork(t *testing.T, ids ...string) *Network {
	t.Helper()
	n := NewNetwork()
	for _, id := range ids {
		if !n.AddUser(&model.Profile{ID: id, DisplayName: "User " + id}) {
			t.Fatalf("AddUser(%s) failed during setup", id)
		}
	}
	return n
}

func idSet(profiles []*model.Profile) map[string]bool {
	set := make(map[string]bool, len(profiles))
	for _, p := range profiles {
		set[p.ID] = true
	}
	return set
}

func TestAddUserDuplicate(t *testing.T) {
	n := NewNetwork()

	first := &model.Profile{ID: "alice123", DisplayName: "Alice Johnson"}
	if !n.AddUser(first) {
		t.Fatal("AddUser() on a new id should return true")
	}
	if n.AddUser(&model.Profile{ID: "alice123", DisplayName: "Impostor"}) {
		t.Error("AddUser() on a duplicate id should return false")
	}

	stored, ok := n.GetUser("alice123")
	if !ok {
		t.Fatal("GetUser() should find alice123")
	}
	if stored.DisplayName != "Alice Johnson" {
		t.Errorf("First write should win; got display name %s", stored.DisplayName)
	}
	if n.UserCount() != 1 {
		t.Errorf("Expected 1 user, got %d", n.UserCount())
	}
}

func TestFollowScenario(t *testing.T) {
	n := newTestNetwork(t, "a", "b", "c")

	if !n.Follow("a", "b") {
		t.Fatal("Follow(a, b) should succeed")
	}
	if !n.Follow("a", "c") {
		t.Fatal("Follow(a, c) should succeed")
	}

	following := idSet(n.Following("a"))
	if len(following) != 2 || !following["b"] || !following["c"] {
		t.Errorf("Expected a to follow {b, c}, got %v", following)
	}
	if len(n.Followers("a")) != 0 {
		t.Errorf("Expected a to have no followers, got %v", idSet(n.Followers("a")))
	}

	followers := idSet(n.Followers("b"))
	if len(followers) != 1 || !followers["a"] {
		t.Errorf("Expected b's followers to be {a}, got %v", followers)
	}
}

func TestFollowIsNotSymmetric(t *testing.T) {
	n := newTestNetwork(t, "a", "b")
	n.Follow("a", "b")

	if n.IsFollowing("b", "a") {
		t.Error("Follow(a, b) must not create the reverse relation")
	}
	if len(n.Following("b")) != 0 {
		t.Errorf("Expected b to follow nobody, got %v", idSet(n.Following("b")))
	}
}

func TestFollowDuplicate(t *testing.T) {
	n := newTestNetwork(t, "a", "b")

	if !n.Follow("a", "b") {
		t.Fatal("First Follow(a, b) should succeed")
	}
	if n.Follow("a", "b") {
		t.Error("Second Follow(a, b) should return false")
	}

	followers := n.Followers("b")
	if len(followers) != 1 || followers[0].ID != "a" {
		t.Errorf("Expected exactly one follower a, got %v", idSet(followers))
	}
}

func TestFollowUnknownIDs(t *testing.T) {
	n := newTestNetwork(t, "a")

	if n.Follow("a", "ghost") {
		t.Error("Follow() with an unknown followee should return false")
	}
	if n.Follow("ghost", "a") {
		t.Error("Follow() with an unknown follower should return false")
	}
}

func TestSelfFollowAllowed(t *testing.T) {
	n := newTestNetwork(t, "a")

	// The menu-level guard lives in the caller; the facade accepts it.
	if !n.Follow("a", "a") {
		t.Error("Follow(a, a) should succeed at the facade level")
	}
	following := n.Following("a")
	if len(following) != 1 || following[0].ID != "a" {
		t.Errorf("Expected a to follow itself, got %v", idSet(following))
	}
}

func TestUnfollow(t *testing.T) {
	n := newTestNetwork(t, "a", "b")
	n.Follow("a", "b")

	if !n.Unfollow("a", "b") {
		t.Error("Unfollow() on an existing follow should return true")
	}
	if len(n.Following("a")) != 0 {
		t.Error("Following list should be empty after unfollow")
	}
	if len(n.Followers("b")) != 0 {
		t.Error("Follower list should be empty after unfollow")
	}
}

func TestUnfollowNonexistent(t *testing.T) {
	n := newTestNetwork(t, "a", "b", "c")
	n.Follow("a", "b")

	if n.Unfollow("a", "c") {
		t.Error("Unfollow() without an existing follow should return false")
	}
	if n.Unfollow("b", "a") {
		t.Error("Unfollow() of the reverse direction should return false")
	}

	// State unchanged.
	if !n.IsFollowing("a", "b") {
		t.Error("Existing follow should survive failed unfollows")
	}
	if n.FollowCount() != 1 {
		t.Errorf("Expected 1 follow, got %d", n.FollowCount())
	}
}

func TestQueriesOnUnknownUser(t *testing.T) {
	n := newTestNetwork(t, "a")

	if len(n.Following("ghost")) != 0 {
		t.Error("Following() on an unknown id should return an empty sequence")
	}
	if len(n.Followers("ghost")) != 0 {
		t.Error("Followers() on an unknown id should return an empty sequence")
	}
	if _, ok := n.GetUser("ghost"); ok {
		t.Error("GetUser() should report absence for an unknown id")
	}
}

func TestGetUserFullViewRoundTrip(t *testing.T) {
	n := NewNetwork()
	age := 31
	n.AddUser(&model.Profile{
		ID:          "eve_music",
		DisplayName: "Eve Martinez",
		Gender:      "Female",
		Biography:   "Musician and composer",
		Age:         &age,
		Location:    "Chicago",
		Visibility:  model.VisibilityPrivate,
	})

	p, ok := n.GetUser("eve_music")
	if !ok {
		t.Fatal("GetUser() should find eve_music")
	}

	view := p.FullView()
	if view.ID != "eve_music" || view.DisplayName != "Eve Martinez" ||
		view.Gender != "Female" || view.Biography != "Musician and composer" ||
		view.Age == nil || *view.Age != 31 || view.Location != "Chicago" ||
		view.Visibility != "private" {
		t.Errorf("FullView() did not reproduce the created profile: %+v", view)
	}
}

func TestAllUsers(t *testing.T) {
	n := newTestNetwork(t, "a", "b", "c")

	users := idSet(n.AllUsers())
	if len(users) != 3 || !users["a"] || !users["b"] || !users["c"] {
		t.Errorf("Expected all of {a, b, c}, got %v", users)
	}
}

func TestViewerProfilePublicTarget(t *testing.T) {
	n := NewNetwork()
	n.AddUser(&model.Profile{ID: "bob_dev", DisplayName: "Bob Smith", Location: "San Francisco"})

	scoped, ok := n.ViewerProfile("", "bob_dev")
	if !ok {
		t.Fatal("ViewerProfile() should find bob_dev")
	}
	if scoped.Restricted {
		t.Error("A public profile should not be restricted")
	}
	if scoped.Full == nil || scoped.Full.Location != "San Francisco" {
		t.Errorf("Expected full view for public target, got %+v", scoped.Full)
	}
}

func TestViewerProfilePrivateTarget(t *testing.T) {
	n := NewNetwork()
	n.AddUser(&model.Profile{
		ID:          "charlie_art",
		DisplayName: "Charlie Brown",
		Biography:   "Digital artist",
		Visibility:  model.VisibilityPrivate,
	})

	scoped, ok := n.ViewerProfile("someone_else", "charlie_art")
	if !ok {
		t.Fatal("ViewerProfile() should find charlie_art")
	}
	if !scoped.Restricted || scoped.Full != nil {
		t.Errorf("A private profile should hide details from other viewers: %+v", scoped)
	}
	if scoped.Public.ID != "charlie_art" || scoped.Public.DisplayName != "Charlie Brown" {
		t.Errorf("Public projection must survive restriction: %+v", scoped.Public)
	}

	// The owner always sees everything.
	own, _ := n.ViewerProfile("charlie_art", "charlie_art")
	if own.Restricted || own.Full == nil || own.Full.Biography != "Digital artist" {
		t.Errorf("Owner should see the full view: %+v", own)
	}
}

func TestViewerProfileUnknownTarget(t *testing.T) {
	n := NewNetwork()
	if _, ok := n.ViewerProfile("", "ghost"); ok {
		t.Error("ViewerProfile() should report absence for an unknown target")
	}
}

func TestViewerListsGating(t *testing.T) {
	n := NewNetwork()
	n.AddUser(&model.Profile{ID: "priv", DisplayName: "Private", Visibility: model.VisibilityPrivate})
	n.AddUser(&model.Profile{ID: "pub", DisplayName: "Public"})
	n.Follow("priv", "pub")
	n.Follow("pub", "priv")

	if _, ok := n.ViewerFollowing("pub", "priv"); ok {
		t.Error("ViewerFollowing() of a private target should be hidden from others")
	}
	if _, ok := n.ViewerFollowers("pub", "priv"); ok {
		t.Error("ViewerFollowers() of a private target should be hidden from others")
	}

	own, ok := n.ViewerFollowing("priv", "priv")
	if !ok || len(own) != 1 || own[0].ID != "pub" {
		t.Errorf("Owner should see their own following list, got (%v, %v)", own, ok)
	}

	list, ok := n.ViewerFollowers("", "pub")
	if !ok || len(list) != 1 || list[0].ID != "priv" {
		t.Errorf("Anyone should see a public target's followers, got (%v, %v)", list, ok)
	}
}
