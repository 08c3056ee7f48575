// Package seed supplies demo data for the social network. The core never
// depends on it; the CLI builds a Network from whichever seed it is given.
package seed

import (
	"fmt"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/nadhir/social-graph/pkg/model"
	"github.com/nadhir/social-graph/pkg/social"
)

// Follow is a follower -> followee pair.
type Follow struct {
	From string `koanf:"from"`
	To   string `koanf:"to"`
}

type seedUser struct {
	ID         string `koanf:"id"`
	Name       string `koanf:"name"`
	Gender     string `koanf:"gender"`
	Biography  string `koanf:"biography"`
	Age        int    `koanf:"age"`
	Location   string `koanf:"location"`
	Visibility string `koanf:"visibility"`
}

type seedData struct {
	Users   []seedUser `koanf:"users"`
	Follows []Follow   `koanf:"follows"`
}

// Default returns the built-in demo profiles and follow pairs.
func Default() ([]*model.Profile, []Follow) {
	mkAge := func(a int) *int { return &a }

	profiles := []*model.Profile{
		{ID: "alice123", DisplayName: "Alice Johnson", Gender: "Female",
			Biography: "Love traveling and photography!", Age: mkAge(28), Location: "New York"},
		{ID: "bob_dev", DisplayName: "Bob Smith", Gender: "Male",
			Biography: "Software developer | Coffee enthusiast", Age: mkAge(32), Location: "San Francisco"},
		{ID: "charlie_art", DisplayName: "Charlie Brown", Gender: "Male",
			Biography: "Digital artist and designer", Age: mkAge(25), Location: "Los Angeles",
			Visibility: model.VisibilityPrivate},
		{ID: "diana_fit", DisplayName: "Diana Wilson", Gender: "Female",
			Biography: "Fitness trainer | Healthy living advocate", Age: mkAge(29), Location: "Miami"},
		{ID: "eve_music", DisplayName: "Eve Martinez", Gender: "Female",
			Biography: "Musician and composer | Classical pianist", Age: mkAge(31), Location: "Chicago",
			Visibility: model.VisibilityPrivate},
		{ID: "frank_chef", DisplayName: "Frank Thompson", Gender: "Male",
			Biography: "Professional chef | Food blogger", Age: mkAge(35), Location: "Austin"},
		{ID: "grace_writer", DisplayName: "Grace Lee", Gender: "Female",
			Biography: "Author and blogger | Love books and tea", Age: mkAge(27), Location: "Seattle"},
	}

	follows := []Follow{
		{"alice123", "bob_dev"},
		{"alice123", "diana_fit"},
		{"alice123", "frank_chef"},
		{"bob_dev", "alice123"},
		{"bob_dev", "charlie_art"},
		{"charlie_art", "eve_music"},
		{"charlie_art", "grace_writer"},
		{"diana_fit", "alice123"},
		{"diana_fit", "frank_chef"},
		{"eve_music", "grace_writer"},
		{"frank_chef", "alice123"},
		{"frank_chef", "diana_fit"},
		{"frank_chef", "grace_writer"},
		{"grace_writer", "eve_music"},
		{"grace_writer", "frank_chef"},
	}

	return profiles, follows
}

// LoadFile reads a TOML seed file with [[users]] and [[follows]] tables.
func LoadFile(path string) ([]*model.Profile, []Follow, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("failed to load seed file: %w", err)
	}

	var data seedData
	if err := k.Unmarshal("", &data); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal seed file: %w", err)
	}

	profiles := make([]*model.Profile, 0, len(data.Users))
	for i, u := range data.Users {
		if u.ID == "" || u.Name == "" {
			return nil, nil, fmt.Errorf("user %d: id and name are required", i+1)
		}

		visibility := model.VisibilityPublic
		if u.Visibility != "" {
			v, ok := model.ParseVisibility(u.Visibility)
			if !ok {
				return nil, nil, fmt.Errorf("user %s: unknown visibility %q", u.ID, u.Visibility)
			}
			visibility = v
		}

		p := &model.Profile{
			ID:          u.ID,
			DisplayName: u.Name,
			Gender:      u.Gender,
			Biography:   u.Biography,
			Location:    u.Location,
			Visibility:  visibility,
		}
		if u.Age > 0 {
			age := u.Age
			p.Age = &age
		}
		profiles = append(profiles, p)
	}

	for i, f := range data.Follows {
		if f.From == "" || f.To == "" {
			return nil, nil, fmt.Errorf("follow %d: from and to are required", i+1)
		}
	}

	return profiles, data.Follows, nil
}

// Build wires profiles and follow pairs into a fresh Network. Duplicate
// users and unknown follow endpoints are skipped, matching the facade's
// boolean contract.
func Build(profiles []*model.Profile, follows []Follow) *social.Network {
	n := social.NewNetwork()
	for _, p := range profiles {
		n.AddUser(p)
	}
	for _, f := range follows {
		n.Follow(f.From, f.To)
	}
	return n
}
