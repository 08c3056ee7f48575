// Package output renders network data for the terminal. All display-time
// formatting lives here; privacy decisions are taken by the facade's
// viewer-scoped operations before anything reaches this package.
package output

import (
	"fmt"
	"sort"

	"github.com/fatih/color"

	"github.com/nadhir/social-graph/pkg/model"
	"github.com/nadhir/social-graph/pkg/social"
)

const divider = "=================================================="

func visibilityMarker(v model.Visibility) string {
	if v == model.VisibilityPrivate {
		return "[private]"
	}
	return "[public]"
}

// PrintUserList prints a numbered listing of every user, sorted by id.
func PrintUserList(users []*model.Profile) {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	sorted := make([]*model.Profile, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	bold.Printf("ALL USERS (%d total)\n", len(sorted))
	fmt.Println(divider)
	for i, u := range sorted {
		fmt.Printf("%d. %s (@%s) ", i+1, u.DisplayName, u.ID)
		yellow.Println(visibilityMarker(u.Visibility))
	}
}

// PrintProfile prints a viewer-scoped profile. Restricted profiles show
// only the unconditional public projection.
func PrintProfile(scoped social.ScopedProfile) {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	bold.Println("USER PROFILE")
	fmt.Println(divider)
	fmt.Printf("Name: %s\n", scoped.Public.DisplayName)
	fmt.Printf("User ID: @%s\n", scoped.Public.ID)

	if scoped.Restricted {
		yellow.Println("Privacy: Private Profile")
		fmt.Println("This account is private. Only the name is visible.")
		return
	}

	full := scoped.Full
	fmt.Printf("Privacy: %s\n", full.Visibility)
	fmt.Printf("Gender: %s\n", orUnspecified(full.Gender))
	if full.Age != nil {
		fmt.Printf("Age: %d\n", *full.Age)
	} else {
		fmt.Println("Age: Not specified")
	}
	fmt.Printf("Location: %s\n", orUnspecified(full.Location))
	fmt.Printf("Biography: %s\n", orUnspecified(full.Biography))
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

// PrintConnections prints a following or follower listing, or the privacy
// notice when the facade reported the list as hidden.
func PrintConnections(title string, views []model.PublicView, hidden bool) {
	bold := color.New(color.Bold)
	yellow := color.New(color.FgYellow)

	bold.Println(title)
	fmt.Println(divider)

	if hidden {
		yellow.Println("This account is private.")
		fmt.Println("Its connections are not visible to other accounts.")
		return
	}
	if len(views) == 0 {
		fmt.Println("Nothing to show yet.")
		return
	}

	sorted := make([]model.PublicView, len(views))
	copy(sorted, views)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	for i, v := range sorted {
		fmt.Printf("%d. %s (@%s)\n", i+1, v.DisplayName, v.ID)
	}
}

// PrintSuggestions prints ranked follow recommendations.
func PrintSuggestions(suggestions []social.Suggestion) {
	bold := color.New(color.Bold)

	bold.Println("SUGGESTED ACCOUNTS")
	fmt.Println(divider)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions right now.")
		return
	}
	for i, s := range suggestions {
		fmt.Printf("%d. %s (@%s) - followed by %d account(s) you follow\n",
			i+1, s.Profile.DisplayName, s.Profile.ID, s.Count)
	}
}

// PrintSummary prints the network summary: counts, the most influential
// accounts, and mutual-follow circles.
func PrintSummary(n *social.Network, topN int) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	bold.Println("Social Graph - Network Summary")
	fmt.Println(divider)
	fmt.Printf("Users: %d\n", n.UserCount())
	fmt.Printf("Follows: %d\n", n.FollowCount())
	fmt.Println()

	scores := n.Influence()
	if len(scores) > 0 {
		green.Println("MOST INFLUENTIAL:")
		if topN > len(scores) {
			topN = len(scores)
		}
		for i := 0; i < topN; i++ {
			fmt.Printf("  %d. %s (@%s) score=%.4f\n",
				i+1, scores[i].Profile.DisplayName, scores[i].Profile.ID, scores[i].Score)
		}
		fmt.Println()
	}

	circles := n.Circles()
	if len(circles) > 0 {
		cyan.Printf("FOLLOW CIRCLES: %d\n", len(circles))
		for i, circle := range circles {
			fmt.Printf("  Circle %d:", i+1)
			for _, member := range circle {
				fmt.Printf(" @%s", member.ID)
			}
			fmt.Println()
		}
	}
}
