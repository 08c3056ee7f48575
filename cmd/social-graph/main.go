package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/nadhir/social-graph/pkg/config"
	"github.com/nadhir/social-graph/pkg/logging"
	"github.com/nadhir/social-graph/pkg/model"
	"github.com/nadhir/social-graph/pkg/output"
	"github.com/nadhir/social-graph/pkg/seed"
	"github.com/nadhir/social-graph/pkg/social"
	"github.com/nadhir/social-graph/pkg/watcher"
)

func main() {
	f := pflag.NewFlagSet("social-graph", pflag.ExitOnError)
	f.String("seed", "", "Path to a TOML seed file (default: built-in demo data)")
	f.Bool("summary", false, "Print a network summary instead of the interactive menu")
	f.Bool("watch", false, "With --summary, re-render when the seed file changes")
	f.String("viewer", "", "Browse as this user id (empty = anonymous viewer)")
	f.Bool("no-color", false, "Disable colorized output")
	f.String("verbosity", "", "Log level: trace, debug, info, warn, error")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.SetLevel(logging.ParseLevel(cfg.Verbosity))
	if cfg.NoColor {
		color.NoColor = true
	}

	network, err := buildNetwork(cfg.Seed)
	if err != nil {
		logging.Fatal("failed to build network", "error", err)
	}
	logging.Debug("network built",
		"users", network.UserCount(), "follows", network.FollowCount())

	if cfg.Summary {
		output.PrintSummary(network, 3)
		if cfg.Watch {
			runWatch(cfg.Seed)
		}
		return
	}

	runMenu(network, cfg.Viewer)
}

// buildNetwork loads the seed and wires it into a fresh Network. The core
// never sees the seed file; it only receives plain profiles and pairs.
func buildNetwork(seedPath string) (*social.Network, error) {
	if seedPath == "" {
		profiles, follows := seed.Default()
		return seed.Build(profiles, follows), nil
	}

	profiles, follows, err := seed.LoadFile(seedPath)
	if err != nil {
		return nil, err
	}
	return seed.Build(profiles, follows), nil
}

// runWatch re-renders the summary whenever the seed file changes. A fresh
// Network is built per change; the core itself is never shared across
// goroutines.
func runWatch(seedPath string) {
	if seedPath == "" {
		logging.Fatal("--watch requires --seed")
	}

	w, err := watcher.NewSeedWatcher(seedPath)
	if err != nil {
		logging.Fatal("failed to create watcher", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		logging.Fatal("failed to start watcher", "error", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events():
			if !ok {
				return
			}
			logging.Info("seed file changed, rebuilding", "path", event.Path)
			network, err := buildNetwork(seedPath)
			if err != nil {
				logging.Error("failed to rebuild network", "error", err)
				continue
			}
			fmt.Println()
			output.PrintSummary(network, 3)
		}
	}
}

func printMenu() {
	bold := color.New(color.Bold)
	fmt.Println()
	bold.Println("           MAIN MENU")
	fmt.Println("==================================================")
	fmt.Println("1. Display list of all users")
	fmt.Println("2. View profile of a person")
	fmt.Println("3. View followed accounts of a person")
	fmt.Println("4. View followers of a person")
	fmt.Println("5. View follow suggestions for a person")
	fmt.Println("6. Add new user profile")
	fmt.Println("7. Follow a user")
	fmt.Println("8. Unfollow a user")
	fmt.Println("9. Network summary")
	fmt.Println("0. Exit")
	fmt.Println("==================================================")
}

func runMenu(network *social.Network, viewerID string) {
	scanner := bufio.NewScanner(os.Stdin)
	red := color.New(color.FgRed)
	green := color.New(color.FgGreen)

	fmt.Println("Welcome to the Social Graph app!")
	if viewerID != "" {
		if _, ok := network.GetUser(viewerID); !ok {
			logging.Warn("viewer id is unknown, browsing anonymously", "viewer", viewerID)
			viewerID = ""
		} else {
			fmt.Printf("Browsing as @%s\n", viewerID)
		}
	}

	for {
		printMenu()
		choice := prompt(scanner, "Enter your choice (0-9): ")

		switch choice {
		case "0":
			fmt.Println("Goodbye!")
			return

		case "1":
			output.PrintUserList(network.AllUsers())

		case "2":
			id := prompt(scanner, "Enter user id to view: ")
			scoped, ok := network.ViewerProfile(viewerID, id)
			if !ok {
				red.Println("User not found!")
				continue
			}
			output.PrintProfile(scoped)

		case "3":
			id := prompt(scanner, "Enter user id: ")
			user, ok := network.GetUser(id)
			if !ok {
				red.Println("User not found!")
				continue
			}
			views, visible := network.ViewerFollowing(viewerID, id)
			output.PrintConnections(
				fmt.Sprintf("%s is following", user.DisplayName), views, !visible)

		case "4":
			id := prompt(scanner, "Enter user id: ")
			user, ok := network.GetUser(id)
			if !ok {
				red.Println("User not found!")
				continue
			}
			views, visible := network.ViewerFollowers(viewerID, id)
			output.PrintConnections(
				fmt.Sprintf("%s's followers", user.DisplayName), views, !visible)

		case "5":
			id := prompt(scanner, "Enter user id: ")
			if _, ok := network.GetUser(id); !ok {
				red.Println("User not found!")
				continue
			}
			output.PrintSuggestions(network.Suggestions(id))

		case "6":
			profile, ok := promptNewProfile(scanner, network)
			if !ok {
				continue
			}
			if network.AddUser(profile) {
				green.Printf("User %s (@%s) added successfully!\n", profile.DisplayName, profile.ID)
			} else {
				red.Println("Failed to add user!")
			}

		case "7":
			followerID := prompt(scanner, "Who wants to follow someone? Enter id: ")
			followeeID := prompt(scanner, "Enter the id to follow: ")
			// The self-follow guard lives here at menu level, not in the core.
			if followerID == followeeID {
				red.Println("A user cannot follow themselves!")
				continue
			}
			if network.Follow(followerID, followeeID) {
				green.Println("Follow added.")
			} else {
				red.Println("Unable to follow. Check both ids exist and the follow is new.")
			}

		case "8":
			followerID := prompt(scanner, "Who wants to unfollow someone? Enter id: ")
			followeeID := prompt(scanner, "Enter the id to unfollow: ")
			if network.Unfollow(followerID, followeeID) {
				green.Println("Unfollowed.")
			} else {
				red.Println("No such follow exists.")
			}

		case "9":
			output.PrintSummary(network, 3)

		default:
			red.Println("Invalid choice! Please enter a number between 0-9.")
		}
	}
}

func prompt(scanner *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !scanner.Scan() {
		// EOF on stdin ends the session.
		fmt.Println()
		os.Exit(0)
	}
	return strings.TrimSpace(scanner.Text())
}

// promptNewProfile collects and validates the fields for a new profile.
// All input parsing lives here; the core receives a ready Profile.
func promptNewProfile(scanner *bufio.Scanner, network *social.Network) (*model.Profile, bool) {
	red := color.New(color.FgRed)

	id := prompt(scanner, "Enter user id (blank to generate): ")
	if id == "" {
		id = uuid.New().String()
		fmt.Printf("Generated id: %s\n", id)
	}
	if _, exists := network.GetUser(id); exists {
		red.Println("User id already exists!")
		return nil, false
	}

	name := prompt(scanner, "Enter full name: ")
	if name == "" {
		red.Println("Name is required!")
		return nil, false
	}

	profile := &model.Profile{
		ID:          id,
		DisplayName: name,
		Gender:      prompt(scanner, "Enter gender (optional): "),
	}

	if ageStr := prompt(scanner, "Enter age (optional): "); ageStr != "" {
		if age, err := strconv.Atoi(ageStr); err == nil && age > 0 {
			profile.Age = &age
		} else {
			red.Println("Ignoring invalid age.")
		}
	}

	profile.Location = prompt(scanner, "Enter location (optional): ")
	profile.Biography = prompt(scanner, "Enter biography (optional): ")

	if prompt(scanner, "Privacy setting (1=Public, 2=Private): ") == "2" {
		profile.Visibility = model.VisibilityPrivate
	}

	return profile, true
}
