// Package social composes the directed graph and the profile model into a
// follow/unfollow/query facade.
//
// The Network is a plain in-memory structure driven synchronously by a
// single caller; it performs no locking of its own. Mutating operations
// report failure as a boolean and lookups report absence as an empty
// collection or a missing-value sentinel, never as an error.
package social

import (
	"github.com/nadhir/social-graph/pkg/graph"
	"github.com/nadhir/social-graph/pkg/model"
)

// Network binds profile identities to graph vertices. The vertex set of the
// follow graph and the usersByID map stay in lock-step: an id is either
// present in both or in neither.
type Network struct {
	follows   *graph.Digraph[string, *model.Profile]
	usersByID map[string]*model.Profile
}

// NewNetwork creates an empty social network.
func NewNetwork() *Network {
	return &Network{
		follows:   graph.NewDigraph[string, *model.Profile](),
		usersByID: make(map[string]*model.Profile),
	}
}

// AddUser inserts a profile as both a user record and a graph vertex.
// Returns false without changing any state if the id is already taken.
// The Network owns the profile after a successful insert.
func (n *Network) AddUser(p *model.Profile) bool {
	if _, exists := n.usersByID[p.ID]; exists {
		return false
	}
	n.usersByID[p.ID] = p
	return n.follows.AddVertex(p.ID, p)
}

// Follow records that follower now follows followee. Returns false if
// either id is unknown or the follow already exists. A self-follow is not
// rejected here; that guard belongs to the caller driving the facade.
func (n *Network) Follow(followerID, followeeID string) bool {
	return n.follows.AddEdge(followerID, followeeID)
}

// Unfollow removes an existing follow. Returns false if no such follow
// exists.
func (n *Network) Unfollow(followerID, followeeID string) bool {
	return n.follows.RemoveEdge(followerID, followeeID)
}

// IsFollowing reports whether follower currently follows followee.
func (n *Network) IsFollowing(followerID, followeeID string) bool {
	return n.follows.HasEdge(followerID, followeeID)
}

// Following returns the profiles the given user follows, in unspecified
// order. An unknown id yields an empty slice.
func (n *Network) Following(userID string) []*model.Profile {
	return n.resolve(n.follows.Outgoing(userID))
}

// Followers returns the profiles following the given user, in unspecified
// order. An unknown id yields an empty slice.
func (n *Network) Followers(userID string) []*model.Profile {
	return n.resolve(n.follows.Incoming(userID))
}

// resolve maps vertex ids back to profiles, dropping any id without a user
// record. The lock-step invariant means nothing is ever dropped in
// practice.
func (n *Network) resolve(ids []string) []*model.Profile {
	profiles := make([]*model.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := n.usersByID[id]; ok {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// GetUser returns the profile for the given id.
func (n *Network) GetUser(id string) (*model.Profile, bool) {
	p, ok := n.usersByID[id]
	return p, ok
}

// AllUsers returns every profile in the network, in unspecified order.
func (n *Network) AllUsers() []*model.Profile {
	users := make([]*model.Profile, 0, len(n.usersByID))
	for _, p := range n.usersByID {
		users = append(users, p)
	}
	return users
}

// UserCount returns the number of users.
func (n *Network) UserCount() int {
	return len(n.usersByID)
}

// FollowCount returns the total number of follow relations.
func (n *Network) FollowCount() int {
	return n.follows.EdgeCount()
}
