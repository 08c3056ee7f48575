package social

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/nadhir/social-graph/pkg/model"
)

// projection is a gonum view of the follow graph, used by the read-only
// analytics queries. It is rebuilt per query; the ids map assigns each user
// a stable int64 node id for the lifetime of one projection.
type projection struct {
	graph  *simple.DirectedGraph
	ids    map[string]int64
	labels map[int64]string
}

func (n *Network) project() *projection {
	p := &projection{
		graph:  simple.NewDirectedGraph(),
		ids:    make(map[string]int64),
		labels: make(map[int64]string),
	}

	userIDs := make([]string, 0, len(n.usersByID))
	for id := range n.usersByID {
		userIDs = append(userIDs, id)
	}
	sort.Strings(userIDs)

	var next int64
	for _, id := range userIDs {
		p.ids[id] = next
		p.labels[next] = id
		p.graph.AddNode(simple.Node(next))
		next++
	}

	for _, from := range userIDs {
		for _, to := range n.follows.Outgoing(from) {
			if from == to {
				continue // gonum's simple graphs reject self-loops
			}
			p.graph.SetEdge(p.graph.NewEdge(p.graph.Node(p.ids[from]), p.graph.Node(p.ids[to])))
		}
	}

	return p
}

// Mutuals returns the users followed by both a and b, sorted by id. Unknown
// ids yield an empty slice.
func (n *Network) Mutuals(aID, bID string) []*model.Profile {
	bFollows := make(map[string]bool)
	for _, p := range n.Following(bID) {
		bFollows[p.ID] = true
	}

	var mutual []*model.Profile
	for _, p := range n.Following(aID) {
		if bFollows[p.ID] {
			mutual = append(mutual, p)
		}
	}
	sort.Slice(mutual, func(i, j int) bool { return mutual[i].ID < mutual[j].ID })
	return mutual
}

// Suggestion is a follow recommendation with the number of followed
// accounts that point at it.
type Suggestion struct {
	Profile *model.Profile
	Count   int
}

// Suggestions recommends accounts followed by the accounts the user
// follows, excluding the user and anyone already followed. Results are
// sorted by descending count, then id. An unknown id yields an empty slice.
func (n *Network) Suggestions(userID string) []Suggestion {
	if _, ok := n.usersByID[userID]; !ok {
		return nil
	}

	followed := make(map[string]bool)
	for _, p := range n.Following(userID) {
		followed[p.ID] = true
	}

	counts := make(map[string]int)
	for id := range followed {
		for _, candidate := range n.Following(id) {
			if candidate.ID == userID || followed[candidate.ID] {
				continue
			}
			counts[candidate.ID]++
		}
	}

	suggestions := make([]Suggestion, 0, len(counts))
	for id, count := range counts {
		suggestions = append(suggestions, Suggestion{Profile: n.usersByID[id], Count: count})
	}
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Count != suggestions[j].Count {
			return suggestions[i].Count > suggestions[j].Count
		}
		return suggestions[i].Profile.ID < suggestions[j].Profile.ID
	})
	return suggestions
}

// InfluenceScore ranks a user by PageRank over the follow graph.
type InfluenceScore struct {
	Profile *model.Profile
	Score   float64
}

// Influence ranks every user by PageRank, most influential first; ties
// break on id. Self-follows do not contribute.
func (n *Network) Influence() []InfluenceScore {
	if len(n.usersByID) == 0 {
		return nil
	}

	p := n.project()
	ranks := network.PageRank(p.graph, 0.85, 1e-6)

	scores := make([]InfluenceScore, 0, len(ranks))
	for nodeID, rank := range ranks {
		scores = append(scores, InfluenceScore{
			Profile: n.usersByID[p.labels[nodeID]],
			Score:   rank,
		})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Profile.ID < scores[j].Profile.ID
	})
	return scores
}

// Circles returns groups of users who can all reach each other through
// follow relations (strongly connected components of size two or more).
// Members are sorted by id and circles by their first member.
func (n *Network) Circles() [][]*model.Profile {
	p := n.project()
	sccs := newSCCFinder(p.graph).find()

	var circles [][]*model.Profile
	for _, scc := range sccs {
		if len(scc) < 2 {
			continue
		}
		members := make([]*model.Profile, 0, len(scc))
		for _, nodeID := range scc {
			members = append(members, n.usersByID[p.labels[nodeID]])
		}
		sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
		circles = append(circles, members)
	}
	sort.Slice(circles, func(i, j int) bool { return circles[i][0].ID < circles[j][0].ID })
	return circles
}
