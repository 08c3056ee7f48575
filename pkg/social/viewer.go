package social

import "github.com/nadhir/social-graph/pkg/model"

// ScopedProfile is a profile projection scoped to a particular viewer.
// Public always carries the unconditional {id, displayName} projection;
// Full is nil and Restricted is true when the target's PRIVATE setting
// hides the rest from this viewer.
type ScopedProfile struct {
	Public     model.PublicView
	Full       *model.FullView
	Restricted bool
}

// canViewDetails is the single place the visibility rule lives: a PRIVATE
// profile reveals its details and relationship lists only to itself.
func (n *Network) canViewDetails(viewerID string, target *model.Profile) bool {
	return target.Visibility == model.VisibilityPublic || viewerID == target.ID
}

// ViewerProfile returns the target's profile as seen by the viewer. The
// second return is false if the target id is unknown. An empty viewerID
// means an anonymous viewer.
func (n *Network) ViewerProfile(viewerID, targetID string) (ScopedProfile, bool) {
	target, ok := n.usersByID[targetID]
	if !ok {
		return ScopedProfile{}, false
	}

	scoped := ScopedProfile{Public: target.PublicView()}
	if n.canViewDetails(viewerID, target) {
		full := target.FullView()
		scoped.Full = &full
	} else {
		scoped.Restricted = true
	}
	return scoped, true
}

// ViewerFollowing returns the target's following list as seen by the
// viewer. The second return is false when the list is hidden by the
// target's PRIVATE setting; the entries themselves are the unconditional
// public projections.
func (n *Network) ViewerFollowing(viewerID, targetID string) ([]model.PublicView, bool) {
	return n.viewerList(viewerID, targetID, n.Following)
}

// ViewerFollowers returns the target's follower list as seen by the
// viewer, under the same rule as ViewerFollowing.
func (n *Network) ViewerFollowers(viewerID, targetID string) ([]model.PublicView, bool) {
	return n.viewerList(viewerID, targetID, n.Followers)
}

func (n *Network) viewerList(viewerID, targetID string, list func(string) []*model.Profile) ([]model.PublicView, bool) {
	target, ok := n.usersByID[targetID]
	if !ok {
		return nil, false
	}
	if !n.canViewDetails(viewerID, target) {
		return nil, false
	}

	profiles := list(targetID)
	views := make([]model.PublicView, 0, len(profiles))
	for _, p := range profiles {
		views = append(views, p.PublicView())
	}
	return views, true
}
