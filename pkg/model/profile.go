// Package model defines the user profile entity and its projections.
package model

// Visibility is a two-valued profile setting governing display policy.
// It is not enforced by the core packages; gating happens in the
// viewer-scoped facade operations and at display time.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityPrivate
)

// String returns the canonical lowercase tag for the visibility value.
func (v Visibility) String() string {
	if v == VisibilityPrivate {
		return "private"
	}
	return "public"
}

// ParseVisibility maps a canonical tag to its Visibility value.
func ParseVisibility(tag string) (Visibility, bool) {
	switch tag {
	case "public":
		return VisibilityPublic, true
	case "private":
		return VisibilityPrivate, true
	}
	return VisibilityPublic, false
}

// Profile represents a social network user. The ID is immutable and unique;
// profiles are created once by the caller and not mutated after insertion
// into the network.
type Profile struct {
	ID          string     `json:"id"`
	DisplayName string     `json:"displayName"`
	Gender      string     `json:"gender,omitempty"`
	Biography   string     `json:"biography,omitempty"`
	Age         *int       `json:"age,omitempty"`
	Location    string     `json:"location,omitempty"`
	Visibility  Visibility `json:"visibility"`
}

// PublicView is the minimal projection that is safe to show unconditionally,
// regardless of the profile's visibility setting.
type PublicView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
}

// FullView is the complete projection with visibility rendered as its tag.
// It performs no privacy gating itself.
type FullView struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Gender      string `json:"gender,omitempty"`
	Biography   string `json:"biography,omitempty"`
	Age         *int   `json:"age,omitempty"`
	Location    string `json:"location,omitempty"`
	Visibility  string `json:"visibility"`
}

// PublicView returns the {id, displayName} projection.
func (p *Profile) PublicView() PublicView {
	return PublicView{
		ID:          p.ID,
		DisplayName: p.DisplayName,
	}
}

// FullView returns all profile attributes.
func (p *Profile) FullView() FullView {
	return FullView{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Gender:      p.Gender,
		Biography:   p.Biography,
		Age:         p.Age,
		Location:    p.Location,
		Visibility:  p.Visibility.String(),
	}
}
