// internal/domain/coach.go
package domain

// Coach is the link between the signed-in athlete and one of their coaches.
// ID identifies the link; Profile.ID identifies the coach user.
type Coach struct {
	ID      string       `json:"id"`
	Profile CoachProfile `json:"profile"`
	Blocked bool         `json:"blocked"`
}

type CoachProfile struct {
	ID              int64         `json:"id"`
	FirstName       string        `json:"firstName"`
	LastName        string        `json:"lastName"`
	Email           string        `json:"email,omitempty"`
	Gender          string        `json:"gender,omitempty"`
	ImageDescriptor string        `json:"imageDescriptor,omitempty"` // opaque path/version of the photo
	Photo           *ProfilePhoto `json:"-"`
}

// Initials are what the UI shows when no photo is available.
func (p CoachProfile) Initials() string {
	initials := ""
	if p.FirstName != "" {
		initials += string([]rune(p.FirstName)[:1])
	}
	if p.LastName != "" {
		initials += string([]rune(p.LastName)[:1])
	}
	return initials
}

// ProfilePhoto is the decoded coach photo, cached under the descriptor it was fetched for.
type ProfilePhoto struct {
	Descriptor  string
	ContentType string
	Data        []byte
}

// CoachRoster is the athlete's coach list plus the currently selected coach.
type CoachRoster struct {
	Coaches  []Coach `json:"coaches"`
	Selected *Coach  `json:"selected,omitempty"`
}

// Find returns the coach with the given link id, or nil.
func (r CoachRoster) Find(id string) *Coach {
	for i := range r.Coaches {
		if r.Coaches[i].ID == id {
			c := r.Coaches[i]
			return &c
		}
	}
	return nil
}

// IsBlocked reports whether the selected coach has blocked the athlete.
func (r CoachRoster) IsBlocked() bool {
	return r.Selected != nil && r.Selected.Blocked
}

// SelectedCoachID returns the selected coach's user id, used to scope plan fetches.
func (r CoachRoster) SelectedCoachID() *int64 {
	if r.Selected == nil {
		return nil
	}
	id := r.Selected.Profile.ID
	return &id
}
