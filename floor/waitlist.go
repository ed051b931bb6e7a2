package floor

import (
	"strings"
	"time"
)

// Guest is one waitlist entry. Entries keep their insertion order; the head
// of the list is always the next suggested party.
type Guest struct {
	Name      string `json:"name"`
	PartySize int    `json:"party_size"`
	Notes     string `json:"notes"`
	AddedTime int64  `json:"added_time"` // unix seconds
	MinWait   int    `json:"min_wait"`   // minutes
	MaxWait   int    `json:"max_wait"`   // minutes
}

// Input bounds for waitlist entries, matching the host stand form.
const (
	MinPartySize = 1
	MaxPartySize = 20
	MaxWaitBound = 180
)

// Urgency classifies how overdue a waiting party is.
type Urgency string

const (
	CanWaitLonger      Urgency = "CanWaitLonger"
	ShouldBeSeatedSoon Urgency = "ShouldBeSeatedSoon"
	MustBeSeatedNow    Urgency = "MustBeSeatedNow"
)

// Classification is the wait status of a guest at one instant. Remaining is
// minutes until the next threshold; once the maximum wait is hit it carries
// the total minutes waited instead.
type Classification struct {
	Urgency   Urgency `json:"urgency"`
	Waited    int     `json:"waited_minutes"`
	Remaining int     `json:"remaining_minutes"`
}

// Classify evaluates a guest's wait at instant now. Whole minutes only; a
// guest who has waited exactly MinWait minutes is already past "can wait
// longer", and exactly MaxWait minutes means seat them now.
func Classify(g Guest, now time.Time) Classification {
	waited := int((now.Unix() - g.AddedTime) / 60)
	switch {
	case waited < g.MinWait:
		return Classification{Urgency: CanWaitLonger, Waited: waited, Remaining: g.MinWait - waited}
	case waited >= g.MaxWait:
		return Classification{Urgency: MustBeSeatedNow, Waited: waited, Remaining: waited}
	default:
		return Classification{Urgency: ShouldBeSeatedSoon, Waited: waited, Remaining: g.MaxWait - waited}
	}
}

// AddGuest appends a party to the waitlist, stamping now as the arrival.
func (s *State) AddGuest(name string, partySize int, notes string, minWait, maxWait int, now time.Time) (Guest, error) {
	if strings.TrimSpace(name) == "" {
		return Guest{}, ErrInvalidInput
	}
	if partySize < MinPartySize || partySize > MaxPartySize {
		return Guest{}, ErrInvalidInput
	}
	if minWait < 0 || maxWait > MaxWaitBound || minWait > maxWait {
		return Guest{}, ErrInvalidInput
	}
	g := Guest{
		Name:      name,
		PartySize: partySize,
		Notes:     notes,
		AddedTime: now.Unix(),
		MinWait:   minWait,
		MaxWait:   maxWait,
	}
	s.waitlist = append(s.waitlist, g)
	return g, nil
}

// RemoveGuestAt pops the entry at the given 0-based index. An entry leaves
// the list exactly once, whether removed by hand or consumed by seating.
func (s *State) RemoveGuestAt(index int) (Guest, error) {
	if index < 0 || index >= len(s.waitlist) {
		return Guest{}, ErrNotFound
	}
	removed := s.waitlist[index]
	s.waitlist = append(s.waitlist[:index], s.waitlist[index+1:]...)
	return removed, nil
}

// Peek reports the head of the waitlist, the next party to seat.
func (s *State) Peek() (Guest, bool) {
	if len(s.waitlist) == 0 {
		return Guest{}, false
	}
	return s.waitlist[0], true
}

// SeatFromWaitlist consumes the waitlist entry at the given 0-based index
// and seats that party at the table, crediting serverName. The table must be
// Available; on any rejection both the waitlist and the table are untouched.
func (s *State) SeatFromWaitlist(tableID, index int, serverName string) (Table, Guest, error) {
	if index < 0 || index >= len(s.waitlist) {
		return Table{}, Guest{}, ErrNotFound
	}
	t, err := s.tableAt(tableID)
	if err != nil {
		return Table{}, Guest{}, err
	}
	if t.Status != StatusAvailable {
		return Table{}, Guest{}, ErrInvalidTransition
	}
	guest, _ := s.RemoveGuestAt(index)
	seated, err := s.Seat(tableID, guest.Name, serverName)
	if err != nil {
		// Both preconditions were checked above; reaching here would mean
		// the table changed out from under us, which single-writer forbids.
		return Table{}, Guest{}, err
	}
	return seated, guest, nil
}
