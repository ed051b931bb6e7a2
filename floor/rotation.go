package floor

import "sort"

// Direction controls which end of the floor the rotation starts from.
type Direction string

const (
	DirectionUp   Direction = "Up"
	DirectionDown Direction = "Down"
)

// SetDirection flips the seating chart direction and recomputes the rotation.
func (s *State) SetDirection(d Direction) error {
	if d != DirectionUp && d != DirectionDown {
		return ErrInvalidInput
	}
	s.direction = d
	s.recompute()
	return nil
}

// recompute rebuilds the rotation list from the present servers ordered by
// section (reversed when the direction is Down), and reconciles the score
// map with it. A change in the rotation's shape (someone came on or off
// shift, or the direction flipped the order) clears the last-sat marker.
// Scores are pruned to exactly the present set: absent servers lose their
// counts, newly present ones start at zero.
func (s *State) recompute() {
	present := make([]Server, 0, len(s.servers))
	for _, sv := range s.servers {
		if s.present[sv.Name] {
			present = append(present, sv)
		}
	}
	sort.Slice(present, func(i, j int) bool { return present[i].Section < present[j].Section })
	if s.direction == DirectionDown {
		for i, j := 0, len(present)-1; i < j; i, j = i+1, j-1 {
			present[i], present[j] = present[j], present[i]
		}
	}

	rotation := make([]string, len(present))
	for i, sv := range present {
		rotation[i] = sv.Name
	}
	if !equalNames(s.rotation, rotation) {
		s.rotation = rotation
		s.lastSatServer = nil
	}
	for name := range s.scores {
		if !s.present[name] {
			delete(s.scores, name)
		}
	}
	for _, name := range rotation {
		if _, ok := s.scores[name]; !ok {
			s.scores[name] = 0
		}
	}
}

// Suggest picks the server who should take the next party: the lowest
// current score wins, and ties go to whoever comes first in rotation order.
// Calling it twice with unchanged state returns the same name.
func (s *State) Suggest() (string, bool) {
	if len(s.rotation) == 0 {
		return "", false
	}
	minScore := s.scores[s.rotation[0]]
	for _, name := range s.rotation[1:] {
		if s.scores[name] < minScore {
			minScore = s.scores[name]
		}
	}
	for _, name := range s.rotation {
		if s.scores[name] == minScore {
			return name, true
		}
	}
	return "", false
}

// recordSeated credits one seating to the named server and remembers them as
// the last server sat.
func (s *State) recordSeated(name string) {
	s.scores[name]++
	s.lastSatServer = strPtr(name)
}

// AdjustScore applies a manual correction to a server's seating count, never
// letting it drop below zero. The server must be known to the score map or
// the roster; unknown names fail closed.
func (s *State) AdjustScore(name string, delta int) error {
	if _, ok := s.scores[name]; !ok {
		if _, err := s.serverByName(name); err != nil {
			return err
		}
		s.scores[name] = 0
	}
	next := s.scores[name] + delta
	if next < 0 {
		next = 0
	}
	s.scores[name] = next
	return nil
}

// IncrementMark and DecrementMark are the host's manual correction controls:
// a seating credited by hand, or an accidental seat taken back.
func (s *State) IncrementMark(serverName string) error { return s.AdjustScore(serverName, 1) }
func (s *State) DecrementMark(serverName string) error { return s.AdjustScore(serverName, -1) }

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
