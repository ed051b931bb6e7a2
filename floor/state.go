// Package floor is the host stand's seating engine: the walk-in waitlist,
// the server roster with its floor sections, the occupancy state machine for
// every table, and the rotation that decides which server takes the next
// party. All state lives in an explicit State value (no package globals) so
// independent floors can run side by side; State itself does no locking and
// expects a single writer, which the Floor handle provides.
package floor

import "sort"

// State is the complete live state of one floor.
type State struct {
	waitlist      []Guest
	servers       []Server
	present       map[string]bool
	tables        []Table
	rotation      []string
	scores        map[string]int
	direction     Direction
	lastSatServer *string
}

// NewState returns an empty floor: no guests, no servers, direction Up, and
// the whole floor laid out as a single section.
func NewState() *State {
	s := &State{
		present:   make(map[string]bool),
		scores:    make(map[string]int),
		direction: DirectionUp,
	}
	s.RebuildTopology(MinSections)
	return s
}

// Snapshot is the serialized form of a State, the structure the persistence
// layer writes after every mutation. The present set becomes a list here and
// nowhere else.
type Snapshot struct {
	Waitlist         []Guest        `json:"waitlist"`
	Servers          []Server       `json:"servers"`
	PresentServers   []string       `json:"present_servers"`
	Tables           []Table        `json:"tables"`
	SeatingRotation  []string       `json:"seating_rotation"`
	ServerScores     map[string]int `json:"server_scores"`
	SeatingDirection Direction      `json:"seating_direction"`
	LastSatServer    *string        `json:"last_sat_server"`
}

// Snapshot deep-copies the state into its serialized form.
func (s *State) Snapshot() Snapshot {
	present := make([]string, 0, len(s.present))
	for name := range s.present {
		present = append(present, name)
	}
	sort.Strings(present)

	scores := make(map[string]int, len(s.scores))
	for name, score := range s.scores {
		scores[name] = score
	}

	tables := make([]Table, len(s.tables))
	for i, t := range s.tables {
		tables[i] = t
		if t.Server != nil {
			tables[i].Server = strPtr(*t.Server)
		}
		if t.Party != nil {
			tables[i].Party = strPtr(*t.Party)
		}
	}

	var lastSat *string
	if s.lastSatServer != nil {
		lastSat = strPtr(*s.lastSatServer)
	}

	return Snapshot{
		Waitlist:         append([]Guest(nil), s.waitlist...),
		Servers:          append([]Server(nil), s.servers...),
		PresentServers:   present,
		Tables:           tables,
		SeatingRotation:  append([]string(nil), s.rotation...),
		ServerScores:     scores,
		SeatingDirection: s.direction,
		LastSatServer:    lastSat,
	}
}

// FromSnapshot restores a State from its serialized form, tolerating partial
// data (a fresh or hand-edited snapshot): missing maps become empty, a
// missing direction defaults to Up, and an empty table set is regenerated
// for the current server count.
func FromSnapshot(snap Snapshot) *State {
	s := &State{
		waitlist:  append([]Guest(nil), snap.Waitlist...),
		servers:   append([]Server(nil), snap.Servers...),
		present:   make(map[string]bool, len(snap.PresentServers)),
		tables:    append([]Table(nil), snap.Tables...),
		rotation:  append([]string(nil), snap.SeatingRotation...),
		scores:    make(map[string]int, len(snap.ServerScores)),
		direction: snap.SeatingDirection,
	}
	for _, name := range snap.PresentServers {
		s.present[name] = true
	}
	for name, score := range snap.ServerScores {
		s.scores[name] = score
	}
	if s.direction != DirectionUp && s.direction != DirectionDown {
		s.direction = DirectionUp
	}
	if snap.LastSatServer != nil {
		s.lastSatServer = strPtr(*snap.LastSatServer)
	}
	if len(s.tables) == 0 {
		s.RebuildTopology(ClampSections(len(s.servers)))
	}
	return s
}

// Read-side accessors used by the presentation layer. All return copies.

func (s *State) Waitlist() []Guest { return append([]Guest(nil), s.waitlist...) }

func (s *State) Servers() []Server { return append([]Server(nil), s.servers...) }

func (s *State) Rotation() []string { return append([]string(nil), s.rotation...) }

func (s *State) Direction() Direction { return s.direction }

func (s *State) Tables() []Table {
	return s.Snapshot().Tables
}

func (s *State) Scores() map[string]int {
	scores := make(map[string]int, len(s.scores))
	for name, score := range s.scores {
		scores[name] = score
	}
	return scores
}

func (s *State) IsPresent(name string) bool { return s.present[name] }

func (s *State) LastSatServer() (string, bool) {
	if s.lastSatServer == nil {
		return "", false
	}
	return *s.lastSatServer, true
}

// SectionServer reports which server owns a section, if anyone does.
func (s *State) SectionServer(section int) (string, bool) {
	return s.sectionServer(section)
}
