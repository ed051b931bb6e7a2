package floor

// Status is the occupancy state of a table. The three states form a
// perpetual cycle: Available -> Taken -> Bussing -> Available.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusTaken     Status = "Taken"
	StatusBussing   Status = "Bussing"
)

// UnknownParty is recorded when a table is seated without a party name.
const UnknownParty = "Unknown Party"

// Table is one physical floor position. Server and Party are nil while the
// table is unoccupied.
type Table struct {
	Number  int     `json:"table"`
	Section int     `json:"section"`
	Status  Status  `json:"status"`
	Server  *string `json:"server"`
	Party   *string `json:"party"`
}

// transitions is the closed set of legal status moves. Anything not listed
// here is rejected with ErrInvalidTransition.
var transitions = map[Status]Status{
	StatusAvailable: StatusTaken,
	StatusTaken:     StatusBussing,
	StatusBussing:   StatusAvailable,
}

// buildTables regenerates the full table set for sectionCount sections,
// every table Available with no party or server, in section order.
func buildTables(sectionCount int) []Table {
	plan := ResolvePlan(ClampSections(sectionCount))
	var tables []Table
	for sectionIdx, numbers := range plan {
		for _, num := range numbers {
			tables = append(tables, Table{
				Number:  num,
				Section: sectionIdx + 1,
				Status:  StatusAvailable,
			})
		}
	}
	return tables
}

// RebuildTopology throws away every table record and regenerates the floor
// for sectionCount sections. This is destructive on purpose: any party
// currently seated is silently un-seated, which is why roster changes are
// visible in the seating chart immediately.
func (s *State) RebuildTopology(sectionCount int) {
	s.tables = buildTables(sectionCount)
}

// tableAt returns a pointer to the table with the given floor number.
func (s *State) tableAt(tableID int) (*Table, error) {
	for i := range s.tables {
		if s.tables[i].Number == tableID {
			return &s.tables[i], nil
		}
	}
	return nil, ErrNotFound
}

// Cycle advances a table one step around the status cycle. Moving off
// Available credits the section's server with a seating when that server is
// present; returning to Available clears the party and server fields.
func (s *State) Cycle(tableID int) (Table, error) {
	t, err := s.tableAt(tableID)
	if err != nil {
		return Table{}, err
	}
	next, ok := transitions[t.Status]
	if !ok {
		return Table{}, ErrInvalidTransition
	}
	switch next {
	case StatusTaken:
		if name, ok := s.sectionServer(t.Section); ok && s.present[name] {
			t.Server = strPtr(name)
			s.recordSeated(name)
		}
		t.Status = StatusTaken
	case StatusBussing:
		t.Status = StatusBussing
	case StatusAvailable:
		t.Status = StatusAvailable
		t.Party = nil
		t.Server = nil
	}
	return *t, nil
}

// Seat places a party at an Available table and credits serverName with the
// seating. An empty partyName falls back to UnknownParty; an empty
// serverName seats the table without crediting anyone.
func (s *State) Seat(tableID int, partyName, serverName string) (Table, error) {
	t, err := s.tableAt(tableID)
	if err != nil {
		return Table{}, err
	}
	if t.Status != StatusAvailable {
		return Table{}, ErrInvalidTransition
	}
	if partyName == "" {
		partyName = UnknownParty
	}
	t.Status = StatusTaken
	t.Party = strPtr(partyName)
	if serverName != "" {
		t.Server = strPtr(serverName)
		s.recordSeated(serverName)
	} else {
		t.Server = nil
	}
	return *t, nil
}

// Bus marks a Taken table as waiting to be cleaned.
func (s *State) Bus(tableID int) (Table, error) {
	t, err := s.tableAt(tableID)
	if err != nil {
		return Table{}, err
	}
	if t.Status != StatusTaken {
		return Table{}, ErrInvalidTransition
	}
	t.Status = StatusBussing
	return *t, nil
}

// Clear resets a table to Available. Normally follows Bussing, but a Taken
// table may be force-cleared too (host fixing a mistaken seat).
func (s *State) Clear(tableID int) (Table, error) {
	t, err := s.tableAt(tableID)
	if err != nil {
		return Table{}, err
	}
	if t.Status != StatusBussing && t.Status != StatusTaken {
		return Table{}, ErrInvalidTransition
	}
	t.Status = StatusAvailable
	t.Party = nil
	t.Server = nil
	return *t, nil
}

func strPtr(s string) *string { return &s }
