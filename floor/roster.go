package floor

import "strings"

// Server is a member of the roster. Section numbers are handed out as
// max(existing)+1 when a server is added and are never reshuffled; presence
// is tracked separately so a server keeps their section across breaks.
type Server struct {
	Name    string `json:"name"`
	Section int    `json:"section"`
}

// AddServer puts a new server on the roster in the next section and rebuilds
// the floor for the new server count. The roster caps at MaxSections servers.
func (s *State) AddServer(name string) (Server, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Server{}, ErrInvalidInput
	}
	for _, sv := range s.servers {
		if sv.Name == name {
			return Server{}, ErrInvalidInput
		}
	}
	if len(s.servers) >= MaxSections {
		return Server{}, ErrCapacityExceeded
	}
	maxSection := 0
	for _, sv := range s.servers {
		if sv.Section > maxSection {
			maxSection = sv.Section
		}
	}
	server := Server{Name: name, Section: maxSection + 1}
	s.servers = append(s.servers, server)
	s.scores[name] = 0
	s.RebuildTopology(ClampSections(len(s.servers)))
	s.recompute()
	return server, nil
}

// RemoveServer drops the server at the given 0-based roster index, forgets
// their presence and score, and rebuilds the floor for the smaller count.
func (s *State) RemoveServer(index int) (Server, error) {
	if index < 0 || index >= len(s.servers) {
		return Server{}, ErrNotFound
	}
	removed := s.servers[index]
	s.servers = append(s.servers[:index], s.servers[index+1:]...)
	delete(s.present, removed.Name)
	delete(s.scores, removed.Name)
	s.RebuildTopology(ClampSections(len(s.servers)))
	s.recompute()
	return removed, nil
}

// RemoveServerByName removes the named server; same effects as RemoveServer.
func (s *State) RemoveServerByName(name string) (Server, error) {
	for i, sv := range s.servers {
		if sv.Name == name {
			return s.RemoveServer(i)
		}
	}
	return Server{}, ErrNotFound
}

// SetPresent replaces the present set wholesale. Every name must be on the
// roster. Newly present servers get a zero score if they have none; scores
// of newly absent servers are left for recompute to prune.
func (s *State) SetPresent(names []string) error {
	next := make(map[string]bool, len(names))
	for _, name := range names {
		if _, err := s.serverByName(name); err != nil {
			return err
		}
		next[name] = true
	}
	s.present = next
	for name := range next {
		if _, ok := s.scores[name]; !ok {
			s.scores[name] = 0
		}
	}
	s.recompute()
	return nil
}

func (s *State) serverByName(name string) (Server, error) {
	for _, sv := range s.servers {
		if sv.Name == name {
			return sv, nil
		}
	}
	return Server{}, ErrNotFound
}

// sectionServer reports which roster member owns a section, if any.
func (s *State) sectionServer(section int) (string, bool) {
	for _, sv := range s.servers {
		if sv.Section == section {
			return sv.Name, true
		}
	}
	return "", false
}
