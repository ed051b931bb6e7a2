package floor

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := twoServerFloor(t)
	_, err := s.AddGuest("Smith", 4, "booth", 0, 30, baseTime)
	require.NoError(t, err)
	tableID := firstTableInSection(t, s, 1)
	_, err = s.Seat(tableID, "Walkin", "Ann")
	require.NoError(t, err)

	snap := s.Snapshot()
	data, err := json.Marshal(snap)
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	restored := FromSnapshot(decoded)

	assert.Equal(t, snap, restored.Snapshot())
}

func TestSnapshotFieldNames(t *testing.T) {
	s := twoServerFloor(t)
	data, err := json.Marshal(s.Snapshot())
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{
		"waitlist", "servers", "present_servers", "tables",
		"seating_rotation", "server_scores", "seating_direction", "last_sat_server",
	} {
		assert.Contains(t, raw, key)
	}
}

func TestSnapshotPresentServersIsSortedList(t *testing.T) {
	s := NewState()
	for _, name := range []string{"Zoe", "Ann", "Mel"} {
		_, err := s.AddServer(name)
		require.NoError(t, err)
	}
	require.NoError(t, s.SetPresent([]string{"Zoe", "Mel", "Ann"}))
	assert.Equal(t, []string{"Ann", "Mel", "Zoe"}, s.Snapshot().PresentServers)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := twoServerFloor(t)
	snap := s.Snapshot()
	snap.ServerScores["Ann"] = 99
	snap.Tables[0].Status = StatusBussing
	assert.Equal(t, 0, s.Scores()["Ann"])
	assert.Equal(t, StatusAvailable, s.Tables()[0].Status)
}

func TestFromSnapshotDefaults(t *testing.T) {
	// A fresh or malformed snapshot must still yield a usable floor.
	s := FromSnapshot(Snapshot{})
	assert.Equal(t, DirectionUp, s.Direction())
	assert.NotEmpty(t, s.Tables(), "empty table set regenerates for one section")
	assert.Empty(t, s.Waitlist())
	_, ok := s.Suggest()
	assert.False(t, ok)

	s = FromSnapshot(Snapshot{SeatingDirection: "Diagonal"})
	assert.Equal(t, DirectionUp, s.Direction())
}

func TestFloorUpdateNotifiesOnSuccessOnly(t *testing.T) {
	f := New(nil)
	var notified []Snapshot
	f.OnChange(func(snap Snapshot) { notified = append(notified, snap) })

	err := f.Update(func(s *State) error {
		_, err := s.AddServer("Ann")
		return err
	})
	require.NoError(t, err)
	require.Len(t, notified, 1)
	assert.Len(t, notified[0].Servers, 1)

	err = f.Update(func(s *State) error {
		_, err := s.AddServer("")
		return err
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Len(t, notified, 1, "failed mutation must not notify")
}

func TestFloorIndependentInstances(t *testing.T) {
	a := New(NewState())
	b := New(NewState())
	require.NoError(t, a.Update(func(s *State) error {
		_, err := s.AddServer("Ann")
		return err
	}))
	assert.Len(t, a.Snapshot().Servers, 1)
	assert.Empty(t, b.Snapshot().Servers, "floors must not share state")
}

func TestFloorUpdatePropagatesEngineErrors(t *testing.T) {
	f := New(nil)
	sentinel := errors.New("boom")
	err := f.Update(func(*State) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}
