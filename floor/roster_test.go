package floor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddServerAssignsNextSection(t *testing.T) {
	s := NewState()
	for i, name := range []string{"Ann", "Bo", "Cal"} {
		sv, err := s.AddServer(name)
		require.NoError(t, err)
		assert.Equal(t, i+1, sv.Section)
	}
}

func TestAddServerValidation(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = s.AddServer("   ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.AddServer("Ann")
	require.NoError(t, err)
	_, err = s.AddServer("Ann")
	assert.ErrorIs(t, err, ErrInvalidInput, "duplicate active name")
}

func TestAddServerCapacity(t *testing.T) {
	s := NewState()
	for i := 1; i <= 9; i++ {
		_, err := s.AddServer(fmt.Sprintf("Server%d", i))
		require.NoError(t, err)
	}
	_, err := s.AddServer("TenthServer")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Len(t, s.Servers(), 9, "rejected add must leave the roster alone")
}

func TestAddServerRebuildsFloor(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)
	// One server keeps the whole floor; the plan splits once Bo arrives.
	for _, tbl := range s.Tables() {
		assert.Equal(t, 1, tbl.Section)
	}
	_, err = s.AddServer("Bo")
	require.NoError(t, err)
	sections := make(map[int]bool)
	for _, tbl := range s.Tables() {
		sections[tbl.Section] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true}, sections)
}

func TestRemoveServer(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)
	_, err = s.AddServer("Bo")
	require.NoError(t, err)
	require.NoError(t, s.SetPresent([]string{"Ann", "Bo"}))

	removed, err := s.RemoveServer(0)
	require.NoError(t, err)
	assert.Equal(t, "Ann", removed.Name)
	assert.Len(t, s.Servers(), 1)
	assert.False(t, s.IsPresent("Ann"))
	_, hasScore := s.Scores()["Ann"]
	assert.False(t, hasScore, "removed server keeps no score")

	_, err = s.RemoveServer(5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveServerByName(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)

	_, err = s.RemoveServerByName("Zed")
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := s.RemoveServerByName("Ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", removed.Name)
	assert.Empty(t, s.Servers())
}

func TestSectionNumbersNotReused(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)
	_, err = s.AddServer("Bo")
	require.NoError(t, err)

	_, err = s.RemoveServerByName("Ann")
	require.NoError(t, err)

	// Bo keeps section 2; the next hire goes to 3, not back to 1.
	sv, err := s.AddServer("Cal")
	require.NoError(t, err)
	assert.Equal(t, 3, sv.Section)
	bo, err := s.serverByName("Bo")
	require.NoError(t, err)
	assert.Equal(t, 2, bo.Section)
}

func TestSetPresentWholesale(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)
	_, err = s.AddServer("Bo")
	require.NoError(t, err)

	require.NoError(t, s.SetPresent([]string{"Ann", "Bo"}))
	assert.True(t, s.IsPresent("Ann"))
	assert.True(t, s.IsPresent("Bo"))

	// Replace, not merge.
	require.NoError(t, s.SetPresent([]string{"Bo"}))
	assert.False(t, s.IsPresent("Ann"))
	assert.True(t, s.IsPresent("Bo"))

	err = s.SetPresent([]string{"Bo", "Nobody"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, s.IsPresent("Bo"), "failed replace must leave the present set alone")
}

func TestPresenceIndependentOfSection(t *testing.T) {
	s := NewState()
	_, err := s.AddServer("Ann")
	require.NoError(t, err)
	_, err = s.AddServer("Bo")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, s.SetPresent(nil))
		require.NoError(t, s.SetPresent([]string{"Bo"}))
	}
	bo, err := s.serverByName("Bo")
	require.NoError(t, err)
	assert.Equal(t, 2, bo.Section, "presence churn must not move sections")
}
