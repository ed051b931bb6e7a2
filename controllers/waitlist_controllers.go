package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/hub"
	"github.com/hostline/host-stand/utils"
)

type WaitlistController struct {
	Floor *floor.Floor
}

func NewWaitlistController(fl *floor.Floor) *WaitlistController {
	return &WaitlistController{Floor: fl}
}

// waitlistEntry is a guest plus their live wait classification, re-evaluated
// on every read. Positions are 1-based, matching what the host sees.
type waitlistEntry struct {
	Position int                  `json:"position"`
	Guest    floor.Guest          `json:"guest"`
	Wait     floor.Classification `json:"wait"`
}

func waitlistView(guests []floor.Guest, now time.Time) []waitlistEntry {
	entries := make([]waitlistEntry, len(guests))
	for i, g := range guests {
		entries[i] = waitlistEntry{
			Position: i + 1,
			Guest:    g,
			Wait:     floor.Classify(g, now),
		}
	}
	return entries
}

// GetWaitlist lists waiting parties in seating order.
func (wc *WaitlistController) GetWaitlist(c *gin.Context) {
	snap := wc.Floor.Snapshot()
	utils.RespondJSON(c, http.StatusOK, "Current waitlist", waitlistView(snap.Waitlist, time.Now()))
}

// AddGuest puts a party on the waitlist.
func (wc *WaitlistController) AddGuest(c *gin.Context) {
	var req struct {
		Name      string `json:"name" binding:"required"`
		PartySize int    `json:"party_size" binding:"required"`
		Notes     string `json:"notes"`
		MinWait   int    `json:"min_wait"`
		MaxWait   int    `json:"max_wait"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var added floor.Guest
	err := wc.Floor.Update(func(s *floor.State) error {
		var err error
		added, err = s.AddGuest(req.Name, req.PartySize, req.Notes, req.MinWait, req.MaxWait, time.Now())
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastWaitlistUpdate(wc.Floor.Snapshot().Waitlist)
	utils.InfoLogger.Printf("Added %s (party of %d) to waitlist", added.Name, added.PartySize)
	utils.RespondJSON(c, http.StatusCreated, "Guest added to waitlist", added)
}

// RemoveGuest deletes the waitlist entry at a 1-based position.
func (wc *WaitlistController) RemoveGuest(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var removed floor.Guest
	err = wc.Floor.Update(func(s *floor.State) error {
		var err error
		removed, err = s.RemoveGuestAt(position - 1)
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastWaitlistUpdate(wc.Floor.Snapshot().Waitlist)
	utils.InfoLogger.Printf("Removed %s from waitlist", removed.Name)
	utils.RespondJSON(c, http.StatusOK, "Guest removed from waitlist", removed)
}
