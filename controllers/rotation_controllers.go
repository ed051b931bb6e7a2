package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/hub"
	"github.com/hostline/host-stand/utils"
)

type RotationController struct {
	Floor *floor.Floor
}

func NewRotationController(fl *floor.Floor) *RotationController {
	return &RotationController{Floor: fl}
}

// GetSuggestion reports who should take the next party, paired with the head
// of the waitlist when someone is waiting. No suggestion when nobody is on
// shift.
func (rc *RotationController) GetSuggestion(c *gin.Context) {
	var (
		suggestion string
		hasServer  bool
		nextParty  floor.Guest
		hasParty   bool
	)
	rc.Floor.View(func(s *floor.State) {
		suggestion, hasServer = s.Suggest()
		nextParty, hasParty = s.Peek()
	})

	if !hasServer {
		utils.RespondJSON(c, http.StatusOK, "No suggestion available", gin.H{
			"server": nil,
		})
		return
	}

	data := gin.H{"server": suggestion}
	if hasParty {
		data["next_party"] = nextParty
	}
	utils.RespondJSON(c, http.StatusOK, "Seating suggestion", data)
}

// GetRotation reports the rotation order, scores, direction, and last server
// sat.
func (rc *RotationController) GetRotation(c *gin.Context) {
	snap := rc.Floor.Snapshot()
	utils.RespondJSON(c, http.StatusOK, "Current rotation", gin.H{
		"seating_rotation":  snap.SeatingRotation,
		"server_scores":     snap.ServerScores,
		"seating_direction": snap.SeatingDirection,
		"last_sat_server":   snap.LastSatServer,
	})
}

// SetDirection flips the seating chart direction (Up or Down).
func (rc *RotationController) SetDirection(c *gin.Context) {
	var req struct {
		Direction string `json:"direction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := rc.Floor.Update(func(s *floor.State) error {
		return s.SetDirection(floor.Direction(req.Direction))
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	snap := rc.Floor.Snapshot()
	hub.BroadcastRotationUpdate(snap)
	utils.RespondJSON(c, http.StatusOK, "Seating direction updated", gin.H{
		"seating_direction": snap.SeatingDirection,
		"seating_rotation":  snap.SeatingRotation,
	})
}

// AddMark credits a server with one seating by hand.
func (rc *RotationController) AddMark(c *gin.Context) {
	rc.adjustMark(c, 1, "Seating mark added")
}

// RemoveMark takes one seating back (an accidental seat); counts never go
// below zero.
func (rc *RotationController) RemoveMark(c *gin.Context) {
	rc.adjustMark(c, -1, "Seating mark removed")
}

func (rc *RotationController) adjustMark(c *gin.Context, delta int, message string) {
	serverName := c.Param("server")

	err := rc.Floor.Update(func(s *floor.State) error {
		return s.AdjustScore(serverName, delta)
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	snap := rc.Floor.Snapshot()
	hub.BroadcastRotationUpdate(snap)
	utils.InfoLogger.Printf("Adjusted seating marks for %s (%+d)", serverName, delta)
	utils.RespondJSON(c, http.StatusOK, message, gin.H{
		"server_scores": snap.ServerScores,
	})
}
