package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/hub"
	"github.com/hostline/host-stand/utils"
)

type ServerController struct {
	Floor *floor.Floor
}

func NewServerController(fl *floor.Floor) *ServerController {
	return &ServerController{Floor: fl}
}

type serverEntry struct {
	Position int    `json:"position"`
	Name     string `json:"name"`
	Section  int    `json:"section"`
	Present  bool   `json:"present"`
	Score    int    `json:"score"`
}

// GetServers lists the roster with presence and current seating counts.
func (sc *ServerController) GetServers(c *gin.Context) {
	snap := sc.Floor.Snapshot()
	present := make(map[string]bool, len(snap.PresentServers))
	for _, name := range snap.PresentServers {
		present[name] = true
	}

	entries := make([]serverEntry, len(snap.Servers))
	for i, sv := range snap.Servers {
		entries[i] = serverEntry{
			Position: i + 1,
			Name:     sv.Name,
			Section:  sv.Section,
			Present:  present[sv.Name],
			Score:    snap.ServerScores[sv.Name],
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Current roster", entries)
}

// AddServer puts a server on the roster. The floor is repartitioned for the
// new count, which clears every table.
func (sc *ServerController) AddServer(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var added floor.Server
	err := sc.Floor.Update(func(s *floor.State) error {
		var err error
		added, err = s.AddServer(req.Name)
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastRosterUpdate(sc.Floor.Snapshot())
	utils.InfoLogger.Printf("Added server %s to section %d", added.Name, added.Section)
	utils.RespondJSON(c, http.StatusCreated, "Server added", added)
}

// RemoveServer drops the roster entry at a 1-based position; the floor is
// repartitioned for the smaller count.
func (sc *ServerController) RemoveServer(c *gin.Context) {
	position, err := strconv.Atoi(c.Param("position"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var removed floor.Server
	err = sc.Floor.Update(func(s *floor.State) error {
		var err error
		removed, err = s.RemoveServer(position - 1)
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastRosterUpdate(sc.Floor.Snapshot())
	utils.InfoLogger.Printf("Removed server %s from section %d", removed.Name, removed.Section)
	utils.RespondJSON(c, http.StatusOK, "Server removed", removed)
}

// SetPresent replaces the set of servers on shift.
func (sc *ServerController) SetPresent(c *gin.Context) {
	var req struct {
		Present []string `json:"present"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	err := sc.Floor.Update(func(s *floor.State) error {
		return s.SetPresent(req.Present)
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	snap := sc.Floor.Snapshot()
	hub.BroadcastRosterUpdate(snap)
	utils.RespondJSON(c, http.StatusOK, "Present servers updated", gin.H{
		"present_servers":  snap.PresentServers,
		"seating_rotation": snap.SeatingRotation,
	})
}
