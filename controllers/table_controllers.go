package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/hub"
	"github.com/hostline/host-stand/utils"
)

type TableController struct {
	Floor *floor.Floor
}

func NewTableController(fl *floor.Floor) *TableController {
	return &TableController{Floor: fl}
}

// GetAllTables lists every table with its section and occupancy.
func (tc *TableController) GetAllTables(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "List of tables", tc.Floor.Snapshot().Tables)
}

func tableParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("table_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return id, true
}

// SeatTable seats a party at an Available table. The party comes either from
// the waitlist (1-based waitlist_position, consumed exactly once) or from the
// optional party_name. The seating is credited to the named server, or to the
// section's present server when none is named.
func (tc *TableController) SeatTable(c *gin.Context) {
	tableID, ok := tableParam(c)
	if !ok {
		return
	}

	var req struct {
		PartyName        string `json:"party_name"`
		WaitlistPosition int    `json:"waitlist_position"`
		Server           string `json:"server"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var seated floor.Table
	var guest floor.Guest
	err := tc.Floor.Update(func(s *floor.State) error {
		serverName := req.Server
		if serverName == "" {
			serverName = sectionServerFor(s, tableID)
		}
		if req.WaitlistPosition > 0 {
			var err error
			seated, guest, err = s.SeatFromWaitlist(tableID, req.WaitlistPosition-1, serverName)
			return err
		}
		var err error
		seated, err = s.Seat(tableID, req.PartyName, serverName)
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastTableUpdate(seated)
	if guest.Name != "" {
		hub.BroadcastWaitlistUpdate(tc.Floor.Snapshot().Waitlist)
	}
	utils.InfoLogger.Printf("Seated %s at table %d", *seated.Party, seated.Number)
	utils.RespondJSON(c, http.StatusOK, "Party seated", seated)
}

// sectionServerFor resolves the present server working a table's section.
// Absent servers are skipped so nobody off shift gets credited.
func sectionServerFor(s *floor.State, tableID int) string {
	for _, tbl := range s.Tables() {
		if tbl.Number != tableID {
			continue
		}
		if name, ok := s.SectionServer(tbl.Section); ok && s.IsPresent(name) {
			return name
		}
		return ""
	}
	return ""
}

// CycleTable advances a table one step: Available -> Taken -> Bussing ->
// Available. The click-to-advance control on the seating chart.
func (tc *TableController) CycleTable(c *gin.Context) {
	tc.applyTableOp(c, "Table cycled", func(s *floor.State, id int) (floor.Table, error) {
		return s.Cycle(id)
	})
}

// BusTable marks a Taken table as bussing.
func (tc *TableController) BusTable(c *gin.Context) {
	tc.applyTableOp(c, "Table marked for bussing", func(s *floor.State, id int) (floor.Table, error) {
		return s.Bus(id)
	})
}

// ClearTable resets a table to Available.
func (tc *TableController) ClearTable(c *gin.Context) {
	tc.applyTableOp(c, "Table cleared", func(s *floor.State, id int) (floor.Table, error) {
		return s.Clear(id)
	})
}

func (tc *TableController) applyTableOp(c *gin.Context, message string, op func(*floor.State, int) (floor.Table, error)) {
	tableID, ok := tableParam(c)
	if !ok {
		return
	}

	var table floor.Table
	err := tc.Floor.Update(func(s *floor.State) error {
		var err error
		table, err = op(s, tableID)
		return err
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	hub.BroadcastTableUpdate(table)
	utils.InfoLogger.Printf("Table %d status changed to %s", table.Number, table.Status)
	utils.RespondJSON(c, http.StatusOK, message, table)
}

// RebuildFloor regenerates the whole table set for the current roster size.
// Destructive: every seated party is wiped back to Available.
func (tc *TableController) RebuildFloor(c *gin.Context) {
	err := tc.Floor.Update(func(s *floor.State) error {
		s.RebuildTopology(floor.ClampSections(len(s.Servers())))
		return nil
	})
	if err != nil {
		utils.RespondEngineError(c, err)
		return
	}

	snap := tc.Floor.Snapshot()
	hub.BroadcastFloorUpdate(snap)
	utils.InfoLogger.Printf("Floor rebuilt with %d tables", len(snap.Tables))
	utils.RespondJSON(c, http.StatusOK, "Floor rebuilt", snap.Tables)
}
