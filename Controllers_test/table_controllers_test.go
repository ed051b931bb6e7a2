package Controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostline/host-stand/controllers"
	"github.com/hostline/host-stand/floor"
	"github.com/hostline/host-stand/utils"
)

func setupTableRouter(fl *floor.Floor) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	tableCtrl := controllers.NewTableController(fl)
	router.GET("/tables", tableCtrl.GetAllTables)
	router.POST("/tables/:table_id/seat", tableCtrl.SeatTable)
	router.POST("/tables/:table_id/cycle", tableCtrl.CycleTable)
	router.POST("/tables/:table_id/bus", tableCtrl.BusTable)
	router.POST("/tables/:table_id/clear", tableCtrl.ClearTable)
	router.POST("/floor/rebuild", tableCtrl.RebuildFloor)
	return router
}

// hostedFloor is a floor with Ann (section 1) and Bo (section 2) on shift.
func hostedFloor(t *testing.T) *floor.Floor {
	t.Helper()
	fl := floor.New(nil)
	err := fl.Update(func(s *floor.State) error {
		if _, err := s.AddServer("Ann"); err != nil {
			return err
		}
		if _, err := s.AddServer("Bo"); err != nil {
			return err
		}
		return s.SetPresent([]string{"Ann", "Bo"})
	})
	require.NoError(t, err)
	return fl
}

func sectionTable(t *testing.T, fl *floor.Floor, section int) int {
	t.Helper()
	for _, tbl := range fl.Snapshot().Tables {
		if tbl.Section == section {
			return tbl.Number
		}
	}
	t.Fatalf("no table in section %d", section)
	return 0
}

func TestSeatTableEndpoint(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	router := setupTableRouter(fl)
	tableID := sectionTable(t, fl, 1)

	w := postJSON(t, router, fmt.Sprintf("/tables/%d/seat", tableID), map[string]interface{}{
		"party_name": "Smith",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(floor.StatusTaken), data["status"])
	assert.Equal(t, "Smith", data["party"])
	// No server named: the section's present server gets the credit.
	assert.Equal(t, "Ann", data["server"])
	assert.Equal(t, 1, fl.Snapshot().ServerScores["Ann"])

	// Seating a Taken table is rejected.
	w = postJSON(t, router, fmt.Sprintf("/tables/%d/seat", tableID), map[string]interface{}{
		"party_name": "Jones",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSeatTableFromWaitlistEndpoint(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	require.NoError(t, fl.Update(func(s *floor.State) error {
		_, err := s.AddGuest("Smith", 4, "", 0, 30, time.Now())
		return err
	}))
	router := setupTableRouter(fl)
	tableID := sectionTable(t, fl, 2)

	w := postJSON(t, router, fmt.Sprintf("/tables/%d/seat", tableID), map[string]interface{}{
		"waitlist_position": 1,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	snap := fl.Snapshot()
	assert.Empty(t, snap.Waitlist, "waitlist entry consumed exactly once")
	assert.Equal(t, 1, snap.ServerScores["Bo"])

	// Bad position: nothing consumed, nothing seated.
	w = postJSON(t, router, fmt.Sprintf("/tables/%d/seat", sectionTable(t, fl, 1)), map[string]interface{}{
		"waitlist_position": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCycleTableEndpoint(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	router := setupTableRouter(fl)
	tableID := sectionTable(t, fl, 1)

	statuses := make([]string, 0, 3)
	for i := 0; i < 3; i++ {
		w := postJSON(t, router, fmt.Sprintf("/tables/%d/cycle", tableID), map[string]interface{}{})
		require.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		statuses = append(statuses, response["data"].(map[string]interface{})["status"].(string))
	}
	assert.Equal(t, []string{"Taken", "Bussing", "Available"}, statuses)
	assert.Equal(t, 1, fl.Snapshot().ServerScores["Ann"], "one full cycle = one seating credit")
}

func TestBusAndClearEndpoints(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	router := setupTableRouter(fl)
	tableID := sectionTable(t, fl, 1)

	// Bus before anyone is seated: invalid transition.
	w := postJSON(t, router, fmt.Sprintf("/tables/%d/bus", tableID), map[string]interface{}{})
	assert.Equal(t, http.StatusConflict, w.Code)

	postJSON(t, router, fmt.Sprintf("/tables/%d/seat", tableID), map[string]interface{}{"party_name": "Smith"})

	w = postJSON(t, router, fmt.Sprintf("/tables/%d/bus", tableID), map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, fmt.Sprintf("/tables/%d/clear", tableID), map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, string(floor.StatusAvailable), data["status"])
	assert.Nil(t, data["party"])
	assert.Nil(t, data["server"])
}

func TestTableEndpointsUnknownTable(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	router := setupTableRouter(fl)

	w := postJSON(t, router, "/tables/999/cycle", map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	req, _ := http.NewRequest("POST", "/tables/notanumber/cycle", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRebuildFloorEndpoint(t *testing.T) {
	utils.InitLogger()
	fl := hostedFloor(t)
	router := setupTableRouter(fl)
	tableID := sectionTable(t, fl, 1)

	postJSON(t, router, fmt.Sprintf("/tables/%d/seat", tableID), map[string]interface{}{"party_name": "Smith"})

	w := postJSON(t, router, "/floor/rebuild", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)
	for _, tbl := range fl.Snapshot().Tables {
		assert.Equal(t, floor.StatusAvailable, tbl.Status)
	}
}
