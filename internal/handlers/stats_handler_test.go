package handlers

import (
	"net/http"
	"testing"
	"time"

	"internal-task-api/internal/database"
	"internal-task-api/internal/models"
	"internal-task-api/internal/testutil"

	"github.com/stretchr/testify/require"
)

func TestGetDashboardStats_AdminOnly(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "emp", "pw", models.RoleEmployee)

	w := doJSON(t, r, http.MethodGet, "/stats/dashboard", tokenFor(t, "emp"), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetDashboardStats_EmptyStoreStillHasSevenDays(t *testing.T) {
	r := newTestRouter(t)
	testutil.CreateUser(t, database.DB, "admin", "pw", models.RoleAdmin)

	w := doJSON(t, r, http.MethodGet, "/stats/dashboard", tokenFor(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DashboardResponse](t, w)
	require.Len(t, resp.Bar.Days, 7)
	require.Len(t, resp.Bar.Counts, 7)
	for _, n := range resp.Bar.Counts {
		require.Zero(t, n)
	}
	require.Equal(t, time.Now().Format("Mon"), resp.Bar.Days[6])
}

func TestGetDashboardStats_CountsAndDayAttribution(t *testing.T) {
	r := newTestRouter(t)
	admin := testutil.CreateUser(t, database.DB, "admin", "pw", models.RoleAdmin)
	e1 := testutil.CreateUser(t, database.DB, "e1", "pw", models.RoleEmployee)

	// Anchor at local noon so bucket membership never straddles midnight.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	threeDaysAgo := today.AddDate(0, 0, -3)
	tenDaysAgo := today.AddDate(0, 0, -10)

	done := func(completed time.Time) models.Task {
		return models.Task{
			Title: "t", Content: "c",
			AssigneeID: e1.ID, CreatorID: admin.ID,
			Status: models.StatusDone, CompletedAt: &completed,
		}
	}
	seed := []models.Task{
		done(today),
		done(today),
		done(threeDaysAgo),
		done(tenDaysAgo), // outside the 7-day window
		{Title: "t", Content: "c", AssigneeID: e1.ID, CreatorID: admin.ID, Status: models.StatusPending},
		{Title: "t", Content: "c", AssigneeID: e1.ID, CreatorID: admin.ID, Status: models.StatusPending},
	}
	require.NoError(t, database.DB.Create(&seed).Error)

	w := doJSON(t, r, http.MethodGet, "/stats/dashboard", tokenFor(t, "admin"), nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[DashboardResponse](t, w)

	// Pie: done and pending are counted independently; the ten-day-old
	// completion still counts as done.
	require.Len(t, resp.Pie, 2)
	require.Equal(t, "Done", resp.Pie[0].Name)
	require.EqualValues(t, 4, resp.Pie[0].Value)
	require.Equal(t, "Pending", resp.Pie[1].Name)
	require.EqualValues(t, 2, resp.Pie[1].Value)

	// Bar: oldest first; today is the last slot.
	require.Len(t, resp.Bar.Counts, 7)
	require.EqualValues(t, 2, resp.Bar.Counts[6])
	require.EqualValues(t, 1, resp.Bar.Counts[3])

	var total int64
	for _, n := range resp.Bar.Counts {
		total += n
	}
	require.EqualValues(t, 3, total)
}
