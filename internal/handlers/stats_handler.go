package handlers

import (
	"net/http"
	"time"

	"internal-task-api/internal/database"
	"internal-task-api/internal/middleware"
	"internal-task-api/internal/models"
	"internal-task-api/internal/policy"

	"github.com/gin-gonic/gin"
)

// PieSlice is one segment of the status pie chart
type PieSlice struct {
	Value int64  `json:"value"`
	Name  string `json:"name"`
}

// BarSeries is the 7-day completion bar chart; Days and Counts are parallel,
// oldest day first, always exactly 7 entries.
type BarSeries struct {
	Days   []string `json:"days"`
	Counts []int64  `json:"counts"`
}

// DashboardResponse is the admin dashboard payload
type DashboardResponse struct {
	Pie []PieSlice `json:"pie"`
	Bar BarSeries  `json:"bar"`
}

// GetDashboardStats handles GET /stats/dashboard (admin only).
// Done and pending are counted independently rather than derived from a
// total. Completions are attributed to the local calendar day of
// completed_at, using the server clock.
func GetDashboardStats(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := policy.RequireRole(user, models.RoleAdmin); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized"})
		return
	}

	db := database.GetDB()

	var done, pending int64
	if err := db.Model(&models.Task{}).Where("status = ?", models.StatusDone).Count(&done).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}
	if err := db.Model(&models.Task{}).Where("status = ?", models.StatusPending).Count(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bar := BarSeries{
		Days:   make([]string, 0, 7),
		Counts: make([]int64, 0, 7),
	}
	for i := 6; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		var n int64
		err := db.Model(&models.Task{}).
			Where("status = ? AND completed_at >= ? AND completed_at < ?",
				models.StatusDone, dayStart, dayEnd).
			Count(&n).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		bar.Days = append(bar.Days, dayStart.Format("Mon"))
		bar.Counts = append(bar.Counts, n)
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Pie: []PieSlice{
			{Value: done, Name: "Done"},
			{Value: pending, Name: "Pending"},
		},
		Bar: bar,
	})
}
