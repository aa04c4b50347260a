package handlers

import (
	"net/http"
	"time"

	"internal-task-api/internal/database"
	"internal-task-api/internal/middleware"
	"internal-task-api/internal/models"
	"internal-task-api/internal/policy"
	"internal-task-api/internal/settings"

	"github.com/gin-gonic/gin"
)

// CreateReportRequest is the weekly report payload
type CreateReportRequest struct {
	WeekNum       int    `json:"week_num" binding:"required"`
	ContentDone   string `json:"content_done"`
	ContentPlan   string `json:"content_plan"`
	ContentIssues string `json:"content_issues"`
}

// ReportResponse joins a report with its owner's public profile. User is only
// populated for admin listings; a caller reading their own reports already
// knows who they are.
type ReportResponse struct {
	models.Report
	User *UserResponse `json:"user,omitempty"`
}

// CreateReport handles POST /reports. At most one report per (user, week);
// a duplicate week is a conflict, not an overwrite.
func CreateReport(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := database.GetDB()
	var count int64
	err := db.Model(&models.Report{}).
		Where("user_id = ? AND week_num = ?", user.ID, req.WeekNum).
		Count(&count).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Report for this week already submitted"})
		return
	}

	deadline, _ := settings.Default.Get(settings.KeyReportDeadline)
	now := time.Now()

	report := models.Report{
		UserID:        user.ID,
		WeekNum:       req.WeekNum,
		ContentDone:   req.ContentDone,
		ContentPlan:   req.ContentPlan,
		ContentIssues: req.ContentIssues,
		SubmittedAt:   now,
		IsLate:        policy.ReportIsLate(now, req.WeekNum, deadline),
	}
	if err := db.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetReports handles GET /reports. Admins see every report joined with its
// owner's profile; everyone else sees only their own. Newest week first.
func GetReports(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	db := database.GetDB()

	if policy.RequireRole(user, models.RoleAdmin) == nil {
		var reports []models.Report
		if err := db.Order("week_num desc").Find(&reports).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
			return
		}

		var users []models.User
		userByID := make(map[int]models.User)
		if err := db.Find(&users).Error; err == nil {
			for _, u := range users {
				userByID[u.ID] = u
			}
		}

		resp := make([]ReportResponse, 0, len(reports))
		for _, r := range reports {
			rr := ReportResponse{Report: r}
			if owner, ok := userByID[r.UserID]; ok {
				profile := userResponse(owner)
				rr.User = &profile
			}
			resp = append(resp, rr)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	var reports []models.Report
	err := db.Where("user_id = ?", user.ID).
		Order("week_num desc").
		Find(&reports).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	resp := make([]ReportResponse, 0, len(reports))
	for _, r := range reports {
		resp = append(resp, ReportResponse{Report: r})
	}
	c.JSON(http.StatusOK, resp)
}
