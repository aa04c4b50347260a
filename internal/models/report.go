package models

import "time"

// Report is a weekly status report. A user submits at most one report per
// week number (e.g. 202635); the pair is enforced unique. Reports are
// immutable once submitted.
type Report struct {
	ID            int       `json:"id" gorm:"primaryKey"`
	UserID        int       `json:"user_id" gorm:"not null;uniqueIndex:idx_reports_user_week"`
	WeekNum       int       `json:"week_num" gorm:"not null;uniqueIndex:idx_reports_user_week"`
	ContentDone   string    `json:"content_done" gorm:"type:text"`
	ContentPlan   string    `json:"content_plan" gorm:"type:text"`
	ContentIssues string    `json:"content_issues" gorm:"type:text"`
	SubmittedAt   time.Time `json:"submitted_at" gorm:"autoCreateTime"`
	IsLate        bool      `json:"is_late" gorm:"not null;default:false"`
}

// TableName specifies the table name for Report Model
func (Report) TableName() string {
	return "reports"
}
