package model

import (
	"time"
)

// DateLayout is the calendar-day format used for progress dates.
const DateLayout = "2006-01-02"

// Progress records whether a user finished a goal's daily tasks on one day.
// (UserID, GoalID, Date) is unique.
type Progress struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	GoalID    string    `db:"goal_id" json:"goal_id"`
	Date      string    `db:"date" json:"date"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD day in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
