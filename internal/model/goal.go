package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidGoalResult = errors.New("invalid goal format")
)

// Responses holds the answers to the five SMART prompts.
type Responses struct {
	Specific   string `json:"specific"`
	Measurable string `json:"measurable"`
	Achievable string `json:"achievable"`
	Relevant   string `json:"relevant"`
	Timebound  string `json:"timebound"`
}

// Missing returns the JSON names of blank answers in SMART order.
func (r Responses) Missing() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"specific", r.Specific},
		{"measurable", r.Measurable},
		{"achievable", r.Achievable},
		{"relevant", r.Relevant},
		{"timebound", r.Timebound},
	}

	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (r Responses) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *Responses) Scan(src any) error {
	return scanJSON(src, r)
}

// TaskList is an ordered list of daily tasks stored as a JSON array.
type TaskList []string

func (t TaskList) Value() (driver.Value, error) {
	if t == nil {
		t = TaskList{}
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (t *TaskList) Scan(src any) error {
	return scanJSON(src, t)
}

// GoalRequest is what the user submits to have a goal synthesized.
type GoalRequest struct {
	InitialPrompt string    `json:"initialPrompt"`
	Responses     Responses `json:"responses"`
}

// GoalResult is the synthesized SMART goal and its daily checklist.
type GoalResult struct {
	SmartGoal  string   `json:"smartGoal"`
	DailyTasks []string `json:"dailyTasks"`
}

func (g GoalResult) Validate() error {
	if strings.TrimSpace(g.SmartGoal) == "" {
		return fmt.Errorf("%w: smart goal is empty", ErrInvalidGoalResult)
	}
	if len(g.DailyTasks) == 0 {
		return fmt.Errorf("%w: no daily tasks", ErrInvalidGoalResult)
	}
	return nil
}

type Goal struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	SmartGoal  string    `db:"smart_goal" json:"smart_goal"`
	DailyTasks TaskList  `db:"daily_tasks" json:"daily_tasks"`
	Responses  Responses `db:"responses" json:"responses"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

func scanJSON(src any, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported json column type %T", src)
	}
}
