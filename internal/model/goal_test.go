package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponsesMissing(t *testing.T) {
	r := Responses{Specific: "run", Measurable: " ", Relevant: "health"}
	assert.Equal(t, []string{"measurable", "achievable", "timebound"}, r.Missing())

	full := Responses{Specific: "a", Measurable: "b", Achievable: "c", Relevant: "d", Timebound: "e"}
	assert.Empty(t, full.Missing())
}

func TestGoalResultValidate(t *testing.T) {
	assert.NoError(t, GoalResult{SmartGoal: "Run 5km", DailyTasks: []string{"A"}}.Validate())

	err := GoalResult{SmartGoal: "  ", DailyTasks: []string{"A"}}.Validate()
	assert.ErrorIs(t, err, ErrInvalidGoalResult)

	err = GoalResult{SmartGoal: "Run 5km"}.Validate()
	assert.ErrorIs(t, err, ErrInvalidGoalResult)
}

func TestJSONColumnsScanBytesAndStrings(t *testing.T) {
	var tasks TaskList
	require.NoError(t, tasks.Scan([]byte(`["A","B"]`)))
	assert.Equal(t, TaskList{"A", "B"}, tasks)

	var responses Responses
	require.NoError(t, responses.Scan(`{"specific":"run","timebound":"June"}`))
	assert.Equal(t, "run", responses.Specific)
	assert.Equal(t, "June", responses.Timebound)

	assert.Error(t, tasks.Scan(42))
}

func TestNilTaskListStoresEmptyArray(t *testing.T) {
	v, err := TaskList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-18")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-18", FormatDate(d))

	_, err = ParseDate("18/10/2026")
	assert.Error(t, err)
}
