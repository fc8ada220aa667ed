package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStartsValid(t *testing.T) {
	r := NewReport()
	assert.True(t, r.Valid)
	assert.Empty(t, r.Errors)
}

func TestAddErrorInvalidates(t *testing.T) {
	r := NewReport()
	r.AddError(Result{Level: LevelOptions, Message: "bad"})

	assert.False(t, r.Valid)
	assert.Equal(t, SeverityError, r.Errors[0].Severity)
	assert.Equal(t, "1 errors, 0 warnings, 0 info", r.Summary)
}

func TestWarningsAndInfoKeepValid(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelOptions, Message: "iffy"})
	r.AddInfo(Result{Level: LevelCircuit, Message: "fyi"})

	assert.True(t, r.Valid)
	assert.Equal(t, "0 errors, 1 warnings, 1 info", r.Summary)
}

func TestMergePropagatesInvalid(t *testing.T) {
	a := NewReport()
	a.AddInfo(Result{Level: LevelCircuit, Message: "fyi"})

	b := NewReport()
	b.AddError(Result{Level: LevelSpatial, Message: "bad"})

	a.Merge(b)
	assert.False(t, a.Valid)
	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Info, 1)
}
