package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrynt/backend/pkg/logger"
)

type fakeJob struct {
	name     string
	schedule string
	err      error
	runs     chan struct{}
}

func (j *fakeJob) Name() string     { return j.name }
func (j *fakeJob) Schedule() string { return j.schedule }

func (j *fakeJob) Run(ctx context.Context) error {
	if j.runs != nil {
		j.runs <- struct{}{}
	}
	return j.err
}

func TestJobHistoryAdd(t *testing.T) {
	h := &JobHistory{}
	for i := 0; i < historyLimit+10; i++ {
		h.Add(JobResult{JobName: "x", Success: true})
	}
	assert.Len(t, h.Results, historyLimit)
}

func TestJobHistorySuccessRate(t *testing.T) {
	h := &JobHistory{}
	assert.Equal(t, 0.0, h.SuccessRate())

	h.Add(JobResult{Success: true})
	h.Add(JobResult{Success: true})
	h.Add(JobResult{Success: false})
	h.Add(JobResult{Success: true})
	assert.InDelta(t, 0.75, h.SuccessRate(), 1e-9)
}

func TestAddJobRejectsDuplicate(t *testing.T) {
	s := New(logger.Nop())
	job := &fakeJob{name: "refresh", schedule: "@daily"}

	require.NoError(t, s.AddJob(job))
	err := s.AddJob(job)
	assert.Error(t, err)
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := New(logger.Nop())
	err := s.AddJob(&fakeJob{name: "broken", schedule: "not a cron expr"})
	assert.Error(t, err)
}

func TestRunNowUnknownJob(t *testing.T) {
	s := New(logger.Nop())
	err := s.RunNow("missing")
	assert.Error(t, err)
}

func TestRunNowRecordsHistory(t *testing.T) {
	s := New(logger.Nop())
	job := &fakeJob{name: "refresh", schedule: "@daily", runs: make(chan struct{}, 1)}
	require.NoError(t, s.AddJob(job))

	require.NoError(t, s.RunNow("refresh"))

	select {
	case <-job.runs:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}

	// History is recorded after Run returns; poll briefly.
	deadline := time.After(2 * time.Second)
	for {
		if history := s.History("refresh"); len(history) == 1 {
			assert.True(t, history[0].Success)
			assert.Equal(t, "refresh", history[0].JobName)
			return
		}
		select {
		case <-deadline:
			t.Fatal("history never recorded")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestRunJobFailureRecorded(t *testing.T) {
	s := New(logger.Nop())
	s.maxRetries = 0
	job := &fakeJob{name: "flaky", schedule: "@daily", err: errors.New("boom")}
	require.NoError(t, s.AddJob(job))

	s.runJob(job)

	history := s.History("flaky")
	require.Len(t, history, 1)
	assert.False(t, history[0].Success)
	assert.Equal(t, "boom", history[0].Error)
}

func TestHistoryReturnsCopy(t *testing.T) {
	s := New(logger.Nop())
	job := &fakeJob{name: "j", schedule: "@daily"}
	require.NoError(t, s.AddJob(job))
	s.maxRetries = 0
	s.runJob(job)

	history := s.History("j")
	require.Len(t, history, 1)
	history[0].JobName = "mutated"

	assert.Equal(t, "j", s.History("j")[0].JobName)
}

func TestHistoryUnknownJob(t *testing.T) {
	s := New(logger.Nop())
	assert.Nil(t, s.History("never-added"))
}
