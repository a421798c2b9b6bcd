package batch

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekitsunagi/quizgen/pkg/logging"
)

func TestPool_RunsAllTasks(t *testing.T) {
	p := newPool(4, logging.NewNopLogger())

	var done atomic.Int64
	for i := 0; i < 100; i++ {
		p.submit(func() { done.Add(1) })
	}
	p.wait()

	assert.Equal(t, int64(100), done.Load())
}

func TestPool_SurvivesPanickingTask(t *testing.T) {
	p := newPool(2, logging.NewNopLogger())

	var done atomic.Int64
	p.submit(func() { panic("boom") })
	for i := 0; i < 10; i++ {
		p.submit(func() { done.Add(1) })
	}
	p.wait()

	assert.Equal(t, int64(10), done.Load())
}

func TestPool_ZeroWorkersStillRuns(t *testing.T) {
	p := newPool(0, logging.NewNopLogger())

	ran := false
	p.submit(func() { ran = true })
	p.wait()

	assert.True(t, ran)
}
