package batch

import (
	"sync"

	"github.com/ekitsunagi/quizgen/pkg/logging"
)

// pool is a fixed-size worker pool for independent generation tasks. Tasks
// share nothing but the read-only graph, so there is no locking beyond the
// task queue itself.
type pool struct {
	tasks chan func()
	wg    sync.WaitGroup
	log   logging.Logger
}

func newPool(workers int, log logging.Logger) *pool {
	if workers <= 0 {
		workers = 1
	}
	p := &pool{
		tasks: make(chan func(), workers*2),
		log:   log,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		// Recover so one panicking task cannot take the whole batch down
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error("generation task panicked", logging.Any("panic", r))
				}
			}()
			task()
		}()
	}
}

func (p *pool) submit(task func()) {
	p.tasks <- task
}

// wait closes the queue and blocks until every submitted task has finished.
// The pool cannot be reused afterwards.
func (p *pool) wait() {
	close(p.tasks)
	p.wg.Wait()
}
