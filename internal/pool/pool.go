package pool

import "sync"

// Pool runs queued jobs on a fixed set of workers.
type Pool struct {
	workers int
	jobCh   chan func()
	wg      sync.WaitGroup
}

func New(workerCount int, jobChanSize int) *Pool {
	return &Pool{
		workers: workerCount,
		jobCh:   make(chan func(), jobChanSize),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobCh {
				job()
			}
		}()
	}
}

func (p *Pool) Add(f func()) {
	p.jobCh <- f
}

// Stop closes the job queue and waits for already queued jobs to finish.
func (p *Pool) Stop() {
	close(p.jobCh)
	p.wg.Wait()
}
