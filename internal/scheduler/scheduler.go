package scheduler

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// Job is anything the scheduler can trigger.
type Job interface {
	Run(ctx context.Context)
}

type Scheduler struct {
	cron *cron.Cron
	job  Job
	spec string
}

// New returns a scheduler for job. An empty spec disables it.
func New(spec string, job Job) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		job:  job,
		spec: spec,
	}
}

func (s *Scheduler) Start() error {
	if s.spec == "" {
		log.Printf("scheduler disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.spec, func() {
		log.Printf("scheduled digest triggered")
		go s.job.Run(context.Background())
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
