// Package scheduler installs the recurring reset of the submission tracker.
package scheduler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/houraiteahouse/recruit-mailer/internal/config"
	"github.com/houraiteahouse/recruit-mailer/internal/logger"
)

// Scheduler wraps a cron runner with zero or one reset job. When the
// configured schedule has no fields set, the scheduler is inert: Start and
// Stop are safe and the callback never fires.
type Scheduler struct {
	cron      *cron.Cron
	entry     cron.EntryID
	installed bool
	log       *logger.Logger
}

// New builds a scheduler for the given recurrence. Absent fields are cron
// wildcards, so {Minute: 5} fires at minute 5 of every hour of every day.
func New(sched config.ResetSchedule, onTick func(), log *logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron: cron.New(),
		log:  log,
	}

	if sched.IsZero() {
		log.Info().Msg("no reset schedule configured, address list will never auto-clear")
		return s, nil
	}

	spec := Spec(sched)
	id, err := s.cron.AddFunc(spec, onTick)
	if err != nil {
		return nil, fmt.Errorf("install reset schedule %q: %w", spec, err)
	}
	s.entry = id
	s.installed = true

	log.Info().
		Str("spec", spec).
		Time("next", s.Next(time.Now())).
		Msg("installed reset schedule")

	return s, nil
}

// Spec renders the schedule as a standard 5-field cron expression.
func Spec(sched config.ResetSchedule) string {
	field := func(v *int) string {
		if v == nil {
			return "*"
		}
		return strconv.Itoa(*v)
	}
	return fmt.Sprintf("%s %s * * %s", field(sched.Minute), field(sched.Hour), field(sched.DayOfWeek))
}

// Start begins firing ticks on a background goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the runner and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Installed reports whether a recurring job was set up.
func (s *Scheduler) Installed() bool {
	return s.installed
}

// Next returns the first firing time after t, or the zero time when the
// scheduler is inert.
func (s *Scheduler) Next(t time.Time) time.Time {
	if !s.installed {
		return time.Time{}
	}
	return s.cron.Entry(s.entry).Schedule.Next(t)
}
