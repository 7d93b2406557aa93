package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler owns every live reminder trigger for the life of the process.
// All triggers are evaluated in a single configured timezone.
type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
}

func NewScheduler(loc *time.Location) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		loc:  loc,
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops firing new triggers and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Daily registers fn to run every day at hour:minute until shutdown.
// Triggers registered for the same time of day fire independently.
func (s *Scheduler) Daily(hour, minute int, fn func()) error {
	if err := validateTriggerTime(hour, minute); err != nil {
		return err
	}
	_, err := s.cron.AddFunc(dailySpec(hour, minute), fn)
	return err
}

// Once registers fn to run a single time at the next occurrence of
// hour:minute: today if that time is still ahead, tomorrow otherwise.
// The trigger disarms itself after firing. Returns the firing instant.
func (s *Scheduler) Once(hour, minute int, fn func()) (time.Time, error) {
	if err := validateTriggerTime(hour, minute); err != nil {
		return time.Time{}, err
	}

	var id cron.EntryID
	var err error
	// The entry stays registered as a daily trigger until Remove takes
	// effect; fireOnce keeps a second firing from slipping through.
	id, err = s.cron.AddFunc(dailySpec(hour, minute), fireOnce(fn, func() {
		s.cron.Remove(id)
	}))
	if err != nil {
		return time.Time{}, err
	}

	return nextOccurrence(time.Now().In(s.loc), hour, minute), nil
}

func validateTriggerTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: %02d:%02d", ErrInvalidTriggerSpec, hour, minute)
	}
	return nil
}

func dailySpec(hour, minute int) string {
	return fmt.Sprintf("%d %d * * *", minute, hour)
}

// fireOnce wraps fn so that only the first invocation runs, then disarms.
func fireOnce(fn, disarm func()) func() {
	var once sync.Once
	return func() {
		once.Do(func() {
			defer disarm()
			fn()
		})
	}
}

// nextOccurrence returns the next instant strictly after now whose
// time-of-day is hour:minute.
func nextOccurrence(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
