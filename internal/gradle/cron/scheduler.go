package cronjob

import (
	"log"

	"github.com/robfig/cron/v3"

	"github.com/forgeapk/apk-builder-backend/internal/gradle"
)

// Scheduler periodically refreshes the cached build-environment probe so
// /health reflects SDK or toolchain changes without a restart.
type Scheduler struct {
	prober *gradle.Prober
	cron   *cron.Cron
}

func NewScheduler(prober *gradle.Prober) *Scheduler {
	return &Scheduler{prober: prober}
}

// Start schedules the probe refresh every five minutes.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 */5 * * * *", func() {
		st := s.prober.Refresh()
		log.Printf("[probe] toolchain refresh: java=%v gradle=%v sdk=%v", st.Java, st.Gradle, st.SDK)
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (toolchain probe every 5 minutes)")
	s.cron = c
	c.Start()
}

// Stop halts the scheduler. Safe to call when Start failed.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}
