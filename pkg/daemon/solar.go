package daemon

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/dusklight/dusk/pkg/gamma"
	"github.com/dusklight/dusk/pkg/solar"
)

var (
	solarMu    sync.RWMutex
	solarSched gamma.Schedule
	solarOK    bool
)

// solarSchedule returns the sun-derived schedule if solar mode is on and
// today's boundaries could be computed.
func solarSchedule() (gamma.Schedule, bool) {
	if !conf.SolarEnabled() {
		return gamma.Schedule{}, false
	}
	solarMu.RLock()
	defer solarMu.RUnlock()
	return solarSched, solarOK
}

// refreshSolar recomputes today's sun-derived schedule. Called on
// startup, on the refresh cron, and whenever the solar config changes.
func refreshSolar() {
	if !conf.SolarEnabled() {
		solarMu.Lock()
		solarOK = false
		solarMu.Unlock()
		return
	}

	lat, lon := conf.Location()
	schedule, ok := solar.Schedule(solar.Location{Latitude: lat, Longitude: lon}, time.Now())

	solarMu.Lock()
	solarSched = schedule
	solarOK = ok
	solarMu.Unlock()

	if !ok {
		logrus.WithFields(logrus.Fields{
			"latitude":  lat,
			"longitude": lon,
		}).Warn("no usable sun crossings today, falling back to the fixed schedule")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dayStart":   gamma.FormatClock(schedule.DayStart()),
		"duskStart":  gamma.FormatClock(schedule.DuskStart()),
		"nightStart": gamma.FormatClock(schedule.NightStart()),
	}).Info("solar schedule refreshed")
}

// solarRefreshLoop recomputes the solar schedule on the configured cron
// expression (sun times drift day to day) until stopCh closes.
func solarRefreshLoop(stopCh <-chan struct{}) {
	refreshSolar()

	for {
		schedule, err := cron.ParseStandard(conf.SolarRefreshCron())
		if err != nil {
			logrus.Errorf("invalid solar refresh cron %q: %v", conf.SolarRefreshCron(), err)
			schedule, _ = cron.ParseStandard("@midnight")
		}

		next := schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))
		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-timer.C:
			refreshSolar()
			requestApply()
		}
	}
}
