package daemon

import (
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/events"
	"github.com/dusklight/dusk/pkg/gamma"
)

var (
	applyLock     = &sync.Mutex{}
	applyRecorder = NewApplyRecorder(60)

	lastVector  gamma.Vector
	haveApplied bool

	// forceCh wakes the loop for an immediate apply, e.g. after a config
	// change through the API.
	forceCh = make(chan struct{}, 1)
)

// vectorEpsilon is the per-channel difference below which two gamma
// vectors count as the same and a reapplication is skipped.
const vectorEpsilon = 5e-4

// applyLoop reapplies the gamma at the configured interval until stopCh
// closes. The interval is re-read every cycle so API changes take effect
// without a restart.
func applyLoop(stopCh <-chan struct{}) {
	// First application right away: a freshly started daemon should tint
	// the screen immediately, not one interval later.
	applyOnce(true)

	for {
		timer := time.NewTimer(conf.Interval())
		select {
		case <-stopCh:
			timer.Stop()
			return
		case <-forceCh:
			timer.Stop()
			applyOnce(true)
		case <-timer.C:
			applyOnce(false)
		}
	}
}

// requestApply asks the loop for an immediate forced apply without
// blocking the caller.
func requestApply() {
	select {
	case forceCh <- struct{}{}:
	default:
	}
}

// applyOnce evaluates the engine at the current wall-clock time and
// applies the result. Unforced runs skip the backend call when the
// vector has not moved since the last apply, unless a suspicious gap in
// the apply record suggests the system was suspended (gamma tables are
// reset on resume).
func applyOnce(forced bool) bool {
	applyLock.Lock()
	defer applyLock.Unlock()

	engine, solarActive, err := currentEngine()
	if err != nil {
		logrus.Errorf("cannot build gamma engine from config: %v", err)
		return false
	}

	now := time.Now()
	fraction := gamma.TimeOfDay(now)
	phase := engine.Schedule().Phase(fraction)
	vector := engine.Evaluate(fraction)

	if applyRecorder.GapExceeds(2 * conf.Interval()) {
		logrus.WithFields(logrus.Fields{
			"lastApply": applyRecorder.LastRecord().Format(time.RFC3339),
		}).Info("long gap since last apply, possibly resumed from sleep; forcing reapplication")
		forced = true
	}

	if !forced && haveApplied && sameVector(vector, lastVector) {
		logrus.WithFields(logrus.Fields{
			"gamma": vector,
			"phase": phase.Kind.String(),
		}).Trace("gamma unchanged, skipping apply")
		applyRecorder.AddRecordNow()
		return true
	}

	outputs := conf.Outputs()
	if err := backend.Apply(vector, outputs); err != nil {
		logrus.Errorf("failed to apply gamma: %v", err)
		return false
	}

	applyRecorder.AddRecordNow()
	lastVector = vector
	haveApplied = true

	logrus.WithFields(logrus.Fields{
		"gamma":    backend.FormatGamma(vector),
		"phase":    phase.Kind.String(),
		"progress": phase.Progress,
		"solar":    solarActive,
	}).Debug("applied gamma")

	hub.Publish(events.GammaApplied, events.GammaAppliedEvent{
		Red:      vector.Red(),
		Green:    vector.Green(),
		Blue:     vector.Blue(),
		Phase:    phase.Kind.String(),
		Progress: phase.Progress,
		Outputs:  outputs,
		Forced:   forced,
		Ts:       now.Unix(),
	})

	return true
}

// currentEngine builds the engine from the live config, substituting the
// solar-derived schedule when solar mode is active.
func currentEngine() (engine gamma.Engine, solarActive bool, err error) {
	engine, err = config.Engine(conf)
	if err != nil {
		return gamma.Engine{}, false, err
	}

	if schedule, ok := solarSchedule(); ok {
		engine = gamma.NewEngine(schedule, engine.Channels())
		solarActive = true
	}
	return engine, solarActive, nil
}

func sameVector(a, b gamma.Vector) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > vectorEpsilon {
			return false
		}
	}
	return true
}

// resetGamma restores neutral gamma, used on shutdown so the screen is
// not left tinted by a dead daemon.
func resetGamma() error {
	return backend.Apply(gamma.Neutral(), conf.Outputs())
}
