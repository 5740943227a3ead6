package daemon

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/events"
	"github.com/dusklight/dusk/pkg/gamma"
	"github.com/dusklight/dusk/pkg/types"
	"github.com/dusklight/dusk/pkg/version"
)

func getConfig(c *gin.Context) {
	fc, err := config.NewRawFileConfigFromConfig(conf)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, fc)
}

func getGamma(c *gin.Context) {
	engine, solarActive, err := currentEngine()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}

	fraction := gamma.TimeOfDay(time.Now())
	phase := engine.Schedule().Phase(fraction)
	vector := engine.Evaluate(fraction)

	c.IndentedJSON(http.StatusOK, types.GammaStatus{
		Red:         vector.Red(),
		Green:       vector.Green(),
		Blue:        vector.Blue(),
		Phase:       phase.Kind.String(),
		Progress:    phase.Progress,
		Time:        fraction,
		Backend:     backend.Name(),
		Formatted:   backend.FormatGamma(vector),
		SolarActive: solarActive,
	})
}

func setSchedule(c *gin.Context) {
	var p types.SchedulePayload
	if err := c.BindJSON(&p); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	// Validate before touching the config: each boundary must parse and
	// the triple must follow the cycle order.
	day, err := gamma.ParseClock(p.DayStart)
	if err == nil {
		var dusk, night float64
		if dusk, err = gamma.ParseClock(p.DuskStart); err == nil {
			if night, err = gamma.ParseClock(p.NightStart); err == nil {
				_, err = gamma.NewSchedule(day, dusk, night)
			}
		}
	}
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetSchedule(p.DayStart, p.DuskStart, p.NightStart)
	if err := saveConfig(c, "schedule"); err != nil {
		return
	}

	logrus.Infof("set schedule to day=%s dusk=%s night=%s", p.DayStart, p.DuskStart, p.NightStart)
	requestApply()
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf(
		"schedule set: day starts %s, dusk %s, night %s", p.DayStart, p.DuskStart, p.NightStart))
}

func setChannel(c *gin.Context) {
	name := c.Param("channel")
	channel := -1
	for i, n := range gamma.ChannelNames {
		if n == name {
			channel = i
		}
	}
	if channel < 0 {
		err := fmt.Errorf("unknown channel %q, expected red, green or blue", name)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	var p types.ChannelPayload
	if err := c.BindJSON(&p); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if _, err := gamma.NewChannelBounds(p.Min, p.Max); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}
	if p.Min < 0 || p.Max > 1 {
		err := fmt.Errorf("channel bounds must lie in [0,1], got min=%v max=%v", p.Min, p.Max)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetChannelBounds(channel, p.Min, p.Max)
	if err := saveConfig(c, "channel."+name); err != nil {
		return
	}

	logrus.Infof("set %s channel bounds to [%v, %v]", name, p.Min, p.Max)
	requestApply()
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("%s channel set to [%v, %v]", name, p.Min, p.Max))
}

func setInterval(c *gin.Context) {
	var seconds int
	if err := c.BindJSON(&seconds); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if seconds < 1 || seconds > 3600 {
		err := fmt.Errorf("interval must be between 1 and 3600 seconds, got %d", seconds)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetInterval(seconds)
	if err := saveConfig(c, "interval"); err != nil {
		return
	}

	logrus.Infof("set apply interval to %ds", seconds)
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("apply interval set to %ds", seconds))
}

func setOutputs(c *gin.Context) {
	var outputs []string
	if err := c.BindJSON(&outputs); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetOutputs(outputs)
	if err := saveConfig(c, "outputs"); err != nil {
		return
	}

	logrus.Infof("set outputs to %v", outputs)
	requestApply()
	if len(outputs) == 0 {
		c.IndentedJSON(http.StatusCreated, "outputs cleared, applying to all connected outputs")
		return
	}
	c.IndentedJSON(http.StatusCreated, fmt.Sprintf("applying to outputs %v", outputs))
}

func setSolar(c *gin.Context) {
	var p types.SolarPayload
	if err := c.BindJSON(&p); err != nil {
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
		err := fmt.Errorf("invalid coordinates lat=%v lon=%v", p.Latitude, p.Longitude)
		c.IndentedJSON(http.StatusBadRequest, err.Error())
		_ = c.AbortWithError(http.StatusBadRequest, err)
		return
	}

	conf.SetSolarEnabled(p.Enabled)
	if p.Enabled {
		conf.SetLocation(p.Latitude, p.Longitude)
	}
	if err := saveConfig(c, "solar"); err != nil {
		return
	}

	refreshSolar()
	requestApply()

	if p.Enabled {
		logrus.Infof("solar schedule enabled at lat=%v lon=%v", p.Latitude, p.Longitude)
		c.IndentedJSON(http.StatusCreated, fmt.Sprintf(
			"solar schedule enabled for lat=%v lon=%v", p.Latitude, p.Longitude))
		return
	}
	logrus.Info("solar schedule disabled")
	c.IndentedJSON(http.StatusCreated, "solar schedule disabled, using fixed clock times")
}

func postApply(c *gin.Context) {
	if !applyOnce(true) {
		err := fmt.Errorf("apply failed, see daemon logs")
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, "gamma applied")
}

func getOutputs(c *gin.Context) {
	outputs, err := backend.Outputs()
	if err != nil {
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return
	}
	c.IndentedJSON(http.StatusOK, outputs)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

// getEvents streams hub events to the client as SSE until it
// disconnects.
func getEvents(c *gin.Context) {
	ch := hub.Subscribe()
	defer hub.Unsubscribe(ch)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")

	c.Stream(func(_ io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, string(ev.Data))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// saveConfig persists the config and publishes the change; on failure it
// aborts the request. Callers must return immediately on error.
func saveConfig(c *gin.Context, field string) error {
	if err := conf.Save(); err != nil {
		logrus.Errorf("saveConfig failed: %v", err)
		c.IndentedJSON(http.StatusInternalServerError, err.Error())
		_ = c.AbortWithError(http.StatusInternalServerError, err)
		return err
	}
	hub.Publish(events.ConfigChanged, events.ConfigChangedEvent{
		Field: field,
		Ts:    time.Now().Unix(),
	})
	return nil
}
