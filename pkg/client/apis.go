package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/types"
)

func (c *Client) GetConfig() (*config.RawFileConfig, error) {
	ret, err := c.Get("/config")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get config")
	}

	var conf config.RawFileConfig
	if err := json.Unmarshal([]byte(ret), &conf); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal config")
	}

	return &conf, nil
}

func (c *Client) GetGamma() (*types.GammaStatus, error) {
	ret, err := c.Get("/gamma")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get current gamma")
	}

	var status types.GammaStatus
	if err := json.Unmarshal([]byte(ret), &status); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal gamma status")
	}

	return &status, nil
}

func (c *Client) SetSchedule(dayStart, duskStart, nightStart string) (string, error) {
	payload, err := json.Marshal(types.SchedulePayload{
		DayStart:   dayStart,
		DuskStart:  duskStart,
		NightStart: nightStart,
	})
	if err != nil {
		return "", err
	}
	return c.Put("/schedule", string(payload))
}

func (c *Client) SetChannelBounds(channel string, min, max float64) (string, error) {
	payload, err := json.Marshal(types.ChannelPayload{Min: min, Max: max})
	if err != nil {
		return "", err
	}
	return c.Put("/channel/"+channel, string(payload))
}

func (c *Client) SetInterval(seconds int) (string, error) {
	return c.Put("/interval", strconv.Itoa(seconds))
}

func (c *Client) SetOutputs(outputs []string) (string, error) {
	payload, err := json.Marshal(outputs)
	if err != nil {
		return "", err
	}
	return c.Put("/outputs", string(payload))
}

func (c *Client) SetSolar(enabled bool, lat, lon float64) (string, error) {
	payload, err := json.Marshal(types.SolarPayload{
		Enabled:   enabled,
		Latitude:  lat,
		Longitude: lon,
	})
	if err != nil {
		return "", err
	}
	return c.Put("/solar", string(payload))
}

// Apply asks the daemon for an immediate apply, outside the regular
// interval.
func (c *Client) Apply() (string, error) {
	return c.Send(http.MethodPost, "/apply", "")
}

func (c *Client) GetOutputs() ([]string, error) {
	ret, err := c.Get("/outputs")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to list outputs")
	}

	var outputs []string
	if err := json.Unmarshal([]byte(ret), &outputs); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal outputs")
	}
	return outputs, nil
}

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}
	var version string
	if err := json.Unmarshal([]byte(ret), &version); err != nil {
		return "", fmt.Errorf("failed to unmarshal version: %w", err)
	}
	return version, nil
}
