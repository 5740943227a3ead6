package config

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/dusklight/dusk/pkg/gamma"
	"github.com/dusklight/dusk/pkg/utils/ptr"
)

// Defaults match the original fixed schedule: full red all day, green and
// blue dimmed at night, transition between 17:00 and 21:00.
var defaultFileConfig = &RawFileConfig{
	MinRed:   ptr.To(1.0),
	MaxRed:   ptr.To(1.0),
	MinGreen: ptr.To(0.8),
	MaxGreen: ptr.To(1.0),
	MinBlue:  ptr.To(0.6),
	MaxBlue:  ptr.To(1.0),

	DayStart:   ptr.To("05:00"),
	DuskStart:  ptr.To("17:00"),
	NightStart: ptr.To("21:00"),

	IntervalSeconds: ptr.To(60),

	SolarEnabled:     ptr.To(false),
	Latitude:         ptr.To(0.0),
	Longitude:        ptr.To(0.0),
	SolarRefreshCron: ptr.To("@midnight"),

	AllowNonRootAccess: ptr.To(false),
}

var _ Config = &File{}

// File is a Config backed by a JSON file. Fields absent from the file
// fall back to the defaults, so an empty or missing file is a fully
// usable configuration.
type File struct {
	c        *RawFileConfig
	mu       *sync.RWMutex
	filepath string
}

func NewFile(configPath string) (*File, error) {
	f := &File{
		filepath: configPath,
		mu:       &sync.RWMutex{},
	}
	if err := f.Load(); err != nil {
		return nil, err
	}
	return f, nil
}

func NewFileFromConfig(c *RawFileConfig, configPath string) *File {
	if c == nil {
		c = defaultFileConfig
	}
	return &File{
		c:        c,
		mu:       &sync.RWMutex{},
		filepath: configPath,
	}
}

// RawFileConfig is the JSON document stored on disk. Pointer fields
// distinguish "unset" from zero values.
type RawFileConfig struct {
	MinRed   *float64 `json:"minRed,omitempty"`
	MaxRed   *float64 `json:"maxRed,omitempty"`
	MinGreen *float64 `json:"minGreen,omitempty"`
	MaxGreen *float64 `json:"maxGreen,omitempty"`
	MinBlue  *float64 `json:"minBlue,omitempty"`
	MaxBlue  *float64 `json:"maxBlue,omitempty"`

	DayStart   *string `json:"dayStart,omitempty"`
	DuskStart  *string `json:"duskStart,omitempty"`
	NightStart *string `json:"nightStart,omitempty"`

	IntervalSeconds *int `json:"intervalSeconds,omitempty"`

	Outputs *[]string `json:"outputs,omitempty"`

	SolarEnabled     *bool    `json:"solarEnabled,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	SolarRefreshCron *string  `json:"solarRefreshCron,omitempty"`

	AllowNonRootAccess *bool `json:"allowNonRootAccess,omitempty"`
}

func NewRawFileConfigFromConfig(c Config) (*RawFileConfig, error) {
	if c == nil {
		return nil, pkgerrors.New("config is nil")
	}

	minRed, maxRed := c.ChannelBounds(gamma.Red)
	minGreen, maxGreen := c.ChannelBounds(gamma.Green)
	minBlue, maxBlue := c.ChannelBounds(gamma.Blue)
	lat, lon := c.Location()

	return &RawFileConfig{
		MinRed:             ptr.To(minRed),
		MaxRed:             ptr.To(maxRed),
		MinGreen:           ptr.To(minGreen),
		MaxGreen:           ptr.To(maxGreen),
		MinBlue:            ptr.To(minBlue),
		MaxBlue:            ptr.To(maxBlue),
		DayStart:           ptr.To(c.DayStart()),
		DuskStart:          ptr.To(c.DuskStart()),
		NightStart:         ptr.To(c.NightStart()),
		IntervalSeconds:    ptr.To(int(c.Interval() / time.Second)),
		Outputs:            ptr.To(c.Outputs()),
		SolarEnabled:       ptr.To(c.SolarEnabled()),
		Latitude:           ptr.To(lat),
		Longitude:          ptr.To(lon),
		SolarRefreshCron:   ptr.To(c.SolarRefreshCron()),
		AllowNonRootAccess: ptr.To(c.AllowNonRootAccess()),
	}, nil
}

func (f *File) ChannelBounds(channel int) (min, max float64) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	switch channel {
	case gamma.Red:
		return ptr.Deref(f.c.MinRed, *defaultFileConfig.MinRed),
			ptr.Deref(f.c.MaxRed, *defaultFileConfig.MaxRed)
	case gamma.Green:
		return ptr.Deref(f.c.MinGreen, *defaultFileConfig.MinGreen),
			ptr.Deref(f.c.MaxGreen, *defaultFileConfig.MaxGreen)
	default:
		return ptr.Deref(f.c.MinBlue, *defaultFileConfig.MinBlue),
			ptr.Deref(f.c.MaxBlue, *defaultFileConfig.MaxBlue)
	}
}

func (f *File) DayStart() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.DayStart, *defaultFileConfig.DayStart)
}

func (f *File) DuskStart() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.DuskStart, *defaultFileConfig.DuskStart)
}

func (f *File) NightStart() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.NightStart, *defaultFileConfig.NightStart)
}

func (f *File) Interval() time.Duration {
	f.mu.RLock()
	defer f.mu.RUnlock()
	seconds := ptr.Deref(f.c.IntervalSeconds, *defaultFileConfig.IntervalSeconds)
	if seconds < 1 {
		seconds = 1
	}
	return time.Duration(seconds) * time.Second
}

func (f *File) Outputs() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.c.Outputs == nil {
		return nil
	}
	return append([]string(nil), (*f.c.Outputs)...)
}

func (f *File) SolarEnabled() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.SolarEnabled, *defaultFileConfig.SolarEnabled)
}

func (f *File) Location() (lat, lon float64) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.Latitude, *defaultFileConfig.Latitude),
		ptr.Deref(f.c.Longitude, *defaultFileConfig.Longitude)
}

func (f *File) SolarRefreshCron() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.SolarRefreshCron, *defaultFileConfig.SolarRefreshCron)
}

func (f *File) AllowNonRootAccess() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return ptr.Deref(f.c.AllowNonRootAccess, *defaultFileConfig.AllowNonRootAccess)
}

func (f *File) SetChannelBounds(channel int, min, max float64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch channel {
	case gamma.Red:
		f.c.MinRed, f.c.MaxRed = &min, &max
	case gamma.Green:
		f.c.MinGreen, f.c.MaxGreen = &min, &max
	default:
		f.c.MinBlue, f.c.MaxBlue = &min, &max
	}
}

func (f *File) SetSchedule(dayStart, duskStart, nightStart string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.DayStart = &dayStart
	f.c.DuskStart = &duskStart
	f.c.NightStart = &nightStart
}

func (f *File) SetInterval(seconds int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.IntervalSeconds = &seconds
}

func (f *File) SetOutputs(outputs []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if outputs == nil {
		f.c.Outputs = nil
		return
	}
	f.c.Outputs = ptr.To(append([]string(nil), outputs...))
}

func (f *File) SetSolarEnabled(enabled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.SolarEnabled = &enabled
}

func (f *File) SetLocation(lat, lon float64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.Latitude = &lat
	f.c.Longitude = &lon
}

func (f *File) SetAllowNonRootAccess(allow bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.c.AllowNonRootAccess = &allow
}

func (f *File) Load() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	fp, err := os.Open(f.filepath)
	if err != nil {
		if os.IsNotExist(err) {
			// A missing file is the default config, not an error.
			f.c = &RawFileConfig{}
			return nil
		}
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	b, err := io.ReadAll(fp)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to read file %s", f.filepath)
	}

	if strings.TrimSpace(string(b)) == "" {
		f.c = &RawFileConfig{}
		return nil
	}

	conf := RawFileConfig{}
	if err := json.Unmarshal(b, &conf); err != nil {
		return pkgerrors.Wrapf(err, "failed to unmarshal config from file %s", f.filepath)
	}
	f.c = &conf

	return nil
}

func (f *File) Save() error {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.c == nil {
		return pkgerrors.New("config is nil")
	}

	// First save on a fresh machine also creates the config directory.
	if err := os.MkdirAll(filepath.Dir(f.filepath), 0755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create config directory for %s", f.filepath)
	}

	fp, err := os.OpenFile(f.filepath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to open file %s", f.filepath)
	}
	defer func(fp *os.File) {
		if err := fp.Close(); err != nil {
			logrus.Warnf("failed to close file %s", f.filepath)
		}
	}(fp)

	enc := json.NewEncoder(fp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f.c); err != nil {
		return pkgerrors.Wrapf(err, "failed to encode config to file %s", f.filepath)
	}

	return nil
}

func (f *File) LogrusFields() logrus.Fields {
	minRed, maxRed := f.ChannelBounds(gamma.Red)
	minGreen, maxGreen := f.ChannelBounds(gamma.Green)
	minBlue, maxBlue := f.ChannelBounds(gamma.Blue)
	lat, lon := f.Location()

	return logrus.Fields{
		"red":          [2]float64{minRed, maxRed},
		"green":        [2]float64{minGreen, maxGreen},
		"blue":         [2]float64{minBlue, maxBlue},
		"dayStart":     f.DayStart(),
		"duskStart":    f.DuskStart(),
		"nightStart":   f.NightStart(),
		"interval":     f.Interval().String(),
		"outputs":      f.Outputs(),
		"solarEnabled": f.SolarEnabled(),
		"latitude":     lat,
		"longitude":    lon,
	}
}
