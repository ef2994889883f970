package localize

import (
	"time"
)

type Options struct {
	DateLayout string `toml:"date-layout"`
	TimeLayout string `toml:"time-layout"`
	Unit       Unit   `toml:"unit"`
}

func (o Options) Clone() Options {
	return o
}

func (o *Options) FillDefaults() {
	if o.DateLayout == "" {
		o.DateLayout = time.DateOnly
	}
	if o.TimeLayout == "" {
		o.TimeLayout = time.TimeOnly
	}
}

type Localizer struct {
	o   Options
	env func() *time.Location
}

func New(o Options) *Localizer {
	return NewWithEnv(o, EnvironmentZone)
}

// NewWithEnv is like New, but takes the function that resolves the Default selection. The
// function is invoked on every render.
func NewWithEnv(o Options, env func() *time.Location) *Localizer {
	o = o.Clone()
	o.FillDefaults()
	return &Localizer{o: o, env: env}
}

func (l *Localizer) Options() Options {
	return l.o.Clone()
}

// Resolve returns the location for sel. An unknown zone name resolves to the environment zone,
// and the returned error wraps ErrUnresolvableTimezone so that the caller may report it.
func (l *Localizer) Resolve(sel Selection) (*time.Location, error) {
	if sel.IsDefault() {
		return l.env(), nil
	}
	loc, err := loadZone(sel.Name())
	if err != nil {
		return l.env(), err
	}
	return loc, nil
}

func (l *Localizer) in(ts Timestamp, sel Selection) time.Time {
	loc, _ := l.Resolve(sel)
	return ts.In(loc)
}

func (l *Localizer) RenderDate(ts Timestamp, sel Selection) string {
	return l.in(ts, sel).Format(l.o.DateLayout)
}

func (l *Localizer) RenderTime(ts Timestamp, sel Selection) string {
	return l.in(ts, sel).Format(l.o.TimeLayout)
}

func (l *Localizer) Parse(raw string) (Timestamp, error) {
	return ParseTimestamp(raw, l.o.Unit)
}

func (l *Localizer) RenderDateRaw(raw string, sel Selection) (string, error) {
	ts, err := l.Parse(raw)
	if err != nil {
		return "", err
	}
	return l.RenderDate(ts, sel), nil
}

func (l *Localizer) RenderTimeRaw(raw string, sel Selection) (string, error) {
	ts, err := l.Parse(raw)
	if err != nil {
		return "", err
	}
	return l.RenderTime(ts, sel), nil
}
