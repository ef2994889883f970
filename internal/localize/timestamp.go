package localize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

type Unit int

const (
	Milliseconds Unit = iota
	Seconds
	// Auto treats epoch values below autoSecondsLimit as seconds, and the rest as milliseconds.
	Auto
)

// 1e11 seconds is far in the future (year 5138), while 1e11 milliseconds is early 1973.
const autoSecondsLimit = 100_000_000_000

const (
	minYear = 1
	maxYear = 9999
)

func (u Unit) String() string {
	switch u {
	case Milliseconds:
		return "ms"
	case Seconds:
		return "s"
	case Auto:
		return "auto"
	default:
		return "Unit(" + strconv.Itoa(int(u)) + ")"
	}
}

func UnitFromString(s string) (Unit, error) {
	switch s {
	case "", "ms":
		return Milliseconds, nil
	case "s":
		return Seconds, nil
	case "auto":
		return Auto, nil
	default:
		return 0, fmt.Errorf("unknown timestamp unit %q", s)
	}
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(b []byte) error {
	v, err := UnitFromString(string(b))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Timestamp is an instant that is always kept in UTC.
type Timestamp time.Time

func FromTime(t time.Time) Timestamp {
	return Timestamp(t.UTC())
}

func FromEpoch(v int64, unit Unit) (Timestamp, error) {
	switch unit {
	case Milliseconds:
		return checkRange(time.UnixMilli(v))
	case Seconds:
		return checkRange(time.Unix(v, 0))
	case Auto:
		if v > -autoSecondsLimit && v < autoSecondsLimit {
			return FromEpoch(v, Seconds)
		}
		return FromEpoch(v, Milliseconds)
	default:
		return Timestamp{}, fmt.Errorf("bad unit %v", unit)
	}
}

func checkRange(t time.Time) (Timestamp, error) {
	if y := t.UTC().Year(); y < minYear || y > maxYear {
		return Timestamp{}, fmt.Errorf("%w: year %v out of range", ErrInvalidTimestamp, y)
	}
	return FromTime(t), nil
}

// ParseTimestamp accepts either an integer epoch value in the given unit or an RFC 3339 string.
func ParseTimestamp(raw string, unit Unit) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return FromEpoch(v, unit)
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, raw)
	}
	return checkRange(t)
}

func (t Timestamp) UTC() time.Time {
	return time.Time(t).UTC()
}

func (t Timestamp) In(loc *time.Location) time.Time {
	return time.Time(t).In(loc)
}

func (t Timestamp) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t Timestamp) Compare(u Timestamp) int {
	return time.Time(t).Compare(time.Time(u))
}

func (t Timestamp) String() string {
	return t.UTC().Format(time.RFC3339Nano)
}
