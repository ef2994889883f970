package localize

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	// Viewers pick arbitrary IANA zones; don't depend on the host zoneinfo.
	_ "time/tzdata"
)

var ErrUnresolvableTimezone = errors.New("unresolvable timezone")

// Selection is either an explicit IANA zone name or the Default sentinel, which means "use the
// environment's zone".
type Selection struct {
	name string
}

var Default = Selection{}

func Zone(name string) Selection {
	return Selection{name: strings.TrimSpace(name)}
}

func (s Selection) IsDefault() bool { return s.name == "" }
func (s Selection) Name() string    { return s.name }

func (s Selection) String() string {
	if s.IsDefault() {
		return "default"
	}
	return s.name
}

// EnvironmentZone looks up the TZ variable each time it is called, so a change of TZ in the
// middle of the process lifetime is picked up. Empty TZ means UTC. Without TZ, time.Local is used.
func EnvironmentZone() *time.Location {
	tz, ok := os.LookupEnv("TZ")
	if !ok {
		return time.Local
	}
	if tz == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Local
	}
	return loc
}

func loadZone(name string) (*time.Location, error) {
	// time.LoadLocation treats "" as UTC and "Local" as time.Local; neither is a viewer choice.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvableTimezone, name)
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnresolvableTimezone, err)
	}
	return loc, nil
}

// ValidateZone reports whether name is a zone that a Selection can resolve to.
func ValidateZone(name string) error {
	_, err := loadZone(name)
	return err
}
