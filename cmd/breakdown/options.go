package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/alex65536/breakdown/internal/breakdown"
	"github.com/alex65536/breakdown/internal/localize"
	"github.com/alex65536/breakdown/internal/tzpref"
)

type Options struct {
	Timezone   string            `toml:"timezone"`
	CookieName string            `toml:"cookie-name"`
	Page       breakdown.Options `toml:"page"`
}

func (o Options) Clone() Options {
	o.Page = o.Page.Clone()
	return o
}

func (o *Options) FillDefaults() {
	if o.CookieName == "" {
		o.CookieName = tzpref.DefaultCookie
	}
	o.Page.FillDefaults()
}

func (o *Options) Validate() error {
	if o.Timezone != "" {
		if err := localize.ValidateZone(o.Timezone); err != nil {
			return fmt.Errorf("timezone: %w", err)
		}
	}
	return nil
}

// loadOptions reads the options file. A missing file is not an error if the path was not given
// explicitly.
func loadOptions(path string, explicit bool) (Options, error) {
	var opts Options
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("unmarshal options: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Options{}, fmt.Errorf("read options: %w", err)
	}
	opts.FillDefaults()
	if err := opts.Validate(); err != nil {
		return Options{}, fmt.Errorf("bad options: %w", err)
	}
	return opts, nil
}
