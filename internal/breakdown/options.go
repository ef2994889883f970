package breakdown

import (
	"github.com/alex65536/breakdown/internal/localize"
)

const (
	ClassHeatMapCell = "heat-map-cell"
	ClassDate        = "contributors-table-date"
	ClassTime        = "contributors-table-time"
	ClassFullDate    = "full-date"
	ClassDetailsCell = "details-cell"
	ClassFunnelTabs  = "funnel-tabs"
	ClassActive      = "uk-active"
	ClassHidden      = "hidden"

	TimeColspan = "3"
)

type Options struct {
	// TimestampAttr holds the raw UTC timestamp of date and time cells.
	TimestampAttr string `toml:"timestamp-attr"`
	// ValueAttr holds the signed ratio of heat-map cells.
	ValueAttr string           `toml:"value-attr"`
	Localize  localize.Options `toml:"localize"`
}

func (o Options) Clone() Options {
	o.Localize = o.Localize.Clone()
	return o
}

func (o *Options) FillDefaults() {
	if o.TimestampAttr == "" {
		o.TimestampAttr = "currentUTC"
	}
	if o.ValueAttr == "" {
		o.ValueAttr = "value"
	}
	o.Localize.FillDefaults()
}
