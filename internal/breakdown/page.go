// Package breakdown implements the behaviors of the contributors breakdown page: heat-map cell
// coloring, timestamp localization, and switching between the funnel tabs.
package breakdown

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alex65536/breakdown/internal/heatmap"
	"github.com/alex65536/breakdown/internal/localize"
	"github.com/alex65536/breakdown/internal/surface"
	"github.com/alex65536/breakdown/internal/util/slogx"
)

var ErrNoSuchTab = errors.New("no such tab")

type Page struct {
	log *slog.Logger
	loc *localize.Localizer
	o   Options
}

func New(log *slog.Logger, o Options) *Page {
	o = o.Clone()
	o.FillDefaults()
	return &Page{
		log: log,
		loc: localize.New(o.Localize),
		o:   o,
	}
}

// NewWithLocalizer is like New, but uses loc instead of building a localizer from o.Localize.
func NewWithLocalizer(log *slog.Logger, loc *localize.Localizer, o Options) *Page {
	o = o.Clone()
	o.FillDefaults()
	o.Localize = loc.Options()
	return &Page{
		log: log,
		loc: loc,
		o:   o,
	}
}

type CellStats struct {
	Done   int
	Failed int
}

type Stats struct {
	HeatMap CellStats
	Dates   CellStats
	Times   CellStats
}

func (s Stats) Failed() int {
	return s.HeatMap.Failed + s.Dates.Failed + s.Times.Failed
}

// Ready runs everything the page does once it is loaded. Each cell is handled on its own: a cell
// that cannot be processed keeps its content, and the rest of the page is still rendered.
func (p *Page) Ready(doc surface.Document, sel localize.Selection) Stats {
	if _, err := p.loc.Resolve(sel); err != nil {
		p.log.Debug("falling back to environment timezone",
			slog.String("zone", sel.String()),
			slogx.Err(err),
		)
	}
	var st Stats
	st.HeatMap = p.eachCell(doc, ClassHeatMapCell, p.colorCell)
	st.Dates = p.eachCell(doc, ClassDate, func(el surface.Element) error {
		return p.localizeCell(el, sel, p.loc.RenderDate)
	})
	st.Times = p.eachCell(doc, ClassTime, func(el surface.Element) error {
		return p.localizeCell(el, sel, p.loc.RenderTime)
	})
	p.log.Debug("page ready",
		slog.String("zone", sel.String()),
		slog.Int("heat_map_cells", st.HeatMap.Done),
		slog.Int("dates", st.Dates.Done),
		slog.Int("times", st.Times.Done),
		slog.Int("failed", st.Failed()),
	)
	return st
}

func (p *Page) eachCell(doc surface.Document, class string, f func(el surface.Element) error) CellStats {
	var st CellStats
	for i, el := range doc.ByClass(class) {
		if err := f(el); err != nil {
			p.log.Warn("cannot process cell",
				slog.String("class", class),
				slog.Int("index", i),
				slogx.Err(err),
			)
			st.Failed++
			continue
		}
		st.Done++
	}
	return st
}

func (p *Page) colorCell(el surface.Element) error {
	raw, ok := el.Attr(p.o.ValueAttr)
	if !ok {
		return fmt.Errorf("%w: no %v attribute", heatmap.ErrBadValue, p.o.ValueAttr)
	}
	v, err := heatmap.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse value: %w", err)
	}
	style, err := heatmap.StyleFor(v)
	if err != nil {
		return fmt.Errorf("style: %w", err)
	}
	el.SetStyle("background-color", style.Background)
	el.SetStyle("color", style.Foreground)
	return nil
}

func (p *Page) localizeCell(
	el surface.Element,
	sel localize.Selection,
	render func(localize.Timestamp, localize.Selection) string,
) error {
	raw, ok := el.Attr(p.o.TimestampAttr)
	if !ok {
		return fmt.Errorf("%w: no %v attribute", localize.ErrInvalidTimestamp, p.o.TimestampAttr)
	}
	ts, err := p.loc.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse timestamp: %w", err)
	}
	el.SetText(render(ts, sel))
	return nil
}

// ClickTab applies a click on a funnel tab. Clicking the active tab does nothing. Otherwise, the
// details cells are shown or hidden, and the time cells that are not full dates span over the
// hidden columns. Two clicks on an inactive tab cancel each other.
func (p *Page) ClickTab(doc surface.Document, tab surface.Element) bool {
	if tab.HasClass(ClassActive) {
		return false
	}
	for _, el := range doc.ByClass(ClassDetailsCell) {
		el.ToggleClass(ClassHidden)
	}
	for _, el := range doc.ByClass(ClassTime) {
		if el.HasClass(ClassFullDate) {
			continue
		}
		if v, ok := el.Attr("colspan"); ok && strings.TrimSpace(v) == TimeColspan {
			el.RemoveAttr("colspan")
		} else {
			el.SetAttr("colspan", TimeColspan)
		}
	}
	return true
}

func Tabs(doc surface.Document) []surface.Element {
	var tabs []surface.Element
	for _, list := range doc.ByClass(ClassFunnelTabs) {
		tabs = append(tabs, list.Find("li")...)
	}
	return tabs
}

// SwitchTab clicks the tab with the given index and makes it active, the way the tab widget does
// in the browser.
func (p *Page) SwitchTab(doc surface.Document, index int) error {
	tabs := Tabs(doc)
	if index < 0 || index >= len(tabs) {
		return fmt.Errorf("%w: index %v, have %v tabs", ErrNoSuchTab, index, len(tabs))
	}
	tab := tabs[index]
	if !p.ClickTab(doc, tab) {
		p.log.Debug("tab already active", slog.Int("index", index))
		return nil
	}
	for _, t := range tabs {
		t.RemoveClass(ClassActive)
	}
	tab.AddClass(ClassActive)
	p.log.Debug("switched tab", slog.Int("index", index))
	return nil
}
