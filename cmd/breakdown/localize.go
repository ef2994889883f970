package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/alex65536/breakdown/internal/localize"
	"github.com/alex65536/breakdown/internal/tzpref"
	"github.com/alex65536/breakdown/internal/util/slogx"
	"github.com/alex65536/breakdown/internal/util/style"
)

var localizeCmd = &cobra.Command{
	Use:   "localize timestamp",
	Args:  cobra.ExactArgs(1),
	Short: "Print the date and time of a UTC timestamp in the viewer timezone",
}

func init() {
	p := localizeCmd.Flags()
	tz := p.String("tz", "", "viewer timezone, e.g. America/Los_Angeles")
	cookie := p.String("cookie", "", "viewer Cookie header to read the timezone preference from")

	localizeCmd.RunE = func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		opts, err := options()
		if err != nil {
			return err
		}

		flagZone := *tz
		if flagZone == "" {
			flagZone = opts.Timezone
		}
		sel, src := tzpref.Choose(tzpref.Candidates{
			Flag:       flagZone,
			Cookie:     *cookie,
			CookieName: opts.CookieName,
		})

		l := localize.New(opts.Page.Localize)
		loc, err := l.Resolve(sel)
		if err != nil {
			log.Warn("falling back to environment timezone", slog.String("zone", sel.String()), slogx.Err(err))
		}
		ts, err := l.Parse(args[0])
		if err != nil {
			return fmt.Errorf("bad timestamp: %w", err)
		}

		s := style.ForStdout()
		w := cmd.OutOrStdout()
		if s.Enabled {
			w = style.Stdout()
		}
		_, err = fmt.Fprintf(w, "%v %v %v\n",
			l.RenderDate(ts, sel),
			l.RenderTime(ts, sel),
			s.Wrap(fmt.Sprintf("(%v, %v)", loc, src), style.Dim),
		)
		return err
	}
}
