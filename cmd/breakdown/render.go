package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alex65536/breakdown/internal/breakdown"
	"github.com/alex65536/breakdown/internal/surface/htmldoc"
	"github.com/alex65536/breakdown/internal/tzpref"
	"github.com/alex65536/breakdown/internal/util/slogx"
)

var renderCmd = &cobra.Command{
	Use:   "render [page.html]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Render a breakdown page for a viewer",
	Long: `Reads a breakdown page from the given file (or stdin), applies everything the
page does on load and writes the result. Tabs can be switched with --tab, in
the order given.
`,
}

func init() {
	p := renderCmd.Flags()
	out := p.StringP("out", "O", "", "output file (stdout if empty)")
	tz := p.String("tz", "", "viewer timezone, e.g. America/Los_Angeles")
	cookie := p.String("cookie", "", "viewer Cookie header to read the timezone preference from")
	tabs := p.IntSlice("tab", nil, "indices of funnel tabs to switch to, in order")

	renderCmd.RunE = func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		opts, err := options()
		if err != nil {
			return err
		}

		var in io.Reader = os.Stdin
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			in = f
		}
		doc, err := htmldoc.Parse(bufio.NewReader(in))
		if err != nil {
			return fmt.Errorf("read page: %w", err)
		}

		flagZone := *tz
		if flagZone == "" {
			flagZone = opts.Timezone
		}
		sel, src := tzpref.Choose(tzpref.Candidates{
			Flag:       flagZone,
			Cookie:     *cookie,
			CookieName: opts.CookieName,
			Page:       doc,
		})
		log.Debug("viewer timezone", slog.String("zone", sel.String()), slog.String("source", src.String()))

		page := breakdown.New(log, opts.Page)
		st := page.Ready(doc, sel)
		for _, idx := range *tabs {
			if err := page.SwitchTab(doc, idx); err != nil {
				return fmt.Errorf("switch tab: %w", err)
			}
		}
		if st.Failed() != 0 {
			log.Warn("some cells were left as is", slog.Int("failed", st.Failed()))
		}

		if *out == "" {
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err := doc.Render(w); err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			if err := w.Flush(); err != nil {
				return fmt.Errorf("write page: %w", err)
			}
			return nil
		}
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		w := bufio.NewWriter(f)
		if err := doc.Render(w); err != nil {
			_ = f.Close()
			return fmt.Errorf("write page: %w", err)
		}
		if err := w.Flush(); err != nil {
			_ = f.Close()
			return fmt.Errorf("write page: %w", err)
		}
		if err := f.Close(); err != nil {
			log.Error("cannot close output", slogx.Err(err))
			return fmt.Errorf("close output: %w", err)
		}
		return nil
	}
}
