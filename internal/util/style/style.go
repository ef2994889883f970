package style

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	Reset  = 0
	Bold   = 1
	Dim    = 2
	Red    = 31
	Green  = 32
	Yellow = 33
	Cyan   = 36
)

var (
	// Respect https://no-color.org/.
	noColor = os.Getenv("NO_COLOR") != ""

	isTTY    = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	isErrTTY = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
)

func StdoutSupportsColor() bool { return isTTY && !noColor }
func StderrSupportsColor() bool { return isErrTTY && !noColor }

// Stdout and Stderr translate escape sequences on terminals that do not understand them.
func Stdout() io.Writer { return colorable.NewColorableStdout() }
func Stderr() io.Writer { return colorable.NewColorableStderr() }

func seq(ms []int) string {
	if len(ms) == 0 {
		return "\033[0m"
	}
	var b strings.Builder
	_, _ = b.WriteString("\033[")
	for i, m := range ms {
		if i != 0 {
			_ = b.WriteByte(';')
		}
		_, _ = b.WriteString(strconv.Itoa(m))
	}
	_ = b.WriteByte('m')
	return b.String()
}

// Styler wraps strings into escape sequences, or leaves them as is when colors are off.
type Styler struct {
	Enabled bool
}

func ForStdout() Styler { return Styler{Enabled: StdoutSupportsColor()} }

func (s Styler) Wrap(str string, ms ...int) string {
	if !s.Enabled || len(ms) == 0 {
		return str
	}
	return seq(ms) + str + seq(nil)
}
