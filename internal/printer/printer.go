package printer

import (
	sysfmt "fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	Green      = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan       = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow     = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red        = color.New(color.FgRed, color.Bold).SprintFunc()
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
		Red,
	}
)

// Output is where Print writes, colorable stdout by default
var Output io.Writer = color.Output

// Printer print format with colored arguments, a trailing newline is always added
type Printer func(format string, args ...interface{})

// PrependTime prefix every line with wall clock
func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p("%s "+format, append([]interface{}{timeStr(time.Now())}, args...)...)
	}
}

// PrependGoroutine prefix every line with current goroutine id
func (p Printer) PrependGoroutine() Printer {
	return func(format string, args ...interface{}) {
		p("[g%s] "+format, append([]interface{}{GoroutineID()}, args...)...)
	}
}

var (
	// Print with color
	Print = Printer(rawPrint)
	// PrintWithTime print with time
	PrintWithTime = Printer(rawPrint).PrependTime()
	// Trace print with time and goroutine, used by debug tracing
	Trace = Printer(rawPrint).PrependGoroutine().PrependTime()
)

func rawPrint(format string, args ...interface{}) {
	if len(args) == 0 {
		sysfmt.Fprintln(Output, format)
		return
	}
	sysfmt.Fprintf(Output, rewriteFormat(format, nil), colorArgs(rewriteArgsToString(format, args))...)
}

func rewriteArgsToString(format string, args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	copy(out, args)
	rewriteFormat(format, func(idx int, token string) {
		if idx >= len(out) {
			return
		}
		out[idx] = sysfmt.Sprintf(token, out[idx])
	})
	return out
}

// rewriteFormat turn every verb into %s so colored strings can be substituted,
// cb receives the original verb of each argument
func rewriteFormat(format string, cb func(int, string)) string {
	if cb == nil {
		cb = func(int, string) {}
	}
	var idx int
	var out []rune
	runes := []rune(format)
	for i := 0; i < len(runes); {
		/* skip double % */
		if runes[i] == '%' && i < len(runes)-1 && runes[i+1] == '%' {
			out = append(out, runes[i], runes[i+1])
			i += 2
			continue
		}
		if runes[i] == '%' {
			j := i + 1
			for ; j < len(runes); j++ {
				if (runes[j] >= 'A' && runes[j] <= 'Z') || (runes[j] >= 'a' && runes[j] <= 'z') {
					break
				}
			}
			if j >= len(runes) {
				j = len(runes) - 1
			}
			cb(idx, string(runes[i:j+1]))
			idx++
			out = append(out, '%', 's')
			i = j + 1
			continue
		}
		out = append(out, runes[i])
		i++
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return string(out)
}

func colorArgs(args []interface{}) []interface{} {
	ret := make([]interface{}, len(args))
	for i, v := range args {
		ret[i] = colorFuncs[i%len(colorFuncs)](v)
	}
	return ret
}

func timeStr(tm time.Time) string {
	return tm.Format("15:04:05.000")
}

// GoroutineID should only be used for debug output
func GoroutineID() string {
	buf := make([]byte, 64)
	buf = buf[:runtime.Stack(buf, false)]
	// goroutine 12 [running]:
	s := strings.TrimPrefix(string(buf), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		return s[:i]
	}
	return "?"
}
