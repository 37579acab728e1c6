package fmt

import (
	sysfmt "fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/qjpcpu/qjson"
)

var (
	Green      = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan       = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow     = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red        = color.New(color.FgRed, color.Bold).SprintFunc()
	Blue       = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
		Red,
		Blue,
	}
)

// Output is where every Printer writes, stderr by default
var Output io.Writer = os.Stderr

// Printer prints a format string with each argument painted in its own color
type Printer func(format string, args ...interface{})

// PrependTime prefix output with wall clock
func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(time.Now().Format("15:04:05")+" "+format, args...)
	}
}

// PrependFile prefix output with the first caller outside this module's printing helpers
func (p Printer) PrependFile() Printer {
	return func(format string, args ...interface{}) {
		file, line := callerOutside(skipPackages...)
		p("%s:%d "+format, append([]interface{}{file, line}, args...)...)
	}
}

var (
	// Print with color
	Print = Printer(rawPrint)
	// PrintWithFile print with caller file and line
	PrintWithFile = Printer(rawPrint).PrependFile()
	// PrintWithTime print with time
	PrintWithTime = Printer(rawPrint).PrependTime()
	// PrintJSON render maps, structs and slices as json
	PrintJSON = Printer(rawPrintJSON)
)

// Sprint format with colored arguments
func Sprint(format string, args ...interface{}) string {
	return sysfmt.Sprintf(format, paint(args, false)...)
}

// SprintJSON format with colored arguments, complex values become json
func SprintJSON(format string, args ...interface{}) string {
	return sysfmt.Sprintf(format, paint(args, true)...)
}

func rawPrint(format string, args ...interface{}) {
	writeLine(Sprint(format, args...))
}

func rawPrintJSON(format string, args ...interface{}) {
	writeLine(SprintJSON(format, args...))
}

func writeLine(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	io.WriteString(Output, s)
}

func paint(args []interface{}, complexToJSON bool) []interface{} {
	out := make([]interface{}, len(args))
	for i, v := range args {
		if complexToJSON && isComplexValue(v) {
			out[i] = string(qjson.PrettyMarshal(v))
			continue
		}
		out[i] = coloredArg{val: v, paint: colorFuncs[i%len(colorFuncs)]}
	}
	return out
}

// coloredArg formats its value with the caller's verb and flags, then paints the result
type coloredArg struct {
	val   interface{}
	paint func(a ...interface{}) string
}

func (c coloredArg) Format(f sysfmt.State, verb rune) {
	io.WriteString(f, c.paint(sysfmt.Sprintf(directive(f, verb), c.val)))
}

func directive(f sysfmt.State, verb rune) string {
	var b strings.Builder
	b.WriteByte('%')
	for _, flag := range "+-# 0" {
		if f.Flag(int(flag)) {
			b.WriteRune(flag)
		}
	}
	if w, ok := f.Width(); ok {
		b.WriteString(strconv.Itoa(w))
	}
	if p, ok := f.Precision(); ok {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteRune(verb)
	return b.String()
}

func isComplexValue(v interface{}) bool {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return false
	}
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice:
		return true
	default:
		return false
	}
}

// printerFile is this source file, its frames are skipped whatever the compiler names them
var printerFile = func() string {
	_, file, _, _ := runtime.Caller(0)
	return file
}()

var skipPackages = []string{
	"github.com/qjpcpu/container.v2/fmt.",
	"github.com/qjpcpu/container.v2/assert.",
	"github.com/qjpcpu/container.v2/flist.",
}

func callerOutside(pkgs ...string) (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if frame.File != printerFile && !hasAnyPrefix(frame.Function, pkgs) {
			return filepath.Base(frame.File), frame.Line
		}
		if !more {
			return "???", 0
		}
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
