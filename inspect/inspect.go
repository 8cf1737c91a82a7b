// Package inspect provides a scoped diagnostic breakpoint.
//
// A Breakpoint stops a run at a named point and exposes a Frame of local values.
// Depending on its Mode it does nothing, logs the frame, or hands control to an
// operator who can print values before resuming or quitting.
package inspect

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rotblauer/yfall/render"
)

// ErrQuit is returned when the operator quits at a prompt.
var ErrQuit = errors.New("quit at breakpoint")

type Mode string

const (
	ModeOff    Mode = "off"
	ModeLog    Mode = "log"
	ModePrompt Mode = "prompt"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeOff, ModeLog, ModePrompt:
		return m, nil
	case "":
		return ModeLog, nil
	}
	return "", fmt.Errorf("unknown breakpoint mode %q (want %s, %s or %s)", s, ModeOff, ModeLog, ModePrompt)
}

type Var struct {
	Name  string
	Value any
}

// Frame is an ordered set of named values visible at a breakpoint.
type Frame []Var

func (f Frame) Lookup(name string) (any, bool) {
	for _, v := range f {
		if v.Name == name {
			return v.Value, true
		}
	}
	return nil, false
}

type Breakpoint struct {
	Mode Mode
	In   io.Reader
	Out  io.Writer

	// Render controls how sequences are printed by p.
	Render render.Options

	logger *slog.Logger
}

func NewBreakpoint(mode Mode, in io.Reader, out io.Writer) *Breakpoint {
	return &Breakpoint{
		Mode:   mode,
		In:     in,
		Out:    out,
		Render: render.DefaultOptions(),
		logger: slog.With("unit", "breakpoint"),
	}
}

// Stop pauses at the named point according to the breakpoint's mode.
// It returns ErrQuit only in prompt mode, when the operator asks to quit.
// A nil Breakpoint is a no-op.
func (b *Breakpoint) Stop(name string, frame Frame) error {
	if b == nil {
		return nil
	}
	switch b.Mode {
	case ModeOff:
		return nil
	case ModePrompt:
		return b.prompt(name, frame)
	default:
		b.log(name, frame)
		return nil
	}
}

func (b *Breakpoint) log(name string, frame Frame) {
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := make([]any, 0, len(frame)*2+2)
	attrs = append(attrs, "at", name)
	for _, v := range frame {
		attrs = append(attrs, v.Name, b.format(v.Value, b.Render))
	}
	logger.Debug("Breakpoint", attrs...)
}

const help = `Commands:
  c, cont, continue   resume
  p NAME              print a value (long sequences are summarized)
  pp NAME             print a value in full
  whatis NAME         print the type of a value
  a, args             print scalar values
  l, locals           list values
  h, help             this help
  q, quit, exit       abort the run
`

func (b *Breakpoint) prompt(name string, frame Frame) error {
	fmt.Fprintf(b.Out, "> stopped at %s\n", name)
	sc := bufio.NewScanner(b.In)
	for {
		fmt.Fprint(b.Out, "(yfall) ")
		if !sc.Scan() {
			fmt.Fprintln(b.Out)
			if err := sc.Err(); err != nil {
				return fmt.Errorf("breakpoint input: %w", err)
			}
			// EOF resumes, same as c.
			return nil
		}
		cmd, arg, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		arg = strings.TrimSpace(arg)
		switch cmd {
		case "":
		case "c", "cont", "continue":
			return nil
		case "q", "quit", "exit":
			return ErrQuit
		case "h", "help":
			fmt.Fprint(b.Out, help)
		case "p", "pp", "whatis":
			if arg == "" {
				fmt.Fprintf(b.Out, "%s needs a name\n", cmd)
				continue
			}
			v, ok := frame.Lookup(arg)
			if !ok {
				fmt.Fprintf(b.Out, "no value named %q\n", arg)
				continue
			}
			switch cmd {
			case "p":
				fmt.Fprintln(b.Out, b.format(v, b.Render))
			case "pp":
				fmt.Fprintln(b.Out, b.format(v, b.Render.Full()))
			case "whatis":
				fmt.Fprintf(b.Out, "%T\n", v)
			}
		case "a", "args":
			for _, v := range frame {
				if _, ok := v.Value.([]float64); ok {
					continue
				}
				fmt.Fprintf(b.Out, "%s = %s\n", v.Name, b.format(v.Value, b.Render))
			}
		case "l", "locals":
			for _, v := range frame {
				fmt.Fprintf(b.Out, "%s %T\n", v.Name, v.Value)
			}
		default:
			fmt.Fprintf(b.Out, "unknown command %q, type h for help\n", cmd)
		}
	}
}

func (b *Breakpoint) format(v any, opt render.Options) string {
	switch x := v.(type) {
	case float64:
		return render.Value(x, opt.Precision)
	case []float64:
		sb := new(strings.Builder)
		_ = render.Array(sb, x, opt)
		return strings.TrimSuffix(sb.String(), "\n")
	default:
		return fmt.Sprint(v)
	}
}
