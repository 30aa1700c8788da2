// Package terminal owns the terminal for the length of one interactive
// session. A Session captures the terminal mode before the program switches
// it to raw mode and restores it exactly once, whichever way the program ends.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const (
	DefaultFrameInterval = 50 * time.Millisecond

	maxFPS = 120
)

type State int

const (
	StateNormal State = iota
	StateInteractive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInteractive:
		return "interactive"
	case StateClosed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Option func(*Session)

// WithAltScreen draws the session on the alternate screen buffer
func WithAltScreen(on bool) Option {
	return func(s *Session) {
		s.altScreen = on
	}
}

// WithFrameInterval sets the longest time between two repaints
func WithFrameInterval(d time.Duration) Option {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) {
		s.log = log
	}
}

type Session struct {
	in  io.Reader
	out io.Writer

	inErr  *tracker
	outErr *tracker

	// set when the input is a terminal
	fd    int
	saved *term.State
	tty   bool

	altScreen bool
	interval  time.Duration
	log       zerolog.Logger

	state   State
	release sync.Once
	relErr  error
}

// Open creates a session reading keys from in and drawing to out. A nil out
// draws to stdout, a nil in disables input. Nothing is touched until Run.
func Open(in io.Reader, out io.Writer, opts ...Option) *Session {
	if out == nil {
		out = os.Stdout
	}
	s := &Session{
		inErr:    &tracker{},
		outErr:   &tracker{},
		fd:       -1,
		interval: DefaultFrameInterval,
		log:      zerolog.Nop(),
	}
	s.in = trackReader(in, s.inErr)
	s.out = trackWriter(out, s.outErr)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.fd = int(f.Fd())
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		s.tty = true
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

// Run enters interactive mode, runs m until it quits and restores the
// terminal. It can only be called once per session.
func (s *Session) Run(ctx context.Context, m tea.Model) (final tea.Model, err error) {
	if s.state != StateNormal {
		return nil, ErrSessionUsed
	}
	if err := s.acquire(); err != nil {
		s.state = StateClosed
		return nil, err
	}
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("session crashed")
			final, err = nil, &RenderError{Err: fmt.Errorf("panic: %v", r)}
		}
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()

	p := tea.NewProgram(m, s.programOptions(ctx)...)
	final, err = p.Run()
	return final, s.classify(ctx, err)
}

// Close restores the terminal. It is safe to call more than once and before
// or after Run.
func (s *Session) Close() error {
	s.release.Do(func() {
		var errs []error
		if s.state == StateInteractive && s.tty {
			if _, err := io.WriteString(s.out, ansi.ShowCursor); err != nil {
				errs = append(errs, &SetupError{Op: "show cursor", Err: err})
			}
		}
		if s.saved != nil {
			if err := term.Restore(s.fd, s.saved); err != nil {
				errs = append(errs, &SetupError{Op: "release", Err: err})
			}
		}
		s.relErr = errors.Join(errs...)
		if s.state == StateInteractive {
			s.log.Debug().Err(s.relErr).Msg("session released")
		}
		s.state = StateClosed
	})
	return s.relErr
}

func (s *Session) acquire() error {
	if s.fd >= 0 {
		st, err := term.GetState(s.fd)
		if err != nil {
			return &SetupError{Op: "acquire", Err: err}
		}
		s.saved = st
	}
	s.state = StateInteractive
	s.log.Debug().
		Bool("tty", s.saved != nil).
		Bool("alt_screen", s.altScreen).
		Dur("frame_interval", s.interval).
		Msg("session acquired")
	return nil
}

func (s *Session) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
		tea.WithFPS(fps(s.interval)),
	}
	if s.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	return opts
}

// classify maps the program's exit error onto the session error types. I/O
// failures recorded on the wrapped streams win over the program's own error.
func (s *Session) classify(ctx context.Context, err error) error {
	if ierr := s.inErr.Err(); ierr != nil {
		s.log.Error().Err(ierr).Msg("reading input failed")
		return &InputError{Err: ierr}
	}
	if werr := s.outErr.Err(); werr != nil {
		s.log.Error().Err(werr).Msg("writing frame failed")
		return &RenderError{Err: werr}
	}
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tea.ErrInterrupted):
		s.log.Debug().Msg("session interrupted")
		return nil
	case ctx.Err() != nil:
		s.log.Debug().Err(ctx.Err()).Msg("session cancelled")
		return fmt.Errorf("session cancelled: %w", ctx.Err())
	}
	s.log.Error().Err(err).Msg("session failed")
	return &RenderError{Err: err}
}

func fps(interval time.Duration) int {
	n := int(time.Second / interval)
	return min(max(n, 1), maxFPS)
}
