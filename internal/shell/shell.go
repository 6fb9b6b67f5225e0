// Package shell implements a line-oriented calculator over radix numbers.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/govalues/radix"
	"go.uber.org/zap"
)

// errExit stops the read loop without reporting a failure.
var errExit = errors.New("exit")

// Shell evaluates one command per input line and prints the results.
type Shell struct {
	cfg    Config
	logger *zap.Logger
	in     io.Reader
	out    io.Writer
}

// New returns a shell reading commands from in and printing to out.
// A nil logger disables logging.
func New(cfg Config, logger *zap.Logger, in io.Reader, out io.Writer) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{cfg: cfg, logger: logger, in: in, out: out}
}

// Run reads lines until EOF or an exit command.
// Evaluation failures are printed and do not stop the loop.
// Run returns an error only if reading or writing fails.
func (s *Shell) Run() error {
	s.logger.Info("shell started", zap.Int("base", s.cfg.Base))
	defer s.logger.Info("shell stopped")

	sc := bufio.NewScanner(s.in)
	sc.Buffer(make([]byte, 0, 64*1024), radix.MaxDigits+1024)
	for {
		if err := s.prompt(); err != nil {
			return err
		}
		if !sc.Scan() {
			break
		}
		out, err := s.Eval(sc.Text())
		switch {
		case errors.Is(err, errExit):
			return nil
		case err != nil:
			s.logger.Debug("evaluation failed", zap.String("line", sc.Text()), zap.Error(err))
			out = "error: " + err.Error()
		}
		if out == "" {
			continue
		}
		if _, err := fmt.Fprintln(s.out, out); err != nil {
			return fmt.Errorf("failed to write result: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (s *Shell) prompt() error {
	if s.cfg.Prompt == "" {
		return nil
	}
	if _, err := io.WriteString(s.out, s.cfg.Prompt); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// Eval evaluates a single line and returns the text to print.
// Blank lines produce an empty result.
func (s *Shell) Eval(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	cmd, err := parseCommand(line)
	if err != nil {
		return "", fmt.Errorf("invalid command: %w", err)
	}
	switch {
	case cmd.Exit:
		return "", errExit
	case cmd.Sum != nil:
		return s.sum(cmd.Sum.Left, cmd.Sum.Right)
	default:
		d, err := s.parse(*cmd.Literal)
		if err != nil {
			return "", err
		}
		return s.show(d)
	}
}

// parse reads a literal, using the configured base unless it has a prefix.
func (s *Shell) parse(lit string) (radix.Number, error) {
	if strings.Contains(lit, "#") {
		return radix.Parse(lit)
	}
	return radix.ParseBase(lit, s.cfg.Base)
}

func (s *Shell) sum(left, right string) (string, error) {
	d, err := s.parse(left)
	if err != nil {
		return "", err
	}
	e, err := s.parse(right)
	if err != nil {
		return "", err
	}
	if d.Base() != e.Base() {
		return "", fmt.Errorf("cannot add base %v and base %v: %w", d.Base(), e.Base(), radix.ErrDomain)
	}
	if !d.IsRepeating() && !e.IsRepeating() {
		f, err := d.Add(e)
		if err != nil {
			return "", err
		}
		return s.show(f)
	}
	s.logger.Debug("adding through fractions", zap.Stringer("left", d), zap.Stringer("right", e))
	x, err := d.Rat()
	if err != nil {
		return "", err
	}
	y, err := e.Rat()
	if err != nil {
		return "", err
	}
	z, err := x.Add(y)
	if err != nil {
		return "", err
	}
	f, err := z.Number()
	if err != nil {
		return "", err
	}
	return s.show(f)
}

// show formats d, followed by its fraction if enabled.
func (s *Shell) show(d radix.Number) (string, error) {
	if !s.cfg.Rational {
		return d.String(), nil
	}
	r, err := d.Rat()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v = %v", d, r), nil
}
