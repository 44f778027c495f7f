package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	urfave "github.com/urfave/cli/v3"

	"loan-approval-simulator/internal/models"
	"loan-approval-simulator/internal/presentation/errorboard"
	"loan-approval-simulator/internal/presentation/render"
	"loan-approval-simulator/internal/services/simulator"
	"loan-approval-simulator/internal/utils"
)

func (a *app) interactiveCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "interactive",
		Aliases: []string{"form"},
		Usage:   "Fills in the application form field by field",
		Action: func(ctx context.Context, cmd *urfave.Command) error {
			s := newSession(a.in, a.out, a.svc, a.cfg.ErrorDisplayTimeout(), a.textOptions(cmd))
			defer s.board.Reset()

			err := s.run(ctx)
			utils.GetLogger().Debug("Interactive session ended",
				utils.Int("submissions", s.submissions),
				utils.Duration("error_display", s.board.Timeout()),
			)
			return err
		},
	}
}

// clearValue typed at a prompt empties that one field.
const clearValue = "-"

// syncWriter serializes writes from the prompt loop and the error board timer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

type session struct {
	scanner *bufio.Scanner
	out     io.Writer
	svc     *simulator.Service
	board   *errorboard.Board
	opts    render.TextOptions
	values  map[models.Field]string

	submissions int
}

func newSession(in io.Reader, out io.Writer, svc *simulator.Service, timeout time.Duration, opts render.TextOptions) *session {
	w := &syncWriter{w: out}
	s := &session{
		scanner: bufio.NewScanner(in),
		out:     w,
		svc:     svc,
		opts:    opts,
		values:  make(map[models.Field]string),
	}
	s.board = errorboard.New(timeout, func() {
		fmt.Fprintln(w, "\n(field errors cleared)")
	})
	return s
}

func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Loan Approval Probability Simulator")
	fmt.Fprintln(s.out, "Type 'guide' for the credit score guide, 'reset' to clear the form, 'quit' to exit.")
	fmt.Fprintln(s.out, "Press Enter to keep the value shown in brackets, or type '-' to clear it.")

	fields := models.Fields()
outer:
	for {
		for i := 0; i < len(fields); {
			line, ok := s.prompt(fields[i])
			if !ok {
				return s.scanner.Err()
			}

			switch strings.ToLower(strings.TrimSpace(line)) {
			case "quit", "exit":
				return nil
			case "reset":
				s.reset(ctx)
				continue outer
			case "guide":
				_, _ = io.WriteString(s.out, render.CreditGuide())
				continue
			case "":
			case clearValue:
				delete(s.values, fields[i])
			default:
				s.values[fields[i]] = strings.TrimSpace(line)
			}
			i++
		}

		if err := s.submit(ctx); err != nil {
			return err
		}
	}
}

func (s *session) prompt(field models.Field) (string, bool) {
	var sb strings.Builder
	sb.WriteString(field.Label())
	if v := s.values[field]; v != "" {
		sb.WriteString(" [" + v + "]")
	}
	if msg, ok := s.board.Message(field); ok {
		sb.WriteString(" (" + msg + ")")
	}
	sb.WriteString(": ")
	_, _ = io.WriteString(s.out, sb.String())

	if !s.scanner.Scan() {
		return "", false
	}
	return s.scanner.Text(), true
}

func (s *session) raw() models.RawInput {
	return models.RawInput{
		Income: s.values[models.FieldIncome],
		Credit: s.values[models.FieldCredit],
		Debt:   s.values[models.FieldDebt],
		Loan:   s.values[models.FieldLoan],
	}
}

func (s *session) submit(ctx context.Context) error {
	sub := s.svc.Submit(ctx, s.raw())
	s.submissions++
	s.board.Show(sub.Errors)
	_, _ = io.WriteString(s.out, "\n")
	return render.Submission(s.out, sub, s.opts)
}

func (s *session) reset(ctx context.Context) {
	s.values = make(map[models.Field]string)
	s.board.Reset()
	_ = render.Submission(s.out, s.svc.Reset(ctx), s.opts)
}
