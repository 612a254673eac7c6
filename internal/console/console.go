// Package console runs the line-based menu and questionnaire on a pair of
// text streams.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/report"
	"github.com/abhisek/footprint/internal/store"
)

// State is the menu loop state.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

const (
	welcome = "Welcome to the carbon footprint quiz"

	menu = "Select a command (number):\n" +
		"1. Do the questionnaire\n" +
		"2. See previous results\n" +
		"3. About this application\n" +
		"4. Exit\n> "

	farewell = "Thank you for using this program.\nClosing program..."

	msgNotANumber     = "Invalid input. Please enter a number between 1 and 4."
	msgUnknownCommand = "That's not a valid command. Please try again."
)

// Menu commands.
const (
	CmdQuestionnaire = 1
	CmdResults       = 2
	CmdAbout         = 3
	CmdExit          = 4
)

// Console is the interactive text front-end. It is not safe for concurrent
// use.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	repo   store.RecordRepo
	path   string
	logger *zap.Logger
	styles report.Styles
	state  State
}

// Option configures a Console.
type Option func(*Console)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Console) { c.logger = l }
}

// WithStyles sets output decoration. The default is plain text.
func WithStyles(st report.Styles) Option {
	return func(c *Console) { c.styles = st }
}

// WithPath sets the record file path named in "no results" messages.
func WithPath(path string) Option {
	return func(c *Console) { c.path = path }
}

// New creates a Console reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, repo store.RecordRepo, opts ...Option) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		repo:   repo,
		path:   "answers.json",
		logger: zap.NewNop(),
		styles: report.PlainStyles(),
		state:  Running,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current menu state.
func (c *Console) State() State {
	return c.state
}

// Run shows the menu until the exit command or end of input.
func (c *Console) Run(ctx context.Context) error {
	c.println(c.styles.Heading(welcome))

	for c.state == Running {
		c.printf("%s", menu)
		line, ok := c.readLine()
		if !ok {
			c.println("")
			c.state = Stopped
			break
		}
		if err := c.Dispatch(ctx, line); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				c.state = Stopped
				break
			}
			return err
		}
	}

	c.println(farewell)
	return nil
}

// Dispatch handles one line typed at the menu prompt. Invalid input prints a
// message and leaves the state unchanged. The only error returned is
// io.ErrUnexpectedEOF when input ends during the questionnaire.
func (c *Console) Dispatch(ctx context.Context, line string) error {
	cmd, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		// A number too big for an int is still a number, just not a command.
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			c.println(c.styles.Bad(msgUnknownCommand))
			return nil
		}
		c.println(c.styles.Bad(msgNotANumber))
		return nil
	}

	switch cmd {
	case CmdQuestionnaire:
		_, err := c.Questionnaire(ctx)
		return err
	case CmdResults:
		c.ShowResults(ctx)
	case CmdAbout:
		c.printf("\n%s\n\n", footprint.About)
	case CmdExit:
		c.state = Stopped
	default:
		c.println(c.styles.Bad(msgUnknownCommand))
	}
	return nil
}

// Questionnaire asks every question until each has a valid answer, prints
// the score and appends the record. A failed save is reported and logged
// but does not fail the questionnaire.
func (c *Console) Questionnaire(ctx context.Context) (footprint.Record, error) {
	log := c.logger.With(zap.String("run_id", uuid.NewString()))
	log.Debug("questionnaire started")

	answers := make(footprint.Answers, len(footprint.Questions))
	for _, q := range footprint.Questions {
		v, err := c.ask(q)
		if err != nil {
			log.Debug("questionnaire abandoned", zap.String("question", string(q.Key)))
			return footprint.Record{}, err
		}
		answers[q.Key] = v
	}

	rec, err := answers.Record()
	if err != nil {
		log.Error("score answers", zap.Error(err))
		c.println(c.styles.Bad(fmt.Sprintf("Could not score your answers: %v", err)))
		return footprint.Record{}, nil
	}

	c.printf("\n%s\n", c.styles.Heading(fmt.Sprintf("Total Contamination: %.2f kg CO₂", rec.Total)))

	if err := c.repo.Append(ctx, rec); err != nil {
		log.Error("save record", zap.Error(err))
		c.println(c.styles.Bad(fmt.Sprintf("Could not save your answers: %v", err)))
		return rec, nil
	}
	log.Info("record saved", zap.Float64("total_contamination", rec.Total))
	return rec, nil
}

// ask prompts for q until the answer parses.
func (c *Console) ask(q footprint.Question) (float64, error) {
	for {
		c.printf("\nQuestion: %s\nYour answer: ", q.Text)
		line, ok := c.readLine()
		if !ok {
			return 0, io.ErrUnexpectedEOF
		}
		v, err := q.Parse(line)
		if err == nil {
			return v, nil
		}
		c.println(c.styles.Bad(q.Retry(err)))
	}
}

// ShowResults prints every stored record and the progress summary, or the
// reason the records could not be read.
func (c *Console) ShowResults(ctx context.Context) {
	records, err := c.repo.Load(ctx)
	if err != nil {
		c.logger.Debug("load records", zap.Error(err))
		c.printf("\n%s\n", c.styles.Bad(report.LoadErrorMessage(err, c.path)))
		return
	}
	c.println("")
	if err := report.Write(c.out, records, c.styles); err != nil {
		c.logger.Warn("write report", zap.Error(err))
	}
	c.println("")
}

// readLine returns the next line without its terminator. Lines have no
// length limit. A final line without a newline is still returned; ok is
// false only once nothing is left to read.
func (c *Console) readLine() (string, bool) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			c.logger.Warn("read input", zap.Error(err))
		}
		if line == "" {
			return "", false
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
