// Package questionnaire asks the five footprint questions one at a time.
package questionnaire

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/router"
	"github.com/abhisek/footprint/internal/screen"
	"github.com/abhisek/footprint/internal/screens/results"
	"github.com/abhisek/footprint/internal/store"
	"github.com/abhisek/footprint/internal/ui/components"
	"github.com/abhisek/footprint/internal/ui/layout"
)

const answerCharLimit = 32

// Phase is where the screen is in the questionnaire.
type Phase int

const (
	PhaseAsking Phase = iota
	PhaseSaving
	PhaseDone
)

// QuestionnaireScreen collects one answer per question, then scores and
// saves the record. Leaving before the last answer saves nothing.
type QuestionnaireScreen struct {
	repo   store.RecordRepo
	path   string
	logger *zap.Logger

	step    int
	answers footprint.Answers
	input   components.AnswerInput

	phase   Phase
	record  footprint.Record
	saveErr error
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates a QuestionnaireScreen saving to repo.
func New(repo store.RecordRepo, path string, logger *zap.Logger) *QuestionnaireScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionnaireScreen{
		repo:    repo,
		path:    path,
		logger:  logger.With(zap.String("run_id", uuid.NewString())),
		answers: make(footprint.Answers, len(footprint.Questions)),
		input:   components.NewAnswerInput(footprint.Questions[0].Placeholder(), answerCharLimit),
	}
}

func (s *QuestionnaireScreen) Init() tea.Cmd {
	s.logger.Debug("questionnaire started")
	return s.input.Init()
}

func (s *QuestionnaireScreen) Title() string {
	return "Questionnaire"
}

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	if s.phase == PhaseDone {
		return []layout.KeyHint{
			{Key: "Enter", Description: "See results"},
			{Key: "Esc", Description: "Menu"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Abandon"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Phase returns the current phase.
func (s *QuestionnaireScreen) Phase() Phase {
	return s.phase
}

// Record returns the scored record once every question is answered.
func (s *QuestionnaireScreen) Record() (footprint.Record, bool) {
	return s.record, s.phase != PhaseAsking
}

// Current returns the question being asked.
func (s *QuestionnaireScreen) Current() footprint.Question {
	if s.step >= len(footprint.Questions) {
		return footprint.Questions[len(footprint.Questions)-1]
	}
	return footprint.Questions[s.step]
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordSavedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.phase {
	case PhaseSaving:
		return s, nil
	case PhaseDone:
		if msg.String() == "enter" {
			return s, router.Replace(results.New(s.repo, s.path))
		}
		return s, nil
	}

	if msg.String() == "enter" {
		return s.submitAnswer()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *QuestionnaireScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	q := s.Current()
	v, err := q.Parse(s.input.Value())
	if err != nil {
		s.logger.Debug("answer rejected", zap.String("question", string(q.Key)), zap.Error(err))
		s.input.Reject(q.Retry(err))
		return s, nil
	}

	s.answers[q.Key] = v
	s.step++
	s.input.Clear()

	if s.step < len(footprint.Questions) {
		s.input.Model.Placeholder = s.Current().Placeholder()
		return s, nil
	}

	rec, err := s.answers.Record()
	if err != nil {
		// Every answer passed Parse, so this only happens if the question
		// table and Answers.Record disagree.
		s.logger.Error("score answers", zap.Error(err))
		s.input.Reject(err.Error())
		return s, nil
	}
	s.record = rec
	s.phase = PhaseSaving
	return s, s.save(rec)
}

func (s *QuestionnaireScreen) save(rec footprint.Record) tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		return recordSavedMsg{Err: repo.Append(context.Background(), rec)}
	}
}

func (s *QuestionnaireScreen) handleSaved(msg recordSavedMsg) (screen.Screen, tea.Cmd) {
	s.phase = PhaseDone
	s.saveErr = msg.Err
	if msg.Err != nil {
		s.logger.Error("save record", zap.Error(msg.Err))
		return s, nil
	}
	s.logger.Info("record saved", zap.Float64("total_contamination", s.record.Total))
	return s, nil
}
