package enneabot

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// ──────────────────────────────────────────────
// Quiz Engine — per-user conversation state machine
// ──────────────────────────────────────────────

// DefaultRestartKeyword resets a session from any step when it appears
// anywhere in a message.
const DefaultRestartKeyword = "테스트"

// defaultUserID is used when an inbound message carries no user id.
const defaultUserID = "default"

// EngineConfig configures a QuizEngine.
type EngineConfig struct {
	Script         *Script  // reply text, default DefaultScript()
	RestartKeyword string   // default DefaultRestartKeyword
	Metrics        *Metrics // optional activity counters
}

// QuizEngine drives the questionnaire: one inbound message advances the
// sender's session by at most one step and yields exactly one reply.
//
// Collaborators are injected: the classification table (readiness-gated),
// a session store and the result persistence gateway.
type QuizEngine struct {
	table    *ClassificationTable
	sessions SessionStore
	results  ResultStore
	script   *Script
	restart  string
	metrics  *Metrics
}

// NewQuizEngine creates an engine over the given collaborators.
func NewQuizEngine(table *ClassificationTable, sessions SessionStore, results ResultStore, config ...EngineConfig) *QuizEngine {
	cfg := EngineConfig{}
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Script == nil {
		cfg.Script = DefaultScript()
	}
	if cfg.RestartKeyword == "" {
		cfg.RestartKeyword = DefaultRestartKeyword
	}
	return &QuizEngine{
		table:    table,
		sessions: sessions,
		results:  results,
		script:   cfg.Script,
		restart:  cfg.RestartKeyword,
		metrics:  cfg.Metrics,
	}
}

// HandleMessage processes one inbound message and returns the reply text.
// An empty userID maps to "default". Messages for the same user id are
// assumed not to arrive concurrently; stores only need to be safe across
// users.
func (e *QuizEngine) HandleMessage(ctx context.Context, userID, message string) string {
	if userID == "" {
		userID = defaultUserID
	}
	msg := strings.TrimSpace(message)

	if e.metrics != nil {
		e.metrics.Messages.Inc()
	}

	// Readiness gate: until the table has loaded every message gets the same
	// transient-unavailable reply and no session state is touched.
	if !e.table.Ready() {
		return e.script.NotReady + "\n\n" + e.script.Menu
	}

	session, err := e.sessions.Get(ctx, userID)
	if err != nil {
		log.Printf("[QuizEngine] load session %s: %v", userID, err)
	}
	if session == nil {
		session = NewSession(userID)
	}

	reply := e.step(ctx, session, msg)

	if err := e.sessions.Put(ctx, session); err != nil {
		log.Printf("[QuizEngine] store session %s: %v", userID, err)
	}
	return reply
}

// step runs one state transition. It mutates s and returns the reply.
func (e *QuizEngine) step(ctx context.Context, s *Session, msg string) string {
	// The restart keyword aborts whatever is in progress, from any step.
	if strings.Contains(msg, e.restart) {
		s.Reset()
		return e.script.Menu
	}

	switch s.Step {
	case StepStart:
		switch msg {
		case "1":
			return e.listResults(ctx)
		case "2":
			s.Step = StepAskName
			return e.script.AskName
		default:
			return e.script.Menu
		}

	case StepAskName:
		// Raw trimmed input, no normalization.
		s.Name = msg
		s.Step = StepQ11
		return e.script.Q11

	case StepQ11:
		s.Answers.Q11 = NormalizeChoice13(msg)
		s.Step = StepQ12
		return e.script.Q12

	case StepQ12:
		s.Answers.Q12 = NormalizeChoice13(msg)
		s.Step = StepQ21
		return e.script.Q21

	case StepQ21:
		s.Answers.Q21 = NormalizeChoice13(msg)
		s.Step = StepQ3
		return e.script.Q3Full()

	case StepQ3:
		return e.classify(s, msg)

	case StepWing:
		return e.chooseWing(s, msg)

	case StepSave:
		return e.confirmSave(ctx, s, msg)
	}

	return e.script.Menu
}

// classify resolves the Q3 answer against the table. Fewer than three digits
// re-prompts without advancing; a lookup miss resets to the menu.
func (e *QuizEngine) classify(s *Session, msg string) string {
	picks := extractDigits19(msg)
	if len(picks) < 3 {
		return e.script.Q3Retry + "\n\n" + e.script.Q3Full()
	}
	triple := strings.Join(picks[:3], "-")
	s.Answers.Triple = triple

	row, ok := e.table.Lookup(s.Answers.Q11, s.Answers.Q12, s.Answers.Q21, triple)
	if !ok {
		if e.metrics != nil {
			e.metrics.LookupMisses.Inc()
		}
		s.Reset()
		return e.script.LookupMiss + "\n\n" + e.script.Menu
	}

	s.BasicType = row.Type
	s.Step = StepWing
	return BuildWingPrompt(s.BasicType)
}

func (e *QuizEngine) chooseWing(s *Session, msg string) string {
	wing, ok := WingFor(s.BasicType)
	if !ok {
		// Unreachable with a well-formed table; fail the request, not the
		// process.
		return BuildWingPrompt(s.BasicType)
	}
	switch msg {
	case "1":
		s.Wing = wing.LeftLabel
	case "2":
		s.Wing = wing.RightLabel
	default:
		return e.script.WingRetry + "\n" + BuildWingPrompt(s.BasicType)
	}
	s.Step = StepSave
	return BuildResultMessage(s.BasicType, s.Wing, e.script.Save)
}

func (e *QuizEngine) confirmSave(ctx context.Context, s *Session, msg string) string {
	switch msg {
	case "1":
		result := StoredResult{
			UserID:    s.UserID,
			Name:      s.Name,
			BasicType: s.BasicType,
			Wing:      s.Wing,
		}
		if err := e.results.Insert(ctx, result); err != nil {
			log.Printf("[QuizEngine] insert result for %s: %v", s.UserID, err)
			// Stay on the save step so the user can retry.
			return e.script.SaveError
		}
		if e.metrics != nil {
			e.metrics.ResultsSaved.Inc()
		}
		s.Reset()
		return e.script.Saved + "\n\n" + e.script.Menu
	case "2":
		s.Reset()
		return e.script.SaveSkipped + "\n\n" + e.script.Menu
	default:
		return e.script.Save
	}
}

func (e *QuizEngine) listResults(ctx context.Context) string {
	rows, err := e.results.List(ctx)
	if err != nil {
		log.Printf("[QuizEngine] list results: %v", err)
		return e.script.ListError
	}
	if len(rows) == 0 {
		return e.script.NoResults + "\n\n" + e.script.Menu
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s (기본 타입 %s)", r.Name, r.Wing, r.BasicType))
	}
	return e.script.ListHeader + "\n" + strings.Join(lines, "\n") + "\n\n" + e.script.Menu
}
