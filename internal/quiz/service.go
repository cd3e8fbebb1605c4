package quiz

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/HM-aes/smbshield/internal/account"
	"github.com/HM-aes/smbshield/internal/catalog"
	"github.com/HM-aes/smbshield/internal/gaps"
	"github.com/HM-aes/smbshield/internal/progress"
	"github.com/HM-aes/smbshield/internal/store"
)

// DefaultPassThreshold is the minimum score (0-100) that passes a quiz.
const DefaultPassThreshold = 70

// NoAnswer marks a question the learner left unanswered. It scores as wrong.
const NoAnswer = -1

// AlreadyScoredError is returned when a scored attempt is submitted again.
// It carries the original result so resubmission stays idempotent.
type AlreadyScoredError struct {
	Result *Result
}

func (e *AlreadyScoredError) Error() string {
	return fmt.Sprintf("attempt %s already scored", e.Result.AttemptID)
}

// Feedback is the per-question outcome returned after scoring.
type Feedback struct {
	QuestionID  string
	Prompt      string
	Submitted   int
	Answer      int
	Correct     bool
	Explanation string
}

// Result is the outcome of one scored attempt. Feedback covers every
// question, pass or fail.
type Result struct {
	AttemptID    string
	ModuleCode   string
	Score        int
	CorrectCount int
	Total        int
	Passed       bool
	Feedback     []Feedback
}

// Service issues and scores quizzes.
type Service struct {
	quizzes       store.QuizRepo
	gapRepo       store.GapRepo
	selector      *Selector
	gapCfg        gaps.Config
	passThreshold int
	log           *zap.Logger
}

// NewService creates a quiz service over the given repositories. Account
// counter changes ride inside the scoring transaction, so no account
// repository is needed here.
func NewService(quizzes store.QuizRepo, gapRepo store.GapRepo, selector *Selector, gapCfg gaps.Config, passThreshold int, log *zap.Logger) *Service {
	if passThreshold <= 0 {
		passThreshold = DefaultPassThreshold
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		quizzes:       quizzes,
		gapRepo:       gapRepo,
		selector:      selector,
		gapCfg:        gapCfg,
		passThreshold: passThreshold,
		log:           log,
	}
}

// GetOrBuild returns the account's open attempt, or builds and issues a new
// one for the module at the account's current level. An open attempt is
// always resumed, never replaced.
func (s *Service) GetOrBuild(ctx context.Context, acc *account.Account, now time.Time) (*Attempt, []Question, error) {
	rec, err := s.quizzes.LatestOpen(ctx, acc.ID)
	switch {
	case err == nil:
		att := attemptFromRecord(rec)
		qs, err := questionsFor(att.QuestionIDs)
		if err != nil {
			return nil, nil, err
		}
		return att, qs, nil
	case errors.Is(err, store.ErrNotFound):
	default:
		return nil, nil, err
	}

	mod, err := catalog.ModuleByOrder(acc.OWASPLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("account %s at level %d: %w", acc.ID, acc.OWASPLevel, err)
	}

	gapRecs, err := s.gapRepo.List(ctx, acc.ID)
	if err != nil {
		return nil, nil, err
	}
	tracker := gaps.NewTracker(s.gapCfg, gapRecs)

	qs, err := s.selector.Select(mod.Code, tracker.TopicsByGapDesc())
	if err != nil {
		return nil, nil, err
	}

	att := &Attempt{
		ID:         uuid.NewString(),
		AccountID:  acc.ID,
		ModuleCode: mod.Code,
		Status:     StatusBuilding,
	}
	for _, q := range qs {
		att.QuestionIDs = append(att.QuestionIDs, q.ID)
	}
	if err := att.advance(StatusIssued); err != nil {
		return nil, nil, err
	}
	att.IssuedAt = now

	if err := s.quizzes.Create(ctx, attemptToRecord(att)); err != nil {
		return nil, nil, err
	}
	s.log.Info("quiz issued",
		zap.String("account_id", acc.ID),
		zap.String("attempt_id", att.ID),
		zap.String("module", mod.Code),
		zap.Int("questions", len(qs)))
	return att, qs, nil
}

// Submit scores an attempt. Answers map question IDs to chosen choice
// indices; missing entries score as wrong. Scoring is atomic: the attempt,
// its answers, the gap updates, and the account counters commit together.
// Submitting a scored attempt returns AlreadyScoredError carrying the
// original result.
func (s *Service) Submit(ctx context.Context, acc *account.Account, attemptID string, answers map[string]int, now time.Time) (*Result, error) {
	rec, err := s.quizzes.Get(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if rec.AccountID != acc.ID {
		return nil, store.ErrNotFound
	}

	if rec.Status == StatusScored {
		orig, err := s.storedResult(ctx, rec)
		if err != nil {
			return nil, err
		}
		return nil, &AlreadyScoredError{Result: orig}
	}

	att := attemptFromRecord(rec)
	if att.Status == StatusIssued {
		if err := att.advance(StatusSubmitted); err != nil {
			return nil, err
		}
	}
	if err := att.advance(StatusScored); err != nil {
		return nil, err
	}

	questions, err := questionsFor(att.QuestionIDs)
	if err != nil {
		return nil, err
	}

	gapRecs, err := s.gapRepo.List(ctx, acc.ID)
	if err != nil {
		return nil, err
	}
	tracker := gaps.NewTracker(s.gapCfg, gapRecs)

	res := &Result{
		AttemptID:  att.ID,
		ModuleCode: att.ModuleCode,
		Total:      len(questions),
	}
	answerRows := make([]store.AnswerRecord, 0, len(questions))
	for _, q := range questions {
		submitted, ok := answers[q.ID]
		if !ok {
			submitted = NoAnswer
		}
		correct := submitted == q.Answer
		if correct {
			res.CorrectCount++
		}
		// One gap update per question, answered or not.
		tracker.RecordAnswer(q.Topic, correct, now)

		res.Feedback = append(res.Feedback, Feedback{
			QuestionID:  q.ID,
			Prompt:      q.Prompt,
			Submitted:   submitted,
			Answer:      q.Answer,
			Correct:     correct,
			Explanation: q.Explanation,
		})
		answerRows = append(answerRows, store.AnswerRecord{
			AttemptID:  att.ID,
			QuestionID: q.ID,
			Topic:      q.Topic,
			Submitted:  strconv.Itoa(submitted),
			Correct:    correct,
		})
	}

	res.Score = 100 * res.CorrectCount / res.Total
	res.Passed = res.Score >= s.passThreshold

	acc.ScoreTotal += res.Score
	if res.Passed {
		acc.QuizzesPassed++
	}
	progress.AdvanceStreak(acc, now)

	attRec := attemptToRecord(att)
	attRec.Score = res.Score
	attRec.CorrectCount = res.CorrectCount
	attRec.Passed = res.Passed
	scoredAt := now
	attRec.ScoredAt = &scoredAt

	sub := store.ScoredSubmission{
		Attempt: attRec,
		Answers: answerRows,
		Gaps:    tracker.Records(acc.ID),
		Account: acc.Record(),
	}
	if err := s.quizzes.SaveScored(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("quiz scored",
		zap.String("account_id", acc.ID),
		zap.String("attempt_id", att.ID),
		zap.Int("score", res.Score),
		zap.Bool("passed", res.Passed))
	return res, nil
}

// storedResult rebuilds the result of an already-scored attempt from its
// persisted rows.
func (s *Service) storedResult(ctx context.Context, rec *store.AttemptRecord) (*Result, error) {
	rows, err := s.quizzes.ListAnswers(ctx, rec.AttemptID)
	if err != nil {
		return nil, err
	}

	res := &Result{
		AttemptID:    rec.AttemptID,
		ModuleCode:   rec.ModuleCode,
		Score:        rec.Score,
		CorrectCount: rec.CorrectCount,
		Total:        len(rec.QuestionIDs),
		Passed:       rec.Passed,
	}
	for _, row := range rows {
		submitted, err := strconv.Atoi(row.Submitted)
		if err != nil {
			submitted = NoAnswer
		}
		fb := Feedback{
			QuestionID: row.QuestionID,
			Submitted:  submitted,
			Correct:    row.Correct,
		}
		if q, err := QuestionByID(row.QuestionID); err == nil {
			fb.Prompt = q.Prompt
			fb.Answer = q.Answer
			fb.Explanation = q.Explanation
		}
		res.Feedback = append(res.Feedback, fb)
	}
	return res, nil
}

func attemptFromRecord(rec *store.AttemptRecord) *Attempt {
	return &Attempt{
		ID:          rec.AttemptID,
		AccountID:   rec.AccountID,
		ModuleCode:  rec.ModuleCode,
		Status:      rec.Status,
		QuestionIDs: rec.QuestionIDs,
		IssuedAt:    rec.IssuedAt,
	}
}

func attemptToRecord(att *Attempt) *store.AttemptRecord {
	return &store.AttemptRecord{
		AttemptID:   att.ID,
		AccountID:   att.AccountID,
		ModuleCode:  att.ModuleCode,
		Status:      att.Status,
		QuestionIDs: att.QuestionIDs,
		IssuedAt:    att.IssuedAt,
	}
}

func questionsFor(ids []string) ([]Question, error) {
	out := make([]Question, 0, len(ids))
	for _, id := range ids {
		q, err := QuestionByID(id)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, nil
}
