package service_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"quiz_backend/internal/model"
	"quiz_backend/internal/repository/memory"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type scoringFixture struct {
	questions *memory.QuestionStore
	results   *memory.ResultStore
	service   *service.ResultService
	now       time.Time
}

func newScoringFixture(t *testing.T) *scoringFixture {
	t.Helper()
	f := &scoringFixture{
		questions: memory.NewQuestionStore(),
		results:   memory.NewResultStore(),
		now:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = service.NewResultServiceWithClock(f.questions, f.results, bcrypt.MinCost, func() time.Time {
		return f.now
	})
	return f
}

func (f *scoringFixture) seedQuestion(t *testing.T, prompt string, correctIndex int) *model.Question {
	t.Helper()
	q := &model.Question{
		Question:           prompt,
		Answers:            []string{"3", "4", "5", "6"},
		CorrectAnswerIndex: correctIndex,
		Channel:            "math-channel",
		Course:             "arithmetic",
		Topic:              "addition",
		Lecture:            "lecture-1",
	}
	if err := f.questions.Create(q); err != nil {
		t.Fatalf("seed question failed: %v", err)
	}
	return q
}

func submission(username string, answers ...service.AnswerReq) service.ResultReq {
	return service.ResultReq{Username: username, Result: answers}
}

func answer(questionID string, selected int) service.AnswerReq {
	return service.AnswerReq{QuestionID: questionID, SelectedAnswer: &selected}
}

func TestSubmitCorrectAnswer(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	res, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !res.Result.Result[0].Correct {
		t.Fatal("expected answer marked correct")
	}
	if res.PercentageScore != 100 {
		t.Fatalf("expected 100%%, got %v", res.PercentageScore)
	}
	if res.Achieved != service.AchievedPassed {
		t.Fatalf("expected passed, got %q", res.Achieved)
	}
	if res.Result.Points != 100 {
		t.Fatalf("expected 100 points, got %d", res.Result.Points)
	}
	if res.Result.Attempts != 1 {
		t.Fatalf("expected attempt 1, got %d", res.Result.Attempts)
	}
	if res.AttemptsRemaining != 2 {
		t.Fatalf("expected 2 attempts remaining, got %d", res.AttemptsRemaining)
	}
}

func TestSubmitWrongAnswer(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	res, err := f.service.Submit(submission("alice", answer(q.ID, 0)))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.Result.Result[0].Correct {
		t.Fatal("expected answer marked incorrect")
	}
	if res.PercentageScore != 0 {
		t.Fatalf("expected 0%%, got %v", res.PercentageScore)
	}
	if res.Achieved != service.AchievedFailed {
		t.Fatalf("expected failed, got %q", res.Achieved)
	}
}

func TestUserTokenHashedAtRest(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	res, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.UserToken == "" {
		t.Fatal("expected raw token in response")
	}
	if res.UserToken == res.Result.UserID {
		t.Fatal("raw token must not be stored as-is")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(res.Result.UserID), []byte(res.UserToken)); err != nil {
		t.Fatalf("stored token is not the bcrypt hash of the raw token: %v", err)
	}
}

func TestExactlySeventyPercentPasses(t *testing.T) {
	f := newScoringFixture(t)

	var answers []service.AnswerReq
	for i := 0; i < 10; i++ {
		q := f.seedQuestion(t, fmt.Sprintf("question %d", i), 1)
		selected := 1
		if i >= 7 {
			selected = 0 // 后三题答错
		}
		answers = append(answers, answer(q.ID, selected))
	}

	res, err := f.service.Submit(submission("alice", answers...))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if res.PercentageScore != 70 {
		t.Fatalf("expected exactly 70%%, got %v", res.PercentageScore)
	}
	if res.Achieved != service.AchievedPassed {
		t.Fatal("exactly 70% must pass")
	}
	if res.PassedQuestions != 7 || res.TotalQuestions != 10 {
		t.Fatalf("expected 7/10, got %d/%d", res.PassedQuestions, res.TotalQuestions)
	}
}

func TestPointsRounded(t *testing.T) {
	f := newScoringFixture(t)

	var answers []service.AnswerReq
	for i := 0; i < 3; i++ {
		q := f.seedQuestion(t, fmt.Sprintf("question %d", i), 1)
		selected := 1
		if i == 2 {
			selected = 0
		}
		answers = append(answers, answer(q.ID, selected))
	}

	res, err := f.service.Submit(submission("alice", answers...))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	want := float64(2) / float64(3) * 100
	if math.Abs(res.PercentageScore-want) > 1e-9 {
		t.Fatalf("expected %v%%, got %v", want, res.PercentageScore)
	}
	if res.Result.Points != 67 {
		t.Fatalf("expected rounded 67 points, got %d", res.Result.Points)
	}
	if res.Achieved != service.AchievedFailed {
		t.Fatal("66.7% must fail")
	}
}

func TestAttemptThrottle(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	// 三次提交，间隔一分钟
	for i := 0; i < 3; i++ {
		res, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
		if err != nil {
			t.Fatalf("submit %d failed: %v", i+1, err)
		}
		if res.Result.Attempts != i+1 {
			t.Fatalf("expected attempt %d, got %d", i+1, res.Result.Attempts)
		}
		f.now = f.now.Add(time.Minute)
	}

	// 第四次：窗口已满，最早一次是 3 分钟前，还需等 17 分钟
	_, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
	var rateLimited *util.RateLimitError
	if !errors.As(err, &rateLimited) {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rateLimited.Attempts != 3 {
		t.Fatalf("expected 3 attempts reported, got %d", rateLimited.Attempts)
	}
	if rateLimited.WaitMinutes <= 0 || rateLimited.WaitMinutes > 20 {
		t.Fatalf("wait minutes out of (0,20]: %d", rateLimited.WaitMinutes)
	}
	if rateLimited.WaitMinutes != 17 {
		t.Fatalf("expected 17 minutes wait, got %d", rateLimited.WaitMinutes)
	}

	// 被拒绝的提交不落库
	if n, _ := f.results.CountSince("alice", f.now.Add(-time.Hour)); n != 3 {
		t.Fatalf("throttled submission persisted, count=%d", n)
	}

	// 最早一次滑出窗口后可以再次提交
	f.now = f.now.Add(18 * time.Minute)
	res, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
	if err != nil {
		t.Fatalf("submit after window failed: %v", err)
	}
	if res.Result.Attempts != 3 {
		t.Fatalf("expected attempt 3 within new window, got %d", res.Result.Attempts)
	}
}

func TestThrottleIsPerUsername(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	for i := 0; i < 3; i++ {
		if _, err := f.service.Submit(submission("alice", answer(q.ID, 1))); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	if _, err := f.service.Submit(submission("bob", answer(q.ID, 1))); err != nil {
		t.Fatalf("different username must not be throttled: %v", err)
	}
}

func TestAnswerCountMismatch(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	_, err := f.service.Submit(submission("alice",
		answer(q.ID, 1),
		answer("1f2e3d4c-0000-4000-8000-000000000000", 0),
	))
	var mismatch *util.AnswerCountMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch error, got %v", err)
	}
	if mismatch.Submitted != 2 || mismatch.Found != 1 {
		t.Fatalf("expected 2 submitted / 1 found, got %+v", mismatch)
	}

	// 失败路径不产生部分结果
	if rs, _ := f.results.List(); len(rs) != 0 {
		t.Fatalf("partial result persisted: %d records", len(rs))
	}
}

func TestFilterExcludesReferencedQuestion(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	req := submission("alice", answer(q.ID, 1))
	req.Channel = "history-channel"

	var mismatch *util.AnswerCountMismatchError
	if _, err := f.service.Submit(req); !errors.As(err, &mismatch) {
		t.Fatalf("expected mismatch when filter excludes question, got %v", err)
	}
}

func TestDeleteResult(t *testing.T) {
	f := newScoringFixture(t)
	q := f.seedQuestion(t, "2+2?", 1)

	res, err := f.service.Submit(submission("alice", answer(q.ID, 1)))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	var invalidID *util.InvalidIDError
	if err := f.service.Delete("nope"); !errors.As(err, &invalidID) {
		t.Fatalf("expected invalid id error, got %v", err)
	}

	if err := f.service.Delete(res.Result.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := f.service.Delete(res.Result.ID); !errors.Is(err, util.ErrResultNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteAllResultsOnEmptyStore(t *testing.T) {
	f := newScoringFixture(t)

	if _, err := f.service.DeleteAll(); !errors.Is(err, util.ErrNothingDeleted) {
		t.Fatalf("expected nothing-to-delete error, got %v", err)
	}
}
