package service

import (
	"math"
	"strings"
	"time"

	"quiz_backend/internal/model"
	"quiz_backend/internal/util"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	// MaxAttempts 同一用户名在窗口内允许的提交次数
	MaxAttempts = 3
	// AttemptWindow 限流滑动窗口
	AttemptWindow = 20 * time.Minute
	// PassThreshold 及格线（百分比），恰好达到即为通过
	PassThreshold = 70.0

	AchievedPassed = "passed"
	AchievedFailed = "failed"
)

type ResultService struct {
	Questions  QuestionStore
	Results    ResultStore
	BcryptCost int

	now func() time.Time
}

func NewResultService(questions QuestionStore, results ResultStore, bcryptCost int) *ResultService {
	return &ResultService{
		Questions:  questions,
		Results:    results,
		BcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// NewResultServiceWithClock 测试专用，注入确定性时钟
func NewResultServiceWithClock(questions QuestionStore, results ResultStore, bcryptCost int, now func() time.Time) *ResultService {
	s := NewResultService(questions, results, bcryptCost)
	s.now = now
	return s
}

type AnswerReq struct {
	QuestionID     string `json:"questionId"`
	SelectedAnswer *int   `json:"selectedAnswer"`
}

type ResultReq struct {
	Username string      `json:"username"`
	Result   []AnswerReq `json:"result"`
	Channel  string      `json:"channel"`
	Course   string      `json:"course"`
	Topic    string      `json:"topic"`
	Lecture  string      `json:"lecture"`
}

func (r ResultReq) filter() model.QuestionFilter {
	return model.QuestionFilter{
		Channel: strings.TrimSpace(r.Channel),
		Course:  strings.TrimSpace(r.Course),
		Topic:   strings.TrimSpace(r.Topic),
		Lecture: strings.TrimSpace(r.Lecture),
	}
}

// SubmittedResult 评分响应：保存的记录、一次性的原始用户令牌和剩余次数
type SubmittedResult struct {
	Result            *model.Result `json:"result"`
	UserToken         string        `json:"userToken"`
	PassedQuestions   int           `json:"passedQuestions"`
	TotalQuestions    int           `json:"totalQuestions"`
	PercentageScore   float64       `json:"percentageScore"`
	Achieved          string        `json:"achieved"`
	AttemptsRemaining int           `json:"attemptsRemaining"`
}

// Submit 评分与限流：任何失败路径都不落库。
// 限流检查和写入之间没有事务保护，同名并发提交可能短暂超过上限（接受的限制）。
func (s *ResultService) Submit(req ResultReq) (*SubmittedResult, error) {
	username := strings.TrimSpace(req.Username)
	now := s.now()
	windowStart := now.Add(-AttemptWindow)

	// 1. 限流：窗口内已有 MaxAttempts 次则拒绝，并告知等待时间
	attempts, err := s.Results.CountSince(username, windowStart)
	if err != nil {
		return nil, err
	}
	if attempts >= MaxAttempts {
		oldest, err := s.Results.OldestSince(username, windowStart)
		if err != nil {
			return nil, err
		}
		wait := 1
		if oldest != nil {
			remaining := AttemptWindow - now.Sub(oldest.CreatedAt)
			wait = int(math.Ceil(remaining.Minutes()))
			if wait < 1 {
				wait = 1
			}
		}
		return nil, &util.RateLimitError{Attempts: int(attempts), WaitMinutes: wait}
	}

	// 2. 取出所有被引用的题目，数量不符说明引用过期或被过滤条件排除
	ids := make([]string, 0, len(req.Result))
	for _, a := range req.Result {
		ids = append(ids, a.QuestionID)
	}
	questions, err := s.Questions.FindByIDs(ids, req.filter())
	if err != nil {
		return nil, err
	}
	if len(questions) != len(req.Result) {
		return nil, &util.AnswerCountMismatchError{Submitted: len(req.Result), Found: len(questions)}
	}

	byID := make(map[string]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	// 3. 逐题比对
	outcomes := make([]model.AnswerResult, 0, len(req.Result))
	passed := 0
	for _, a := range req.Result {
		q, ok := byID[a.QuestionID]
		if !ok {
			return nil, &util.MissingQuestionError{QuestionID: a.QuestionID}
		}
		correct := *a.SelectedAnswer == q.CorrectAnswerIndex
		if correct {
			passed++
		}
		outcomes = append(outcomes, model.AnswerResult{
			QuestionID:     a.QuestionID,
			SelectedAnswer: *a.SelectedAnswer,
			Correct:        correct,
		})
	}

	// 4. 计算得分与判定
	total := len(outcomes)
	percentage := float64(passed) / float64(total) * 100
	achieved := AchievedFailed
	if percentage >= PassThreshold {
		achieved = AchievedPassed
	}
	points := int(math.Round(percentage))

	// 5. 生成一次性用户令牌，只存哈希
	rawToken := uuid.New().String()
	hashed, err := bcrypt.GenerateFromPassword([]byte(rawToken), s.BcryptCost)
	if err != nil {
		return nil, err
	}

	// 6. 落库
	record := &model.Result{
		UserID:          string(hashed),
		Username:        username,
		Result:          outcomes,
		Attempts:        int(attempts) + 1,
		Points:          points,
		Achieved:        achieved,
		PassedQuestions: passed,
		TotalQuestions:  total,
		PercentageScore: percentage,
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	if err := s.Results.Create(record); err != nil {
		return nil, err
	}

	return &SubmittedResult{
		Result:            record,
		UserToken:         rawToken,
		PassedQuestions:   passed,
		TotalQuestions:    total,
		PercentageScore:   percentage,
		Achieved:          achieved,
		AttemptsRemaining: MaxAttempts - record.Attempts,
	}, nil
}

func (s *ResultService) List() ([]model.Result, error) {
	return s.Results.List()
}

func (s *ResultService) Delete(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return &util.InvalidIDError{ID: id}
	}

	deleted, err := s.Results.Delete(id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return util.ErrResultNotFound
	}
	return nil
}

func (s *ResultService) DeleteAll() (int64, error) {
	deleted, err := s.Results.DeleteAll()
	if err != nil {
		return 0, err
	}
	if deleted == 0 {
		return 0, util.ErrNothingDeleted
	}
	return deleted, nil
}
