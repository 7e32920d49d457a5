package util

import (
	"errors"
	"fmt"
)

var (
	ErrQuestionNotFound  = errors.New("question not found")
	ErrResultNotFound    = errors.New("result not found")
	ErrDuplicateQuestion = errors.New("an identical question already exists")
	ErrNothingDeleted    = errors.New("nothing to delete")
)

// InvalidIDError 标识格式不合法（不是有效的UUID）
type InvalidIDError struct {
	ID string
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid id: %q", e.ID)
}

// RateLimitError 同一用户名在滑动窗口内的提交次数已达上限
type RateLimitError struct {
	Attempts    int
	WaitMinutes int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("attempt limit reached (%d), retry in %d minute(s)", e.Attempts, e.WaitMinutes)
}

// AnswerCountMismatchError 提交的答案数与检索到的题目数不一致，
// 可能是过期、伪造或被过滤条件排除的题目引用
type AnswerCountMismatchError struct {
	Submitted int
	Found     int
}

func (e *AnswerCountMismatchError) Error() string {
	return fmt.Sprintf("submitted %d answers but resolved %d questions", e.Submitted, e.Found)
}

// MissingQuestionError 提交中引用的题目不存在
type MissingQuestionError struct {
	QuestionID string
}

func (e *MissingQuestionError) Error() string {
	return fmt.Sprintf("referenced question %s not found", e.QuestionID)
}
