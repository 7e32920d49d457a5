package middleware

import (
	"fmt"
	"strings"

	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 校验通过后解析好的请求体放入 gin context，处理器按键取用
const (
	QuestionBodyKey = "validatedQuestion"
	ResultBodyKey   = "validatedResult"
)

// ValidateQuestion 校验建题请求，收集全部违规项而不是遇错即停
func ValidateQuestion() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.QuestionReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.ValidationFailed(c, []string{"request body must be valid JSON: " + err.Error()})
			return
		}

		var violations []string

		if strings.TrimSpace(req.Question) == "" {
			violations = append(violations, "question is required")
		}

		if req.Answers == nil {
			violations = append(violations, "answers is required")
		} else if len(req.Answers) != model.AnswerCount {
			violations = append(violations, fmt.Sprintf("answers must contain exactly %d items", model.AnswerCount))
		} else {
			for i, a := range req.Answers {
				if strings.TrimSpace(a) == "" {
					violations = append(violations, fmt.Sprintf("answers[%d] must not be empty", i))
				}
			}
		}

		if req.CorrectAnswerIndex == nil {
			violations = append(violations, "correctAnswerIndex is required")
		} else if *req.CorrectAnswerIndex < 0 || *req.CorrectAnswerIndex > model.AnswerCount-1 {
			violations = append(violations, fmt.Sprintf("correctAnswerIndex must be between 0 and %d", model.AnswerCount-1))
		}

		for _, tag := range []struct {
			name  string
			value string
		}{
			{"channel", req.Channel},
			{"course", req.Course},
			{"topic", req.Topic},
			{"lecture", req.Lecture},
		} {
			if strings.TrimSpace(tag.value) == "" {
				violations = append(violations, tag.name+" is required")
			}
		}

		if len(violations) > 0 {
			util.ValidationFailed(c, violations)
			return
		}

		c.Set(QuestionBodyKey, req)
		c.Next()
	}
}

// ValidateResult 校验答题提交请求
func ValidateResult() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ResultReq
		if err := c.ShouldBindJSON(&req); err != nil {
			util.ValidationFailed(c, []string{"request body must be valid JSON: " + err.Error()})
			return
		}

		var violations []string

		if strings.TrimSpace(req.Username) == "" {
			violations = append(violations, "username is required")
		}

		if len(req.Result) == 0 {
			violations = append(violations, "result must be a non-empty array")
		}
		for i, a := range req.Result {
			if strings.TrimSpace(a.QuestionID) == "" {
				violations = append(violations, fmt.Sprintf("result[%d].questionId is required", i))
			}
			if a.SelectedAnswer == nil {
				violations = append(violations, fmt.Sprintf("result[%d].selectedAnswer is required", i))
			} else if *a.SelectedAnswer < 0 || *a.SelectedAnswer > model.AnswerCount-1 {
				violations = append(violations, fmt.Sprintf("result[%d].selectedAnswer must be between 0 and %d", i, model.AnswerCount-1))
			}
		}

		if len(violations) > 0 {
			util.ValidationFailed(c, violations)
			return
		}

		c.Set(ResultBodyKey, req)
		c.Next()
	}
}
