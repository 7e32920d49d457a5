package util

import (
	"errors"
	"net/http"
	"quiz_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 统一响应结构
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, Response{
		Status:  status,
		Message: message,
	})
}

// ValidationFailed 返回全部校验错误，而不仅是第一条
func ValidationFailed(c *gin.Context, violations []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  http.StatusBadRequest,
		Message: "validation failed",
		Errors:  violations,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error", zap.Error(err))
	InternalServerError(c)
}

// HandleError 集中式错误响应：按错误类别映射状态码，
// 未识别的错误记录日志并返回通用500，不向客户端泄露内部细节。
func HandleError(c *gin.Context, err error) {
	var invalidID *InvalidIDError
	var rateLimited *RateLimitError
	var mismatch *AnswerCountMismatchError
	var missing *MissingQuestionError

	switch {
	case errors.As(err, &invalidID):
		BadRequest(c, invalidID.Error())
	case errors.As(err, &mismatch):
		BadRequest(c, mismatch.Error())
	case errors.As(err, &missing):
		NotFound(c, missing.Error())
	case errors.Is(err, ErrQuestionNotFound),
		errors.Is(err, ErrResultNotFound),
		errors.Is(err, ErrNothingDeleted):
		NotFound(c, err.Error())
	case errors.Is(err, ErrDuplicateQuestion):
		Conflict(c, err.Error())
	case errors.As(err, &rateLimited):
		c.JSON(http.StatusTooManyRequests, Response{
			Status:  http.StatusTooManyRequests,
			Message: rateLimited.Error(),
			Data: gin.H{
				"attempts":    rateLimited.Attempts,
				"waitMinutes": rateLimited.WaitMinutes,
			},
		})
	default:
		LogInternalError(c, err)
	}
}
