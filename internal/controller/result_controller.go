package controller

import (
	"errors"

	"quiz_backend/internal/middleware"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"
	"quiz_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	Service *service.ResultService
}

func NewResultController(svc *service.ResultService) *ResultController {
	return &ResultController{Service: svc}
}

// @Summary 获取全部答题结果
// @Tags 结果模块
// @Produce json
// @Success 200 {object} util.Response
// @Router /result [get]
func (c *ResultController) ListResults(ctx *gin.Context) {
	rs, err := c.Service.List()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "results retrieved", rs)
}

// @Summary 提交答题并评分
// @Description 同一用户名20分钟内最多3次提交，超出返回429并告知等待分钟数
// @Tags 结果模块
// @Accept json
// @Produce json
// @Param body body service.ResultReq true "答题内容"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Failure 429 {object} util.Response
// @Router /result [post]
func (c *ResultController) StoreResult(ctx *gin.Context) {
	req := ctx.MustGet(middleware.ResultBodyKey).(service.ResultReq)

	res, err := c.Service.Submit(req)
	if err != nil {
		var rateLimited *util.RateLimitError
		if errors.As(err, &rateLimited) {
			monitoring.ThrottledSubmissions.Inc()
		}
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "result stored successfully", res)
}

// @Summary 删除答题结果
// @Tags 结果模块
// @Produce json
// @Param id path string true "结果ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /result/{id} [delete]
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.Service.Delete(id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "result deleted successfully", gin.H{"deleted": id})
}

// @Summary 清空答题结果
// @Tags 结果模块
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /result/all [delete]
func (c *ResultController) DeleteAllResults(ctx *gin.Context) {
	deleted, err := c.Service.DeleteAll()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "results deleted successfully", gin.H{"deleted": deleted})
}
