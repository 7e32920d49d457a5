package controller

import (
	"quiz_backend/internal/middleware"
	"quiz_backend/internal/model"
	"quiz_backend/internal/service"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(svc *service.QuestionService) *QuestionController {
	return &QuestionController{Service: svc}
}

func bindFilter(ctx *gin.Context) model.QuestionFilter {
	var filter model.QuestionFilter
	_ = ctx.ShouldBindQuery(&filter)
	// 前端历史上用 lessons 传讲次，同时兼容 lecture
	if filter.Lecture == "" {
		filter.Lecture = ctx.Query("lecture")
	}
	return filter
}

// @Summary 获取题目列表
// @Description 可按 channel/course/topic/lessons 过滤
// @Tags 题目模块
// @Produce json
// @Param channel query string false "频道"
// @Param course query string false "课程"
// @Param topic query string false "主题"
// @Param lessons query string false "讲次"
// @Success 200 {object} util.Response
// @Router /questions [get]
func (c *QuestionController) ListQuestions(ctx *gin.Context) {
	qs, err := c.Service.List(bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "questions retrieved", qs)
}

// @Summary 获取题目紧凑列表
// @Description 每行包含按下标解析出的正确答案文本
// @Tags 题目模块
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions/list [get]
func (c *QuestionController) CompactList(ctx *gin.Context) {
	rows, err := c.Service.CompactList(bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "questions retrieved", rows)
}

// @Summary 搜索题目
// @Description 与列表相同的过滤条件，结构化输出
// @Tags 题目模块
// @Produce json
// @Success 200 {object} util.Response
// @Router /questions/search [get]
func (c *QuestionController) SearchQuestions(ctx *gin.Context) {
	res, err := c.Service.Search(bindFilter(ctx))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "questions retrieved", res)
}

// @Summary 获取单个题目
// @Tags 题目模块
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [get]
func (c *QuestionController) GetQuestion(ctx *gin.Context) {
	q, err := c.Service.Get(ctx.Param("id"))
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "question retrieved", q)
}

// @Summary 新建题目
// @Description 题干重复时返回409
// @Tags 题目模块
// @Accept json
// @Produce json
// @Param body body service.QuestionReq true "题目信息"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /questions [post]
func (c *QuestionController) CreateQuestion(ctx *gin.Context) {
	req := ctx.MustGet(middleware.QuestionBodyKey).(service.QuestionReq)

	q, err := c.Service.Create(req)
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Created(ctx, "question added successfully", q)
}

// @Summary 删除题目
// @Tags 题目模块
// @Produce json
// @Param id path string true "题目ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/{id} [delete]
func (c *QuestionController) DeleteQuestion(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := c.Service.Delete(id); err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "question deleted successfully", gin.H{"deleted": id})
}

// @Summary 清空题库
// @Tags 题目模块
// @Produce json
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /questions/all [delete]
func (c *QuestionController) DeleteAllQuestions(ctx *gin.Context) {
	deleted, err := c.Service.DeleteAll()
	if err != nil {
		util.HandleError(ctx, err)
		return
	}

	util.Success(ctx, "questions deleted successfully", gin.H{"deleted": deleted})
}
