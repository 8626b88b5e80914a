package controller

import (
	"cs_hub_backend/internal/service"
	"cs_hub_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExerciseController phục vụ phần đọc bài tập và flow nộp bài
type ExerciseController struct {
	Service *service.ExerciseService
}

func NewExerciseController(exerciseService *service.ExerciseService) *ExerciseController {
	return &ExerciseController{Service: exerciseService}
}

// @Summary Danh sách bài tập của một môn
// @Description Chỉ trả về bài tập đã publish, sắp theo chương rồi số bài
// @Tags exercises
// @Param slug path string true "Slug môn học"
// @Param chapter query int false "Lọc theo số chương"
// @Success 200 {object} util.Response
// @Router /api/subjects/{slug}/exercises [get]
func (c *ExerciseController) GetExercises(ctx *gin.Context) {
	subjectSlug := ctx.Param("slug")

	var chapter *int
	if raw := ctx.Query("chapter"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			util.BadRequest(ctx, "chapter phải là số dương")
			return
		}
		chapter = &n
	}

	exercises, err := c.Service.GetExercises(subjectSlug, chapter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exercises)
}

// @Summary Chi tiết một bài tập theo slug
// @Tags exercises
// @Param slug path string true "Slug bài tập"
// @Success 200 {object} util.Response{data=model.Exercise}
// @Failure 404 {object} util.Response
// @Router /api/exercises/{slug} [get]
func (c *ExerciseController) GetExercise(ctx *gin.Context) {
	exercise, err := c.Service.GetExerciseBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, exercise)
}

// @Summary Danh sách chương đã publish của một môn
// @Tags exercises
// @Param slug path string true "Slug môn học"
// @Success 200 {object} util.Response
// @Router /api/subjects/{slug}/chapters [get]
func (c *ExerciseController) GetChapters(ctx *gin.Context) {
	chapters, err := c.Service.GetChapters(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, chapters)
}

// @Summary Toàn bộ tiến độ bài tập của user hiện tại
// @Tags progress
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/progress [get]
func (c *ExerciseController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.Service.GetUserProgress(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary Phần trăm hoàn thành theo chương của một môn
// @Tags progress
// @Security ApiKeyAuth
// @Param slug path string true "Slug môn học"
// @Success 200 {object} util.Response
// @Router /api/subjects/{slug}/progress [get]
func (c *ExerciseController) GetChapterSummaries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summaries, err := c.Service.GetChapterSummaries(ctx.Request.Context(), ctx.Param("slug"), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summaries)
}

// @Summary Nộp bài tập
// @Description Ghi log nộp bài và cập nhật tiến độ; mọi lần nộp đều tính hoàn thành
// @Tags progress
// @Security ApiKeyAuth
// @Param slug path string true "Slug bài tập"
// @Success 200 {object} util.Response{data=model.UserExerciseProgress}
// @Failure 401 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/exercises/{slug}/submit [post]
func (c *ExerciseController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Answer string `json:"answer" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	progress, err := c.Service.Submit(claims.UserID, ctx.Param("slug"), req.Answer)
	if err != nil {
		if errors.Is(err, util.ErrExerciseNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
