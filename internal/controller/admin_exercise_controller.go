package controller

import (
	"cs_hub_backend/internal/service"
	"cs_hub_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminExerciseController là bề mặt soạn bài cho admin: tạo bài tập
// mới trong content store và kích hoạt sync vào database.
type AdminExerciseController struct {
	Authoring *service.ExerciseAuthoringService
	Sync      *service.ExerciseSyncService
}

func NewAdminExerciseController(authoring *service.ExerciseAuthoringService, sync *service.ExerciseSyncService) *AdminExerciseController {
	return &AdminExerciseController{
		Authoring: authoring,
		Sync:      sync,
	}
}

// @Summary Danh sách môn học trong content store
// @Tags admin
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /api/admin/exercises/subjects [get]
func (c *AdminExerciseController) ListSubjects(ctx *gin.Context) {
	subjects, err := c.Authoring.ListSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"subjects": subjects})
}

// @Summary Tạo bài tập mới
// @Description Ghi README.md, solution.md, hints.md và assets/ vào content store.
// @Description Thư mục đã tồn tại mà không bật force thì trả 409 kèm đường dẫn.
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CreateExerciseRequest true "Thông tin bài tập"
// @Success 200 {object} util.Response{data=service.CreateExerciseResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/exercises [post]
func (c *AdminExerciseController) CreateExercise(ctx *gin.Context) {
	var req service.CreateExerciseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.Authoring.CreateExercise(req)
	if err != nil {
		var validationErr *util.ValidationError
		var existsErr *util.ExerciseExistsError
		switch {
		case errors.As(err, &validationErr):
			util.BadRequest(ctx, validationErr.Error())
		case errors.As(err, &existsErr):
			util.Conflict(ctx, "Bài tập đã tồn tại. Bật ghi đè để thay thế.", gin.H{
				"exists": true,
				"path":   existsErr.Path,
			})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{
		"ok":       true,
		"subject":  result.Subject,
		"chapter":  result.Chapter,
		"exercise": result.Exercise,
		"id":       result.ID,
		"path":     result.Path,
		"files":    result.Files,
	})
}

// @Summary Đồng bộ content store vào database
// @Description Chạy job sync; lỗi từng bài không chặn cả run nhưng làm run trả lỗi
// @Tags admin
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.SyncResult}
// @Failure 500 {object} util.Response
// @Router /api/admin/exercises/sync [post]
func (c *AdminExerciseController) TriggerSync(ctx *gin.Context) {
	result, err := c.Sync.Run(ctx.Request.Context())
	if err != nil {
		payload := gin.H{"details": err.Error()}
		if result != nil {
			payload["output"] = result.Output
			payload["synced"] = result.Synced
			payload["failed"] = result.Failed
		}
		ctx.JSON(http.StatusInternalServerError, util.Response{
			Code:    http.StatusInternalServerError,
			Message: "Sync thất bại",
			Data:    payload,
		})
		return
	}

	util.Success(ctx, result)
}
