package controller

import (
	"cs_hub_backend/internal/model"
	"cs_hub_backend/internal/service"
	"cs_hub_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type SubjectController struct {
	Service *service.SubjectService
}

func NewSubjectController(subjectService *service.SubjectService) *SubjectController {
	return &SubjectController{Service: subjectService}
}

// @Summary Danh sách môn học kèm số chương và tài liệu
// @Tags subjects
// @Success 200 {object} util.Response
// @Router /api/subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.Service.GetSubjects()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subjects)
}

// @Summary Chi tiết môn học kèm các chương
// @Tags subjects
// @Param slug path string true "Slug môn học"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/subjects/{slug} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	subject, err := c.Service.GetSubjectBySlug(ctx.Param("slug"))
	if err != nil {
		if errors.Is(err, util.ErrSubjectNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, subject)
}

// @Summary Tạo môn học mới (admin)
// @Tags admin
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Subject}
// @Router /api/admin/subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=255"`
		Slug        string `json:"slug"`
		Category    string `json:"category"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Color       string `json:"color"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	subject := model.Subject{
		Name:        req.Name,
		Slug:        req.Slug,
		Category:    model.SubjectCategory(req.Category),
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
	}
	if err := c.Service.CreateSubject(&subject); err != nil {
		var validationErr *util.ValidationError
		if errors.As(err, &validationErr) {
			util.BadRequest(ctx, validationErr.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, subject)
}
