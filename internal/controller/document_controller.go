package controller

import (
	"cs_hub_backend/internal/service"
	"cs_hub_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type DocumentController struct {
	Service *service.DocumentService
}

func NewDocumentController(documentService *service.DocumentService) *DocumentController {
	return &DocumentController{Service: documentService}
}

// @Summary Danh sách tài liệu
// @Tags documents
// @Param subject query string false "Lọc theo slug môn học"
// @Param chapterId query int false "Lọc theo chương"
// @Param search query string false "Tìm theo tiêu đề/mô tả"
// @Success 200 {object} util.Response
// @Router /api/documents [get]
func (c *DocumentController) GetDocuments(ctx *gin.Context) {
	var chapterID *uint
	if raw := ctx.Query("chapterId"); raw != "" {
		id := util.MustParseUint(raw)
		if id == 0 {
			util.BadRequest(ctx, "chapterId không hợp lệ")
			return
		}
		chapterID = &id
	}

	documents, err := c.Service.GetDocuments(ctx.Query("subject"), chapterID, ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, documents)
}

// @Summary Chi tiết tài liệu
// @Tags documents
// @Param id path int true "ID tài liệu"
// @Success 200 {object} util.Response{data=model.Document}
// @Failure 404 {object} util.Response
// @Router /api/documents/{id} [get]
func (c *DocumentController) GetDocument(ctx *gin.Context) {
	document, err := c.Service.GetDocument(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, document)
}

// @Summary Tải lên tài liệu mới
// @Tags documents
// @Accept mpfd
// @Security ApiKeyAuth
// @Success 201 {object} util.Response{data=model.Document}
// @Router /api/documents [post]
func (c *DocumentController) UploadDocument(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "thiếu file tải lên")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	var chapterID *uint
	if raw := ctx.PostForm("chapterId"); raw != "" {
		id := util.MustParseUint(raw)
		if id == 0 {
			util.BadRequest(ctx, "chapterId không hợp lệ")
			return
		}
		chapterID = &id
	}

	document, err := c.Service.Upload(ctx.Request.Context(), claims.UserID, service.UploadDocumentRequest{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		SubjectSlug: ctx.PostForm("subject"),
		ChapterID:   chapterID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	})
	if err != nil {
		var validationErr *util.ValidationError
		switch {
		case errors.As(err, &validationErr):
			util.BadRequest(ctx, validationErr.Error())
		case errors.Is(err, util.ErrSubjectNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, document)
}

// @Summary Ghi nhận lượt tải và trả về URL file
// @Tags documents
// @Param id path int true "ID tài liệu"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/documents/{id}/download [post]
func (c *DocumentController) DownloadDocument(ctx *gin.Context) {
	document, err := c.Service.Download(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrDocumentNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"fileUrl": document.FileURL, "downloads": document.Downloads})
}
