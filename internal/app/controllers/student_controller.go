package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/app/services"
	"github.com/gradpath/intake/internal/middleware"
	"github.com/gradpath/intake/internal/pkg/filestorage"
)

// StudentController handles a student's own application record.
type StudentController struct {
	studentService services.StudentService
	storage        *filestorage.LocalStorage
	maxUploadSize  int64
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, storage *filestorage.LocalStorage, maxUploadSize int64) *StudentController {
	return &StudentController{
		studentService: studentService,
		storage:        storage,
		maxUploadSize:  maxUploadSize,
	}
}

// SubmitDetails handles POST /api/students/submit-details. The request
// is multipart form data: text fields plus optional transcript, cv and
// photo file parts. The whole body is capped at the configured limit.
func (c *StudentController) SubmitDetails(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
		return
	}

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, c.maxUploadSize)

	var req dto.SubmitDetailsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ctx.JSON(http.StatusRequestEntityTooLarge, dto.NewError("Request is too large"))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid form data"))
		return
	}

	files := make(map[filestorage.Kind]*multipart.FileHeader, len(filestorage.Kinds))
	for _, kind := range filestorage.Kinds {
		fileHeader, err := ctx.FormFile(string(kind))
		if err != nil {
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid form data"))
			return
		}
		files[kind] = fileHeader
	}

	if err := c.studentService.SubmitDetails(ctx.Request.Context(), userID, req, files); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessage("Details submitted successfully."))
}

// GetDetails handles GET /api/students/get-details
func (c *StudentController) GetDetails(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
		return
	}

	details, err := c.studentService.GetDetails(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// DownloadFile handles GET /api/students/download-file/:kind/:filename.
// Any authenticated session may fetch stored artifacts; the filename is
// reduced to its base name before touching the filesystem.
func (c *StudentController) DownloadFile(ctx *gin.Context) {
	kind, ok := filestorage.ParseKind(ctx.Param("kind"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Invalid file type requested."))
		return
	}

	fullPath, err := c.storage.ResolveDownload(kind, ctx.Param("filename"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(fullPath, ctx.Param("filename"))
}
