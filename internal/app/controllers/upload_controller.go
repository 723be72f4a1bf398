package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/roster/internal/middleware"
	"github.com/campushq/roster/internal/pkg/filestorage"
)

// UploadController serves stored identity documents by name.
type UploadController struct {
	storage *filestorage.LocalStorage
}

// NewUploadController creates a new UploadController.
func NewUploadController(storage *filestorage.LocalStorage) *UploadController {
	return &UploadController{storage: storage}
}

// ServeUpload streams a stored file back to the caller.
func (c *UploadController) ServeUpload(ctx *gin.Context) {
	fullPath, err := c.storage.Resolve(ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.File(fullPath)
}
