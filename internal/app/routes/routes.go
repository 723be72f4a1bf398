package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushq/roster/internal/app/controllers"
	"github.com/campushq/roster/internal/app/models/dto"
	"github.com/campushq/roster/internal/middleware"
)

// SetupRouter configures all application routes. The paths match the legacy
// service exactly so existing clients keep working.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Public auth routes
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// Stored identity documents are readable without a token, as before.
	router.GET("/uploads/:name", uploadController.ServeUpload)

	// Protected record routes
	protected := router.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.POST("/add-contact", studentController.AddStudent)
		protected.GET("/view-contacts", studentController.ListStudents)
		protected.PUT("/edit-contact/:id", studentController.UpdateStudent)
		protected.DELETE("/delete-contact/:id", studentController.DeleteStudent)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.SuccessResponse{Message: "ok"})
	})
}
