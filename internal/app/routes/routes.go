// Package routes wires controllers and guards into the Gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/controllers"
	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/middleware"
)

// Controllers groups the handlers the router mounts.
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Admin   *controllers.AdminController
}

// SetupRoutes registers all API routes. Guarded groups run RequireAuth
// before any role check, so an unauthenticated caller always sees 401
// rather than 403.
func SetupRoutes(router *gin.Engine, ctrl Controllers, authMw *middleware.AuthMiddleware) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/signup", ctrl.Auth.Signup)
		auth.POST("/login", ctrl.Auth.Login)
		auth.POST("/logout", authMw.RequireAuth(), ctrl.Auth.Logout)
		auth.POST("/create-admin",
			authMw.RequireAuth(), authMw.RoleRequired(models.RoleAdmin),
			ctrl.Auth.CreateAdmin)
	}

	admin := api.Group("/admin",
		authMw.RequireAuth(), authMw.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/students", ctrl.Admin.ListStudents)
		admin.GET("/student/:id", ctrl.Admin.GetStudent)
		admin.POST("/student", ctrl.Admin.AddStudent)
	}

	students := api.Group("/students", authMw.RequireAuth())
	{
		students.POST("/submit-details",
			authMw.RoleRequired(models.RoleStudent), ctrl.Student.SubmitDetails)
		students.GET("/get-details",
			authMw.RoleRequired(models.RoleStudent), ctrl.Student.GetDetails)
		// Downloads are open to any authenticated session so admins can
		// fetch submitted artifacts
		students.GET("/download-file/:kind/:filename", ctrl.Student.DownloadFile)
	}
}
