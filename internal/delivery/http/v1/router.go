package v1

import (
	"net/http"

	"go-profile-builder/config"
	"go-profile-builder/internal/delivery/http/middleware"
	"go-profile-builder/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ProfileUC       domain.ProfileUsecase
	EducationUC     domain.EducationUsecase
	SkillUC         domain.SkillUsecase
	ExperienceUC    domain.ExperienceUsecase
	ProjectUC       domain.ProjectUsecase
	CertificationUC domain.CertificationUsecase
	ExternalLinkUC  domain.ExternalLinkUsecase
	ResumeFileUC    domain.ResumeFileUsecase
	Config          *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewProfileHandler(api, deps.ProfileUC)
	NewEducationHandler(api, deps.EducationUC)
	NewSkillHandler(api, deps.SkillUC)
	NewExperienceHandler(api, deps.ExperienceUC)
	NewProjectHandler(api, deps.ProjectUC)
	NewCertificationHandler(api, deps.CertificationUC)
	NewExternalLinkHandler(api, deps.ExternalLinkUC)
	NewResumeFileHandler(api, deps.ResumeFileUC)

	return r
}
