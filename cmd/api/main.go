package main

import (
	"context"
	"go-profile-builder/config"
	_ "go-profile-builder/docs" // Important for Swagger
	v1 "go-profile-builder/internal/delivery/http/v1"
	"go-profile-builder/internal/domain"
	"go-profile-builder/internal/repository/memory"
	"go-profile-builder/internal/repository/postgres"
	"go-profile-builder/internal/usecase"
	"go-profile-builder/pkg/database"
	"go-profile-builder/pkg/logger"
	"go-profile-builder/pkg/upload"
	"go-profile-builder/pkg/validation"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type repositories struct {
	profiles       domain.ProfileRepository
	education      domain.EducationRepository
	skills         domain.SkillRepository
	experience     domain.ExperienceRepository
	projects       domain.ProjectRepository
	certifications domain.CertificationRepository
	externalLinks  domain.ExternalLinkRepository
	resumeFiles    domain.ResumeFileRepository
}

// @title           Profile Builder API
// @version         1.0
// @description     Backend for a single-user resume and profile builder using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting profile builder backend", "port", cfg.Port)

	// 3. Setup Repositories
	var repos repositories
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		repos = repositories{
			profiles:       postgres.NewProfileRepository(dbPool),
			education:      postgres.NewEducationRepository(dbPool),
			skills:         postgres.NewSkillRepository(dbPool),
			experience:     postgres.NewExperienceRepository(dbPool),
			projects:       postgres.NewProjectRepository(dbPool),
			certifications: postgres.NewCertificationRepository(dbPool),
			externalLinks:  postgres.NewExternalLinkRepository(dbPool),
			resumeFiles:    postgres.NewResumeFileRepository(dbPool),
		}
	} else {
		logger.Log.Info("DATABASE_URL not set, using in-memory storage")
		repos = repositories{
			profiles:       memory.NewProfileRepository(),
			education:      memory.NewEducationRepository(),
			skills:         memory.NewSkillRepository(),
			experience:     memory.NewExperienceRepository(),
			projects:       memory.NewProjectRepository(),
			certifications: memory.NewCertificationRepository(),
			externalLinks:  memory.NewExternalLinkRepository(),
			resumeFiles:    memory.NewResumeFileRepository(),
		}
	}

	// 4. Seed a blank profile so the frontend always has id 1 to edit
	seedDefaultProfile(repos.profiles)

	// 5. Setup File Store
	fileStore, err := upload.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logger.Log.Error("Failed to prepare upload directory", "error", err)
		os.Exit(1)
	}

	// 6. Setup UseCases
	validate := validation.New()
	profileUC := usecase.NewProfileUsecase(usecase.ProfileDeps{
		Profiles:       repos.profiles,
		Education:      repos.education,
		Skills:         repos.skills,
		Experience:     repos.experience,
		Projects:       repos.projects,
		Certifications: repos.certifications,
		ExternalLinks:  repos.externalLinks,
		ResumeFiles:    repos.resumeFiles,
	}, validate)
	educationUC := usecase.NewEducationUsecase(repos.education, validate)
	skillUC := usecase.NewSkillUsecase(repos.skills, validate)
	experienceUC := usecase.NewExperienceUsecase(repos.experience, validate)
	projectUC := usecase.NewProjectUsecase(repos.projects, validate)
	certificationUC := usecase.NewCertificationUsecase(repos.certifications, validate)
	externalLinkUC := usecase.NewExternalLinkUsecase(repos.externalLinks, validate)
	resumeFileUC := usecase.NewResumeFileUsecase(repos.resumeFiles, fileStore, cfg.MaxUploadBytes)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:       profileUC,
		EducationUC:     educationUC,
		SkillUC:         skillUC,
		ExperienceUC:    experienceUC,
		ProjectUC:       projectUC,
		CertificationUC: certificationUC,
		ExternalLinkUC:  externalLinkUC,
		ResumeFileUC:    resumeFileUC,
		Config:          cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// seedDefaultProfile creates the blank profile with id 1 on first boot.
// The create goes straight to the repository so required-field validation
// does not reject the empty seed.
func seedDefaultProfile(profiles domain.ProfileRepository) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	existing, err := profiles.GetByID(ctx, 1)
	if err != nil {
		logger.Log.Error("Failed to check for default profile", "error", err)
		return
	}
	if existing != nil {
		return
	}

	if _, err := profiles.Create(ctx, domain.InsertProfile{}); err != nil {
		logger.Log.Error("Failed to seed default profile", "error", err)
	}
}
