package v1

import (
	"prajnayana/internal/config"
	"prajnayana/internal/database"
	"prajnayana/internal/delivery/http/handler"
	"prajnayana/internal/delivery/http/middleware"
	"prajnayana/internal/pkg/jwt"
	"prajnayana/internal/repository"
	"prajnayana/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.ContentCache) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	questionRepo := repository.NewPostgresQuestionRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)
	habitRepo := repository.NewPostgresHabitRepository(db)
	trackingRepo := repository.NewPostgresTrackingRepository(db)
	journalRepo := repository.NewPostgresJournalRepository(db)
	hubRepo := repository.NewPostgresHubRepository(db)
	articleRepo := repository.NewPostgresArticleRepository(db)
	visionBoardRepo := repository.NewPostgresVisionBoardRepository(db)

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	userUC := usecase.NewUserUsecase(userRepo)
	questionnaireUC := usecase.NewQuestionnaireUsecase(questionRepo, sessionRepo)
	habitUC := usecase.NewHabitUsecase(habitRepo, trackingRepo)
	journalUC := usecase.NewJournalUsecase(journalRepo)
	contentUC := usecase.NewContentUsecase(hubRepo, articleRepo, userRepo, cache)
	visionBoardUC := usecase.NewVisionBoardUsecase(visionBoardRepo)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(userUC)
	questionHandler := handler.NewQuestionHandler(questionnaireUC)
	sessionHandler := handler.NewTestSessionHandler(questionnaireUC)
	responseHandler := handler.NewResponseHandler(questionnaireUC)
	habitHandler := handler.NewHabitHandler(habitUC)
	trackingHandler := handler.NewTrackingHandler(habitUC)
	journalHandler := handler.NewJournalHandler(journalUC)
	hubHandler := handler.NewKnowledgeHubHandler(contentUC)
	articleHandler := handler.NewArticleHandler(contentUC)
	visionBoardHandler := handler.NewVisionBoardHandler(visionBoardUC)

	authHandler.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/users"))
	questionHandler.RegisterRoutes(protected.Group("/discovery-questions"))
	sessionHandler.RegisterRoutes(protected.Group("/test-sessions"))
	responseHandler.RegisterRoutes(protected.Group("/responses"))
	habitHandler.RegisterRoutes(protected.Group("/habits"))
	trackingHandler.RegisterRoutes(protected.Group("/habit-tracking"))
	journalHandler.RegisterRoutes(protected.Group("/journal"))
	hubHandler.RegisterRoutes(protected.Group("/knowledge-hubs"))
	articleHandler.RegisterRoutes(protected.Group("/articles"))
	visionBoardHandler.RegisterRoutes(protected.Group("/vision-board"))
}
