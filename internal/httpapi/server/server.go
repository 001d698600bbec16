package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/redhat-data-and-ai/coursenaut/internal/httpapi/handlers"
	"github.com/redhat-data-and-ai/coursenaut/internal/httpapi/middleware"
	"github.com/redhat-data-and-ai/coursenaut/pkg/config"
	"github.com/redhat-data-and-ai/coursenaut/pkg/store"
)

const shutdownTimeout = 10 * time.Second

type APIServer struct {
	config   *config.AppConfig
	store    store.StoreInterface
	handlers *handlers.Handlers
	router   *gin.Engine
	server   *http.Server
}

func NewAPIServer(cfg *config.AppConfig, dataStore store.StoreInterface) *APIServer {
	if cfg.App.Environment == "local" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &APIServer{
		config:   cfg,
		store:    dataStore,
		handlers: handlers.NewHandlers(cfg, dataStore),
		router:   gin.New(),
	}

	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(&s.config.APIServer))

	s.setupRoutes()
	return s
}

// Handler exposes the router, mainly for tests.
func (s *APIServer) Handler() http.Handler {
	return s.router
}

func (s *APIServer) setupRoutes() {
	h := s.handlers

	v1 := s.router.Group("/api/v1")
	v1.GET("/status", h.GetStatus)

	api := v1.Group("")
	api.Use(middleware.Auth(s.config, s.store.GetUserStore()))

	courses := api.Group("/courses")
	courses.GET("", h.ListCourses)
	courses.POST("", h.CreateCourse)
	courses.GET("/:courseId", h.GetCourse)
	courses.PUT("/:courseId", h.EditCourse)
	courses.DELETE("/:courseId", h.DeleteCourse)
	courses.POST("/:courseId/approve", h.ApproveCourse)
	courses.POST("/:courseId/reject", h.RejectCourse)

	courses.GET("/:courseId/students", h.GetCourseStudents)
	courses.POST("/:courseId/enrollments", h.EnrollStudent)
	courses.DELETE("/:courseId/enrollments/:studentId", h.UnenrollStudent)

	courses.POST("/:courseId/lessons", h.AddLesson)
	courses.PUT("/:courseId/lessons/:lessonId", h.EditLesson)
	courses.DELETE("/:courseId/lessons/:lessonId", h.DeleteLesson)
	courses.PUT("/:courseId/lessons/:lessonId/quiz", h.SetLessonQuiz)
	courses.PUT("/:courseId/lessons/:lessonId/resources", h.SetLessonResources)
	courses.POST("/:courseId/lessons/:lessonId/attempts", h.SubmitQuizAttempt)

	users := api.Group("/users")
	users.GET("", h.ListUsers)
	users.POST("", h.CreateUser)
	users.GET("/:userId", h.GetUser)
	users.GET("/:userId/certificates", h.GetCertificates)
	users.POST("/:userId/courses/:courseId/certificate", h.IssueCertificate)
	users.GET("/:userId/courses/:courseId/completion", h.GetCompletion)

	api.POST("/admin/repair", h.RepairBackReferences)
}

// Start serves until ctx is cancelled, then shuts the server down gracefully.
func (s *APIServer) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.config.APIServer.Host, s.config.APIServer.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.stopOnDone(ctx)

	logrus.WithField("address", s.server.Addr).Info("starting http API server")
	if err := s.server.ListenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			logrus.Info("http API server stopped")
			return nil
		}
		return fmt.Errorf("failed to start http API server: %w", err)
	}
	return nil
}

func (s *APIServer) stopOnDone(ctx context.Context) {
	<-ctx.Done()
	logrus.Info("turning down http API server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("error during http API server shutdown")
	}
}
