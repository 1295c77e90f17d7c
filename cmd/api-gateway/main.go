package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/noah-isme/tutor-booking-api/internal/handler"
	internalmw "github.com/noah-isme/tutor-booking-api/internal/middleware"
	"github.com/noah-isme/tutor-booking-api/internal/repository"
	"github.com/noah-isme/tutor-booking-api/internal/seed"
	"github.com/noah-isme/tutor-booking-api/internal/service"
	"github.com/noah-isme/tutor-booking-api/pkg/config"
	"github.com/noah-isme/tutor-booking-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-booking-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-booking-api/pkg/middleware/requestid"
)

// @title Tutor Booking API
// @version 0.1.0
// @description Student-tutor booking demo: matching, availability and sessions
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	tutorStore := repository.NewTutorStore()
	studentStore := repository.NewStudentStore()
	patternStore := repository.NewPatternStore()
	slotStore := repository.NewSlotStore()
	sessionStore := repository.NewSessionStore()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	tutorSvc := service.NewTutorService(tutorStore, logr)
	studentSvc := service.NewStudentService(studentStore, logr)
	matchSvc := service.NewMatchService(tutorStore, validate, logr)
	availabilitySvc := service.NewAvailabilityService(patternStore, tutorStore, slotStore, validate, logr)
	slotSvc := service.NewSlotService(slotStore, patternStore, tutorStore, validate, logr)
	sessionSvc := service.NewSessionService(sessionStore, tutorStore, studentStore, service.SessionPolicy{
		CancelNotice: cfg.Booking.CancelNotice,
		JoinWindow:   cfg.Booking.JoinWindow,
	}, validate, logr, time.Now)

	if cfg.Seed.Enabled {
		seed.Load(context.Background(), cfg.Seed, seed.Stores{
			Tutors:   tutorStore,
			Students: studentStore,
			Patterns: patternStore,
			Slots:    slotStore,
			Sessions: sessionStore,
		}, logr)
	}

	tutorHandler := handler.NewTutorHandler(tutorSvc, matchSvc, metricsSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	slotHandler := handler.NewSlotHandler(slotSvc, metricsSvc)
	sessionHandler := handler.NewSessionHandler(sessionSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmw.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/tutors", tutorHandler.List)
		api.POST("/tutors/match", tutorHandler.Match)
		api.GET("/tutors/meta/departments", tutorHandler.Departments)
		api.GET("/tutors/meta/subjects", tutorHandler.Subjects)
		api.GET("/tutors/:id", tutorHandler.Get)
		api.GET("/tutors/:id/patterns", availabilityHandler.ListPatterns)
		api.POST("/tutors/:id/patterns", availabilityHandler.CreatePattern)
		api.POST("/tutors/:id/patterns/validate", availabilityHandler.ValidatePattern)
		api.GET("/tutors/:id/slots", availabilityHandler.SlotsForWeek)
		api.GET("/tutors/:id/sessions/upcoming", sessionHandler.TutorUpcoming)
		api.GET("/tutors/:id/sessions/next", sessionHandler.TutorNext)
		api.GET("/tutors/:id/sessions/wrap-up", sessionHandler.TutorWrapUpNeeded)

		api.GET("/students", studentHandler.List)
		api.GET("/students/:id", studentHandler.Get)
		api.GET("/students/:id/sessions/upcoming", sessionHandler.StudentUpcoming)
		api.GET("/students/:id/sessions/next", sessionHandler.StudentNext)
		api.GET("/students/:id/sessions/feedback-needed", sessionHandler.StudentFeedbackNeeded)
		api.GET("/students/:id/sessions/joinable", sessionHandler.StudentJoinable)

		api.PUT("/patterns/:id", availabilityHandler.UpdatePattern)
		api.DELETE("/patterns/:id", availabilityHandler.DeletePattern)

		api.POST("/slots", slotHandler.Create)
		api.GET("/slots/:id", slotHandler.Get)
		api.POST("/slots/:id/bookings", slotHandler.Book)
		api.DELETE("/slots/:id/bookings", slotHandler.Release)
		api.PATCH("/slots/:id/capacity", slotHandler.Resize)
		api.POST("/slots/:id/toggle", slotHandler.Toggle)

		api.POST("/sessions", sessionHandler.Create)
		api.GET("/sessions/:id", sessionHandler.Get)
		api.POST("/sessions/:id/cancel", sessionHandler.Cancel)
		api.POST("/sessions/:id/wrap-up", sessionHandler.WrapUp)
		api.POST("/sessions/:id/feedback", sessionHandler.Feedback)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
