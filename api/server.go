package api

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/innercore-api/background"
	"github.com/bitmark-inc/innercore-api/external/cadence"
	"github.com/bitmark-inc/innercore-api/identity"
	"github.com/bitmark-inc/innercore-api/journey"
	"github.com/bitmark-inc/innercore-api/logmodule"
	"github.com/bitmark-inc/innercore-api/score"
	"github.com/bitmark-inc/innercore-api/store"
	"github.com/bitmark-inc/innercore-api/utils"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.InnerCore
	mongoStore store.MongoStore

	// Sign up, sign in and bearer tokens
	identity identity.Provider

	// External services
	cadenceClient cadence.WorkflowClient

	// job pool enqueuer
	backgroundEnqueuer background.Enqueuer

	// pending dashboard triggers
	jobs sync.WaitGroup
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoStore store.MongoStore,
	provider identity.Provider,
	cadenceClient cadence.WorkflowClient,
	enqueuer background.Enqueuer) *Server {
	return &Server{
		store:              store.NewInnerCoreStore(ormDB),
		mongoStore:         mongoStore,
		identity:           provider,
		cadenceClient:      cadenceClient,
		backgroundEnqueuer: enqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(corsConfig()))

	if dir := viper.GetString("assets.dir"); dir != "" {
		r.Static("/pdfs", dir)
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/register", s.register)
		authRoute.POST("/login", s.login)
	}

	// api route other than `/information` and `/auth` will apply the following middleware
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.journeyMiddleware())

	apiRoute.POST("/auth/logout", s.logout)
	apiRoute.GET("/journey", s.currentJourney)

	profileRoute := apiRoute.Group("/profile")
	{
		profileRoute.GET("", s.getProfile)
		profileRoute.PUT("", s.updateProfile)
	}

	assessmentRoute := apiRoute.Group("/assessment")
	assessmentRoute.Use(s.requireState(journey.AssessmentPending, journey.Ready))
	{
		assessmentRoute.GET("/questions", s.assessmentQuestions)
		assessmentRoute.POST("", s.submitAssessment)
	}

	// routes below are only for users who finished the assessment
	readyRoute := apiRoute.Group("")
	readyRoute.Use(s.requireState(journey.Ready))
	{
		readyRoute.GET("/assessment", s.getAssessment)

		readyRoute.GET("/weekly-reviews/questions", s.weeklyReviewQuestions)
		readyRoute.POST("/weekly-reviews", s.submitWeeklyReview)
		readyRoute.GET("/weekly-reviews", s.weeklyReviewHistory)

		readyRoute.POST("/sleep-records", s.addSleepRecord)
		readyRoute.GET("/sleep-records", s.sleepRecords)

		readyRoute.GET("/dashboard", s.dashboard)
		readyRoute.GET("/dashboard/history", s.dashboardHistory)

		readyRoute.GET("/challenges/random", s.randomChallenge)
		readyRoute.GET("/destress/stretches", s.stretches)
		readyRoute.GET("/destress/audio", s.audioTracks)
		readyRoute.GET("/self-care", s.selfCare)
	}

	r.GET("/healthz", s.healthz)

	return r
}

func corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if origins := viper.GetStringSlice("cors.origins"); len(origins) > 0 {
		config.AllowOrigins = origins
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}

	return config
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	s.jobs.Wait()
	return err
}

// refreshDashboard signals the dashboard workflow of a user without
// blocking the request. Failures are only reported.
func (s *Server) refreshDashboard(uid string) {
	if s.cadenceClient == nil {
		return
	}

	s.jobs.Add(1)
	go func() {
		defer s.jobs.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := utils.TriggerDashboardRefresh(s.cadenceClient, ctx, uid); err != nil {
			log.WithError(err).WithField("uid", uid).Error("fail to trigger dashboard refresh")
			sentry.CaptureException(err)
		}
	}()
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	err = s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"questionnaires": map[string]interface{}{
				score.AssessmentQuestionnaire.Name:   score.AssessmentQuestionnaire.Items,
				score.WeeklyReviewQuestionnaire.Name: score.WeeklyReviewQuestionnaire.Items,
			},
			"scale":          []int{0, score.MaxAnswer},
			"languages":      utils.SupportedLanguages,
			"system_version": "InnerCore 0.1",
		},
	})
}

// localizer picks the language from the `lang` query or the Accept-Language header
func localizer(c *gin.Context) *i18n.Localizer {
	langs := make([]string, 0, 2)
	if lang := strings.TrimSpace(c.Query("lang")); lang != "" {
		langs = append(langs, lang)
	}
	langs = append(langs, c.GetHeader("Accept-Language"))
	return utils.NewLocalizer(langs...)
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	obj = obj.localize(localizer(c))

	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
