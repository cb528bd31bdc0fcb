package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/locationboard/mapview"
	"github.com/bitmark-inc/locationboard/store"
	"github.com/bitmark-inc/locationboard/utils"
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
	store store.LocationStore

	// mounted maps of the dashboards
	sessions *mapview.Registry

	// map tile and marker icon assets
	assets mapview.Assets

	// time zone used when a request has none
	defaultLocation *time.Location
}

// NewServer new instance of server
func NewServer(locationStore store.LocationStore, sessions *mapview.Registry, assets mapview.Assets) *Server {
	defaultLocation := utils.GetLocation(viper.GetString("display.timezone"))
	if defaultLocation == nil {
		defaultLocation = time.UTC
	}

	return &Server{
		store:           locationStore,
		sessions:        sessions,
		assets:          assets,
		defaultLocation: defaultLocation,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` will apply the following middleware
	apiRoute.Use(s.localizerMiddleware())

	emailRoute := apiRoute.Group("/emails")
	{
		emailRoute.GET("", s.listEmails)
		emailRoute.GET("/:email/locations", s.listLocations)
	}

	apiRoute.GET("/users", s.listUsers)

	sessionRoute := apiRoute.Group("/map/sessions")
	{
		sessionRoute.POST("", s.createSession)
	}

	sessionRoute.Use(s.recognizeSessionMiddleware())
	{
		sessionRoute.GET("/:sessionID", s.sessionDetail)
		sessionRoute.PUT("/:sessionID/selection", s.selectEmail)
		sessionRoute.DELETE("/:sessionID", s.deleteSession)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version":  viper.GetString("server.version"),
				"variant":  viper.GetString("source.variant"),
				"timezone": s.defaultLocation.String(),
			},
			"map": s.assets,
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
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
