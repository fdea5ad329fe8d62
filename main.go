package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/resumecraft/go-services/handlers"
	"github.com/resumecraft/go-services/internal/config"
	"github.com/resumecraft/go-services/internal/database"
	"github.com/resumecraft/go-services/internal/drafts"
	"github.com/resumecraft/go-services/internal/enhance"
	"github.com/resumecraft/go-services/internal/export"
	"github.com/resumecraft/go-services/internal/identity"
	"github.com/resumecraft/go-services/internal/resumes/service"
	"github.com/resumecraft/go-services/internal/storage"
	"github.com/resumecraft/go-services/internal/users"
	"github.com/resumecraft/go-services/pkg/logger"
	"github.com/resumecraft/go-services/pkg/metrics"
	"github.com/resumecraft/go-services/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v enhance=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Enhance.URL != "")

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Session-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, Content-Disposition, X-Export-Pages")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	ctx := context.Background()

	// Connect to Redis early so drafts and the rate limiter can use it.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	// Global rate limiter (per-user when authenticated, otherwise per-IP).
	// Redis-backed when configured so the limit holds across replicas.
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Identity: tokens come from an external provider; this service only
	// parses them. The insecure mode is for integration tests.
	var verifier middleware.Verifier
	switch {
	case cfg.Auth.JWTSecret != "":
		verifier = identity.NewHMACVerifier(cfg.Auth.JWTSecret)
	case cfg.Auth.AllowInsecure:
		logger.Warn("enabling insecure token parsing (integration mode)")
		verifier = identity.NewInsecureVerifier()
	}

	// Drafts: Redis when available, in-memory otherwise.
	var draftRepo drafts.Repository
	if redisClient != nil {
		draftRepo = drafts.NewRedisRepository(redisClient, "draft:")
		logger.Infof("Using Redis for draft storage")
	} else {
		draftRepo = drafts.NewMemoryRepository()
		logger.Warnf("Redis unavailable; drafts are in-memory and lost on restart")
	}
	draftsSvc := drafts.NewService(draftRepo, cfg.Drafts.TTL)

	// MongoDB-backed services (saved resumes + users). Retry with backoff
	// to tolerate startup races; fall back to in-memory resumes otherwise.
	var resumesSvc service.Service
	var userSvc *users.Service
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var client *mongo.Client
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			client, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Warnf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
		} else {
			defer func() { _ = client.Disconnect(ctx) }()
			db := client.Database(cfg.MongoDB.Database)
			resumesSvc = service.NewMongoService(db.Collection("resumes"))
			userSvc = users.NewService(users.NewMongoUserRepository(db.Collection("users")))
			logger.Infof("Using MongoDB for resume storage")
		}
	}
	if resumesSvc == nil {
		resumesSvc = service.NewMemoryService()
		logger.Warnf("MongoDB unavailable; saved resumes are in-memory and lost on restart")
	}

	// Enhancement: remote adapter with the deterministic local fallback.
	var enhanceClient *enhance.Client
	if cfg.Enhance.URL != "" {
		enhanceClient = enhance.NewClient(cfg.Enhance.URL, cfg.Enhance.Timeout)
	} else {
		logger.Warnf("no enhancement endpoint configured; using local fallback only")
	}
	enhanceSvc := enhance.NewService(enhanceClient, func(n enhance.Notification) {
		if n.Fallback {
			logger.Debugf("enhancement fallback: %s", n.Message)
		}
	})

	// Export: headless-Chrome print pipeline, optionally backed by MinIO
	// artifact storage and Mongo export metadata.
	exporter := export.NewExporter(export.NewChromedpRenderer())
	rh := handlers.NewResumeHandler(resumesSvc, exporter)
	if minioCfg := storage.LoadMinIOConfig(); minioCfg.Endpoint != "" {
		artifacts, err := storage.NewArtifactStore(minioCfg)
		if err != nil {
			logger.Warnf("failed to initialize artifact storage: %v", err)
		} else {
			logger.Infof("Using MinIO artifact storage: bucket=%s", minioCfg.Bucket)
			rh.WithArtifactUpload(func(c *gin.Context, key string, pdf []byte) (string, error) {
				if err := artifacts.PutPDF(c.Request.Context(), key, pdf); err != nil {
					return "", err
				}
				return artifacts.PresignedURL(c.Request.Context(), key, 24*time.Hour)
			})
		}
	}
	if cfg.MongoDB.URI != "" {
		rh.WithExportMetadata(func(c *gin.Context, pe *export.PersistedExport) {
			if err := export.SaveMetadata(c.Request.Context(), cfg.MongoDB.URI, cfg.MongoDB.Database, pe); err != nil {
				logger.Warnf("failed to save export metadata: %v", err)
			}
		})
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: 200 only when the critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		deps["resumes"] = resumesSvc != nil
		deps["drafts"] = draftRepo != nil

		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// API routes. Auth is applied when a verifier is configured; otherwise
	// requests are anonymous (drafts keyed by X-Session-ID).
	api := r.Group("/api")
	if verifier != nil {
		api.Use(middleware.AuthMiddleware(verifier))
	}
	rh.Register(api)
	handlers.NewDraftHandler(draftsSvc).Register(api)
	handlers.NewEnhanceHandler(enhanceSvc).Register(api)
	handlers.RegisterSwagger(r)

	v1 := r.Group("/api/v1")
	if verifier != nil {
		v1.GET("/me", middleware.AuthMiddleware(verifier), func(c *gin.Context) {
			claims, _ := c.Get("claims")
			if userSvc != nil {
				if cm, ok := claims.(map[string]interface{}); ok {
					u, err := userSvc.UpsertFromClaims(c.Request.Context(), cm)
					if err == nil && u != nil {
						c.JSON(http.StatusOK, gin.H{"user": u})
						return
					}
				}
			}
			c.JSON(http.StatusOK, gin.H{"claims": claims})
		})
	} else {
		v1.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "auth not configured"})
		})
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Debugf("services: resumes=%v users=%v drafts=%v verifier=%v", resumesSvc != nil, userSvc != nil, draftsSvc != nil, verifier != nil)
	logger.Infof("Starting resume service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
