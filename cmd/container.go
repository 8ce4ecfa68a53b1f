package main

import (
	"context"
	"time"

	"github.com/careerlane/careerlane/consultancy/application/applicationapi"
	"github.com/careerlane/careerlane/consultancy/application/applicationinfra"
	"github.com/careerlane/careerlane/consultancy/application/applicationsrv"
	"github.com/careerlane/careerlane/consultancy/job/jobapi"
	"github.com/careerlane/careerlane/consultancy/job/jobinfra"
	"github.com/careerlane/careerlane/consultancy/job/jobsrv"
	"github.com/careerlane/careerlane/consultancy/profile/profileapi"
	"github.com/careerlane/careerlane/consultancy/profile/profileinfra"
	"github.com/careerlane/careerlane/consultancy/profile/profilesrv"
	"github.com/careerlane/careerlane/consultancy/reporting/reportingapi"
	"github.com/careerlane/careerlane/consultancy/reporting/reportingsrv"
	"github.com/careerlane/careerlane/consultancy/signedurl/signedurlinfra"
	"github.com/careerlane/careerlane/consultancy/signedurl/signedurlsrv"
	"github.com/careerlane/careerlane/internal/config"
	"github.com/careerlane/careerlane/internal/migrations"
	"github.com/careerlane/careerlane/pkg/auth"
	"github.com/careerlane/careerlane/pkg/fsx/fsxs3"
	"github.com/careerlane/careerlane/pkg/logx"
	"github.com/careerlane/careerlane/pkg/sequence/sequencepg"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	S3Client   *s3.Client
	FileSystem *fsxs3.S3FileSystem

	// Services
	TokenService       *auth.TokenService
	URLResolver        *signedurlsrv.Resolver
	ProfileService     *profilesrv.ProfileService
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService
	ReportingService   *reportingsrv.ReportingService

	// API Handlers
	ProfileHandlers     *profileapi.Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	ReportingHandlers   *reportingapi.Handlers

	// Middleware
	AuthMiddleware *auth.Middleware
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initConfig()
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initConfig() {
	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}
	c.Config = cfg

	if cfg.Auth.JWTSecret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		cfg.Auth.JWTSecret = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.Database.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Schema Migrations
	if err := migrations.Up(context.Background(), db.DB); err != nil {
		logx.Fatalf("Failed to run migrations: %v", err)
	}

	// 3. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if err := c.Redis.Ping(context.Background()).Err(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 4. AWS S3 Configuration
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(c.Config.Storage.Region))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(awsCfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.Bucket, c.Config.Storage.Prefix)
}

func (c *Container) initServices() {
	// --- Repositories ---
	profileRepo := profileinfra.NewPostgresProfileRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	urlStore := signedurlinfra.NewRedisStore(c.Redis, "signedurl")
	sequences := sequencepg.NewPostgresProvider(c.DB)

	// --- Token Service ---
	c.TokenService = auth.NewTokenService(
		c.Config.Auth.JWTSecret,
		c.Config.Auth.Issuer,
		c.Config.Auth.TokenTTL(),
	)

	// --- Domain Services ---
	c.URLResolver = signedurlsrv.NewResolver(urlStore, c.FileSystem, c.Config.SignedURL.TTL())
	c.ProfileService = profilesrv.NewProfileService(profileRepo, sequences, c.URLResolver)
	c.JobService = jobsrv.NewJobService(jobRepo, sequences)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		profileRepo,
		jobRepo,
		sequences,
		c.URLResolver,
	)
	c.ReportingService = reportingsrv.NewReportingService(profileRepo, jobRepo, applicationRepo)

	// --- Handlers ---
	c.ProfileHandlers = profileapi.NewHandlers(c.ProfileService)
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.ReportingHandlers = reportingapi.NewHandlers(c.ReportingService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewMiddleware(c.TokenService)
}
