package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"contenthub-backend/internal/config"
	"contenthub-backend/internal/infrastructure/database"
	"contenthub-backend/internal/infrastructure/tokenstore"
	"contenthub-backend/pkg/jwt"

	authHandler "contenthub-backend/internal/domains/auth/handler"
	authService "contenthub-backend/internal/domains/auth/service"
	commentHandler "contenthub-backend/internal/domains/comment/handler"
	commentModel "contenthub-backend/internal/domains/comment/model"
	commentRepo "contenthub-backend/internal/domains/comment/repository"
	commentService "contenthub-backend/internal/domains/comment/service"
	postHandler "contenthub-backend/internal/domains/post/handler"
	postRepo "contenthub-backend/internal/domains/post/repository"
	postService "contenthub-backend/internal/domains/post/service"
	userHandler "contenthub-backend/internal/domains/user/handler"
	userRepo "contenthub-backend/internal/domains/user/repository"
	userService "contenthub-backend/internal/domains/user/service"
	videoHandler "contenthub-backend/internal/domains/video/handler"
	videoRepo "contenthub-backend/internal/domains/video/repository"
	videoService "contenthub-backend/internal/domains/video/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton wired once at startup, infrastructure first.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	TokenStore *tokenstore.Store
	JWTManager *jwt.Manager

	UserRepo    userRepo.UserRepository
	PostRepo    postRepo.PostRepository
	VideoRepo   videoRepo.VideoRepository
	CommentRepo commentRepo.CommentRepository

	UserService    userService.ServiceInterface
	PostService    postService.ServiceInterface
	VideoService   videoService.ServiceInterface
	CommentService commentService.ServiceInterface
	AuthService    authService.ServiceInterface

	UserHandler    *userHandler.UserHandler
	PostHandler    *postHandler.PostHandler
	VideoHandler   *videoHandler.VideoHandler
	CommentHandler *commentHandler.CommentHandler
	AuthHandler    *authHandler.AuthHandler
}

// NewContainer builds the full graph: config, then infrastructure, then
// repositories, services, and handlers.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("config loaded")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}
	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisClient := tokenstore.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.TokenStore = tokenstore.New(redisClient)
	if err := c.TokenStore.Ping(ctx); err != nil {
		// Sessions will not survive restarts without redis, but reads
		// still work. Keep serving.
		log.Warn().Err(err).Msg("redis unavailable, refresh tokens will not verify")
	}

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.PostRepo = postRepo.NewPostgresPostRepository(pool)
	c.VideoRepo = videoRepo.NewPostgresVideoRepository(pool)
	c.CommentRepo = commentRepo.NewPostgresCommentRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo)
	c.PostService = postService.NewPostService(c.PostRepo)
	c.VideoService = videoService.NewVideoService(c.VideoRepo)
	c.CommentService = commentService.NewCommentService(
		c.CommentRepo,
		commentModel.ParentPolicy(c.Config.Comments.ParentPolicy),
	)
	c.AuthService = authService.NewAuthService(
		c.UserService,
		c.JWTManager,
		c.TokenStore,
		c.Config.Auth.ExchangeSecret,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.VideoHandler = videoHandler.NewVideoHandler(c.VideoService)
	c.CommentHandler = commentHandler.NewCommentHandler(c.CommentService)
	c.AuthHandler = authHandler.NewAuthHandler(c.AuthService)
}

// Cleanup releases infrastructure connections. Safe to call on a
// partially built container.
func (c *Container) Cleanup() {
	if c.TokenStore != nil {
		if err := c.TokenStore.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close redis client")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
	log.Info().Msg("container cleaned up")
}
