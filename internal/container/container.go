package container

import (
	"context"
	"fmt"

	"gametrack/internal/config"
	"gametrack/internal/database"
	"gametrack/internal/logger"
	"gametrack/internal/repository"
	"gametrack/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Container wires the store handles, logger and services explicitly; nothing
// reaches them through package-level state.
type Container struct {
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Logger *logrus.Logger

	Games       *services.GameService
	Backlog     *services.BacklogService
	Preferences *services.PreferencesService
	Stats       *services.StatsService
}

func New(ctx context.Context) (*Container, error) {
	log := logger.Get()

	db, err := database.NewPool(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	log.Info("Database connection successful")

	if err := database.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Info("Database migrations applied")

	redisClient, err := newRedis(ctx)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	log.Info("Redis connection successful")

	games := repository.NewGameRepository(db)
	backlog := repository.NewBacklogRepository(db)
	prefs := repository.NewPreferencesRepository(db)

	return &Container{
		DB:          db,
		Redis:       redisClient,
		Logger:      log,
		Games:       services.NewGameService(games, redisClient, log),
		Backlog:     services.NewBacklogService(backlog, redisClient, log),
		Preferences: services.NewPreferencesService(prefs, redisClient, log),
		Stats:       services.NewStatsService(games, backlog, redisClient, log),
	}, nil
}

func (c *Container) Close() {
	if c.Redis != nil {
		c.Redis.Close()
		c.Logger.Info("Redis connection closed")
	}
	if c.DB != nil {
		c.DB.Close()
		c.Logger.Info("Database connection closed")
	}
}

func newRedis(ctx context.Context) (*redis.Client, error) {
	host, port, password := config.RedisConfig()

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
