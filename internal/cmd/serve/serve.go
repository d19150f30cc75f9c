package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entrust_service/internal/api/router"
	chatapp "entrust_service/internal/chat/app"
	chatrepo "entrust_service/internal/chat/repository"
	entrustapp "entrust_service/internal/entrust/app"
	"entrust_service/internal/entrust/domain"
	entrustrepo "entrust_service/internal/entrust/repository"
	"entrust_service/pkg/config"
	"entrust_service/pkg/database"
	errprocess "entrust_service/pkg/err"
	"entrust_service/pkg/logger"
	"entrust_service/pkg/token"

	"github.com/gofiber/fiber/v2"
	fiber_log "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main(cfg *config.Service) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. MySQL (entrusts, pets, chat pairings)
	db, err := database.NewMySQLConnection(database.Connection{
		DSN:                cfg.MySQL.MySQLDSN(),
		ConnectionLifetime: cfg.MySQL.ConnectionLifetime,
		MaxOpenConnections: cfg.MySQL.MaxOpenConnections,
		MaxIdleConnections: cfg.MySQL.MaxIdleConnections,
		RetryCount:         cfg.MySQL.RetryCount,
		RetryInterval:      time.Duration(cfg.MySQL.RetryInterval),
	})
	if err != nil {
		return err
	}
	defer database.CloseMySQL(db)

	// 2. Redis (message log, pub/sub, info cache)
	redisClient, err := database.NewRedisClient(ctx, redisConnection(cfg.Redis))
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// 3. Repository
	roomRepo := chatrepo.NewRoomRepository(db)
	msgRepo := chatrepo.NewRedisMessageRepository(redisClient)
	pubsub := chatrepo.NewRedisPubSub(redisClient)
	entrustRepo := entrustrepo.NewEntrustRepository(db)
	infoCache := database.NewRedisRepository[domain.Info](redisClient)

	// 4. UseCase / Handler
	roomUC := chatapp.NewRoomUseCase(roomRepo)
	messageUC := chatapp.NewMessageUseCase(roomRepo, msgRepo, pubsub)
	entrustUC := entrustapp.NewEntrustUseCase(entrustRepo, infoCache, cfg.Entrust.InfoCacheTTL)

	issuer := token.NewIssuer(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL)

	// 5. Fiber
	r := fiber.New(fiber.Config{ErrorHandler: errprocess.FiberErrorHandler})
	file, err := os.OpenFile(fmt.Sprintf("%s/access.log", config.EnvConfig.LogPath), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return errors.Wrap(err, "open access log")
	}
	defer file.Close()

	r.Use(recover.New())
	r.Use(requestid.New())
	r.Use(fiber_log.New(fiber_log.Config{
		Output: file,
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.RegisterRoutes(r, issuer, router.Handlers{
		Chat:          chatapp.NewChatHandler(roomUC, messageUC, cfg.Chat.DefaultLimit),
		ChatWebsocket: chatapp.NewChatWebsocketHandler(pubsub),
		Entrust:       entrustapp.NewEntrustHandler(entrustUC),
	})

	errCh := make(chan error, 1)
	go func() {
		port := ":" + cfg.Port
		logger.Log.Info("entrust service listening", zap.String("port", port))
		errCh <- r.Listen(port)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "listen")
	case <-ctx.Done():
	}

	logger.Log.Info("shutting down")
	return r.ShutdownWithTimeout(shutdownTimeout)
}

func redisConnection(c config.RedisConfig) database.RedisConnection {
	conn := database.RedisConnection{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.RedisDB,
	}
	if conn.Addr == "" {
		conn.MasterName, conn.SentinelAddrs = config.GetRedisSetting()
		if c.MasterName != "" {
			conn.MasterName = c.MasterName
		}
	}
	return conn
}

// Register registers serve command.
func Register(root *cobra.Command, cfg *config.Service) {
	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return main(cfg)
			},
		},
	)
}
