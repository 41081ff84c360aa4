package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/config"
	dao "github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/mysql"
	myredis "github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/dao/redis"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/gateway/evolution"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/handler"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/https_server"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/infrastructure/logger"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/internal/service/inbox"
	"github.com/RafaelDornellMiguel/CRM-WhatsApp/pkg/util/jwt"

	"go.uber.org/zap"
)

func main() {
	// 1. Configuration.
	conf := config.GetConfig()

	// 2. Logging.
	if err := logger.Init(&conf.LogConfig, "dev"); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("logger inicializado")

	// 3. Database.
	repos := dao.Init()

	// 4. Redis.
	myredis.Init()
	defer myredis.Close()

	// 5. JWT.
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 6. Request validation messages.
	if err := handler.InitValidator(); err != nil {
		zap.L().Fatal("falha ao inicializar o validador", zap.Error(err))
	}

	// 7. Inbox push: hub plus the configured broker.
	hub := inbox.NewHub()
	var broker inbox.Broker
	if conf.KafkaConfig.MessageMode == "kafka" {
		broker = inbox.NewKafkaBroker(conf.KafkaConfig, hub)
		zap.L().Info("broker kafka inicializado", zap.String("topic", conf.KafkaConfig.InboxTopic))
	} else {
		broker = inbox.NewChannelBroker(hub)
		zap.L().Info("broker de canal inicializado")
	}
	defer broker.Close()

	// 8. Services and handlers.
	services := service.NewServices(repos, evolution.NewClient(), broker)
	handlers := handler.NewHandlers(services, hub)

	// 9. HTTP server.
	engine := https_server.Init(handlers)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port),
		Handler: engine,
	}

	go func() {
		zap.L().Info("servidor iniciado", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("falha no servidor http", zap.Error(err))
		}
	}()

	// 10. Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("encerrando servidor...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.L().Error("encerramento forçado", zap.Error(err))
	}
	zap.L().Info("servidor encerrado")
}
