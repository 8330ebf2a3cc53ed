package main

import (
	"fmt"

	"patientedu/internal/app/catalog"
	"patientedu/internal/app/config"
	"patientedu/internal/app/dsn"
	"patientedu/internal/app/handler"
	"patientedu/internal/app/pkg/auth"
	"patientedu/internal/app/pkg/storage"
	"patientedu/internal/app/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	store, err := storage.NewMinIO(
		fmt.Sprintf("%s:%s", cfg.MinIOHost, cfg.MinIOPort),
		cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOBucket,
		false, cfg.MinIOPublicURL,
	)
	if err != nil {
		log.Fatalf("minio: %v", err)
	}

	jwtSvc := auth.NewJWTService(cfg.JWTSecret)
	sessSvc, err := auth.NewSessionService(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer sessSvc.Close()

	cat := catalog.NewService(repo, store.PublicURL)
	// холодный старт без БД не фатален: дерево останется пустым
	// до первой успешной перестройки после мутации
	if err := cat.Refresh(); err != nil {
		log.WithError(err).Warn("initial catalog load failed, starting with empty tree")
	}

	h := handler.NewHandler(repo, cfg, store, cat, jwtSvc, sessSvc)

	router := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowCredentials = false
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	h.RegisterHandler(router)

	addr := fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	log.Infof("server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}
