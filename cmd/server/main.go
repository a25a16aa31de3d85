package main

import (
	"log"

	"github.com/debjganguly/uhi-backend-go/internal/api"
	"github.com/debjganguly/uhi-backend-go/internal/cache"
	"github.com/debjganguly/uhi-backend-go/internal/config"
	"github.com/debjganguly/uhi-backend-go/internal/database"
	"github.com/debjganguly/uhi-backend-go/internal/handler"
	"github.com/debjganguly/uhi-backend-go/internal/repository"
	"github.com/debjganguly/uhi-backend-go/internal/sample"
	"github.com/debjganguly/uhi-backend-go/internal/service"
)

func main() {
	// 加载配置
	cfg := config.Load()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	// 缓存：配置了 Redis 就用 Redis，否则用进程内缓存
	var analysisCache cache.AnalysisCache
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		analysisCache = redisCache
		log.Printf("Using Redis cache at %s", cfg.RedisAddr)
	} else {
		analysisCache = cache.NewMemoryCache(cfg.CacheTTL)
	}

	// 组装依赖
	runRepo := repository.NewRunRepository(database.GetDB())
	generator := sample.NewGenerator(cfg.CenterLat, cfg.CenterLon, cfg.Seed)
	analyzeService := service.NewAnalyzeService(generator, analysisCache, runRepo, cfg.Seed)
	runService := service.NewRunService(runRepo)

	analyzeHandler := handler.NewAnalyzeHandler(analyzeService)
	runHandler := handler.NewRunHandler(runService)
	authHandler := handler.NewAuthHandler(cfg.JWTSecret, cfg.AdminUser, cfg.AdminPassword)

	// 初始化路由
	router := api.SetupRouter(cfg, analyzeHandler, runHandler, authHandler)

	// 启动服务器
	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
