package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/peerlearn-api/internal/config"
	"github.com/yourusername/peerlearn-api/internal/handler"
	"github.com/yourusername/peerlearn-api/internal/middleware"
	ossRepo "github.com/yourusername/peerlearn-api/internal/repository/oss"
	pgRepo "github.com/yourusername/peerlearn-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/peerlearn-api/internal/repository/redis"
	"github.com/yourusername/peerlearn-api/internal/service"
	ws "github.com/yourusername/peerlearn-api/internal/websocket"
	"github.com/yourusername/peerlearn-api/pkg/auth"
	"github.com/yourusername/peerlearn-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	certRepo := pgRepo.NewCertificationRepo(db)
	credsRepo := pgRepo.NewTeacherCredentialsRepo(db)
	testRepo := pgRepo.NewTestRepo(db)
	resultRepo := pgRepo.NewResultRepo(db)
	courseRepo := pgRepo.NewCourseRepo(db)
	subjectRepo := pgRepo.NewSubjectRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Почтовые уведомления: Resend либо noop, если отправка выключена
	var emailService service.EmailService = &service.NoopEmailService{}
	if cfg.Email.Enabled {
		emailService, err = service.NewResendEmailService(cfg.Email.APIKey, cfg.Email.From)
		if err != nil {
			log.Printf("Failed to initialize email service: %v", err)
			os.Exit(1)
		}
		log.Println("Email notifications enabled (Resend)")
	}

	// Инициализируем сервисы
	authService := service.NewAuthService(userRepo, jwtService)
	certService := service.NewCertificationService(certRepo, userRepo)
	testService := service.NewTestService(testRepo)
	resultService := service.NewResultService(testRepo, resultRepo, certService, emailService, db)
	teacherService := service.NewTeacherService(userRepo, credsRepo, emailService, db)
	courseService := service.NewCourseService(courseRepo)
	subjectService := service.NewSubjectService(subjectRepo, cacheRepo)
	chatService := service.NewChatService(cacheRepo)

	// Контекст для фоновых горутин, завершается при остановке сервера
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запускаем хаб чатов курсов
	chatHub := ws.NewHub()
	go chatHub.Run(ctx)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(teacherService, certService)
	testHandler := handler.NewTestHandler(testService, resultService)
	courseHandler := handler.NewCourseHandler(courseService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	wsHandler := handler.NewWSHandler(chatHub, chatService, jwtService, userRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo)
	rateLimiter := middleware.NewRateLimiter(redisClient)

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", rateLimiter.Limit(middleware.StrictAuthRateLimitConfig()), authHandler.Register)
			users.POST("/login", rateLimiter.Limit(middleware.StrictAuthRateLimitConfig()), authHandler.Login)
			users.GET("/profile", authMiddleware.RequireAuth(), authHandler.GetProfile)

			userScoped := users.Group("/:id", authMiddleware.RequireAuth(), middleware.ExtractUintParam("id", "userID"))
			{
				userScoped.POST("/teacher-credentials", userHandler.SubmitCredentials)
				userScoped.PUT("/validate-teacher", authMiddleware.RequireAdmin(), userHandler.ValidateTeacher)
				userScoped.GET("/certifications", userHandler.GetCertifications)
			}
		}

		tests := api.Group("/tests")
		{
			tests.GET("", testHandler.ListTests)
			tests.GET("/results/user/:userId", authMiddleware.RequireAuth(), middleware.ExtractUintParam("userId", "userID"), testHandler.GetUserResults)
			tests.GET("/results/:resultId", authMiddleware.RequireAuth(), middleware.ExtractUintParam("resultId", "resultID"), testHandler.GetResult)

			testScoped := tests.Group("/:id", middleware.ExtractUintParam("id", "testID"))
			{
				testScoped.GET("", testHandler.GetTest)
				testScoped.POST("/results",
					authMiddleware.RequireAuth(),
					rateLimiter.Limit(middleware.SubmitRateLimitConfig()),
					testHandler.SubmitTest)
				testScoped.GET("/results/export",
					authMiddleware.RequireAuth(),
					authMiddleware.RequireAdmin(),
					testHandler.ExportTestResults)
			}
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.ListCourses)
			courses.POST("", authMiddleware.RequireAuth(), courseHandler.CreateCourse)

			courseScoped := courses.Group("/:id", middleware.ExtractUintParam("id", "courseID"))
			{
				courseScoped.GET("", courseHandler.GetCourse)
				courseScoped.PUT("", authMiddleware.RequireAuth(), courseHandler.UpdateCourse)
				courseScoped.POST("/enroll", authMiddleware.RequireAuth(), courseHandler.Enroll)
			}
		}

		subjects := api.Group("/subjects")
		{
			subjects.GET("", subjectHandler.ListSubjects)

			subjectScoped := subjects.Group("/:id", middleware.ExtractUintParam("id", "subjectID"))
			{
				subjectScoped.GET("", subjectHandler.GetSubject)
				subjectScoped.GET("/test", testHandler.GetSubjectTest)
				subjectScoped.POST("/demo-videos", authMiddleware.RequireAuth(), subjectHandler.AddDemoVideo)
			}
		}

		// Маршруты загрузки регистрируются только при настроенном хранилище
		if cfg.Storage.Enabled {
			fileStorage, err := ossRepo.NewFileStorage(ossRepo.Config{
				Endpoint:   cfg.Storage.Endpoint,
				AccessKey:  cfg.Storage.AccessKey,
				SecretKey:  cfg.Storage.SecretKey,
				BucketName: cfg.Storage.BucketName,
				Prefix:     cfg.Storage.Prefix,
			})
			if err != nil {
				log.Printf("Failed to initialize file storage: %v", err)
				os.Exit(1)
			}
			uploadHandler := handler.NewUploadHandler(fileStorage)

			upload := api.Group("/upload", authMiddleware.RequireAuth())
			{
				upload.POST("", rateLimiter.Limit(middleware.UploadRateLimitConfig()), uploadHandler.Upload)
				// Ключ объекта содержит слэши (prefix/dir/uuid), поэтому wildcard
				upload.DELETE("/*key", uploadHandler.Delete)
			}
			log.Println("File uploads enabled (Aliyun OSS)")
		} else {
			log.Println("File uploads disabled: storage is not configured")
		}
	}

	// WebSocket чатов курсов
	router.GET("/ws/chat", wsHandler.HandleConnection)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Завершаем фоновые горутины (хаб чатов)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
