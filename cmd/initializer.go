package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"barterBack/internal/config"
	"barterBack/internal/fsm"
	"barterBack/internal/handlers"
	"barterBack/internal/repositories"
	"barterBack/internal/services"
	"barterBack/utils"
)

type application struct {
	errorLog         *log.Logger
	infoLog          *log.Logger
	jwtSecret        string
	db               *sql.DB
	userRepo         *repositories.UserRepository
	userHandler      *handlers.UserHandler
	adHandler        *handlers.AdHandler
	exchangeHandler  *handlers.ExchangeHandler
	categoryHandler  *handlers.CategoryHandler
	conditionHandler *handlers.ConditionHandler
	wsManager        *WebSocketManager
}

func initializeApp(db *sql.DB, rdb *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	categoryRepo := repositories.CategoryRepository{DB: db}
	conditionRepo := repositories.ConditionRepository{DB: db}
	adRepo := repositories.AdRepository{DB: db}
	exchangeRepo := repositories.ExchangeRepository{DB: db}

	wsManager := NewWebSocketManager()

	tokenManager, err := utils.NewManager(cfg.JWT.Secret)
	if err != nil {
		errorLog.Fatal(err)
	}

	// Services
	userService := &services.UserService{
		UserRepo:     &userRepo,
		TokenManager: tokenManager,
		JWTSecret:    cfg.JWT.Secret,
	}
	adsService := &services.AdsService{
		UserRepo:      &userRepo,
		AdRepo:        &adRepo,
		CategoryRepo:  &categoryRepo,
		ConditionRepo: &conditionRepo,
	}
	exchangeService := &services.ExchangeService{
		UserRepo:     &userRepo,
		AdRepo:       &adRepo,
		ExchangeRepo: &exchangeRepo,
		Policy:       fsm.PolicyPermissive,
		Notifier:     wsManager,
	}
	categoryService := &services.CategoryService{CategoryRepo: &categoryRepo, Cache: rdb}
	conditionService := &services.ConditionService{ConditionRepo: &conditionRepo, Cache: rdb}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService}
	adHandler := &handlers.AdHandler{Service: adsService}
	exchangeHandler := &handlers.ExchangeHandler{Service: exchangeService}
	categoryHandler := &handlers.CategoryHandler{Service: categoryService}
	conditionHandler := &handlers.ConditionHandler{Service: conditionService}

	return &application{
		errorLog:         errorLog,
		infoLog:          infoLog,
		jwtSecret:        cfg.JWT.Secret,
		db:               db,
		userRepo:         &userRepo,
		userHandler:      userHandler,
		adHandler:        adHandler,
		exchangeHandler:  exchangeHandler,
		categoryHandler:  categoryHandler,
		conditionHandler: conditionHandler,
		wsManager:        wsManager,
	}
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		log.Printf("Failed to open DB: %v", err)
		return nil, err
	}
	if err = db.Ping(); err != nil {
		log.Printf("Failed to ping DB: %v", err)
		return nil, err
	}
	db.SetMaxIdleConns(35)
	log.Println("Successfully connected to database")
	return db, nil
}

func addSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cross-Origin-Opener-Policy", "same-origin")
		w.Header().Set("Cross-Origin-Resource-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
