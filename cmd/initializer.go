package main

import (
	"database/sql"
	"log"
	"time"

	"ayudamosBack/internal/config"
	"ayudamosBack/internal/handlers"
	"ayudamosBack/internal/repositories"
	"ayudamosBack/internal/services"
	"ayudamosBack/utils"
)

type application struct {
	errorLog *log.Logger
	infoLog  *log.Logger
	cfg      config.Config
	db       *sql.DB

	tokens *utils.Manager
	store  utils.BlobStore
	users  userFinder

	userRepo       *repositories.UserRepository
	categoryRepo   *repositories.CategoryRepository
	serviceRepo    *repositories.ServiceRepository
	reviewRepo     *repositories.ReviewRepository
	portfolioRepo  *repositories.PortfolioRepository
	contactLogRepo *repositories.ContactLogRepository

	categoryService *services.CategoryService

	userHandler       *handlers.UserHandler
	categoryHandler   *handlers.CategoryHandler
	serviceHandler    *handlers.ServiceHandler
	reviewHandler     *handlers.ReviewHandler
	portfolioHandler  *handlers.PortfolioHandler
	contactLogHandler *handlers.ContactLogHandler
	uploadHandler     *handlers.UploadHandler
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokens, err := utils.NewManager(cfg.Auth.SigningKey, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	var store utils.BlobStore
	if cfg.Storage.Driver == "s3" {
		store, err = utils.NewS3BlobStore(utils.S3Config{
			Bucket:    cfg.Storage.S3.Bucket,
			Region:    cfg.Storage.S3.Region,
			Endpoint:  cfg.Storage.S3.Endpoint,
			AccessKey: cfg.Storage.S3.AccessKey,
			SecretKey: cfg.Storage.S3.SecretKey,
		})
	} else {
		store, err = utils.NewLocalBlobStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	}
	if err != nil {
		return nil, err
	}

	userRepo := &repositories.UserRepository{DB: db}
	categoryRepo := &repositories.CategoryRepository{DB: db}
	serviceRepo := &repositories.ServiceRepository{DB: db}
	reviewRepo := &repositories.ReviewRepository{DB: db}
	portfolioRepo := &repositories.PortfolioRepository{DB: db}
	contactLogRepo := &repositories.ContactLogRepository{DB: db}

	categoryService := &services.CategoryService{CategoryRepo: categoryRepo}

	return &application{
		errorLog: errorLog,
		infoLog:  infoLog,
		cfg:      cfg,
		db:       db,
		tokens:   tokens,
		store:    store,
		users:    userRepo,

		userRepo:       userRepo,
		categoryRepo:   categoryRepo,
		serviceRepo:    serviceRepo,
		reviewRepo:     reviewRepo,
		portfolioRepo:  portfolioRepo,
		contactLogRepo: contactLogRepo,

		categoryService: categoryService,

		userHandler: &handlers.UserHandler{
			ErrorLog: errorLog,
			Service: &services.UserService{UserRepo: userRepo, Tokens: tokens},
		},
		categoryHandler: &handlers.CategoryHandler{
			ErrorLog: errorLog,
			Service: categoryService,
		},
		serviceHandler: &handlers.ServiceHandler{
			ErrorLog: errorLog,
			Service: &services.ServiceService{ServiceRepo: serviceRepo, CategoryRepo: categoryRepo},
		},
		reviewHandler: &handlers.ReviewHandler{
			ErrorLog: errorLog,
			Service: &services.ReviewService{ReviewRepo: reviewRepo, ServiceRepo: serviceRepo},
		},
		portfolioHandler: &handlers.PortfolioHandler{
			ErrorLog: errorLog,
			Service: &services.PortfolioService{PortfolioRepo: portfolioRepo, ServiceRepo: serviceRepo},
		},
		contactLogHandler: &handlers.ContactLogHandler{
			ErrorLog: errorLog,
			Service: &services.ContactLogService{ContactLogRepo: contactLogRepo, ServiceRepo: serviceRepo},
		},
		uploadHandler: &handlers.UploadHandler{
			ErrorLog: errorLog,
			Service: &services.UploadService{
				Store:       store,
				MaxFileSize: cfg.Uploads.MaxFileSize,
				MaxFiles:    cfg.Uploads.MaxFiles,
			},
		},
	}, nil
}

func openDB(driver, dsn string) (*sql.DB, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}
