package main

import (
	"context"
	"crypto/tls"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"taskmaster-api/api"
	"taskmaster-api/storage"
	"taskmaster-api/store"
	"taskmaster-api/suggest"
)

func main() {
	if dbg, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && dbg {
		log.SetLevel(log.DebugLevel)
	}

	backend := newBackend()

	logger := log.New()
	taskStore := store.New(backend, logger)
	taskStore.Load(context.Background())

	secret := os.Getenv("SESSION_JWT_SECRET")
	if secret == "" {
		log.Fatal("missing SESSION_JWT_SECRET")
	}
	sessions := api.NewSessionManager(backend, []byte(secret))

	var suggester suggest.Suggester
	if url := os.Getenv("SUGGEST_URL"); url != "" {
		suggester = suggest.NewHTTP(url, nil)
	} else {
		delay := suggest.DefaultDelay
		if v := os.Getenv("SUGGEST_DELAY"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil || d < 0 {
				log.Fatalf("invalid SUGGEST_DELAY: %v", err)
			}
			delay = d
		}
		suggester = suggest.NewKeyword(delay)
	}

	e := echo.New()
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("taskmaster"))
	e.GET("/metrics", echoprometheus.NewHandler())

	api.Register(e, taskStore, sessions, suggester, logger)

	listenAddr := ":8080"
	if val, ok := os.LookupEnv("PORT"); ok {
		listenAddr = ":" + val
	}

	e.Logger.Fatal(e.Start(listenAddr))
}

func newBackend() storage.Backend {
	kind := os.Getenv("STORAGE_BACKEND")
	switch kind {
	case "", "file":
		dir := os.Getenv("DATA_DIR")
		if dir == "" {
			dir = "data"
		}
		backend, err := storage.NewFile(dir)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		return backend
	case "sqlite":
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "taskmaster.db"
		}
		backend, err := storage.NewSQLite(path)
		if err != nil {
			log.Fatalf("storage: %v", err)
		}
		return backend
	case "redis":
		connStr := os.Getenv("REDIS_CONNECTION_STRING")
		if connStr == "" {
			log.Fatal("missing redis config")
		}
		opts, err := redis.ParseURL(connStr)
		if err != nil {
			parts := strings.Split(connStr, ",")
			opts = &redis.Options{Addr: parts[0]}
			for _, p := range parts[1:] {
				kv := strings.SplitN(p, "=", 2)
				if len(kv) != 2 {
					continue
				}
				switch strings.ToLower(kv[0]) {
				case "password":
					opts.Password = kv[1]
				case "ssl":
					if strings.ToLower(kv[1]) == "true" {
						opts.TLSConfig = &tls.Config{}
					}
				}
			}
		}
		return storage.NewRedis(redis.NewClient(opts))
	default:
		log.Fatalf("unknown STORAGE_BACKEND %q", kind)
		return nil
	}
}
