package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	ginGzip "github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	cachecontrol "go.eigsys.de/gin-cachecontrol/v2"
	"golang.org/x/time/rate"

	"buzzkill/internal/corpus"
)

// App holds the process-wide state shared by all handlers.
type App struct {
	Provider       *corpus.Provider
	Store          *corpus.Store
	StartTime      time.Time
	IsProduction   bool
	RateLimitRPS   int
	RateLimitBurst int
	LimiterMap     map[string]*rate.Limiter
	LimiterMutex   sync.Mutex
}

func main() {
	_ = godotenv.Load()

	isProduction := os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production"
	app := &App{
		Provider:       corpus.NewProvider(),
		StartTime:      time.Now(),
		IsProduction:   isProduction,
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
		LimiterMap:     make(map[string]*rate.Limiter),
	}
	logInfo("Starting buzzkill in %s mode", map[bool]string{true: "production", false: "development"}[isProduction])

	curatedGlob := getEnvString("CURATED_GLOB", DefaultCuratedGlob)
	app.loadCuratedCorpus(curatedGlob)

	ctx, cancel := context.WithCancel(context.Background())
	app.loadGenericCorpus(ctx,
		getEnvString("CORPUS_CACHE_DIR", DefaultCorpusCacheDir),
		getEnvString("REMOTE_WORDLIST_URL", corpus.DefaultRemoteURL),
		getEnvDuration("FETCH_TIMEOUT", 30*time.Second))

	if getEnvBool("WATCH_WORDLISTS", true) {
		if err := app.Provider.WatchCurated(ctx, curatedGlob); err != nil {
			logWarn("Word-list watching disabled: %v", err)
		} else {
			logInfo("Watching %s for curated list changes", curatedGlob)
		}
	}

	router := app.newRouter()
	startServer(router, func() {
		cancel()
		if app.Store != nil {
			if err := app.Store.Close(); err != nil {
				logWarn("Failed to close corpus cache: %v", err)
			}
		}
	})
}

// loadCuratedCorpus loads the curated answer list from local files. Load
// failures degrade to an empty corpus; requests then fall back to the
// generic list.
func (app *App) loadCuratedCorpus(pattern string) {
	base, _ := doublestar.SplitPattern(filepath.ToSlash(pattern))
	if !dirExists(filepath.FromSlash(base)) {
		logWarn("Curated list directory %s not found", base)
		return
	}
	c, err := corpus.LoadFiles(pattern)
	if err != nil {
		logWarn("Curated list failed to load: %v", err)
		return
	}
	if c.IsEmpty() {
		logWarn("Curated list %s matched no words", pattern)
		return
	}
	app.Provider.SetCurated(c)
	logInfo("Curated list loaded: %d words", c.Len())
}

// loadGenericCorpus loads the big generic list, preferring the local SQLite
// cache over a fresh download. Nothing here is fatal: a failed fetch leaves
// an empty generic corpus and requests simply find no matches.
func (app *App) loadGenericCorpus(ctx context.Context, cacheDir, url string, timeout time.Duration) {
	store, err := corpus.OpenStore(cacheDir)
	if err != nil {
		logWarn("Corpus cache unavailable: %v", err)
	} else {
		app.Store = store
		words, err := store.LoadWords(ctx, corpus.SourceGeneric)
		if err != nil {
			logWarn("Corpus cache read failed: %v", err)
		} else if len(words) > 0 {
			c := corpus.New(words)
			app.Provider.SetGeneric(c)
			logInfo("Generic list loaded from cache: %d words", c.Len())
			return
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	c, err := corpus.Fetch(fetchCtx, http.DefaultClient, url)
	if err != nil {
		logWarn("Generic list failed to load: %v", err)
		return
	}
	app.Provider.SetGeneric(c)
	logInfo("Generic list loaded: %d words", c.Len())

	if app.Store != nil {
		if err := app.Store.SaveWords(ctx, corpus.SourceGeneric, c.Words()); err != nil {
			logWarn("Failed to cache generic list: %v", err)
		} else {
			logInfo("Generic list cached for future startups")
		}
	}
}

// newRouter wires the gin engine with middleware and routes.
func (app *App) newRouter() *gin.Engine {
	router := gin.Default()

	router.Use(ginGzip.Gzip(ginGzip.DefaultCompression))

	if err := router.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logWarn("Failed to set trusted proxies: %v", err)
	}

	// Solve results depend on corpus state, so responses are never cacheable.
	router.Use(cachecontrol.New(cachecontrol.Config{
		NoStore:        true,
		NoCache:        true,
		MustRevalidate: true,
	}))
	router.Use(requestIDMiddleware())

	router.GET(RouteHome, app.indexHandler)
	router.POST(RouteSolve, app.rateLimitMiddleware(), app.solveHandler)
	router.GET(RouteHealth, app.healthzHandler)
	return router
}

func startServer(router *gin.Engine, cleanup func()) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
		<-sigint
		logInfo("Shutdown signal received, shutting down server gracefully...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logWarn("HTTP server Shutdown: %v", err)
		}
		cleanup()
		close(idleConnsClosed)
	}()

	logInfo("Server starting on http://localhost:%s", port)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		logFatal("Server failed to start: %v", err)
	}
	<-idleConnsClosed
	logInfo("Server shutdown complete")
}
