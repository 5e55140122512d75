// Package server exposes the ledger's command/query API over HTTP so a
// browser front end can drive it. It renders nothing itself.
package server

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
	"github.com/arifulislam08173/bd-stockmarket-simulation/store"
)

type Server struct {
	addr     string
	exchange *market.Exchange
	provider session.Provider
	snaps    store.Store // optional; nil disables persistence
	log      *logrus.Logger
	router   *gin.Engine

	mu       sync.Mutex
	sessions map[string]*ledger.Ledger // bearer token -> session ledger
}

type Config struct {
	Addr     string
	Exchange *market.Exchange
	Provider session.Provider
	Snaps    store.Store
	Log      *logrus.Logger
}

func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		addr:     cfg.Addr,
		exchange: cfg.Exchange,
		provider: cfg.Provider,
		snaps:    cfg.Snaps,
		log:      cfg.Log,
		router:   router,
		sessions: make(map[string]*ledger.Ledger),
	}
	router.Use(s.requestLog())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.router.Group("/api/v1")

	api.POST("/auth/login", s.handleLogin)
	api.POST("/auth/signup", s.handleSignup)

	api.GET("/stocks", s.handleStocks)
	api.GET("/stocks/gainers", s.handleGainers)
	api.GET("/stocks/losers", s.handleLosers)
	api.GET("/stocks/active", s.handleActive)
	api.GET("/stocks/:symbol", s.handleStock)
	api.GET("/indices", s.handleIndices)

	auth := api.Group("", s.requireSession())
	auth.POST("/auth/logout", s.handleLogout)
	auth.POST("/trades/buy", s.handleBuy)
	auth.POST("/trades/sell", s.handleSell)
	auth.GET("/trades", s.handleTrades)
	auth.GET("/portfolio", s.handlePortfolio)
	auth.GET("/account", s.handleAccount)
	auth.GET("/watchlist", s.handleWatchlist)
	auth.PUT("/watchlist/:symbol", s.handleWatch)
	auth.DELETE("/watchlist/:symbol", s.handleUnwatch)
}

// Run serves until the listener fails.
func (s *Server) Run() error {
	s.log.WithField("addr", s.addr).Info("serving market simulator API")
	return s.router.Run(s.addr)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(start).String(),
		}).Info("request")
	}
}

// requireSession resolves the bearer token to the session's ledger.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		s.mu.Lock()
		l, ok := s.sessions[token]
		s.mu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown session"})
			return
		}

		c.Set(ctxLedger, l)
		c.Set(ctxToken, token)
		c.Next()
	}
}

const (
	ctxLedger = "ledger"
	ctxToken  = "token"
)

func sessionLedger(c *gin.Context) *ledger.Ledger {
	return c.MustGet(ctxLedger).(*ledger.Ledger)
}

// openSession builds the session ledger, restoring a stored snapshot when
// one exists, and returns the new bearer token.
func (s *Server) openSession(ident session.Identity) (string, *ledger.Ledger, error) {
	l := ledger.New(ident, s.exchange)

	if s.snaps != nil {
		snap, ok, err := s.snaps.Load()
		if err != nil {
			return "", nil, err
		}
		if ok && snap.Owner.Email == ident.Email {
			restored, err := ledger.FromSnapshot(snap, s.exchange)
			if err != nil {
				return "", nil, err
			}
			l = restored
		}
	}

	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = l
	s.mu.Unlock()
	return token, l, nil
}

// persist saves the session ledger when a store is configured. Persistence
// failures are logged, not surfaced: the in-memory commit already happened.
func (s *Server) persist(l *ledger.Ledger) {
	if s.snaps == nil {
		return
	}
	if err := s.snaps.Save(l.Snapshot()); err != nil {
		s.log.WithError(err).Warn("saving snapshot failed")
	}
}
