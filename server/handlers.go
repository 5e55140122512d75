package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
	"github.com/arifulislam08173/bd-stockmarket-simulation/market"
	"github.com/arifulislam08173/bd-stockmarket-simulation/session"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tradeRequest struct {
	Symbol   string `json:"symbol" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident, err := s.provider.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	s.startSession(c, ident)
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ident, err := s.provider.Signup(req.Name, req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	s.startSession(c, ident)
}

func (s *Server) startSession(c *gin.Context, ident session.Identity) {
	token, l, err := s.openSession(ident)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":    ident.ID,
			"name":  ident.Name,
			"email": ident.Email,
		},
		"balance": l.Cash(),
	})
}

// handleLogout destroys the session; the ledger is reset, not carried over.
func (s *Server) handleLogout(c *gin.Context) {
	s.persist(sessionLedger(c))

	token := c.MustGet(ctxToken).(string)
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()

	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (s *Server) handleStocks(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, s.exchange.Search(q))
		return
	}
	c.JSON(http.StatusOK, s.exchange.Stocks())
}

func (s *Server) handleStock(c *gin.Context) {
	stock, ok := s.exchange.Lookup(c.Param("symbol"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown symbol"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stock":       stock,
		"performance": market.Classify(stock.ChangePercent),
	})
}

func (s *Server) handleIndices(c *gin.Context) {
	c.JSON(http.StatusOK, s.exchange.Indices())
}

func (s *Server) handleGainers(c *gin.Context) {
	c.JSON(http.StatusOK, s.exchange.TopGainers())
}

func (s *Server) handleLosers(c *gin.Context) {
	c.JSON(http.StatusOK, s.exchange.TopLosers())
}

func (s *Server) handleActive(c *gin.Context) {
	c.JSON(http.StatusOK, s.exchange.MostActive())
}

func (s *Server) handleBuy(c *gin.Context) {
	s.handleTrade(c, func(l *ledger.Ledger, symbol string, qty int64, price decimal.Decimal) (ledger.Trade, error) {
		return l.Buy(symbol, qty, price)
	})
}

func (s *Server) handleSell(c *gin.Context) {
	s.handleTrade(c, func(l *ledger.Ledger, symbol string, qty int64, price decimal.Decimal) (ledger.Trade, error) {
		return l.Sell(symbol, qty, price)
	})
}

func (s *Server) handleTrade(c *gin.Context, exec func(*ledger.Ledger, string, int64, decimal.Decimal) (ledger.Trade, error)) {
	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Snapshot the quote once; the same observation prices the whole commit.
	stock, ok := s.exchange.Lookup(req.Symbol)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown symbol"})
		return
	}

	l := sessionLedger(c)
	trade, err := exec(l, req.Symbol, req.Quantity, stock.LTP)
	if err != nil {
		c.JSON(declineStatus(err), gin.H{"error": err.Error()})
		return
	}

	s.persist(l)
	c.JSON(http.StatusOK, gin.H{"trade": trade, "balance": l.Cash()})
}

// declineStatus maps the ledger's decline taxonomy onto HTTP statuses.
func declineStatus(err error) int {
	switch {
	case errors.Is(err, ledger.ErrUnknownSymbol):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, ledger.ErrInsufficientShares):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type positionView struct {
	ledger.Position
	MarketValue   decimal.Decimal `json:"market_value"`
	Profit        decimal.Decimal `json:"profit"`
	ProfitPercent decimal.Decimal `json:"profit_percent"`
}

// handlePortfolio refreshes prices first so derived values reflect the
// latest quotes.
func (s *Server) handlePortfolio(c *gin.Context) {
	l := sessionLedger(c)
	l.RefreshPrices()

	out := []positionView{}
	for pos := range l.Positions() {
		out = append(out, positionView{
			Position:      pos,
			MarketValue:   pos.MarketValue(),
			Profit:        pos.UnrealizedPL(),
			ProfitPercent: pos.PLPercent().Round(2),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleTrades(c *gin.Context) {
	c.JSON(http.StatusOK, sessionLedger(c).Trades())
}

func (s *Server) handleAccount(c *gin.Context) {
	l := sessionLedger(c)
	l.RefreshPrices()
	c.JSON(http.StatusOK, gin.H{
		"cash":      l.Cash(),
		"net_worth": l.NetWorth(),
	})
}

func (s *Server) handleWatchlist(c *gin.Context) {
	c.JSON(http.StatusOK, sessionLedger(c).Watchlist())
}

func (s *Server) handleWatch(c *gin.Context) {
	l := sessionLedger(c)
	l.Watch(c.Param("symbol"))
	s.persist(l)
	c.JSON(http.StatusOK, l.Watchlist())
}

func (s *Server) handleUnwatch(c *gin.Context) {
	l := sessionLedger(c)
	l.Unwatch(c.Param("symbol"))
	s.persist(l)
	c.JSON(http.StatusOK, l.Watchlist())
}
