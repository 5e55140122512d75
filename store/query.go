package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
)

// GetTrade returns a single trade record by ID.
func (s *SQLite) GetTrade(tradeID string) (ledger.Trade, error) {
	row := s.db.QueryRow(`
		SELECT trade_id, symbol, name, side, quantity, price, total, cost_basis, executed_at
		FROM trades
		WHERE trade_id = ?`, tradeID)

	t, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return ledger.Trade{}, fmt.Errorf("trade %q not found", tradeID)
	}
	return t, err
}

// ListTrades returns the stored trade log, newest first.
func (s *SQLite) ListTrades() ([]ledger.Trade, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, symbol, name, side, quantity, price, total, cost_basis, executed_at
		FROM trades ORDER BY rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrades(rows)
}

// ListTradesBetween returns trades executed within [start, end), oldest
// first.
func (s *SQLite) ListTradesBetween(start, end time.Time) ([]ledger.Trade, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, symbol, name, side, quantity, price, total, cost_basis, executed_at
		FROM trades
		WHERE executed_at >= ? AND executed_at < ?
		ORDER BY executed_at ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrades(rows)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrade(row scanner) (ledger.Trade, error) {
	var t ledger.Trade
	var side, price, total, costBasis string

	err := row.Scan(&t.ID, &t.Symbol, &t.Name, &side, &t.Quantity, &price, &total, &costBasis, &t.Time)
	if err != nil {
		return ledger.Trade{}, err
	}

	t.Side = ledger.Side(side)
	if t.Price, err = parseMoney("price", price); err != nil {
		return ledger.Trade{}, err
	}
	if t.Total, err = parseMoney("total", total); err != nil {
		return ledger.Trade{}, err
	}
	if t.CostBasis, err = parseMoney("cost_basis", costBasis); err != nil {
		return ledger.Trade{}, err
	}
	return t, nil
}

func scanTrades(rows *sql.Rows) ([]ledger.Trade, error) {
	var out []ledger.Trade
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
