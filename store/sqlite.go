package store

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/arifulislam08173/bd-stockmarket-simulation/ledger"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Save(snap ledger.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"account", "positions", "trades", "watchlist"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}

	_, err = tx.Exec(`
		INSERT INTO account (id, owner_id, owner_name, owner_email, starting_balance, cash)
		VALUES (1, ?, ?, ?, ?, ?)`,
		snap.Owner.ID, snap.Owner.Name, snap.Owner.Email,
		snap.Owner.StartingBalance.String(), snap.Cash.String(),
	)
	if err != nil {
		return err
	}

	for _, p := range snap.Positions {
		_, err = tx.Exec(`
			INSERT INTO positions (symbol, name, quantity, avg_cost, last_price)
			VALUES (?, ?, ?, ?, ?)`,
			p.Symbol, p.Name, p.Quantity, p.AvgCost.String(), p.LastPrice.String(),
		)
		if err != nil {
			return err
		}
	}

	for _, t := range snap.Trades {
		_, err = tx.Exec(`
			INSERT INTO trades
			(trade_id, symbol, name, side, quantity, price, total, cost_basis, executed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Symbol, t.Name, string(t.Side), t.Quantity,
			t.Price.String(), t.Total.String(), t.CostBasis.String(), t.Time,
		)
		if err != nil {
			return err
		}
	}

	for _, sym := range snap.Watchlist {
		if _, err := tx.Exec(`INSERT INTO watchlist (symbol) VALUES (?)`, sym); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLite) Load() (ledger.Snapshot, bool, error) {
	var snap ledger.Snapshot
	var startingBalance, cash string

	row := s.db.QueryRow(`
		SELECT owner_id, owner_name, owner_email, starting_balance, cash
		FROM account WHERE id = 1`)
	err := row.Scan(&snap.Owner.ID, &snap.Owner.Name, &snap.Owner.Email, &startingBalance, &cash)
	if err == sql.ErrNoRows {
		return ledger.Snapshot{}, false, nil
	}
	if err != nil {
		return ledger.Snapshot{}, false, err
	}

	if snap.Owner.StartingBalance, err = parseMoney("starting_balance", startingBalance); err != nil {
		return ledger.Snapshot{}, false, err
	}
	if snap.Cash, err = parseMoney("cash", cash); err != nil {
		return ledger.Snapshot{}, false, err
	}

	if snap.Positions, err = s.loadPositions(); err != nil {
		return ledger.Snapshot{}, false, err
	}
	if snap.Trades, err = s.loadTrades(); err != nil {
		return ledger.Snapshot{}, false, err
	}
	if snap.Watchlist, err = s.loadWatchlist(); err != nil {
		return ledger.Snapshot{}, false, err
	}

	return snap, true, nil
}

func (s *SQLite) loadPositions() ([]ledger.Position, error) {
	rows, err := s.db.Query(`
		SELECT symbol, name, quantity, avg_cost, last_price
		FROM positions ORDER BY symbol ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ledger.Position
	for rows.Next() {
		var p ledger.Position
		var avgCost, lastPrice string
		if err := rows.Scan(&p.Symbol, &p.Name, &p.Quantity, &avgCost, &lastPrice); err != nil {
			return nil, err
		}
		if p.AvgCost, err = parseMoney("avg_cost", avgCost); err != nil {
			return nil, err
		}
		if p.LastPrice, err = parseMoney("last_price", lastPrice); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLite) loadTrades() ([]ledger.Trade, error) {
	rows, err := s.db.Query(`
		SELECT trade_id, symbol, name, side, quantity, price, total, cost_basis, executed_at
		FROM trades ORDER BY rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrades(rows)
}

func (s *SQLite) loadWatchlist() ([]string, error) {
	rows, err := s.db.Query(`SELECT symbol FROM watchlist ORDER BY symbol ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var sym string
		if err := rows.Scan(&sym); err != nil {
			return nil, err
		}
		out = append(out, sym)
	}
	return out, rows.Err()
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func parseMoney(col, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("corrupt %s %q: %w", col, v, err)
	}
	return d, nil
}
