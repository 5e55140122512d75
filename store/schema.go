package store

// Monetary columns are TEXT holding exact decimal strings; REAL would
// reintroduce the float drift the ledger avoids.
const Schema = `
CREATE TABLE IF NOT EXISTS account (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	owner_id TEXT NOT NULL,
	owner_name TEXT NOT NULL,
	owner_email TEXT NOT NULL,
	starting_balance TEXT NOT NULL,
	cash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS positions (
	symbol TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	avg_cost TEXT NOT NULL,
	last_price TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	name TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price TEXT NOT NULL,
	total TEXT NOT NULL,
	cost_basis TEXT NOT NULL,
	executed_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS watchlist (
	symbol TEXT PRIMARY KEY
);

CREATE INDEX IF NOT EXISTS idx_trades_executed_at ON trades(executed_at);
`
