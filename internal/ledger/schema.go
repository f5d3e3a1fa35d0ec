package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS ledger (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	name TEXT NOT NULL,
	amount REAL NOT NULL,
	remaining REAL NOT NULL,
	total_paid REAL NOT NULL,
	total_interest REAL NOT NULL,
	account_balance REAL NOT NULL,
	interval TEXT NOT NULL,
	type TEXT NOT NULL,
	note TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ledger_date ON ledger(date);
CREATE INDEX IF NOT EXISTS idx_ledger_name ON ledger(name);
`
