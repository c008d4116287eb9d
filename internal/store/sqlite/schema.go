package sqlite

// schema is applied idempotently on Open.
// The NOT NULL / CHECK constraints back up the validation done in
// domain.NewRecord; they should never fire for input that passed it.
const schema = `
CREATE TABLE IF NOT EXISTS url (
	id          TEXT PRIMARY KEY NOT NULL,
	url         TEXT NOT NULL CHECK (url <> ''),
	title       TEXT NOT NULL CHECK (title <> ''),
	description TEXT,
	created_at  TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const (
	queryCount   = `SELECT COUNT(*) FROM url`
	queryInsert  = `INSERT INTO url (id, url, title, description, created_at) VALUES (?, ?, ?, ?, ?)`
	queryGetInfo = `SELECT url, title, description FROM url WHERE id = ?`
	queryGetURL  = `SELECT url FROM url WHERE id = ?`
)
