package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema is the DDL for all tables. Idempotent; applied at server startup.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id VARCHAR(36) NOT NULL,
	email VARCHAR(255) NOT NULL,
	display_name VARCHAR(255) NOT NULL DEFAULT '',
	photo_url VARCHAR(1024) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id),
	UNIQUE KEY uniq_users_email (email)
);

CREATE TABLE IF NOT EXISTS decks (
	id VARCHAR(36) NOT NULL,
	user_id VARCHAR(36) NOT NULL,
	name VARCHAR(255) NOT NULL,
	kanji_count INT NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NULL,
	last_studied_at DATETIME NULL,
	PRIMARY KEY (id),
	KEY idx_decks_user_created (user_id, created_at)
);

CREATE TABLE IF NOT EXISTS deck_kanji (
	deck_id VARCHAR(36) NOT NULL,
	user_id VARCHAR(36) NOT NULL,
	slug VARCHAR(64) NOT NULL,
	` + "`character`" + ` VARCHAR(8) NOT NULL,
	reading VARCHAR(64) NOT NULL DEFAULT '',
	meanings JSON NOT NULL,
	date_added BIGINT NOT NULL,
	PRIMARY KEY (deck_id, slug),
	KEY idx_deck_kanji_added (deck_id, date_added)
);

CREATE TABLE IF NOT EXISTS favorites (
	user_id VARCHAR(36) NOT NULL,
	slug VARCHAR(64) NOT NULL,
	` + "`character`" + ` VARCHAR(8) NOT NULL,
	reading VARCHAR(64) NOT NULL DEFAULT '',
	meanings JSON NOT NULL,
	date_added BIGINT NOT NULL,
	PRIMARY KEY (user_id, slug),
	KEY idx_favorites_added (user_id, date_added)
);
`

// EnsureSchema applies the DDL. Requires a connection opened with
// multi-statement support.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("db.ExecContext(schema) > %w", err)
	}
	return nil
}
