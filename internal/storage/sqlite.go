// Package storage implementa o log de buscas em SQLite local.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"
	"github.com/medpub/app-busca-medica/internal/models"
)

// SQLiteQueryLog implementa o log de buscas (append-only) sobre SQLite
type SQLiteQueryLog struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteQueryLog abre ou cria o banco em dbPath e inicializa o schema.
// Diretórios pais são criados quando não existem.
func NewSQLiteQueryLog(dbPath string) (*SQLiteQueryLog, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("erro ao criar diretório do banco: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao habilitar WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("erro ao inicializar schema: %w", err)
	}

	return &SQLiteQueryLog{db: db, now: time.Now}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS search_queries (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL DEFAULT '',
		query TEXT NOT NULL,
		normalized_query TEXT NOT NULL,
		results_count INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_search_queries_created_at ON search_queries(created_at);
	CREATE INDEX IF NOT EXISTS idx_search_queries_user ON search_queries(user_id, created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Append grava uma busca. Entradas sem ID recebem um uuid; created_at é gravado em milissegundos.
func (s *SQLiteQueryLog) Append(ctx context.Context, entry models.SearchQueryLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO search_queries (id, user_id, query, normalized_query, results_count, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.UserID, entry.Query, strings.ToLower(strings.TrimSpace(entry.Query)),
		entry.ResultsCount, entry.Timestamp.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("erro ao registrar busca: %w", err)
	}
	return nil
}

// RecentByUser retorna as buscas mais recentes do usuário, mais novas primeiro
func (s *SQLiteQueryLog) RecentByUser(ctx context.Context, userID string, limit int) ([]models.SearchQueryLogEntry, error) {
	if limit <= 0 {
		return []models.SearchQueryLogEntry{}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, query, results_count, created_at
		 FROM search_queries WHERE user_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler buscas do usuário: %w", err)
	}
	return scanEntries(rows)
}

// Since retorna as buscas com created_at >= since, em ordem cronológica
func (s *SQLiteQueryLog) Since(ctx context.Context, since time.Time) ([]models.SearchQueryLogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, query, results_count, created_at
		 FROM search_queries WHERE created_at >= ?
		 ORDER BY created_at ASC, rowid ASC`,
		since.UnixMilli(),
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler log de buscas: %w", err)
	}
	return scanEntries(rows)
}

// Health verifica se o banco responde
func (s *SQLiteQueryLog) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close fecha o banco
func (s *SQLiteQueryLog) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]models.SearchQueryLogEntry, error) {
	defer rows.Close()

	entries := make([]models.SearchQueryLogEntry, 0)
	for rows.Next() {
		var e models.SearchQueryLogEntry
		var createdAt int64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Query, &e.ResultsCount, &createdAt); err != nil {
			return nil, fmt.Errorf("erro ao ler linha do log: %w", err)
		}
		e.Timestamp = time.UnixMilli(createdAt).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
