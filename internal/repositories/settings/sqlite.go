package settings

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/Skelly0/DuelBot/internal/domain/settings"
	duelerr "github.com/Skelly0/DuelBot/internal/errors"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

var _ Repository = (*SQLiteStore)(nil)

// SQLiteStore persists guild settings in a SQLite file
type SQLiteStore struct {
	sqlDB *sql.DB
}

// OpenSQLite opens (or creates) the settings database at path and applies the schema
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Get retrieves the settings for a guild
func (s *SQLiteStore) Get(ctx context.Context, guildID string) (*settings.Settings, error) {
	var (
		talent      bool
		rolesJSON   string
		modsJSON    string
		updatedAtMs int64
	)
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT talent_bonus_enabled, triple_stance_roles, moderators, updated_at
		 FROM guild_settings WHERE guild_id = ?`,
		guildID,
	).Scan(&talent, &rolesJSON, &modsJSON, &updatedAtMs)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, duelerr.NotFoundf("settings for guild %s not found", guildID)
		}
		return nil, fmt.Errorf("query settings: %w", err)
	}

	out := settings.Default(guildID)
	out.TalentBonusEnabled = talent
	out.UpdatedAt = time.UnixMilli(updatedAtMs).UTC()
	if err := json.Unmarshal([]byte(rolesJSON), &out.TripleStanceRoles); err != nil {
		return nil, fmt.Errorf("decode triple stance roles: %w", err)
	}
	if err := json.Unmarshal([]byte(modsJSON), &out.Moderators); err != nil {
		return nil, fmt.Errorf("decode moderators: %w", err)
	}
	return out, nil
}

// Save upserts the settings for a guild
func (s *SQLiteStore) Save(ctx context.Context, in *settings.Settings) error {
	if in == nil {
		return fmt.Errorf("settings cannot be nil")
	}
	if in.GuildID == "" {
		return fmt.Errorf("guild ID cannot be empty")
	}

	roles, err := json.Marshal(nonNil(in.TripleStanceRoles))
	if err != nil {
		return fmt.Errorf("encode triple stance roles: %w", err)
	}
	mods, err := json.Marshal(nonNil(in.Moderators))
	if err != nil {
		return fmt.Errorf("encode moderators: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO guild_settings (guild_id, talent_bonus_enabled, triple_stance_roles, moderators, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(guild_id) DO UPDATE SET
		   talent_bonus_enabled = excluded.talent_bonus_enabled,
		   triple_stance_roles = excluded.triple_stance_roles,
		   moderators = excluded.moderators,
		   updated_at = excluded.updated_at`,
		in.GuildID,
		in.TalentBonusEnabled,
		string(roles),
		string(mods),
		in.UpdatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
