package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// SettingsSchemaVersion tags the persisted settings envelope so future field
// changes can be migrated explicitly instead of assumed.
const SettingsSchemaVersion = 1

// Article pairs generated content with the settings snapshot that produced it
type Article struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Keywords  string    `json:"keywords" db:"keywords"`
	Settings  Settings  `json:"settings" db:"-"` // stored as JSONB envelope
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ArticleSummary is the list-view projection of an Article
type ArticleSummary struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Keywords    string      `json:"keywords"`
	ArticleType ArticleType `json:"article_type"`
	ArticleSize ArticleSize `json:"article_size"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Summary returns the list-view projection of the article
func (a *Article) Summary() ArticleSummary {
	return ArticleSummary{
		ID:          a.ID,
		Title:       a.Title,
		Keywords:    a.Keywords,
		ArticleType: a.Settings.ArticleType,
		ArticleSize: a.Settings.ArticleSize,
		CreatedAt:   a.CreatedAt,
	}
}

// settingsEnvelope is the on-disk shape of the settings blob
type settingsEnvelope struct {
	Version  int      `json:"version"`
	Settings Settings `json:"settings"`
}

// MarshalSettings encodes settings into the versioned storage envelope
func MarshalSettings(s Settings) ([]byte, error) {
	return json.Marshal(settingsEnvelope{
		Version:  SettingsSchemaVersion,
		Settings: s,
	})
}

// UnmarshalSettings decodes the versioned storage envelope. Unknown versions
// are rejected so migrations stay explicit.
func UnmarshalSettings(data []byte) (Settings, error) {
	var env settingsEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Settings{}, fmt.Errorf("decode settings envelope: %w", err)
	}
	if env.Version != SettingsSchemaVersion {
		return Settings{}, fmt.Errorf("unsupported settings schema version %d", env.Version)
	}
	return env.Settings, nil
}
