package recommendation

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rmoura/advisor/internal/domain"
)

// StoredRecommendation is a persisted recommendation record. The engine
// output itself is immutable; history is append-only.
type StoredRecommendation struct {
	UUID           string                 `json:"uuid"`
	RiskProfile    domain.RiskProfile     `json:"risk_profile"`
	Strategy       string                 `json:"strategy"`
	Objective      domain.ObjectiveCode   `json:"objective"`
	HorizonYears   int                    `json:"horizon_years"`
	InitialAmount  float64                `json:"initial_amount"`
	IsCompliant    bool                   `json:"is_compliant"`
	Recommendation *domain.Recommendation `json:"recommendation"`
	CreatedAt      time.Time              `json:"created_at"`
}

// Repository is a keyed record store for generated recommendations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a recommendation repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repository", "recommendation").Logger(),
	}
}

// InitSchema creates the recommendations table if missing
func (r *Repository) InitSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS recommendations (
			uuid            TEXT PRIMARY KEY,
			risk_profile    TEXT NOT NULL,
			strategy        TEXT NOT NULL,
			objective       TEXT NOT NULL,
			horizon_years   INTEGER NOT NULL,
			initial_amount  REAL NOT NULL,
			is_compliant    INTEGER NOT NULL,
			payload         TEXT NOT NULL,
			created_at      TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create recommendations table: %w", err)
	}
	return nil
}

// Save stores a recommendation and returns its generated key
func (r *Repository) Save(rec *domain.Recommendation) (string, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal recommendation: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	_, err = r.db.Exec(`
		INSERT INTO recommendations
			(uuid, risk_profile, strategy, objective, horizon_years, initial_amount, is_compliant, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id,
		string(rec.Risk.Profile),
		rec.Strategy.Name,
		string(rec.Goal.Objective),
		rec.Goal.HorizonYears,
		rec.Goal.InitialAmount,
		boolToInt(rec.Compliance.IsCompliant),
		string(payload),
		now,
	)
	if err != nil {
		return "", fmt.Errorf("insert recommendation: %w", err)
	}

	r.log.Debug().Str("uuid", id).Str("strategy", rec.Strategy.Name).Msg("Recommendation stored")
	return id, nil
}

// GetByUUID loads a stored recommendation by its key
func (r *Repository) GetByUUID(id string) (*StoredRecommendation, error) {
	row := r.db.QueryRow(`
		SELECT uuid, risk_profile, strategy, objective, horizon_years, initial_amount, is_compliant, payload, created_at
		FROM recommendations
		WHERE uuid = ?
	`, id)

	stored, err := scanStored(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query recommendation %s: %w", id, err)
	}
	return stored, nil
}

// List returns the most recent stored recommendations, newest first
func (r *Repository) List(limit int) ([]*StoredRecommendation, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(`
		SELECT uuid, risk_profile, strategy, objective, horizon_years, initial_amount, is_compliant, payload, created_at
		FROM recommendations
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	defer rows.Close()

	var out []*StoredRecommendation
	for rows.Next() {
		stored, err := scanStored(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recommendation: %w", err)
		}
		out = append(out, stored)
	}
	return out, rows.Err()
}

// scanner matches both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanStored(s scanner) (*StoredRecommendation, error) {
	var stored StoredRecommendation
	var profile, objective, payload string
	var compliant int

	err := s.Scan(
		&stored.UUID,
		&profile,
		&stored.Strategy,
		&objective,
		&stored.HorizonYears,
		&stored.InitialAmount,
		&compliant,
		&payload,
		&stored.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	stored.RiskProfile = domain.RiskProfile(profile)
	stored.Objective = domain.ObjectiveCode(objective)
	stored.IsCompliant = compliant != 0

	var rec domain.Recommendation
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}
	stored.Recommendation = &rec

	return &stored, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
