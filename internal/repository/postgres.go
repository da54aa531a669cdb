package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

// listingColumns are the catalog fields selected on every query, plus the
// review aggregates the ranker needs.
const listingColumns = `
	l.id, l.slug, l.title, l.description, l.category,
	l.location_value, l.location_description, l.meeting_point,
	l.location_type, l.duration_category,
	l.group_styles, l.environments, l.activity_forms, l.seo_keywords,
	l.images, l.guest_capacity, l.vin_points, l.status,
	COALESCE(AVG(rv.rating), 0) AS avg_rating,
	COUNT(rv.id) AS review_count`

// PostgresRepository implements the catalog collaborator and the search
// analytics log on top of PostgreSQL.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Search runs one tier's filter set. Only the dimensions toggled on in the
// filter contribute WHERE clauses; approved status always applies.
func (r *PostgresRepository) Search(ctx context.Context, f model.FilterSet) ([]model.Listing, error) {
	whereClauses := []string{"l.status = 'approved'"}
	args := []interface{}{}
	argIndex := 1

	if f.MatchCategory && f.Category != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("LOWER(l.category) = LOWER($%d)", argIndex))
		args = append(args, *f.Category)
		argIndex++
	}

	if f.MatchLocation && f.Location != nil {
		// comma-tokenized so "Rome, Italy" also matches city-only or
		// country-only location values
		var tokenClauses []string
		for _, token := range locationTokens(*f.Location) {
			tokenClauses = append(tokenClauses, fmt.Sprintf(
				"(l.location_value ILIKE $%d OR l.location_description ILIKE $%d OR l.meeting_point ILIKE $%d)",
				argIndex, argIndex, argIndex))
			args = append(args, "%"+token+"%")
			argIndex++
		}
		if len(tokenClauses) > 0 {
			whereClauses = append(whereClauses, "("+strings.Join(tokenClauses, " OR ")+")")
		}
	}

	if f.MatchKeywords && len(f.Keywords) > 0 {
		var kwClauses []string
		for _, kw := range f.Keywords {
			kwClauses = append(kwClauses, fmt.Sprintf(
				"(l.title ILIKE $%d OR l.description ILIKE $%d OR l.category ILIKE $%d OR l.seo_keywords::text ILIKE $%d OR l.group_styles::text ILIKE $%d OR l.activity_forms::text ILIKE $%d OR l.environments::text ILIKE $%d)",
				argIndex, argIndex, argIndex, argIndex, argIndex, argIndex, argIndex))
			args = append(args, "%"+kw+"%")
			argIndex++
		}
		whereClauses = append(whereClauses, "("+strings.Join(kwClauses, " OR ")+")")
	}

	if f.MatchAvailability && f.Dates != nil {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM reservations res WHERE res.listing_id = l.id AND res.start_date <= $%d AND res.end_date >= $%d)",
			argIndex, argIndex+1))
		args = append(args, f.Dates.End, f.Dates.Start)
		argIndex += 2
	}

	if f.MatchCapacity && f.GuestCount != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("l.guest_capacity >= $%d", argIndex))
		args = append(args, *f.GuestCount)
		argIndex++
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 60
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		LEFT JOIN reviews rv ON rv.listing_id = l.id
		WHERE %s
		GROUP BY l.id
		ORDER BY l.vin_points DESC, l.id
		LIMIT $%d
	`, listingColumns, strings.Join(whereClauses, " AND "), argIndex)
	args = append(args, limit)

	var listings []model.Listing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// GetBySlug retrieves a single approved listing.
func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*model.Listing, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings l
		LEFT JOIN reviews rv ON rv.listing_id = l.id
		WHERE l.slug = $1 AND l.status = 'approved'
		GROUP BY l.id
	`, listingColumns)

	var listing model.Listing
	if err := r.db.GetContext(ctx, &listing, query, slug); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// LogSearch records one search analytics row.
func (r *PostgresRepository) LogSearch(ctx context.Context, entry model.SearchLog) error {
	criteria, err := json.Marshal(entry.Criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}
	query := `
		INSERT INTO search_logs (id, query, criteria, tier, result_count, took_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, entry.ID, entry.Query, criteria, entry.Tier, entry.ResultCount, entry.TookMs); err != nil {
		return fmt.Errorf("failed to log search: %w", err)
	}
	return nil
}

// LogFeedback records a user action against an earlier search.
func (r *PostgresRepository) LogFeedback(ctx context.Context, searchID string, listingID int64, action string) error {
	query := `
		INSERT INTO search_feedback (search_id, listing_id, action, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := r.db.ExecContext(ctx, query, searchID, listingID, action); err != nil {
		return fmt.Errorf("failed to log feedback: %w", err)
	}
	return nil
}

// Interests returns the caller's profile interests for the suggestion branch.
func (r *PostgresRepository) Interests(ctx context.Context, userID string) ([]string, error) {
	var raw model.JSONArray
	err := r.db.GetContext(ctx, &raw, `SELECT interests FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interests: %w", err)
	}
	return raw, nil
}

func locationTokens(location string) []string {
	var tokens []string
	for _, part := range strings.Split(location, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens
}
