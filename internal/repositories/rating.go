package repositories

import (
	"context"
	"database/sql"
	"math"
)

// recomputeProviderRating recalculates a provider's aggregate rating from the
// complete set of reviews attached to any of the provider's services, and
// persists it onto the user row. It runs on the caller's transaction so the
// stored aggregate can never drift from the review set it was computed from.
// An empty set clears the rating to NULL instead of storing 0.
func recomputeProviderRating(ctx context.Context, tx *sql.Tx, providerID int) error {
	var (
		avg   sql.NullFloat64
		count int
	)
	query := `
		SELECT AVG(r.rating), COUNT(*)
		FROM reviews r
		JOIN services s ON r.service_id = s.id
		WHERE s.provider_id = ?
	`
	if err := tx.QueryRowContext(ctx, query, providerID).Scan(&avg, &count); err != nil {
		return err
	}

	if count == 0 {
		_, err := tx.ExecContext(ctx,
			`UPDATE users SET rating = NULL, total_reviews = 0, updated_at = NOW() WHERE id = ?`,
			providerID)
		return err
	}

	_, err := tx.ExecContext(ctx,
		`UPDATE users SET rating = ?, total_reviews = ?, updated_at = NOW() WHERE id = ?`,
		roundRating(avg.Float64), count, providerID)
	return err
}

// roundRating rounds an average to one decimal place, the precision the
// rating column carries.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

// buildDistribution counts reviews per star value; every bucket 1..5 is
// present even when empty.
func buildDistribution(ratings []int) map[int]int {
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range ratings {
		if r >= 1 && r <= 5 {
			dist[r]++
		}
	}
	return dist
}
