package clipper

import (
	"context"
	"database/sql"
	"time"

	"github.com/kingb12/sprouts-coupons/lib/scrapers/sprouts"
)

// Store keeps the run history, replacing the pile of report log
// files earlier versions of this tool appended to.
type Store struct {
	db *sql.DB
}

func NewStore(database *sql.DB) Store {
	return Store{db: database}
}

type RunRecord struct {
	Id           string
	Time         time.Time
	Total        int
	Clipped      int
	Available    int
	NewlyClipped []sprouts.Offer
}

func (s Store) RecordRun(ctx context.Context, record RunRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO runs (id, time, total, clipped, available, newly_clipped)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.Id,
		record.Time.Unix(),
		record.Total,
		record.Clipped,
		record.Available,
		len(record.NewlyClipped),
	)
	if err != nil {
		return err
	}

	for _, offer := range record.NewlyClipped {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO clipped_offers (run_id, offer_id, name, expires_on)
			 VALUES (?, ?, ?, ?)`,
			record.Id, offer.OfferId, offer.Name, offer.ExpiresOn,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

type RunSummary struct {
	Id           string
	Time         time.Time
	Total        int
	Clipped      int
	Available    int
	NewlyClipped int
}

func (s Store) ListRuns(ctx context.Context, limit int) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, time, total, clipped, available, newly_clipped
		 FROM runs ORDER BY time DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var summary RunSummary
		var unixTime int64
		err = rows.Scan(
			&summary.Id,
			&unixTime,
			&summary.Total,
			&summary.Clipped,
			&summary.Available,
			&summary.NewlyClipped,
		)
		if err != nil {
			return nil, err
		}
		summary.Time = time.Unix(unixTime, 0)
		out = append(out, summary)
	}
	return out, rows.Err()
}

func (s Store) ClippedOffers(ctx context.Context, runId string) ([]sprouts.Offer, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT offer_id, name, expires_on FROM clipped_offers WHERE run_id = ?`,
		runId,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []sprouts.Offer
	for rows.Next() {
		offer := sprouts.Offer{IsClipped: true}
		err = rows.Scan(&offer.OfferId, &offer.Name, &offer.ExpiresOn)
		if err != nil {
			return nil, err
		}
		out = append(out, offer)
	}
	return out, rows.Err()
}
