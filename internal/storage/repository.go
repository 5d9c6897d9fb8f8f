package storage

import (
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// TradeRepository defines the contract for trade record persistence.
type TradeRepository interface {
	InsertRecordsBatch(flow models.Flow, records []models.TradeRecord) error
	LoadRecords(flow models.Flow, yearStart, yearEnd int) ([]models.TradeRecord, error)
	HasIngestion(flow models.Flow, year int) (bool, error)
	UpsertIngestionLog(flow models.Flow, year int, filename string, rowCount int) error
	DeleteRecords(flow models.Flow, year int) error
}

type tradeRepository struct {
	db *sql.DB
}

func NewTradeRepository(db *sql.DB) TradeRepository {
	return &tradeRepository{db: db}
}

// InsertRecordsBatch inserts one batch of records in a single transaction
// via COPY.
func (r *tradeRepository) InsertRecordsBatch(flow models.Flow, records []models.TradeRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Bulk-load optimization; ingestion is rerunnable so losing the tail
	// of a crashed load costs nothing.
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"trade_records",
		"flow",
		"year",
		"month",
		"product_code",
		"region",
		"municipality",
		"country_code",
		"fob_value",
		"net_weight",
		"quantity",
		"freight",
		"insurance",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.Exec(
			string(flow),
			rec.Year,
			rec.Month,
			rec.ProductCode,
			rec.Region,
			rec.Municipality,
			rec.CountryCode,
			rec.Value,
			rec.Weight,
			rec.Quantity,
			rec.Freight,
			rec.Insurance,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// LoadRecords reads one flow side back out, bounded by year (inclusive,
// zero means unbounded). Rows come back in (year, month, product_code)
// order so downstream aggregation is deterministic across runs.
func (r *tradeRepository) LoadRecords(flow models.Flow, yearStart, yearEnd int) ([]models.TradeRecord, error) {
	rows, err := r.db.Query(`
		SELECT year, month, product_code, region, municipality, country_code,
		       fob_value, net_weight, quantity, freight, insurance
		FROM trade_records
		WHERE flow = $1
		  AND ($2 = 0 OR year >= $2)
		  AND ($3 = 0 OR year <= $3)
		ORDER BY year, month, product_code
	`, string(flow), yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.TradeRecord
	for rows.Next() {
		var rec models.TradeRecord
		if err := rows.Scan(
			&rec.Year, &rec.Month, &rec.ProductCode, &rec.Region,
			&rec.Municipality, &rec.CountryCode,
			&rec.Value, &rec.Weight, &rec.Quantity, &rec.Freight, &rec.Insurance,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// HasIngestion checks whether a (flow, year) extract was already recorded.
func (r *tradeRepository) HasIngestion(flow models.Flow, year int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE flow = $1 AND year = $2)`, string(flow), year).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or refreshes) the ingestion entry for one
// (flow, year) extract.
func (r *tradeRepository) UpsertIngestionLog(flow models.Flow, year int, filename string, rowCount int) error {
	_, err := r.db.Exec(`
		INSERT INTO ingestion_log (flow, year, filename, row_count)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (flow, year)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, string(flow), year, filename, rowCount)
	return err
}

// DeleteRecords removes all records of one (flow, year) extract before a
// forced re-ingestion.
func (r *tradeRepository) DeleteRecords(flow models.Flow, year int) error {
	_, err := r.db.Exec(`DELETE FROM trade_records WHERE flow = $1 AND year = $2`, string(flow), year)
	return err
}
