package output

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jwkuo/bobasim/internal/models"
)

// PostgresOutput streams simulation events into per-topic tables.
// It is a write-only sink; game state is never read back.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(config *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	p := &PostgresOutput{pool: pool}
	if err := p.ensureTables(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *PostgresOutput) ensureTables(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS turn_events (
			ts BIGINT,
			day INT,
			turn INT,
			clock TEXT,
			served INT,
			lost_queue INT,
			lost_stock INT,
			lost_patience INT,
			queue_length INT,
			cash DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS sale_events (
			ts BIGINT,
			day INT,
			turn INT,
			clock TEXT,
			drink TEXT,
			price DOUBLE PRECISION
		)`,
		`CREATE TABLE IF NOT EXISTS day_summaries (
			ts BIGINT,
			day INT,
			served INT,
			lost_queue INT,
			lost_stock INT,
			lost_patience INT,
			revenue DOUBLE PRECISION,
			wages DOUBLE PRECISION,
			rent DOUBLE PRECISION,
			ingredient_cost DOUBLE PRECISION,
			ad_spend DOUBLE PRECISION,
			loan_payments DOUBLE PRECISION,
			profit DOUBLE PRECISION,
			cash_end DOUBLE PRECISION,
			bankrupt BOOLEAN
		)`,
	}

	for _, stmt := range statements {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	ctx := context.Background()

	switch topic {
	case "turn_events":
		_, err := p.pool.Exec(ctx,
			`INSERT INTO turn_events (ts, day, turn, clock, served, lost_queue, lost_stock, lost_patience, queue_length, cash)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			event["timestamp"], event["day"], event["turn"], event["clock"],
			event["served"], event["lost_queue"], event["lost_stock"],
			event["lost_patience"], event["queue_length"], event["cash"],
		)
		if err != nil {
			return fmt.Errorf("failed to insert into turn_events: %w", err)
		}
	case "sale_events":
		_, err := p.pool.Exec(ctx,
			`INSERT INTO sale_events (ts, day, turn, clock, drink, price)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			event["timestamp"], event["day"], event["turn"], event["clock"],
			event["drink"], event["price"],
		)
		if err != nil {
			return fmt.Errorf("failed to insert into sale_events: %w", err)
		}
	case "day_summary_events":
		_, err := p.pool.Exec(ctx,
			`INSERT INTO day_summaries (ts, day, served, lost_queue, lost_stock, lost_patience, revenue, wages, rent, ingredient_cost, ad_spend, loan_payments, profit, cash_end, bankrupt)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
			event["timestamp"], event["day"], event["served"], event["lost_queue"],
			event["lost_stock"], event["lost_patience"], event["revenue"],
			event["wages"], event["rent"], event["ingredient_cost"],
			event["ad_spend"], event["loan_payments"], event["profit"],
			event["cash_end"], event["bankrupt"],
		)
		if err != nil {
			return fmt.Errorf("failed to insert into day_summaries: %w", err)
		}
	default:
		return fmt.Errorf("unknown topic: %s", topic)
	}

	return nil
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
