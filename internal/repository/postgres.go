package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/set-night/cryptominer/internal/domain"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, user_id, first_name, username, balance, lifetime_earned,
	mining_power, referral_count, referral_bonus_total, is_mining,
	last_mining_at, created_at, updated_at`

// Postgres is the pgx-backed account store. Single-row increments rely
// on the database for atomicity; multi-row operations run in a
// transaction.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) Get(ctx context.Context, userID int64) (*domain.Account, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE user_id = $1`, userID)
	acc, err := scanAccount(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return acc, nil
}

// GetOrCreate inserts a zero-balance account if none exists. The unique
// key on user_id makes the insert idempotent under concurrent calls.
func (p *Postgres) GetOrCreate(ctx context.Context, userID int64, firstName, username string) (*domain.Account, bool, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO accounts (user_id, first_name, username)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id) DO NOTHING
		 RETURNING `+accountColumns,
		userID, firstName, username)

	acc, err := scanAccount(row)
	if err == nil {
		return acc, true, nil
	}
	if err != pgx.ErrNoRows {
		return nil, false, fmt.Errorf("create account: %w", err)
	}

	// Lost the insert race or the account already existed
	acc, err = p.Get(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return acc, false, nil
}

// Credit adds amount to both balance and lifetime_earned in one update.
func (p *Postgres) Credit(ctx context.Context, userID int64, amount decimal.Decimal) (decimal.Decimal, error) {
	row := p.db.QueryRow(ctx,
		`UPDATE accounts
		 SET balance = balance + $2,
		     lifetime_earned = lifetime_earned + $2,
		     updated_at = now()
		 WHERE user_id = $1
		 RETURNING balance`,
		userID, amount)

	var balance decimal.Decimal
	if err := row.Scan(&balance); err != nil {
		if err == pgx.ErrNoRows {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("credit account: %w", err)
	}
	return balance, nil
}

// StartSession sets is_mining only if it is currently false and the
// cooldown since last_mining_at has passed, in a single conditional
// update, so neither guard can race with a concurrent start. Returns
// the account as of flag acquisition.
func (p *Postgres) StartSession(ctx context.Context, userID int64, cooldown time.Duration) (*domain.Account, error) {
	row := p.db.QueryRow(ctx,
		`UPDATE accounts
		 SET is_mining = TRUE, last_mining_at = now(), updated_at = now()
		 WHERE user_id = $1 AND is_mining = FALSE
		   AND ($2::float8 <= 0 OR last_mining_at IS NULL
		        OR last_mining_at <= now() - make_interval(secs => $2))
		 RETURNING `+accountColumns,
		userID, cooldown.Seconds())

	acc, err := scanAccount(row)
	if err == nil {
		return acc, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("start session: %w", err)
	}

	// No row updated: tell apart missing account, busy session, cooldown
	cur, err := p.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cur.IsMining {
		return nil, domain.ErrSessionInProgress
	}
	return nil, domain.ErrCooldown
}

func (p *Postgres) EndSession(ctx context.Context, userID int64) error {
	_, err := p.db.Exec(ctx,
		`UPDATE accounts SET is_mining = FALSE, updated_at = now() WHERE user_id = $1`,
		userID)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// SetMiningPower applies an admin-granted power boost.
func (p *Postgres) SetMiningPower(ctx context.Context, userID int64, power float64) error {
	tag, err := p.db.Exec(ctx,
		`UPDATE accounts SET mining_power = $2, updated_at = now() WHERE user_id = $1`,
		userID, power)
	if err != nil {
		return fmt.Errorf("set mining power: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// RegisterReferral inserts the referral record and credits the referrer
// in one transaction. The unique key on referred_id makes a concurrent
// duplicate attempt a no-op.
func (p *Postgres) RegisterReferral(ctx context.Context, referrerID, referredID int64, bonus decimal.Decimal) (bool, error) {
	if referrerID == referredID {
		return false, nil
	}

	tx, err := p.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM accounts WHERE user_id = $1)`, referrerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check referrer: %w", err)
	}
	if !exists {
		return false, nil
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO referrals (referrer_id, referred_id)
		 VALUES ($1, $2)
		 ON CONFLICT (referred_id) DO NOTHING`,
		referrerID, referredID)
	if err != nil {
		return false, fmt.Errorf("insert referral: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	_, err = tx.Exec(ctx,
		`UPDATE accounts
		 SET referral_count = referral_count + 1,
		     referral_bonus_total = referral_bonus_total + $2,
		     balance = balance + $2,
		     lifetime_earned = lifetime_earned + $2,
		     updated_at = now()
		 WHERE user_id = $1`,
		referrerID, bonus)
	if err != nil {
		return false, fmt.Errorf("credit referrer: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	return true, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var acc domain.Account
	err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.FirstName,
		&acc.Username,
		&acc.Balance,
		&acc.LifetimeEarned,
		&acc.MiningPower,
		&acc.ReferralCount,
		&acc.ReferralBonusTotal,
		&acc.IsMining,
		&acc.LastMiningAt,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
