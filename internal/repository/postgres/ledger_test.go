package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestLedgerRepository_Atomic(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOnSuccess", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE users SET points = points \\+ \\$1").
			WithArgs(int32(10), int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			return tx.AddPoints(ctx, 3, 10)
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackOnError", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLedgerTx_PointsForUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("LocksAndReadsBalance", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT points FROM users WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"points"}).AddRow(120))
		mock.ExpectCommit()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			points, err := tx.PointsForUpdate(ctx, 3)
			assert.Equal(t, int32(120), points)
			return err
		})
		assert.NoError(t, err)
	})

	t.Run("MissingUser", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT points FROM users WHERE id = \\$1 FOR UPDATE").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"points"}))
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			_, err := tx.PointsForUpdate(ctx, 99)
			return err
		})
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestLedgerTx_InsertPointEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("DuplicateSourceMapsToSentinel", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO point_events").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			return tx.InsertPointEvent(ctx, &domain.PointEvent{
				UserID: 3, Points: 20,
				Kind:       domain.ActionCollectionCompleted,
				SourceType: domain.SourceCollection, SourceID: 7,
			})
		})
		assert.ErrorIs(t, err, repository.ErrDuplicateAward)
	})

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		ev := &domain.PointEvent{
			UserID: 3, Points: 20,
			Kind:       domain.ActionCollectionCompleted,
			SourceType: domain.SourceCollection, SourceID: 7,
			Reason: "completing a recycling collection",
		}
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO point_events").
			WithArgs(ev.UserID, ev.Points, ev.Kind, ev.SourceType, ev.SourceID, ev.Reason).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
		mock.ExpectCommit()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			return tx.InsertPointEvent(ctx, ev)
		})
		assert.NoError(t, err)
		assert.Equal(t, int32(1), ev.ID)
	})
}

func TestLedgerTx_InsertRedemption(t *testing.T) {
	ctx := context.Background()

	t.Run("CodeCollisionMapsToSentinel", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO redemptions").
			WillReturnError(&pq.Error{Code: "23505"})
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			return tx.InsertRedemption(ctx, &domain.Redemption{
				UserID: 5, RewardID: 2, PointsSpent: 100, Code: "RWDABC12345",
			})
		})
		assert.ErrorIs(t, err, repository.ErrCodeTaken)
	})
}

func TestLedgerTx_UpsertCompletionRollup(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()
	repo := NewLedgerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO analytics").
		WithArgs("2026-08-29", "Zone A", 0.0, 5.0, 1.5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
		return tx.UpsertCompletionRollup(ctx, "2026-08-29", "Zone A", 0, 5, 1.5)
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLedgerTx_ActiveReward(t *testing.T) {
	ctx := context.Background()

	t.Run("InactiveRewardIsHidden", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, COALESCE\\(description, ''\\), points_cost, category, is_active FROM rewards").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "points_cost", "category", "is_active"}).
				AddRow(2, "Bus Pass", "", 100, "voucher", false))
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			_, err := tx.ActiveReward(ctx, 2)
			return err
		})
		assert.ErrorIs(t, err, repository.ErrRewardNotFound)
	})

	t.Run("MissingReward", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewLedgerRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, name, COALESCE\\(description, ''\\), points_cost, category, is_active FROM rewards").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err = repo.Atomic(ctx, func(tx repository.LedgerTx) error {
			_, err := tx.ActiveReward(ctx, 9)
			return err
		})
		assert.ErrorIs(t, err, repository.ErrRewardNotFound)
	})
}
