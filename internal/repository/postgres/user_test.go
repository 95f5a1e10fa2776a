package postgres

import (
	"context"
	"testing"
	"time"

	"ecowaste-backend/internal/domain"
	"ecowaste-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestUserRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		u := &domain.User{
			Email: "anna@example.com", Name: "Anna", PasswordHash: "hash",
			Role: domain.RoleUser, Zone: "Zone A",
		}
		mock.ExpectQuery("INSERT INTO users").
			WithArgs(u.Email, u.Name, u.PasswordHash, u.Role, u.Zone, u.Address, u.Phone, u.Points).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))

		err := repo.Create(ctx, u)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), u.ID)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		u := &domain.User{Email: "anna@example.com", Name: "Anna", Role: domain.RoleUser, Zone: "Zone A"}
		mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(ctx, u)
		assert.ErrorIs(t, err, repository.ErrEmailTaken)
	})
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "email", "name", "password_hash", "role", "zone", "address", "phone", "points", "created_at"}).
			AddRow(1, "anna@example.com", "Anna", "hash", "user", "Zone A", "", "", 120, time.Now())
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("anna@example.com").
			WillReturnRows(rows)

		u, err := repo.GetByEmail(ctx, "anna@example.com")
		assert.NoError(t, err)
		assert.Equal(t, int32(120), u.Points)
		assert.Equal(t, domain.RoleUser, u.Role)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM users WHERE email = \\$1").
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}

func TestUserRepository_UpdateRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role = \\$1 WHERE id = \\$2").
			WithArgs(domain.RoleCollector, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateRole(ctx, 3, domain.RoleCollector))
	})

	t.Run("MissingUser", func(t *testing.T) {
		mock.ExpectExec("UPDATE users SET role = \\$1 WHERE id = \\$2").
			WithArgs(domain.RoleAdmin, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateRole(ctx, 99, domain.RoleAdmin)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
