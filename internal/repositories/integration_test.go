package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)
	assert.NoError(t, Migrate(context.Background(), db))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}
	return db, teardown
}

func TestRepositories_Postgres(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userReader := NewUserReadRepository(db, nil)
	userWriter := NewUserWriteRepository(db, nil)
	bookReader := NewBookReadRepository(db, nil)
	bookWriter := NewBookWriteRepository(db, nil)

	// migrations are idempotent
	assert.NoError(t, Migrate(ctx, db))

	alice, err := userWriter.Create(ctx, "alice", "hash1", false)
	assert.NoError(t, err)
	bob, err := userWriter.Create(ctx, "bob", "hash2", false)
	assert.NoError(t, err)

	t.Run("usernames are unique", func(t *testing.T) {
		_, err := userWriter.Create(ctx, "alice", "other", false)
		assert.ErrorIs(t, err, models.ErrDuplicateKey)

		taken := "alice"
		_, err = userWriter.Update(ctx, bob.ID, models.UserUpdate{Username: &taken})
		assert.ErrorIs(t, err, models.ErrDuplicateKey)
	})

	t.Run("usernames are case-sensitive", func(t *testing.T) {
		u, err := userWriter.Create(ctx, "Alice", "hash", false)
		assert.NoError(t, err)
		assert.NotEqual(t, alice.ID, u.ID)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		admin := true
		u, err := userWriter.Update(ctx, bob.ID, models.UserUpdate{IsAdmin: &admin})
		assert.NoError(t, err)
		assert.Equal(t, "bob", u.Username)
		assert.Equal(t, "hash2", u.PasswordHash)
		assert.True(t, u.IsAdmin)
	})

	t.Run("books cascade with their owner", func(t *testing.T) {
		withImage, err := bookWriter.Create(ctx, "Go", []byte{0xff, 0xd8, 0xff}, alice.ID)
		assert.NoError(t, err)
		assert.True(t, withImage.HasImage)

		withoutImage, err := bookWriter.Create(ctx, "Rust", nil, alice.ID)
		assert.NoError(t, err)
		assert.False(t, withoutImage.HasImage)

		got, err := bookReader.GetByID(ctx, withImage.ID)
		assert.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, got.Image)

		title := "Go 2"
		ok, err := bookWriter.Update(ctx, withImage.ID, models.BookUpdate{Title: &title})
		assert.NoError(t, err)
		assert.True(t, ok)
		got, _ = bookReader.GetByID(ctx, withImage.ID)
		assert.Equal(t, "Go 2", got.Title)
		assert.Equal(t, []byte{0xff, 0xd8, 0xff}, got.Image, "image kept when not replaced")

		own, err := bookReader.ListByOwner(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Len(t, own, 2)

		deleted, err := userWriter.Delete(ctx, alice.ID)
		assert.NoError(t, err)
		assert.True(t, deleted)

		all, err := bookReader.List(ctx)
		assert.NoError(t, err)
		assert.Empty(t, all)

		gone, err := userReader.GetByID(ctx, alice.ID)
		assert.NoError(t, err)
		assert.Nil(t, gone)
	})
}
