package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zapcore"
)

func setupRedisContainer(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "6379")

	client := redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%d", host, port.Int())})
	assert.NoError(t, client.Ping(ctx).Err())

	teardown := func() {
		client.Close()
		container.Terminate(ctx)
	}
	return client, teardown
}

func TestSessionRepository(t *testing.T) {
	client, teardown := setupRedisContainer(t)
	defer teardown()

	repo := NewSessionRepository(client)
	ctx := context.Background()

	alice1, alice2, bob := uuid.New(), uuid.New(), uuid.New()
	assert.NoError(t, repo.Save(ctx, alice1, 1, time.Minute))
	assert.NoError(t, repo.Save(ctx, alice2, 1, time.Minute))
	assert.NoError(t, repo.Save(ctx, bob, 2, time.Minute))

	t.Run("GetUserID", func(t *testing.T) {
		userID, err := repo.GetUserID(ctx, alice1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), userID)

		userID, err = repo.GetUserID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Zero(t, userID)
	})

	t.Run("TTL applied", func(t *testing.T) {
		ttl, err := client.TTL(ctx, sessionKey(bob)).Result()
		assert.NoError(t, err)
		assert.True(t, ttl > 0 && ttl <= time.Minute)
	})

	t.Run("Delete", func(t *testing.T) {
		assert.NoError(t, repo.Delete(ctx, alice1))
		userID, err := repo.GetUserID(ctx, alice1)
		assert.NoError(t, err)
		assert.Zero(t, userID)

		isMember, err := client.SIsMember(ctx, userSessionsKey(1), alice1.String()).Result()
		assert.NoError(t, err)
		assert.False(t, isMember)

		// unknown sessions are ignored
		assert.NoError(t, repo.Delete(ctx, uuid.New()))
	})

	t.Run("DeleteByUserID", func(t *testing.T) {
		assert.NoError(t, repo.DeleteByUserID(ctx, 1))

		userID, err := repo.GetUserID(ctx, alice2)
		assert.NoError(t, err)
		assert.Zero(t, userID)

		// other users keep their sessions
		userID, err = repo.GetUserID(ctx, bob)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), userID)

		// a user without sessions is a no-op
		assert.NoError(t, repo.DeleteByUserID(ctx, 404))
	})

	t.Run("log entries", func(t *testing.T) {
		logs := observeLogs(t)
		sid := uuid.New()

		assert.NoError(t, repo.Save(ctx, sid, 5, time.Minute))
		_, err := repo.GetUserID(ctx, sid)
		assert.NoError(t, err)
		assert.NoError(t, repo.Delete(ctx, sid))
		assert.NoError(t, repo.DeleteByUserID(ctx, 5))

		var messages []string
		for _, entry := range logs.All() {
			assert.Equal(t, zapcore.InfoLevel, entry.Level, entry.Message)
			messages = append(messages, entry.Message)
		}
		assert.Equal(t, []string{
			"session saved",
			"session looked up",
			"session looked up", // Delete resolves the owner first
			"session deleted",
			"user sessions deleted",
		}, messages)
		assert.Equal(t, sessionKey(sid), logs.All()[0].ContextMap()["key"])
		assert.EqualValues(t, 5, logs.All()[0].ContextMap()["user_id"])
	})

	t.Run("Expiry", func(t *testing.T) {
		short := uuid.New()
		assert.NoError(t, repo.Save(ctx, short, 3, time.Second))
		time.Sleep(1500 * time.Millisecond)

		userID, err := repo.GetUserID(ctx, short)
		assert.NoError(t, err)
		assert.Zero(t, userID)
	})
}
