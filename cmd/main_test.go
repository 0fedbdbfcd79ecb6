package main

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	assert.Equal(t, "config.env", parseFlags())
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	assert.Equal(t, "myconfig.env", parseFlags())
}

func TestPrintBuildInfo_Output(t *testing.T) {
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	os.Stdout = oldStdout

	output := buf.String()
	assert.Contains(t, output, "Version: v1.0.0")
	assert.Contains(t, output, "Commit: abcd1234")
	assert.Contains(t, output, "Build: 2025-09-26")
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:           "localhost",
		AppPort:           "8080",
		LogLevel:          "info",
		PGHost:            "localhost",
		PGPort:            5432,
		PGUser:            "user",
		PGPassword:        "password",
		PGDB:              "database",
		PGMaxOpenConns:    16,
		PGMaxIdleConns:    8,
		RedisHost:         "localhost",
		RedisPort:         6379,
		RedisDB:           0,
		RedisPassword:     "",
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		SessionSecret:     "my_super_secret_key",
		SessionExpSecond:  432000,
		CookieSecure:      false,
		AdminUsername:     "admin",
		AdminPassword:     "admin",
		KafkaBrokers:      nil,
		KafkaTopic:        "library-events",
		MaxImageBytes:     5 << 20,
	}, cfg)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("SESSION_SECRET_KEY", "supersecret")
	os.Setenv("SESSION_EXP_SECOND", "300")
	os.Setenv("COOKIE_SECURE", "true")

	os.Setenv("ADMIN_USERNAME", "root")
	os.Setenv("ADMIN_PASSWORD", "toor")

	os.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	os.Setenv("KAFKA_TOPIC", "audit")

	os.Setenv("MAX_IMAGE_BYTES", "1024")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, config{
		AppHost:           "127.0.0.1",
		AppPort:           "9090",
		LogLevel:          "debug",
		PGHost:            "pg.example.com",
		PGPort:            5433,
		PGUser:            "admin",
		PGPassword:        "secret",
		PGDB:              "mydb",
		PGMaxOpenConns:    20,
		PGMaxIdleConns:    10,
		RedisHost:         "redis.example.com",
		RedisPort:         6380,
		RedisDB:           2,
		RedisPassword:     "redispass",
		RedisPoolSize:     15,
		RedisMinIdleConns: 5,
		SessionSecret:     "supersecret",
		SessionExpSecond:  300,
		CookieSecure:      true,
		AdminUsername:     "root",
		AdminPassword:     "toor",
		KafkaBrokers:      []string{"kafka-1:9092", "kafka-2:9092"},
		KafkaTopic:        "audit",
		MaxImageBytes:     1024,
	}, cfg)
}

func TestParseConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"postgres port", "POSTGRES_PORT", "abc"},
		{"redis db", "REDIS_DB", "zero"},
		{"session lifetime", "SESSION_EXP_SECOND", "5d"},
		{"cookie secure", "COOKIE_SECURE", "maybe"},
		{"image limit", "MAX_IMAGE_BYTES", "5MiB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetEnv()
			os.Setenv(tt.key, tt.val)

			_, err := parseConfig("nonexistent.env")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	require.NoError(t, err)
	defer pgContainer.Terminate(ctx)

	pgHost, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	pgPort, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	require.NoError(t, err)
	defer redisContainer.Terminate(ctx)

	redisHost, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	redisPort, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	// ------------------ Run ------------------
	cfg := config{
		AppHost:           "127.0.0.1",
		AppPort:           "8086",
		LogLevel:          "debug",
		PGHost:            pgHost,
		PGPort:            pgPort.Int(),
		PGUser:            "user",
		PGPassword:        "password",
		PGDB:              "testdb",
		PGMaxOpenConns:    5,
		PGMaxIdleConns:    2,
		RedisHost:         redisHost,
		RedisPort:         redisPort.Int(),
		RedisPoolSize:     10,
		RedisMinIdleConns: 2,
		SessionSecret:     "testsecret",
		SessionExpSecond:  60,
		AdminUsername:     "admin",
		AdminPassword:     "admin",
		KafkaTopic:        "library-events",
		MaxImageBytes:     1 << 20,
	}

	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	client := &http.Client{
		Timeout: time.Second,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	base := "http://127.0.0.1:8086"

	var home *http.Response
	require.Eventually(t, func() bool {
		resp, err := client.Get(base + "/")
		if err != nil {
			return false
		}
		home = resp
		return true
	}, 5*time.Second, 100*time.Millisecond)
	home.Body.Close()
	assert.Equal(t, http.StatusOK, home.StatusCode)

	resp, err := client.Get(base + "/dashboard")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, err = client.Get(base + "/no/such/page")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	select {
	case <-time.After(11 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		assert.NoError(t, err)
	}
}
