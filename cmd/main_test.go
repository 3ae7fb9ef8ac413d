package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
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
	os.Clearenv()

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)

	assert.Equal(t, "https://interview.switcheo.com/prices.json", cfg.PriceFeedURL)
	assert.Equal(t, 10*time.Second, cfg.PriceFeedTimeout)
	assert.Equal(t, 3, cfg.PriceFeedRetries)
	assert.Equal(t, 1.0, cfg.PriceFeedRPS)

	assert.Equal(t, "localhost", cfg.RedisHost)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, 10, cfg.RedisPoolSize)
	assert.Equal(t, 60*time.Second, cfg.PriceCacheTTL)

	assert.Nil(t, cfg.KafkaBrokers)
	assert.Equal(t, "swap-submissions", cfg.KafkaTopic)

	assert.Equal(t, 1500*time.Millisecond, cfg.SwapSubmitDelay)
	assert.Equal(t, 600, cfg.RateLimitRPM)
	assert.Equal(t, 50, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxy)
	assert.Equal(t, int64(100000000), cfg.SumMaxIterativeN)
}

func TestParseConfig_CustomEnv(t *testing.T) {
	os.Clearenv()
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("PRICE_FEED_URL", "http://feed.local/prices.json")
	t.Setenv("PRICE_FEED_RPS", "2.5")
	t.Setenv("REDIS_HOST", "redis.example.com")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("PRICE_CACHE_TTL_SECOND", "120")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SWAP_SUBMIT_DELAY_MS", "0")
	t.Setenv("RATE_LIMIT_TRUST_PROXY", "true")

	cfg, err := parseConfig("nonexistent.env")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.AppHost)
	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "http://feed.local/prices.json", cfg.PriceFeedURL)
	assert.Equal(t, 2.5, cfg.PriceFeedRPS)
	assert.Equal(t, "redis.example.com", cfg.RedisHost)
	assert.Equal(t, 6380, cfg.RedisPort)
	assert.Equal(t, 120*time.Second, cfg.PriceCacheTTL)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, time.Duration(0), cfg.SwapSubmitDelay)
	assert.True(t, cfg.TrustProxy)
}

func TestParseConfig_Invalid(t *testing.T) {
	os.Clearenv()
	t.Setenv("REDIS_PORT", "not-a-port")

	_, err := parseConfig("nonexistent.env")
	assert.ErrorContains(t, err, "REDIS_PORT")
}

func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer lis.Close()
	return lis.Addr().(*net.TCPAddr).Port
}

func TestRun_ServesPrices(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"currency":"USDC","price":1},{"currency":"ETH","price":2500}]`))
	}))
	defer feed.Close()

	port := strconv.Itoa(freePort(t))
	cfg := config{
		AppHost:          "127.0.0.1",
		AppPort:          port,
		LogLevel:         "error",
		PriceFeedURL:     feed.URL,
		PriceFeedTimeout: time.Second,
		IconBaseURL:      "https://icons.example/",
		RateLimitRPM:     6000,
		RateLimitBurst:   100,
		SumMaxIterativeN: 1000,
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- run(ctx, cfg) }()

	base := fmt.Sprintf("http://127.0.0.1:%s", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/prices")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(base + "/health")
	require.NoError(t, err)
	var health models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	resp.Body.Close()
	assert.Equal(t, models.HealthResponse{Status: "ready", Tokens: 2}, health)

	resp, err = http.Get(base + "/sum/100")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	cancel()
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}
