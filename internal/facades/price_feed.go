package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"golang.org/x/time/rate"
)

var (
	// ErrFeedStatus is returned when the feed answers with a non-2xx status. It is never retried.
	ErrFeedStatus = errors.New("price feed returned unexpected status")
	// ErrFeedDecode is returned when the feed body is not a JSON array.
	ErrFeedDecode = errors.New("price feed body is not a JSON array")
)

// retryBackoff is the first wait between attempts; it doubles on every retry.
var retryBackoff = 200 * time.Millisecond

// PriceFeedHTTPFacade fetches price records from an HTTP JSON feed.
type PriceFeedHTTPFacade struct {
	client  *http.Client
	url     string
	limiter *rate.Limiter
	retrier *retrier.Retrier
}

// NewPriceFeedHTTPFacade creates a feed client. rps <= 0 disables throttling.
func NewPriceFeedHTTPFacade(client *http.Client, url string, retries int, rps float64) *PriceFeedHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if retries < 0 {
		retries = 0
	}

	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}

	return &PriceFeedHTTPFacade{
		client:  client,
		url:     url,
		limiter: rate.NewLimiter(limit, 1),
		retrier: retrier.New(
			retrier.ExponentialBackoff(retries, retryBackoff),
			retrier.BlacklistClassifier{ErrFeedStatus, ErrFeedDecode, context.Canceled},
		),
	}
}

type feedEntry struct {
	Currency *string  `json:"currency"`
	Price    *float64 `json:"price"`
	Date     string   `json:"date"`
}

// FetchPrices downloads the feed. Transport failures are retried with exponential backoff;
// entries that are not {currency, price} objects are dropped.
func (f *PriceFeedHTTPFacade) FetchPrices(ctx context.Context) ([]models.PriceRecord, error) {
	var raw []json.RawMessage

	attempt := 0
	err := f.retrier.RunCtx(ctx, func(ctx context.Context) error {
		attempt++
		body, err := f.get(ctx)
		if err != nil {
			logger.Log.Warnw("price feed request failed", "url", f.url, "attempt", attempt, "error", err)
			return err
		}
		raw = body
		return nil
	})
	if err != nil {
		return nil, err
	}

	records := make([]models.PriceRecord, 0, len(raw))
	dropped := 0
	for _, item := range raw {
		var e feedEntry
		if err := json.Unmarshal(item, &e); err != nil || e.Currency == nil || e.Price == nil {
			dropped++
			continue
		}
		records = append(records, models.PriceRecord{
			Currency: *e.Currency,
			Price:    *e.Price,
			Date:     e.Date,
		})
	}

	logger.Log.Infow("price feed fetched", "url", f.url, "records", len(records), "dropped", dropped)
	return records, nil
}

func (f *PriceFeedHTTPFacade) get(ctx context.Context) ([]json.RawMessage, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %d", ErrFeedStatus, resp.StatusCode)
	}

	var raw []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedDecode, err)
	}
	return raw, nil
}
