package services

//go:generate mockgen -source=prices.go -destination=prices_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrPricesLoading is returned while the initial price load is still pending.
	ErrPricesLoading = errors.New("prices are still loading")
	// ErrPriceFeedFailed is returned when no price book could be loaded.
	ErrPriceFeedFailed = errors.New("price feed failed")
)

// PriceFeedReader fetches price records from the external feed.
type PriceFeedReader interface {
	FetchPrices(ctx context.Context) ([]models.PriceRecord, error)
}

// PriceCacheReader caches the last feed payload.
type PriceCacheReader interface {
	GetPrices(ctx context.Context) ([]models.PriceRecord, error)
	SetPrices(ctx context.Context, records []models.PriceRecord) error
}

// PriceLoadRecorder observes price book loads.
type PriceLoadRecorder interface {
	RecordPriceLoad(source string, err error)
}

// PriceService owns the current price book and its loading lifecycle.
type PriceService struct {
	feed     PriceFeedReader
	cache    PriceCacheReader
	recorder PriceLoadRecorder

	mu     sync.RWMutex
	status swap.Status
	book   *swap.PriceBook
	err    error

	group    singleflight.Group
	resolved chan struct{}
	once     sync.Once
}

// NewPriceService creates a service in the loading state. cache and recorder may be nil.
func NewPriceService(feed PriceFeedReader, cache PriceCacheReader, recorder PriceLoadRecorder) *PriceService {
	return &PriceService{
		feed:     feed,
		cache:    cache,
		recorder: recorder,
		status:   swap.StatusLoading,
		resolved: make(chan struct{}),
	}
}

// Load populates the price book, preferring the cache and falling back to the feed.
func (s *PriceService) Load(ctx context.Context) error {
	if s.cache != nil {
		records, err := s.cache.GetPrices(ctx)
		s.record("cache", err)
		if err == nil {
			if book := swap.Build(records); book.Len() > 0 {
				s.setBook(book)
				logger.Log.Infow("price book loaded", "source", "cache", "tokens", book.Len())
				return nil
			}
			logger.Log.Warnw("cached price payload is empty, fetching feed")
		}
	}

	_, err := s.fetch(ctx)
	return err
}

// Refresh reloads the price book from the feed. Concurrent calls share one fetch.
// A failed refresh keeps the previous book in force.
func (s *PriceService) Refresh(ctx context.Context) (*swap.PriceBook, error) {
	return s.fetch(ctx)
}

// fetch runs one shared feed request detached from the callers' contexts; the feed client's
// timeout bounds it. A caller whose context ends stops waiting without failing the flight.
func (s *PriceService) fetch(ctx context.Context) (*swap.PriceBook, error) {
	flightCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan("feed", func() (interface{}, error) {
		records, err := s.feed.FetchPrices(flightCtx)
		s.record("feed", err)
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrPriceFeedFailed, err)
			s.setFailed(err)
			return nil, err
		}

		if s.cache != nil {
			if err := s.cache.SetPrices(flightCtx, records); err != nil {
				logger.Log.Warnw("failed to write price cache", "error", err)
			}
		}

		book := swap.Build(records)
		s.setBook(book)
		logger.Log.Infow("price book loaded", "source", "feed", "tokens", book.Len())
		return book, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*swap.PriceBook), nil
	}
}

// Book returns the current price book, ErrPricesLoading or an ErrPriceFeedFailed error.
func (s *PriceService) Book() (*swap.PriceBook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.status {
	case swap.StatusReady:
		return s.book, nil
	case swap.StatusFailed:
		return nil, s.err
	default:
		return nil, ErrPricesLoading
	}
}

// Status reports the lifecycle state of the price book.
func (s *PriceService) Status() swap.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Resolved is closed once the first load has either succeeded or failed.
func (s *PriceService) Resolved() <-chan struct{} {
	return s.resolved
}

func (s *PriceService) setBook(book *swap.PriceBook) {
	s.mu.Lock()
	s.book = book
	s.status = swap.StatusReady
	s.err = nil
	s.mu.Unlock()

	s.once.Do(func() { close(s.resolved) })
}

func (s *PriceService) setFailed(err error) {
	s.mu.Lock()
	if s.status == swap.StatusReady {
		s.mu.Unlock()
		logger.Log.Warnw("price refresh failed, keeping previous book", "error", err)
		return
	}
	s.status = swap.StatusFailed
	s.err = err
	s.mu.Unlock()

	logger.Log.Errorw("price book unavailable", "error", err)
	s.once.Do(func() { close(s.resolved) })
}

func (s *PriceService) record(source string, err error) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordPriceLoad(source, err)
}
