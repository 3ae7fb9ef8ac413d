package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var feedRecords = []models.PriceRecord{
	{Currency: "USDC", Price: 1},
	{Currency: "ETH", Price: 2500},
	{Currency: "ATOM", Price: 7.18},
}

var errCacheMiss = errors.New("cache miss")

func TestPriceService_Load(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setup      func(feed *MockPriceFeedReader, cache *MockPriceCacheReader)
		wantStatus swap.Status
		wantErr    error
		wantTokens []string
	}{
		{
			name: "cache_hit_skips_feed",
			setup: func(feed *MockPriceFeedReader, cache *MockPriceCacheReader) {
				cache.EXPECT().GetPrices(ctx).Return(feedRecords[:2], nil)
			},
			wantStatus: swap.StatusReady,
			wantTokens: []string{"ETH", "USDC"},
		},
		{
			name: "empty_cache_payload_fetches_feed",
			setup: func(feed *MockPriceFeedReader, cache *MockPriceCacheReader) {
				cache.EXPECT().GetPrices(ctx).Return([]models.PriceRecord{}, nil)
				feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil)
				cache.EXPECT().SetPrices(gomock.Any(), feedRecords).Return(nil)
			},
			wantStatus: swap.StatusReady,
			wantTokens: []string{"ATOM", "ETH", "USDC"},
		},
		{
			name: "cache_miss_fetches_and_writes_back",
			setup: func(feed *MockPriceFeedReader, cache *MockPriceCacheReader) {
				cache.EXPECT().GetPrices(ctx).Return(nil, errCacheMiss)
				feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil)
				cache.EXPECT().SetPrices(gomock.Any(), feedRecords).Return(nil)
			},
			wantStatus: swap.StatusReady,
			wantTokens: []string{"ATOM", "ETH", "USDC"},
		},
		{
			name: "cache_write_failure_is_ignored",
			setup: func(feed *MockPriceFeedReader, cache *MockPriceCacheReader) {
				cache.EXPECT().GetPrices(ctx).Return(nil, errCacheMiss)
				feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil)
				cache.EXPECT().SetPrices(gomock.Any(), feedRecords).Return(errors.New("redis down"))
			},
			wantStatus: swap.StatusReady,
			wantTokens: []string{"ATOM", "ETH", "USDC"},
		},
		{
			name: "feed_failure",
			setup: func(feed *MockPriceFeedReader, cache *MockPriceCacheReader) {
				cache.EXPECT().GetPrices(ctx).Return(nil, errCacheMiss)
				feed.EXPECT().FetchPrices(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantStatus: swap.StatusFailed,
			wantErr:    ErrPriceFeedFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			feed := NewMockPriceFeedReader(ctrl)
			cache := NewMockPriceCacheReader(ctrl)
			tt.setup(feed, cache)

			svc := NewPriceService(feed, cache, nil)
			err := svc.Load(ctx)

			assert.Equal(t, tt.wantStatus, svc.Status())
			book, bookErr := svc.Book()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, bookErr, tt.wantErr)
				assert.Nil(t, book)
			} else {
				assert.NoError(t, err)
				require.NoError(t, bookErr)
				assert.Equal(t, tt.wantTokens, book.Symbols())
			}

			select {
			case <-svc.Resolved():
			default:
				t.Fatal("expected Resolved to be closed")
			}
		})
	}
}

func TestPriceService_LoadingBeforeResolution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewPriceService(NewMockPriceFeedReader(ctrl), nil, nil)

	book, err := svc.Book()
	assert.Nil(t, book)
	assert.ErrorIs(t, err, ErrPricesLoading)
	assert.False(t, errors.Is(err, ErrPriceFeedFailed))
	assert.Equal(t, swap.StatusLoading, svc.Status())

	select {
	case <-svc.Resolved():
		t.Fatal("Resolved closed before any load")
	default:
	}
}

func TestPriceService_NoCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockPriceFeedReader(ctrl)
	recorder := NewMockPriceLoadRecorder(ctrl)
	feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil)
	recorder.EXPECT().RecordPriceLoad("feed", nil)

	svc := NewPriceService(feed, nil, recorder)
	require.NoError(t, svc.Load(context.Background()))
	assert.Equal(t, swap.StatusReady, svc.Status())
}

func TestPriceService_RefreshFailureKeepsBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockPriceFeedReader(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil),
		feed.EXPECT().FetchPrices(gomock.Any()).Return(nil, errors.New("503")),
	)

	svc := NewPriceService(feed, nil, nil)
	require.NoError(t, svc.Load(context.Background()))

	_, err := svc.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrPriceFeedFailed)

	book, err := svc.Book()
	require.NoError(t, err)
	assert.Equal(t, 3, book.Len())
	assert.Equal(t, swap.StatusReady, svc.Status())
}

func TestPriceService_RefreshRecoversFromFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	feed := NewMockPriceFeedReader(ctrl)
	gomock.InOrder(
		feed.EXPECT().FetchPrices(gomock.Any()).Return(nil, errors.New("503")),
		feed.EXPECT().FetchPrices(gomock.Any()).Return(feedRecords, nil),
	)

	svc := NewPriceService(feed, nil, nil)
	assert.Error(t, svc.Load(context.Background()))
	assert.Equal(t, swap.StatusFailed, svc.Status())

	book, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, book.Len())
	assert.Equal(t, swap.StatusReady, svc.Status())
}

func TestPriceService_RefreshCoalesces(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	feed := NewMockPriceFeedReader(ctrl)
	feed.EXPECT().FetchPrices(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.PriceRecord, error) {
		<-release
		return feedRecords, nil
	}).Times(1)

	svc := NewPriceService(feed, nil, nil)

	const callers = 5
	var wg sync.WaitGroup
	books := make([]*swap.PriceBook, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			book, err := svc.Refresh(context.Background())
			assert.NoError(t, err)
			books[i] = book
		}(i)
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for _, b := range books {
		assert.Same(t, books[0], b)
	}
}

func TestPriceService_CanceledRefreshWhileLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	release := make(chan struct{})
	feed := NewMockPriceFeedReader(ctrl)
	feed.EXPECT().FetchPrices(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.PriceRecord, error) {
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return feedRecords, nil
	}).Times(1)

	svc := NewPriceService(feed, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	book, err := svc.Refresh(ctx)
	assert.Nil(t, book)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.Is(err, ErrPriceFeedFailed))

	assert.Equal(t, swap.StatusLoading, svc.Status())
	select {
	case <-svc.Resolved():
		t.Fatal("Resolved closed by a canceled caller")
	default:
	}

	close(release)

	select {
	case <-svc.Resolved():
	case <-time.After(time.Second):
		t.Fatal("shared fetch did not complete")
	}
	assert.Equal(t, swap.StatusReady, svc.Status())
}

func TestPriceService_LoadJoinsCanceledRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	feed := NewMockPriceFeedReader(ctrl)
	feed.EXPECT().FetchPrices(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.PriceRecord, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return feedRecords, nil
	}).Times(1)

	svc := NewPriceService(feed, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	refreshErr := make(chan error, 1)
	go func() {
		_, err := svc.Refresh(ctx)
		refreshErr <- err
	}()
	<-started

	loadErr := make(chan error, 1)
	go func() { loadErr <- svc.Load(context.Background()) }()

	cancel()
	assert.ErrorIs(t, <-refreshErr, context.Canceled)
	assert.Equal(t, swap.StatusLoading, svc.Status())

	time.Sleep(50 * time.Millisecond)
	close(release)
	require.NoError(t, <-loadErr)
	assert.Equal(t, swap.StatusReady, svc.Status())
}
