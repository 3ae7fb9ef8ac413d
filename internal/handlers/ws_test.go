package handlers

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

func dialSession(t *testing.T, ctx context.Context, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	return c
}

func readState(t *testing.T, ctx context.Context, c *websocket.Conn) swap.State {
	t.Helper()
	var s swap.State
	require.NoError(t, wsjson.Read(ctx, c, &s))
	return s
}

func TestSwapSessionHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockPrices := NewMockSessionPrices(ctrl)
	mockSubmitter := NewMockSubmitter(ctrl)
	mockTracker := NewMockSessionTracker(ctrl)

	mockPrices.EXPECT().Book().Return(testBook(), nil)
	mockTracker.EXPECT().SessionOpened().Return(func() {})
	mockSubmitter.EXPECT().
		Submit(gomock.Any(), swap.Request{From: "USDC", To: "ETH", InputAmount: "2500", FeePct: 0.3}).
		Return(models.SwapSubmission{SubmissionID: "sub-1"}, nil)

	srv := httptest.NewServer(NewSwapSessionHandler(mockPrices, mockSubmitter, 0.3, mockTracker))
	defer srv.Close()

	c := dialSession(t, ctx, srv)
	defer c.Close(websocket.StatusNormalClosure, "")

	state := readState(t, ctx, c)
	assert.Equal(t, swap.StatusReady, state.Status)
	assert.Equal(t, []string{"ATOM", "ETH", "USDC"}, state.Tokens)
	assert.Equal(t, "USDC", state.From)
	assert.Equal(t, "ATOM", state.To)
	assert.False(t, state.Valid)

	require.NoError(t, wsjson.Write(ctx, c, swap.Action{Type: swap.ActionChangeTo, Value: "ETH"}))
	state = readState(t, ctx, c)
	assert.Equal(t, "ETH", state.To)
	assert.Equal(t, "1 USDC ≈ 0.0004 ETH", state.RateText)

	// Server-side actions from the client are dropped without a reply.
	require.NoError(t, wsjson.Write(ctx, c, swap.Action{Type: swap.ActionSubmitFinished, SubmissionID: "forged"}))

	require.NoError(t, wsjson.Write(ctx, c, swap.Action{Type: swap.ActionChangeInput, Value: "002500"}))
	state = readState(t, ctx, c)
	assert.Equal(t, "2500", state.Input)
	assert.Equal(t, "0.997", state.Output)
	assert.Equal(t, "0.003", state.Fee)
	assert.True(t, state.Valid)
	assert.Empty(t, state.SubmissionID)

	require.NoError(t, wsjson.Write(ctx, c, swap.Action{Type: swap.ActionSubmit}))
	state = readState(t, ctx, c)
	assert.True(t, state.Submitting)

	state = readState(t, ctx, c)
	assert.False(t, state.Submitting)
	assert.Equal(t, "sub-1", state.SubmissionID)
	assert.Empty(t, state.SubmitError)
}

func TestSwapSessionHandler_WaitsForPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resolved := make(chan struct{})
	mockPrices := NewMockSessionPrices(ctrl)
	gomock.InOrder(
		mockPrices.EXPECT().Book().Return(nil, services.ErrPricesLoading),
		mockPrices.EXPECT().Book().Return(testBook(), nil),
	)
	mockPrices.EXPECT().Resolved().Return(resolved)

	srv := httptest.NewServer(NewSwapSessionHandler(mockPrices, NewMockSubmitter(ctrl), 0.3, nil))
	defer srv.Close()

	c := dialSession(t, ctx, srv)
	defer c.Close(websocket.StatusNormalClosure, "")

	state := readState(t, ctx, c)
	assert.Equal(t, swap.StatusLoading, state.Status)
	assert.Empty(t, state.Tokens)

	close(resolved)

	state = readState(t, ctx, c)
	assert.Equal(t, swap.StatusReady, state.Status)
	assert.Equal(t, "USDC", state.From)
}

func TestSwapSessionHandler_FeedFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mockPrices := NewMockSessionPrices(ctrl)
	mockPrices.EXPECT().Book().Return(nil, services.ErrPriceFeedFailed)

	srv := httptest.NewServer(NewSwapSessionHandler(mockPrices, NewMockSubmitter(ctrl), 0.3, nil))
	defer srv.Close()

	c := dialSession(t, ctx, srv)
	defer c.Close(websocket.StatusNormalClosure, "")

	state := readState(t, ctx, c)
	assert.Equal(t, swap.StatusFailed, state.Status)
	assert.Equal(t, msgPricesFailed, state.FeedError)

	// Edits are ignored while no prices are available.
	require.NoError(t, wsjson.Write(ctx, c, swap.Action{Type: swap.ActionChangeInput, Value: "5"}))
	state = readState(t, ctx, c)
	assert.Empty(t, state.Input)
}
