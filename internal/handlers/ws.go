package handlers

//go:generate mockgen -source=ws.go -destination=ws_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/middlewares"
	"github.com/sbilibin2017/gw-token-swap/internal/services"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const wsWriteTimeout = 5 * time.Second

// SessionPrices gives a swap session access to the price book lifecycle.
type SessionPrices interface {
	Book() (*swap.PriceBook, error)
	Resolved() <-chan struct{}
}

// SessionTracker counts open sessions. The returned func is called when a session ends.
type SessionTracker interface {
	SessionOpened() func()
}

// clientActions are the actions a browser may send; the rest are produced server side.
var clientActions = map[swap.ActionType]bool{
	swap.ActionChangeFrom:  true,
	swap.ActionChangeTo:    true,
	swap.ActionChangeInput: true,
	swap.ActionSwapTokens:  true,
	swap.ActionChangeFee:   true,
	swap.ActionSubmit:      true,
}

// NewSwapSessionHandler runs a live swap form over a websocket.
// The client sends actions and receives the full form state after each one.
// @Summary Live swap session
// @Description Websocket. Send {"type":"changeInput","value":"25"} style actions; every message back is the complete form state.
// @Tags swap
// @Success 101 "Switching Protocols"
// @Router /ws/swap [get]
func NewSwapSessionHandler(
	prices SessionPrices,
	submitter Submitter,
	feePct float64,
	tracker SessionTracker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			logger.Log.Warnw("websocket accept failed", "error", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "session ended")

		if tracker != nil {
			defer tracker.SessionOpened()()
		}

		s := &swapSession{
			conn:      c,
			prices:    prices,
			submitter: submitter,
			events:    make(chan swap.Action, 1),
			state:     swap.NewState(feePct),
			reqID:     middlewares.RequestIDFromContext(r.Context()),
		}

		err = s.run(r.Context())
		switch websocket.CloseStatus(err) {
		case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			c.Close(websocket.StatusNormalClosure, "")
		default:
			if !errors.Is(err, context.Canceled) {
				logger.Log.Infow("swap session closed", "request_id", s.reqID, "error", err)
			}
		}
	}
}

type swapSession struct {
	conn      *websocket.Conn
	prices    SessionPrices
	submitter Submitter
	events    chan swap.Action
	state     swap.State
	reqID     string
}

func (s *swapSession) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inbound := make(chan swap.Action)
	readErr := make(chan error, 1)
	go func() {
		for {
			var a swap.Action
			if err := wsjson.Read(ctx, s.conn, &a); err != nil {
				readErr <- err
				return
			}
			select {
			case inbound <- a:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.loadPrices(ctx)
	if err := s.write(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-readErr:
			return err
		case a := <-inbound:
			if !clientActions[a.Type] {
				logger.Log.Debugw("ignoring action from client", "request_id", s.reqID, "type", a.Type)
				continue
			}
			s.apply(ctx, a)
		case a := <-s.events:
			s.apply(ctx, a)
		}

		if err := s.write(ctx); err != nil {
			return err
		}
	}
}

// loadPrices applies the current book, or waits for the initial load in the background.
func (s *swapSession) loadPrices(ctx context.Context) {
	book, err := s.prices.Book()
	switch {
	case err == nil:
		s.state = swap.Reduce(s.state, swap.Action{Type: swap.ActionPricesLoaded, Book: book})
		return
	case !errors.Is(err, services.ErrPricesLoading):
		s.state = swap.Reduce(s.state, swap.Action{Type: swap.ActionPricesFailed, Error: msgPricesFailed})
		return
	}

	go func() {
		select {
		case <-ctx.Done():
			return
		case <-s.prices.Resolved():
		}

		a := swap.Action{Type: swap.ActionPricesFailed, Error: msgPricesFailed}
		if book, err := s.prices.Book(); err == nil {
			a = swap.Action{Type: swap.ActionPricesLoaded, Book: book}
		}
		s.post(ctx, a)
	}()
}

func (s *swapSession) apply(ctx context.Context, a swap.Action) {
	prev := s.state
	s.state = swap.Reduce(s.state, a)

	if s.state.Submitting && !prev.Submitting {
		go s.submit(ctx, s.state.Request())
	}
}

func (s *swapSession) submit(ctx context.Context, req swap.Request) {
	sub, err := s.submitter.Submit(ctx, req)

	a := swap.Action{Type: swap.ActionSubmitFinished, SubmissionID: sub.SubmissionID}
	if err != nil {
		var fieldErrs swap.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			a.Error = fieldErrs.FirstError()
		case errors.Is(err, services.ErrQuoteUnavailable):
			a.Error = msgQuoteMissing
		default:
			a.Error = "Swap failed"
		}
		if a.Error == "" {
			a.Error = err.Error()
		}
	}
	s.post(ctx, a)
}

func (s *swapSession) post(ctx context.Context, a swap.Action) {
	select {
	case s.events <- a:
	case <-ctx.Done():
	}
}

func (s *swapSession) write(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, wsWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, s.conn, s.state)
}
