package services

//go:generate mockgen -source=swap.go -destination=swap_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
	"github.com/sbilibin2017/gw-token-swap/internal/swap"
	"github.com/segmentio/kafka-go"
)

// ErrQuoteUnavailable is returned when a pair cannot be priced or the amount is not positive.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// PriceBookReader returns the current price book.
type PriceBookReader interface {
	Book() (*swap.PriceBook, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SubmissionRecorder observes swap submissions.
type SubmissionRecorder interface {
	RecordSubmission(err error)
}

// SwapService quotes and submits swaps against the current price book.
type SwapService struct {
	prices      PriceBookReader
	kafkaWriter KafkaWriter
	delay       time.Duration
	recorder    SubmissionRecorder
}

// NewSwapService creates a new SwapService. kafkaWriter and recorder may be nil.
func NewSwapService(
	prices PriceBookReader,
	kafkaWriter KafkaWriter,
	delay time.Duration,
	recorder SubmissionRecorder,
) *SwapService {
	return &SwapService{
		prices:      prices,
		kafkaWriter: kafkaWriter,
		delay:       delay,
		recorder:    recorder,
	}
}

// Quote prices a swap of amount from -> to.
func (s *SwapService) Quote(ctx context.Context, from, to string, amount, feePct float64) (swap.Quote, error) {
	book, err := s.prices.Book()
	if err != nil {
		return swap.Quote{}, err
	}

	q, ok := swap.ComputeQuote(book, from, to, amount, feePct)
	if !ok {
		return swap.Quote{}, ErrQuoteUnavailable
	}
	return q, nil
}

// Submit validates req, waits the configured delay and publishes the accepted swap.
// Validation failures are returned as swap.FieldErrors.
func (s *SwapService) Submit(ctx context.Context, req swap.Request) (models.SwapSubmission, error) {
	book, err := s.prices.Book()
	if err != nil {
		return models.SwapSubmission{}, err
	}

	if errs := swap.Validate(req); errs != nil {
		logger.Log.Infow("swap rejected", "from", req.From, "to", req.To, "errors", errs)
		return models.SwapSubmission{}, errs
	}

	amount, _ := swap.ParseAmount(req.InputAmount)
	q, ok := swap.ComputeQuote(book, req.From, req.To, amount, req.FeePct)
	if !ok {
		return models.SwapSubmission{}, ErrQuoteUnavailable
	}

	if err := s.wait(ctx); err != nil {
		s.observe(err)
		return models.SwapSubmission{}, err
	}

	sub := models.SwapSubmission{
		SubmissionID: uuid.New().String(),
		Timestamp:    time.Now().Unix(),
		From:         swap.NormalizeSymbol(req.From),
		To:           swap.NormalizeSymbol(req.To),
		InputAmount:  amount,
		FeePct:       req.FeePct,
		Rate:         q.Rate,
		OutputAmount: q.OutputAmount,
		FeeAmount:    q.FeeAmount,
	}

	s.publishSubmission(ctx, sub)
	s.observe(nil)
	logger.Log.Infow("swap submitted", "submission_id", sub.SubmissionID, "from", sub.From, "to", sub.To, "input_amount", sub.InputAmount)
	return sub, nil
}

func (s *SwapService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// publishSubmission publishes a submission to Kafka.
func (s *SwapService) publishSubmission(ctx context.Context, sub models.SwapSubmission) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "submission_id", sub.SubmissionID)
		return
	}

	data, err := json.Marshal(sub)
	if err != nil {
		logger.Log.Errorw("Failed to marshal submission for Kafka", "submission_id", sub.SubmissionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(sub.SubmissionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish submission to Kafka", "submission_id", sub.SubmissionID, "error", err)
	} else {
		logger.Log.Infow("Submission published to Kafka", "submission_id", sub.SubmissionID)
	}
}

func (s *SwapService) observe(err error) {
	if s.recorder != nil {
		s.recorder.RecordSubmission(err)
	}
}
