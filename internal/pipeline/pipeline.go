package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-api/internal/config"
	"github.com/s21platform/chat-api/internal/model"
)

type state int

const (
	stateStopped state = iota
	stateRunning
	stateDraining
)

// Service owns the bounded ingestion queue and the single background
// writer goroutine. Producers only enqueue, the writer only dequeues; no
// other state is shared. One writer means batches are persisted strictly
// in assembly order.
type Service struct {
	queue        chan model.Message
	batchMaxSize int
	batchTimeout time.Duration

	inserter    BatchInserter
	attachments AttachmentStore
	reporter    FailureReporter
	logger      logger_lib.LoggerInterface

	mu        sync.Mutex
	state     state
	producers sync.WaitGroup
	cancel    context.CancelFunc
	done      chan struct{}
}

func New(
	cfg *config.Config,
	inserter BatchInserter,
	attachments AttachmentStore,
	reporter FailureReporter,
	logger logger_lib.LoggerInterface,
) *Service {
	return &Service{
		queue:        make(chan model.Message, cfg.Pipeline.QueueCapacity),
		batchMaxSize: cfg.Pipeline.BatchMaxSize,
		batchTimeout: cfg.Pipeline.BatchTimeout,
		inserter:     inserter,
		attachments:  attachments,
		reporter:     reporter,
		logger:       logger,
	}
}

// Start launches the writer goroutine. Calling Start on a running or
// draining pipeline is a caller defect.
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateStopped {
		return errors.New("pipeline is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.state = stateRunning

	go s.run(ctx)

	return nil
}

// Upload enqueues a message for background persistence. It blocks while
// the queue is full; acceptance is the only acknowledgement the caller
// gets. Valid only between Start and Shutdown.
//
// The producer is registered under the same lock as the state check, so
// the final drain waits for any send that passed the check but has not
// reached the queue yet.
func (s *Service) Upload(ctx context.Context, message model.Message) error {
	s.mu.Lock()
	if s.state != stateRunning {
		s.mu.Unlock()
		return errors.New("pipeline is not running")
	}
	s.producers.Add(1)
	s.mu.Unlock()
	defer s.producers.Done()

	select {
	case s.queue <- message:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops the writer and waits until it has flushed every queued
// message. An in-flight batch write always completes first. Shutdown of a
// stopped pipeline is a no-op.
func (s *Service) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.state == stateStopped {
		s.mu.Unlock()
		return nil
	}
	if s.state == stateRunning {
		s.state = stateDraining
		s.cancel()
	}
	done := s.done
	s.mu.Unlock()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	s.mu.Lock()
	s.state = stateStopped
	s.mu.Unlock()

	return nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	for {
		var first model.Message
		select {
		case <-ctx.Done():
			s.drain()
			return
		case first = <-s.queue:
		}

		s.writeBatch(s.assemble(ctx, first))

		if ctx.Err() != nil {
			s.drain()
			return
		}
	}
}

// assemble accumulates messages after the first one until the batch is
// full or batchTimeout has passed since the batch was started.
// Cancellation only cuts accumulation short; the partial batch is still
// handed to the writer.
func (s *Service) assemble(ctx context.Context, first model.Message) []model.Message {
	batch := make([]model.Message, 0, s.batchMaxSize)
	batch = append(batch, first)

	timer := time.NewTimer(s.batchTimeout)
	defer timer.Stop()

	for len(batch) < s.batchMaxSize {
		select {
		case message := <-s.queue:
			batch = append(batch, message)
		case <-timer.C:
			return batch
		case <-ctx.Done():
			return batch
		}
	}

	return batch
}

// drain keeps consuming until every registered producer has finished its
// send, then empties what is left of the queue and flushes the remainder
// as one final batch.
func (s *Service) drain() {
	settled := make(chan struct{})
	go func() {
		s.producers.Wait()
		close(settled)
	}()

	var batch []model.Message
	for {
		select {
		case message := <-s.queue:
			batch = append(batch, message)
		case <-settled:
			for {
				select {
				case message := <-s.queue:
					batch = append(batch, message)
				default:
					if len(batch) > 0 {
						s.writeBatch(batch)
					}
					return
				}
			}
		}
	}
}

// writeBatch resolves attachments and performs one atomic insert for the
// batch. It runs on a detached context so shutdown can never abort a
// write halfway. A constraint violation rolls the batch back, after which
// rows are retried one by one: offending messages are dropped and
// reported, the rest of the batch survives.
func (s *Service) writeBatch(batch []model.Message) {
	ctx := context.Background()

	rows := make([]model.MessageRow, 0, len(batch))
	accepted := make([]model.Message, 0, len(batch))
	for _, message := range batch {
		row, err := s.buildRow(message)
		if err != nil {
			s.report(ctx, message, err)
			continue
		}
		rows = append(rows, row)
		accepted = append(accepted, message)
	}

	if len(rows) == 0 {
		return
	}

	err := s.inserter.InsertMessages(ctx, rows)
	if err == nil {
		return
	}

	s.logger.Error(fmt.Sprintf("failed to insert message batch: %v", err))

	if !errors.Is(err, model.ErrConstraintViolation) {
		for _, message := range accepted {
			s.report(ctx, message, err)
		}
		return
	}

	for i, row := range rows {
		if err := s.inserter.InsertMessage(ctx, row); err != nil {
			s.report(ctx, accepted[i], err)
		}
	}
}

func (s *Service) buildRow(message model.Message) (model.MessageRow, error) {
	if message.HasAttachment() {
		messageType, digest, err := s.attachments.Save(message.RoomID, message.AttachmentData, message.AttachmentFilename)
		if err != nil {
			return model.MessageRow{}, fmt.Errorf("failed to store attachment: %w", err)
		}

		return model.MessageRow{
			SenderID: message.SenderID,
			RoomID:   message.RoomID,
			Type:     messageType,
			Content:  digest,
		}, nil
	}

	return model.MessageRow{
		SenderID: message.SenderID,
		RoomID:   message.RoomID,
		Type:     model.MessageTypeText,
		Content:  message.Text,
	}, nil
}

func (s *Service) report(ctx context.Context, message model.Message, cause error) {
	s.logger.Error(fmt.Sprintf("failed to persist message %s: %v", message.ID, cause))

	if err := s.reporter.ReportFailure(ctx, message, cause); err != nil {
		s.logger.Error(fmt.Sprintf("failed to report message failure: %v", err))
	}
}
