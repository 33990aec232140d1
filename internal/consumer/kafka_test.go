package consumer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/LakshyaxGupta/FlowBreak/config"
	"github.com/LakshyaxGupta/FlowBreak/internal/entity"
	"github.com/gofrs/uuid"
	"github.com/segmentio/kafka-go"
)

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
	closed    bool
	drained   chan struct{}
}

func newFakeReader(values ...string) *fakeReader {
	r := &fakeReader{drained: make(chan struct{})}
	for i, v := range values {
		r.queue = append(r.queue, kafka.Message{Offset: int64(i), Value: []byte(v)})
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()

	select {
	case <-r.drained:
	default:
		close(r.drained)
	}
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

type fakeIngester struct {
	mu    sync.Mutex
	calls []entity.IngestRequest
	errs  map[string]error
	// failures counts the remaining storage errors per email before the
	// batch goes through.
	failures map[string]int
}

func (f *fakeIngester) Ingest(_ context.Context, req entity.IngestRequest) (*entity.IngestResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req)
	if err := f.errs[req.Email]; err != nil {
		return nil, err
	}
	if f.failures[req.Email] > 0 {
		f.failures[req.Email]--
		return nil, errors.New("database is down")
	}
	return &entity.IngestResult{Success: true, SessionID: uuid.Must(uuid.NewV4()), EventsIngested: len(req.Events)}, nil
}

func (f *fakeIngester) emails() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.Email
	}
	return out
}

func (r *fakeReader) committedOffsets() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func TestRunCommitsHandledMessages(t *testing.T) {
	reader := newFakeReader(
		`{"email":"ok@example.com","events":[{"event_type":"tab_switch","timestamp":"1741944413"}]}`,
		`not json`,
		`{"email":"bad@example.com","events":[]}`,
		`{"email":"down@example.com","events":[{"event_type":"tab_switch","timestamp":"1741944413"}]}`,
	)
	ingester := &fakeIngester{
		errs:     map[string]error{"bad@example.com": entity.ErrInvalidRequest},
		failures: map[string]int{"down@example.com": 2},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewKafkaConsumerWithReader(reader, ingester, logger)
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case <-reader.drained:
	case <-time.After(5 * time.Second):
		t.Fatal("consumer did not drain the queue")
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !reader.closed {
		t.Fatal("reader should be closed on exit")
	}
	// ok, bad, then down twice failing and once stored.
	if len(ingester.calls) != 5 {
		t.Fatalf("expected 5 ingest calls, got %d", len(ingester.calls))
	}

	want := []int64{0, 1, 2, 3}
	if len(reader.committed) != len(want) {
		t.Fatalf("committed offsets = %v, want %v", reader.committed, want)
	}
	for i := range want {
		if reader.committed[i] != want[i] {
			t.Fatalf("committed offsets = %v, want %v", reader.committed, want)
		}
	}
}

func TestNewKafkaConsumerRequiresConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if _, err := NewKafkaConsumer(config.KafkaConfig{Topic: "t", GroupID: "g"}, &fakeIngester{}, logger); err == nil {
		t.Fatal("expected error without brokers")
	}
}

func TestRunDoesNotCommitPastFailedBatch(t *testing.T) {
	reader := newFakeReader(
		`{"email":"down@example.com","events":[{"event_type":"tab_switch","timestamp":"1741944413"}]}`,
		`{"email":"ok@example.com","events":[{"event_type":"tab_switch","timestamp":"1741944414"}]}`,
	)
	ingester := &fakeIngester{errs: map[string]error{
		"down@example.com": errors.New("database is down"),
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := NewKafkaConsumerWithReader(reader, ingester, logger)
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	deadline := time.Now().Add(5 * time.Second)
	for len(ingester.emails()) < 3 {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("failed batch was not retried")
		}
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if got := reader.committedOffsets(); len(got) != 0 {
		t.Fatalf("committed offsets = %v, want none", got)
	}
	for _, email := range ingester.emails() {
		if email != "down@example.com" {
			t.Fatalf("batch after the failed offset was ingested: %v", ingester.emails())
		}
	}
}
