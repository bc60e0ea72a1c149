// Package notify delivers trip emails. Services decide when and to whom a
// message goes; this package renders the copy and moves it over a Sender.
// Delivery is best effort: failures are logged, traced and counted, never
// returned to the operation that asked for the notification.
package notify

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Message is one rendered email.
type Message struct {
	ToName   string
	To       string
	Subject  string
	HTMLBody string
}

// Sender moves a single message to its recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, msg Message) error

func (f SenderFunc) Send(ctx context.Context, msg Message) error {
	return f(ctx, msg)
}

// Options tune a Dispatcher. Zero values pick the defaults.
type Options struct {
	// Timeout bounds each individual send. Defaults to 10s.
	Timeout time.Duration
	// Concurrency caps in-flight sends during a fan-out. Defaults to 8.
	Concurrency int
}

// Dispatcher sends messages with a per-send timeout and log-and-continue
// failure handling.
type Dispatcher struct {
	sender      Sender
	log         *slog.Logger
	tracer      trace.Tracer
	timeout     time.Duration
	concurrency int
}

// NewDispatcher wraps sender. A nil logger falls back to slog.Default().
func NewDispatcher(sender Sender, log *slog.Logger, opts Options) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 8
	}
	return &Dispatcher{
		sender:      sender,
		log:         log,
		tracer:      otel.Tracer("github.com/pkordes/planner/internal/notify"),
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
	}
}

// Send delivers one message and reports whether it went out.
// The send is detached from ctx cancellation so a client hanging up does not
// abort mail that is already being handed over; the per-send timeout still applies.
func (d *Dispatcher) Send(ctx context.Context, msg Message) bool {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	ctx, span := d.tracer.Start(ctx, "notify.Send", trace.WithAttributes(
		attribute.String("notify.subject", msg.Subject),
	))
	defer span.End()

	if err := d.sender.Send(ctx, msg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "send failed")
		d.log.WarnContext(ctx, "notification not delivered",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err,
		)
		return false
	}
	d.log.DebugContext(ctx, "notification delivered", "to", msg.To, "subject", msg.Subject)
	return true
}

// FanOut sends every message concurrently and waits for all of them.
// Sends are unordered and independent: one failure never stops the others.
// It returns how many messages failed.
func (d *Dispatcher) FanOut(ctx context.Context, msgs []Message) int {
	if len(msgs) == 0 {
		return 0
	}

	var g errgroup.Group
	g.SetLimit(d.concurrency)

	failed := make([]bool, len(msgs))
	for i, msg := range msgs {
		g.Go(func() error {
			failed[i] = !d.Send(ctx, msg)
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	return n
}
