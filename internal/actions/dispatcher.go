package actions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/listview"
	"github.com/scottbass3/keel/internal/resource"
)

// DialogCloseDelay is how long a confirmation stays visible after a
// successful action.
const DialogCloseDelay = listview.CloseDelay

type Level int

const (
	LevelSuccess Level = iota
	LevelFailure
)

func (l Level) String() string {
	if l == LevelFailure {
		return "failure"
	}
	return "success"
}

type Notice struct {
	Level Level
	Text  string
}

// Outcome tells the caller what to do after an action: whether to re-fetch
// the collection, what to show, and when to close the dialog.
type Outcome struct {
	Notice     Notice
	Refresh    bool
	CloseDelay time.Duration
}

func (o Outcome) OK() bool {
	return o.Notice.Level == LevelSuccess
}

type Dispatcher struct {
	client     api.Client
	nodeID     string
	logger     *log.Logger
	closeDelay time.Duration
}

type Option func(*Dispatcher)

func WithLogger(logger *log.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

func WithCloseDelay(delay time.Duration) Option {
	return func(d *Dispatcher) {
		if delay >= 0 {
			d.closeDelay = delay
		}
	}
}

func New(client api.Client, nodeID string, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client:     client,
		nodeID:     nodeID,
		logger:     log.New(io.Discard),
		closeDelay: DialogCloseDelay,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) NodeID() string {
	return d.nodeID
}

// Remove deletes one entity. Only a successful call asks for a refresh.
func Remove[T any](ctx context.Context, d *Dispatcher, desc resource.Descriptor[T], item T) Outcome {
	if desc.Remove == nil {
		return d.failed(fmt.Errorf("deleting %s is not supported", desc.Plural))
	}
	if d.client == nil {
		return d.failed(errors.New("backend is not configured"))
	}

	req := desc.Remove.Request(item)
	key := desc.Spec.Key(item)
	logger := d.logger.With("resource", desc.Remove.Resource, "node", d.nodeID, "key", key)
	if err := d.client.Remove(ctx, d.nodeID, desc.Remove.Resource, req); err != nil {
		logger.Warn("remove failed", "err", err)
		return d.failed(err)
	}
	logger.Info("removed")
	return d.succeeded(desc.Remove.Success)
}

// Prune deletes every unused entity of the descriptor's resource.
func Prune[T any](ctx context.Context, d *Dispatcher, desc resource.Descriptor[T]) Outcome {
	if desc.Prune == nil {
		return d.failed(fmt.Errorf("pruning %s is not supported", desc.Plural))
	}
	if d.client == nil {
		return d.failed(errors.New("backend is not configured"))
	}

	logger := d.logger.With("resource", desc.Prune.Resource, "node", d.nodeID)
	report, err := d.client.Prune(ctx, d.nodeID, desc.Prune.Resource)
	if err != nil {
		logger.Warn("prune failed", "err", err)
		return d.failed(err)
	}
	logger.Info("pruned", "deleted", report.Deleted(), "reclaimed", report.SpaceReclaimed)
	return d.succeeded(desc.Prune.Summary(report))
}

func (d *Dispatcher) succeeded(text string) Outcome {
	return Outcome{
		Notice:     Notice{Level: LevelSuccess, Text: text},
		Refresh:    true,
		CloseDelay: d.closeDelay,
	}
}

func (d *Dispatcher) failed(err error) Outcome {
	return Outcome{
		Notice: Notice{Level: LevelFailure, Text: api.Message(err)},
	}
}
