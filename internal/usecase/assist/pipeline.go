package assist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/ai-notes/internal/entity"
	"github.com/evgeniy-krivenko/ai-notes/pkg/logger/slogx"
)

var ErrRetriesExhausted = errors.New("assist retries exhausted")

type generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type notesStore interface {
	Get(id string) (entity.Note, error)
	TransformContent(ctx context.Context, id string, fn func(current string) string) (entity.Note, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=pipeline_options.gen.go -from-struct=Options
type Options struct {
	store     notesStore `option:"mandatory" validate:"required"`
	generator generator  `option:"mandatory" validate:"required"`

	attempts  uint          `default:"5" validate:"min=1,max=10"`
	baseDelay time.Duration `default:"1s" validate:"min=0"`
	timer     retry.Timer
}

type Result struct {
	Status entity.AssistStatus
	Note   entity.Note
}

// Pipeline runs one AI action at a time: Idle -> Requesting -> Idle.
type Pipeline struct {
	Options

	requesting atomic.Bool
	publishMu  sync.Mutex
	events     observer.Property
}

func New(opts Options) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate assist pipeline options: %v", err)
	}

	return &Pipeline{
		Options: opts,
		events:  observer.NewProperty(entity.AssistEvent{}),
	}, nil
}

func (p *Pipeline) Loading() bool {
	return p.requesting.Load()
}

// Run asks the model to rewrite the note and applies the answer through the
// store. A call while another one is requesting returns AssistBusy without
// contacting the model. The caller's cancellation does not abort the request.
func (p *Pipeline) Run(ctx context.Context, noteID string, action entity.Action) (Result, error) {
	ctx = context.WithoutCancel(ctx)
	attrs := []slog.Attr{slogx.NoteID(noteID), slog.String("action", string(action))}

	if !action.Valid() {
		slogx.Warn(ctx, "unknown assist action", attrs...)
		return Result{Status: entity.AssistSkipped}, nil
	}

	note, err := p.store.Get(noteID)
	if err != nil || strings.TrimSpace(note.Content) == "" {
		slogx.Debug(ctx, "nothing to assist with", attrs...)
		return Result{Status: entity.AssistSkipped}, nil
	}

	if !p.requesting.CompareAndSwap(false, true) {
		slogx.Debug(ctx, "assist request already in flight", attrs...)
		return Result{Status: entity.AssistBusy}, nil
	}

	p.publish(func() {}, entity.AssistEvent{Loading: true, NoteID: noteID, Action: action})

	res, err := p.run(ctx, note, action)

	settled := entity.AssistEvent{NoteID: noteID, Action: action, Status: res.Status}
	if err != nil {
		settled.Err = err.Error()
	}
	p.publish(func() { p.requesting.Store(false) }, settled)

	return res, err
}

// publish applies a flag transition and emits its event under one lock, so
// events follow the order of the transitions.
func (p *Pipeline) publish(transition func(), ev entity.AssistEvent) {
	p.publishMu.Lock()
	defer p.publishMu.Unlock()

	transition()
	p.events.Update(ev)
}

func (p *Pipeline) run(ctx context.Context, note entity.Note, action entity.Action) (Result, error) {
	attrs := []slog.Attr{slogx.NoteID(note.ID), slog.String("action", string(action))}

	text, err := p.generate(ctx, systemPrompts[action], note.Content)
	if err != nil {
		slogx.Error(ctx, "assist request failed", append(attrs, slogx.Err(err))...)
		return Result{Status: entity.AssistFailed}, fmt.Errorf("assist %s: %w", action, err)
	}

	if text == "" {
		slogx.Info(ctx, "assist returned no text", attrs...)
		return Result{Status: entity.AssistEmpty}, nil
	}

	updated, err := p.store.TransformContent(ctx, note.ID, func(current string) string {
		return applyResult(action, current, text)
	})
	if err != nil {
		if errors.Is(err, entity.ErrNoteNotFound) {
			slogx.Info(ctx, "note removed before assist result arrived", attrs...)
			return Result{Status: entity.AssistGone}, nil
		}
		return Result{Status: entity.AssistFailed}, fmt.Errorf("assist apply %s: %w", action, err)
	}

	slogx.Info(ctx, "assist result applied", attrs...)

	return Result{Status: entity.AssistApplied, Note: updated}, nil
}

// generate retries the model call; after failed attempt i (0-indexed) it
// waits baseDelay * 2^i. There is no wait after the final attempt.
func (p *Pipeline) generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var failed uint

	opts := []retry.Option{
		retry.Context(ctx),
		retry.Attempts(p.attempts),
		retry.LastErrorOnly(true),
		retry.DelayType(func(uint, error, *retry.Config) time.Duration {
			return p.baseDelay << (failed - 1)
		}),
		retry.OnRetry(func(n uint, err error) {
			slogx.Warn(ctx, "assist attempt failed", slog.Uint64("attempt", uint64(n)), slogx.Err(err))
		}),
	}
	if p.timer != nil {
		opts = append(opts, retry.WithTimer(p.timer))
	}

	text, err := retry.DoWithData(
		func() (string, error) {
			text, err := p.generator.Generate(ctx, systemPrompt, userPrompt)
			if err != nil {
				failed++
			}
			return text, err
		},
		opts...,
	)
	if err != nil {
		return "", fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, failed, err)
	}

	return text, nil
}

func (p *Pipeline) SubscribeToEvents(ctx context.Context) <-chan entity.AssistEvent {
	stream := p.events.Observe()

	result := make(chan entity.AssistEvent)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				ev := stream.Next().(entity.AssistEvent)

				select {
				case <-ctx.Done():
					return
				case result <- ev:
				}
			}
		}
	}()

	return result
}
