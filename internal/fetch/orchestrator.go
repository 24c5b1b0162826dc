package fetch

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Loader performs one fetch. It runs on its own goroutine.
type Loader[T any] func(ctx context.Context) (T, error)

// Resolver returns the Loader for key. An error settles the key in
// StatusError without starting anything.
type Resolver[T any] func(key Key) (Loader[T], error)

// MessageFunc turns a loader error into the text a view renders. It is called
// outside the store lock and may read state.
type MessageFunc func(err error) string

// Options configures an Orchestrator. The zero value is usable.
type Options struct {
	// Name labels logs and observer calls, e.g. "product-list".
	Name string
	// Policy applies to Load and Retry on a key that is already loading.
	Policy Policy
	// Message extracts error text; defaults to err.Error().
	Message MessageFunc
	// Observer receives transition notifications.
	Observer Observer
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
	// Context is the parent of every loader call. Releasing a key does not
	// cancel it; results of released keys are discarded instead.
	Context context.Context
}

// Orchestrator turns intents into transitions of the keys in its Store.
type Orchestrator[T any] struct {
	name     string
	store    *Store[T]
	resolve  Resolver[T]
	policy   Policy
	message  MessageFunc
	observer Observer
	logger   *slog.Logger
	ctx      context.Context

	generation atomic.Uint64
	inflight   sync.WaitGroup
}

// NewOrchestrator creates the single writer of store.
func NewOrchestrator[T any](store *Store[T], resolve Resolver[T], opts Options) *Orchestrator[T] {
	o := &Orchestrator[T]{
		name:     opts.Name,
		store:    store,
		resolve:  resolve,
		policy:   opts.Policy,
		message:  opts.Message,
		observer: opts.Observer,
		logger:   opts.Logger,
		ctx:      opts.Context,
	}
	if o.message == nil {
		o.message = func(err error) string { return err.Error() }
	}
	if o.observer == nil {
		o.observer = noopObserver{}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	} else {
		store.setLogger(o.logger)
	}
	if o.ctx == nil {
		o.ctx = context.Background()
	}

	return o
}

// GetState returns the current state of key.
func (o *Orchestrator[T]) GetState(key Key) State[T] {
	return o.store.GetState(key)
}

// Subscribe registers listener for key's transitions.
func (o *Orchestrator[T]) Subscribe(key Key, listener Listener[T]) Unsubscribe {
	return o.store.Subscribe(key, listener)
}

// Release destroys key's state once it has no subscribers.
func (o *Orchestrator[T]) Release(key Key) bool {
	return o.store.Release(key)
}

// Dispatch applies intent and returns the resulting state of its key. The
// transition caused by the intent itself is visible when Dispatch returns;
// the settle transition follows later from the loader goroutine.
func (o *Orchestrator[T]) Dispatch(intent Intent) State[T] {
	o.logger.Debug("Dispatching intent",
		slog.String("resource", o.name),
		slog.String("intent", intent.Kind.String()),
		slog.String("key", string(intent.Key)),
	)

	switch intent.Kind {
	case IntentLoad, IntentRetry:
		return o.start(intent.Key, false)
	case IntentRefresh:
		return o.start(intent.Key, true)
	case IntentClear:
		return o.clear(intent.Key)
	case IntentClearError:
		return o.clearError(intent.Key)
	default:
		o.logger.Warn("Ignoring unknown intent",
			slog.String("resource", o.name),
			slog.Int("kind", int(intent.Kind)),
		)

		return o.store.GetState(intent.Key)
	}
}

// Wait blocks until every started loader has settled or ctx is done.
func (o *Orchestrator[T]) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		o.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for in-flight fetches")
	}
}

func (o *Orchestrator[T]) start(key Key, refresh bool) State[T] {
	loader, resolveErr := o.resolve(key)

	var resolveMsg string
	if resolveErr != nil {
		resolveMsg = o.message(resolveErr)
	}

	var (
		from Status
		gen  uint64
	)
	next, changed := o.store.transition(key, true, func(cur State[T]) (State[T], bool) {
		from = cur.Status
		if cur.Status == StatusLoading && o.policy == PolicyIgnoreInFlight {
			return cur, false
		}

		gen = o.generation.Add(1)
		if resolveErr != nil {
			return State[T]{Status: StatusError, Err: resolveMsg, Generation: gen}, true
		}

		next := State[T]{Status: StatusLoading, Generation: gen}
		if refresh && cur.HasData {
			next.Data = cur.Data
			next.HasData = true
			next.Refreshing = true
		}

		return next, true
	})
	if !changed {
		o.observer.Deduplicated(o.name)
		o.logger.Debug("Intent ignored while loading",
			slog.String("resource", o.name),
			slog.String("key", string(key)),
		)

		return next
	}
	o.observer.Transitioned(o.name, from, next.Status)

	if resolveErr != nil {
		o.logger.Warn("Cannot resolve fetch",
			slog.String("resource", o.name),
			slog.String("key", string(key)),
			slog.Any("error", resolveErr),
		)

		return next
	}

	o.inflight.Add(1)
	go o.run(key, gen, loader)

	return next
}

func (o *Orchestrator[T]) run(key Key, gen uint64, loader Loader[T]) {
	defer o.inflight.Done()

	var (
		data T
		err  error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Errorf("fetch panicked: %v", r)
			}
		}()
		data, err = loader(o.ctx)
	}()

	o.settle(key, gen, data, err)
}

func (o *Orchestrator[T]) settle(key Key, gen uint64, data T, err error) {
	var errMsg string
	if err != nil {
		errMsg = o.message(err)
	}

	next, changed := o.store.transition(key, false, func(cur State[T]) (State[T], bool) {
		if cur.Status != StatusLoading || cur.Generation != gen {
			return cur, false
		}

		if err != nil {
			return State[T]{
				Status:     StatusError,
				Data:       cur.Data,
				HasData:    cur.HasData,
				Err:        errMsg,
				Generation: gen,
			}, true
		}

		return State[T]{Status: StatusSuccess, Data: data, HasData: true, Generation: gen}, true
	})
	if !changed {
		o.observer.StaleDropped(o.name)
		o.logger.Debug("Discarding stale result",
			slog.String("resource", o.name),
			slog.String("key", string(key)),
			slog.Uint64("generation", gen),
		)

		return
	}
	o.observer.Transitioned(o.name, StatusLoading, next.Status)

	if err != nil {
		o.logger.Warn("Fetch failed",
			slog.String("resource", o.name),
			slog.String("key", string(key)),
			slog.String("message", next.Err),
			slog.Any("error", err),
		)
	}
}

func (o *Orchestrator[T]) clear(key Key) State[T] {
	var from Status
	next, changed := o.store.transition(key, false, func(cur State[T]) (State[T], bool) {
		from = cur.Status
		switch cur.Status {
		case StatusIdle:
			return cur, false
		case StatusLoading:
			if !cur.HasData {
				return cur, false
			}

			return State[T]{Status: StatusLoading, Generation: cur.Generation}, true
		default:
			return State[T]{Generation: cur.Generation}, true
		}
	})
	if changed {
		o.observer.Transitioned(o.name, from, next.Status)
	}

	return next
}

func (o *Orchestrator[T]) clearError(key Key) State[T] {
	next, changed := o.store.transition(key, false, func(cur State[T]) (State[T], bool) {
		if cur.Status != StatusError {
			return cur, false
		}
		if cur.HasData {
			return State[T]{Status: StatusSuccess, Data: cur.Data, HasData: true, Generation: cur.Generation}, true
		}

		return State[T]{Generation: cur.Generation}, true
	})
	if changed {
		o.observer.Transitioned(o.name, StatusError, next.Status)
	}

	return next
}
