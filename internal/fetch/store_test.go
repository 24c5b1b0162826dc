package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setState(s *Store[string], key Key, state State[string]) {
	s.transition(key, true, func(State[string]) (State[string], bool) { return state, true })
}

func TestStore_UnknownKeyIsIdle(t *testing.T) {
	store := NewStore[string]()

	assert.Equal(t, State[string]{}, store.GetState("missing"))
	assert.Equal(t, StatusIdle, store.GetState("missing").Status)
}

func TestStore_NotifiesSubscribersInOrder(t *testing.T) {
	store := NewStore[string]()
	var calls []string
	store.Subscribe(testKey, func(s State[string]) { calls = append(calls, "a:"+s.Status.String()) })
	store.Subscribe(testKey, func(s State[string]) { calls = append(calls, "b:"+s.Status.String()) })
	store.Subscribe("other", func(s State[string]) { calls = append(calls, "other") })

	setState(store, testKey, State[string]{Status: StatusLoading})
	setState(store, testKey, State[string]{Status: StatusSuccess, Data: "x", HasData: true})

	assert.Equal(t, []string{"a:loading", "b:loading", "a:success", "b:success"}, calls)
}

func TestStore_UnchangedTransitionIsSilent(t *testing.T) {
	store := NewStore[string]()
	notified := 0
	store.Subscribe(testKey, func(State[string]) { notified++ })

	state, changed := store.transition(testKey, false, func(cur State[string]) (State[string], bool) {
		return cur, false
	})

	assert.False(t, changed)
	assert.Equal(t, StatusIdle, state.Status)
	assert.Zero(t, notified)
}

func TestStore_UnsubscribeStopsDelivery(t *testing.T) {
	store := NewStore[string]()
	notified := 0
	unsubscribe := store.Subscribe(testKey, func(State[string]) { notified++ })
	assert.Equal(t, 1, store.Subscribers(testKey))

	setState(store, testKey, State[string]{Status: StatusLoading})
	unsubscribe()
	unsubscribe()
	setState(store, testKey, State[string]{Status: StatusSuccess})

	assert.Equal(t, 1, notified)
	assert.Zero(t, store.Subscribers(testKey))
}

func TestStore_ReleaseOnlyWhenUnobserved(t *testing.T) {
	store := NewStore[string]()
	unsubscribe := store.Subscribe(testKey, func(State[string]) {})
	setState(store, testKey, State[string]{Status: StatusSuccess, Data: "x", HasData: true})

	assert.False(t, store.Release(testKey))
	assert.Equal(t, StatusSuccess, store.GetState(testKey).Status)

	unsubscribe()
	assert.True(t, store.Release(testKey))
	assert.Equal(t, StatusIdle, store.GetState(testKey).Status)
	assert.False(t, store.Release(testKey))
}

func TestStore_TransitionWithoutCreateIgnoresUnknownKey(t *testing.T) {
	store := NewStore[string]()

	_, changed := store.transition("missing", false, func(State[string]) (State[string], bool) {
		return State[string]{Status: StatusSuccess}, true
	})

	assert.False(t, changed)
	assert.Equal(t, StatusIdle, store.GetState("missing").Status)
}

func TestStore_PanickingListenerDoesNotStopDelivery(t *testing.T) {
	store := NewStore[string]()
	var calls []string
	store.Subscribe(testKey, func(State[string]) { panic("render failed") })
	store.Subscribe(testKey, func(s State[string]) { calls = append(calls, "healthy:"+s.Status.String()) })

	assert.NotPanics(t, func() {
		setState(store, testKey, State[string]{Status: StatusLoading})
	})
	setState(store, testKey, State[string]{Status: StatusSuccess, Data: "x", HasData: true})

	assert.Equal(t, []string{"healthy:loading", "healthy:success"}, calls)
}

func TestStore_DeliversToLaterSubscribersAfterPanic(t *testing.T) {
	store := NewStore[string]()
	unsubscribe := store.Subscribe(testKey, func(State[string]) { panic("boom") })
	setState(store, testKey, State[string]{Status: StatusLoading})
	unsubscribe()

	notified := 0
	store.Subscribe(testKey, func(State[string]) { notified++ })
	setState(store, testKey, State[string]{Status: StatusSuccess})

	assert.Equal(t, 1, notified)
}
