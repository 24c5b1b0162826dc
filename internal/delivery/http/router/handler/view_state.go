package handler

import "marketplace/internal/fetch"

// ViewState is the JSON a renderer receives for one key.
type ViewState struct {
	Status     string `json:"status"`
	Loading    bool   `json:"loading"`
	Refreshing bool   `json:"refreshing"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

func newViewState[T any](state fetch.State[T]) ViewState {
	view := ViewState{
		Status:     state.Status.String(),
		Loading:    state.Loading(),
		Refreshing: state.Refreshing,
		Error:      state.Err,
	}
	if state.HasData {
		view.Data = state.Data
	}

	return view
}
