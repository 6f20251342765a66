package prompt

import "context"

// Request carries one conversational turn into the handler chain.
type Request struct {
	Prompt          string
	FocusedDataName string
}

// FocusChange is the only session mutation a handler may request. The caller
// applies it to the loaded session and persists it explicitly.
type FocusChange struct {
	Apply bool
	Name  string // empty clears the focus
}

func SetFocus(name string) FocusChange {
	return FocusChange{Apply: true, Name: name}
}

func ClearFocus() FocusChange {
	return FocusChange{Apply: true}
}

// Result is a handler's response plus its requested state transition.
type Result struct {
	Response Response
	Focus    FocusChange
	Handler  string
}

// Handler is one predicate+action pair in the chain.
type Handler interface {
	Name() string
	CanHandle(prompt, focusedDataName string) bool
	Handle(ctx context.Context, req Request) Result
}
