package controller

import (
	m "github.com/mouse-blink/barrelgen/internal/model"
)

// Message types.
type transitionMsg struct {
	state m.State
}

type reportMsg struct {
	report m.RunReport
	err    error
}

// stagedItem is one finished module in the build view.
type stagedItem struct {
	name string
}
