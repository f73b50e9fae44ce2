package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EventLogLine is one rendered event. Repeated continuous or axis events from
// the same action update the line in place instead of scrolling.
type EventLogLine struct {
	Code  int
	Text  string
	Count int
	Alpha float32
	Fade  *gween.Tween
}

// EventLogData holds the most recent lines, newest last.
type EventLogData struct {
	Lines []EventLogLine
	Total int
}

var EventLog = donburi.NewComponentType[EventLogData]()
