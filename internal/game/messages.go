package game

import "fmt"

// maxMessages bounds the message history.
const maxMessages = 50

// MessageLog keeps the most recent messages shown to the player.
type MessageLog struct {
	lines []string
}

// Add formats and appends a message, dropping the oldest when full.
func (l *MessageLog) Add(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	if len(l.lines) > maxMessages {
		l.lines = l.lines[len(l.lines)-maxMessages:]
	}
}

// Last returns the newest message, or "" if there are none.
func (l *MessageLog) Last() string {
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}

// Lines returns the history, oldest first.
func (l *MessageLog) Lines() []string {
	return l.lines
}
