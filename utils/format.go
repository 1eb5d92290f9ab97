package utils

import (
	"fmt"
	"time"
)

// MessageType sets the color a message is printed with.
type MessageType int

// The message types used by the command line tool.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// ANSI colors used by the command line tool.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	StatusMessage:  StatusColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
}

// DecorateText wraps s in the color of the message type.
func DecorateText(s string, msgType MessageType) string {
	c, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return c + s + DefaultColor
}

// FormatTime formats a duration as a short human readable value, e.g. "1m 2.50s".
func FormatTime(d time.Duration) string {
	secs := d.Seconds() - float64(int64(d.Minutes())*60)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", int64(d.Minutes()), secs)
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh %dm %.2fs", int64(d.Hours()), int64(d.Minutes())%60, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", int64(d.Hours())/24, int64(d.Hours())%24, int64(d.Minutes())%60, secs)
}
