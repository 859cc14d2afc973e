package moderation

import (
	"errors"
	"time"
)

// ErrInvalidDuration reports a token that is not a valid duration.
var ErrInvalidDuration = errors.New("invalid duration")

// ParseDuration parses compact duration tokens like "30s", "5m", "2h" or
// "1d": one or more digits followed by a single unit letter. An empty
// string means "no duration" and returns (nil, nil), which callers use
// for permanent actions. Anything else, including combined units like
// "1h30m", is ErrInvalidDuration.
func ParseDuration(token string) (*time.Duration, error) {
	if token == "" {
		return nil, nil
	}
	if len(token) < 2 {
		return nil, ErrInvalidDuration
	}

	digits := token[:len(token)-1]
	amount := int64(0)
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, ErrInvalidDuration
		}
		amount = amount*10 + int64(c-'0')
		if amount > 1<<40 {
			return nil, ErrInvalidDuration
		}
	}

	var unit time.Duration
	switch token[len(token)-1] {
	case 's', 'S':
		unit = time.Second
	case 'm', 'M':
		unit = time.Minute
	case 'h', 'H':
		unit = time.Hour
	case 'd', 'D':
		unit = 24 * time.Hour
	default:
		return nil, ErrInvalidDuration
	}

	d := time.Duration(amount) * unit
	return &d, nil
}
