package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/loveletter/internal/game"
)

// FormatReplay renders actions as the comma-separated byte list accepted by
// ParseReplay, e.g. "1,3,5,4,0,0".
func FormatReplay(actions []game.PlayerAction) (string, error) {
	data, err := EncodeActions(actions)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ","), nil
}

// ParseReplay parses a comma-separated byte list into actions. An empty
// string is an empty replay.
func ParseReplay(s string) ([]game.PlayerAction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	data := make([]byte, len(fields))
	for i, f := range fields {
		n, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: value %d %q is not a byte", ErrMalformed, i, f)
		}
		data[i] = byte(n)
	}
	return DecodeActions(data)
}
