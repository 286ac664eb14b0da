package life

import (
	"fmt"
	"strings"
)

// Rule is a Life-like birth/survival rule stored as neighbour-count masks.
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is B3/S23.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// ParseRule accepts "B3/S23", "b3/s23" and the classic "23/3" survival/birth
// ordering. An empty string yields Conway.
func ParseRule(s string) (Rule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Conway, nil
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("rule %q: want two '/'-separated parts", s)
	}
	var r Rule
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "b") || strings.HasPrefix(lower, "s") {
		for _, p := range parts {
			if p == "" {
				return Rule{}, fmt.Errorf("rule %q: empty part", s)
			}
			mask, err := digitMask(p[1:])
			if err != nil {
				return Rule{}, fmt.Errorf("rule %q: %w", s, err)
			}
			switch p[0] {
			case 'B', 'b':
				r.Birth = mask
			case 'S', 's':
				r.Survive = mask
			default:
				return Rule{}, fmt.Errorf("rule %q: unexpected prefix %q", s, p[0])
			}
		}
		return r, nil
	}
	survive, err := digitMask(parts[0])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	birth, err := digitMask(parts[1])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return Rule{Birth: birth, Survive: survive}, nil
}

func digitMask(s string) (uint16, error) {
	var mask uint16
	for _, ch := range s {
		if ch < '0' || ch > '8' {
			return 0, fmt.Errorf("invalid neighbour count %q", ch)
		}
		mask |= 1 << uint(ch-'0')
	}
	return mask, nil
}

// String formats the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.Birth&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.Survive&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}

func (r Rule) next(alive bool, neighbors uint8) bool {
	if alive {
		return r.Survive&(1<<neighbors) != 0
	}
	return r.Birth&(1<<neighbors) != 0
}
