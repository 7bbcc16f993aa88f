package brand

import (
	"sort"
	"strings"
)

// DefaultNoColorize lists brands whose QR codes stay black on white.
var DefaultNoColorize = []string{"github", "instagram", "gmail"}

// Policy is an immutable set of brand labels that skip the gradient.
type Policy struct {
	labels map[string]struct{}
}

// NewPolicy builds a policy from labels; matching is case-insensitive.
func NewPolicy(labels ...string) *Policy {
	p := &Policy{labels: make(map[string]struct{}, len(labels))}
	for _, l := range labels {
		l = strings.ToLower(strings.TrimSpace(l))
		if l != "" {
			p.labels[l] = struct{}{}
		}
	}
	return p
}

// DefaultPolicy uses DefaultNoColorize.
func DefaultPolicy() *Policy {
	return NewPolicy(DefaultNoColorize...)
}

// NoColorize reports whether label must render monochrome.
func (p *Policy) NoColorize(label string) bool {
	if p == nil {
		return false
	}
	_, ok := p.labels[strings.ToLower(label)]
	return ok
}

// Labels returns the configured labels sorted.
func (p *Policy) Labels() []string {
	out := make([]string, 0, len(p.labels))
	for l := range p.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}
