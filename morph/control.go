package morph

import "github.com/katalvlaran/lvmorph/core"

// Limiter decorates a Callback so the search stops after a fixed number of
// results. Its Visit method is the Callback to hand to a search.
type Limiter struct {
	max   int
	hits  int
	inner Callback
}

// Limit wraps cb so that at most n results reach it; the n-th result is
// forwarded and then the search is stopped. With n <= 0 the first result
// stops the search without being forwarded. A nil cb only counts.
func Limit(n int, cb Callback) *Limiter {
	return &Limiter{max: n, inner: cb}
}

// Visit forwards m to the wrapped callback while under the limit.
func (l *Limiter) Visit(m Mapping, a, b *core.Graph) Control {
	if l.hits >= l.max {
		return Stop
	}
	l.hits++
	if l.inner != nil && l.inner(m, a, b) == Stop {
		return Stop
	}
	if l.hits >= l.max {
		return Stop
	}

	return Continue
}

// Hits returns how many results were forwarded.
func (l *Limiter) Hits() int { return l.hits }

// Reset zeroes the hit counter so the Limiter can wrap another search.
func (l *Limiter) Reset() { l.hits = 0 }

// Collect returns a Callback appending a materialised copy of every result
// to dst and always continuing.
func Collect(dst *[]*Map) Callback {
	return func(m Mapping, _, _ *core.Graph) Control {
		*dst = append(*dst, Clone(m))
		return Continue
	}
}

// Strings returns a Callback appending m.String() of every result to dst.
func Strings(dst *[]string) Callback {
	return func(m Mapping, _, _ *core.Graph) Control {
		*dst = append(*dst, m.String())
		return Continue
	}
}
