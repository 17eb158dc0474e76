package linkident

import "sync/atomic"

// Token is a container's shared "belongs-to" identity handle. A container
// lazily creates one on first insert and every hook it owns adopts it; the
// token's live count should return to zero exactly when the container is
// emptied, regardless of the order elements are destroyed in.
// It is ordinary heap-allocated Go memory and needs no explicit release: it
// is kept alive by whichever hooks still reference it, same as any other
// Go value, and collected once they don't.
type Token struct {
	live atomic.Int64
}

// NewToken allocates a fresh, empty identity token.
func NewToken() *Token {
	return &Token{}
}

func (t *Token) acquire() {
	t.live.Add(1)
}

func (t *Token) release() {
	if t.live.Add(-1) < 0 {
		Fail("linkident: identity token released more times than acquired")
	}
}

// Live returns the number of hooks currently holding this token. Exported
// for invariant tests: in eco_debug builds it equals the owning container's
// Size(); without that tag hooks never acquire the token and it stays zero.
func (t *Token) Live() int64 {
	return t.live.Load()
}
