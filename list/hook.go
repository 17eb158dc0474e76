package list

import (
	"github.com/joeycumines/go-eco/internal/linkident"
)

// Hook is the embeddable link state for an element of a List[T]. A zero
// Hook is idle.
type Hook[T any] struct {
	sibling [2]*Hook[T]
	owner   *T
	id      linkident.Identity
}

const sideNext = 0
const sidePrev = 1

// Element constrains the element type of a List: *T must supply a way to
// reach its own embedded Hook[T]. This is the generic analogue of embedding
// a hook struct and taking its address via pointer arithmetic in a language
// that allows it.
type Element[T any] interface {
	*T
	ListHook() *Hook[T]
}

func hookOf[T any, PT Element[T]](e *T) *Hook[T] {
	h := PT(e).ListHook()
	if h.owner == nil {
		h.owner = e
	}
	return h
}

// IsIdle reports whether the hook is not currently linked into any list.
// Without the eco_debug build tag no identity is tracked and IsIdle always
// reports true.
func (h *Hook[T]) IsIdle() bool {
	return h.id.IsIdle()
}
