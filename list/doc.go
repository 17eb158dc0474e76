// Package list implements an intrusive, circular, doubly-linked list.
// Elements are not owned by the list: each element embeds a Hook, and the
// caller is responsible for the element's storage and lifetime.
//
// Thread safety: a List is not internally synchronized. Callers that share
// a list across goroutines must provide their own exclusion, same as
// container/list.
package list
