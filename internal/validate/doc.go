// Package validate is a post-hoc rule checker for tests: given a Plan
// and the Selection that produced it, it reports the invariant and
// soft-rule violations the governing spec defines in §4.6/§8. It is
// not part of the request path.
package validate
