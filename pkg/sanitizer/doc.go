// Package sanitizer derives normalized forms of owner-supplied contact data.
//
// Nothing here rewrites stored values: callers keep the original input and use the
// normalized form alongside it.
package sanitizer
