// Package tex provides the low-level LaTeX scanning primitives used by the
// lint rules.
//
// All offsets are byte offsets into the scanned text. Masking functions
// replace every byte of the masked region (except newlines) with a space,
// so a masked text always has the same length and line structure as its
// source and offsets found in one can be reported against the other.
package tex
