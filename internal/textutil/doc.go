// Package textutil provides title sanitization for safe filesystem use.
//
// Video titles arrive from external metadata and may contain arbitrary
// characters. Sanitization filters them down to a fixed allowed set rather
// than replacing, so the output is stable under repeated application.
package textutil
