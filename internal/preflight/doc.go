// Package preflight provides readiness checks for the external binaries and
// filesystem paths tunegrab depends on.
//
// The CLI runs these before processing so a doomed run (missing yt-dlp, an
// unwritable output directory, a full disk) fails fast with a clear report
// instead of partway through a batch. The "deps" command uses the same
// checks to render service health.
package preflight
