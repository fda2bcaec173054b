// Package batch reads URL list files and runs the download pipeline over
// them with per-item failure isolation.
//
// A batch never aborts because one URL failed: every item produces a Result,
// and the summary reports successes and failures for caller-side rendering.
package batch
