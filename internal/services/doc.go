// Package services defines shared error markers consumed by the download
// pipeline and external tool integrations.
//
// The sentinel errors classify failures into the categories the CLI reports
// on (missing dependency, missing file, external tool failure, and so on),
// and the Wrap helper builds messages that keep component and operation
// context alongside the underlying diagnostic text.
package services
