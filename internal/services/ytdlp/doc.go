// Package ytdlp wraps the yt-dlp command line tool behind a small client.
//
// The client drives two invocations: a metadata-only title lookup
// (--get-title) and the audio fetch (-x --audio-format mp3) that downloads a
// video and transcodes it to MP3 in one subprocess. Command execution is
// abstracted behind the Executor interface so tests can substitute stubs.
package ytdlp
