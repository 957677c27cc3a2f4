// Package emitter writes registry documents to a filesystem as stable JSON.
//
// Every document lands at `<target root>/<namespace>/<kind>/<path>.json`.
// Writes run on a bounded worker pool; a file whose current content already
// has the same digest is left untouched.
package emitter
