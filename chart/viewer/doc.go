// Package viewer shows rendered figures in a desktop window.
//
// The window needs cgo on most platforms. Builds with the noviewer tag or
// with cgo disabled get a Show that returns ErrUnavailable.
package viewer
