//go:build noviewer || !cgo

package viewer

import (
	"context"
	"errors"

	"github.com/sartorproj/gotitration/chart"
)

// ErrUnavailable is returned by Show in builds without a window system.
var ErrUnavailable = errors.New("viewer: built without window support (noviewer tag or cgo disabled)")

// Show always fails in builds without a window system.
func Show(ctx context.Context, pages []chart.Page) error {
	return ErrUnavailable
}
