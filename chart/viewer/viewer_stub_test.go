//go:build noviewer || !cgo

package viewer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sartorproj/gotitration/chart"
)

func TestShowUnavailable(t *testing.T) {
	err := Show(context.Background(), []chart.Page{{Title: "pH"}})
	assert.ErrorIs(t, err, ErrUnavailable)
}
