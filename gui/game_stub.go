//go:build !ebiten

package gui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/life-editor/model"
	"github.com/sheikhrachel/life-editor/utils"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("gui: window support requires building with the 'ebiten' tag")

// Run reports that the window frontend was not compiled in.
func Run(*model.Engine, utils.Config) error {
	return ErrNoWindow
}
