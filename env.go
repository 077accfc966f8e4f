//go:build !js

package glide

import (
	"fmt"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"
)

// DetectEnvironment describes the native host. Desktop and mobile builds
// expose no reduced-motion preference; set Config.ReducedMotion instead.
func DetectEnvironment() Environment {
	return Environment{
		UserAgent: fmt.Sprintf("ebiten/v2 (%s; %s) TPS/%d", runtime.GOOS, runtime.GOARCH, ebiten.TPS()),
	}
}
