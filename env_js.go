//go:build js

package glide

import "syscall/js"

// DetectEnvironment reads the browser's user agent and its
// prefers-reduced-motion media query.
func DetectEnvironment() Environment {
	var env Environment
	nav := js.Global().Get("navigator")
	if nav.Truthy() {
		env.UserAgent = nav.Get("userAgent").String()
	}
	match := js.Global().Get("matchMedia")
	if match.Type() == js.TypeFunction {
		mq := js.Global().Call("matchMedia", "(prefers-reduced-motion: reduce)")
		env.ReducedMotion = mq.Get("matches").Bool()
	}
	return env
}
