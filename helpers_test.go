package glide

import (
	"bytes"
	"log"
)

// fakeViewport is a mutable Viewport for tests.
type fakeViewport struct {
	width, height float64
	scale         float64
	content       float64
}

func newFakeViewport(w, h, content float64) *fakeViewport {
	return &fakeViewport{width: w, height: h, scale: 1, content: content}
}

func (v *fakeViewport) Size() (float64, float64)   { return v.width, v.height }
func (v *fakeViewport) DeviceScaleFactor() float64 { return v.scale }
func (v *fakeViewport) ContentHeight() float64     { return v.content }

// bufLogger returns a logger writing into a buffer the test can inspect.
func bufLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", 0), &buf
}

const frameDT = 1.0 / 60
