//go:build !gocv

package camera

// OpenDevice reports ErrDeviceUnsupported; rebuild with -tags gocv to read
// from a camera.
func OpenDevice(int) (FrameSource, error) {
	return nil, ErrDeviceUnsupported
}
