//go:build gocv

package camera

import (
	"context"
	"fmt"

	"github.com/hupe1980/cbir/feature"
	"gocv.io/x/gocv"
)

// DeviceSource reads frames from a video capture device.
type DeviceSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// OpenDevice opens the video device with the given index.
func OpenDevice(id int) (FrameSource, error) {
	capture, err := gocv.OpenVideoCapture(id)
	if err != nil {
		return nil, fmt.Errorf("camera: open device %d: %w", id, err)
	}
	if !capture.IsOpened() {
		_ = capture.Close()
		return nil, fmt.Errorf("camera: device %d is not available", id)
	}

	return &DeviceSource{capture: capture, mat: gocv.NewMat()}, nil
}

// Capture blocks until the device delivers the next frame.
func (s *DeviceSource) Capture(ctx context.Context) (*feature.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if ok := s.capture.Read(&s.mat); !ok || s.mat.Empty() {
		return nil, ErrNoFrame
	}

	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("camera: convert frame: %w", err)
	}
	return feature.FromImage(img), nil
}

// Close releases the device.
func (s *DeviceSource) Close() error {
	_ = s.mat.Close()
	return s.capture.Close()
}
