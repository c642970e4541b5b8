// Package camera implements live matching: frames are captured on a fixed
// interval and each one is matched against a library of images whose
// signatures were computed once at startup.
//
// Frames come from a FrameSource. FileSource re-reads an image that another
// process keeps overwriting; DeviceSource (build tag "gocv") reads a video
// device through OpenCV.
package camera
