package camera

import "github.com/Carmen-Shannon/gates/common"

// CameraBuilderOption is a functional option for configuring an OrthographicCamera.
type CameraBuilderOption func(*cameraImpl)

// WithBounds sets an explicit projection box.
//
// Parameters:
//   - left, right: horizontal extent
//   - bottom, top: vertical extent
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithBounds(left, right, bottom, top float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setProjection(left, right, bottom, top)
	}
}

// WithViewDistance sets the projection from a view distance and aspect ratio.
//
// Parameters:
//   - viewDistance: the vertical half extent in world units
//   - aspect: the aspect ratio (width / height)
//
// Returns:
//   - CameraBuilderOption: a function that sets the projection
func WithViewDistance(viewDistance, aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setViewDistance(viewDistance, aspect)
	}
}

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - position: the camera position
//
// Returns:
//   - CameraBuilderOption: a function that sets the position
func WithPosition(position common.Vec2) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.position = position
	}
}

// WithRotation sets the initial rotation about Z.
//
// Parameters:
//   - degrees: rotation in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the rotation
func WithRotation(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.rotation = degrees
	}
}
