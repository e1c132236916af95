package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPanSpeed sets the pan speed in view distances per second.
//
// Parameters:
//   - speed: the pan speed
//
// Returns:
//   - CameraControllerOption: functional option to set the pan speed
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}

// WithZoomSpeed sets the fraction of the view distance removed per wheel step.
// Values outside (0, 1) are ignored.
//
// Parameters:
//   - speed: the zoom fraction
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if speed > 0 && speed < 1 {
			cc.zoomSpeed = speed
		}
	}
}

// WithViewDistanceBounds clamps zooming to a view distance range.
//
// Parameters:
//   - minDistance: the closest allowed view distance
//   - maxDistance: the farthest allowed view distance
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithViewDistanceBounds(minDistance, maxDistance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		if minDistance > 0 && maxDistance >= minDistance {
			cc.minViewDistance = minDistance
			cc.maxViewDistance = maxDistance
		}
	}
}
