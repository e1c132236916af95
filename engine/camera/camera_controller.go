package camera

import (
	"sync"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine/input"
	"github.com/chewxy/math32"
)

type cameraControllerImpl struct {
	mu     *sync.Mutex
	camera OrthographicCamera

	panSpeed        float32 // view distances per second
	zoomSpeed       float32 // fraction of the view distance per wheel step
	minViewDistance float32
	maxViewDistance float32

	dragging bool
	dragLast common.Vec2
}

// CameraController drives an OrthographicCamera from input each frame.
// Arrow keys and WASD pan, the wheel zooms by changing the view distance, and holding
// the middle mouse button drags the view.
type CameraController interface {
	// Camera returns the controlled camera.
	//
	// Returns:
	//   - OrthographicCamera: the camera
	Camera() OrthographicCamera

	// Update applies one frame of input to the camera.
	//
	// Parameters:
	//   - in: the input state, already updated for this frame
	//   - dt: the frame time in seconds
	Update(in *input.State, dt float32)

	// Pan moves the camera along a direction scaled by the pan speed, the view distance and dt.
	//
	// Parameters:
	//   - direction: the pan direction in world axes
	//   - dt: the frame time in seconds
	Pan(direction common.Vec2, dt float32)

	// Zoom scales the view distance by one wheel step per unit of delta, clamped to the bounds.
	// Positive delta zooms in.
	//
	// Parameters:
	//   - delta: wheel steps
	Zoom(delta float32)

	// Resize keeps the view distance and adopts the aspect ratio of a new window size.
	// Zero sizes are ignored.
	//
	// Parameters:
	//   - width, height: the window size in pixels
	Resize(width, height int)

	// PanSpeed returns the pan speed in view distances per second.
	//
	// Returns:
	//   - float32: the pan speed
	PanSpeed() float32

	// ZoomSpeed returns the fraction of the view distance removed per wheel step.
	//
	// Returns:
	//   - float32: the zoom speed
	ZoomSpeed() float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a controller for the given camera.
//
// Parameters:
//   - camera: the camera to drive
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(camera OrthographicCamera, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:              &sync.Mutex{},
		camera:          camera,
		panSpeed:        1.0,
		zoomSpeed:       0.1,
		minViewDistance: 0.5,
		maxViewDistance: 100,
	}
	for _, option := range options {
		option(cc)
	}
	return cc
}

func (cc *cameraControllerImpl) Camera() OrthographicCamera {
	return cc.camera
}

func (cc *cameraControllerImpl) PanSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.panSpeed
}

func (cc *cameraControllerImpl) ZoomSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.zoomSpeed
}

func (cc *cameraControllerImpl) Update(in *input.State, dt float32) {
	var dir common.Vec2
	if in.Key(common.KeyD).Held || in.Key(common.KeyRight).Held {
		dir.X++
	}
	if in.Key(common.KeyA).Held || in.Key(common.KeyLeft).Held {
		dir.X--
	}
	if in.Key(common.KeyS).Held || in.Key(common.KeyDown).Held {
		dir.Y++
	}
	if in.Key(common.KeyW).Held || in.Key(common.KeyUp).Held {
		dir.Y--
	}
	if dir != (common.Vec2{}) {
		cc.Pan(dir.Scale(1/dir.Len()), dt)
	}

	if wheel := in.Wheel(); wheel != 0 {
		cc.Zoom(wheel)
	}

	cc.drag(in.Mouse(common.MouseMiddle), in.MousePos())
}

// drag moves the camera so the world point under the cursor stays under it while the button is held.
func (cc *cameraControllerImpl) drag(button input.Button, pos common.Vec2) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if !button.Held {
		cc.dragging = false
		return
	}
	if cc.dragging {
		delta := pos.Sub(cc.dragLast).Scale(cc.camera.ViewDistance()).Mul(common.V2(cc.camera.Aspect(), 1))
		cc.camera.Move(delta.Scale(-1))
	}
	cc.dragging = true
	cc.dragLast = pos
}

func (cc *cameraControllerImpl) Pan(direction common.Vec2, dt float32) {
	cc.mu.Lock()
	speed := cc.panSpeed
	cc.mu.Unlock()
	cc.camera.Move(direction.Scale(speed * cc.camera.ViewDistance() * dt))
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	vd := cc.camera.ViewDistance() * math32.Pow(1-cc.zoomSpeed, delta)
	vd = common.Clamp(vd, cc.minViewDistance, cc.maxViewDistance)
	cc.camera.SetViewDistance(vd, cc.camera.Aspect())
}

func (cc *cameraControllerImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	cc.camera.SetViewDistance(cc.camera.ViewDistance(), float32(width)/float32(height))
}
