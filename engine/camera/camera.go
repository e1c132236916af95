package camera

import (
	"sync"

	"github.com/Carmen-Shannon/gates/common"
)

type cameraImpl struct {
	mu *sync.Mutex

	position common.Vec2
	rotation float32 // degrees

	viewDistance float32
	aspect       float32

	viewMatrix           [16]float32
	transform            [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32
}

// OrthographicCamera is a 2D camera with an orthographic projection.
// The view matrix is the inverse of translate(position)·rotateZ(rotation), and the
// view-projection matrix is projection·view. +Y points down the screen.
type OrthographicCamera interface {
	// SetProjection sets an explicit projection box. Near and far are fixed at -1 and 1.
	//
	// Parameters:
	//   - left, right: horizontal extent
	//   - bottom, top: vertical extent
	SetProjection(left, right, bottom, top float32)

	// SetViewDistance sets a projection spanning viewDistance·aspect horizontally and
	// viewDistance vertically in each direction from the camera position.
	//
	// Parameters:
	//   - viewDistance: the vertical half extent in world units
	//   - aspect: the aspect ratio (width / height)
	SetViewDistance(viewDistance, aspect float32)

	// ViewDistance returns the vertical half extent last set by SetViewDistance.
	//
	// Returns:
	//   - float32: view distance in world units
	ViewDistance() float32

	// Aspect returns the aspect ratio last set by SetViewDistance.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - common.Vec2: the position
	Position() common.Vec2

	// SetPosition moves the camera and recomputes the view matrix.
	//
	// Parameters:
	//   - position: the world-space position
	SetPosition(position common.Vec2)

	// Move offsets the camera position.
	//
	// Parameters:
	//   - offset: the world-space offset
	Move(offset common.Vec2)

	// Rotation returns the rotation about Z in degrees.
	//
	// Returns:
	//   - float32: rotation in degrees
	Rotation() float32

	// SetRotation sets the rotation about Z in degrees and recomputes the view matrix.
	//
	// Parameters:
	//   - degrees: rotation in degrees
	SetRotation(degrees float32)

	// ViewMatrix returns the current 4x4 view matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns the current combined view-projection matrix as 16 floats (column-major).
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjectionMatrix() [16]float32

	// ScreenToWorld maps a normalized cursor position in [-1, 1] to world space using the
	// current view distance, aspect, position and rotation.
	//
	// Parameters:
	//   - pos: the normalized screen position
	//
	// Returns:
	//   - common.Vec2: the world-space position
	ScreenToWorld(pos common.Vec2) common.Vec2
}

var _ OrthographicCamera = &cameraImpl{}

// NewOrthographicCamera creates a camera at the origin with a view distance of 1 and an aspect of 1.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicCamera(options ...CameraBuilderOption) OrthographicCamera {
	c := &cameraImpl{
		mu:           &sync.Mutex{},
		viewDistance: 1,
		aspect:       1,
		viewMatrix:   common.IdentityMatrix(),
	}
	c.setViewDistance(c.viewDistance, c.aspect)
	for _, option := range options {
		option(c)
	}
	c.updateView()
	return c
}

func (c *cameraImpl) SetProjection(left, right, bottom, top float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setProjection(left, right, bottom, top)
}

func (c *cameraImpl) SetViewDistance(viewDistance, aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewDistance(viewDistance, aspect)
}

func (c *cameraImpl) ViewDistance() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDistance
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Position() common.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

func (c *cameraImpl) SetPosition(position common.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = position
	c.updateView()
}

func (c *cameraImpl) Move(offset common.Vec2) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = c.position.Add(offset)
	c.updateView()
}

func (c *cameraImpl) Rotation() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotation
}

func (c *cameraImpl) SetRotation(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rotation = degrees
	c.updateView()
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewProjectionMatrix
}

func (c *cameraImpl) ScreenToWorld(pos common.Vec2) common.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	local := pos.Scale(c.viewDistance).Mul(common.V2(c.aspect, 1))
	x, y, _ := common.TransformPoint(c.transform[:], local.X, local.Y, 0)
	return common.V2(x, y)
}

// Caller must hold the mutex.
func (c *cameraImpl) setProjection(left, right, bottom, top float32) {
	common.Ortho(c.projectionMatrix[:], left, right, bottom, top, -1, 1)
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}

// Caller must hold the mutex.
func (c *cameraImpl) setViewDistance(viewDistance, aspect float32) {
	c.viewDistance = viewDistance
	c.aspect = aspect
	c.setProjection(-viewDistance*aspect, viewDistance*aspect, viewDistance, -viewDistance)
}

// updateView recalculates the view and view-projection matrices from position and rotation.
// Caller must hold the mutex.
func (c *cameraImpl) updateView() {
	var translation, rotation [16]float32
	common.Translate(translation[:], c.position.X, c.position.Y, 0)
	common.RotateZ(rotation[:], common.Radians(c.rotation))
	common.Mul4(c.transform[:], translation[:], rotation[:])
	if !common.Invert4(c.viewMatrix[:], c.transform[:]) {
		c.viewMatrix = common.IdentityMatrix()
	}
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
