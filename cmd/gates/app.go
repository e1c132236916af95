package main

import (
	"github.com/Carmen-Shannon/gates/cmd/gates/circuit"
	"github.com/Carmen-Shannon/gates/common"
	"github.com/Carmen-Shannon/gates/engine"
	"github.com/Carmen-Shannon/gates/engine/camera"
	"github.com/Carmen-Shannon/gates/engine/logger"
	"github.com/Carmen-Shannon/gates/engine/renderer"
)

// app simulates a full adder and draws it every frame.
// Keys 1 to 3 or a left click toggle the inputs, Space pauses the simulation,
// E steps it once while paused, R turns every signal off and Escape asks to quit.
type app struct {
	adder      *circuit.FullAdder
	theme      circuit.Theme
	controller camera.CameraController
	paused     bool
}

var (
	_ engine.FrameHandler = &app{}
	_ engine.Launcher     = &app{}
	_ engine.Closer       = &app{}
	_ engine.Resizer      = &app{}
)

func newApp() *app {
	return &app{
		adder: circuit.NewFullAdder(),
		theme: circuit.DefaultTheme(),
		controller: camera.NewCameraController(
			camera.NewOrthographicCamera(
				camera.WithViewDistance(5, 16.0/9.0),
				camera.WithPosition(common.V2(7.5, 1.5)),
			),
			camera.WithPanSpeed(1.5),
			camera.WithViewDistanceBounds(1, 60),
		),
	}
}

func (a *app) OnLaunch(e engine.Engine) engine.Status {
	w := e.Window()
	a.controller.Resize(w.Width(), w.Height())
	logger.Logger().Info("circuit loaded", "gates", len(a.adder.Gates()), "wires", len(a.adder.Wires()))
	return engine.StatusOK
}

func (a *app) OnResize(_ engine.Engine, width, height int) {
	a.controller.Resize(width, height)
}

func (a *app) OnUpdate(e engine.Engine, dt float32) engine.Status {
	in := e.Window().Input()
	a.controller.Update(in, dt)

	if in.Key(common.KeyEsc).Pressed {
		e.Window().RequestClose()
	}
	for i, id := range a.adder.Inputs() {
		if in.Key(common.Key1 + i).Pressed {
			a.toggle(id)
		}
	}
	if in.Mouse(common.MouseLeft).Pressed {
		world := a.controller.Camera().ScreenToWorld(in.MousePos())
		if id, ok := a.adder.GateAt(world); ok {
			a.toggle(id)
		}
	}
	if in.Key(common.KeyR).Pressed {
		a.adder.Reset()
	}
	if in.Key(common.KeySpace).Pressed {
		a.paused = !a.paused
	}

	if !a.paused || in.Key(common.KeyE).Pressed {
		a.adder.Step()
	}
	return engine.StatusOK
}

func (a *app) toggle(id circuit.ID) {
	if err := a.adder.Toggle(id); err != nil {
		logger.Logger().Debug("ignored click", "gate", id, "error", err)
	}
}

func (a *app) OnRender(r renderer.Renderer) engine.Status {
	cam := a.controller.Camera()
	r.UseCamera(cam)

	lo := cam.ScreenToWorld(common.V2(-1, -1))
	hi := cam.ScreenToWorld(common.V2(1, 1))
	circuit.Render(r, a.adder.Circuit, a.theme, lo, hi)
	return engine.StatusOK
}

func (a *app) OnClose(engine.Engine) engine.Status {
	logger.Logger().Info("closing", "sum", a.adder.Signal(a.adder.Sum), "carry", a.adder.Signal(a.adder.CarryOut))
	return engine.StatusOK
}
