package systems

import (
	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
)

// CameraSystem walks room cameras left and right and zooms them into doors
type CameraSystem struct {
	selector DoorSelector
	input    InputSource
}

// NewCameraSystem creates a camera system for one room
func NewCameraSystem(selector DoorSelector, input InputSource) *CameraSystem {
	if input == nil {
		input = NoInput{}
	}
	return &CameraSystem{
		selector: selector,
		input:    input,
	}
}

// NewCamera builds an idle camera at position and notifies the selector once
func NewCamera(selector DoorSelector, position int) *components.CameraComponent {
	camera := &components.CameraComponent{
		RelativePosition: position,
		State:            components.CameraIdle,
		StartupDelay:     config.MovementDelayTicks,
	}
	selector.MovedTo(position)
	return camera
}

// SpawnCamera creates a camera entity in the world
func (s *CameraSystem) SpawnCamera(world *ecs.World, position int) ecs.EntityID {
	return world.CreateVisual(components.Camera, NewCamera(s.selector, position), "camera")
}

// Update steps every camera in the world
func (s *CameraSystem) Update(world *ecs.World, dt float64) {
	for _, cameraEntity := range world.GetEntitiesWithTag("camera") {
		cameraComp, exists := world.GetComponent(cameraEntity.ID, components.Camera)
		if !exists {
			continue
		}
		camera := cameraComp.(*components.CameraComponent)

		from := camera.State
		s.Step(camera)
		if camera.State != from {
			world.EmitEvent(CameraUpdateEvent{
				CameraID: cameraEntity.ID,
				From:     from.String(),
				To:       camera.State.String(),
				Position: camera.RelativePosition,
			})
		}
	}
}

// Step advances one camera by one tick
func (s *CameraSystem) Step(camera *components.CameraComponent) {
	if camera.StartupDelay > 0 {
		camera.StartupDelay--
		return
	}

	switch camera.State {
	case components.CameraIdle:
		s.handleInput(camera)

	case components.CameraMovingLeft, components.CameraMovingRight:
		camera.Countdown--
		if camera.Countdown > 0 {
			return
		}
		if camera.State == components.CameraMovingLeft {
			camera.RelativePosition--
		} else {
			camera.RelativePosition++
		}
		camera.State = components.CameraIdle
		camera.Duration = 0
		s.selector.MovedTo(camera.RelativePosition)

	case components.CameraZoomingIn:
		camera.Countdown--
		if camera.Countdown > 0 {
			return
		}
		camera.State = components.CameraEntered
		s.selector.EnterDoor(camera.RelativePosition)
	}
}

// handleInput starts at most one animation; left wins over right, right over confirm
func (s *CameraSystem) handleInput(camera *components.CameraComponent) {
	if s.input.IsDirectionPressed(DirectionLeft) && camera.RelativePosition > s.selector.SmallestIndex() {
		start(camera, components.CameraMovingLeft, config.MoveTicks)
	} else if s.input.IsDirectionPressed(DirectionRight) && camera.RelativePosition < s.selector.LargestIndex() {
		start(camera, components.CameraMovingRight, config.MoveTicks)
	} else if s.input.IsDirectionPressed(DirectionConfirm) && s.selector.CanEnterDoor(camera.RelativePosition) {
		start(camera, components.CameraZoomingIn, config.ZoomTicks)
	}
}

func start(camera *components.CameraComponent, state components.CameraState, ticks int) {
	camera.State = state
	camera.Countdown = ticks
	camera.Duration = ticks
}

// IsMoving reports whether a camera is animating or still in its startup delay
func IsMoving(camera *components.CameraComponent) bool {
	return camera.StartupDelay > 0 || camera.State != components.CameraIdle
}
