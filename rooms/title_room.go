package rooms

import (
	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
	"prime-catacombs/spawners"
	"prime-catacombs/systems"
)

const timerTitleCheck systems.TimerID = "title-check"

// TitleRoom is a single archway that starts a new run
type TitleRoom struct {
	world *ecs.World
	log   *systems.MessageLog

	layout []ecs.EntityID
	camera ecs.EntityID

	cameras *systems.CameraSystem
	fades   *systems.FadeSystem
	timers  *systems.TimerSystem

	showTitle  bool
	transition Transition
}

// NewTitleRoom builds the title room; showTitle false hides the title text from the start
func NewTitleRoom(input systems.InputSource, log *systems.MessageLog, showTitle bool) *TitleRoom {
	if log == nil {
		log = systems.GetMessageLog()
	}
	r := &TitleRoom{
		world:     ecs.NewWorld(),
		log:       log,
		showTitle: showTitle,
	}
	r.cameras = systems.NewCameraSystem(r, input)
	r.fades = systems.NewFadeSystem()
	r.timers = systems.NewTimerSystem(r.onTimer)
	r.world.AddSystem(r.cameras)
	r.world.AddSystem(r.fades)
	r.world.AddSystem(r.timers)

	spawner := spawners.NewVisualSpawner(r.world, nil)
	r.layout = append(r.layout,
		spawner.CreateFloor(0, 0),
		spawner.CreateArch(0, generation.CatacombNumber{}, ""),
		spawner.CreateTorch(0, 1),
	)
	r.camera = r.cameras.SpawnCamera(r.world, 0)
	r.fades.Spawn(r.world, components.NewFadeIn(config.FadeInInterval, config.FadeInStep, 1), systems.FadeHooks{})
	r.timers.SetCountdown(timerTitleCheck, config.TitleMovementCheckTicks, true)
	return r
}

func (r *TitleRoom) SmallestIndex() int { return 0 }
func (r *TitleRoom) LargestIndex() int  { return 0 }

// CanEnterDoor is true only for the archway at 0
func (r *TitleRoom) CanEnterDoor(index int) bool {
	return index == 0
}

// MovedTo lights the torch of the archway
func (r *TitleRoom) MovedTo(index int) {
	systems.LightTorches(r.world, index)
}

// EnterDoor clears the room and asks for a new run
func (r *TitleRoom) EnterDoor(index int) {
	if r.transition != TransitionNone {
		return
	}
	disposeAll(r.world, r.layout, r.log)
	r.layout = nil
	r.world.DestroyVisual(r.camera)
	r.camera = 0
	r.timers.ClearCountdown(timerTitleCheck)
	r.transition = TransitionCatacombs
	r.log.AddTyped("Entering the catacombs", systems.MessageTypeSystem)
}

// Update advances the room by one tick
func (r *TitleRoom) Update() {
	r.world.Update(tickLength)
}

// World returns the entities of the room
func (r *TitleRoom) World() *ecs.World { return r.world }

// Transition reports whether a run should start
func (r *TitleRoom) Transition() Transition { return r.transition }

// ShowTitle is false once the camera has started moving
func (r *TitleRoom) ShowTitle() bool { return r.showTitle }

// Camera returns the camera, or nil once the door has been entered
func (r *TitleRoom) Camera() *components.CameraComponent {
	if comp, ok := r.world.GetComponent(r.camera, components.Camera); ok {
		return comp.(*components.CameraComponent)
	}
	return nil
}

func (r *TitleRoom) onTimer(id systems.TimerID) {
	if id != timerTitleCheck {
		return
	}
	if camera := r.Camera(); camera != nil && camera.State != components.CameraIdle {
		r.showTitle = false
		r.timers.ClearCountdown(timerTitleCheck)
	}
}
