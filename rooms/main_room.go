package rooms

import (
	"fmt"

	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
	"prime-catacombs/spawners"
	"prime-catacombs/systems"
)

const timerLose systems.TimerID = "lose"

// Options configures a run through the catacombs
type Options struct {
	Start          generation.CatacombNumber
	Base           int
	AllowComposite bool
	Ambience       systems.Ambience
	Input          systems.InputSource
	Log            *systems.MessageLog
}

// Stats summarises a run
type Stats struct {
	Depth   int    // Doors entered
	Deepest string // Last prime room reached
	Traps   int
}

// MainRoom is one room of the catacombs. Entering a door rebuilds it in place.
type MainRoom struct {
	world    *ecs.World
	log      *systems.MessageLog
	ambience systems.Ambience

	base           int
	allowComposite bool

	current  generation.CatacombNumber
	entries  []generation.Entry
	smallest int
	largest  int

	// Visuals owned by the current room, in creation order
	layout []ecs.EntityID
	camera ecs.EntityID
	fade   ecs.EntityID

	spawner *spawners.VisualSpawner
	cameras *systems.CameraSystem
	torch   *systems.TorchSystem
	fades   *systems.FadeSystem
	timers  *systems.TimerSystem

	entering   bool
	transition Transition
	err        error
	stats      Stats
}

// NewMainRoom builds the first room of a run
func NewMainRoom(opts Options) (*MainRoom, error) {
	if err := generation.ValidateBase(opts.Base); err != nil {
		return nil, err
	}
	if opts.Log == nil {
		opts.Log = systems.GetMessageLog()
	}
	if opts.Ambience == nil {
		opts.Ambience = &systems.SilentAmbience{}
	}

	r := &MainRoom{
		world:          ecs.NewWorld(),
		log:            opts.Log,
		ambience:       opts.Ambience,
		base:           opts.Base,
		allowComposite: opts.AllowComposite,
		current:        opts.Start,
		stats:          Stats{Deepest: opts.Start.Value},
	}
	r.spawner = spawners.NewVisualSpawner(r.world, nil)
	r.cameras = systems.NewCameraSystem(r, opts.Input)
	r.torch = systems.NewTorchSystem(config.TorchStartTicks, r.torchBurntOut)
	r.fades = systems.NewFadeSystem()
	r.timers = systems.NewTimerSystem(r.onTimer)

	r.world.AddSystem(r.cameras)
	r.world.AddSystem(r.torch)
	r.world.AddSystem(r.fades)
	r.world.AddSystem(r.timers)

	if err := r.build(); err != nil {
		return nil, err
	}

	if !r.ambience.IsPlaying() {
		r.ambience.Play(true)
	}
	r.ambience.SetVolume(1)
	return r, nil
}

// SmallestIndex is the relative position of the leftmost slot
func (r *MainRoom) SmallestIndex() int { return r.smallest }

// LargestIndex is the relative position of the rightmost slot
func (r *MainRoom) LargestIndex() int { return r.largest }

// CanEnterDoor reports whether the slot at index holds an archway
func (r *MainRoom) CanEnterDoor(index int) bool {
	_, ok := r.archAt(index)
	return ok
}

// MovedTo lights the torches around the camera
func (r *MainRoom) MovedTo(index int) {
	systems.LightTorches(r.world, index)
	r.world.EmitEvent(systems.MovedToEvent{Position: index})
}

// EnterDoor walks through the door at index and builds the next room.
// A slot without an archway leads into a trap.
func (r *MainRoom) EnterDoor(index int) {
	if r.entering {
		r.log.AddTyped(fmt.Sprintf("Ignored door %d while entering another", index), systems.MessageTypeSystem)
		return
	}
	r.entering = true
	defer func() { r.entering = false }()

	next := generation.CatacombNumber{Value: r.current.Value, IsPrime: false}
	if arch, ok := r.archAt(index); ok {
		next = arch.Number
	} else {
		reason := fmt.Sprintf("no archway at %d in room %s", index, r.current.Value)
		r.log.AddTyped("Recovered: "+reason, systems.MessageTypeSystem)
		r.world.EmitEvent(systems.RecoveryEvent{Position: index, Reason: reason})
	}

	r.dispose()

	from := r.current
	r.current = next
	r.stats.Depth++
	if next.IsPrime {
		r.stats.Deepest = next.Value
	}
	r.torch.AddTime(config.TorchTicksPerDoor)
	r.world.EmitEvent(systems.DoorEnteredEvent{
		Position: index,
		From:     from,
		To:       next,
		Depth:    r.stats.Depth,
	})

	// A failed build leaves the room stalled; Err reports it
	_ = r.build()
}

// Update advances the room by one tick
func (r *MainRoom) Update() {
	r.world.Update(tickLength)
}

// World returns the entities of the room
func (r *MainRoom) World() *ecs.World { return r.world }

// Transition reports whether the run has ended
func (r *MainRoom) Transition() Transition { return r.transition }

// Err returns the error that stalled the room, if any
func (r *MainRoom) Err() error { return r.err }

// Current returns the number of the room
func (r *MainRoom) Current() generation.CatacombNumber { return r.current }

// Entries returns the slots of the room from left to right
func (r *MainRoom) Entries() []generation.Entry { return r.entries }

// Base returns the numeral base of the run
func (r *MainRoom) Base() int { return r.base }

// Stats returns the progress of the run
func (r *MainRoom) Stats() Stats { return r.stats }

// Torch returns the torch timer
func (r *MainRoom) Torch() *systems.TorchSystem { return r.torch }

// Camera returns the camera, or nil once it has been disposed
func (r *MainRoom) Camera() *components.CameraComponent {
	if comp, ok := r.world.GetComponent(r.camera, components.Camera); ok {
		return comp.(*components.CameraComponent)
	}
	return nil
}

// Layout returns the visuals owned by the current room
func (r *MainRoom) Layout() []ecs.EntityID {
	return append([]ecs.EntityID(nil), r.layout...)
}

// IsTrap reports whether the room is a dead end
func (r *MainRoom) IsTrap() bool {
	return r.err == nil && len(r.entries) == 0
}

func (r *MainRoom) archAt(index int) (generation.ArchEntry, bool) {
	if index < r.smallest || index > r.largest {
		return generation.ArchEntry{}, false
	}
	i := index - r.smallest
	if i >= len(r.entries) {
		return generation.ArchEntry{}, false
	}
	arch, ok := r.entries[i].(generation.ArchEntry)
	return arch, ok
}

// build creates the visuals for the current number
func (r *MainRoom) build() error {
	r.err = nil
	entries, start, err := generation.BuildEntries(r.current, r.base, r.allowComposite)
	if err != nil {
		return r.stall(err)
	}
	r.entries = entries
	r.smallest, r.largest = generation.IndexBounds(len(entries))

	if len(entries) == 0 {
		r.buildTrap()
		return nil
	}

	for i, entry := range entries {
		position := r.smallest + i
		switch entry := entry.(type) {
		case generation.ArchEntry:
			label, err := generation.FormatInBase(entry.Number.Value, r.base)
			if err != nil {
				return r.stall(err)
			}
			r.track(r.spawner.CreateArch(position, entry.Number, label))

		case generation.BlankEntry:
			var graffiti *generation.Graffiti
			if entry.ShowDecoration {
				picked, err := generation.PickGraffiti(generation.GraffitiSeed(r.current.Value, position))
				if err != nil {
					return r.stall(err)
				}
				graffiti = &picked
			}
			r.track(r.spawner.CreateBlankWall(position, graffiti))
		}
		r.track(r.spawner.CreateTorch(position, r.torch.Intensity()))
	}
	r.track(r.spawner.CreateFloor(r.smallest, r.largest))

	r.camera = r.cameras.SpawnCamera(r.world, start)
	r.fade = r.fades.Spawn(r.world, components.NewFadeIn(config.FadeInInterval, config.FadeInStep, 1), systems.FadeHooks{})

	r.log.AddEnvironment(fmt.Sprintf("Room %s: %d archways", r.current.Value, generation.CountArches(entries)))
	return nil
}

// buildTrap shows a single blank wall and fades the run out
func (r *MainRoom) buildTrap() {
	r.track(r.spawner.CreateBlankWall(0, nil))
	r.track(r.spawner.CreateTorch(0, r.torch.Intensity()))
	r.track(r.spawner.CreateFloor(0, 0))
	r.camera = r.cameras.SpawnCamera(r.world, 0)

	r.stats.Traps++
	r.log.AddAlert(fmt.Sprintf("%s is not prime. There is no way out.", r.current.Value))
	r.world.EmitEvent(systems.TrappedEvent{Number: r.current, Depth: r.stats.Depth})

	r.fade = r.fades.Spawn(r.world, components.NewFadeOut(config.DeadEndInterval, config.DeadEndStep, config.DeadEndDelay), systems.FadeHooks{
		OnStep: func(alpha float64) {
			r.ambience.SetVolume(1 - alpha)
		},
		OnFinish: func() {
			r.ambience.Stop()
			r.end(TransitionTitle)
		},
	})
}

// stall records a failed build; the room is left without layout
func (r *MainRoom) stall(err error) error {
	r.dispose()
	r.entries = nil
	r.smallest, r.largest = 0, 0
	r.err = fmt.Errorf("building room %s: %w", r.current.Value, err)
	r.log.AddError(r.err.Error())
	r.world.EmitEvent(systems.RoomStalledEvent{Err: r.err})
	return r.err
}

func (r *MainRoom) track(id ecs.EntityID) {
	r.layout = append(r.layout, id)
}

// dispose destroys the layout, the camera and the fade of the current room
func (r *MainRoom) dispose() {
	disposeAll(r.world, r.layout, r.log)
	r.layout = r.layout[:0]
	if r.camera != 0 {
		r.world.DestroyVisual(r.camera)
		r.camera = 0
	}
	if r.fade != 0 {
		r.fades.Remove(r.world, r.fade)
		r.fade = 0
	}
}

func (r *MainRoom) torchBurntOut() {
	if r.camera != 0 {
		r.world.DestroyVisual(r.camera)
		r.camera = 0
	}
	r.log.AddAlert("Your torch has burnt out.")
	r.world.EmitEvent(systems.TorchOutEvent{Depth: r.stats.Depth})
	r.timers.SetCountdown(timerLose, config.LoseDelayTicks, false)
}

func (r *MainRoom) onTimer(id systems.TimerID) {
	switch id {
	case timerLose:
		r.ambience.Stop()
		r.end(TransitionTitle)
	}
}

func (r *MainRoom) end(t Transition) {
	if r.transition != TransitionNone {
		return
	}
	r.transition = t
	r.log.AddTyped(fmt.Sprintf("Run over at depth %d, deepest room %s", r.stats.Depth, r.stats.Deepest), systems.MessageTypeSystem)
}
