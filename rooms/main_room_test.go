package rooms

import (
	"errors"
	"testing"

	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
	"prime-catacombs/systems"
)

type fakeAmbience struct {
	plays   []bool
	stops   int
	volumes []float64
	playing bool
}

func (f *fakeAmbience) Play(loop bool) {
	f.plays = append(f.plays, loop)
	f.playing = true
}
func (f *fakeAmbience) Stop() {
	f.stops++
	f.playing = false
}
func (f *fakeAmbience) SetVolume(v float64) { f.volumes = append(f.volumes, v) }
func (f *fakeAmbience) IsPlaying() bool     { return f.playing }

type fakeInput map[systems.Direction]bool

func (f fakeInput) IsDirectionPressed(d systems.Direction) bool { return f[d] }

func newRoom(t *testing.T, start string, base int, allowComposite bool) (*MainRoom, *fakeAmbience, *systems.MessageLog) {
	t.Helper()
	number, err := generation.SeedNumber(start)
	if err != nil {
		t.Fatalf("SeedNumber(%q): %v", start, err)
	}
	ambience := &fakeAmbience{}
	log := systems.NewMessageLog()
	room, err := NewMainRoom(Options{
		Start:          number,
		Base:           base,
		AllowComposite: allowComposite,
		Ambience:       ambience,
		Log:            log,
	})
	if err != nil {
		t.Fatalf("NewMainRoom(%q, %d): %v", start, base, err)
	}
	return room, ambience, log
}

func TestNewMainRoomBaseTwo(t *testing.T) {
	room, ambience, _ := newRoom(t, "2", 2, false)

	if room.SmallestIndex() != 0 || room.LargestIndex() != 0 {
		t.Fatalf("bounds = [%d,%d], want [0,0]", room.SmallestIndex(), room.LargestIndex())
	}
	if !room.CanEnterDoor(0) {
		t.Errorf("archway 5 not enterable")
	}
	arch := room.Entries()[0].(generation.ArchEntry)
	if arch.Number.Value != "5" {
		t.Errorf("archway leads to %s, want 5", arch.Number.Value)
	}
	if camera := room.Camera(); camera == nil || camera.RelativePosition != 0 {
		t.Errorf("camera = %+v, want one at 0", camera)
	}
	// arch, torch and floor
	if got := len(room.Layout()); got != 3 {
		t.Errorf("layout has %d visuals, want 3", got)
	}
	if len(ambience.plays) != 1 || !ambience.plays[0] {
		t.Errorf("ambience plays = %v, want one looping play", ambience.plays)
	}
}

func TestAmbienceNotRestartedWhenPlaying(t *testing.T) {
	ambience := &fakeAmbience{playing: true}
	number, _ := generation.SeedNumber("2")
	if _, err := NewMainRoom(Options{Start: number, Base: 2, Ambience: ambience, Log: systems.NewMessageLog()}); err != nil {
		t.Fatalf("NewMainRoom: %v", err)
	}
	if len(ambience.plays) != 0 {
		t.Errorf("ambience restarted: %v", ambience.plays)
	}
}

func TestCanEnterDoorBounds(t *testing.T) {
	room, _, _ := newRoom(t, "7", 16, false)

	if room.SmallestIndex() != -1 || room.LargestIndex() != 1 {
		t.Fatalf("bounds = [%d,%d], want [-1,1]", room.SmallestIndex(), room.LargestIndex())
	}
	tests := []struct {
		index int
		want  bool
	}{
		{-3, false},
		{-2, false},
		{-1, true},
		{0, true},
		{1, false}, // blank wall
		{2, false},
		{100, false},
	}
	for _, tt := range tests {
		if got := room.CanEnterDoor(tt.index); got != tt.want {
			t.Errorf("CanEnterDoor(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestStartPositionLightsTorches(t *testing.T) {
	room, _, _ := newRoom(t, "7", 16, false)

	if room.Camera().RelativePosition != -1 {
		t.Fatalf("camera starts at %d, want -1", room.Camera().RelativePosition)
	}
	for _, entity := range room.World().GetEntitiesWithTag("torch-entity") {
		comp, _ := room.World().GetComponent(entity.ID, components.Torch)
		torch := comp.(*components.TorchComponent)
		if want := torch.Position <= 0; torch.Lit != want {
			t.Errorf("torch at %d lit = %v, want %v", torch.Position, torch.Lit, want)
		}
	}
}

func TestEnterDoorDisposesExactlyOnce(t *testing.T) {
	room, _, log := newRoom(t, "7", 16, false)
	world := room.World()
	old := room.Layout()
	oldCamera := room.camera

	var entered []systems.DoorEnteredEvent
	world.GetEventManager().Subscribe(systems.EventDoorEntered, func(e ecs.Event) {
		entered = append(entered, e.(systems.DoorEnteredEvent))
	})

	room.EnterDoor(-1)

	for _, id := range old {
		if world.GetEntity(id) != nil {
			t.Errorf("visual %d survived EnterDoor", id)
		}
	}
	if world.GetEntity(oldCamera) != nil {
		t.Errorf("old camera survived EnterDoor")
	}
	for _, m := range log.Messages {
		if m.Type == systems.MessageTypeError {
			t.Errorf("unexpected error message %q", m.Text)
		}
	}
	// layout plus the new camera and its fade
	if got, want := world.EntityCount(), len(room.Layout())+2; got != want {
		t.Errorf("world has %d entities, want %d", got, want)
	}
	if room.Current().Value != "127" {
		t.Errorf("current = %s, want 127", room.Current().Value)
	}
	if len(entered) != 1 || entered[0].From.Value != "7" || entered[0].To.Value != "127" || entered[0].Depth != 1 {
		t.Errorf("door events = %+v", entered)
	}
	if room.Stats().Deepest != "127" {
		t.Errorf("deepest = %s, want 127", room.Stats().Deepest)
	}
}

func TestEnterDoorAtBlankWallIsTrap(t *testing.T) {
	tests := []struct {
		name  string
		index int
	}{
		{"blank wall", 1},
		{"out of bounds", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room, _, log := newRoom(t, "7", 16, false)
			var recovered, trapped int
			room.World().GetEventManager().Subscribe(systems.EventRecovery, func(ecs.Event) { recovered++ })
			room.World().GetEventManager().Subscribe(systems.EventTrapped, func(ecs.Event) { trapped++ })

			room.EnterDoor(tt.index)

			if room.Current().IsPrime {
				t.Fatalf("current %s still prime after entering a blank slot", room.Current().Value)
			}
			if !room.IsTrap() || room.Err() != nil {
				t.Fatalf("IsTrap = %v, Err = %v", room.IsTrap(), room.Err())
			}
			if recovered != 1 || trapped != 1 {
				t.Errorf("recovered = %d, trapped = %d, want 1 each", recovered, trapped)
			}
			if room.CanEnterDoor(0) || room.SmallestIndex() != 0 || room.LargestIndex() != 0 {
				t.Errorf("trap room is enterable or has bounds [%d,%d]", room.SmallestIndex(), room.LargestIndex())
			}
			for _, m := range log.Messages {
				if m.Type == systems.MessageTypeError {
					t.Errorf("recovery logged as error: %q", m.Text)
				}
			}
		})
	}
}

func TestEnterDoorRejectsReentry(t *testing.T) {
	room, _, log := newRoom(t, "2", 10, false)
	room.World().GetEventManager().Subscribe(systems.EventDoorEntered, func(ecs.Event) {
		room.EnterDoor(0)
	})

	room.EnterDoor(1)

	if room.Stats().Depth != 1 {
		t.Errorf("depth = %d, want 1", room.Stats().Depth)
	}
	if room.Current().Value != "29" {
		t.Errorf("current = %s, want 29", room.Current().Value)
	}
	if !log.Contains("Ignored door 0 while entering another", systems.MessageTypeSystem) {
		t.Errorf("re-entrant call not logged")
	}
}

func TestEnterDoorAddsTorchTime(t *testing.T) {
	room, _, _ := newRoom(t, "2", 2, false)
	before := room.Torch().Remaining()
	room.EnterDoor(0)
	if got := room.Torch().Remaining(); got != before+config.TorchTicksPerDoor {
		t.Errorf("torch = %d, want %d", got, before+config.TorchTicksPerDoor)
	}
}

func TestCameraWalksIntoDoor(t *testing.T) {
	number, _ := generation.SeedNumber("2")
	room, err := NewMainRoom(Options{
		Start:    number,
		Base:     2,
		Input:    fakeInput{systems.DirectionConfirm: true},
		Ambience: &fakeAmbience{},
		Log:      systems.NewMessageLog(),
	})
	if err != nil {
		t.Fatalf("NewMainRoom: %v", err)
	}

	for i := 0; i < config.MovementDelayTicks+config.ZoomTicks; i++ {
		room.Update()
	}
	if room.Current().Value != "2" {
		t.Fatalf("entered too early, current = %s", room.Current().Value)
	}
	room.Update()

	if room.Current().Value != "5" || room.Stats().Depth != 1 {
		t.Errorf("current = %s depth = %d, want 5 at depth 1", room.Current().Value, room.Stats().Depth)
	}
	if camera := room.Camera(); camera == nil || camera.State != components.CameraIdle {
		t.Errorf("new room camera = %+v, want a fresh idle camera", camera)
	}
}

func TestDeadEndFadesToTitle(t *testing.T) {
	room, ambience, _ := newRoom(t, "113", 10, false)

	if !room.IsTrap() {
		t.Fatalf("room 113 has entries %v", room.Entries())
	}
	for i := 0; i < 2000 && room.Transition() == TransitionNone; i++ {
		room.Update()
	}

	if room.Transition() != TransitionTitle {
		t.Fatalf("transition = %v, want title", room.Transition())
	}
	if ambience.stops != 1 {
		t.Errorf("ambience stopped %d times, want 1", ambience.stops)
	}
	// volumes[0] comes from construction
	fading := ambience.volumes[1:]
	if len(fading) == 0 || fading[0] != 1 {
		t.Fatalf("fade volumes = %v, want to start at 1", fading)
	}
	for i := 1; i < len(fading); i++ {
		if fading[i] >= fading[i-1] {
			t.Errorf("volume rose from %v to %v", fading[i-1], fading[i])
		}
	}
}

func TestTorchBurnOutEndsRun(t *testing.T) {
	room, ambience, _ := newRoom(t, "2", 2, false)

	for i := 0; i < config.TorchStartTicks+config.MovementDelayTicks; i++ {
		room.Update()
	}
	if !room.Torch().BurntOut() {
		t.Fatalf("torch still burning with %d ticks", room.Torch().Remaining())
	}
	if room.Camera() != nil {
		t.Errorf("camera survived the torch")
	}
	if room.Transition() != TransitionNone {
		t.Fatalf("run ended before the lose delay")
	}

	for i := 0; i < config.LoseDelayTicks; i++ {
		room.Update()
	}
	if room.Transition() != TransitionTitle {
		t.Errorf("transition = %v, want title", room.Transition())
	}
	if ambience.stops != 1 {
		t.Errorf("ambience stopped %d times, want 1", ambience.stops)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	a, _, _ := newRoom(t, "3", 10, true)
	b, _, _ := newRoom(t, "3", 10, true)

	if len(a.Entries()) != len(b.Entries()) || a.Camera().RelativePosition != b.Camera().RelativePosition {
		t.Fatalf("rooms differ: %d/%d entries", len(a.Entries()), len(b.Entries()))
	}
	for i := range a.Entries() {
		if a.Entries()[i] != b.Entries()[i] {
			t.Errorf("entry %d differs: %v vs %v", i, a.Entries()[i], b.Entries()[i])
		}
	}
}

func TestNewMainRoomErrors(t *testing.T) {
	number, _ := generation.SeedNumber("2")
	if _, err := NewMainRoom(Options{Start: number, Base: 37, Log: systems.NewMessageLog()}); !errors.Is(err, generation.ErrConfiguration) {
		t.Errorf("base 37 error = %v, want ErrConfiguration", err)
	}

	bad := generation.CatacombNumber{Value: "2a", IsPrime: true}
	if _, err := NewMainRoom(Options{Start: bad, Base: 10, Log: systems.NewMessageLog()}); !errors.Is(err, generation.ErrFormat) {
		t.Errorf("numeral 2a error = %v, want ErrFormat", err)
	}
}
