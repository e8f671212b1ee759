package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"prime-catacombs/components"
	"prime-catacombs/config"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
)

var (
	stoneColor   = color.RGBA{112, 104, 92, 255}
	pillarColor  = color.RGBA{84, 78, 70, 255}
	floorColor   = color.RGBA{58, 52, 46, 255}
	openingColor = color.RGBA{8, 6, 6, 255}
	labelColor   = color.RGBA{230, 214, 170, 255}
	bracketColor = color.RGBA{40, 36, 32, 255}
	titleColor   = color.RGBA{0x9c, 0x73, 0x00, 0xff}
)

// Ambient light reaching slots without a lit torch
const (
	darkLight = 0.12
	unlitGain = 0.3
)

// RoomRenderer draws the visuals of a room as a corridor of wall slots
type RoomRenderer struct {
	fonts      *Fonts
	torchColor color.RGBA
}

// NewRoomRenderer creates a renderer with the given flame color
func NewRoomRenderer(fonts *Fonts, torchColor color.RGBA) *RoomRenderer {
	return &RoomRenderer{
		fonts:      fonts,
		torchColor: torchColor,
	}
}

// view maps room coordinates to the screen for one frame
type view struct {
	cameraX float64 // Camera position in slots
	scale   float64
	focusY  float64
}

func (v view) project(slotX, y float64) (float32, float32) {
	x := float64(config.ScreenWidth)/2 + (slotX-v.cameraX)*config.SlotWidth*v.scale
	return float32(x), float32(v.focusY + (y-v.focusY)*v.scale)
}

func (v view) length(l float64) float32 {
	return float32(l * v.scale)
}

const (
	wallTop    = config.ScreenHeight * config.WallTop
	floorY     = config.ScreenHeight * config.FloorLine
	wallHeight = floorY - wallTop
	archWidth  = config.ArchWidth * config.SlotWidth
	archHeight = config.ArchHeight * wallHeight
)

// Draw renders every visual of the world
func (r *RoomRenderer) Draw(screen *ebiten.Image, world *ecs.World) {
	screen.Fill(color.Black)

	camera := findCamera(world)
	if camera == nil {
		// The torch has burnt out
		r.drawFades(screen, world)
		return
	}
	v := newView(camera)
	light := computeLighting(world)

	for _, e := range world.GetEntitiesWithComponent(components.Floor) {
		comp, _ := world.GetComponent(e.ID, components.Floor)
		floor := comp.(*components.FloorComponent)
		x0, y0 := v.project(float64(floor.From)-0.5, floorY)
		x1, _ := v.project(float64(floor.To)+0.5, floorY)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, float32(config.ScreenHeight)-y0, shade(floorColor, light.average()), false)
	}

	for _, e := range world.GetEntitiesWithComponent(components.BlankWall) {
		comp, _ := world.GetComponent(e.ID, components.BlankWall)
		wall := comp.(*components.BlankWallComponent)
		r.drawWall(screen, v, wall.Position, light.at(wall.Position))
		if wall.Graffiti != nil {
			r.drawGraffiti(screen, v, wall.Position, wall.Graffiti, light.at(wall.Position))
		}
	}

	for _, e := range world.GetEntitiesWithComponent(components.Arch) {
		comp, _ := world.GetComponent(e.ID, components.Arch)
		arch := comp.(*components.ArchComponent)
		r.drawWall(screen, v, arch.Position, light.at(arch.Position))
		r.drawArch(screen, v, arch, light.at(arch.Position))
	}

	for _, e := range world.GetEntitiesWithComponent(components.Torch) {
		comp, _ := world.GetComponent(e.ID, components.Torch)
		r.drawTorch(screen, v, comp.(*components.TorchComponent))
	}

	r.drawFades(screen, world)
}

func newView(camera *components.CameraComponent) view {
	v := view{
		cameraX: float64(camera.RelativePosition) + camera.Offset(),
		scale:   1,
		focusY:  floorY - archHeight/2,
	}
	var zoom float64
	switch camera.State {
	case components.CameraZoomingIn:
		zoom = camera.Progress()
	case components.CameraEntered:
		zoom = 1
	}
	v.scale = 1 + (config.ZoomedScale-1)*zoom*zoom
	return v
}

func findCamera(world *ecs.World) *components.CameraComponent {
	for _, e := range world.GetEntitiesWithTag("camera") {
		if comp, ok := world.GetComponent(e.ID, components.Camera); ok {
			return comp.(*components.CameraComponent)
		}
	}
	return nil
}

// lighting is the brightness of each slot, from its torch
type lighting map[int]float64

func computeLighting(world *ecs.World) lighting {
	light := lighting{}
	for _, e := range world.GetEntitiesWithComponent(components.Torch) {
		comp, _ := world.GetComponent(e.ID, components.Torch)
		torch := comp.(*components.TorchComponent)
		gain := unlitGain
		if torch.Lit {
			gain = 1
		}
		light[torch.Position] = darkLight + (1-darkLight)*gain*torch.Intensity
	}
	return light
}

func (l lighting) at(position int) float64 {
	if v, ok := l[position]; ok {
		return v
	}
	return darkLight
}

func (l lighting) average() float64 {
	if len(l) == 0 {
		return darkLight
	}
	var sum float64
	for _, v := range l {
		sum += v
	}
	return sum / float64(len(l))
}

func (r *RoomRenderer) drawWall(screen *ebiten.Image, v view, position int, light float64) {
	x0, y0 := v.project(float64(position)-0.5, wallTop)
	x1, y1 := v.project(float64(position)+0.5, floorY)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, shade(stoneColor, light), false)

	pillar := v.length(config.SlotWidth * 0.06)
	edge := shade(pillarColor, light)
	vector.DrawFilledRect(screen, x0, y0, pillar, y1-y0, edge, false)
	vector.DrawFilledRect(screen, x1-pillar, y0, pillar, y1-y0, edge, false)

	// Mortar lines
	for row := 1; row < 6; row++ {
		_, y := v.project(0, wallTop+wallHeight*float64(row)/6)
		vector.StrokeLine(screen, x0+pillar, y, x1-pillar, y, v.length(1.5), shade(edge, 0.8), false)
	}
}

func (r *RoomRenderer) drawArch(screen *ebiten.Image, v view, arch *components.ArchComponent, light float64) {
	cx, top := v.project(float64(arch.Position), floorY-archHeight+archWidth/2)
	_, bottom := v.project(0, floorY)
	half := v.length(archWidth / 2)

	vector.DrawFilledRect(screen, cx-half, top, 2*half, bottom-top, openingColor, true)
	vector.DrawFilledCircle(screen, cx, top, half, openingColor, true)

	if arch.Label == "" {
		return
	}
	_, labelY := v.project(0, floorY-archHeight-config.LabelSize)
	op := &text.DrawOptions{}
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Translate(float64(cx), float64(labelY))
	op.ColorScale.ScaleWithColor(shade(labelColor, 0.4+0.6*light))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, arch.Label, r.fonts.Label, op)
}

func (r *RoomRenderer) drawGraffiti(screen *ebiten.Image, v view, position int, g *generation.Graffiti, light float64) {
	x, y := v.project(float64(position), wallTop+wallHeight*0.45)
	tint := generation.GraffitiTints[g.Tint]

	op := &text.DrawOptions{}
	op.GeoM.Scale(v.scale, v.scale)
	op.GeoM.Rotate(g.Angle)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(shade(color.RGBA{tint[0], tint[1], tint[2], 255}, light))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = config.GraffitiSize * 1.2
	text.Draw(screen, g.Text, r.fonts.Graffiti, op)
}

func (r *RoomRenderer) drawTorch(screen *ebiten.Image, v view, torch *components.TorchComponent) {
	x, y := v.project(float64(torch.Position)+config.TorchOffset, floorY-config.TorchHeight*wallHeight)
	w := v.length(6)
	vector.DrawFilledRect(screen, x-w/2, y, w, v.length(28), bracketColor, false)

	if !torch.Lit || torch.Intensity <= 0 {
		return
	}
	glow := r.torchColor
	glow.A = uint8(40 * torch.Intensity)
	vector.DrawFilledCircle(screen, x, y-v.length(4), v.length(40*torch.Intensity+10), premultiply(glow), true)
	vector.DrawFilledCircle(screen, x, y-v.length(4), v.length(4+6*torch.Intensity), r.torchColor, true)
}

func (r *RoomRenderer) drawFades(screen *ebiten.Image, world *ecs.World) {
	for _, e := range world.GetEntitiesWithComponent(components.Fade) {
		comp, _ := world.GetComponent(e.ID, components.Fade)
		fade := comp.(*components.FadeComponent)
		if fade.Alpha <= 0 {
			continue
		}
		black := color.RGBA{0, 0, 0, uint8(fade.Alpha * 255)}
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, black, false)
	}
}

// DrawTitle draws the title text over the title room
func (r *RoomRenderer) DrawTitle(screen *ebiten.Image) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(config.ScreenWidth/2, 20)
	op.ColorScale.ScaleWithColor(titleColor)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Prime Number Catacombs", r.fonts.Title, op)

	hint := &text.DrawOptions{}
	hint.GeoM.Translate(config.ScreenWidth/2, config.ScreenHeight-40)
	hint.ColorScale.ScaleWithColor(color.RGBA{0xdd, 0xdd, 0xdd, 0xff})
	hint.PrimaryAlign = text.AlignCenter
	text.Draw(screen, "Left/Right to walk, Up to enter", r.fonts.HUD, hint)
}

// shade darkens c by light in [0,1]
func shade(c color.RGBA, light float64) color.RGBA {
	light = min(max(light, 0), 1)
	return color.RGBA{
		R: uint8(float64(c.R) * light),
		G: uint8(float64(c.G) * light),
		B: uint8(float64(c.B) * light),
		A: c.A,
	}
}

// premultiply converts a straight-alpha color for vector drawing
func premultiply(c color.RGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: c.A,
	}
}
