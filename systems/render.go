package systems

import (
	"image/color"

	"github.com/automoto/wallblade/assets"
	"github.com/automoto/wallblade/components"
	cfg "github.com/automoto/wallblade/config"
	"github.com/automoto/wallblade/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	shaderOp = &ebiten.DrawRectShaderOptions{}
	tintRGBA = make([]float32, 4)
)

// view converts level coordinates to screen coordinates.
type view struct {
	offX, offY    float64
	width, height float64
}

// cameraView returns the camera transform for screen. ok is false before
// the camera exists.
func cameraView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		offX:   w/2 - camera.Position.X,
		offY:   h/2 - camera.Position.Y,
		width:  w,
		height: h,
	}, true
}

// visible reports whether a level-space box lands on screen. A small
// padding keeps shapes from popping at the edges.
func (v view) visible(x, y, w, h float64) bool {
	const padding = 16.0
	sx, sy := x+v.offX, y+v.offY
	return sx+w >= -padding && sx <= v.width+padding && sy+h >= -padding && sy <= v.height+padding
}

func (v view) fill(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if !v.visible(x, y, w, h) {
		return
	}
	vector.FillRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), c, false)
}

func (v view) stroke(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	if !v.visible(x, y, w, h) {
		return
	}
	vector.StrokeRect(screen, float32(x+v.offX), float32(y+v.offY), float32(w), float32(h), 1, c, false)
}

// DrawLevel renders the background and the level geometry.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.BackgroundColor)

	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	drawTagged := func(tag *donburi.ComponentType[donburi.Tag], c color.RGBA) {
		tag.Each(ecs.World, func(e *donburi.Entry) {
			o := components.Object.Get(e)
			v.fill(screen, o.X, o.Y, o.W, o.H, c)
		})
	}
	drawTagged(tags.Ground, cfg.UI.GroundColor)
	drawTagged(tags.Wall, cfg.UI.WallColor)
	drawTagged(tags.FloatingPlatform, cfg.UI.PlatformColor)
}

// DrawCharacters renders the player and NPCs as tinted bodies, plus the
// sword while it is live and the shield while blocking.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	v, ok := cameraView(ecs, screen)
	if !ok {
		return
	}

	tags.NPC.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		npc := components.NPC.Get(e)
		facing := 1.0
		if npc.Patrol != nil {
			facing = npc.Patrol.Facing()
		}
		drawBody(screen, v, o, cfg.UI.NPCColor, components.Flash.Get(e).Amount(), facing)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e).Object
		player := components.Player.Get(e)
		body := cfg.UI.PlayerColor
		if player.Controller.IsBlocking() {
			body = cfg.UI.BlockingColor
		}
		drawBody(screen, v, o, body, components.Flash.Get(e).Amount(), player.Facing)
	})

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitbox := components.Hitbox.Get(e)
		if !hitbox.Active {
			return
		}
		o := components.Object.Get(e)
		c := cfg.UI.HUDTextColor
		if hitbox.Kind == components.HitboxShield {
			c = cfg.UI.WallColor
		}
		v.fill(screen, o.X, o.Y, o.W, o.H, c)
	})
}

func drawBody(screen *ebiten.Image, v view, o *resolv.Object, c color.RGBA, flash, facing float64) {
	if !v.visible(o.X, o.Y, o.W, o.H) {
		return
	}

	if assets.TintShader == nil {
		v.fill(screen, o.X, o.Y, o.W, o.H, c)
	} else {
		tintRGBA[0] = float32(c.R) / 255
		tintRGBA[1] = float32(c.G) / 255
		tintRGBA[2] = float32(c.B) / 255
		tintRGBA[3] = float32(c.A) / 255

		shaderOp.GeoM.Reset()
		shaderOp.GeoM.Translate(o.X+v.offX, o.Y+v.offY)
		shaderOp.Uniforms = map[string]any{
			"Color": tintRGBA,
			"Flash": float32(flash),
		}
		screen.DrawRectShader(int(o.W), int(o.H), assets.TintShader, shaderOp)
	}

	// Eye on the facing side
	eyeX := o.X + o.W - 5
	if facing < 0 {
		eyeX = o.X + 2
	}
	v.fill(screen, eyeX, o.Y+5, 3, 3, color.Black)
}
