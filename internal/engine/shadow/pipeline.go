package shadow

import (
	"go.uber.org/zap"

	"github.com/Faultbox/shadowball/internal/engine/lighting"
	"github.com/Faultbox/shadowball/internal/logger"
	"github.com/Faultbox/shadowball/pkg/math"
)

// DepthTarget is an offscreen depth buffer one light renders into.
type DepthTarget interface {
	Bind()
	Unbind()
	Resize(width, height int32) error
	Texture() uint32
	Destroy()
}

// TargetFactory creates a depth target of the given size.
type TargetFactory func(width, height int32) (DepthTarget, error)

// DepthProgram is the depth-only shader.
type DepthProgram interface {
	Use()
	SetModelToClip(m math.Mat4)
}

// Caster is the mesh that casts shadows.
type Caster interface {
	ModelMatrix() math.Mat4
	Position() math.Vec3
	Draw()
}

// Pipeline renders one depth map per light. A light whose target could not
// be built casts no shadow until a later resize succeeds.
type Pipeline struct {
	program   DepthProgram
	newTarget TargetFactory
	targets   [lighting.LightCount]DepthTarget
	matrices  [lighting.LightCount]math.Mat4
	width     int32
	height    int32
	log       *zap.Logger
}

// NewPipeline creates depth targets for every light at the viewport size.
func NewPipeline(program DepthProgram, factory TargetFactory, width, height int32) *Pipeline {
	p := &Pipeline{
		program:   program,
		newTarget: factory,
		width:     width,
		height:    height,
		log:       logger.Named("shadow"),
	}
	for i := range p.matrices {
		p.matrices[i] = math.Identity()
	}
	for i := range p.targets {
		p.targets[i] = p.create(i)
	}
	return p
}

func (p *Pipeline) create(light int) DepthTarget {
	t, err := p.newTarget(p.width, p.height)
	if err != nil {
		p.log.Error("shadow target unavailable, light casts no shadow",
			zap.Int("light", light),
			zap.Int32("width", p.width),
			zap.Int32("height", p.height),
			zap.Error(err))
		return nil
	}
	return t
}

// Render draws the caster's depth from every light.
func (p *Pipeline) Render(lights [lighting.LightCount]math.Vec3, caster Caster) {
	aspect := p.aspect()
	model := caster.ModelMatrix()
	target := caster.Position()

	p.program.Use()
	for i, t := range p.targets {
		p.matrices[i] = LightSpaceMatrix(lights[i], target, aspect)
		if t == nil {
			continue
		}

		t.Bind()
		p.program.SetModelToClip(p.matrices[i].Mul(model))
		caster.Draw()
		t.Unbind()
	}
}

// Resize reallocates every target at the new viewport size.
func (p *Pipeline) Resize(width, height int32) {
	p.width, p.height = width, height

	for i, t := range p.targets {
		if t == nil {
			p.targets[i] = p.create(i)
			if p.targets[i] != nil {
				p.log.Info("shadow target restored", zap.Int("light", i))
			}
			continue
		}
		if err := t.Resize(width, height); err != nil {
			p.log.Error("shadow target resize failed, light casts no shadow",
				zap.Int("light", i),
				zap.Int32("width", width),
				zap.Int32("height", height),
				zap.Error(err))
			t.Destroy()
			p.targets[i] = nil
		}
	}
}

// Matrices returns the light-space matrices computed by the last Render.
func (p *Pipeline) Matrices() [lighting.LightCount]math.Mat4 {
	return p.matrices
}

// Textures returns each light's depth texture, 0 for a disabled light.
func (p *Pipeline) Textures() [lighting.LightCount]uint32 {
	var out [lighting.LightCount]uint32
	for i, t := range p.targets {
		if t != nil {
			out[i] = t.Texture()
		}
	}
	return out
}

// Enabled reports whether light i currently casts a shadow.
func (p *Pipeline) Enabled(i int) bool {
	return i >= 0 && i < len(p.targets) && p.targets[i] != nil
}

// Size returns the depth map size.
func (p *Pipeline) Size() (width, height int32) {
	return p.width, p.height
}

// Destroy releases every target.
func (p *Pipeline) Destroy() {
	for i, t := range p.targets {
		if t != nil {
			t.Destroy()
			p.targets[i] = nil
		}
	}
}

func (p *Pipeline) aspect() float32 {
	if p.height <= 0 {
		return 1
	}
	return float32(p.width) / float32(p.height)
}
