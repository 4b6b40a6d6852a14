package entity

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/lixenwraith/escape-artist/engine"
	"github.com/lixenwraith/escape-artist/parameter"
	"github.com/lixenwraith/escape-artist/vmath"
)

// Perlin settings for particle wobble
const (
	noiseAlpha   = 2.0
	noiseBeta    = 2.0
	noiseOctaves = int32(3)
)

// ParticleGenerator emits ambient motes from a fixed origin
type ParticleGenerator struct {
	engine.Base
	env      *Env
	origin   vmath.Point
	rate     float64
	lifespan int
	noise    *perlin.Perlin
}

// NewParticleGenerator creates a generator; seed fixes the wobble pattern
func NewParticleGenerator(env *Env, origin vmath.Point, seed int64) *ParticleGenerator {
	return &ParticleGenerator{
		env:      env,
		origin:   origin,
		rate:     env.Config.Particles.Rate,
		lifespan: env.Config.Particles.Lifespan,
		noise:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctaves, seed),
	}
}

func (g *ParticleGenerator) Update() bool {
	if g.rate > 0 && g.env.RNG.Float64() < g.rate {
		g.env.Reg.Add(g.spawn())
	}
	return true
}

func (g *ParticleGenerator) spawn() *Particle {
	rng := g.env.RNG
	age := int(float64(g.lifespan)*rng.Float64()) + parameter.ParticleMinAge
	return &Particle{
		env:    g.env,
		noise:  g.noise,
		baseX:  float64(g.origin.X),
		x:      float64(g.origin.X),
		y:      float64(g.origin.Y),
		maxAge: g.lifespan,
		age:    age,
		speed:  rng.Float64(),
		wobble: rng.Float64() * parameter.ParticleWobble,
		phase:  rng.Float64() * 100,
	}
}

func (g *ParticleGenerator) Depth() int            { return parameter.DepthWorld }
func (g *ParticleGenerator) Tags() engine.Tag      { return 0 }
func (g *ParticleGenerator) Render(engine.Surface) {}

// Particle drifts upward with a noise wobble that grows with age
type Particle struct {
	engine.Base
	env   *Env
	noise *perlin.Perlin

	baseX, x, y float64
	maxAge, age int
	speed       float64
	wobble      float64
	phase       float64
}

func (p *Particle) Pos() vmath.Point { return vmath.Point{X: int(p.x), Y: int(p.y)} }

func (p *Particle) Update() bool {
	p.age--
	p.y -= p.speed
	spread := float64(p.maxAge-p.age) / float64(p.maxAge)
	// Octave sums can exceed unit range
	n := math.Max(-1, math.Min(1, p.noise.Noise1D(p.phase+float64(p.age)*parameter.ParticleNoiseStep)))
	p.x = p.baseX + n*p.wobble*spread
	return p.age > 0
}

func (p *Particle) Depth() int       { return parameter.DepthWorld }
func (p *Particle) Tags() engine.Tag { return engine.TagRoomScoped }

func (p *Particle) Render(s engine.Surface) {
	pos := p.Pos()
	s.DrawSprite(engine.Sprite{Sheet: ParticleSheet}, pos.X, pos.Y, engine.DrawOpts{})
}
