package parameter

// Ambient Particles
const (
	// ParticleLifespan is the base lifetime of an ambient mote
	ParticleLifespan = 150

	// ParticleMinAge is added to the random lifetime so motes never pop instantly
	ParticleMinAge = 20

	// ParticleWobble is the maximum sideways drift in pixels
	ParticleWobble = 10

	// ParticleNoiseStep scales the age before sampling wobble noise
	ParticleNoiseStep = 0.05
)
