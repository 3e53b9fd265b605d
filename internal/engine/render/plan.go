package render

// stepKind enumerates the frame plan steps.
type stepKind int

const (
	stepDepthPrime stepKind = iota
	stepShadowMap
	stepShadowVolume
	stepDirectLight
	stepAmbientLight
)

// step is one entry of the frame plan. Light indexes into the light store
// for the per-light steps and is -1 for the depth prime.
type step struct {
	kind  stepKind
	light int
}

// buildFramePlan lays out the pass sequence for one frame. The classic
// stencil pipeline primes depth once, then runs shadow volume, direct and
// ambient sub-passes per light. The spotlight pipeline renders every shadow
// map before any color pass, then primes depth and accumulates direct light
// only. Zero lights degrade to the depth prime alone.
func buildFramePlan(numLights int, spotlight bool) []step {
	if numLights < 0 {
		numLights = 0
	}

	var plan []step

	if spotlight {
		for i := 0; i < numLights; i++ {
			plan = append(plan, step{kind: stepShadowMap, light: i})
		}
		plan = append(plan, step{kind: stepDepthPrime, light: -1})
		for i := 0; i < numLights; i++ {
			plan = append(plan, step{kind: stepDirectLight, light: i})
		}
		return plan
	}

	plan = append(plan, step{kind: stepDepthPrime, light: -1})
	for i := 0; i < numLights; i++ {
		plan = append(plan,
			step{kind: stepShadowVolume, light: i},
			step{kind: stepDirectLight, light: i},
			step{kind: stepAmbientLight, light: i},
		)
	}
	return plan
}
