package animations

// Animation cycles through the frames of a horizontal sprite strip.
type Animation struct {
	First        int
	Last         int
	Step         int // how many indices do we move per frame
	FrameDelay   int // how many ticks each frame is held
	frameCounter int
	frame        int
	Looped       bool
}

// Update advances the animation by one tick.
func (a *Animation) Update() {
	a.frameCounter++
	if a.frameCounter < a.FrameDelay {
		return
	}
	a.frameCounter = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = 0
}

// NewAnimation returns a looping cycle over frames [0, frames) holding
// each frame for delay ticks.
func NewAnimation(frames, delay int) *Animation {
	if frames < 1 {
		frames = 1
	}
	if delay < 1 {
		delay = 1
	}
	return &Animation{
		First:      0,
		Last:       frames - 1,
		Step:       1,
		FrameDelay: delay,
	}
}
