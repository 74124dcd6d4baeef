package core

// Input tracks keyboard/mouse state across a frame, including the edge
// transitions (pressed/released) widgets care about. BeginFrame must run once
// per frame before events are pumped.
type Input struct {
	keys           map[Key]bool
	keysPressed    map[Key]bool
	mouseX, mouseY float64
	buttons        [3]bool
	pressed        [3]bool
	released       [3]bool
	chars          []rune
	scrollX        float64
	scrollY        float64
}

func NewInput() *Input {
	return &Input{
		keys:        map[Key]bool{},
		keysPressed: map[Key]bool{},
	}
}

// BeginFrame clears the per-frame edge state.
func (in *Input) BeginFrame() {
	for k := range in.keysPressed {
		delete(in.keysPressed, k)
	}
	in.pressed = [3]bool{}
	in.released = [3]bool{}
	in.chars = in.chars[:0]
	in.scrollX, in.scrollY = 0, 0
}

func (in *Input) Handle(ev Event) {
	switch e := ev.(type) {
	case EventKey:
		if e.Down && !in.keys[e.Key] {
			in.keysPressed[e.Key] = true
		}
		in.keys[e.Key] = e.Down
	case EventChar:
		in.chars = append(in.chars, e.Rune)
	case EventMouseMove:
		in.mouseX, in.mouseY = e.X, e.Y
	case EventMouseButton:
		if e.Button < 0 || int(e.Button) >= len(in.buttons) {
			return
		}
		if e.Down && !in.buttons[e.Button] {
			in.pressed[e.Button] = true
		}
		if !e.Down && in.buttons[e.Button] {
			in.released[e.Button] = true
		}
		in.buttons[e.Button] = e.Down
	case EventScroll:
		in.scrollX += e.Xoff
		in.scrollY += e.Yoff
	}
}

func (in *Input) IsKeyDown(k Key) bool      { return in.keys[k] }
func (in *Input) WasKeyPressed(k Key) bool  { return in.keysPressed[k] }
func (in *Input) Mouse() (float64, float64) { return in.mouseX, in.mouseY }

func (in *Input) IsButtonDown(b MouseButton) bool     { return in.buttons[b] }
func (in *Input) WasButtonPressed(b MouseButton) bool { return in.pressed[b] }
func (in *Input) WasButtonReleased(b MouseButton) bool {
	return in.released[b]
}

// TypedChars returns the runes typed since BeginFrame. The slice is reused;
// callers must not retain it.
func (in *Input) TypedChars() []rune     { return in.chars }
func (in *Input) Scroll() (x, y float64) { return in.scrollX, in.scrollY }
