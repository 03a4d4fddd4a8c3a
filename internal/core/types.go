package core

// View is the read-only surface a renderer needs: the side length and the
// flat cell buffer, which must not be modified.
type View interface {
	Resolution() int
	Cells() []uint8
}

// Action is a named command a front-end can trigger, such as start or reset.
type Action struct {
	Key   string
	Label string
}

// ActionProvider exposes the commands that should appear as HUD buttons.
type ActionProvider interface {
	Actions() []Action
	Trigger(key string) bool
}
