package testutils

import (
	"fmt"
	"sync"
)

// FixedRoller returns predetermined faces in order. It satisfies dice.Roller.
type FixedRoller struct {
	mu    sync.Mutex
	faces []int
	calls int
}

// NewFixedRoller creates a roller that hands out faces in order
func NewFixedRoller(faces ...int) *FixedRoller {
	return &FixedRoller{faces: faces}
}

// Push queues more faces
func (r *FixedRoller) Push(faces ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces = append(r.faces, faces...)
}

// Calls returns how many dice have been rolled
func (r *FixedRoller) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// Roll returns the next face
func (r *FixedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next(size)
}

// RollN returns the next count faces
func (r *FixedRoller) RollN(count, size int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		face, err := r.next(size)
		if err != nil {
			return nil, err
		}
		out = append(out, face)
	}
	return out, nil
}

func (r *FixedRoller) next(size int) (int, error) {
	if len(r.faces) == 0 {
		return 0, fmt.Errorf("fixed roller exhausted after %d dice", r.calls)
	}
	face := r.faces[0]
	if face < 1 || face > size {
		return 0, fmt.Errorf("face %d out of range for d%d", face, size)
	}
	r.faces = r.faces[1:]
	r.calls++
	return face, nil
}
