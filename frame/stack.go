// Package frame maintains the stack of composed coordinate frames used while
// interpreting a scene.
package frame

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/go-gl/mathgl/mgl64/matstack"
)

// ErrStackUnderflow is returned by Pop when only the world frame is left.
var ErrStackUnderflow = errors.New("frame: pop would remove the world frame")

// Stack is a stack of 4x4 frames. The bottom entry is the world frame
// (identity) and the top entry is the frame new geometry is drawn in.
// Every entry is already composed with all of its ancestors.
type Stack struct {
	ms *matstack.MatStack
}

// NewStack returns a stack holding only the identity frame.
func NewStack() *Stack {
	return &Stack{ms: matstack.NewMatStack()}
}

// Push duplicates the current top frame.
func (s *Stack) Push() {
	s.ms.Push()
}

// Pop discards the current top frame. The world frame can not be popped;
// in that case the stack is left unchanged and ErrStackUnderflow is returned.
func (s *Stack) Pop() error {
	if s.Depth() == 1 {
		return ErrStackUnderflow
	}
	return s.ms.Pop()
}

// Peek returns a copy of the current top frame.
func (s *Stack) Peek() mgl64.Mat4 {
	return s.ms.Peek()
}

// Compose replaces the top frame with top × m, so that m acts in the
// local coordinates of the current frame.
func (s *Stack) Compose(m mgl64.Mat4) {
	s.ms.RightMul(m)
}

// Depth returns the number of frames on the stack; it is never below 1.
func (s *Stack) Depth() int {
	return len(*s.ms)
}

// Reset drops everything but a fresh identity world frame.
func (s *Stack) Reset() {
	*s.ms = (*s.ms)[:1]
	s.ms.LoadIdent()
}
