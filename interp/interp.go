package interp

import (
	"errors"
	"image"
	"image/color"
	"reflect"

	"mdl/frame"
	"mdl/light"
	"mdl/output"
	"mdl/shape"
)

// Renderer scan-converts transformed geometry into a screen.
type Renderer interface {
	// DrawPolygons fills each triangle (three consecutive columns) of buf.
	DrawPolygons(buf *shape.Matrix, l *light.Lighting)
	// DrawLines draws each segment (two consecutive columns) of buf.
	DrawLines(buf *shape.Matrix, c color.RGBA)
	// Image returns the current screen contents.
	Image() image.Image
}

// SaveFunc writes img to the named file.
type SaveFunc func(img image.Image, name string) error

// Config holds the constants of a run.
type Config struct {
	// Step is the tessellation step for spheres and tori.
	Step int
	// SaveName is used by Save operations that carry no file name.
	SaveName string
	// BufferCapacity is the initial column capacity of the geometry buffer.
	BufferCapacity int
	// LineColor is the color of Line operations.
	LineColor color.RGBA
	// Lighting is shared by every polygon render call.
	Lighting *light.Lighting
}

// DefaultConfig returns the configuration scenes are normally rendered with.
func DefaultConfig() Config {
	return Config{
		Step:           20,
		SaveName:       "tmp.png",
		BufferCapacity: 1000,
		LineColor:      color.RGBA{255, 255, 255, 255},
		Lighting:       light.Default(),
	}
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithSaver replaces the function used by Save operations.
// The default is output.Save.
func WithSaver(save SaveFunc) Option {
	return func(in *Interpreter) {
		in.save = save
	}
}

// WithDisplayer sets the target of Display operations.
// The default is output.Discard.
func WithDisplayer(d output.Displayer) Option {
	return func(in *Interpreter) {
		in.display = d
	}
}

// Interpreter executes operation lists. It owns the frame stack and the
// geometry buffer; an Interpreter must not be used concurrently.
type Interpreter struct {
	cfg     Config
	r       Renderer
	save    SaveFunc
	display output.Displayer

	stack *frame.Stack
	buf   *shape.Matrix
}

// New returns an interpreter drawing into r. Zero fields of cfg are
// replaced by their DefaultConfig values.
func New(cfg Config, r Renderer, opts ...Option) *Interpreter {
	def := DefaultConfig()
	if cfg.Step == 0 {
		cfg.Step = def.Step
	}
	if cfg.SaveName == "" {
		cfg.SaveName = def.SaveName
	}
	if cfg.BufferCapacity == 0 {
		cfg.BufferCapacity = def.BufferCapacity
	}
	if cfg.LineColor == (color.RGBA{}) {
		cfg.LineColor = def.LineColor
	}
	if cfg.Lighting == nil {
		cfg.Lighting = def.Lighting
	}

	in := &Interpreter{
		cfg:     cfg,
		r:       r,
		save:    output.Save,
		display: output.Discard,
		stack:   frame.NewStack(),
		buf:     shape.NewMatrix(cfg.BufferCapacity),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Config returns the effective configuration.
func (in *Interpreter) Config() Config {
	return in.cfg
}

// Stack returns the frame stack.
func (in *Interpreter) Stack() *frame.Stack {
	return in.stack
}

// Buffer returns the geometry buffer. It is empty between operations.
func (in *Interpreter) Buffer() *shape.Matrix {
	return in.buf
}

// Reset discards all frames but a fresh world frame. The screen is left
// alone; clearing it is up to the renderer's owner.
func (in *Interpreter) Reset() {
	in.stack.Reset()
	in.buf.Reset()
}

// Run executes ops in order. A failing operation is logged and skipped;
// it never stops the run. The returned error joins one *OpError per
// failed operation and is nil if every operation succeeded.
func (in *Interpreter) Run(ops []Op) error {
	log := Logger()
	log.Info("run started", "ops", len(ops))

	var errs []error
	for i, op := range ops {
		err := in.Exec(op)
		if err == nil {
			continue
		}
		oe := &OpError{Index: i, Kind: kindOf(op), Err: err}
		log.Warn("operation skipped", "index", i, "op", oe.Kind, "err", err)
		errs = append(errs, oe)
	}

	log.Info("run finished", "ops", len(ops), "failed", len(errs), "depth", in.stack.Depth())
	return errors.Join(errs...)
}

// Exec executes a single operation against the current state.
func (in *Interpreter) Exec(op Op) error {
	log := Logger()
	log.Debug("exec", "op", kindOf(op), "depth", in.stack.Depth())

	switch op := op.(type) {
	case Push:
		in.stack.Push()
	case Pop:
		return in.stack.Pop()

	case Move:
		in.stack.Compose(frame.Translate(op.D))
	case Scale:
		in.stack.Compose(frame.Scale(op.S))
	case Rotate:
		m, err := frame.Rotate(op.Axis, op.Degrees)
		if err != nil {
			return err
		}
		in.stack.Compose(m)

	case Box:
		return in.drawPolygons(func(buf *shape.Matrix) error {
			buf.AddBox(op.Corner, op.Size)
			return nil
		})
	case Sphere:
		return in.drawPolygons(func(buf *shape.Matrix) error {
			return buf.AddSphere(op.Center, op.R, in.cfg.Step)
		})
	case Torus:
		return in.drawPolygons(func(buf *shape.Matrix) error {
			return buf.AddTorus(op.Center, op.R0, op.R1, in.cfg.Step)
		})
	case Line:
		defer in.buf.Reset()
		in.buf.AddEdge(op.P0, op.P1)
		in.buf.Transform(in.stack.Peek())
		in.r.DrawLines(in.buf, in.cfg.LineColor)

	case Save:
		name := op.Name
		if name == "" {
			name = in.cfg.SaveName
		}
		if err := in.save(in.r.Image(), name); err != nil {
			return err
		}
		log.Info("saved", "file", name)
	case Display:
		return in.display.Display(in.r.Image())

	default:
		return ErrUnknownOperation
	}
	return nil
}

// drawPolygons runs gen on the empty geometry buffer, moves the result
// into the current frame and renders it. The buffer is empty again when
// drawPolygons returns, whether or not gen succeeded.
func (in *Interpreter) drawPolygons(gen func(*shape.Matrix) error) error {
	defer in.buf.Reset()
	if err := gen(in.buf); err != nil {
		return err
	}
	in.buf.Transform(in.stack.Peek())
	in.r.DrawPolygons(in.buf, in.cfg.Lighting)
	return nil
}

// kindOf returns the kind reported by op, or -1 for a nil op. A nil
// pointer is not asked for its kind, since value receivers would
// dereference it.
func kindOf(op Op) Kind {
	if op == nil {
		return -1
	}
	if v := reflect.ValueOf(op); v.Kind() == reflect.Pointer && v.IsNil() {
		return -1
	}
	return op.Kind()
}
