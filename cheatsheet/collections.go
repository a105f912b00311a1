package cheatsheet

import (
	"github.com/pkg/errors"

	"github.com/charmingruby/lambdasheet/fp"
	"github.com/charmingruby/lambdasheet/seq"
)

// PaintAll sets every shape to c, in order. A nil shape stops the walk and
// the error names its position; shapes before it stay painted.
func PaintAll(shapes []*Shape, c Color) error {
	return seq.ForEachErr(shapes, func(s *Shape) error {
		if s == nil {
			return errors.WithStack(fp.ErrNullArgument)
		}
		s.SetColor(c)
		return nil
	})
}

// RemoveByColor returns the shapes not painted c, in their original order.
func RemoveByColor(shapes []*Shape, c Color) []*Shape {
	return seq.RemoveIf(shapes, func(s *Shape) bool {
		return s.Color() == c
	})
}

// MethodsOnCollections paints a list of shapes red and then removes the red
// ones.
func (r *Runner) MethodsOnCollections() error {
	const demo = "methods on collections"
	p := r.begin(demo)

	shapes := []*Shape{NewShape(Red), NewShape(Black), NewShape(Yellow)}
	p.println("shapes:", seq.Map(shapes, (*Shape).String))

	if err := PaintAll(shapes, Red); err != nil {
		return r.finish(demo, err)
	}
	p.println("painted:", seq.Map(shapes, (*Shape).String))

	shapes = RemoveByColor(shapes, Red)
	p.printf("remaining after removing %s: %d\n", Red, len(shapes))

	return r.finish(demo, p.err)
}
