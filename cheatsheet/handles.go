package cheatsheet

import (
	"cmp"
	"fmt"
	"io"

	"github.com/samber/mo"

	"github.com/charmingruby/lambdasheet/fp"
	"github.com/charmingruby/lambdasheet/option"
	"github.com/charmingruby/lambdasheet/result"
)

// ListenerForm is one way of writing the same ActionListener.
type ListenerForm struct {
	Name     string
	Listener ActionListener
}

// ComparatorForm is one way of writing the same event ordering. RejectsNil
// forms panic with fp.ErrNullArgument when handed a nil event.
type ComparatorForm struct {
	Name       string
	Compare    fp.Comparator[*ActionEvent]
	RejectsNil bool
}

// clickPrinter is the long-hand listener: a named type with a method.
type clickPrinter struct {
	out io.Writer
}

func (c clickPrinter) ActionPerformed(e ActionEvent) {
	_, _ = fmt.Fprintf(c.out, "Event happened at %d\n", e.When)
}

// Listeners returns four equivalent listeners writing to w. The last one
// also prints the event command.
func Listeners(w io.Writer) []ListenerForm {
	var simple ActionListenerFunc = func(event ActionEvent) {
		_, _ = fmt.Fprintf(w, "Event happened at %d\n", event.When)
	}

	typed := ActionListenerFunc(func(event ActionEvent) {
		_, _ = fmt.Fprintf(w, "Event happened at %d\n", event.When)
	})

	withBody := ActionListenerFunc(func(event ActionEvent) {
		_, _ = fmt.Fprintf(w, "Event happened at %d\n", event.When)
		_, _ = fmt.Fprintf(w, "Event command %s\n", event.Command)
	})

	return []ListenerForm{
		{Name: "named type", Listener: clickPrinter{out: w}},
		{Name: "func literal", Listener: simple},
		{Name: "converted func literal", Listener: typed},
		{Name: "multi-statement body", Listener: withBody},
	}
}

// eventOrder is the long-hand comparator.
type eventOrder struct{}

func (eventOrder) Compare(o1, o2 *ActionEvent) int {
	fp.RequireNonNil(o1, "o1")
	fp.RequireNonNil(o2, "o2")
	switch {
	case o1.When < o2.When:
		return -1
	case o1.When == o2.When:
		return 0
	default:
		return 1
	}
}

// Comparators returns three equivalent orderings of events by When.
func Comparators() []ComparatorForm {
	noNils := func(o1, o2 *ActionEvent) int {
		return cmp.Compare(o1.When, o2.When)
	}

	checked := func(o1, o2 *ActionEvent) int {
		fp.RequireNonNil(o1, "o1")
		fp.RequireNonNil(o2, "o2")
		return cmp.Compare(o1.When, o2.When)
	}

	return []ComparatorForm{
		{Name: "named type", Compare: eventOrder{}.Compare, RejectsNil: true},
		{Name: "one-liner", Compare: noNils},
		{Name: "multi-statement body", Compare: checked, RejectsNil: true},
	}
}

// DifferentFormsOfFunctionalInterfaces fires one event through every
// listener form, then orders sample event pairs with every comparator form.
func (r *Runner) DifferentFormsOfFunctionalInterfaces() error {
	const demo = "functional interfaces forms"
	p := r.begin(demo)

	lastClicked := mo.None[int64]()
	p.printf("last clicked: %s\n", option.FromMo(lastClicked))

	event := ActionEvent{When: 1382227200000, Command: "save"}
	for _, form := range Listeners(p) {
		p.printf("-- %s\n", form.Name)
		form.Listener.ActionPerformed(event)
	}
	lastClicked = mo.Some(event.When)
	p.printf("last clicked: %s\n", option.FromMo(lastClicked))

	earlier := &ActionEvent{When: 100, Command: "open"}
	later := &ActionEvent{When: 200, Command: "close"}
	for _, form := range Comparators() {
		p.printf("%s: %d %d %d\n", form.Name,
			form.Compare(earlier, later),
			form.Compare(later, earlier),
			form.Compare(earlier, earlier))
		if form.RejectsNil {
			res := result.Try(func() int { return form.Compare(nil, later) })
			p.printf("%s with nil: %v\n", form.Name, res.Err())
		}
	}

	return r.finish(demo, p.err)
}
