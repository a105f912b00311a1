package cheatsheet_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charmingruby/lambdasheet/cheatsheet"
	"github.com/charmingruby/lambdasheet/fp"
	"github.com/charmingruby/lambdasheet/result"
)

func TestListenersPrintTheTimestamp(t *testing.T) {
	var out bytes.Buffer
	forms := cheatsheet.Listeners(&out)
	require.Len(t, forms, 4)

	event := cheatsheet.ActionEvent{When: 42, Command: "quit"}
	for i, form := range forms {
		out.Reset()
		form.Listener.ActionPerformed(event)
		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		assert.Equal(t, "Event happened at 42", lines[0], form.Name)
		if i == len(forms)-1 {
			require.Len(t, lines, 2)
			assert.Equal(t, "Event command quit", lines[1])
		} else {
			assert.Len(t, lines, 1, form.Name)
		}
	}
}

func TestActionListenerFunc(t *testing.T) {
	var got cheatsheet.ActionEvent
	var l cheatsheet.ActionListener = cheatsheet.ActionListenerFunc(func(e cheatsheet.ActionEvent) { got = e })
	l.ActionPerformed(cheatsheet.ActionEvent{When: 7, Command: "open"})
	assert.Equal(t, cheatsheet.ActionEvent{When: 7, Command: "open"}, got)
}

func TestComparatorsAgreeOnSign(t *testing.T) {
	forms := cheatsheet.Comparators()
	require.Len(t, forms, 3)

	properties := gopter.NewProperties(nil)
	properties.Property("every form returns the same -1/0/1", prop.ForAll(func(a, b int64) bool {
		e1 := &cheatsheet.ActionEvent{When: a}
		e2 := &cheatsheet.ActionEvent{When: b}
		want := 0
		switch {
		case a < b:
			want = -1
		case a > b:
			want = 1
		}
		for _, form := range forms {
			if form.Compare(e1, e2) != want {
				return false
			}
		}
		return true
	}, gen.Int64Range(-5, 5), gen.Int64Range(-5, 5)))
	properties.TestingRun(t)
}

func TestComparatorsRejectNil(t *testing.T) {
	event := &cheatsheet.ActionEvent{When: 1}
	for _, form := range cheatsheet.Comparators() {
		if !form.RejectsNil {
			assert.Panics(t, func() { form.Compare(nil, event) }, form.Name)
			continue
		}
		for _, pair := range [][2]*cheatsheet.ActionEvent{{nil, event}, {event, nil}, {nil, nil}} {
			res := result.Try(func() int { return form.Compare(pair[0], pair[1]) })
			require.True(t, res.IsErr(), form.Name)
			assert.True(t, errors.Is(res.Err(), fp.ErrNullArgument), form.Name)
		}
	}
}
