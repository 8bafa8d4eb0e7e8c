package ui

import (
	"gridlife/internal/controller"
	"gridlife/internal/core"
)

// Board is the controller surface the HUD drives.
type Board interface {
	Size() core.Size
	Parameters() core.ParameterSnapshot
	Compute(engine, countText string) (controller.Batch, error)
}

// maxFieldLen bounds the generations field; ten digits already exceed the
// largest accepted count.
const maxFieldLen = 10

// editField applies typed characters and backspaces to the generations
// field. Only digits are accepted.
func editField(field string, typed []rune, backspaces int) string {
	for ; backspaces > 0 && len(field) > 0; backspaces-- {
		field = field[:len(field)-1]
	}
	for _, r := range typed {
		if r < '0' || r > '9' {
			continue
		}
		if len(field) >= maxFieldLen {
			break
		}
		field += string(r)
	}
	return field
}
