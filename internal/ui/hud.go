//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"gridlife/internal/core"
	"gridlife/internal/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the control panel to the right of the board: a generations
// field, one button per engine, live statistics and the engine tunables.
type HUD struct {
	board      Board
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	field   string
	focused bool
	status  string

	fieldRect image.Rectangle
	buttons   []hudButton

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

type hudButton struct {
	label  string
	engine string
	rect   image.Rectangle
}

// NewHUD constructs a HUD for the provided board and panel width.
func NewHUD(board Board, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{board: board, width: width, field: "1"}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.buttons = []hudButton{
		{label: "CPU", engine: life.ScalarName},
		{label: "GPU", engine: life.ParallelName},
	}
	if provider, ok := board.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := board.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	h.layout()
	return h
}

// Update refreshes the cached snapshot and handles HUD interactions.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.handleInput()
	h.snapshot = h.board.Parameters()
	h.refreshControlValues()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawPanel()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if h.focused {
		backspaces := 0
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			backspaces = 1
		}
		h.field = editField(h.field, ebiten.AppendInputChars(nil), backspaces)
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			h.compute(life.ParallelName)
		}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX
	h.focused = pointInRect(px, my, h.fieldRect)
	if px < 0 {
		return
	}
	for _, b := range h.buttons {
		if pointInRect(px, my, b.rect) {
			h.compute(b.engine)
			return
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) compute(engine string) {
	batch, err := h.board.Compute(engine, h.field)
	if err != nil {
		h.status = err.Error()
		return
	}
	h.status = batch.Engine + ": " + strconv.Itoa(batch.Iterations) + " gen in " + batch.Elapsed.String()
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil || direction == 0 {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if target == state.intValue {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil || !state.hasValue {
		return false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.intValue+direction*step) != state.intValue
}

func (h *HUD) drawPanel() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Game of Life", face, panelPadding, panelPadding+headerBaseline, colorHeader)

	text.Draw(h.panel, "Generations", face, panelPadding, h.fieldRect.Min.Y-4, colorLabel)
	fieldBg := color.RGBA{R: 32, G: 34, B: 40, A: 255}
	if h.focused {
		fieldBg = color.RGBA{R: 54, G: 56, B: 72, A: 255}
	}
	h.fillRect(h.fieldRect, fieldBg)
	cursor := ""
	if h.focused {
		cursor = "_"
	}
	text.Draw(h.panel, h.field+cursor, face, h.fieldRect.Min.X+6, h.fieldRect.Min.Y+17, colorLabel)

	for _, b := range h.buttons {
		h.drawButton(b.rect, b.label, true)
	}

	y := h.buttons[0].rect.Max.Y + lineHeight
	for _, group := range h.snapshot.Groups {
		if group.Name == "Parallel" {
			continue
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, colorHeader)
		y += statHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, colorDim)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, colorLabel)
			y += statHeight
		}
		y += statHeight / 2
	}

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, colorLabel)
		valueColor := colorLabel
		if !state.hasValue {
			valueColor = colorDim
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)
		h.drawButton(state.minusRect, "-", h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", h.canAdjust(state, 1))
	}

	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, h.lastHeight-panelPadding, colorDim)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	top := panelPadding + headerBaseline + lineHeight
	h.fieldRect = image.Rect(panelPadding, top, h.width-panelPadding, top+fieldHeight)

	top = h.fieldRect.Max.Y + buttonGap*2
	inner := h.width - 2*panelPadding
	bw := (inner - buttonGap*(len(h.buttons)-1)) / len(h.buttons)
	for i := range h.buttons {
		x := panelPadding + i*(bw+buttonGap)
		h.buttons[i].rect = image.Rect(x, top, x+bw, top+fieldHeight)
	}

	// Tunables sit below the statistics block (two groups of at most
	// four rows plus headers).
	top = h.buttons[0].rect.Max.Y + lineHeight + 11*statHeight
	for i := range h.controls {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	colorHeader = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	colorLabel  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	colorDim    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	statHeight     = 16
	fieldHeight    = 24
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
)

// MinHeight is the panel height needed to show every control.
func (h *HUD) MinHeight() int {
	if h == nil {
		return 0
	}
	if n := len(h.controls); n > 0 {
		return h.controls[n-1].top + lineHeight + lineHeight
	}
	return h.buttons[0].rect.Max.Y + lineHeight + 11*statHeight + lineHeight
}
