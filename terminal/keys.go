package terminal

import (
	"github.com/automoto/doomerang-input/input"
	"github.com/gdamore/tcell/v2"
)

// namedKeys maps tcell's special keys. Ctrl+letter codes share values with
// Tab, Enter, Backspace and Escape, so those are looked up here first.
var namedKeys = map[tcell.Key]input.InputButton{
	tcell.KeyEnter:      input.KeyEnter,
	tcell.KeyTab:        input.KeyTab,
	tcell.KeyBackspace:  input.KeyBackspace,
	tcell.KeyBackspace2: input.KeyBackspace,
	tcell.KeyEscape:     input.KeyEscape,
	tcell.KeyInsert:     input.KeyInsert,
	tcell.KeyDelete:     input.KeyDelete,
	tcell.KeyHome:       input.KeyHome,
	tcell.KeyEnd:        input.KeyEnd,
	tcell.KeyPgUp:       input.KeyPageUp,
	tcell.KeyPgDn:       input.KeyPageDown,
	tcell.KeyUp:         input.KeyUp,
	tcell.KeyDown:       input.KeyDown,
	tcell.KeyLeft:       input.KeyLeft,
	tcell.KeyRight:      input.KeyRight,
	tcell.KeyF1:         input.KeyF1,
	tcell.KeyF2:         input.KeyF2,
	tcell.KeyF3:         input.KeyF3,
	tcell.KeyF4:         input.KeyF4,
	tcell.KeyF5:         input.KeyF5,
	tcell.KeyF6:         input.KeyF6,
	tcell.KeyF7:         input.KeyF7,
	tcell.KeyF8:         input.KeyF8,
	tcell.KeyF9:         input.KeyF9,
	tcell.KeyF10:        input.KeyF10,
	tcell.KeyF11:        input.KeyF11,
	tcell.KeyF12:        input.KeyF12,
}

type runeKey struct {
	button input.InputButton
	shift  bool
}

// runeKeys maps printable runes on a US layout. Shifted symbols report the
// unshifted key with Shift held.
var runeKeys = map[rune]runeKey{
	' ':  {input.KeySpace, false},
	'-':  {input.KeyMinus, false},
	'_':  {input.KeyMinus, true},
	'=':  {input.KeyEqual, false},
	'+':  {input.KeyEqual, true},
	',':  {input.KeyComma, false},
	'<':  {input.KeyComma, true},
	'.':  {input.KeyPeriod, false},
	'>':  {input.KeyPeriod, true},
	'/':  {input.KeySlash, false},
	'?':  {input.KeySlash, true},
	';':  {input.KeySemicolon, false},
	':':  {input.KeySemicolon, true},
	'\'': {input.KeyQuote, false},
	'"':  {input.KeyQuote, true},
	'[':  {input.KeyBracketLeft, false},
	'{':  {input.KeyBracketLeft, true},
	']':  {input.KeyBracketRight, false},
	'}':  {input.KeyBracketRight, true},
	'\\': {input.KeyBackslash, false},
	'|':  {input.KeyBackslash, true},
	'`':  {input.KeyBackquote, false},
	'~':  {input.KeyBackquote, true},
	')':  {input.Key0, true},
	'!':  {input.Key1, true},
	'@':  {input.Key2, true},
	'#':  {input.Key3, true},
	'$':  {input.Key4, true},
	'%':  {input.Key5, true},
	'^':  {input.Key6, true},
	'&':  {input.Key7, true},
	'*':  {input.Key8, true},
	'(':  {input.Key9, true},
}

// translateKey resolves a key event to a button and the modifiers it implies.
func translateKey(ev *tcell.EventKey) (input.InputButton, input.PressState) {
	mods := translateMods(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		b, shift := translateRune(ev.Rune())
		if shift {
			mods |= input.ModShift
		}
		return b, mods
	case k == tcell.KeyBacktab:
		return input.KeyTab, mods | input.ModShift
	default:
		if b, ok := namedKeys[k]; ok {
			return b, mods
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return input.KeyA + input.InputButton(k-tcell.KeyCtrlA), mods | input.ModCtrl
		}
	}
	return input.ButtonUnknown, mods
}

func translateRune(r rune) (input.InputButton, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return input.KeyA + input.InputButton(r-'a'), false
	case r >= 'A' && r <= 'Z':
		return input.KeyA + input.InputButton(r-'A'), true
	case r >= '0' && r <= '9':
		return input.Key0 + input.InputButton(r-'0'), false
	}
	if rk, ok := runeKeys[r]; ok {
		return rk.button, rk.shift
	}
	return input.ButtonUnknown, false
}

func translateMods(m tcell.ModMask) input.PressState {
	var mods input.PressState
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModSuper
	}
	return mods
}
