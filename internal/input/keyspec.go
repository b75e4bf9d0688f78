package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// identifiers maps the names usable inside '<…>' in a Keyspec to keys.
//
// NOTE:
//
//	tcell aliases <c-h>, <c-i> and <c-m> to backspace, tab and enter, so they
//	are only reachable as <c-bs>, <tab> and <cr>.
var identifiers = map[string]Key{
	"space": {Key: tcell.KeyRune, Ch: ' '},
	"lt":    {Key: tcell.KeyRune, Ch: '<'},
	"cr":    {Key: tcell.KeyEnter},
	"tab":   {Key: tcell.KeyTab},
	"esc":   {Key: tcell.KeyESC},
	"del":   {Key: tcell.KeyDelete},
	"bs":    {Key: tcell.KeyBackspace2},
	"left":  {Key: tcell.KeyLeft},
	"right": {Key: tcell.KeyRight},
	"up":    {Key: tcell.KeyUp},
	"down":  {Key: tcell.KeyDown},
	"home":  {Key: tcell.KeyHome},
	"end":   {Key: tcell.KeyEnd},
	"pgup":  {Key: tcell.KeyPgUp},
	"pgdn":  {Key: tcell.KeyPgDn},
	"f1":    {Key: tcell.KeyF1},

	"c-space": {Key: tcell.KeyCtrlSpace},
	"c-bs":    {Key: tcell.KeyBackspace},

	"c-a": {Key: tcell.KeyCtrlA},
	"c-b": {Key: tcell.KeyCtrlB},
	"c-c": {Key: tcell.KeyCtrlC},
	"c-d": {Key: tcell.KeyCtrlD},
	"c-e": {Key: tcell.KeyCtrlE},
	"c-f": {Key: tcell.KeyCtrlF},
	"c-g": {Key: tcell.KeyCtrlG},
	"c-j": {Key: tcell.KeyCtrlJ},
	"c-k": {Key: tcell.KeyCtrlK},
	"c-l": {Key: tcell.KeyCtrlL},
	"c-n": {Key: tcell.KeyCtrlN},
	"c-o": {Key: tcell.KeyCtrlO},
	"c-p": {Key: tcell.KeyCtrlP},
	"c-q": {Key: tcell.KeyCtrlQ},
	"c-r": {Key: tcell.KeyCtrlR},
	"c-s": {Key: tcell.KeyCtrlS},
	"c-t": {Key: tcell.KeyCtrlT},
	"c-u": {Key: tcell.KeyCtrlU},
	"c-v": {Key: tcell.KeyCtrlV},
	"c-w": {Key: tcell.KeyCtrlW},
	"c-x": {Key: tcell.KeyCtrlX},
	"c-y": {Key: tcell.KeyCtrlY},
	"c-z": {Key: tcell.KeyCtrlZ},
}

// names is the inverse of identifiers.
var names = func() map[Key]string {
	result := make(map[Key]string, len(identifiers))
	for name, key := range identifiers {
		result[key] = name
	}
	return result
}()

// ConfigKeyspecToKeys converts full key sequence specification strings (e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key) to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	if len(spec) == 0 {
		return nil, fmt.Errorf("empty keyspec")
	}

	keys := make([][]rune, 0)
	specialContext := false

	for pos, r := range []rune(spec) {
		switch r {

		case '<':
			if specialContext {
				return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", pos)
			}
			specialContext = true
			keys = append(keys, []rune{r})

		case '>':
			if !specialContext {
				return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)
			}
			specialContext = false
			keys[len(keys)-1] = append(keys[len(keys)-1], r)

		default:
			if specialContext {
				if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", r, pos)
				}
				keys[len(keys)-1] = append(keys[len(keys)-1], r)
			} else {
				keys = append(keys, []rune{r})
			}

		}
	}
	if specialContext {
		return nil, fmt.Errorf("special context ('<') not closed at end of keyspec '%s'", spec)
	}

	result := make([]Key, 0, len(keys))
	for _, keyIdentifier := range keys {
		if keyIdentifier[0] == '<' {
			key, err := KeyIdentifierToKey(string(keyIdentifier[1 : len(keyIdentifier)-1]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(keyIdentifier), err)
			}
			result = append(result, key)
		} else {
			result = append(result, Key{Key: tcell.KeyRune, Ch: keyIdentifier[0]})
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier to the appropriate
// key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	key, ok := identifiers[strings.ToLower(identifier)]
	if !ok {
		return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
	}
	return key, nil
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, such that ConfigKeyspecToKeys would map it back to the key.
func ToConfigIdentifierString(k Key) string {
	if identifier, ok := names[Key{Key: k.Key, Ch: k.Ch}]; ok {
		return "<" + identifier + ">"
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return "<" + strings.ToLower(tcell.KeyNames[k.Key]) + ">"
}
