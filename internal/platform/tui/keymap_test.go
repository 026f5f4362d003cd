package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower-rush/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"pause", runeKey('p'), core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"shop", runeKey('u'), core.ActionShop},
		{"menu", runeKey('m'), core.ActionMenu},
		{"cheat", runeKey('g'), core.ActionMaxUpgrades},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"buy 1", runeKey('1'), core.ActionBuy1},
		{"buy 6", runeKey('6'), core.ActionBuy6},
		{"buy 9", runeKey('9'), core.ActionBuy9},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ev := km.mapKey(tc.msg)
			if ev.action != tc.want {
				t.Errorf("mapKey(%q).action = %v, expected %v", tc.msg.String(), ev.action, tc.want)
			}
			if ev.isMove || ev.isFire {
				t.Errorf("mapKey(%q) should not move or fire", tc.msg.String())
			}
		})
	}
}

func TestKeyMapDirections(t *testing.T) {
	km := DefaultKeyMap()

	moves := map[rune]direction{'w': dirUp, 's': dirDown, 'a': dirLeft, 'd': dirRight}
	for r, want := range moves {
		ev := km.mapKey(runeKey(r))
		if !ev.isMove || ev.move != want {
			t.Errorf("mapKey(%q) = %+v, expected move %v", r, ev, want)
		}
	}

	fires := map[tea.KeyType]direction{
		tea.KeyUp:    dirUp,
		tea.KeyDown:  dirDown,
		tea.KeyLeft:  dirLeft,
		tea.KeyRight: dirRight,
	}
	for kt, want := range fires {
		ev := km.mapKey(tea.KeyMsg{Type: kt})
		if !ev.isFire || ev.fire != want {
			t.Errorf("mapKey(%v) = %+v, expected fire %v", kt, ev, want)
		}
	}
}

func TestDirectionVectors(t *testing.T) {
	sum := core.Vec2{}
	for _, d := range []direction{dirUp, dirDown, dirLeft, dirRight} {
		v := d.vec()
		if v.Len() != 1 {
			t.Errorf("%v.vec() = %v, expected unit length", d, v)
		}
		sum = sum.Add(v)
	}
	if !sum.IsZero() {
		t.Errorf("opposite directions should cancel, got %v", sum)
	}
}
