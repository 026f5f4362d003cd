package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower-rush/internal/core"
)

// KeyMap defines the key bindings for a run.
type KeyMap struct {
	MoveUp    key.Binding
	MoveDown  key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding

	// Arrow keys aim and fire in their direction, for terminals without mouse.
	FireUp    key.Binding
	FireDown  key.Binding
	FireLeft  key.Binding
	FireRight key.Binding

	Confirm key.Binding
	Back    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Shop    key.Binding
	Menu    key.Binding
	Buy     key.Binding
	Cheat   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.MoveUp, k.FireUp, k.Confirm, k.Pause, k.Shop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.MoveUp, k.MoveDown, k.MoveLeft, k.MoveRight},
		{k.FireUp, k.FireDown, k.FireLeft, k.FireRight},
		{k.Confirm, k.Back, k.Pause, k.Restart},
		{k.Shop, k.Menu, k.Buy, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		MoveUp:    key.NewBinding(key.WithKeys("w"), key.WithHelp("wasd", "move")),
		MoveDown:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down")),
		MoveLeft:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left")),
		MoveRight: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right")),

		FireUp:    key.NewBinding(key.WithKeys("up"), key.WithHelp("arrows/click", "fire")),
		FireDown:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "fire down")),
		FireLeft:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "fire left")),
		FireRight: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "fire right")),

		Confirm: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Shop:    key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "workshop")),
		Menu:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Buy: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "buy"),
		),
		Cheat: key.NewBinding(key.WithKeys("g")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// direction is a held movement or fire direction.
type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// vec returns the unit arena vector for d.
func (d direction) vec() core.Vec2 {
	switch d {
	case dirUp:
		return core.V(0, -1)
	case dirDown:
		return core.V(0, 1)
	case dirLeft:
		return core.V(-1, 0)
	default:
		return core.V(1, 0)
	}
}

// keyEvent is what a key press means for the session.
type keyEvent struct {
	action core.Action
	move   direction
	isMove bool
	fire   direction
	isFire bool
}

// mapKey translates a key message using km.
func (km KeyMap) mapKey(msg tea.KeyMsg) keyEvent {
	switch {
	case key.Matches(msg, km.Quit):
		return keyEvent{action: core.ActionQuit}
	case key.Matches(msg, km.MoveUp):
		return keyEvent{move: dirUp, isMove: true}
	case key.Matches(msg, km.MoveDown):
		return keyEvent{move: dirDown, isMove: true}
	case key.Matches(msg, km.MoveLeft):
		return keyEvent{move: dirLeft, isMove: true}
	case key.Matches(msg, km.MoveRight):
		return keyEvent{move: dirRight, isMove: true}
	case key.Matches(msg, km.FireUp):
		return keyEvent{fire: dirUp, isFire: true}
	case key.Matches(msg, km.FireDown):
		return keyEvent{fire: dirDown, isFire: true}
	case key.Matches(msg, km.FireLeft):
		return keyEvent{fire: dirLeft, isFire: true}
	case key.Matches(msg, km.FireRight):
		return keyEvent{fire: dirRight, isFire: true}
	case key.Matches(msg, km.Confirm):
		return keyEvent{action: core.ActionConfirm}
	case key.Matches(msg, km.Back):
		return keyEvent{action: core.ActionBack}
	case key.Matches(msg, km.Pause):
		return keyEvent{action: core.ActionPause}
	case key.Matches(msg, km.Restart):
		return keyEvent{action: core.ActionRestart}
	case key.Matches(msg, km.Shop):
		return keyEvent{action: core.ActionShop}
	case key.Matches(msg, km.Menu):
		return keyEvent{action: core.ActionMenu}
	case key.Matches(msg, km.Cheat):
		return keyEvent{action: core.ActionMaxUpgrades}
	case key.Matches(msg, km.Buy):
		k := msg.String()
		return keyEvent{action: core.BuyAction(int(k[0] - '0'))}
	}
	return keyEvent{}
}
