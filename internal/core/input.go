package core

// Action represents a discrete key press, abstracted from physical keys.
// Each state of the session interprets actions on its own.
type Action int

const (
	ActionNone        Action = iota
	ActionConfirm            // Enter, Space - start or retry
	ActionBack               // Escape - pause, resume, leave the workshop, quit from menus
	ActionPause              // P - pause/resume while in a run
	ActionRestart            // R - restart the run
	ActionShop               // U - open the upgrade workshop
	ActionMenu               // M - return to the main menu
	ActionQuit               // Q, Ctrl+C - exit
	ActionMaxUpgrades        // G - debug: max every meta-upgrade
	ActionBuy1               // 1..9 - purchase workshop slot
	ActionBuy2
	ActionBuy3
	ActionBuy4
	ActionBuy5
	ActionBuy6
	ActionBuy7
	ActionBuy8
	ActionBuy9
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionShop:
		return "Shop"
	case ActionMenu:
		return "Menu"
	case ActionQuit:
		return "Quit"
	case ActionMaxUpgrades:
		return "MaxUpgrades"
	}
	if slot := a.BuySlot(); slot > 0 {
		return "Buy" + string(rune('0'+slot))
	}
	return "Unknown"
}

// BuySlot returns the 1-based workshop slot for a purchase action, or 0.
func (a Action) BuySlot() int {
	if a >= ActionBuy1 && a <= ActionBuy9 {
		return int(a-ActionBuy1) + 1
	}
	return 0
}

// BuyAction returns the purchase action for a 1-based slot.
func BuyAction(slot int) Action {
	if slot < 1 || slot > 9 {
		return ActionNone
	}
	return ActionBuy1 + Action(slot-1)
}

// InputFrame is the input state sampled once per tick: held movement
// keys, the pointer position in arena coordinates, whether fire is held,
// and the discrete actions pressed since the previous frame.
type InputFrame struct {
	Up, Down, Left, Right bool
	Aim                   Vec2
	Fire                  bool

	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Direction returns the raw movement vector from the four direction flags.
// Components are -1, 0 or 1; the vector is not normalized.
func (f InputFrame) Direction() Vec2 {
	var d Vec2
	if f.Up {
		d.Y--
	}
	if f.Down {
		d.Y++
	}
	if f.Left {
		d.X--
	}
	if f.Right {
		d.X++
	}
	return d
}

// ClearActions drops the discrete actions but keeps held state.
func (f *InputFrame) ClearActions() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := f
	clone.Actions = make(map[Action]bool, len(f.Actions))
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
