package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	tab     key.Binding
	backtab key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	refresh key.Binding
	newItem key.Binding
	rename  key.Binding
	pin     key.Binding
	public  key.Binding
	archive key.Binding
	trash   key.Binding
	restore key.Binding
	search  key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	refresh: key.NewBinding(key.WithKeys("s")),
	newItem: key.NewBinding(key.WithKeys("n")),
	rename:  key.NewBinding(key.WithKeys("e")),
	pin:     key.NewBinding(key.WithKeys("p")),
	public:  key.NewBinding(key.WithKeys("b")),
	archive: key.NewBinding(key.WithKeys("a")),
	trash:   key.NewBinding(key.WithKeys("d")),
	restore: key.NewBinding(key.WithKeys("r")),
	search:  key.NewBinding(key.WithKeys("/")),
	copy:    key.NewBinding(key.WithKeys("c")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
