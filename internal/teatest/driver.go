// Package teatest drives bubbletea models synchronously in tests: Update
// is called directly and returned Cmds are drained inline, so there is no
// tea.Program goroutine and no nondeterminism. Blocking Cmds such as
// cursor blinks are given a short deadline and dropped if they miss it.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain caps recursive command draining.
const maxDrain = 100

// cmdDeadline separates real Cmds (network stubs, message factories,
// microseconds) from timer-backed ones like cursor blink (~530ms).
const cmdDeadline = 25 * time.Millisecond

// Driver wraps a tea.Model for deterministic tests.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting flips when tea.QuitMsg is observed; the real runtime
	// would intercept it before the model sees it.
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// Start runs the model's Init command chain.
func (d *Driver) Start() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send feeds one message through Update and drains what comes back.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// Type sends a string rune by rune.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Press(r)
	}
}

func (d *Driver) Enter() { d.T.Helper(); d.Send(tea.KeyMsg{Type: tea.KeyEnter}) }
func (d *Driver) Esc()   { d.T.Helper(); d.Send(tea.KeyMsg{Type: tea.KeyEsc}) }
func (d *Driver) Tab()   { d.T.Helper(); d.Send(tea.KeyMsg{Type: tea.KeyTab}) }
func (d *Driver) Down()  { d.T.Helper(); d.Send(tea.KeyMsg{Type: tea.KeyDown}) }
func (d *Driver) Up()    { d.T.Helper(); d.Send(tea.KeyMsg{Type: tea.KeyUp}) }

// View renders the model.
func (d *Driver) View() string { return d.Model.View() }

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrain {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrain)
		return
	}

	msg := runWithDeadline(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

func runWithDeadline(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdDeadline):
		return nil
	}
}

// Cursor blink messages are unexported bubbles types; matching on the
// type name is the only handle we have.
func isBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
