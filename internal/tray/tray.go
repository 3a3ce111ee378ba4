// Package tray provides a system tray interface for the mudra hand-pose service.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle   func(sensing bool)
	onSettings func()
	onQuit     func()
	sensing    bool
	mu         sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuHands  *systray.MenuItem
}

// New creates a new Tray instance. Sensing is off until toggled.
func New() *Tray {
	return &Tray{}
}

// OnToggle sets the callback function to be called when sensing is toggled.
func (t *Tray) OnToggle(fn func(sensing bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnSettings sets the callback function to be called when the settings menu item is clicked.
func (t *Tray) OnSettings(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onSettings = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Hand Pose")

	t.menuToggle = systray.AddMenuItem("○ Sensing off", "Toggle hand sensing")
	systray.AddSeparator()

	t.menuHands = systray.AddMenuItem("Hands: 0", "Hands in the last detection")
	t.menuHands.Disable()
	systray.AddSeparator()

	menuSettings := systray.AddMenuItem("Open Settings...", "Open settings in browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuSettings.ClickedCh:
				t.handleSettings()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.sensing = !t.sensing
	sensing := t.sensing

	if sensing {
		t.menuToggle.SetTitle("● Sensing on")
	} else {
		t.menuToggle.SetTitle("○ Sensing off")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(sensing)
	}
}

// handleSettings handles the settings menu item click.
func (t *Tray) handleSettings() {
	t.mu.RLock()
	callback := t.onSettings
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetHandCount updates the hand count readout in the menu.
func (t *Tray) SetHandCount(n int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuHands != nil {
		t.menuHands.SetTitle(fmt.Sprintf("Hands: %d", n))
	}
}

// IsSensing returns whether sensing is currently toggled on.
func (t *Tray) IsSensing() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.sensing
}
