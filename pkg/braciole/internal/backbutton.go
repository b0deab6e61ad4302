package internal

import (
	"github.com/holoplot/go-evdev"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// BackButtonEventType is the SDL user event type posted when the hardware
// back button is pressed. Registered on the first watcher start.
var backButtonEventType uint32

// BackButtonEventType returns the SDL event type used for hardware back
// presses, or 0 if no watcher was started.
func BackButtonEventType() uint32 {
	return backButtonEventType
}

// BackButtonWatcher reads a dedicated evdev device for a hardware back
// button and forwards presses into the SDL event queue, so navigation stays
// on the UI loop.
type BackButtonWatcher struct {
	device  *evdev.InputDevice
	code    evdev.EvCode
	running *atomic.Bool
}

// StartBackButtonWatcher opens the input device at path and starts a
// goroutine that posts an SDL user event on every key-down of code.
func StartBackButtonWatcher(path string, code evdev.EvCode) (*BackButtonWatcher, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, err
	}

	if backButtonEventType == 0 {
		backButtonEventType = sdl.RegisterEvents(1)
	}

	w := &BackButtonWatcher{
		device:  device,
		code:    code,
		running: atomic.NewBool(true),
	}

	if name, err := device.Name(); err == nil {
		FrameworkLogger().Info("Watching back button device", "path", path, "name", name)
	}

	go w.loop()
	return w, nil
}

func (w *BackButtonWatcher) loop() {
	for w.running.Load() {
		event, err := w.device.ReadOne()
		if err != nil {
			// Device closed or unplugged; Stop also lands here.
			if w.running.Load() {
				FrameworkLogger().Warn("Back button device read failed", "error", err)
			}
			return
		}

		if event.Type != evdev.EV_KEY || event.Code != w.code || event.Value != 1 {
			continue
		}

		sdl.PushEvent(&sdl.UserEvent{Type: backButtonEventType})
	}
}

// Stop closes the device and ends the watcher goroutine. Idempotent.
func (w *BackButtonWatcher) Stop() {
	if !w.running.Swap(false) {
		return
	}
	w.device.Close()
}
