// Package window opens a GLFW window prepared for wgpu rendering. It only
// exists for the interactive examples, the library itself never touches a
// window or surface.
package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
	"github.com/pkg/profile"
)

// Key identifies the few keys the examples react to.
type Key int

const (
	KeyEscape Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyEscape: KeyEscape,
	glfw.KeyLeft:   KeyLeft,
	glfw.KeyRight:  KeyRight,
	glfw.KeyUp:     KeyUp,
	glfw.KeyDown:   KeyDown,
	glfw.KeySpace:  KeySpace,
}

type Window struct {
	win     *glfw.Window
	prof    interface{ Stop() }
	pressed []Key
}

func New(width, height int, title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{
		win:  win,
		prof: profile.Start(profile.CPUProfile),
	}

	win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}

		if key, ok := glfwToKey[glfwKey]; ok {
			w.pressed = append(w.pressed, key)
		}
	})

	return w, nil
}

// SurfaceDescriptor returns the platform surface of the window.
func (w *Window) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(w.win)
}

func (w *Window) Size() (uint32, uint32) {
	width, height := w.win.GetSize()
	return uint32(width), uint32(height)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) Close() {
	w.win.SetShouldClose(true)
}

// Poll processes pending events and returns the keys pressed since the
// previous call.
func (w *Window) Poll() []Key {
	w.pressed = w.pressed[:0]
	glfw.PollEvents()

	return w.pressed
}

func (w *Window) Terminate() {
	w.prof.Stop()
	w.win.Destroy()
	glfw.Terminate()
}
