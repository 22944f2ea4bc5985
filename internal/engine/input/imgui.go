package input

import (
	"github.com/AllenDang/cimgui-go/imgui"
)

var imguiKeys = [keyCount]imgui.Key{
	KeyW:     imgui.KeyW,
	KeyA:     imgui.KeyA,
	KeyS:     imgui.KeyS,
	KeyD:     imgui.KeyD,
	KeyR:     imgui.KeyR,
	KeyF:     imgui.KeyF,
	KeyUp:    imgui.KeyUpArrow,
	KeyDown:  imgui.KeyDownArrow,
	KeyLeft:  imgui.KeyLeftArrow,
	KeyRight: imgui.KeyRightArrow,
	KeyF12:   imgui.KeyF12,
}

// ImGui reads input from the current Dear ImGui frame.
type ImGui struct{}

func (ImGui) KeyDown(k Key) bool {
	return imgui.IsKeyDown(imguiKeys[k])
}

func (ImGui) KeyPressed(k Key) bool {
	return imgui.IsKeyChordPressed(imgui.KeyChord(imguiKeys[k]))
}

func (ImGui) ButtonDown(b Button) bool {
	if b == ButtonRight {
		return imgui.IsMouseDown(imgui.MouseButtonRight)
	}
	return imgui.IsMouseDown(imgui.MouseButtonLeft)
}

func (ImGui) Pointer() (x, y float32, ok bool) {
	p := imgui.MousePos()
	return p.X, p.Y, imgui.IsMousePosValid()
}

func (ImGui) Wheel() float32 {
	return imgui.CurrentIO().MouseWheel()
}

// Captured is true while a widget is in use or the pointer is over a panel.
// The scene background window takes no input, so it never counts.
func (ImGui) Captured() bool {
	return imgui.IsAnyItemActive() || imgui.IsWindowHoveredV(imgui.HoveredFlagsAnyWindow)
}
