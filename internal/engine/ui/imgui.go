package ui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
)

// Draw lays out the panel for this frame. Slider edits are written through
// Control.Set immediately.
func (p *Panel) Draw() {
	if !p.Visible {
		return
	}

	viewport := imgui.MainViewport()
	workSize := viewport.WorkSize()
	imgui.SetNextWindowPosV(imgui.NewVec2(workSize.X-290, 10), imgui.CondFirstUseEver, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(280, 0), imgui.CondFirstUseEver)
	imgui.SetNextWindowBgAlpha(0.85)

	if imgui.BeginV(p.Title, &p.Visible, imgui.WindowFlagsAlwaysAutoResize) {
		for _, f := range p.Folders {
			imgui.SetNextItemOpenV(f.Open, imgui.CondOnce)
			open := imgui.TreeNodeExStrV(f.Name, imgui.TreeNodeFlagsNone)
			f.Open = open
			if !open {
				continue
			}
			for _, c := range f.Controls {
				v := c.Get()
				if imgui.SliderFloatV(c.Label+"##"+f.Name, &v, c.Min, c.Max, "%.2f", imgui.SliderFlagsNone) {
					c.Set(v)
				}
			}
			imgui.TreePop()
		}
	}
	imgui.End()
}

// DrawBackground fills the viewport with a rendered scene texture.
func DrawBackground(textureID uint32) {
	if textureID == 0 {
		return
	}

	viewport := imgui.MainViewport()
	pos := viewport.Pos()
	size := viewport.Size()

	imgui.SetNextWindowPos(pos)
	imgui.SetNextWindowSize(size)

	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoScrollbar |
		imgui.WindowFlagsNoScrollWithMouse | imgui.WindowFlagsNoBringToFrontOnFocus |
		imgui.WindowFlagsNoInputs

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.NewVec2(0, 0))
	if imgui.BeginV("##Scene", nil, flags) {
		texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
		imgui.ImageV(*texRef, size, imgui.NewVec2(0, 1), imgui.NewVec2(1, 0))
	}
	imgui.End()
	imgui.PopStyleVar()
}

// DrawFPS draws the frame counter in the top-left corner.
func DrawFPS(fps float64, frameTime time.Duration) {
	imgui.SetNextWindowPos(imgui.NewVec2(10, 10))
	imgui.SetNextWindowBgAlpha(0.5)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("##FPS", nil, flags) {
		imgui.Text(FormatFPS(fps, frameTime))
	}
	imgui.End()
}

// DrawToast draws a short message centered near the bottom edge.
func DrawToast(msg string) {
	if msg == "" {
		return
	}
	size := imgui.MainViewport().WorkSize()
	msgWidth := float32(320)
	imgui.SetNextWindowPos(imgui.NewVec2((size.X-msgWidth)/2, size.Y-60))
	imgui.SetNextWindowSize(imgui.NewVec2(msgWidth, 0))
	imgui.SetNextWindowBgAlpha(0.8)
	flags := imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoResize |
		imgui.WindowFlagsNoMove | imgui.WindowFlagsNoInputs |
		imgui.WindowFlagsAlwaysAutoResize
	if imgui.BeginV("##Toast", nil, flags) {
		imgui.TextColored(imgui.NewVec4(0.2, 1.0, 0.2, 1.0), msg)
	}
	imgui.End()
}

// FormatFPS renders the overlay text.
func FormatFPS(fps float64, frameTime time.Duration) string {
	return fmt.Sprintf("FPS: %.0f (%.2fms)", fps, float64(frameTime.Microseconds())/1000)
}
