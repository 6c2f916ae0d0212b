// Scene preview tool - top-down view of the procedural column layout with
// sliders for the generator parameters.
//
// Usage: go run ./cmd/scenepreview [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pthm-cable/gust/config"
	"github.com/pthm-cable/gust/scene"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(windowWidth, windowHeight, "Scene Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := cfg.Scene
	defaults := cfg.Scene
	seed := float32(12345)
	origin := cfg.WorldOffset()
	extent := mgl32.Vec3{float32(cfg.Grid.Extent[0]), float32(cfg.Grid.Extent[1]), float32(cfg.Grid.Extent[2])}

	var boxes []scene.Box
	needsRegen := true
	status := ""

	for !rl.WindowShouldClose() {
		if needsRegen {
			boxes = generate(params, int64(seed), origin, extent)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawLayout(boxes, origin, extent)
		rl.DrawText(fmt.Sprintf("Columns placed: %d", len(boxes)), 15, previewSize+25, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)
		rl.DrawText("Scene Generator", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		columns := slider(panelX, &panelY, "Columns per side", float32(params.Columns), 1, 16, "%.0f")
		if int(columns) != params.Columns {
			params.Columns = int(columns)
			needsRegen = true
		}
		if v := slider(panelX, &panelY, "Fill (share of slots)", float32(params.Fill), 0, 1, "%.2f"); v != float32(params.Fill) {
			params.Fill = float64(v)
			needsRegen = true
		}
		if v := slider(panelX, &panelY, "Max height (share of grid)", float32(params.MaxHeight), 0, 1, "%.2f"); v != float32(params.MaxHeight) {
			params.MaxHeight = float64(v)
			needsRegen = true
		}
		if v := slider(panelX, &panelY, "Noise scale", float32(params.NoiseScale), 0.05, 2, "%.2f"); v != float32(params.NoiseScale) {
			params.NoiseScale = float64(v)
			needsRegen = true
		}
		if v := slider(panelX, &panelY, "Seed", seed, 0, 99999, "%.0f"); float32(int64(v)) != seed {
			seed = float32(int64(v))
			needsRegen = true
		}
		panelY += 10

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = float32(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaults
			seed = 12345
			needsRegen = true
		}
		panelY += 55

		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		yaml := sceneYAML(params)
		rl.DrawText(yaml, int32(panelX), int32(panelY), 14, rl.Gray)

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), windowHeight-30, 12, rl.LightGray)
		if status != "" {
			rl.DrawText(status, int32(panelX), windowHeight-50, 12, rl.Gray)
		}
		if rl.IsKeyPressed(rl.KeyC) {
			if err := clipboard.WriteAll(yaml); err != nil {
				status = "clipboard: " + err.Error()
			} else {
				status = "copied"
			}
		}

		rl.EndDrawing()
	}
}

func generate(params config.SceneConfig, seed int64, origin, extent mgl32.Vec3) []scene.Box {
	s := scene.New()
	s.Generate(params, seed, origin, extent)
	return s.Boxes()
}

// drawLayout draws the columns seen from above, shaded by height.
func drawLayout(boxes []scene.Box, origin, extent mgl32.Vec3) {
	rl.DrawRectangle(10, 10, previewSize, previewSize, rl.Color{R: 235, G: 238, B: 242, A: 255})
	sx := previewSize / extent.X()
	sz := previewSize / extent.Z()
	for _, b := range boxes {
		t := (b.Max.Y() - b.Min.Y()) / extent.Y()
		shade := uint8(200 - 160*min(t, 1))
		rl.DrawRectangleRec(rl.Rectangle{
			X:      10 + (b.Min.X()-origin.X())*sx,
			Y:      10 + (b.Min.Z()-origin.Z())*sz,
			Width:  (b.Max.X() - b.Min.X()) * sx,
			Height: (b.Max.Z() - b.Min.Z()) * sz,
		}, rl.Color{R: shade, G: shade, B: 255, A: 255})
	}
	rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)
}

func slider(x float32, y *float32, label string, value, lo, hi float32, format string) float32 {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, next), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return next
}

func sceneYAML(p config.SceneConfig) string {
	return fmt.Sprintf(`scene:
  generate: true
  columns: %d
  fill: %.2f
  max_height: %.2f
  noise_scale: %.2f`, p.Columns, p.Fill, p.MaxHeight, p.NoiseScale)
}
