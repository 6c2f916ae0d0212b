package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/gust/config"
)

// Generate adds noise-driven columns standing on the floor of the volume
// [origin, origin+extent]. Returns the number of columns added.
func (s *Scene) Generate(cfg config.SceneConfig, seed int64, origin, extent mgl32.Vec3) int {
	if cfg.Columns < 1 || cfg.Fill <= 0 {
		return 0
	}
	noise := opensimplex.NewNormalized(seed)
	threshold := 1 - cfg.Fill

	slotX := extent.X() / float32(cfg.Columns)
	slotZ := extent.Z() / float32(cfg.Columns)
	added := 0
	for i := 0; i < cfg.Columns; i++ {
		for j := 0; j < cfg.Columns; j++ {
			n := noise.Eval2(float64(i)*cfg.NoiseScale, float64(j)*cfg.NoiseScale)
			if n < threshold {
				continue
			}
			// Taller columns where the noise peaks.
			t := (n - threshold) / cfg.Fill
			height := float32(t*cfg.MaxHeight) * extent.Y()
			if height <= 0 {
				continue
			}
			center := origin.Add(mgl32.Vec3{
				(float32(i) + 0.5) * slotX,
				height * 0.5,
				(float32(j) + 0.5) * slotZ,
			})
			half := mgl32.Vec3{slotX * 0.25, height * 0.5, slotZ * 0.25}
			s.AddBox(center, half)
			added++
		}
	}
	return added
}
