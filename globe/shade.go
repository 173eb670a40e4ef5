package globe

// Color is an index into the terminal's 256-color palette.
type Color uint8

// Category classifies what a sample represents. Order is display
// priority: when samples of different categories land in the same glyph
// cell, the highest value picks the cell color.
type Category uint8

const (
	CategoryOcean Category = iota
	CategoryLand
	CategorySpecular
	CategoryCloud
	CategoryIce
	CategoryCityLight
	CategoryAtmosphere
)

// Intensity quantization.
const bandCount = 5

// Five-band palettes, dimmest first. Night palettes are their own
// colors, not dimmed day colors.
var (
	landDayPalette   = [bandCount]Color{22, 28, 34, 40, 46}
	landNightPalette = [bandCount]Color{58, 94, 130, 136, 142}

	oceanDayPalette   = [bandCount]Color{17, 18, 19, 24, 32}
	oceanNightPalette = [bandCount]Color{17, 53, 54, 60, 61}
)

const (
	iceColor        Color = 231
	cityLightColor  Color = 226
	cloudColor      Color = 255
	atmosphereColor Color = 39
	specularColor   Color = 45
)

// Ice cap latitude thresholds. The north cap starts higher than the
// south cap extends, mirroring the real asymmetry.
const (
	northIceLat = 70.0
	southIceLat = -60.0
)

// City lights only show where the surface is this dark.
const cityNightMax = 0.3

// Shader resolves per-sample lighting and category for one frame's
// options. It holds no per-frame mutable state.
type Shader struct {
	look  *LandLookup
	opt   Options
	light Vec3
	half  Vec3 // light/view half vector for the specular cone
}

// NewShader fixes the light direction for a frame. Night mode lights
// the globe from the opposite side, so the hemisphere facing the viewer
// is mostly dark.
func NewShader(look *LandLookup, opt Options) *Shader {
	light := Vec3{X: 0.7, Y: 0.3, Z: 0.6}
	if opt.NightMode {
		light.X, light.Y = -light.X, -light.Y
	}
	light = light.Normalize()
	// The viewer looks down -y, so the view direction is +y.
	half := Vec3{X: light.X, Y: light.Y + 1, Z: light.Z}.Normalize()
	return &Shader{look: look, opt: opt, light: light, half: half}
}

// Intensity is the Lambertian term for a rotated surface direction.
func (s *Shader) Intensity(p Vec3) float64 {
	d := p.Dot(s.light)
	if d < 0 {
		return 0
	}
	return d
}

// Surface classifies and shades a sample from the surface grid.
// Samples with zero returned intensity are on the unlit hemisphere and
// contribute no dots.
func (s *Shader) Surface(pt GeoPoint, p Vec3) (Category, Color, float64) {
	intensity := s.Intensity(p)
	if s.opt.NightMode {
		intensity -= 0.2
		if intensity < 0 {
			intensity = 0
		}
	}
	band := Band(intensity)

	if s.opt.PolarIce && (pt.Lat > northIceLat || pt.Lat < southIceLat) {
		boosted := intensity * 1.5
		if boosted > 1 {
			boosted = 1
		}
		return CategoryIce, iceColor, boosted
	}

	if s.look.Query(pt.Lat, pt.Lon) {
		if s.opt.NightMode {
			return CategoryLand, landNightPalette[band], intensity
		}
		return CategoryLand, landDayPalette[band], intensity
	}

	if s.opt.OceanSpecular && s.specular(p) {
		return CategorySpecular, specularColor, intensity
	}
	if s.opt.NightMode {
		return CategoryOcean, oceanNightPalette[band], intensity
	}
	return CategoryOcean, oceanDayPalette[band], intensity
}

// specular tests whether the sample direction sits inside the tight
// highlight cone around the light/view half vector.
func (s *Shader) specular(p Vec3) bool {
	return p.Dot(s.half) > 0.97
}

// CityLight shades a city sample. Cities only glow in night mode, on
// the dark side of the terminator. The glow intensity is fixed rather
// than lit; a city is its own light source.
func (s *Shader) CityLight(p Vec3) (Color, float64, bool) {
	if !s.opt.CityLights || !s.opt.NightMode {
		return 0, 0, false
	}
	if s.Intensity(p) >= cityNightMax {
		return 0, 0, false
	}
	return cityLightColor, 0.8, true
}

// Cloud shades a cloud-layer sample. Clouds pick up surface lighting at
// reduced strength, independent of what is underneath them.
func (s *Shader) Cloud(p Vec3) (Color, float64) {
	return cloudColor, s.Intensity(p) * 0.6
}

// Band quantizes an intensity into one of bandCount palette steps.
// Monotonic in intensity; out-of-range values clamp.
func Band(intensity float64) int {
	b := int(intensity * bandCount)
	if b < 0 {
		return 0
	}
	if b >= bandCount {
		return bandCount - 1
	}
	return b
}
