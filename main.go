package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
	"github.com/oschwald/geoip2-golang"

	"termglobe/globe"
)

// ============================================================================
// CONFIG FILE SUPPORT
// ============================================================================

type Config struct {
	Display struct {
		Quality        int  `toml:"quality"`
		RotationPeriod int  `toml:"rotation_period"`
		RefreshRate    int  `toml:"refresh_rate"`
		Monochrome     bool `toml:"monochrome"`
		NightMode      bool `toml:"night_mode"`
	} `toml:"display"`

	Features struct {
		Atmosphere    *bool `toml:"atmosphere"`
		CityLights    *bool `toml:"city_lights"`
		Clouds        *bool `toml:"clouds"`
		OceanSpecular *bool `toml:"ocean_specular"`
		PolarIce      *bool `toml:"polar_ice"`
	} `toml:"features"`

	Data struct {
		GeoJSON string `toml:"geojson"`
	} `toml:"data"`

	Markers struct {
		GeoIPDB string   `toml:"geoip_db"`
		IPs     []string `toml:"ips"`
	} `toml:"markers"`
}

func LoadConfig(path string) (*Config, error) {
	var config Config
	if path == "" {
		return &config, nil
	}
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// ============================================================================
// DEBUG LOGGING
// ============================================================================

var debugLogger *log.Logger

func debugLog(format string, v ...interface{}) {
	if debugLogger != nil {
		debugLogger.Printf(format, v...)
	}
}

// ============================================================================
// GEOIP MARKERS
// ============================================================================

// Marker is a point of interest plotted over the globe, resolved from
// an IP address through a local GeoLite2 City database.
type Marker struct {
	IP  string
	Loc globe.GeoPoint
}

func resolveMarkers(dbPath string, ips []string) ([]Marker, error) {
	db, err := geoip2.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open GeoIP database: %w", err)
	}
	defer db.Close()

	var markers []Marker
	for _, raw := range ips {
		s := strings.TrimSpace(raw)
		if s == "" {
			continue
		}
		ip := net.ParseIP(s)
		if ip == nil {
			debugLog("Marker: invalid IP %q, skipped", s)
			continue
		}
		rec, err := db.City(ip)
		if err != nil {
			debugLog("Marker: lookup failed for %s: %v", s, err)
			continue
		}
		if rec.Location.Latitude == 0 && rec.Location.Longitude == 0 {
			debugLog("Marker: no location for %s, skipped", s)
			continue
		}
		markers = append(markers, Marker{
			IP: s,
			Loc: globe.GeoPoint{
				Lat: rec.Location.Latitude,
				Lon: rec.Location.Longitude,
			},
		})
		debugLog("Marker: %s -> (%.1f, %.1f)", s, rec.Location.Latitude, rec.Location.Longitude)
	}
	return markers, nil
}

// ============================================================================
// UI STATE & CONTROLS
// ============================================================================

const (
	statusRows = 2
	markerRune = '*'
)

var markerColor = tcell.PaletteColor(196)

type uiState struct {
	mutex      sync.RWMutex
	opt        globe.Options
	rot        globe.RotationState
	paused     bool
	monochrome bool
}

func (st *uiState) snapshot() (globe.Options, float64, bool, bool) {
	st.mutex.RLock()
	defer st.mutex.RUnlock()
	return st.opt, st.rot.Angle(), st.paused, st.monochrome
}

func (st *uiState) advance(step float64) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	if !st.paused {
		st.rot.Advance(step)
	}
}

func (st *uiState) handleKey(ev *tcell.EventKey) (quit bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		st.rot.Advance(-0.15)
		return false
	case tcell.KeyRight:
		st.rot.Advance(0.15)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q', 'Q', 'x', 'X':
		return true
	case ' ':
		st.paused = !st.paused
	case 'n', 'N':
		st.opt.NightMode = !st.opt.NightMode
	case '1', '2', '3', '4':
		st.opt.Quality = int(ev.Rune() - '0')
	case 'a', 'A':
		st.opt.Atmosphere = !st.opt.Atmosphere
	case 'c', 'C':
		st.opt.Clouds = !st.opt.Clouds
	case 'l', 'L':
		st.opt.CityLights = !st.opt.CityLights
	case 's', 'S':
		st.opt.OceanSpecular = !st.opt.OceanSpecular
	case 'i', 'I':
		st.opt.PolarIce = !st.opt.PolarIce
	case 'm', 'M':
		st.monochrome = !st.monochrome
	}
	return false
}

// ============================================================================
// RENDERING TO SCREEN
// ============================================================================

func drawFrame(screen tcell.Screen, frame *globe.Frame, monochrome bool) {
	for y := 0; y < frame.Height; y++ {
		for x := 0; x < frame.Width; x++ {
			cell := frame.At(x, y)
			style := tcell.StyleDefault
			if cell.Rune != ' ' && !monochrome {
				style = style.Foreground(tcell.PaletteColor(int(cell.Color)))
			}
			screen.SetContent(x, y, cell.Rune, nil, style)
		}
	}
}

func drawMarkers(screen tcell.Screen, vp globe.Viewport, markers []Marker, theta float64) {
	style := tcell.StyleDefault.Foreground(markerColor).Bold(true)
	for _, m := range markers {
		p := globe.Rotate(globe.ToCartesian(m.Loc.Lat, m.Loc.Lon), theta)
		u, v, ok := vp.Project(p)
		if !ok {
			continue
		}
		x, y := int(u), int(v)
		if x < 0 || x >= vp.Width || y < 0 || y >= vp.Height {
			continue
		}
		screen.SetContent(x, y, markerRune, nil, style)
	}
}

func drawText(screen tcell.Screen, x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			break
		}
		screen.SetContent(col, y, r, nil, style)
		col++
	}
}

func statusLine(opt globe.Options, theta float64, paused bool, fps float64, markerCount int) string {
	mode := "Day"
	if opt.NightMode {
		mode = "Night"
	}
	q := opt.Quality
	if q < globe.MinQuality {
		q = globe.MinQuality
	} else if q > globe.MaxQuality {
		q = globe.MaxQuality
	}
	quality := [...]string{"Low", "Medium", "High", "Ultra"}[q-1]

	var features []string
	if opt.Atmosphere {
		features = append(features, "Atmo")
	}
	if opt.CityLights && opt.NightMode {
		features = append(features, "Cities")
	}
	if opt.Clouds {
		features = append(features, "Clouds")
	}
	if opt.OceanSpecular {
		features = append(features, "Specular")
	}
	if opt.PolarIce {
		features = append(features, "Ice")
	}

	state := "Playing"
	if paused {
		state = "PAUSED"
	}

	line := fmt.Sprintf(" %s | Quality: %s | Features: %s | FPS: %.1f | theta=%.0f | %s",
		mode, quality, strings.Join(features, "+"),
		fps, math.Mod(theta*180/math.Pi+360, 360), state)
	if markerCount > 0 {
		line += fmt.Sprintf(" | Markers: %d", markerCount)
	}
	return line
}

const controlsLine = " Controls: arrows=rotate | n=night | space=pause | 1-4=quality | a/c/l/s/i=features | m=mono | q=quit"

// ============================================================================
// MAIN
// ============================================================================

func showHelp() {
	fmt.Printf(`termglobe - rotating 3D globe in the terminal

DESCRIPTION:
    Renders an orthographic view of the Earth as colored braille
    glyphs, using the 2x4 dot grid inside each character for sub-cell
    resolution. Land is classified from polygon coastline data;
    lighting, polar ice, city lights, clouds, ocean specular and an
    atmosphere ring are layered on top.

USAGE:
    termglobe [OPTIONS]

OPTIONS:
    -h                Show this help message
    -d <filename>     Enable debug logging to specified file
    -s <seconds>      Full rotation period in seconds (10-300, default: 30)
    -r <milliseconds> Refresh rate in milliseconds (50-1000, default: 100)
    -q <level>        Quality level 1-4 (default: 4)
    -m                Monochrome mode
    -night            Start in night mode
    -geojson <file>   Replace built-in coastlines with a GeoJSON
                      FeatureCollection of Polygon/MultiPolygon features
    -geoip <file>     GeoLite2 City database for -mark lookups
    -mark <ips>       Comma-separated IPs to plot as markers
    -config <file>    Load settings from a TOML config file
    -atmosphere, -clouds, -lights, -specular, -ice
                      Feature toggles (default: all on)

INTERACTIVE CONTROLS:
    Space     - Pause/resume rotation
    Arrows    - Rotate manually
    N         - Toggle day/night mode
    1-4       - Quality level
    A/C/L/S/I - Toggle atmosphere/clouds/city lights/specular/ice
    M         - Toggle monochrome
    Q/X/Esc   - Exit

EXAMPLES:
    # Night side with city lights
    ./termglobe -night

    # High-resolution coastlines and two markers
    ./termglobe -geojson earth.geojson -geoip GeoLite2-City.mmdb -mark 8.8.8.8,1.1.1.1
`)
}

func main() {
	var debugFile = flag.String("d", "", "Debug log filename")
	var showHelpFlag = flag.Bool("h", false, "Show help")
	var rotationPeriod = flag.Int("s", 30, "Full rotation period in seconds")
	var refreshRate = flag.Int("r", 100, "Refresh rate in milliseconds")
	var quality = flag.Int("q", globe.MaxQuality, "Quality level 1-4")
	var monochrome = flag.Bool("m", false, "Monochrome mode")
	var nightMode = flag.Bool("night", false, "Start in night mode")
	var atmosphere = flag.Bool("atmosphere", true, "Atmosphere glow ring")
	var clouds = flag.Bool("clouds", true, "Cloud layer")
	var cityLights = flag.Bool("lights", true, "City lights on the night side")
	var specular = flag.Bool("specular", true, "Ocean specular highlight")
	var polarIce = flag.Bool("ice", true, "Polar ice caps")
	var geojsonFile = flag.String("geojson", "", "GeoJSON coastline file")
	var geoipFile = flag.String("geoip", "", "GeoLite2 City database")
	var markIPs = flag.String("mark", "", "Comma-separated IPs to mark")
	var configFile = flag.String("config", "", "TOML config file")
	flag.Parse()

	if *showHelpFlag {
		showHelp()
		os.Exit(0)
	}

	config, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Config file fills in anything the flags left at defaults.
	if config.Display.Quality != 0 && *quality == globe.MaxQuality {
		*quality = config.Display.Quality
	}
	if config.Display.RotationPeriod != 0 && *rotationPeriod == 30 {
		*rotationPeriod = config.Display.RotationPeriod
	}
	if config.Display.RefreshRate != 0 && *refreshRate == 100 {
		*refreshRate = config.Display.RefreshRate
	}
	if config.Display.Monochrome {
		*monochrome = true
	}
	if config.Display.NightMode {
		*nightMode = true
	}
	if config.Features.Atmosphere != nil {
		*atmosphere = *config.Features.Atmosphere
	}
	if config.Features.CityLights != nil {
		*cityLights = *config.Features.CityLights
	}
	if config.Features.Clouds != nil {
		*clouds = *config.Features.Clouds
	}
	if config.Features.OceanSpecular != nil {
		*specular = *config.Features.OceanSpecular
	}
	if config.Features.PolarIce != nil {
		*polarIce = *config.Features.PolarIce
	}
	if config.Data.GeoJSON != "" && *geojsonFile == "" {
		*geojsonFile = config.Data.GeoJSON
	}
	if config.Markers.GeoIPDB != "" && *geoipFile == "" {
		*geoipFile = config.Markers.GeoIPDB
	}
	if len(config.Markers.IPs) > 0 && *markIPs == "" {
		*markIPs = strings.Join(config.Markers.IPs, ",")
	}

	if *rotationPeriod < 10 || *rotationPeriod > 300 {
		fmt.Fprintf(os.Stderr, "Error: Rotation period must be between 10 and 300 seconds\n")
		os.Exit(1)
	}
	if *refreshRate < 50 || *refreshRate > 1000 {
		fmt.Fprintf(os.Stderr, "Error: Refresh rate must be between 50 and 1000 milliseconds\n")
		os.Exit(1)
	}

	if *debugFile != "" {
		file, err := os.OpenFile(*debugFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		debugLogger = log.New(file, "", log.LstdFlags|log.Lmicroseconds)
		debugLog("termglobe starting")
	}

	// Boundary data: built-in coastlines unless a GeoJSON file replaces
	// them. Built once, read-only for the rest of the process.
	boundaries := globe.Boundaries()
	if *geojsonFile != "" {
		loaded, err := globe.LoadBoundaries(*geojsonFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading coastlines: %v\n", err)
			os.Exit(1)
		}
		boundaries = loaded
		debugLog("Coastlines: %d boundaries from %s", len(loaded), *geojsonFile)
	}
	renderer := globe.NewRenderer(globe.BuildLandLookup(boundaries))

	// Optional GeoIP markers.
	var markers []Marker
	if *markIPs != "" {
		if *geoipFile == "" {
			fmt.Fprintf(os.Stderr, "Error: -mark requires -geoip\n")
			os.Exit(1)
		}
		markers, err = resolveMarkers(*geoipFile, strings.Split(*markIPs, ","))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving markers: %v\n", err)
			os.Exit(1)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	state := &uiState{
		opt: globe.Options{
			Quality:       *quality,
			Atmosphere:    *atmosphere,
			CityLights:    *cityLights,
			Clouds:        *clouds,
			OceanSpecular: *specular,
			PolarIce:      *polarIce,
			NightMode:     *nightMode,
		},
		monochrome: *monochrome,
	}

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if state.handleKey(ev) {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	refresh := time.Duration(*refreshRate) * time.Millisecond
	step := 2 * math.Pi * refresh.Seconds() / float64(*rotationPeriod)
	startTime := time.Now()
	frameCount := 0
	warnedTooSmall := false

	statusStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	for {
		select {
		case <-quit:
			debugLog("Shutting down")
			return
		default:
		}

		state.advance(step)
		opt, theta, paused, mono := state.snapshot()

		width, height := screen.Size()
		frame, err := renderer.Render(opt, width, height-statusRows, theta)
		if err != nil {
			// Report once instead of retrying a hopeless size every tick.
			if !warnedTooSmall {
				debugLog("Render: %v (%dx%d)", err, width, height)
				warnedTooSmall = true
			}
			screen.Clear()
			drawText(screen, 0, 0, width, "terminal too small", statusStyle)
			screen.Show()
			time.Sleep(refresh)
			continue
		}
		warnedTooSmall = false

		drawFrame(screen, frame, mono)
		if len(markers) > 0 {
			drawMarkers(screen, globe.NewViewport(frame.Width, frame.Height), markers, theta)
		}

		frameCount++
		fps := float64(frameCount) / (time.Since(startTime).Seconds() + 0.001)
		status := statusLine(opt, theta, paused, fps, len(markers))
		drawText(screen, 0, height-2, width, padLine(status, width), statusStyle)
		drawText(screen, 0, height-1, width, padLine(controlsLine, width), helpStyle)

		screen.Show()
		time.Sleep(refresh)
	}
}

func padLine(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
