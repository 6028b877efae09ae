package main

import (
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/extra/devices/screen"
	"periph.io/x/host/v3"

	"github.com/coreman2200/ledspi/internal/anim"
	"github.com/coreman2200/ledspi/internal/config"
	"github.com/coreman2200/ledspi/ws2812"
)

func main() {
	var (
		configPath = flag.String("config", "ledspi.yaml", "path to config file")
		pixels     = flag.Int("pixels", 30, "LEDs on the strip")
		fps        = flag.Int("fps", 30, "refresh rate")
		pattern    = flag.String("pattern", "rainbow", "pattern: rainbow | chase | solid")
		brightness = flag.Float64("brightness", 0.8, "global brightness 0..1")
		dev        = flag.String("dev", "", "SPI port, empty for the first one")
		speedHz    = flag.Int("speed-hz", 2500000, "SPI clock in Hz")
		idleHigh   = flag.Bool("mosi-idle-high", false, "extra idle padding for MOSI-idle-high peripherals")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// config.yaml overrides flags where it sets a value.
	if cfg, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		if cfg.Pixels > 0 {
			*pixels = cfg.Pixels
		}
		if cfg.FPS > 0 {
			*fps = cfg.FPS
		}
		if cfg.Brightness > 0 {
			*brightness = cfg.Brightness
		}
		if cfg.Pattern != "" {
			*pattern = cfg.Pattern
		}
		if cfg.SPI.Dev != "" {
			*dev = cfg.SPI.Dev
		}
		if cfg.SPI.SpeedHz > 0 {
			*speedHz = cfg.SPI.SpeedHz
		}
		if cfg.SPI.MOSIIdleHigh {
			*idleHigh = true
		}
	}

	frame, ok := anim.ByName(*pattern)
	if !ok {
		log.Fatal().Str("pattern", *pattern).Msg("unknown pattern")
	}

	drawer, err := openStrip(*dev, *pixels, *speedHz, *idleHigh)
	if err != nil {
		log.Fatal().Err(err).Msg("strip init failed")
	}
	log.Info().Stringer("target", drawer).Int("pixels", *pixels).Int("fps", *fps).Msg("running")

	run(drawer, frame, *pixels, *fps, *brightness)
}

// openStrip binds the strip to the first usable SPI port, or falls back
// to a terminal preview so patterns can be tried off-hardware.
func openStrip(dev string, pixels, speedHz int, idleHigh bool) (display.Drawer, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	port, err := spireg.Open(dev)
	if err != nil {
		log.Warn().Err(err).Msg("no SPI port, previewing on the console")
		return screen.New(pixels), nil
	}
	conn, err := ws2812.NewSPIConn(port, physic.Frequency(speedHz)*physic.Hertz)
	if err != nil {
		return nil, err
	}
	strip, err := ws2812.NewPrerendered(conn, &ws2812.Opts{
		NumPixels:    pixels,
		MOSIIdleHigh: idleHigh,
	})
	if err != nil {
		return nil, err
	}
	return &ws2812.Display{Prerendered: strip}, nil
}

func run(d display.Drawer, frame anim.Frame, pixels, fps int, brightness float64) {
	colors := make([]ws2812.Color, pixels)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	// trap Ctrl+C so the strip is blanked on the way out
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)

	start := time.Now()
	for {
		select {
		case <-ticker.C:
			frame(colors, time.Since(start))
			anim.Scale(colors, brightness)
			if err := d.Draw(d.Bounds(), anim.Image(colors), image.Point{}); err != nil {
				log.Error().Err(err).Msg("frame write failed")
				return
			}
		case sig := <-c:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			if err := d.Halt(); err != nil {
				log.Error().Err(err).Msg("halt failed")
			}
			return
		}
	}
}
