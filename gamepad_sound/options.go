package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/sdlgamepad/examples/gamepad"
	"github.com/sdlgamepad/examples/render"
)

var ErrHelp = errors.New("help requested")

type Options struct {
	AssetDir string
	// FontPath empty means the built in Go Regular face.
	FontPath string
	FontSize float64
	DeadZone int
}

func DefaultOptions() Options {
	return Options{
		AssetDir: "assets",
		FontSize: 28,
		DeadZone: gamepad.DeadZone,
	}
}

func ProcessCommandLineArgs(args []string) (Options, error) {
	options := DefaultOptions()

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			return options, ErrHelp
		}

		name, value, found := strings.Cut(arg, "=")
		if !found {
			return options, errors.Newf("unrecognized option: %s", arg)
		}

		switch name {
		case "--assets":
			if value == "" {
				return options, errors.New("--assets needs a directory")
			}
			options.AssetDir = value
		case "--font":
			options.FontPath = value
		case "--font-size":
			size, err := strconv.ParseFloat(value, 64)
			if err != nil || size <= 0 {
				return options, errors.Newf("invalid font size: %s", value)
			}
			options.FontSize = size
		case "--dead-zone":
			deadZone, err := strconv.Atoi(value)
			if err != nil || deadZone < 0 || deadZone > 32767 {
				return options, errors.Newf("invalid dead zone: %s", value)
			}
			options.DeadZone = deadZone
		default:
			return options, errors.Newf("unrecognized option: %s", arg)
		}
	}

	return options, nil
}

func printUsage() {
	fmt.Println("\nOptions")
	fmt.Println("\t--assets=DIR")
	fmt.Println("\t\tDirectory holding arrow.png and the .wav files (default assets)")
	fmt.Println("\t--font=PATH")
	fmt.Println("\t\tTrueType font for the controller name (default: built in Go Regular)")
	fmt.Println("\t--font-size=N")
	fmt.Println("\t\tFont size in points (default 28)")
	fmt.Println("\t--dead-zone=N")
	fmt.Println("\t\tAnalog stick dead zone, 0-32767 (default 8000)")
}

func (o Options) openFont() (*render.Font, error) {
	if o.FontPath == "" {
		return render.ParseFont(goregular.TTF, o.FontSize)
	}
	return render.OpenFont(o.FontPath, o.FontSize)
}
