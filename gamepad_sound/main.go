package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/mix"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/sync/errgroup"

	"github.com/sdlgamepad/examples/audio"
	"github.com/sdlgamepad/examples/audio/sdlaudio"
	"github.com/sdlgamepad/examples/gamepad"
	"github.com/sdlgamepad/examples/render"
	"github.com/sdlgamepad/examples/render/sdlrender"
)

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	ArrowFile = "arrow.png"

	RumbleStrength = 0.75
	RumbleLength   = 500 * time.Millisecond
)

type GamepadApplication struct {
	options Options

	window    *sdl.Window
	renderer  *sdl.Renderer
	device    *sdlrender.Device
	audioOpen bool

	controller *sdl.GameController
	haptic     *sdl.Haptic

	font      *render.Font
	arrow     *render.Texture
	nameLabel *render.Texture

	mixer   *sdlaudio.Mixer
	jukebox *audio.Jukebox

	direction gamepad.Direction

	frames    int
	frameTime time.Duration
}

func (app *GamepadApplication) Run() error {
	defer app.cleanup()

	err := app.initWindow()
	if err != nil {
		return err
	}

	app.initController()

	err = app.loadMedia()
	if err != nil {
		return err
	}

	err = app.loadSounds()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *GamepadApplication) initWindow() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC | sdl.INIT_AUDIO); err != nil {
		return errors.Wrap(err, "SDL could not initialize")
	}

	if !sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "1") {
		log.Println("Warning: Linear texture filtering not enabled!")
	}

	window, err := sdl.CreateWindow("SDL Tutorial", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, ScreenWidth, ScreenHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return errors.Wrap(err, "window could not be created")
	}
	app.window = window

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return errors.Wrap(err, "renderer could not be created")
	}
	app.renderer = renderer
	app.device = sdlrender.NewDevice(renderer)

	err = renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF)
	if err != nil {
		return err
	}

	err = mix.OpenAudio(44100, mix.DEFAULT_FORMAT, 2, 2048)
	if err != nil {
		return errors.Wrap(err, "SDL_mixer could not initialize")
	}
	app.audioOpen = true

	return nil
}

// initController opens the first controller and its haptic device. Neither
// is required to run.
func (app *GamepadApplication) initController() {
	if sdl.NumJoysticks() < 1 {
		log.Println("Warning: No joysticks connected!")
	} else {
		app.controller = sdl.GameControllerOpen(0)
		if app.controller == nil {
			log.Printf("Warning: Unable to open game controller! SDL Error: %v\n", sdl.GetError())
		} else {
			guid := sdl.JoystickGetGUIDString(app.controller.Joystick().GUID())
			id, err := uuid.Parse(guid)
			if err != nil {
				log.Printf("Opened game controller %q (GUID %s)\n", app.controller.Name(), guid)
			} else {
				log.Printf("Opened game controller %q (GUID %s)\n", app.controller.Name(), id)
			}
		}
	}

	haptic, err := sdl.HapticOpen(0)
	if err != nil {
		log.Printf("Warning: Unable to open haptic device: %v\n", err)
		return
	}
	app.haptic = haptic

	err = haptic.RumbleInit()
	if err != nil {
		log.Printf("Warning: Unable to initialize rumble: %v\n", err)
	}
}

func (app *GamepadApplication) controllerName() string {
	if app.controller == nil {
		return "No controller connected"
	}
	return app.controller.Name()
}

// loadMedia decodes the arrow and parses the font side by side, then uploads
// on this thread, which owns the renderer.
func (app *GamepadApplication) loadMedia() error {
	var arrowPixels *image.NRGBA
	var font *render.Font

	var group errgroup.Group
	group.Go(func() error {
		var err error
		arrowPixels, err = render.DecodeFile(filepath.Join(app.options.AssetDir, ArrowFile), render.DefaultColorKey)
		return err
	})
	group.Go(func() error {
		var err error
		font, err = app.options.openFont()
		if err != nil {
			log.Printf("Failed to load font: %v\n", err)
		}
		return nil
	})
	err := group.Wait()
	app.font = font
	if err != nil {
		return errors.Wrap(err, "failed to load arrow texture")
	}

	app.arrow = render.NewTexture(app.device)
	err = app.arrow.LoadFromImage(arrowPixels)
	if err != nil {
		return errors.Wrap(err, "failed to load arrow texture")
	}

	app.nameLabel = render.NewTexture(app.device)
	if app.font != nil {
		err = app.nameLabel.LoadFromRenderedText(app.font, app.controllerName(), color.Black)
		if err != nil {
			log.Printf("Failed to render text texture: %v\n", err)
		}
	}

	return nil
}

func (app *GamepadApplication) loadSounds() error {
	mixer, err := sdlaudio.Open(app.options.AssetDir)
	if err != nil {
		return errors.Wrap(err, "failed to load sounds")
	}
	app.mixer = mixer
	app.jukebox = audio.NewJukebox(mixer)
	return nil
}

func (app *GamepadApplication) mainLoop() error {
appLoop:
	for {
		frameStart := hrtime.Now()

		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				log.Printf("Game controller name: %s\n", app.controllerName())
				break appLoop
			case *sdl.ControllerButtonEvent:
				if e.Type == sdl.CONTROLLERBUTTONDOWN {
					app.buttonDown(gamepad.Button(e.Button))
				}
			case *sdl.ControllerAxisEvent:
				if app.controller != nil && e.Which == app.controller.Joystick().InstanceID() {
					app.axisMotion(gamepad.Axis(e.Axis), e.Value)
				}
			}
		}

		err := app.drawFrame()
		if err != nil {
			return err
		}

		app.frameTime += hrtime.Since(frameStart)
		app.frames++
	}

	return nil
}

func (app *GamepadApplication) buttonDown(button gamepad.Button) {
	if app.haptic != nil {
		err := app.haptic.RumblePlay(RumbleStrength, uint32(RumbleLength/time.Millisecond))
		if err != nil {
			log.Printf("Warning: Unable to rumble: %v\n", err)
		}
	}

	log.Printf("Button %s pressed!\n", button)

	err := app.jukebox.HandleButton(button)
	if err != nil {
		log.Printf("Unable to play sound for %s: %v\n", button, err)
	}
}

func (app *GamepadApplication) axisMotion(axis gamepad.Axis, value int16) {
	app.direction.Apply(axis, value, app.options.DeadZone)

	if msg := gamepad.Describe(axis, value, app.options.DeadZone); msg != "" {
		log.Println(msg)
	}
}

func (app *GamepadApplication) drawFrame() error {
	err := app.renderer.SetDrawColor(0xFF, 0xFF, 0xFF, 0xFF)
	if err != nil {
		return err
	}

	err = app.renderer.Clear()
	if err != nil {
		return err
	}

	err = app.nameLabel.Render(centered(ScreenWidth, app.nameLabel.Width()), 20)
	if err != nil {
		return err
	}

	err = app.arrow.RenderEx(
		centered(ScreenWidth, app.arrow.Width()),
		centered(ScreenHeight, app.arrow.Height()),
		nil,
		app.direction.Angle(),
		nil,
		render.FlipNone,
	)
	if err != nil {
		return err
	}

	app.renderer.Present()
	return nil
}

func centered(outer, inner int) int {
	return (outer - inner) / 2
}

func (app *GamepadApplication) cleanup() {
	if app.frames > 0 {
		log.Printf("%d frames, %v average frame time\n", app.frames, app.frameTime/time.Duration(app.frames))
	}

	if app.arrow != nil {
		if err := app.arrow.Free(); err != nil {
			log.Printf("Warning: %v\n", err)
		}
	}

	if app.nameLabel != nil {
		if err := app.nameLabel.Free(); err != nil {
			log.Printf("Warning: %v\n", err)
		}
	}

	if app.font != nil {
		app.font.Close()
	}

	if app.mixer != nil {
		app.mixer.Close()
	}

	if app.haptic != nil {
		app.haptic.Close()
	}

	if app.controller != nil {
		app.controller.Close()
	}

	if app.renderer != nil {
		app.renderer.Destroy()
	}

	if app.window != nil {
		app.window.Destroy()
	}

	if app.audioOpen {
		mix.CloseAudio()
	}

	sdl.Quit()
}

func main() {
	runtime.LockOSThread()

	options, err := ProcessCommandLineArgs(os.Args[1:])
	if errors.Is(err, ErrHelp) {
		printUsage()
		os.Exit(0)
	} else if err != nil {
		fmt.Printf("\n%v\n", err)
		fmt.Println("\nUse --help or -h for option list.")
		os.Exit(2)
	}

	app := &GamepadApplication{options: options}

	err = app.Run()
	if err != nil {
		log.Fatalf("%+v\n", err)
	}
}
