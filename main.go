package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"runtime"

	"fdialog/dialog"
	"fdialog/storage"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

// Demo harness for the dialog package. Keys 1-4 open the individual
// dialogs; the last outcome is printed on screen and logged.
type Demo struct {
	browser *dialog.FileBrowserDialog
	confirm *dialog.ConfirmationDialog

	touchMode bool
	scale     float64
	startPath string

	lastOutcome string
}

func NewDemo(touchMode bool, scale float64, startPath string) *Demo {
	d := &Demo{
		browser:     dialog.NewFileBrowserDialog(),
		confirm:     dialog.NewConfirmationDialog(),
		touchMode:   touchMode,
		scale:       scale,
		startPath:   startPath,
		lastOutcome: "No dialog shown yet",
	}

	settings := storage.NewSettings()
	d.browser.SetPathMemory(dialog.NewPathMemory(settings))

	d.browser.SetOnFileSelected(func(path string) {
		d.lastOutcome = "Selected: " + path
		log.Printf("[DEMO] Selected %s", path)
	})
	d.browser.SetOnCancelled(func() {
		d.lastOutcome = "Cancelled"
		log.Printf("[DEMO] Cancelled")
	})
	d.confirm.SetOnResult(func(result dialog.Button) {
		d.lastOutcome = "Answered: " + result.Label()
		log.Printf("[DEMO] Answered %s", result.Label())
	})

	return d
}

func (d *Demo) demoFilters() []dialog.FileFilter {
	return []dialog.FileFilter{
		{Description: "Text Files", Extensions: "*.txt;*.md"},
		{Description: "Go Files", Extensions: "*.go"},
		{Description: "All Files", Extensions: "*.*"},
	}
}

func (d *Demo) Update() error {
	if d.browser.IsOpen() || d.confirm.IsShown() {
		return nil
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		d.browser.Open(dialog.DialogConfig{
			Mode:              dialog.ModeOpen,
			InitialPath:       d.startPath,
			Filters:           d.demoFilters(),
			AllowCreateFolder: true,
			TouchMode:         d.touchMode,
			Scale:             d.scale,
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		d.browser.Open(dialog.DialogConfig{
			Mode:              dialog.ModeSave,
			InitialPath:       d.startPath,
			InitialFilename:   "untitled.txt",
			Filters:           d.demoFilters(),
			AllowCreateFolder: true,
			TouchMode:         d.touchMode,
			Scale:             d.scale,
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		d.browser.Open(dialog.DialogConfig{
			Mode:              dialog.ModeSelectFolder,
			InitialPath:       d.startPath,
			AllowCreateFolder: true,
			TouchMode:         d.touchMode,
			Scale:             d.scale,
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit4):
		d.confirm.Show(dialog.ConfirmationConfig{
			Title:         "Unsaved Changes",
			Message:       "The document has unsaved changes. Save before closing?",
			DetailMessage: "Unsaved changes will be lost.",
			Buttons:       dialog.ButtonsSaveDontSaveCancel(),
			DefaultButton: dialog.ButtonSave,
			Icon:          dialog.IconWarning,
			TouchMode:     d.touchMode,
			Scale:         d.scale,
		})
	}

	return nil
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	ebitenutil.DebugPrintAt(screen, "1: Open File   2: Save File   3: Select Folder   4: Confirmation", 20, 20)
	ebitenutil.DebugPrintAt(screen, d.lastOutcome, 20, 40)

	if d.browser.IsOpen() {
		d.browser.Render(screen)
	}
	if d.confirm.IsShown() {
		d.confirm.Render(screen)
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	var touchMode bool
	var scale float64
	var startPath string
	flag.BoolVar(&touchMode, "touch", false, "Use touch-friendly sizing and single-tap activation")
	flag.Float64Var(&scale, "scale", 1.0, "UI scale factor")
	flag.StringVar(&startPath, "path", "", "Initial directory for the file dialogs")
	flag.Parse()

	if runtime.GOARCH != "wasm" && runtime.GOOS != "js" {
		if err := clipboard.Init(); err != nil {
			fmt.Println("Clipboard unavailable:", err)
		}
	}

	ebiten.SetWindowTitle("File Dialog Demo")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(1024, 640)

	if err := ebiten.RunGame(NewDemo(touchMode, scale, startPath)); err != nil {
		panic(err)
	}
}
