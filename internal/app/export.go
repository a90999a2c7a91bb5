package app

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sqweek/dialog"
	imgclip "golang.design/x/clipboard"
)

var errNoFrame = errors.New("no frame presented yet")

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG writes img to path as a PNG file.
func WritePNG(path string, img image.Image) error {
	data, err := encodePNG(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// saveFrameDialog asks for a destination and writes the current frame
// there, returning the file name.
func (a *App) saveFrameDialog() (string, error) {
	snap := a.chain.Snapshot()
	if snap == nil {
		return "", errNoFrame
	}
	path, err := dialog.File().Filter("PNG image", "png").Title("Save frame").Save()
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", errors.New("no file selected")
	}
	path = filepath.Clean(path)
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if err := WritePNG(path, snap); err != nil {
		return "", err
	}
	return filepath.Base(path), nil
}

func (a *App) copyFrame() error {
	snap := a.chain.Snapshot()
	if snap == nil {
		return errNoFrame
	}
	a.imageClipOnce.Do(func() {
		a.imageClipErr = imgclip.Init()
	})
	if a.imageClipErr != nil {
		return fmt.Errorf("image clipboard unavailable: %w", a.imageClipErr)
	}
	data, err := encodePNG(snap)
	if err != nil {
		return err
	}
	imgclip.Write(imgclip.FmtImage, data)
	return nil
}

func (a *App) copyStats() error {
	return clipboard.WriteAll(a.statsText())
}

// statsText is the plain-text report placed on the clipboard.
func (a *App) statsText() string {
	stats := a.loop.Stats()
	return fmt.Sprintf("mode=%s angle=%.4f fps=%.1f frames=%d presented=%d",
		strings.ToLower(a.modeName()), a.state.Angle(), stats.FPS(), stats.Frames(), a.chain.Presented())
}
