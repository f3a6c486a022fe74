package extract

import (
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	// Decoders for the formats pdfcpu writes extracted images in.
	_ "image/jpeg"
	_ "golang.org/x/image/tiff"
)

// extractDiagram pulls the embedded raster images off page one, keeps the
// largest by pixel area (the product drawing on the observed datasheets),
// and writes it as {model}.png under outDir. Re-running on the same
// document overwrites the same path. Every failure mode (no images, no
// model name, undecodable image data) degrades to an empty path with a
// log line; only the caller's fatal open errors abort a document.
func extractDiagram(pdfPath, modelName, outDir string, logger *slog.Logger) string {
	if modelName == "" {
		return ""
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		logger.Warn("cannot create diagrams directory", "dir", outDir, "error", err)
		return ""
	}

	scratch, err := os.MkdirTemp("", "relayspec-images-*")
	if err != nil {
		logger.Warn("cannot create image scratch directory", "error", err)
		return ""
	}
	defer os.RemoveAll(scratch)

	if err := api.ExtractImagesFile(pdfPath, scratch, []string{"1"}, model.NewDefaultConfiguration()); err != nil {
		logger.Warn("image extraction failed", "file", pdfPath, "error", err)
		return ""
	}

	largest := largestImage(scratch, logger)
	if largest == "" {
		return ""
	}

	outPath := filepath.Join(outDir, modelName+".png")
	if err := writePNG(largest, outPath); err != nil {
		logger.Warn("cannot write diagram", "path", outPath, "error", err)
		return ""
	}
	return outPath
}

// largestImage returns the path of the extracted image with the greatest
// pixel area, or "" when none decodes.
func largestImage(dir string, logger *slog.Logger) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("cannot list extracted images", "dir", dir, "error", err)
		return ""
	}

	best, bestArea := "", 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		area, err := imageArea(path)
		if err != nil {
			logger.Debug("skipping undecodable image", "path", path, "error", err)
			continue
		}
		if area > bestArea {
			best, bestArea = path, area
		}
	}
	return best
}

func imageArea(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, err
	}
	return cfg.Width * cfg.Height, nil
}

// writePNG re-encodes an image file as PNG at dst, overwriting any earlier
// extraction.
func writePNG(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return err
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
