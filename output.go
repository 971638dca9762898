package sdfatlas

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/sdfatlas/bmfont"
	"github.com/gogpu/sdfatlas/internal/imageio"
)

// Files returns the names of every file WriteFiles creates, pages first.
func (o *Output) Files() []string {
	names := make([]string, 0, len(o.Pages)+1)
	for _, p := range o.Pages {
		names = append(names, p.File)
	}
	return append(names, o.DescriptorFile)
}

// WriteFiles writes the page images and the descriptor into dir, creating
// dir if needed. Existing files are overwritten. The first failure is
// returned as *OutputError.
func (o *Output) WriteFiles(dir string) error {
	log := Logger()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &OutputError{Path: dir, Err: err}
	}

	for _, p := range o.Pages {
		path := filepath.Join(dir, p.File)
		if err := imageio.SavePNG(path, p.Image); err != nil {
			return &OutputError{Path: path, Err: err}
		}
		log.Info("sdfatlas: wrote page", "path", path)
	}

	path := filepath.Join(dir, o.DescriptorFile)
	if err := writeDescriptor(path, o.Descriptor); err != nil {
		return &OutputError{Path: path, Err: err}
	}
	log.Info("sdfatlas: wrote descriptor", "path", path, "chars", o.Descriptor.CharCount())
	return nil
}

func writeDescriptor(path string, d *bmfont.Descriptor) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	if err := bmfont.Encode(f, d); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
