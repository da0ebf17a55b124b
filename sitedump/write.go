package sitedump

import (
	"fmt"
	"os"
	"path"
)

// writeIntoStore writes contents to a path relative to the store root,
// creating directories as needed.
func (s *Screenshotter) writeIntoStore(relative string, contents string) error {
	// Does the store exist?
	stat, err := os.Stat(s.StorePath)
	if err != nil {
		return fmt.Errorf("sitedump: cannot stat '%s': %w", s.StorePath, err)
	}

	if !stat.IsDir() {
		// path is not a directory.  this is bad, we should bail
		return fmt.Errorf("sitedump: store path not a directory: '%s'", s.StorePath)
	}

	abs := path.Join(s.StorePath, relative)
	directory := path.Dir(abs)

	if err = os.MkdirAll(directory, 0750); err != nil {
		return fmt.Errorf("sitedump: couldn't create directory %s: %w", directory, err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return fmt.Errorf("sitedump: couldn't create file %s: %w", abs, err)
	}

	defer f.Close()
	if _, err = f.WriteString(contents); err != nil {
		return fmt.Errorf("sitedump: couldn't write to file %s: %w", abs, err)
	}

	return nil
}
