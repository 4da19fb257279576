package genome

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by loaders for an unknown genome ID.
var ErrNotFound = errors.New("genome: not found")

// Loader retrieves reference genomes at protein detail by ID.
type Loader interface {
	Load(id string) (*Genome, error)
}

// DirLoader loads genomes from <Base>/<id>.json documents.
type DirLoader struct {
	Base string
}

// Load reads one genome document from the directory.
func (l DirLoader) Load(id string) (*Genome, error) {
	fileName := filepath.Join(l.Base, id+".json")
	g, err := ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}
