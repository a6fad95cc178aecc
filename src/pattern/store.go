package pattern

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

//Store is the byte-level persistence surface the session works
//against. Names are bare file names, never paths.
type Store interface {
	List() ([]string, error)
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
}

//DirStore keeps pattern files in a single directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

//List returns the pattern file names in the directory, sorted.
//Only registered codec extensions are listed; dotfiles, such as the
//edit snapshot, are working files and stay hidden. A missing
//directory lists as empty rather than failing.
func (s *DirStore) List() ([]string, error) {
	infos, err := ioutil.ReadDir(s.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		if info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			continue
		}
		if _, ok := ForName(info.Name()); !ok {
			continue
		}
		names = append(names, info.Name())
	}
	return names, nil
}

func (s *DirStore) Read(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return ioutil.ReadFile(filepath.Join(s.dir, name))
}

func (s *DirStore) Write(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(filepath.Join(s.dir, name), data, 0644)
}

func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty pattern name")
	}
	if strings.ContainsAny(name, "/\\") || name != filepath.Base(name) {
		return fmt.Errorf("pattern name %q must be a bare file name", name)
	}
	return nil
}
