package util

import (
	"os/user"
	"path/filepath"
	"strings"
)

// HomePath enables support for ~/home/paths in flags and config values.
type HomePath struct {
	Path string
}

func NewHomePath(in string) (*HomePath, error) {
	h := &HomePath{}
	err := h.UnmarshalText([]byte(in))
	return h, err
}

func (h *HomePath) UnmarshalText(text []byte) error {
	h.Path = strings.TrimSpace(string(text))
	if !strings.HasPrefix(h.Path, "~/") {
		return nil
	}
	usr, err := user.Current()
	if err != nil {
		return err
	}
	h.Path = filepath.Join(usr.HomeDir, h.Path[2:])
	return nil
}

func (h HomePath) String() string {
	return h.Path
}
