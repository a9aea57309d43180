package swayipc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/sys/unix"
)

// ErrNoSocket indicates no IPC socket could be located.
var ErrNoSocket = errors.New("no sway or i3 socket found (set SWAYSOCK or --sock)")

// DiscoverSocket looks for a running window manager's socket in runtimeDir
// when neither SWAYSOCK nor I3SOCK is set. sway names its sockets
// sway-ipc.<uid>.<pid>.sock; i3 uses i3/ipc-socket.<pid>. The newest match wins.
func DiscoverSocket(runtimeDir string, uid int) (string, error) {
	if runtimeDir == "" {
		runtimeDir = filepath.Join("/run", "user", fmt.Sprintf("%d", uid))
	}
	patterns := []string{
		filepath.Join(runtimeDir, fmt.Sprintf("sway-ipc.%d.*.sock", uid)),
		filepath.Join(runtimeDir, "i3", "ipc-socket.*"),
	}
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", err
		}
		if path := newestSocket(matches); path != "" {
			return path, nil
		}
	}
	return "", ErrNoSocket
}

func newestSocket(paths []string) string {
	type candidate struct {
		path string
		mod  int64
	}
	var sockets []candidate
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.Mode()&os.ModeSocket == 0 {
			continue
		}
		// connecting to a unix socket requires write permission
		if unix.Access(path, unix.W_OK) != nil {
			continue
		}
		sockets = append(sockets, candidate{path: path, mod: info.ModTime().UnixNano()})
	}
	if len(sockets) == 0 {
		return ""
	}
	newest := slices.MaxFunc(sockets, func(a, b candidate) int {
		switch {
		case a.mod < b.mod:
			return -1
		case a.mod > b.mod:
			return 1
		default:
			return 0
		}
	})
	return newest.path
}
