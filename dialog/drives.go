package dialog

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// GetDrives returns browsable filesystem roots: drive letters with a
// trailing separator on Windows, or "/" plus conventional mount locations
// on POSIX systems. It never fails; POSIX always yields at least "/".
func GetDrives() []string {
	if runtime.GOOS == "windows" {
		return windowsDrives()
	}
	return posixRoots()
}

func windowsDrives() []string {
	var drives []string
	if partitions, err := disk.Partitions(false); err == nil {
		for _, p := range partitions {
			mount := p.Mountpoint
			if !strings.HasSuffix(mount, `\`) {
				mount += `\`
			}
			drives = append(drives, mount)
		}
	}
	if len(drives) == 0 {
		// Partition query failed; probe the classic letters directly.
		for letter := 'A'; letter <= 'Z'; letter++ {
			root := string(letter) + `:\`
			if IsDirectory(root) {
				drives = append(drives, root)
			}
		}
	}
	sort.Strings(drives)
	return drives
}

func posixRoots() []string {
	roots := []string{"/"}
	seen := map[string]bool{"/": true}

	add := func(path string) {
		if !seen[path] && IsDirectory(path) {
			seen[path] = true
			roots = append(roots, path)
		}
	}

	add("/home")

	// Removable/secondary volumes mount under these parents by convention.
	for _, parent := range []string{"/mnt", "/media", "/run/media"} {
		children, err := os.ReadDir(parent)
		if err != nil {
			continue
		}
		for _, child := range children {
			if child.IsDir() {
				add(filepath.Join(parent, child.Name()))
			}
		}
	}

	// Mounted partitions outside the conventional parents (gopsutil reads
	// the mount table) are offered too, skipping pseudo-filesystems.
	if partitions, err := disk.Partitions(false); err == nil {
		for _, p := range partitions {
			if isBrowsableMount(p.Mountpoint) {
				add(p.Mountpoint)
			}
		}
	}

	return roots
}

func isBrowsableMount(mount string) bool {
	if mount == "" || mount == "/" {
		return false
	}
	for _, hidden := range []string{"/proc", "/sys", "/dev", "/boot", "/snap", "/var/lib"} {
		if mount == hidden || strings.HasPrefix(mount, hidden+"/") {
			return false
		}
	}
	return true
}
