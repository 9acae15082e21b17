//go:build linux || darwin || freebsd

package commands

import "golang.org/x/sys/unix"

// diskUsage reports total and free bytes of the filesystem holding path
func diskUsage(path string) (total, free uint64, ok bool) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return 0, 0, false
	}
	bsize := uint64(st.Bsize)
	return st.Blocks * bsize, st.Bfree * bsize, true
}
