package store

import "os"

// atomicWriteFile writes b to path via a uniquely named temp file in dir plus
// rename. The unique temp name avoids cross-process clobbering when a watcher
// and a picker persist concurrently; rename keeps readers from ever seeing a
// torn snapshot.
func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
