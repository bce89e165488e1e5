package installer

import (
	"os"

	"github.com/sirupsen/logrus"
)

// BackupSuffix is appended to a pre-existing entry before it is replaced.
const BackupSuffix = ".bak"

// backupExisting renames path to path.bak when a file is already present.
// A prior backup at that name is silently overwritten, so repeated runs
// keep exactly one current file and one backup. Returns the backup path,
// or "" when there was nothing to back up.
func backupExisting(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	backup := path + BackupSuffix
	logrus.Debugf("backing up existing entry: %s -> %s", path, backup)

	if err := os.Rename(path, backup); err != nil {
		return "", err
	}

	return backup, nil
}
