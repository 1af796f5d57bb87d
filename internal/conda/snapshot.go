package conda

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Yoshanuikabundi/snakes-on-a-plane/internal/envspec"
)

// snapshotName is the spec file recorded inside an environment prefix at the
// last successful create or update.
const snapshotName = ".soap-env.yml"

// SnapshotPath returns the location of the recorded spec for a prefix.
func SnapshotPath(prefix string) string {
	return filepath.Join(prefix, snapshotName)
}

// RecordedHash returns the content hash of the spec an environment was last
// built from. The second return is false when no readable record exists —
// older environments, or a prefix mutated out-of-band — in which case the
// caller should treat the environment as drifted.
func RecordedHash(prefix string) (string, bool) {
	data, err := os.ReadFile(SnapshotPath(prefix))
	if err != nil {
		return "", false
	}
	doc, err := envspec.Parse(data)
	if err != nil {
		return "", false
	}
	return envspec.Hash(doc), true
}

// WriteSnapshot records the spec an environment was just built from.
func WriteSnapshot(prefix string, data []byte) error {
	if err := os.WriteFile(SnapshotPath(prefix), data, 0644); err != nil {
		return fmt.Errorf("recording applied spec: %w", err)
	}
	return nil
}
