package apply

import (
	"io"

	update "github.com/inconshreveable/go-update"
	"github.com/kardianos/osext"
)

// Apply replaces the running executable with the contents of the reader.
// If the swap fails partway the old binary is rolled back into place; a
// failed rollback is returned instead so the caller can tell the user
// their installation needs manual repair.
func Apply(newBinary io.Reader) error {
	targetPath, err := osext.Executable()
	if err != nil {
		return err
	}

	err = update.Apply(newBinary, update.Options{
		TargetPath: targetPath,
	})
	if err != nil {
		if rerr := update.RollbackError(err); rerr != nil {
			return rerr
		}
		return err
	}

	return nil
}
