package mimetype

import (
	"strings"
)

// IsArchive reports whether a wordlist path points at a compressed or
// bundled file that must be extracted before it can be read line by line.
func IsArchive(filename string) (string, bool) {
	if strings.HasSuffix(filename, ".tar") ||
		strings.HasSuffix(filename, ".tar.gz") ||
		strings.HasSuffix(filename, ".tgz") {
		return "application/x-tar", true
	} else if strings.HasSuffix(filename, ".zip") {
		return "application/zip", true
	} else if strings.HasSuffix(filename, ".gz") {
		return "application/gzip", true
	} else if strings.HasSuffix(filename, ".bz2") {
		return "application/x-bzip2", true
	} else {
		return "", false
	}
}
