package wordlist

import (
	"bufio"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"

	"github.com/passguard/passguard/mimetype"
)

// Load reads a newline-delimited word file into a Set. A missing file is not
// an error: evaluation should proceed with an empty reference set rather
// than abort. Compressed lists are rejected up front since scanning them
// line by line would silently produce garbage entries.
func Load(path string) (Set, error) {
	if mime, isArchive := mimetype.IsArchive(path); isArchive {
		return nil, fmt.Errorf("wordlist %s looks compressed (%s); extract it first", path, mime)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, err
	}
	defer file.Close()

	set := Set{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		set.Add(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading wordlist %s: %s", path, err)
	}

	return set, nil
}

// LoadAll merges several word files into one Set. Unreadable files are
// collected into the returned error but do not discard words loaded from
// the readable ones.
func LoadAll(paths ...string) (Set, error) {
	merged := Set{}

	var result error
	for _, path := range paths {
		set, err := Load(path)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		for word := range set {
			merged[word] = struct{}{}
		}
	}

	return merged, result
}
