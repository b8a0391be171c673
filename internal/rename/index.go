package rename

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/afero"
)

// MaxIndex is the largest index that still renders as three digits. Names
// with a wider prefix would not match indexedName on the next run.
const MaxIndex = 999

// indexedName both detects processed files and defines the output prefix;
// changing one without the other breaks idempotence.
var indexedName = regexp.MustCompile(`^(\d{3})_`)

// IsIndexed reports whether name already carries a sequence prefix.
func IsIndexed(name string) bool {
	return indexedName.MatchString(name)
}

// NextIndexFromNames returns one past the highest three-digit prefix in
// names, or 1 when none has one.
func NextIndexFromNames(names []string) int {
	highest := 0
	for _, n := range names {
		m := indexedName.FindStringSubmatch(n)
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil && v > highest {
			highest = v
		}
	}
	return highest + 1
}

// NextIndex scans dir and returns the next free sequence index.
func NextIndex(fs afero.Fs, dir string) (int, error) {
	names, err := listNames(fs, dir)
	if err != nil {
		return 0, err
	}
	return NextIndexFromNames(names), nil
}

func listNames(fs afero.Fs, dir string) ([]string, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		names = append(names, fi.Name())
	}
	return names, nil
}

func formatName(index int, name, suffix, ext string) string {
	return fmt.Sprintf("%03d_%s%s%s", index, name, suffix, ext)
}
