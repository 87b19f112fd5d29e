// Package prefixnorm implements a chromosome-prefix normalizer:
// stripping a species-prefix artifact (e.g. "hg38_chr1" -> "chr1") from
// the first tab-delimited column of a file, using that species' .sizes
// file as the source of truth for which names legitimately carry the
// assembly identifier.
package prefixnorm

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// NormalizeFile rewrites targetPath in place, stripping from its first
// tab-delimited column any prefix that, once stripped, yields a name
// present in sizesPath. Lines whose first column already matches a
// .sizes name verbatim, or matches no prefix of one, are left untouched.
func NormalizeFile(sizesPath, targetPath string) error {
	names, err := readSizesNames(sizesPath)
	if err != nil {
		return err
	}

	in, err := os.Open(targetPath)
	if err != nil {
		return fmt.Errorf("prefixnorm: open %s: %w", targetPath, err)
	}
	defer in.Close()

	tmpPath := targetPath + ".normalized"
	out, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("prefixnorm: create %s: %w", tmpPath, err)
	}

	w := bufio.NewWriter(out)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.SplitN(line, "\t", 2)
		fields[0] = stripLegitimatePrefix(fields[0], names)
		if _, err := w.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
			out.Close()
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		out.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, targetPath)
}

func readSizesNames(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("prefixnorm: open %s: %w", path, err)
	}
	defer f.Close()

	names := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			continue
		}
		names[line[:tab]] = struct{}{}
	}
	return names, scanner.Err()
}

// stripLegitimatePrefix removes the shortest prefix of name (split at
// '_') that yields a string present in names, leaving name untouched if
// no such prefix exists.
func stripLegitimatePrefix(name string, names map[string]struct{}) string {
	if _, ok := names[name]; ok {
		return name
	}
	for idx := 0; idx < len(name); idx++ {
		if name[idx] != '_' {
			continue
		}
		if stripped := name[idx+1:]; isValidName(stripped, names) {
			return stripped
		}
	}
	return name
}

func isValidName(name string, names map[string]struct{}) bool {
	_, ok := names[name]
	return ok
}
