package ipp

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// LoadGenomeSizes sums, for every species appearing as a ref (outer-map)
// key of store, the second tab-delimited field of every line in
// <dir>/<species>.sizes. A species appearing only as a qry (inner-map)
// key is never required to have a .sizes file: projection only ever
// reads the size of an edge's source species (see projectEdge), so a
// leaf species that is only ever projected *to* needs none.
func LoadGenomeSizes(dir string, store PwalnStore) (GenomeSizes, error) {
	sizes := make(GenomeSizes, len(store))
	for sp := range store {
		path := filepath.Join(dir, sp+".sizes")
		size, err := sumSizesFile(path)
		if err != nil {
			return nil, err
		}
		sizes[sp] = size
	}
	return sizes, nil
}

func sumSizesFile(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("ipp: open %s: %w: %w", path, ErrFileNotFound, err)
		}
		return 0, err
	}
	defer f.Close()

	var total uint64
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		tab := strings.IndexByte(line, '\t')
		if tab < 0 {
			return 0, &MalformedSizesLineError{Path: path, Line: lineno}
		}
		n, err := strconv.ParseUint(strings.TrimSpace(line[tab+1:]), 10, 64)
		if err != nil {
			return 0, &MalformedSizesLineError{Path: path, Line: lineno}
		}
		total += n
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return total, nil
}
