package ipp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// parsePwalnFile parses the binary pwaln file at path into a fresh chromosome
// dictionary and pwaln store. Layout:
//
//	num_chroms            uint16
//	{ chrom_name          NUL-terminated string } * num_chroms
//	num_sp1               uint8
//	{
//	  sp1_name            NUL-terminated string
//	  num_sp2             uint8
//	  {
//	    sp2_name          NUL-terminated string
//	    num_ref_chroms    uint32
//	    {
//	      num_entries     uint32
//	      { PwalnEntry, 20 bytes packed, little-endian } * num_entries
//	    } * num_ref_chroms
//	  } * num_sp2
//	} * num_sp1
//
// Loading is all-or-nothing: on any error the returned store is nil and
// any previously loaded state the caller holds must be discarded by the
// caller (the engine does this in Store.LoadPwalns).
func parsePwalnFile(path string) ([]string, PwalnStore, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("ipp: open %s: %w: %w", path, ErrFileNotFound, err)
		}
		return nil, nil, err
	}
	defer f.Close()

	r := bufio.NewReaderSize(f, 1<<20)

	numChroms, err := readU16(r)
	if err != nil {
		return nil, nil, err
	}
	chroms := make([]string, 0, numChroms)
	for i := uint16(0); i < numChroms; i++ {
		name, err := readCString(r)
		if err != nil {
			return nil, nil, err
		}
		chroms = append(chroms, name)
	}

	store := make(PwalnStore)

	numSp1, err := readU8(r)
	if err != nil {
		return nil, nil, err
	}
	for i := uint8(0); i < numSp1; i++ {
		sp1, err := readCString(r)
		if err != nil {
			return nil, nil, err
		}
		pwalnsSp1, ok := store[sp1]
		if !ok {
			pwalnsSp1 = make(map[string]Pwaln)
			store[sp1] = pwalnsSp1
		}

		numSp2, err := readU8(r)
		if err != nil {
			return nil, nil, err
		}
		for j := uint8(0); j < numSp2; j++ {
			sp2, err := readCString(r)
			if err != nil {
				return nil, nil, err
			}
			pwaln := make(Pwaln)
			pwalnsSp1[sp2] = pwaln

			numRefChroms, err := readU32(r)
			if err != nil {
				return nil, nil, err
			}
			for k := uint32(0); k < numRefChroms; k++ {
				numEntries, err := readU32(r)
				if err != nil {
					return nil, nil, err
				}
				entries, err := readPwalnEntries(r, numEntries)
				if err != nil {
					return nil, nil, err
				}
				if len(entries) == 0 {
					continue
				}
				for _, e := range entries {
					if e.RefStart >= e.RefEnd {
						return nil, nil, &MalformedBinaryError{Reason: fmt.Sprintf("ref_start %d >= ref_end %d", e.RefStart, e.RefEnd)}
					}
					if e.QryStart == e.QryEnd {
						return nil, nil, &MalformedBinaryError{Reason: "qry_start == qry_end"}
					}
				}
				pwaln[entries[0].RefChrom] = entries
			}
		}
	}

	// Strict: no trailing bytes past the last expected record.
	if _, err := r.ReadByte(); err != io.EOF {
		if err == nil {
			return nil, nil, ErrTrailingBytes
		}
		return nil, nil, err
	}

	return chroms, store, nil
}

func readU8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	return buf[0], nil
}

func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

func readU32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func readCString(r *bufio.Reader) (string, error) {
	s, err := r.ReadString(0)
	if err != nil {
		return "", unexpectedEOF(err)
	}
	return s[:len(s)-1], nil // drop the trailing NUL
}

// readPwalnEntries bulk-reads n fixed-width PwalnEntry records as one
// block, the Go equivalent of the original's single file.read() call over
// reinterpret_cast<char*>(data()).
func readPwalnEntries(r io.Reader, n uint32) ([]PwalnEntry, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, int(n)*pwalnEntrySize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, unexpectedEOF(err)
	}
	entries := make([]PwalnEntry, n)
	for i := range entries {
		b := buf[i*pwalnEntrySize : (i+1)*pwalnEntrySize]
		entries[i] = PwalnEntry{
			RefStart: binary.LittleEndian.Uint32(b[0:4]),
			RefEnd:   binary.LittleEndian.Uint32(b[4:8]),
			QryStart: binary.LittleEndian.Uint32(b[8:12]),
			QryEnd:   binary.LittleEndian.Uint32(b[12:16]),
			RefChrom: ChromID(binary.LittleEndian.Uint16(b[16:18])),
			QryChrom: ChromID(binary.LittleEndian.Uint16(b[18:20])),
		}
	}
	return entries, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: %w", ErrUnexpectedEOF, err)
	}
	return err
}
