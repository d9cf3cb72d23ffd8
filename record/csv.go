package record

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/srappel/oimkit/errors"
)

// CSVSource reads RawRecords from a UTF-8 CSV file whose header row names
// the source fields. Rows are surfaced in file order, one RawRecord each.
type CSVSource struct {
	f      *os.File
	reader *csv.Reader
	fields []string
}

// OpenCSV opens a CSV record source and reads its header row.
// The caller owns the returned source and must Close it.
func OpenCSV(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapFatal(errors.ErrResourceNotFound, "CSVSource", "OpenCSV", path)
		}
		return nil, errors.Wrap(err, "CSVSource", "OpenCSV", "open records file")
	}

	reader := csv.NewReader(f)
	// Index exports occasionally carry ragged rows; field count is checked
	// against the header during zipping instead.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		_ = f.Close()
		if err == io.EOF {
			return nil, errors.WrapFatal(errors.ErrMalformedInput, "CSVSource", "OpenCSV", "records file is empty")
		}
		return nil, errors.WrapFatal(errors.ErrMalformedInput, "CSVSource", "OpenCSV", "read header: "+err.Error())
	}

	return &CSVSource{f: f, reader: reader, fields: header}, nil
}

// Fields returns the header row, in file order.
func (s *CSVSource) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Next returns the next record, or false when the file is exhausted.
func (s *CSVSource) Next() (RawRecord, bool, error) {
	row, err := s.reader.Read()
	if err == io.EOF {
		return RawRecord{}, false, nil
	}
	if err != nil {
		return RawRecord{}, false, errors.WrapFatal(errors.ErrMalformedInput, "CSVSource", "Next", err.Error())
	}
	return NewRawRecord(s.fields, row), true, nil
}

// Close releases the underlying file.
func (s *CSVSource) Close() error {
	return s.f.Close()
}
