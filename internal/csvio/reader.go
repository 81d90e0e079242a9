package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hollis7/weka/internal/currency"
	"github.com/hollis7/weka/internal/engine"
)

// Reader decodes transaction rows into engine mutations. Columns are
// located by header name so their order is free, every field is
// whitespace-trimmed, and the amount-presence rule is enforced per kind
// before anything reaches the engine.
type Reader struct {
	// OnBadRow, when set, is called for each malformed row and reading
	// continues with the next one. When nil, a malformed row fails the
	// stream.
	OnBadRow func(line int, err error)

	csv  *csv.Reader
	cols map[string]int
	line int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	// Dispute-family rows routinely omit the amount column entirely.
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	return &Reader{csv: cr}
}

// Next returns the next valid mutation, or io.EOF once the input is
// drained.
func (r *Reader) Next() (engine.Mutation, error) {
	if r.cols == nil {
		if err := r.readHeader(); err != nil {
			return engine.Mutation{}, err
		}
	}

	for {
		rec, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return engine.Mutation{}, io.EOF
		}
		r.line++
		if err == nil {
			var m engine.Mutation
			if m, err = r.parse(rec); err == nil {
				return m, nil
			}
		}
		if r.OnBadRow != nil {
			r.OnBadRow(r.line, err)
			continue
		}
		return engine.Mutation{}, fmt.Errorf("row %d: %w", r.line, err)
	}
}

// Line returns the 1-based input line of the most recently read row.
func (r *Reader) Line() int { return r.line }

func (r *Reader) readHeader() error {
	rec, err := r.csv.Read()
	if err != nil {
		// io.EOF here means an empty input, which is a valid empty run.
		return err
	}
	r.line++

	cols := make(map[string]int, len(rec))
	for i, name := range rec {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := cols[required]; !ok {
			return fmt.Errorf("input is missing the %q column", required)
		}
	}
	r.cols = cols
	return nil
}

func (r *Reader) parse(rec []string) (engine.Mutation, error) {
	kind := engine.Kind(r.field(rec, "type"))
	if !kind.Valid() {
		return engine.Mutation{}, fmt.Errorf("unknown transaction type %q", string(kind))
	}

	client, err := strconv.ParseUint(r.field(rec, "client"), 10, 16)
	if err != nil {
		return engine.Mutation{}, fmt.Errorf("invalid client id %q", r.field(rec, "client"))
	}
	tx, err := strconv.ParseUint(r.field(rec, "tx"), 10, 32)
	if err != nil {
		return engine.Mutation{}, fmt.Errorf("invalid transaction id %q", r.field(rec, "tx"))
	}

	m := engine.Mutation{
		ID:     uint32(tx),
		Kind:   kind,
		Client: uint16(client),
	}

	raw := r.field(rec, "amount")
	switch {
	case raw == "" && kind.RequiresAmount():
		return engine.Mutation{}, fmt.Errorf("%s rows must carry an amount", kind)
	case raw != "" && !kind.RequiresAmount():
		return engine.Mutation{}, fmt.Errorf("%s rows must not carry an amount", kind)
	case raw != "":
		amt, err := currency.Parse(raw)
		if err != nil {
			return engine.Mutation{}, err
		}
		m.Amount = &amt
	}
	return m, nil
}

func (r *Reader) field(rec []string, name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
