package tracker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// maxRecordSize bounds a single encoded record. Records embed images as data
// URLs, so a line can be far larger than bufio's default token size.
const maxRecordSize = 16 << 20

// ParseAmount parses a bare decimal number into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// DecodeMeals decodes meal records from a stream of JSONL data and returns
// the restored Ledger. Records keep their stored order (newest first). Any
// malformed line fails the whole decode; the caller decides what to
// substitute (the session falls back to an empty ledger for that key only).
func DecodeMeals(r io.Reader) (*Ledger, error) {
	var meals []MealRecord
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var m MealRecord
		if err := json.Unmarshal(lineBytes, &m); err != nil {
			return nil, fmt.Errorf("could not decode meal record %q: %w", string(lineBytes), err)
		}
		if err := checkRecord(m); err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	return restoredLedger(meals), nil
}

// checkRecord rejects stored records that violate the ledger invariants, so
// a hand-edited or corrupt blob cannot smuggle an invalid record in.
func checkRecord(m MealRecord) error {
	switch {
	case m.ID <= 0:
		return fmt.Errorf("stored meal %q has no id", m.Name)
	case m.Name == "":
		return fmt.Errorf("stored meal %d has no name", m.ID)
	case m.Calories.IsNegative():
		return fmt.Errorf("stored meal %q has negative calories", m.Name)
	case m.Date.IsZero():
		return fmt.Errorf("stored meal %q has no date", m.Name)
	}
	return nil
}

// EncodeMeal marshals a single record to JSON and writes it to the writer,
// followed by a newline, in JSONL format.
func EncodeMeal(w io.Writer, m MealRecord) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal meal record: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write meal record: %w", err)
	}
	return nil
}

// EncodeMeals persists the ledger to an io.Writer in JSONL format, in ledger
// order (newest first), which is the canonical stored form.
func EncodeMeals(w io.Writer, l *Ledger) error {
	for m := range l.Meals() {
		if err := EncodeMeal(w, m); err != nil {
			return err
		}
	}
	return nil
}
