package equate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to merge into a database.

// ImportRates imports a historical exchange-rate table from 'r'.
//
// The import format is a JSONL file, where each line is a JSON object
// representing one day of rates: property 'date' is an ISO day, and
// property 'rates' is a single json object mapping a 3-letter currency
// code to its rate relative to the pivot currency.
func ImportRates(r io.Reader) (*RateTable, error) {
	var rows []RateRow
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var row RateRow
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("cannot parse line for rate import format: %q: %w", string(line), err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read rate import format: %w", err)
	}
	return NewRateTable(rows), nil
}

// ExportRates exports the rate table to 'w' in the import format, one day
// per line, chronological order.
func ExportRates(w io.Writer, t *RateTable) error {
	for _, row := range t.Rows() {
		var jw jsonObjectWriter
		jw.Append("date", row.Date)
		jw.Append("rates", row.Rates)
		data, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal rate row %s: %w", row.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write rate export format: %w", err)
		}
	}
	return nil
}

// ImportRateSnapshot decodes a single-day rate snapshot in the shape
// currency APIs publish (a 'date' property and a 'rates' object, with
// possible extra envelope fields around them). jsonpath keeps the decoding
// independent of the exact envelope.
func ImportRateSnapshot(data []byte) (RateRow, error) {
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return RateRow{}, fmt.Errorf("cannot parse rate snapshot: %w", err)
	}

	jday, err := jsonpath.Get("$.date", jobj)
	if err != nil {
		return RateRow{}, fmt.Errorf("rate snapshot has no date: %w", err)
	}
	str, ok := jday.(string)
	if !ok {
		return RateRow{}, fmt.Errorf("rate snapshot date is not a string: %v", jday)
	}
	on, err := ParseDate(str)
	if err != nil {
		return RateRow{}, err
	}

	jrates, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return RateRow{}, fmt.Errorf("rate snapshot has no rates: %w", err)
	}
	jmap, ok := jrates.(map[string]any)
	if !ok {
		return RateRow{}, fmt.Errorf("rate snapshot rates is not an object: %v", jrates)
	}

	row := RateRow{Date: on, Rates: make(map[string]float64, len(jmap))}
	for code, jrate := range jmap {
		rate, ok := jrate.(float64)
		if !ok {
			return RateRow{}, fmt.Errorf("rate snapshot %s rate for %q is not a number: %v", on, code, jrate)
		}
		if code == Pivot {
			continue // the pivot is implicit, never stored
		}
		row.Rates[code] = rate
	}
	return row, nil
}

// ImportActivity imports purchase and disposal records from 'r'.
//
// The format is a JSONL file where each line is a JSON object with a
// 'record' property of either "purchase" or "disposal", merged with the
// record's own fields.
func ImportActivity(r io.Reader) ([]PurchaseRecord, []DisposalRecord, error) {
	type jrecord struct {
		Record string `json:"record"`
	}

	var purchases []PurchaseRecord
	var disposals []DisposalRecord
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jr jrecord
		if err := json.Unmarshal(line, &jr); err != nil {
			return nil, nil, fmt.Errorf("cannot parse line for activity import format: %q: %w", string(line), err)
		}
		switch jr.Record {
		case "purchase":
			var p PurchaseRecord
			if err := json.Unmarshal(line, &p); err != nil {
				return nil, nil, fmt.Errorf("cannot parse purchase record: %q: %w", string(line), err)
			}
			purchases = append(purchases, p)
		case "disposal":
			var d DisposalRecord
			if err := json.Unmarshal(line, &d); err != nil {
				return nil, nil, fmt.Errorf("cannot parse disposal record: %q: %w", string(line), err)
			}
			disposals = append(disposals, d)
		default:
			return nil, nil, fmt.Errorf("unknown activity record kind %q in %q", jr.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("cannot read activity import format: %w", err)
	}
	return purchases, disposals, nil
}

// ImportPriceTable imports a precomputed daily multi-currency price table
// from 'r': a JSONL file where each line carries a 'date' and a 'prices'
// object mapping currency code to that day's price.
func ImportPriceTable(r io.Reader) (*PriceTable, error) {
	var rows []PriceTableRow
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var row PriceTableRow
		if err := json.Unmarshal(line, &row); err != nil {
			return nil, fmt.Errorf("cannot parse line for price table import format: %q: %w", string(line), err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read price table import format: %w", err)
	}
	return NewPriceTable(rows), nil
}

// ExportPoints exports reference points to 'w', one point per line in the
// build order.
func ExportPoints(w io.Writer, points []*ReferencePoint) error {
	for _, p := range points {
		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("cannot marshal reference point %s: %w", p.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write reference point export format: %w", err)
		}
	}
	return nil
}
