package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/amp-labs/numstring/comparator"
	"github.com/amp-labs/numstring/errors"
	"github.com/amp-labs/numstring/numstr"
	"gopkg.in/yaml.v3"
)

// record is one YAML mapping.
type record map[string]any

type sorter struct {
	order   numstr.TextOrder
	reverse bool
	logger  *slog.Logger
}

func (s sorter) registry() *comparator.Registry {
	return comparator.NewRegistry(
		comparator.WithTextOrder(s.order),
		comparator.WithLogger(s.logger),
	)
}

func (s sorter) direction(cmp func(a, b record) int) func(a, b record) int {
	if !s.reverse {
		return cmp
	}

	return func(a, b record) int {
		return cmp(b, a)
	}
}

func (s sorter) sortLines(in io.Reader, out io.Writer) error {
	lines, err := readLines(in)
	if err != nil {
		return err
	}

	cmp, err := comparator.Get[string](s.registry())
	if err != nil {
		return err
	}

	if s.reverse {
		comparator.SortBy(lines, cmp.Reverse())
	} else {
		cmp.Sort(lines)
	}

	s.logger.Debug("sorted lines", "count", len(lines), "text_order", s.order.String())

	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}

	return w.Flush()
}

func (s sorter) sortRecords(in io.Reader, out io.Writer, keys []string) error {
	if len(keys) == 0 {
		return fmt.Errorf("%w: --yaml needs at least one --by key", errors.ErrArgument)
	}

	var records []record
	if err := yaml.NewDecoder(in).Decode(&records); err != nil && err != io.EOF { //nolint:errorlint
		return fmt.Errorf("decoding YAML records: %w", err)
	}

	if len(records) == 0 {
		return nil
	}

	reg := s.registry()
	if err := comparator.RegisterFields[record](reg, recordFields(records)); err != nil {
		return err
	}

	var (
		cmps []func(a, b record) int
		errs errors.Collection
	)

	for _, key := range keys {
		cmp, err := comparator.GetField[record](reg, key)
		if err != nil {
			errs.Add(fmt.Errorf("--by %q: %w", key, err))

			continue
		}

		cmps = append(cmps, s.direction(cmp.Compare))
	}

	if errs.HasError() {
		return errs.GetError()
	}

	comparator.SortBy(records, cmps...)

	s.logger.Debug("sorted records", "count", len(records), "keys", strings.Join(keys, ","))

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2) //nolint:mnd

	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding YAML records: %w", err)
	}

	return enc.Close()
}

// readLines splits in into lines without a length limit. Line endings,
// including "\r\n", are dropped; a final line needs no terminator.
func readLines(in io.Reader) ([]string, error) {
	var lines []string

	reader := bufio.NewReader(in)

	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}

		if err == io.EOF { //nolint:errorlint
			return lines, nil
		}

		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
	}
}

// recordFields declares every key seen in any record as a text field.
// Records without the key compare like an empty value.
func recordFields(records []record) comparator.Fields[record] {
	fields := comparator.Fields[record]{}

	for _, rec := range records {
		for key := range rec {
			if _, found := fields[key]; found {
				continue
			}

			fields[key] = comparator.TextField(func(r record) string {
				return scalarText(r[key])
			})
		}
	}

	return fields
}

func scalarText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
