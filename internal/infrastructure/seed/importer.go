// Package seed reads the delimited files that populate the stores at startup.
// Any malformed line aborts the import; partial data is never returned.
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
	"github.com/damon-houk/ezpay-transaction-manager/internal/infrastructure/logger"
	"github.com/go-playground/validator/v10"
)

const (
	transactionColumns = 5
	statusColumns      = 4
)

// LineError reports the file and line where an import failed
type LineError struct {
	File string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// ErrDuplicateID is returned when two seed lines share an identifier
var ErrDuplicateID = errors.New("duplicate id")

// Importer parses seed files into validated records
type Importer struct {
	validate *validator.Validate
	location *time.Location
	logger   logger.Logger
}

// NewImporter creates an importer that reads timestamps in loc (UTC when nil)
func NewImporter(loc *time.Location, log logger.Logger) *Importer {
	if loc == nil {
		loc = time.UTC
	}
	return &Importer{
		validate: validator.New(),
		location: loc,
		logger:   logger.OrDefault(log).WithField("component", "seed"),
	}
}

// LoadTransactions reads transactions from the file at path
func (i *Importer) LoadTransactions(path string) ([]entity.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions seed: %w", err)
	}
	defer f.Close()
	return i.ReadTransactions(f, path)
}

// LoadStatuses reads transaction statuses from the file at path
func (i *Importer) LoadStatuses(path string) ([]entity.TransactionStatus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statuses seed: %w", err)
	}
	defer f.Close()
	return i.ReadStatuses(f, path)
}

// ReadTransactions parses lines of the form id,type,amount,status,yyyy-MM-dd HH:mm:ss
func (i *Importer) ReadTransactions(r io.Reader, name string) ([]entity.Transaction, error) {
	return readRecords(i, r, name, transactionColumns, func(cols []string) (entity.Transaction, error) {
		amount, err := strconv.ParseFloat(cols[2], 64)
		if err != nil {
			return entity.Transaction{}, fmt.Errorf("invalid amount %q", cols[2])
		}
		occurredAt, err := i.parseTimestamp(cols[4])
		if err != nil {
			return entity.Transaction{}, err
		}
		return entity.Transaction{
			ID:         cols[0],
			Kind:       cols[1],
			Amount:     amount,
			State:      cols[3],
			OccurredAt: occurredAt,
		}, nil
	})
}

// ReadStatuses parses lines of the form id,statusType,reason,yyyy-MM-dd HH:mm:ss
func (i *Importer) ReadStatuses(r io.Reader, name string) ([]entity.TransactionStatus, error) {
	return readRecords(i, r, name, statusColumns, func(cols []string) (entity.TransactionStatus, error) {
		timestamp, err := i.parseTimestamp(cols[3])
		if err != nil {
			return entity.TransactionStatus{}, err
		}
		return entity.TransactionStatus{
			ID:         cols[0],
			StatusType: cols[1],
			Reason:     cols[2],
			Timestamp:  timestamp,
		}, nil
	})
}

func (i *Importer) parseTimestamp(value string) (time.Time, error) {
	t, err := time.ParseInLocation(entity.TimestampLayout, value, i.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q, expected %s", value, entity.TimestampLayout)
	}
	return t, nil
}

func readRecords[T entity.Record](i *Importer, r io.Reader, name string, columns int, parse func([]string) (T, error)) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = columns
	reader.TrimLeadingSpace = true
	// Seed files are plain comma-split lines; a quote inside a field is data
	reader.LazyQuotes = true

	records := []T{}
	seen := make(map[string]int)

	for {
		cols, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &LineError{File: name, Line: parseErr.Line, Err: parseErr.Err}
			}
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		line, _ := reader.FieldPos(0)
		for j := range cols {
			cols[j] = strings.TrimSpace(cols[j])
		}

		record, err := parse(cols)
		if err != nil {
			return nil, &LineError{File: name, Line: line, Err: err}
		}
		if err := i.validate.Struct(record); err != nil {
			return nil, &LineError{File: name, Line: line, Err: describe(err)}
		}
		if first, dup := seen[record.RecordID()]; dup {
			return nil, &LineError{File: name, Line: line, Err: fmt.Errorf("%w %q, first seen on line %d", ErrDuplicateID, record.RecordID(), first)}
		}
		seen[record.RecordID()] = line
		records = append(records, record)
	}

	i.logger.Info("Seed file loaded", logger.Fields{"file": name, "records": len(records)})
	return records, nil
}

// describe turns validator failures into a single readable error
func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s %q must be one of %s", fe.Field(), fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
