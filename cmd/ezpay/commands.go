package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/damon-houk/ezpay-transaction-manager/internal/application/service"
	"github.com/damon-houk/ezpay-transaction-manager/internal/domain/entity"
)

const usage = `Commands:
  tx list
  tx get <id>
  tx category <kind|state> <value>
  tx date <yyyy-mm-dd>
  tx date-range <start> <end>
  tx amount-range <min> <max>
  tx create <kind> <amount> <state> <date> [id]
  tx update <id> <kind> <amount> <state> <date>
  tx delete <id>
  status list
  status get <id>
  status category <statusType|reason> <value>
  status date <yyyy-mm-dd>
  status date-range <start> <end>
  status create <statusType> <reason> <date> [id]
  status update <id> <statusType> <reason> <date>
  status delete <id>
  snapshot

Dates are yyyy-mm-dd or "yyyy-mm-dd HH:mm:ss".
`

var errUsage = errors.New("invalid command; run with -h for usage")

// app runs one service operation per invocation and prints the result as JSON
type app struct {
	transactions *service.TransactionService
	statuses     *service.TransactionStatusService
	location     *time.Location
	out          io.Writer
}

// lookupResult distinguishes a miss from an invalid request in the output
type lookupResult struct {
	Found  bool        `json:"found"`
	Record interface{} `json:"record,omitempty"`
}

type deleteResult struct {
	Deleted bool `json:"deleted"`
}

// run executes the command and reports whether it changed a store
func (a *app) run(args []string) (bool, error) {
	if len(args) < 2 {
		return false, errUsage
	}
	switch args[0] {
	case "tx":
		return a.runTransaction(args[1], args[2:])
	case "status":
		return a.runStatus(args[1], args[2:])
	default:
		return false, errUsage
	}
}

func (a *app) runTransaction(op string, args []string) (bool, error) {
	s := a.transactions

	switch {
	case op == "list" && len(args) == 0:
		return false, a.print(s.List())

	case op == "get" && len(args) == 1:
		tx, found, err := s.GetByID(args[0])
		if err != nil {
			return false, err
		}
		return false, a.print(lookup(found, tx))

	case op == "category" && len(args) == 2:
		return false, a.printQuery(s.GetByCategory(args[0], args[1]))

	case op == "date" && len(args) == 1:
		d, err := a.parseDate(args[0])
		if err != nil {
			return false, err
		}
		return false, a.printQuery(s.GetByDate(d))

	case op == "date-range" && len(args) == 2:
		start, end, err := a.parseDates(args[0], args[1])
		if err != nil {
			return false, err
		}
		return false, a.printQuery(s.GetByDateRange(start, end))

	case op == "amount-range" && len(args) == 2:
		lo, err := parseAmount(args[0])
		if err != nil {
			return false, err
		}
		hi, err := parseAmount(args[1])
		if err != nil {
			return false, err
		}
		return false, a.printQuery(s.GetByAmountRange(&lo, &hi))

	case op == "create" && (len(args) == 4 || len(args) == 5):
		tx, err := a.parseTransaction(args[:4])
		if err != nil {
			return false, err
		}
		if len(args) == 5 {
			tx.ID = args[4]
		}
		created, err := s.Create(&tx)
		if err != nil {
			return false, err
		}
		return true, a.print(created)

	case op == "update" && len(args) == 5:
		tx, err := a.parseTransaction(args[1:])
		if err != nil {
			return false, err
		}
		tx.ID = args[0]
		updated, err := s.Update(&tx)
		if err != nil {
			return false, err
		}
		return true, a.print(updated)

	case op == "delete" && len(args) == 1:
		deleted, err := s.Delete(args[0])
		if err != nil {
			return false, err
		}
		return deleted, a.print(deleteResult{Deleted: deleted})
	}

	return false, errUsage
}

func (a *app) runStatus(op string, args []string) (bool, error) {
	s := a.statuses

	switch {
	case op == "list" && len(args) == 0:
		return false, a.print(s.List())

	case op == "get" && len(args) == 1:
		st, found, err := s.GetByID(args[0])
		if err != nil {
			return false, err
		}
		return false, a.print(lookup(found, st))

	case op == "category" && len(args) == 2:
		return false, a.printQuery(s.GetByCategory(args[0], args[1]))

	case op == "date" && len(args) == 1:
		d, err := a.parseDate(args[0])
		if err != nil {
			return false, err
		}
		return false, a.printQuery(s.GetByDate(d))

	case op == "date-range" && len(args) == 2:
		start, end, err := a.parseDates(args[0], args[1])
		if err != nil {
			return false, err
		}
		return false, a.printQuery(s.GetByDateRange(start, end))

	case op == "create" && (len(args) == 3 || len(args) == 4):
		st, err := a.parseStatus(args[:3])
		if err != nil {
			return false, err
		}
		if len(args) == 4 {
			st.ID = args[3]
		}
		created, err := s.Create(&st)
		if err != nil {
			return false, err
		}
		return true, a.print(created)

	case op == "update" && len(args) == 4:
		st, err := a.parseStatus(args[1:])
		if err != nil {
			return false, err
		}
		st.ID = args[0]
		updated, err := s.Update(&st)
		if err != nil {
			return false, err
		}
		return true, a.print(updated)

	case op == "delete" && len(args) == 1:
		deleted, err := s.Delete(args[0])
		if err != nil {
			return false, err
		}
		return deleted, a.print(deleteResult{Deleted: deleted})
	}

	return false, errUsage
}

func lookup(found bool, record interface{}) lookupResult {
	if !found {
		return lookupResult{}
	}
	return lookupResult{Found: true, Record: record}
}

// parseTransaction reads kind, amount, state and date
func (a *app) parseTransaction(args []string) (entity.Transaction, error) {
	amount, err := parseAmount(args[1])
	if err != nil {
		return entity.Transaction{}, err
	}
	occurredAt, err := a.parseDate(args[3])
	if err != nil {
		return entity.Transaction{}, err
	}
	return entity.Transaction{Kind: args[0], Amount: amount, State: args[2], OccurredAt: occurredAt}, nil
}

// parseStatus reads status type, reason and date
func (a *app) parseStatus(args []string) (entity.TransactionStatus, error) {
	timestamp, err := a.parseDate(args[2])
	if err != nil {
		return entity.TransactionStatus{}, err
	}
	return entity.TransactionStatus{StatusType: args[0], Reason: args[1], Timestamp: timestamp}, nil
}

func (a *app) parseDate(value string) (time.Time, error) {
	for _, layout := range []string{entity.DateLayout, entity.TimestampLayout} {
		if t, err := time.ParseInLocation(layout, value, a.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not yyyy-mm-dd or %q", service.ErrInvalidDate, value, entity.TimestampLayout)
}

func (a *app) parseDates(start, end string) (time.Time, time.Time, error) {
	s, err := a.parseDate(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := a.parseDate(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

func parseAmount(value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", value)
	}
	return f, nil
}

func (a *app) printQuery(records interface{}, err error) error {
	if err != nil {
		return err
	}
	return a.print(records)
}

func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
