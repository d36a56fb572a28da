package repokit

import (
	"context"

	perr "careerpath/internal/platform/errors"
)

// Disabled returns a TxRunner that answers every call with an Unavailable error
// modules mount it when postgres is not configured so routes report 503 instead of panicking
func Disabled(backend string) TxRunner { return disabled{err: perr.Unavailablef("%s disabled", backend)} }

// OrDisabled returns tx, or Disabled(backend) when tx is nil
func OrDisabled(tx TxRunner, backend string) TxRunner {
	if tx == nil {
		return Disabled(backend)
	}
	return tx
}

type disabled struct{ err error }

func (d disabled) Exec(context.Context, string, ...any) (CommandTag, error) { return nil, d.err }
func (d disabled) Query(context.Context, string, ...any) (Rows, error)      { return nil, d.err }
func (d disabled) QueryRow(context.Context, string, ...any) Row             { return errRow{d.err} }
func (d disabled) Tx(context.Context, func(Queryer) error) error            { return d.err }

type errRow struct{ err error }

func (r errRow) Scan(...any) error { return r.err }
