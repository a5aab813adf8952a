package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"server/internal/domain"
	"server/internal/infra"
)

// scriptedCall describes one expected statement and the outcome to produce.
type scriptedCall struct {
	query string
	tag   pgconn.CommandTag
	err   error
	scan  func(dest ...any) error
}

// scriptedRunner replays a fixed sequence of SQL calls. WithTx runs fn inline
// and records whether the unit committed or rolled back.
type scriptedRunner struct {
	calls      []scriptedCall
	next       int
	issued     []string
	committed  bool
	rolledBack bool
	txDepth    int
}

func (s *scriptedRunner) take(query string) (scriptedCall, error) {
	if s.next >= len(s.calls) {
		return scriptedCall{}, fmt.Errorf("unexpected statement %d: %q", s.next, firstLine(query))
	}
	call := s.calls[s.next]
	s.next++
	s.issued = append(s.issued, query)
	if call.query != "" && call.query != query {
		return scriptedCall{}, fmt.Errorf("statement %d mismatch: got %q", s.next-1, firstLine(query))
	}
	return call, nil
}

func (s *scriptedRunner) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	call, err := s.take(query)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return call.tag, call.err
}

func (s *scriptedRunner) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	call, err := s.take(query)
	if err != nil {
		return scriptedRow{err: err}
	}
	if call.err != nil {
		return scriptedRow{err: call.err}
	}
	return scriptedRow{scan: call.scan}
}

func (s *scriptedRunner) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	call, err := s.take(query)
	if err != nil {
		return nil, err
	}
	return nil, call.err
}

func (s *scriptedRunner) WithTx(_ context.Context, fn func(tx infra.SQLExecutor) error) error {
	s.txDepth++
	err := fn(s)
	s.txDepth--
	if err != nil {
		s.rolledBack = true
		return err
	}
	s.committed = true
	return nil
}

type scriptedRow struct {
	scan func(dest ...any) error
	err  error
}

func (r scriptedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

func firstLine(query string) string {
	for i := 0; i < len(query); i++ {
		if query[i] == '\n' {
			return query[:i]
		}
	}
	return query
}

func scanRegistrationRow(id, userID, eventID string, at time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != 4 {
			return fmt.Errorf("unexpected scan args: %d", len(dest))
		}
		*dest[0].(*string) = id
		*dest[1].(*string) = userID
		*dest[2].(*string) = eventID
		*dest[3].(*time.Time) = at
		return nil
	}
}

func scanApplicationRow(id, userID, status string, at time.Time) func(dest ...any) error {
	return func(dest ...any) error {
		if len(dest) != 7 {
			return fmt.Errorf("unexpected scan args: %d", len(dest))
		}
		*dest[0].(*string) = id
		*dest[1].(*string) = userID
		*dest[2].(*string) = "community outreach"
		*dest[3].(*string) = "weekends"
		*dest[4].(*string) = "happy to help"
		*dest[5].(*domain.ApplicationStatus) = domain.ApplicationStatus(status)
		*dest[6].(*time.Time) = at
		return nil
	}
}
