package store

import "context"

// Memory keeps rows in a slice. It backs tests and local runs without
// credentials, but honors the same positional contract as the real
// backends.
type Memory struct {
	rows []Row
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Append(_ context.Context, row Row) (int, error) {
	m.rows = append(m.rows, row)
	return len(m.rows), nil
}

func (m *Memory) ReadAll(_ context.Context) ([]Row, error) {
	out := make([]Row, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *Memory) Clear(_ context.Context, pos int) error {
	if pos < 1 || pos > len(m.rows) {
		return ErrOutOfRange
	}
	m.rows[pos-1] = Row{}
	return nil
}

func (m *Memory) SetStatus(_ context.Context, pos int, status Status) error {
	if pos < 1 || pos > len(m.rows) {
		return ErrOutOfRange
	}
	m.rows[pos-1].Status = status.String()
	return nil
}
