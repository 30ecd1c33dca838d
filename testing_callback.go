package covenant

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// mockCallback records the arguments of every invocation of the Callbacks returned by Fn.
// Each Fn call returns a distinct func value.
type mockCallback struct {
	mock.Mock

	argsMu sync.Mutex
	args   [][]any
}

func newMockCallback() *mockCallback {
	m := &mockCallback{}
	m.On("Call", mock.Anything).Maybe()
	return m
}

func (m *mockCallback) Call(args []any) {
	m.argsMu.Lock()
	m.args = append(m.args, args)
	m.argsMu.Unlock()

	m.Called(args)
}

func (m *mockCallback) Fn() Callback {
	return func(args ...any) {
		m.Call(args)
	}
}

func (m *mockCallback) lastArgs() []any {
	m.argsMu.Lock()
	defer m.argsMu.Unlock()

	if len(m.args) == 0 {
		return nil
	}
	return m.args[len(m.args)-1]
}
