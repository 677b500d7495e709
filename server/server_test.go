package server

import (
	"testing"

	"listq/types"

	"github.com/inconshreveable/log15"
	"github.com/stretchr/testify/require"
)

func newTestServer() *Server {
	logger := log15.New("service", "server-test")
	logger.SetHandler(log15.DiscardHandler())
	return &Server{
		data:   types.NewOrderedMap[string, string](),
		seq:    types.NewList[string](),
		logger: logger,
	}
}

func TestProcessItemKeyedActions(t *testing.T) {
	s := newTestServer()

	log := s.processItem(&types.Item{Action: types.AddItem, Key: "k", Value: "v"})
	require.Contains(t, log, "created: true")

	log = s.processItem(&types.Item{Action: types.AddItem, Key: "k", Value: "v2"})
	require.Contains(t, log, "created: false")

	log = s.processItem(&types.Item{Action: types.GetItem, Key: "k"})
	require.Contains(t, log, "value: v2")

	s.processItem(&types.Item{Action: types.AddItem, Key: "k2", Value: "x"})
	log = s.processItem(&types.Item{Action: types.GetAllItems})
	require.Contains(t, log, "Item(key: k, value: v2)")
	require.Contains(t, log, "Item(key: k2, value: x)")

	log = s.processItem(&types.Item{Action: types.RemoveItem, Key: "k"})
	require.Contains(t, log, "deleted: true")
	log = s.processItem(&types.Item{Action: types.RemoveItem, Key: "k"})
	require.Contains(t, log, "deleted: false")
}

func TestProcessItemPositionalActions(t *testing.T) {
	s := newTestServer()

	s.processItem(&types.Item{Action: types.AppendItem, Value: "b"})
	s.processItem(&types.Item{Action: types.AppendItem, Value: "c"})
	s.processItem(&types.Item{Action: types.PrependItem, Value: "a"})
	require.Equal(t, []string{"a", "b", "c"}, s.seq.ToSlice())

	log := s.processItem(&types.Item{Action: types.PopFirst})
	require.Contains(t, log, "value: a")
	log = s.processItem(&types.Item{Action: types.PopLast})
	require.Contains(t, log, "value: c")
	require.Equal(t, []string{"b"}, s.seq.ToSlice())
}

func TestProcessItemPopOnEmptySequence(t *testing.T) {
	s := newTestServer()

	log := s.processItem(&types.Item{Action: types.PopFirst})
	require.Contains(t, log, "rejected")
	log = s.processItem(&types.Item{Action: types.PopLast})
	require.Contains(t, log, "rejected")
}

func TestProcessItemUnknownAction(t *testing.T) {
	s := newTestServer()

	log := s.processItem(&types.Item{Action: "Explode"})
	require.Equal(t, "Unknown action!", log)
}
