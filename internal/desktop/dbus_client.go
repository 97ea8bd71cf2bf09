package desktop

import (
	"github.com/godbus/dbus/v5"
)

// DBusClient defines the D-Bus operations the inhibitor needs.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -destination=mocks/dbus_client_mock.go -package=mocks github.com/easel-works/easel/internal/desktop DBusClient
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes a method on a D-Bus object and stores the reply in ret.
	// A nil ret discards the reply.
	Call(dest, path, method string, args []any, ret any) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method on a D-Bus object and stores the reply in ret
func (c *StdDBusClient) Call(dest, path, method string, args []any, ret any) error {
	obj := c.conn.Object(dest, dbus.ObjectPath(path))
	call := obj.Call(method, 0, args...)
	if call.Err != nil {
		return call.Err
	}
	if ret == nil {
		return nil
	}
	return call.Store(ret)
}
