package singleton

// DefaultDSN is the data source DefaultConnection connects to.
const DefaultDSN = "conn1"

// Connection is the process-wide connection handle.
type Connection struct {
	DSN string
}

func newConnection(dsn string) (*Connection, error) {
	if dsn == "" {
		return nil, ErrEmptyDSN
	}

	return &Connection{DSN: dsn}, nil
}

// NewConnectionGuard returns a fresh, uninitialized guard over Connection.
// The process-wide connection behind Connect is one such guard.
func NewConnectionGuard(opts ...Option) *Guard[string, *Connection] {
	return NewGuard(newConnection, append([]Option{WithName("connection")}, opts...)...)
}

var connection = NewConnectionGuard()

// Connect establishes the process connection. Only the first successful call
// takes effect; later calls fail with ErrAlreadyInitialized.
func Connect(dsn string) (*Connection, error) {
	return connection.Construct(dsn)
}

// CurrentConnection returns the process connection, or ErrNotInitialized if
// Connect has not yet succeeded.
func CurrentConnection() (*Connection, error) {
	return connection.Instance()
}

// DefaultConnection returns the process connection, connecting to DefaultDSN
// first if nothing has connected yet.
func DefaultConnection() (*Connection, error) {
	return connection.Ensure(DefaultDSN)
}
