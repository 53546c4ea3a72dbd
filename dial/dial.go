// Package dial adapts connection establishment to the UnaryService
// contract, the context-free service variant used where no per-call
// context exists yet.
package dial

import (
	"net"
	"time"

	"github.com/l-vitaly/layerkit/service"
)

// Dialer is a UnaryService from a network address to an established
// connection.
type Dialer struct {
	// Network defaults to "tcp".
	Network string
	// Timeout of zero dials without a bound.
	Timeout time.Duration
}

var _ service.UnaryService[string, net.Conn] = Dialer{}

func (d Dialer) Call(addr string) (net.Conn, error) {
	network := d.Network
	if network == "" {
		network = "tcp"
	}
	return net.DialTimeout(network, addr, d.Timeout)
}
