package realtime

import (
	"bytes"
	"net"
	"strconv"
	"strings"
)

const handshakeHeadSize = 64

// handshakeConn keeps the first bytes the hub sends so a refused upgrade can
// be told apart by its HTTP status.
type handshakeConn struct {
	net.Conn
	head []byte
}

func (c *handshakeConn) Read(p []byte) (int, error) {
	n, err := c.Conn.Read(p)
	if room := handshakeHeadSize - len(c.head); room > 0 && n > 0 {
		c.head = append(c.head, p[:min(n, room)]...)
	}
	return n, err
}

// status parses the status line of the handshake response, or 0.
func (c *handshakeConn) status() int {
	line, _, _ := bytes.Cut(c.head, []byte("\r\n"))
	fields := strings.Fields(string(line))
	if len(fields) < 2 || !strings.HasPrefix(fields[0], "HTTP/") {
		return 0
	}
	code, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return code
}
