package printer

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// DefaultPort is the raw printing port Zebra printers listen on.
const DefaultPort = 9100

// ResolveAddr normalizes a user-supplied printer address into a dialable
// "host:port" string. Accepted forms: IP, IP:PORT, hostname,
// hostname:PORT, [IPv6]:PORT, and bare IPv6. A missing or empty port
// falls back to DefaultPort. Hostname resolution is left to the dialer;
// only structural problems are rejected here.
func ResolveAddr(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", &Error{Kind: KindConfiguration, Msg: "invalid address: empty"}
	}

	host, port, err := net.SplitHostPort(trimmed)
	if err != nil {
		// No port part: a bare IP (v4 or v6) or a bare hostname.
		return net.JoinHostPort(trimmed, strconv.Itoa(DefaultPort)), nil
	}
	if host == "" {
		return "", &Error{Kind: KindConfiguration, Msg: fmt.Sprintf("invalid address: %q", input)}
	}
	if port == "" {
		return net.JoinHostPort(host, strconv.Itoa(DefaultPort)), nil
	}
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return "", &Error{Kind: KindConfiguration, Msg: fmt.Sprintf("invalid port in address: %q", input)}
	}
	return net.JoinHostPort(host, port), nil
}

// bindTCPAddr parses a local bind address: a bare IP or IP:port. Hostnames
// are rejected so that validating options never touches the resolver.
func bindTCPAddr(bind string) (*net.TCPAddr, error) {
	if ip := net.ParseIP(bind); ip != nil {
		return &net.TCPAddr{IP: ip}, nil
	}
	if host, portStr, err := net.SplitHostPort(bind); err == nil {
		if ip := net.ParseIP(host); ip != nil {
			port := 0
			if portStr != "" {
				p, perr := strconv.Atoi(portStr)
				if perr != nil || p < 0 || p > 65535 {
					return nil, &Error{Kind: KindConfiguration, Msg: fmt.Sprintf("invalid bind address: %q", bind)}
				}
				port = p
			}
			return &net.TCPAddr{IP: ip, Port: port}, nil
		}
	}
	return nil, &Error{Kind: KindConfiguration, Msg: fmt.Sprintf("invalid bind address: %q (expected IP or IP:port)", bind)}
}
