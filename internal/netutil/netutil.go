// Package netutil detects the address other devices on the LAN use to reach this host.
package netutil

import (
	"net"
	"os"
	"strings"
)

const fallbackIP = "127.0.0.1"

// LocalIP returns the host's LAN IPv4 address. It tries the hostname first,
// then the source address of an outbound UDP socket, and falls back to loopback.
func LocalIP() string {
	if ip := hostnameIP(); ip != "" {
		return ip
	}
	if ip := outboundIP(); ip != "" {
		return ip
	}
	return fallbackIP
}

func hostnameIP() string {
	host, err := os.Hostname()
	if err != nil {
		return ""
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return ""
	}
	return firstUsable(ips)
}

// outboundIP dials UDP without sending anything to learn the preferred source address.
func outboundIP() string {
	conn, err := net.Dial("udp4", "192.0.2.1:80")
	if err != nil {
		return ""
	}
	defer conn.Close()

	addr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return ""
	}
	return firstUsable([]net.IP{addr.IP})
}

func firstUsable(ips []net.IP) string {
	for _, ip := range ips {
		v4 := ip.To4()
		if v4 == nil || v4.IsLoopback() || v4.IsUnspecified() {
			continue
		}
		return v4.String()
	}
	return ""
}

// AppURL returns publicURL when set, otherwise http://<LocalIP>:<port>.
func AppURL(publicURL, port string) string {
	if publicURL = strings.TrimSpace(publicURL); publicURL != "" {
		return strings.TrimRight(publicURL, "/")
	}
	return "http://" + net.JoinHostPort(LocalIP(), port)
}
