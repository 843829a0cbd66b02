//go:build linux

package transport

import (
	"net"
	"os"

	"golang.org/x/sys/unix"
)

// bindTCP opens the listening socket by hand, because the standard library neither
// lets choosing the backlog nor reports whether SO_REUSEADDR is set.
func bindTCP(addr string, backlog int) (*net.TCPListener, error) {
	tcpaddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, err
	}

	domain, sa := sockaddr(tcpaddr)
	fd, err := unix.Socket(domain, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, unix.IPPROTO_TCP)
	if err != nil {
		return nil, os.NewSyscallError("socket", err)
	}

	if err = unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("setsockopt", err)
	}

	if err = unix.Bind(fd, sa); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("bind", err)
	}

	if err = unix.Listen(fd, backlog); err != nil {
		_ = unix.Close(fd)
		return nil, os.NewSyscallError("listen", err)
	}

	// net.FileListener duplicates the descriptor, the original one is closed
	// together with the file.
	file := os.NewFile(uintptr(fd), "tcp:"+addr)
	defer file.Close()

	l, err := net.FileListener(file)
	if err != nil {
		return nil, err
	}

	return l.(*net.TCPListener), nil
}

func sockaddr(addr *net.TCPAddr) (domain int, sa unix.Sockaddr) {
	if ip4 := addr.IP.To4(); ip4 != nil || addr.IP == nil {
		inet4 := &unix.SockaddrInet4{Port: addr.Port}
		copy(inet4.Addr[:], ip4)

		return unix.AF_INET, inet4
	}

	inet6 := &unix.SockaddrInet6{Port: addr.Port}
	copy(inet6.Addr[:], addr.IP.To16())
	if len(addr.Zone) > 0 {
		if iface, err := net.InterfaceByName(addr.Zone); err == nil {
			inet6.ZoneId = uint32(iface.Index)
		}
	}

	return unix.AF_INET6, inet6
}
