package network

import (
	"net"
	"net/netip"
	"slices"

	psnet "github.com/shirou/gopsutil/v3/net"

	"sysinfo/internal/domain"
)

const broadcastMAC = "ff:ff:ff:ff:ff:ff"

func (c *Collector) addresses(iface psnet.InterfaceStat) []InterfaceAddress {
	canBroadcast := slices.Contains(iface.Flags, "broadcast")

	var out []InterfaceAddress
	for _, a := range iface.Addrs {
		addr, ok := parseAddress(a.Addr, canBroadcast)
		if !ok {
			c.log.Debug("skipping unparsable interface address", "interface", iface.Name, "addr", a.Addr)
			continue
		}
		out = append(out, addr)
	}

	if iface.HardwareAddr != "" {
		link := InterfaceAddress{Family: domain.FamilyLink, Address: iface.HardwareAddr}
		if canBroadcast {
			link.Broadcast = broadcastMAC
		}
		out = append(out, link)
	}

	return out
}

// parseAddress accepts "192.168.1.10/24" style CIDRs as well as bare addresses.
func parseAddress(raw string, canBroadcast bool) (InterfaceAddress, bool) {
	prefix, err := netip.ParsePrefix(raw)
	if err != nil {
		ip, err := netip.ParseAddr(raw)
		if err != nil {
			return InterfaceAddress{}, false
		}
		prefix = netip.PrefixFrom(ip, ip.BitLen())
	}

	ip := prefix.Addr()
	bits := prefix.Bits()

	if ip.Is4() {
		mask := net.CIDRMask(bits, 32)
		addr := InterfaceAddress{
			Family:  domain.FamilyIPv4,
			Address: ip.String(),
			Netmask: net.IP(mask).String(),
		}
		if canBroadcast {
			addr.Broadcast = broadcast4(ip, mask)
		}
		return addr, true
	}

	return InterfaceAddress{
		Family:  domain.FamilyIPv6,
		Address: ip.String(),
		Netmask: net.IP(net.CIDRMask(bits, 128)).String(),
	}, true
}

func broadcast4(ip netip.Addr, mask net.IPMask) string {
	b := ip.As4()
	for i := range b {
		b[i] |= ^mask[i]
	}
	return netip.AddrFrom4(b).String()
}
