package network

import (
	"context"
	"errors"
	"testing"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysinfo/internal/domain"
	"sysinfo/internal/logger"
)

func newTestCollector() *Collector {
	c := NewCollector(logger.Discard())
	c.interfaces = func(context.Context) (psnet.InterfaceStatList, error) {
		return psnet.InterfaceStatList{
			{
				Name:  "lo",
				Flags: []string{"up", "loopback", "running"},
				Addrs: psnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}, {Addr: "::1/128"}},
			},
			{
				Name:         "eth0",
				HardwareAddr: "52:54:00:12:34:56",
				Flags:        []string{"up", "broadcast", "multicast", "running"},
				Addrs: psnet.InterfaceAddrList{
					{Addr: "192.168.1.10/24"},
					{Addr: "fe80::5054:ff:fe12:3456/64"},
				},
			},
		}, nil
	}
	c.ioCounters = func(context.Context, bool) ([]psnet.IOCountersStat, error) {
		return []psnet.IOCountersStat{{Name: "all", BytesSent: 4096, BytesRecv: 8192}}, nil
	}
	return c
}

func TestCollect(t *testing.T) {
	snap, err := newTestCollector().Collect(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Interfaces, 2)

	lo := snap.Interfaces[0]
	assert.Equal(t, "lo", lo.Name)
	assert.Equal(t, []InterfaceAddress{
		{Family: domain.FamilyIPv4, Address: "127.0.0.1", Netmask: "255.0.0.0"},
		{Family: domain.FamilyIPv6, Address: "::1", Netmask: "ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff"},
	}, lo.Addresses)

	eth := snap.Interfaces[1]
	assert.Equal(t, []InterfaceAddress{
		{Family: domain.FamilyIPv4, Address: "192.168.1.10", Netmask: "255.255.255.0", Broadcast: "192.168.1.255"},
		{Family: domain.FamilyIPv6, Address: "fe80::5054:ff:fe12:3456", Netmask: "ffff:ffff:ffff:ffff::"},
		{Family: domain.FamilyLink, Address: "52:54:00:12:34:56", Broadcast: "ff:ff:ff:ff:ff:ff"},
	}, eth.Addresses)

	assert.Equal(t, domain.TrafficTotals{BytesSent: 4096, BytesRecv: 8192}, snap.IO)
	assert.NoError(t, snap.IOErr)
}

func TestCollectInterfacesError(t *testing.T) {
	c := newTestCollector()
	c.interfaces = func(context.Context) (psnet.InterfaceStatList, error) {
		return nil, errors.New("netlink denied")
	}

	_, err := c.Collect(context.Background())
	assert.ErrorContains(t, err, "netlink denied")
}

func TestCollectIOError(t *testing.T) {
	c := newTestCollector()
	c.ioCounters = func(context.Context, bool) ([]psnet.IOCountersStat, error) {
		return nil, nil
	}

	snap, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, snap.Interfaces, 2)
	assert.ErrorIs(t, snap.IOErr, domain.ErrUnavailable)
}

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		canBroadcast bool
		want         InterfaceAddress
		ok           bool
	}{
		{
			name:         "ipv4 /20 broadcast",
			raw:          "10.0.17.5/20",
			canBroadcast: true,
			want:         InterfaceAddress{Family: domain.FamilyIPv4, Address: "10.0.17.5", Netmask: "255.255.240.0", Broadcast: "10.0.31.255"},
			ok:           true,
		},
		{
			name: "ipv4 point to point",
			raw:  "10.8.0.2/32",
			want: InterfaceAddress{Family: domain.FamilyIPv4, Address: "10.8.0.2", Netmask: "255.255.255.255"},
			ok:   true,
		},
		{
			name: "bare ipv4",
			raw:  "172.16.0.1",
			want: InterfaceAddress{Family: domain.FamilyIPv4, Address: "172.16.0.1", Netmask: "255.255.255.255"},
			ok:   true,
		},
		{
			name: "garbage",
			raw:  "not-an-ip",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAddress(tt.raw, tt.canBroadcast)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
