//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package system

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

func readUname(ctx context.Context) (utsname, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return utsname{}, err
	}

	sysname := info.OS
	if sysname != "" {
		sysname = strings.ToUpper(sysname[:1]) + sysname[1:]
	}

	return utsname{
		Sysname:  sysname,
		Nodename: info.Hostname,
		Release:  info.PlatformVersion,
		Version:  info.KernelVersion,
		Machine:  info.KernelArch,
	}, nil
}
