// Package sysinfo answers network and system status questions from the host.
package sysinfo

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Interface is one network link as seen by the probe.
type Interface struct {
	Name     string
	Up       bool
	Loopback bool
	Addrs    []string
}

// Network summarizes connectivity.
type Network struct {
	Connected bool
	Interface string
	Address   string
}

// System summarizes host health.
type System struct {
	Uptime  time.Duration
	Load1   float64
	TempC   int
	HasTemp bool
}

// Probe reads host status. Root prefixes /proc and /sys paths.
type Probe struct {
	Root       string
	interfaces func() ([]Interface, error)
}

// NewProbe returns a probe reading the live host.
func NewProbe() *Probe {
	return &Probe{Root: "/", interfaces: hostInterfaces}
}

// Network reports the first up, non-loopback interface carrying an address.
func (p *Probe) Network() (Network, error) {
	list := p.interfaces
	if list == nil {
		list = hostInterfaces
	}
	ifaces, err := list()
	if err != nil {
		return Network{}, fmt.Errorf("list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		if !iface.Up || iface.Loopback || len(iface.Addrs) == 0 {
			continue
		}
		return Network{Connected: true, Interface: iface.Name, Address: iface.Addrs[0]}, nil
	}
	return Network{}, nil
}

// System reads uptime, one-minute load, and the first thermal zone.
func (p *Probe) System() (System, error) {
	uptime, err := p.readFirstFloat("proc/uptime")
	if err != nil {
		return System{}, fmt.Errorf("read uptime: %w", err)
	}
	load, err := p.readFirstFloat("proc/loadavg")
	if err != nil {
		return System{}, fmt.Errorf("read load: %w", err)
	}

	out := System{
		Uptime: time.Duration(uptime * float64(time.Second)),
		Load1:  load,
	}
	if milli, err := p.readFirstFloat("sys/class/thermal/thermal_zone0/temp"); err == nil {
		out.TempC = int(milli / 1000)
		out.HasTemp = true
	}
	return out, nil
}

func (p *Probe) readFirstFloat(rel string) (float64, error) {
	root := p.Root
	if root == "" {
		root = "/"
	}
	data, err := os.ReadFile(filepath.Join(root, rel))
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s is empty", rel)
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", rel, err)
	}
	return v, nil
}

func hostInterfaces() ([]Interface, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}
	out := make([]Interface, 0, len(ifaces))
	for _, iface := range ifaces {
		item := Interface{
			Name:     iface.Name,
			Up:       iface.Flags&net.FlagUp != 0,
			Loopback: iface.Flags&net.FlagLoopback != 0,
		}
		addrs, err := iface.Addrs()
		if err == nil {
			for _, addr := range addrs {
				item.Addrs = append(item.Addrs, addr.String())
			}
		}
		out = append(out, item)
	}
	return out, nil
}
