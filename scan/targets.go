package scan

import (
	"fmt"
	"net"
	"strings"
)

// ParseTargets expands a comma separated target selection into individual
// target strings. Entries may be IP addresses, hostnames, or CIDR blocks;
// CIDR blocks expand to every address they contain. Duplicates are kept and
// order is preserved.
func ParseTargets(selection string) ([]string, error) {
	targets := []string{}
	for _, entry := range strings.Split(selection, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		ip, ipnet, err := net.ParseCIDR(entry)
		if err != nil {
			// Plain address or hostname; resolution is left to the dialer.
			targets = append(targets, entry)
			continue
		}

		for ip := ip.Mask(ipnet.Mask); ipnet.Contains(ip); incrementIP(ip) {
			targets = append(targets, ip.String())
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("No targets in selection: '%s'", selection)
	}

	return targets, nil
}

func incrementIP(ip net.IP) {
	for j := len(ip) - 1; j >= 0; j-- {
		ip[j]++
		if ip[j] > 0 {
			break
		}
	}
}
