package scan

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

var DefaultPorts []int

func init() {
	for port := range knownPorts {
		DefaultPorts = append(DefaultPorts, port)
	}
	sort.Ints(DefaultPorts)
}

func DescribePort(port int) string {
	if s, ok := knownPorts[port]; ok {
		return s
	}

	return ""
}

// ParsePorts expands a comma separated port selection such as
// "20-25,53,80" into the full list of port numbers, ranges inclusive on
// both ends. Duplicates are kept. An empty selection yields DefaultPorts.
func ParsePorts(selection string) ([]int, error) {
	if selection == "" {
		return DefaultPorts, nil
	}
	ports := []int{}
	ranges := strings.Split(selection, ",")
	for _, r := range ranges {
		r = strings.TrimSpace(r)
		if strings.Contains(r, "-") {
			parts := strings.Split(r, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("Invalid port selection segment: '%s'", r)
			}

			p1, err := parsePort(parts[0])
			if err != nil {
				return nil, err
			}

			p2, err := parsePort(parts[1])
			if err != nil {
				return nil, err
			}

			if p1 > p2 {
				return nil, fmt.Errorf("Invalid port range: %d-%d", p1, p2)
			}

			for i := p1; i <= p2; i++ {
				ports = append(ports, i)
			}

		} else {
			port, err := parsePort(r)
			if err != nil {
				return nil, err
			}
			ports = append(ports, port)
		}
	}
	return ports, nil
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("Invalid port number: '%s'", raw)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("Port number out of range: %d", port)
	}
	return port, nil
}
