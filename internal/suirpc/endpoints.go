package suirpc

import (
	"fmt"
	"sort"
	"strings"
)

// Public fullnode endpoints by network name.
var networkEndpoints = map[string]string{
	"mainnet": "https://fullnode.mainnet.sui.io:443",
	"testnet": "https://fullnode.testnet.sui.io:443",
	"devnet":  "https://fullnode.devnet.sui.io:443",
}

// EndpointFor resolves a network name to its public fullnode URL.
func EndpointFor(network string) (string, error) {
	url, ok := networkEndpoints[strings.ToLower(strings.TrimSpace(network))]
	if !ok {
		return "", fmt.Errorf("unknown network %q, available networks: %s", network, strings.Join(NetworkNames(), ", "))
	}
	return url, nil
}

// NetworkNames lists the known network names in lexical order.
func NetworkNames() []string {
	names := make([]string, 0, len(networkEndpoints))
	for name := range networkEndpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
