package host

import "fmt"

const (
	KeyPortPrefix = "ports"
)

// ICS05
// The following paths are the keys to the store as defined in https://github.com/cosmos/ibc/tree/master/spec/core/ics-005-port-allocation#store-paths

// PortPath defines the path under which the module bound to a port is recorded.
func PortPath(portID string) string {
	return fmt.Sprintf("%s/%s", KeyPortPrefix, portID)
}

// PortKey returns the store key of a port binding.
func PortKey(portID string) []byte {
	return []byte(PortPath(portID))
}
