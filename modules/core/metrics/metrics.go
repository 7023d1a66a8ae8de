package metrics

// Prometheus metric labels.
const (
	// 02-client labels

	LabelClientType = "client_type"
	LabelClientID   = "client_id"
	LabelUpdateType = "update_type"

	// Message server labels

	LabelStep         = "step"
	LabelPort         = "port"
	LabelChannel      = "channel"
	LabelConnectionID = "connection_id"
)
