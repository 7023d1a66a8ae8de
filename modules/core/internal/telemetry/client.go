package telemetry

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"

	ibcmetrics "github.com/cosmos/ibc-handshake/modules/core/metrics"
)

// ReportCreateClient counts a created client.
func ReportCreateClient(clientType string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "create"},
		1,
		[]metrics.Label{telemetry.NewLabel(ibcmetrics.LabelClientType, clientType)},
	)
}

// ReportUpdateClient counts an applied client message.
func ReportUpdateClient(clientType, clientID string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", "client", "update"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(ibcmetrics.LabelClientType, clientType),
			telemetry.NewLabel(ibcmetrics.LabelClientID, clientID),
			telemetry.NewLabel(ibcmetrics.LabelUpdateType, "msg"),
		},
	)
}
