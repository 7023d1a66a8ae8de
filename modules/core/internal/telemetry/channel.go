package telemetry

import (
	metrics "github.com/armon/go-metrics"
	"github.com/cosmos/cosmos-sdk/telemetry"

	ibcmetrics "github.com/cosmos/ibc-handshake/modules/core/metrics"
)

// ReportChannelHandshake counts a committed handshake step of a channel end.
func ReportChannelHandshake(step, portID, channelID string) {
	telemetry.IncrCounterWithLabels(
		[]string{"ibc", "channel", "handshake"},
		1,
		[]metrics.Label{
			telemetry.NewLabel(ibcmetrics.LabelStep, step),
			telemetry.NewLabel(ibcmetrics.LabelPort, portID),
			telemetry.NewLabel(ibcmetrics.LabelChannel, channelID),
		},
	)
}
