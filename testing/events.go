package ibctesting

import (
	"bytes"
	"errors"

	sdk "github.com/cosmos/cosmos-sdk/types"
	testifysuite "github.com/stretchr/testify/suite"
	abci "github.com/tendermint/tendermint/abci/types"

	clienttypes "github.com/cosmos/ibc-handshake/modules/core/02-client/types"
	channeltypes "github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
)

// ParseClientIDFromEvents parses events emitted from a client creation and returns the
// client identifier.
func ParseClientIDFromEvents(events sdk.Events) (string, error) {
	for _, ev := range events {
		if ev.Type == clienttypes.EventTypeCreateClient {
			if attribute, found := attributeByKey(ev.Attributes, clienttypes.AttributeKeyClientID); found {
				return string(attribute.Value), nil
			}
		}
	}
	return "", errors.New("client identifier event attribute not found")
}

// ParseChannelIDFromEvents parses events emitted from a MsgChannelOpenInit or
// MsgChannelOpenTry and returns the channel identifier.
func ParseChannelIDFromEvents(events sdk.Events) (string, error) {
	for _, ev := range events {
		if ev.Type == channeltypes.EventTypeChannelOpenInit || ev.Type == channeltypes.EventTypeChannelOpenTry {
			if attribute, found := attributeByKey(ev.Attributes, channeltypes.AttributeKeyChannelID); found {
				return string(attribute.Value), nil
			}
		}
	}
	return "", errors.New("channel identifier event attribute not found")
}

// AssertEvents asserts that expected events are present in the actual events.
func AssertEvents(
	suite *testifysuite.Suite,
	expected sdk.Events,
	actual sdk.Events,
) {
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range actual {
			if shouldProcessEvent(expectedEvent, actualEvent) {
				attributeMatch := true
				for _, expectedAttr := range expectedEvent.Attributes {
					// any expected attributes that are not contained in the actual events will cause this event
					// not to match
					attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
				}

				if attributeMatch {
					foundEvents[i] = true
				}
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

// shouldProcessEvent returns true if the given expected event should be processed based on event type.
func shouldProcessEvent(expectedEvent sdk.Event, actualEvent sdk.Event) bool {
	if expectedEvent.Type != actualEvent.Type {
		return false
	}

	return len(expectedEvent.Attributes) == len(actualEvent.Attributes)
}

// containsAttribute returns true if the given key/value pair is contained in the given attributes.
// NOTE: this ignores the indexed field, which can be set or unset depending on how the events are retrieved.
func containsAttribute(attrs []abci.EventAttribute, key, value []byte) bool {
	for _, attr := range attrs {
		if bytes.Equal(attr.Key, key) && bytes.Equal(attr.Value, value) {
			return true
		}
	}
	return false
}

// attributeByKey returns the event attribute keyed by the given key and a boolean indicating its presence in the given attributes.
func attributeByKey(attributes []abci.EventAttribute, key string) (abci.EventAttribute, bool) {
	for _, attr := range attributes {
		if string(attr.Key) == key {
			return attr, true
		}
	}
	return abci.EventAttribute{}, false
}
