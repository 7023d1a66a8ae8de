package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/gogo/protobuf/proto"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/ibc-handshake/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-handshake/modules/core/24-host"
	"github.com/cosmos/ibc-handshake/modules/core/exported"
)

// Keeper defines the IBC channel keeper
type Keeper struct {
	storeKey sdk.StoreKey
}

// NewKeeper creates a new IBC channel Keeper instance
func NewKeeper(key sdk.StoreKey) Keeper {
	return Keeper{
		storeKey: key,
	}
}

// Logger returns a module-specific logger.
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// HasChannel true if the channel with the given identifiers exists in state.
func (k Keeper) HasChannel(ctx sdk.Context, portID, channelID string) bool {
	store := ctx.KVStore(k.storeKey)
	return store.Has(host.ChannelKey(portID, channelID))
}

// GetChannel returns a channel with a particular identifier binded to a specific port
func (k Keeper) GetChannel(ctx sdk.Context, portID, channelID string) (types.Channel, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(host.ChannelKey(portID, channelID))
	if len(bz) == 0 {
		return types.Channel{}, false
	}

	var channel types.Channel
	if err := proto.Unmarshal(bz, &channel); err != nil {
		panic(err)
	}
	return channel, true
}

// SetChannel sets a channel to the store
func (k Keeper) SetChannel(ctx sdk.Context, portID, channelID string, channel types.Channel) {
	store := ctx.KVStore(k.storeKey)
	bz, err := proto.Marshal(&channel)
	if err != nil {
		panic(err)
	}
	store.Set(host.ChannelKey(portID, channelID), bz)
}

// GetNextChannelSequence gets the next channel sequence from the store.
// A chain that never allocated a channel identifier starts at zero.
func (k Keeper) GetNextChannelSequence(ctx sdk.Context) uint64 {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get([]byte(host.KeyNextChannelSequence))
	if len(bz) == 0 {
		return 0
	}

	return sdk.BigEndianToUint64(bz)
}

// SetNextChannelSequence sets the next channel sequence to the store.
func (k Keeper) SetNextChannelSequence(ctx sdk.Context, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	bz := sdk.Uint64ToBigEndian(sequence)
	store.Set([]byte(host.KeyNextChannelSequence), bz)
}

// GetNextSequenceSend gets a channel's next send sequence from the store
func (k Keeper) GetNextSequenceSend(ctx sdk.Context, portID, channelID string) (uint64, bool) {
	return k.getSequence(ctx, host.NextSequenceSendKey(portID, channelID))
}

// SetNextSequenceSend sets a channel's next send sequence to the store
func (k Keeper) SetNextSequenceSend(ctx sdk.Context, portID, channelID string, sequence uint64) {
	k.setSequence(ctx, host.NextSequenceSendKey(portID, channelID), sequence)
}

// GetNextSequenceRecv gets a channel's next receive sequence from the store
func (k Keeper) GetNextSequenceRecv(ctx sdk.Context, portID, channelID string) (uint64, bool) {
	return k.getSequence(ctx, host.NextSequenceRecvKey(portID, channelID))
}

// SetNextSequenceRecv sets a channel's next receive sequence to the store
func (k Keeper) SetNextSequenceRecv(ctx sdk.Context, portID, channelID string, sequence uint64) {
	k.setSequence(ctx, host.NextSequenceRecvKey(portID, channelID), sequence)
}

// GetNextSequenceAck gets a channel's next ack sequence from the store
func (k Keeper) GetNextSequenceAck(ctx sdk.Context, portID, channelID string) (uint64, bool) {
	return k.getSequence(ctx, host.NextSequenceAckKey(portID, channelID))
}

// SetNextSequenceAck sets a channel's next ack sequence to the store
func (k Keeper) SetNextSequenceAck(ctx sdk.Context, portID, channelID string, sequence uint64) {
	k.setSequence(ctx, host.NextSequenceAckKey(portID, channelID), sequence)
}

func (k Keeper) getSequence(ctx sdk.Context, key []byte) (uint64, bool) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(key)
	if len(bz) == 0 {
		return 0, false
	}

	return sdk.BigEndianToUint64(bz), true
}

func (k Keeper) setSequence(ctx sdk.Context, key []byte, sequence uint64) {
	store := ctx.KVStore(k.storeKey)
	store.Set(key, sdk.Uint64ToBigEndian(sequence))
}

// IterateChannels provides an iterator over all Channel objects. For each
// Channel, cb will be called. If the cb returns true, the iterator will close
// and stop.
func (k Keeper) IterateChannels(ctx sdk.Context, cb func(types.IdentifiedChannel) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(host.KeyChannelEndPrefix+"/"))

	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		var channel types.Channel
		if err := proto.Unmarshal(iterator.Value(), &channel); err != nil {
			panic(err)
		}

		portID, channelID := host.MustParseChannelPath(string(iterator.Key()))
		identifiedChannel := types.NewIdentifiedChannel(portID, channelID, channel)
		if cb(identifiedChannel) {
			break
		}
	}
}

// GetAllChannels returns all stored Channel objects.
func (k Keeper) GetAllChannels(ctx sdk.Context) (channels []types.IdentifiedChannel) {
	k.IterateChannels(ctx, func(channel types.IdentifiedChannel) bool {
		channels = append(channels, channel)
		return false
	})
	return channels
}

// IteratePacketSequence provides an iterator over all sequences stored under keyPrefix.
// For each sequence, cb will be called. If the cb returns true, the iterator will close
// and stop.
func (k Keeper) IteratePacketSequence(ctx sdk.Context, keyPrefix string, cb func(portID, channelID string, sequence uint64) bool) {
	store := ctx.KVStore(k.storeKey)
	iterator := sdk.KVStorePrefixIterator(store, []byte(keyPrefix+"/"))

	defer iterator.Close()
	for ; iterator.Valid(); iterator.Next() {
		portID, channelID := host.MustParseChannelPath(string(iterator.Key()))
		sequence := sdk.BigEndianToUint64(iterator.Value())

		if cb(portID, channelID, sequence) {
			break
		}
	}
}

// GetAllPacketSendSeqs returns all stored next send sequences.
func (k Keeper) GetAllPacketSendSeqs(ctx sdk.Context) []types.PacketSequence {
	return k.getAllPacketSeqs(ctx, host.KeyNextSeqSendPrefix)
}

// GetAllPacketRecvSeqs returns all stored next recv sequences.
func (k Keeper) GetAllPacketRecvSeqs(ctx sdk.Context) []types.PacketSequence {
	return k.getAllPacketSeqs(ctx, host.KeyNextSeqRecvPrefix)
}

// GetAllPacketAckSeqs returns all stored next acknowledgements sequences.
func (k Keeper) GetAllPacketAckSeqs(ctx sdk.Context) []types.PacketSequence {
	return k.getAllPacketSeqs(ctx, host.KeyNextSeqAckPrefix)
}

func (k Keeper) getAllPacketSeqs(ctx sdk.Context, keyPrefix string) (seqs []types.PacketSequence) {
	k.IteratePacketSequence(ctx, keyPrefix, func(portID, channelID string, sequence uint64) bool {
		seqs = append(seqs, types.NewPacketSequence(portID, channelID, sequence))
		return false
	})
	return seqs
}
