package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	storetypes "cosmossdk.io/store/types"

	"github.com/synthia-chain/synthia/x/attest/types"
)

// GetAttestation returns the record at the given log index.
func (k Keeper) GetAttestation(ctx context.Context, index uint64) (types.AttestationRecord, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.GetAttestationKey(index))
	if bz == nil {
		return types.AttestationRecord{}, false
	}

	var record types.AttestationRecord
	if err := json.Unmarshal(bz, &record); err != nil {
		panic(fmt.Errorf("corrupted attestation record %d: %w", index, err))
	}
	return record, true
}

// GetAttestationCount returns the number of records in the log.
func (k Keeper) GetAttestationCount(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.AttestationCountKey)
	if bz == nil {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

func (k Keeper) setAttestationCount(ctx context.Context, count uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, count)
	store.Set(types.AttestationCountKey, bz)
}

// appendAttestation writes record at the next index and returns that index.
// The log is append-only; records are never rewritten.
func (k Keeper) appendAttestation(ctx context.Context, record types.AttestationRecord) uint64 {
	index := k.GetAttestationCount(ctx)
	record.Index = index

	bz, err := json.Marshal(record)
	if err != nil {
		panic(fmt.Errorf("marshal attestation record: %w", err))
	}

	store := k.getStore(ctx)
	store.Set(types.GetAttestationKey(index), bz)
	k.setAttestationCount(ctx, index+1)
	return index
}

// IterateAttestations walks the log in index order.
func (k Keeper) IterateAttestations(ctx context.Context, cb func(record types.AttestationRecord) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.AttestationKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.AttestationRecord
		if err := json.Unmarshal(iterator.Value(), &record); err != nil {
			panic(fmt.Errorf("corrupted attestation record: %w", err))
		}
		if cb(record) {
			break
		}
	}
}

// GetLatestAccepted returns the most recent accepted record, if any.
func (k Keeper) GetLatestAccepted(ctx context.Context) (types.AttestationRecord, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.LatestAcceptedKey)
	if bz == nil {
		return types.AttestationRecord{}, false
	}
	return k.GetAttestation(ctx, binary.BigEndian.Uint64(bz))
}

func (k Keeper) setLatestAccepted(ctx context.Context, index uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, index)
	store.Set(types.LatestAcceptedKey, bz)
}

// GetLastSubmissionTime returns the block time of the previous submission.
func (k Keeper) GetLastSubmissionTime(ctx context.Context) (int64, bool) {
	store := k.getStore(ctx)
	bz := store.Get(types.LastSubmissionKey)
	if bz == nil {
		return 0, false
	}
	return int64(binary.BigEndian.Uint64(bz)), true
}

func (k Keeper) setLastSubmissionTime(ctx context.Context, unix int64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, uint64(unix))
	store.Set(types.LastSubmissionKey, bz)
}
