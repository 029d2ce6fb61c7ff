package types

import (
	"encoding/binary"
)

var (
	// ModuleNamespace is the namespace byte for the governance module (0x05).
	// All store keys are prefixed with this byte to prevent collisions with
	// other modules sharing a store.
	ModuleNamespace = byte(0x05)

	// ParamsKey is the key for module parameters
	ParamsKey = []byte{0x05, 0x01}

	// ProposalCounterKey is the key for the monotonic proposal id counter
	ProposalCounterKey = []byte{0x05, 0x02}

	// ProposalKeyPrefix is the prefix for proposal storage
	ProposalKeyPrefix = []byte{0x05, 0x03}

	// ReceiptKeyPrefix is the prefix for vote receipt storage
	ReceiptKeyPrefix = []byte{0x05, 0x04}

	// DelegationKeyPrefix is the prefix for delegation records
	DelegationKeyPrefix = []byte{0x05, 0x05}
)

// GetProposalKey returns the store key for a proposal by id
func GetProposalKey(id uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id)
	return append(ProposalKeyPrefix, idBz...)
}

// GetReceiptKey returns the store key for a voter's receipt on a proposal.
// Key format: prefix + id + 0x00 + voter
func GetReceiptKey(id uint64, voter string) []byte {
	key := GetReceiptsByProposalPrefix(id)
	return append(key, []byte(voter)...)
}

// GetReceiptsByProposalPrefix returns the prefix for all receipts of a proposal
func GetReceiptsByProposalPrefix(id uint64) []byte {
	idBz := make([]byte, 8)
	binary.BigEndian.PutUint64(idBz, id)
	key := append(ReceiptKeyPrefix, idBz...)
	return append(key, byte(0x00)) // separator
}

// GetDelegationKey returns the store key for a delegator's delegation record
func GetDelegationKey(delegator string) []byte {
	return append(DelegationKeyPrefix, []byte(delegator)...)
}
